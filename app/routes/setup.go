package routes

import (
	"github.com/bytedance/sonic"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"gpa-tracker/app/routes/attendance"
	"gpa-tracker/app/routes/grades"
	"gpa-tracker/app/routes/projection"
	"gpa-tracker/app/routes/semesters"
	"gpa-tracker/app/routes/sessions"
	"gpa-tracker/app/services"
	"gpa-tracker/app/session"
)

// Options configures NewApp.
type Options struct {
	Store       *session.Store
	Importer    *services.Importer
	Logger      log.Logger
	StaticDir   string
	CORSOrigins string
	AccessLog   bool
}

// errorHandler renders every error as JSON.
func errorHandler(logger log.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}
		if code >= fiber.StatusInternalServerError {
			level.Error(logger).Log("msg", "request failed", "method", c.Method(), "path", c.Path(), "err", err)
		}

		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}
}

// NewApp builds the HTTP application with every route registered.
func NewApp(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(opts.Logger),
	})

	// Middleware
	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${ip} - ${method} ${path} - ${status} - ${latency}\n",
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:  opts.CORSOrigins,
		AllowMethods:  "GET,POST,PUT,OPTIONS",
		ExposeHeaders: sessions.HeaderName,
	}))
	app.Use(compress.New())

	if opts.StaticDir != "" {
		app.Static("/static", opts.StaticDir)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	grades.SetupGradesRoutes(app)

	app.Use("/api/semesters", sessions.Middleware(opts.Store, opts.Store.TTL()))
	semesters.SetupSemestersRoutes(app)
	attendance.SetupAttendanceRoutes(app, opts.Importer)
	projection.SetupProjectionRoutes(app, opts.Importer)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	return app
}
