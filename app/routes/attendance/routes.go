package attendance

import (
	"github.com/gofiber/fiber/v2"

	"gpa-tracker/app/services"
)

// SetupAttendanceRoutes registers the per-semester attendance tracker. The session
// middleware must already cover /api/semesters.
func SetupAttendanceRoutes(app *fiber.App, importer *services.Importer) {
	api := app.Group("/api/semesters/:semester/attendance")
	api.Get("/", GetAttendanceAPI)
	api.Put("/target", UpdateDefaultTargetAPI)
	api.Post("/import", func(c *fiber.Ctx) error { return ImportAttendanceAPI(c, importer) })
	api.Get("/export", ExportAttendanceAPI)
	api.Put("/:index", UpdateAttendanceAPI)
}
