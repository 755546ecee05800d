package projection

import (
	"github.com/gofiber/fiber/v2"

	"gpa-tracker/app/services"
)

// SetupProjectionRoutes registers the ESE marks calculator. The session
// middleware must already cover /api/semesters.
func SetupProjectionRoutes(app *fiber.App, importer *services.Importer) {
	api := app.Group("/api/semesters/:semester/projection")
	api.Get("/", GetProjectionAPI)
	api.Post("/import", func(c *fiber.Ctx) error { return ImportMarksAPI(c, importer) })
	api.Put("/:index", UpdateProjectionAPI)
}
