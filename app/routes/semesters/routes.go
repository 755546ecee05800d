package semesters

import "github.com/gofiber/fiber/v2"

// SetupSemestersRoutes registers the grade entry views. The session middleware
// must already cover /api/semesters.
func SetupSemestersRoutes(app *fiber.App) {
	api := app.Group("/api/semesters")
	api.Get("/", GetSemestersAPI)
	api.Get("/:semester", GetSemesterAPI)
	api.Put("/:semester/subjects/:index", UpdateSubjectAPI)
	api.Post("/:semester/clear", ClearSemesterAPI)
}
