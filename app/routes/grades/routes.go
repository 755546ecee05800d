package grades

import (
	"github.com/gofiber/fiber/v2"

	"gpa-tracker/app/models"
)

// SetupGradesRoutes registers the grading scheme reference.
func SetupGradesRoutes(app *fiber.App) {
	api := app.Group("/api/grades")
	api.Get("/scale", GetScaleAPI)
}

// GetScaleAPI returns the grading scheme from S down to F.
func GetScaleAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"grades":        models.Scale,
		"target_grades": models.TargetGrades(),
		"credits":       []int{1, 2, 3, 4, 5},
		"note":          "Total = CIE + ESE (out of 100), ESE minimum: 20/50 (40%)",
	})
}
