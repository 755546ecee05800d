package semesters

import (
	"github.com/gofiber/fiber/v2"

	"gpa-tracker/app/models"
	"gpa-tracker/app/routes/sessions"
	"gpa-tracker/app/sanitize"
)

// GetSemestersAPI lists every semester with its SGPA, plus the CGPA over the
// semesters the user has edited.
func GetSemestersAPI(c *fiber.Ctx) error {
	list, cgpa := sessions.Current(c).Semesters()
	latest := 0
	if len(list) > 0 {
		latest = list[len(list)-1].Number
	}
	return c.JSON(fiber.Map{
		"semesters": list,
		"count":     len(list),
		"cgpa":      cgpa,
		"latest":    latest,
	})
}

func GetSemesterAPI(c *fiber.Ctx) error {
	n, err := sessions.SemesterParam(c)
	if err != nil {
		return err
	}
	sum, err := sessions.Current(c).Semester(n)
	if err != nil {
		return sessions.StateError(err)
	}
	return c.JSON(sum)
}

// UpdateSubjectAPI changes a subject's credit and/or grade.
func UpdateSubjectAPI(c *fiber.Ctx) error {
	var req struct {
		Credit *sanitize.Loose `json:"credit"`
		Grade  *string         `json:"grade"`
	}
	n, err := sessions.SemesterParam(c)
	if err != nil {
		return err
	}
	idx, err := sessions.IndexParam(c)
	if err != nil {
		return err
	}
	if err := sessions.ParseBody(c, &req); err != nil {
		return err
	}
	if req.Credit == nil && req.Grade == nil {
		return fiber.NewError(fiber.StatusBadRequest, "credit or grade is required")
	}

	sess := sessions.Current(c)
	if req.Grade != nil {
		g, err := models.ParseGrade(*req.Grade)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := sess.SetGrade(n, idx, g); err != nil {
			return sessions.StateError(err)
		}
	}
	if req.Credit != nil {
		if err := sess.SetCredit(n, idx, req.Credit.String()); err != nil {
			return sessions.StateError(err)
		}
	}

	sum, err := sess.Semester(n)
	if err != nil {
		return sessions.StateError(err)
	}
	return c.JSON(sum)
}

// ClearSemesterAPI resets every grade of the semester to F.
func ClearSemesterAPI(c *fiber.Ctx) error {
	n, err := sessions.SemesterParam(c)
	if err != nil {
		return err
	}
	sess := sessions.Current(c)
	if err := sess.Clear(n); err != nil {
		return sessions.StateError(err)
	}
	sum, err := sess.Semester(n)
	if err != nil {
		return sessions.StateError(err)
	}
	return c.JSON(sum)
}
