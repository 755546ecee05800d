package projection

import (
	"errors"

	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"

	"gpa-tracker/app/csvimport"
	"gpa-tracker/app/models"
	"gpa-tracker/app/routes/sessions"
	"gpa-tracker/app/sanitize"
	"gpa-tracker/app/services"
	"gpa-tracker/app/session"
)

func GetProjectionAPI(c *fiber.Ctx) error {
	n, err := sessions.SemesterParam(c)
	if err != nil {
		return err
	}
	return respondProjection(c, sessions.Current(c), n, nil)
}

func respondProjection(c *fiber.Ctx, sess *session.Session, n int, notice *models.Notice) error {
	views, err := sess.Projection(n)
	if err != nil {
		return sessions.StateError(err)
	}
	body := fiber.Map{
		"semester":   n,
		"projection": views,
		"count":      len(views),
	}
	if notice != nil {
		body["notice"] = notice
	}
	return c.JSON(body)
}

// UpdateProjectionAPI changes a subject's CIE marks and/or target grade.
func UpdateProjectionAPI(c *fiber.Ctx) error {
	var req struct {
		CIEMarks    *sanitize.Loose `json:"cie_marks"`
		TargetGrade *string         `json:"target_grade"`
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
	if req.CIEMarks == nil && req.TargetGrade == nil {
		return fiber.NewError(fiber.StatusBadRequest, "cie_marks or target_grade is required")
	}

	sess := sessions.Current(c)
	if req.TargetGrade != nil {
		g, err := models.ParseGrade(*req.TargetGrade)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := sess.SetTargetGrade(n, idx, g); err != nil {
			return sessions.StateError(err)
		}
	}
	if req.CIEMarks != nil {
		if err := sess.SetCIEMarks(n, idx, req.CIEMarks.String()); err != nil {
			return sessions.StateError(err)
		}
	}
	return respondProjection(c, sess, n, nil)
}

// ImportMarksAPI merges internal marks from the well-known export into the
// projection rows. Unmatched rows are ignored.
func ImportMarksAPI(c *fiber.Ctx, importer *services.Importer) error {
	n, err := sessions.SemesterParam(c)
	if err != nil {
		return err
	}
	sess := sessions.Current(c)
	matched, err := sess.ImportMarks(n, importer.Load)
	if err != nil {
		if errors.Is(err, session.ErrUnknownSemester) {
			return sessions.StateError(err)
		}
		level.Warn(importer.Logger).Log("msg", "marks import failed", "semester", n, "err", err)
		status := fiber.StatusBadGateway
		if errors.Is(err, csvimport.ErrEmpty) {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(fiber.Map{"success": false, "notice": importer.Failure(err)})
	}

	level.Info(importer.Logger).Log("msg", "marks imported", "semester", n, "matched", matched)
	notice := importer.Success("Marks", matched)
	return respondProjection(c, sess, n, &notice)
}
