package attendance

import (
	"errors"
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"

	"gpa-tracker/app/csvimport"
	"gpa-tracker/app/models"
	"gpa-tracker/app/routes/sessions"
	"gpa-tracker/app/sanitize"
	"gpa-tracker/app/services"
	"gpa-tracker/app/session"
)

func GetAttendanceAPI(c *fiber.Ctx) error {
	n, err := sessions.SemesterParam(c)
	if err != nil {
		return err
	}
	return respondAttendance(c, sessions.Current(c), n, nil)
}

func respondAttendance(c *fiber.Ctx, sess *session.Session, n int, notice *models.Notice) error {
	views, target, err := sess.Attendance(n)
	if err != nil {
		return sessions.StateError(err)
	}
	body := fiber.Map{
		"semester":       n,
		"default_target": target,
		"attendance":     views,
		"count":          len(views),
	}
	if notice != nil {
		body["notice"] = notice
	}
	return c.JSON(body)
}

// UpdateDefaultTargetAPI sets the default target and applies it to every subject.
func UpdateDefaultTargetAPI(c *fiber.Ctx) error {
	var req struct {
		Target *sanitize.Loose `json:"target" validate:"required"`
	}
	n, err := sessions.SemesterParam(c)
	if err != nil {
		return err
	}
	if err := sessions.ParseBody(c, &req); err != nil {
		return err
	}
	sess := sessions.Current(c)
	if _, err := sess.SetDefaultTarget(n, req.Target.String()); err != nil {
		return sessions.StateError(err)
	}
	return respondAttendance(c, sess, n, nil)
}

// UpdateAttendanceAPI edits one subject's counters or target.
func UpdateAttendanceAPI(c *fiber.Ctx) error {
	var req struct {
		Conducted *sanitize.Loose `json:"conducted"`
		Attended  *sanitize.Loose `json:"attended"`
		Target    *sanitize.Loose `json:"target"`
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

	updates := []struct {
		field session.AttendanceField
		value *sanitize.Loose
	}{
		{session.FieldConducted, req.Conducted},
		{session.FieldAttended, req.Attended},
		{session.FieldTarget, req.Target},
	}
	sess := sessions.Current(c)
	applied := 0
	for _, u := range updates {
		if u.value == nil {
			continue
		}
		if err := sess.SetAttendance(n, idx, u.field, u.value.String()); err != nil {
			return sessions.StateError(err)
		}
		applied++
	}
	if applied == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "conducted, attended or target is required")
	}
	return respondAttendance(c, sess, n, nil)
}

// ImportAttendanceAPI replaces the semester's attendance with the contents of the
// well-known export. Failures leave the attendance untouched.
func ImportAttendanceAPI(c *fiber.Ctx, importer *services.Importer) error {
	n, err := sessions.SemesterParam(c)
	if err != nil {
		return err
	}
	sess := sessions.Current(c)
	matched, err := sess.ImportAttendance(n, importer.Load)
	if err != nil {
		if errors.Is(err, session.ErrUnknownSemester) {
			return sessions.StateError(err)
		}
		level.Warn(importer.Logger).Log("msg", "attendance import failed", "semester", n, "err", err)
		notice := importer.Failure(err)
		status := fiber.StatusBadGateway
		if errors.Is(err, csvimport.ErrEmpty) {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(fiber.Map{"success": false, "notice": notice})
	}

	level.Info(importer.Logger).Log("msg", "attendance imported", "semester", n, "matched", matched)
	notice := importer.Success("Attendance", matched)
	return respondAttendance(c, sess, n, &notice)
}

// ExportAttendanceAPI downloads the semester's attendance in the import format.
func ExportAttendanceAPI(c *fiber.Ctx) error {
	n, err := sessions.SemesterParam(c)
	if err != nil {
		return err
	}
	records, err := sessions.Current(c).AttendanceRecords(n)
	if err != nil {
		return sessions.StateError(err)
	}
	out, err := csvimport.ExportAttendance(records)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="semester-%d-attendance.csv"`, n))
	return c.Send(out)
}
