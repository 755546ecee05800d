package sessions

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gpa-tracker/app/session"
)

var validate = validator.New()

// SemesterParam reads the :semester route parameter.
func SemesterParam(c *fiber.Ctx) (int, error) {
	n, err := strconv.Atoi(c.Params("semester"))
	if err != nil || n < 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid semester number")
	}
	return n, nil
}

// IndexParam reads the :index route parameter.
func IndexParam(c *fiber.Ctx) (int, error) {
	n, err := strconv.Atoi(c.Params("index"))
	if err != nil || n < 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid subject index")
	}
	return n, nil
}

// ParseBody decodes and validates a JSON request body.
func ParseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

// StateError maps session errors onto HTTP errors.
func StateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, session.ErrUnknownSemester), errors.Is(err, session.ErrIndexOutOfRange):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
}
