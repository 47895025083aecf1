package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/campusbridge/placement-portal/src/lib"
	"github.com/campusbridge/placement-portal/src/services"
)

// parseIDParam reads a numeric route parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// serviceError translates a core operation error into the structured failure
// response shape. Unknown errors are logged and reported as a server error;
// nothing propagates as an unhandled fault.
func serviceError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError

	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse(false, "Not found"))
	case errors.Is(err, services.ErrSelfAction):
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, err.Error()))
	case errors.Is(err, services.ErrUnauthorized):
		return c.Status(fiber.StatusForbidden).JSON(lib.MessageResponse(false, "Not authorized"))
	case errors.Is(err, services.ErrAlreadyResolved):
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, "This request has already been processed"))
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(false, validationErr.Error()))
	default:
		lib.Log.WithError(err).Error("unhandled service error")
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse(false, "Server error"))
	}
}
