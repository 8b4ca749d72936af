package handlers

import (
	"database/sql"
	"errors"

	applog "doacoesonline/internal/log"
	"doacoesonline/internal/services"

	"github.com/gofiber/fiber/v2"
)

// writeErr maps business errors to HTTP statuses. Anything unrecognized is
// logged and reported as a generic 500 without internal detail.
func writeErr(c *fiber.Ctx, action string, err error) error {
	var status int
	switch {
	case errors.Is(err, services.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrInsufficientQuantity):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrBadCreds):
		status = fiber.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, services.ErrNotFound), errors.Is(err, sql.ErrNoRows):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		status = fiber.StatusConflict
	default:
		applog.Error(c, action, err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "something went wrong, please try again",
		})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
