package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"campus_backend/apperr"
)

var validate = validator.New()

// parseBody decodes and validates a JSON request body. Any validation
// failure maps to the MissingFields rejection, matching the blanket
// field-presence check at the top of every write path.
func parseBody(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return apperr.ErrMissingFields
	}
	if err := validate.Struct(dst); err != nil {
		return apperr.ErrMissingFields
	}
	return nil
}

// fail maps a service error onto the response envelope. Expected rejections
// carry their own status; anything else is logged and hidden behind a
// generic 500.
func fail(c *fiber.Ctx, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status).JSON(fiber.Map{
			"success": false,
			"message": appErr.Message,
		})
	}
	log.Println("Internal error:", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Internal server error",
	})
}

// ok writes a success envelope with the entity under the given key.
func ok(c *fiber.Ctx, status int, message, key string, value interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		key:       value,
	})
}
