// Package handlers contains the Fiber HTTP handlers. Handlers translate
// requests into service calls and service errors into status codes; all
// domain rules live in the services.
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ghorbari_backend/services"
)

// identityFromCtx reads the caller identity the auth middleware stored
// in the request locals.
func identityFromCtx(c *fiber.Ctx) services.Identity {
	var ident services.Identity
	if v, ok := c.Locals("email").(string); ok {
		ident.Email = v
	}
	if v, ok := c.Locals("role").(string); ok {
		ident.Role = v
	}
	return ident
}

// serviceError maps a service error to an HTTP response.
func serviceError(c *fiber.Ctx, err error) error {
	var validation *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Property not found"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Not authorized"})
	case errors.Is(err, services.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "User not authenticated"})
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": validation.Message,
			"field":   validation.Field,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
