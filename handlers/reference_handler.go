package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ghorbari_backend/services"
)

type ReferenceHandler struct {
	Reference *services.ReferenceService
}

func NewReferenceHandler(reference *services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{Reference: reference}
}

// GetDivisions - GET /api/divisions
func (h *ReferenceHandler) GetDivisions(c *fiber.Ctx) error {
	divisions, err := h.Reference.Divisions(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch divisions"})
	}
	return c.JSON(fiber.Map{"data": divisions})
}

// GetDistricts - GET /api/districts?division=<id>
// Without the division parameter the full table is returned; clients
// may also filter locally.
func (h *ReferenceHandler) GetDistricts(c *fiber.Ctx) error {
	districts, err := h.Reference.Districts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch districts"})
	}

	districts = services.DistrictsOf(queryID(c, "division"), districts)
	return c.JSON(fiber.Map{"data": districts})
}
