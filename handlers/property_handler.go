package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"ghorbari_backend/services"
)

type PropertyHandler struct {
	Query    *services.PropertyQueryService
	Mutation *services.PropertyMutationService
}

func NewPropertyHandler(query *services.PropertyQueryService, mutation *services.PropertyMutationService) *PropertyHandler {
	return &PropertyHandler{Query: query, Mutation: mutation}
}

// GetProperties - GET /api/properties?sortOrder=&propertyType=&district=&division=
// Buyers browse every listing; sellers are implicitly scoped to their
// own listings, matching the seller dashboard behaviour.
func (h *PropertyHandler) GetProperties(c *fiber.Ctx) error {
	ident := identityFromCtx(c)
	if ident.Email == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "User not authenticated"})
	}

	ownerScope := ""
	if ident.Role == services.RoleSeller {
		ownerScope = ident.Email
	}

	filters := services.ListFilters{
		PropertyType: c.Query("propertyType"),
		DivisionID:   queryID(c, "division"),
		DistrictID:   queryID(c, "district"),
		SortOrder:    c.Query("sortOrder"),
	}

	properties, status, err := h.Query.List(c.Context(), ownerScope, filters)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":    status.Message(),
		"properties": properties,
	})
}

// GetMyProperties - GET /api/seller/properties
// The seller's own listings, unfiltered. Responds 404 when the seller
// has no listings at all.
func (h *PropertyHandler) GetMyProperties(c *fiber.Ctx) error {
	ident := identityFromCtx(c)
	if ident.Email == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "User not authenticated"})
	}

	properties, status, err := h.Query.List(c.Context(), ident.Email, services.ListFilters{})
	if err != nil {
		return serviceError(c, err)
	}
	if status == services.ListNoProperties {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": status.Message()})
	}

	return c.JSON(fiber.Map{
		"message":    status.Message(),
		"properties": properties,
	})
}

// CreateProperty - POST /api/seller/properties
func (h *PropertyHandler) CreateProperty(c *fiber.Ctx) error {
	var input services.CreatePropertyInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	property, err := h.Mutation.Create(c.Context(), identityFromCtx(c), input)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Property created successfully",
		"data":    property,
	})
}

// UpdateProperty - PUT /api/seller/properties/:id
func (h *PropertyHandler) UpdateProperty(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Property not found"})
	}

	var input services.UpdatePropertyInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	property, err := h.Mutation.Update(c.Context(), identityFromCtx(c), uint(id), input)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Property updated successfully",
		"data":    property,
	})
}

// DeleteProperty - DELETE /api/seller/properties/:id
func (h *PropertyHandler) DeleteProperty(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Property not found"})
	}

	if err := h.Mutation.Delete(c.Context(), identityFromCtx(c), uint(id)); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Property deleted successfully"})
}

func queryID(c *fiber.Ctx, key string) uint {
	v := c.Query(key)
	if v == "" {
		return 0
	}
	id, err := strconv.Atoi(v)
	if err != nil || id < 0 {
		return 0
	}
	return uint(id)
}
