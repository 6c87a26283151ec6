package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sales-dashboard/internal/application/dto"
	"github.com/jhoicas/sales-dashboard/internal/application/inventory"
)

// SettingsHandler ajustes del usuario: umbral de reorden global y categorías.
type SettingsHandler struct {
	uc *inventory.InventoryUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *inventory.InventoryUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// ReorderLevel PUT /api/settings/reorder-level
func (h *SettingsHandler) ReorderLevel(c *fiber.Ctx) error {
	var in dto.ReorderLevelRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetGlobalReorderLevel(c.Context(), GetSessionID(c), in.Level)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Categories POST /api/settings/categories
func (h *SettingsHandler) Categories(c *fiber.Ctx) error {
	var in dto.CategoriesRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SaveCategories(c.Context(), GetSessionID(c), in.Categories)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
