package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-pos/internal/application/dto"
	"github.com/tu-usuario/resto-pos/internal/application/usecase"
)

// LocationHandler maneja las peticiones HTTP del catálogo de ubicaciones.
type LocationHandler struct {
	uc *usecase.SettingsUseCase
}

// NewLocationHandler construye el handler inyectando el caso de uso.
func NewLocationHandler(uc *usecase.SettingsUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías de ubicación con sus etiquetas
// @Tags         locations
// @Produce      json
// @Success      200  {object}  dto.LocationListResponse
// @Router       /api/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListLocations()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AddSlot godoc
// @Summary      Agregar una etiqueta al final de una categoría
// @Description  Una categoría desconocida devuelve el catálogo sin cambios (no-op).
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID de la categoría"
// @Param        body  body  dto.AddSlotRequest  true  "Etiqueta"
// @Success      200   {object}  dto.LocationListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/locations/{id}/slots [post]
func (h *LocationHandler) AddSlot(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	var in dto.AddSlotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Label == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "label es requerido"})
	}
	out, err := h.uc.AddSlot(categoryID, in.Label)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RemoveSlot godoc
// @Summary      Quitar una etiqueta de una categoría
// @Description  Quita todas las ocurrencias de la etiqueta. Etiqueta ausente o categoría desconocida: no-op.
// @Tags         locations
// @Produce      json
// @Param        id     path  string  true  "ID de la categoría"
// @Param        label  path  string  true  "Etiqueta a quitar"
// @Success      200    {object}  dto.LocationListResponse
// @Router       /api/locations/{id}/slots/{label} [delete]
func (h *LocationHandler) RemoveSlot(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	label, err := url.PathUnescape(c.Params("label"))
	if err != nil || label == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "label es requerido"})
	}
	out, err := h.uc.RemoveSlot(categoryID, label)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
