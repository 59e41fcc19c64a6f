package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-pos/internal/application/dto"
	"github.com/tu-usuario/resto-pos/internal/application/usecase"
	"github.com/tu-usuario/resto-pos/internal/domain"
)

// SettingsHandler maneja las peticiones HTTP de configuración del sistema.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler inyectando el caso de uso.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener configuración confirmada
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.SystemConfigResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetConfig()
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "configuración no inicializada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// BeginEdit godoc
// @Summary      Abrir un borrador de edición de la configuración
// @Tags         settings
// @Produce      json
// @Success      201  {object}  dto.SystemConfigResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/settings/draft [post]
func (h *SettingsHandler) BeginEdit(c *fiber.Ctx) error {
	out, err := h.uc.BeginEdit()
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "configuración no inicializada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ApplyField godoc
// @Summary      Actualizar un campo del borrador activo
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyFieldRequest  true  "Campo y valor"
// @Success      200   {object}  dto.SystemConfigResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/settings/draft [patch]
func (h *SettingsHandler) ApplyField(c *fiber.Ctx) error {
	var in dto.ApplyFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Field == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "field es requerido"})
	}
	out, err := h.uc.ApplyField(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoActiveDraft):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_DRAFT", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_FIELD", Message: "campo desconocido: " + in.Field})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Commit godoc
// @Summary      Confirmar el borrador activo (todo-o-nada)
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.SystemConfigResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/settings/commit [post]
func (h *SettingsHandler) Commit(c *fiber.Ctx) error {
	out, err := h.uc.Commit()
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveDraft) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_DRAFT", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Permissions godoc
// @Summary      Conjuntos de capacidades por rol (solo lectura)
// @Tags         settings
// @Produce      json
// @Success      200  {array}  dto.RolePermissionResponse
// @Router       /api/permissions [get]
func (h *SettingsHandler) Permissions(c *fiber.Ctx) error {
	return c.JSON(h.uc.Permissions())
}
