package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-pos/internal/application/dto"
	"github.com/tu-usuario/resto-pos/internal/application/usecase"
	"github.com/tu-usuario/resto-pos/internal/domain"
)

// AccountHandler maneja las peticiones HTTP del roster de cuentas.
type AccountHandler struct {
	uc *usecase.SettingsUseCase
}

// NewAccountHandler construye el handler inyectando el caso de uso.
func NewAccountHandler(uc *usecase.SettingsUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// List godoc
// @Summary      Listar cuentas
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  dto.AccountListResponse
// @Router       /api/accounts [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAccounts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Upsert godoc
// @Summary      Crear o editar una cuenta
// @Description  ID vacío crea una cuenta nueva; ID presente la reemplaza en su posición.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertAccountRequest  true  "Candidato de cuenta"
// @Success      200   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/accounts [post]
func (h *AccountHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpsertAccount(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y password son requeridos"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ROLE", Message: "rol desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una cuenta
// @Description  Requiere confirm=true. La última cuenta del roster no puede eliminarse.
// @Tags         accounts
// @Produce      json
// @Param        id       path   string  true   "ID de la cuenta"
// @Param        confirm  query  bool    false  "Confirmación explícita"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /api/accounts/{id} [delete]
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	confirmed := c.QueryBool("confirm", false)
	if err := h.uc.DeleteAccount(id, confirmed); err != nil {
		switch {
		case errors.Is(err, domain.ErrLastAccount):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LAST_ACCOUNT", Message: err.Error()})
		case errors.Is(err, domain.ErrConfirmationRequired):
			return c.Status(fiber.StatusPreconditionRequired).JSON(dto.ErrorResponse{Code: "CONFIRM_REQUIRED", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
