package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrValidation           = errors.New("faltan campos obligatorios")
	ErrLastAccount          = errors.New("no se puede eliminar la última cuenta")
	ErrConfirmationRequired = errors.New("la operación requiere confirmación explícita")
	ErrNoActiveDraft        = errors.New("no hay un borrador de configuración activo")
)
