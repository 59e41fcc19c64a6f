package dto

import "time"

// UpsertAccountRequest entrada para crear o editar una cuenta.
// ID vacío crea; ID presente reemplaza la cuenta existente.
type UpsertAccountRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required,min=1,max=120"`
	Role     string `json:"role" validate:"omitempty,oneof=admin manager cashier waiter"`
	Password string `json:"password" validate:"required,min=1"`
	Color    string `json:"color"`
}

// AccountResponse salida de una cuenta (sin la credencial).
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Initials  string    `json:"initials"`
	Role      string    `json:"role"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountListResponse roster completo en orden canónico.
type AccountListResponse struct {
	Items []AccountResponse `json:"items"`
}
