package dto

// AddSlotRequest entrada para agregar una etiqueta de ubicación.
type AddSlotRequest struct {
	Label string `json:"label" validate:"required,min=1,max=80"`
}

// LocationCategoryResponse salida de una categoría con sus etiquetas.
type LocationCategoryResponse struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Slots []string `json:"slots"`
}

// LocationListResponse catálogo completo.
type LocationListResponse struct {
	Items []LocationCategoryResponse `json:"items"`
}

// RolePermissionResponse conjunto de vistas habilitadas para un rol.
type RolePermissionResponse struct {
	Role  string   `json:"role"`
	Views []string `json:"views"`
}
