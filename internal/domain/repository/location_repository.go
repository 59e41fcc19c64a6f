package repository

import "github.com/tu-usuario/resto-pos/internal/domain/entity"

// LocationRepository define el puerto de persistencia para el catálogo de
// ubicaciones de servicio.
type LocationRepository interface {
	// List devuelve las categorías con sus etiquetas en orden de inserción.
	List() ([]entity.LocationCategory, error)
	// ReplaceAll reemplaza el catálogo completo en una sola transacción.
	ReplaceAll(categories []entity.LocationCategory) error
}
