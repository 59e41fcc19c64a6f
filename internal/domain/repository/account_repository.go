package repository

import "github.com/tu-usuario/resto-pos/internal/domain/entity"

// AccountRepository define el puerto de persistencia para el roster de
// cuentas. Las mutaciones siguen el patrón de reemplazo de colección
// completa (copy-on-write espejado a almacenamiento).
type AccountRepository interface {
	// List devuelve el roster en su orden canónico.
	List() ([]entity.Account, error)
	// ReplaceAll reemplaza el roster completo en una sola transacción,
	// preservando el orden recibido.
	ReplaceAll(accounts []entity.Account) error
}
