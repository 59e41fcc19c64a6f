package repository

import "github.com/tu-usuario/resto-pos/internal/domain/entity"

// SettingsRepository define el puerto de persistencia para la configuración
// canónica (DIP). El núcleo nunca escribe almacenamiento directamente: solo
// entrega el nuevo valor canónico para que el adaptador lo reemplace entero.
type SettingsRepository interface {
	// Get devuelve la configuración confirmada, o nil si aún no existe.
	Get() (*entity.SystemConfig, error)
	// Replace reemplaza la configuración confirmada de forma atómica.
	Replace(cfg entity.SystemConfig) error
}
