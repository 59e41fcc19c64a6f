package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-pos/internal/application/usecase"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SettingsUC *usecase.SettingsUseCase
}

// Router registra las rutas de la API. Todas las rutas de negocio pasan por
// RoleMiddleware; la vista requerida se resuelve por recurso.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RoleMiddleware())

	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	accountHandler := NewAccountHandler(deps.SettingsUC)
	locationHandler := NewLocationHandler(deps.SettingsUC)

	// Configuración del sistema (protocolo borrador/commit)
	settings := api.Group("/settings", RequireView(entity.ViewSettings))
	settings.Get("/", settingsHandler.Get)
	settings.Post("/draft", settingsHandler.BeginEdit)
	settings.Patch("/draft", settingsHandler.ApplyField)
	settings.Post("/commit", settingsHandler.Commit)

	// Permisos por rol (solo lectura)
	api.Get("/permissions", settingsHandler.Permissions)

	// Cuentas del personal
	accounts := api.Group("/accounts", RequireView(entity.ViewSettings))
	accounts.Get("/", accountHandler.List)
	accounts.Post("/", accountHandler.Upsert)
	accounts.Delete("/:id", accountHandler.Delete)

	// Ubicaciones de servicio (mesas)
	locations := api.Group("/locations", RequireView(entity.ViewTables))
	locations.Get("/", locationHandler.List)
	locations.Post("/:id/slots", locationHandler.AddSlot)
	locations.Delete("/:id/slots/:label", locationHandler.RemoveSlot)
}
