package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tu-usuario/resto-pos/internal/application/dto"
	"github.com/tu-usuario/resto-pos/internal/application/ports"
	"github.com/tu-usuario/resto-pos/internal/domain"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
	"github.com/tu-usuario/resto-pos/internal/domain/repository"
	"github.com/tu-usuario/resto-pos/internal/domain/settings"
)

// SettingsUseCase orquesta las ediciones del usuario contra el núcleo de
// configuración (borrador/commit), el registro de cuentas y el catálogo de
// ubicaciones. Cada acción toca exactamente un componente, persiste el nuevo
// valor canónico vía el puerto correspondiente y dispara una notificación.
type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
	accountRepo  repository.AccountRepository
	locationRepo repository.LocationRepository
	notifier     ports.Notifier

	// El borrador pertenece en exclusiva a la sesión de edición activa.
	// El mutex serializa las mutaciones como exige el modelo cooperativo.
	mu    sync.Mutex
	draft *entity.SystemConfig
}

// NewSettingsUseCase construye el caso de uso con sus puertos.
func NewSettingsUseCase(
	settingsRepo repository.SettingsRepository,
	accountRepo repository.AccountRepository,
	locationRepo repository.LocationRepository,
	notifier ports.Notifier,
) *SettingsUseCase {
	return &SettingsUseCase{
		settingsRepo: settingsRepo,
		accountRepo:  accountRepo,
		locationRepo: locationRepo,
		notifier:     notifier,
	}
}

// Bootstrap siembra los valores iniciales cuando el almacenamiento está
// vacío: configuración por defecto, cuenta administradora y categorías de
// ubicación base. Idempotente: no toca datos ya existentes.
func (uc *SettingsUseCase) Bootstrap() error {
	cfg, err := uc.settingsRepo.Get()
	if err != nil {
		return fmt.Errorf("leer configuración: %w", err)
	}
	if cfg == nil {
		if err := uc.settingsRepo.Replace(entity.DefaultSystemConfig(time.Now())); err != nil {
			return fmt.Errorf("sembrar configuración: %w", err)
		}
	}

	accounts, err := uc.accountRepo.List()
	if err != nil {
		return fmt.Errorf("leer cuentas: %w", err)
	}
	if len(accounts) == 0 {
		seeded, _, err := settings.Upsert(nil, settings.UpsertInput{
			Name:     "Administrador",
			Role:     entity.RoleAdmin,
			Password: "admin",
			Color:    entity.ProfileColors[0],
		}, time.Now())
		if err != nil {
			return fmt.Errorf("sembrar cuenta admin: %w", err)
		}
		if err := uc.accountRepo.ReplaceAll(seeded); err != nil {
			return fmt.Errorf("persistir cuenta admin: %w", err)
		}
	}

	categories, err := uc.locationRepo.List()
	if err != nil {
		return fmt.Errorf("leer ubicaciones: %w", err)
	}
	if len(categories) == 0 {
		base := []entity.LocationCategory{
			{ID: "dining", Name: "Salón principal", Slots: []string{"Mesa 1", "Mesa 2", "Mesa 3", "Mesa 4"}},
			{ID: "terrace", Name: "Terraza", Slots: []string{"Terraza 1", "Terraza 2"}},
		}
		if err := uc.locationRepo.ReplaceAll(base); err != nil {
			return fmt.Errorf("sembrar ubicaciones: %w", err)
		}
	}
	return nil
}

// ── Configuración: protocolo borrador/commit ─────────────────────────────────

// GetConfig devuelve la configuración confirmada.
func (uc *SettingsUseCase) GetConfig() (*dto.SystemConfigResponse, error) {
	cfg, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, domain.ErrNotFound
	}
	return toConfigResponse(*cfg), nil
}

// BeginEdit abre una sesión de edición copiando la configuración confirmada
// a un borrador independiente. Un borrador previo abandonado se descarta.
func (uc *SettingsUseCase) BeginEdit() (*dto.SystemConfigResponse, error) {
	cfg, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, domain.ErrNotFound
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	draft := settings.BeginEdit(*cfg)
	uc.draft = &draft
	return toConfigResponse(draft), nil
}

// ApplyField actualiza un campo del borrador activo. Nunca toca el valor
// confirmado.
func (uc *SettingsUseCase) ApplyField(in dto.ApplyFieldRequest) (*dto.SystemConfigResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.draft == nil {
		return nil, domain.ErrNoActiveDraft
	}
	next, err := settings.ApplyField(*uc.draft, in.Field, in.Value)
	if err != nil {
		return nil, err
	}
	uc.draft = &next
	return toConfigResponse(next), nil
}

// Commit reemplaza la configuración confirmada con el contenido íntegro del
// borrador (todo-o-nada) y notifica el éxito. Tras el commit, el siguiente
// BeginEdit parte del valor recién confirmado.
func (uc *SettingsUseCase) Commit() (*dto.SystemConfigResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.draft == nil {
		return nil, domain.ErrNoActiveDraft
	}
	committed := settings.Commit(*uc.draft, time.Now())
	if err := uc.settingsRepo.Replace(committed); err != nil {
		return nil, fmt.Errorf("reemplazar configuración: %w", err)
	}
	uc.draft = nil
	uc.notify("Éxito", "Configuración actualizada.", ports.SeveritySuccess)
	return toConfigResponse(committed), nil
}

// ── Cuentas ──────────────────────────────────────────────────────────────────

// ListAccounts devuelve el roster en su orden canónico.
func (uc *SettingsUseCase) ListAccounts() (*dto.AccountListResponse, error) {
	accounts, err := uc.accountRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		items = append(items, *toAccountResponse(a))
	}
	return &dto.AccountListResponse{Items: items}, nil
}

// UpsertAccount crea o edita una cuenta vía el registro y persiste el roster
// nuevo completo. Ante un error de validación el roster no cambia.
func (uc *SettingsUseCase) UpsertAccount(in dto.UpsertAccountRequest) (*dto.AccountResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	accounts, err := uc.accountRepo.List()
	if err != nil {
		return nil, err
	}
	next, saved, err := settings.Upsert(accounts, settings.UpsertInput{
		ID:       in.ID,
		Name:     in.Name,
		Role:     in.Role,
		Password: in.Password,
		Color:    in.Color,
	}, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.accountRepo.ReplaceAll(next); err != nil {
		return nil, fmt.Errorf("reemplazar roster: %w", err)
	}
	uc.notify("Éxito", "Cuenta guardada.", ports.SeveritySuccess)
	return toAccountResponse(saved), nil
}

// DeleteAccount elimina una cuenta. Rechaza la eliminación de la última
// cuenta (notifica una advertencia) y exige confirmación explícita del
// llamador; una confirmación negativa deja todo el estado sin cambios.
// Un ID inexistente es un no-op silencioso.
func (uc *SettingsUseCase) DeleteAccount(id string, confirmed bool) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	accounts, err := uc.accountRepo.List()
	if err != nil {
		return err
	}
	next, err := settings.Delete(accounts, id)
	if err != nil {
		uc.notify("Advertencia", "No se puede eliminar la última cuenta.", ports.SeverityWarning)
		return err
	}
	if len(next) == len(accounts) {
		return nil // ID desconocido: nada que eliminar
	}
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	if err := uc.accountRepo.ReplaceAll(next); err != nil {
		return fmt.Errorf("reemplazar roster: %w", err)
	}
	uc.notify("Éxito", "Cuenta eliminada.", ports.SeveritySuccess)
	return nil
}

// ── Ubicaciones ──────────────────────────────────────────────────────────────

// ListLocations devuelve el catálogo de categorías con sus etiquetas.
func (uc *SettingsUseCase) ListLocations() (*dto.LocationListResponse, error) {
	categories, err := uc.locationRepo.List()
	if err != nil {
		return nil, err
	}
	return toLocationList(categories), nil
}

// AddSlot agrega una etiqueta al final de la categoría indicada. Una
// categoría desconocida devuelve el catálogo sin cambios, sin error.
func (uc *SettingsUseCase) AddSlot(categoryID, label string) (*dto.LocationListResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	categories, err := uc.locationRepo.List()
	if err != nil {
		return nil, err
	}
	next := settings.AddSlot(categories, categoryID, label)
	if !catalogChanged(categories, next) {
		return toLocationList(categories), nil
	}
	if err := uc.locationRepo.ReplaceAll(next); err != nil {
		return nil, fmt.Errorf("reemplazar catálogo: %w", err)
	}
	uc.notify("Éxito", "Ubicación agregada.", ports.SeveritySuccess)
	return toLocationList(next), nil
}

// RemoveSlot quita todas las ocurrencias de la etiqueta en la categoría.
// Categoría desconocida o etiqueta ausente son no-ops silenciosos.
func (uc *SettingsUseCase) RemoveSlot(categoryID, label string) (*dto.LocationListResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	categories, err := uc.locationRepo.List()
	if err != nil {
		return nil, err
	}
	next := settings.RemoveSlot(categories, categoryID, label)
	if !catalogChanged(categories, next) {
		return toLocationList(categories), nil
	}
	if err := uc.locationRepo.ReplaceAll(next); err != nil {
		return nil, fmt.Errorf("reemplazar catálogo: %w", err)
	}
	uc.notify("Éxito", "Ubicación eliminada.", ports.SeveritySuccess)
	return toLocationList(next), nil
}

// Permissions devuelve los conjuntos de capacidades por rol (solo lectura).
func (uc *SettingsUseCase) Permissions() []dto.RolePermissionResponse {
	perms := entity.DefaultRolePermissions()
	out := make([]dto.RolePermissionResponse, 0, len(perms))
	for _, p := range perms {
		out = append(out, dto.RolePermissionResponse{Role: p.Role, Views: p.Views})
	}
	return out
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (uc *SettingsUseCase) notify(title, message, severity string) {
	if uc.notifier == nil {
		return
	}
	uc.notifier.Notify(context.Background(), ports.Notification{
		Title:    title,
		Message:  message,
		Severity: severity,
	})
}

func catalogChanged(before, after []entity.LocationCategory) bool {
	if len(before) != len(after) {
		return true
	}
	for i := range before {
		if len(before[i].Slots) != len(after[i].Slots) {
			return true
		}
	}
	return false
}

func toConfigResponse(c entity.SystemConfig) *dto.SystemConfigResponse {
	return &dto.SystemConfigResponse{
		CompanyName:        c.CompanyName,
		CompanySlogan:      c.CompanySlogan,
		Address:            c.Address,
		Phone:              c.Phone,
		RegistrationNumber: c.RegistrationNumber,
		TaxRate:            c.TaxRate,
		InvoicePrefix:      c.InvoicePrefix,
		NextInvoiceNumber:  c.NextInvoiceNumber,
		Currency:           c.Currency,
		CurrencySymbol:     c.CurrencySymbol,
		Timezone:           c.Timezone,
		Language:           c.Language,
		Theme:              c.Theme,
		ShowQR:             c.ShowQR,
		ShowAddress:        c.ShowAddress,
		ShowPhone:          c.ShowPhone,
		AutoPrint:          c.AutoPrint,
		UpdatedAt:          c.UpdatedAt,
	}
}

func toAccountResponse(a entity.Account) *dto.AccountResponse {
	return &dto.AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Initials:  a.Initials,
		Role:      a.Role,
		Color:     a.Color,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toLocationList(categories []entity.LocationCategory) *dto.LocationListResponse {
	items := make([]dto.LocationCategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, dto.LocationCategoryResponse{ID: c.ID, Name: c.Name, Slots: c.Slots})
	}
	return &dto.LocationListResponse{Items: items}
}
