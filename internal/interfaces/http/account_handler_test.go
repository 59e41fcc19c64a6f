package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/resto-pos/internal/application/ports"
	"github.com/tu-usuario/resto-pos/internal/application/usecase"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
	apphttp "github.com/tu-usuario/resto-pos/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para montar la API completa sin PostgreSQL ni broker.
// ──────────────────────────────────────────────────────────────────────────────

type memSettingsRepo struct{ cfg *entity.SystemConfig }

func (m *memSettingsRepo) Get() (*entity.SystemConfig, error) {
	if m.cfg == nil {
		return nil, nil
	}
	c := *m.cfg
	return &c, nil
}
func (m *memSettingsRepo) Replace(cfg entity.SystemConfig) error { m.cfg = &cfg; return nil }

type memAccountRepo struct{ accounts []entity.Account }

func (m *memAccountRepo) List() ([]entity.Account, error) {
	out := make([]entity.Account, len(m.accounts))
	copy(out, m.accounts)
	return out, nil
}
func (m *memAccountRepo) ReplaceAll(accounts []entity.Account) error {
	m.accounts = accounts
	return nil
}

type memLocationRepo struct{ categories []entity.LocationCategory }

func (m *memLocationRepo) List() ([]entity.LocationCategory, error) { return m.categories, nil }
func (m *memLocationRepo) ReplaceAll(categories []entity.LocationCategory) error {
	m.categories = categories
	return nil
}

type silentNotifier struct{}

func (silentNotifier) Notify(context.Context, ports.Notification) {}

func buildAPI(accounts *memAccountRepo) *fiber.App {
	uc := usecase.NewSettingsUseCase(
		&memSettingsRepo{}, accounts, &memLocationRepo{}, silentNotifier{},
	)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{SettingsUC: uc})
	return app
}

func adminRequest(method, target string, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(apphttp.HeaderAccountRole, entity.RoleAdmin)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminación de cuentas: puerta de confirmación e invariante de última cuenta
// ──────────────────────────────────────────────────────────────────────────────

func twoAccounts() *memAccountRepo {
	return &memAccountRepo{accounts: []entity.Account{
		{ID: "U1", Name: "Ana B", Role: entity.RoleAdmin, Password: "s1"},
		{ID: "U2", Name: "Pedro Gómez", Role: entity.RoleWaiter, Password: "s2"},
	}}
}

// Sin confirm=true el servidor exige la confirmación y no toca el roster.
func TestDeleteAccount_SinConfirmacionRetorna428(t *testing.T) {
	repo := twoAccounts()
	app := buildAPI(repo)

	resp, err := app.Test(adminRequest(http.MethodDelete, "/api/accounts/U2", ""), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)
	assert.Len(t, repo.accounts, 2, "una confirmación ausente deja el roster sin cambios")
}

func TestDeleteAccount_ConfirmadaRetorna204(t *testing.T) {
	repo := twoAccounts()
	app := buildAPI(repo)

	resp, err := app.Test(adminRequest(http.MethodDelete, "/api/accounts/U2?confirm=true", ""), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Len(t, repo.accounts, 1)
	assert.Equal(t, "U1", repo.accounts[0].ID)
}

func TestDeleteAccount_UltimaCuentaRetorna409(t *testing.T) {
	repo := &memAccountRepo{accounts: []entity.Account{
		{ID: "U1", Name: "Ana B", Role: entity.RoleAdmin, Password: "s1"},
	}}
	app := buildAPI(repo)

	resp, err := app.Test(adminRequest(http.MethodDelete, "/api/accounts/U1?confirm=true", ""), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Len(t, repo.accounts, 1)
}

// Upsert por HTTP: validación y alta.
func TestUpsertAccount_Validacion(t *testing.T) {
	app := buildAPI(twoAccounts())

	resp, err := app.Test(adminRequest(http.MethodPost, "/api/accounts/", `{"name":"","password":"x"}`), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpsertAccount_Alta(t *testing.T) {
	repo := twoAccounts()
	app := buildAPI(repo)

	resp, err := app.Test(adminRequest(http.MethodPost, "/api/accounts/", `{"name":"Carl D","password":"x"}`), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, repo.accounts, 3)
}
