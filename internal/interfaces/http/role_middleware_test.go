package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/resto-pos/internal/domain/entity"
	apphttp "github.com/tu-usuario/resto-pos/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye una aplicación Fiber mínima con:
//   - RoleMiddleware para extraer y validar el rol del header
//   - RequireView para autorizar el acceso a la vista
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(view string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.RoleMiddleware(),
		apphttp.RequireView(view),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// doRequest lanza una petición GET /protected con el rol indicado.
func doRequest(t *testing.T, app *fiber.App, role string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if role != "" {
		req.Header.Set(apphttp.HeaderAccountRole, role)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireView
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el rol tiene la vista en su conjunto de capacidades → HTTP 200.
func TestRequireView_AdminAccedeSettings(t *testing.T) {
	app := buildTestApp(entity.ViewSettings)
	resp := doRequest(t, app, entity.RoleAdmin)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a la vista de configuración")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
}

func TestRequireView_WaiterAccedeTables(t *testing.T) {
	app := buildTestApp(entity.ViewTables)
	resp := doRequest(t, app, entity.RoleWaiter)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"waiter debe poder acceder a la vista de mesas")
}

// Caso 2: el rol no tiene la vista → HTTP 403 Forbidden.
func TestRequireView_WaiterBloqueadoEnSettings(t *testing.T) {
	app := buildTestApp(entity.ViewSettings)
	resp := doRequest(t, app, entity.RoleWaiter)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"waiter no debe poder acceder a la configuración")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

func TestRequireView_CashierBloqueadoEnTables(t *testing.T) {
	app := buildTestApp(entity.ViewTables)
	resp := doRequest(t, app, entity.RoleCashier)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 3: sin header de rol → HTTP 401 MISSING_ROLE.
func TestRoleMiddleware_SinHeaderRetorna401(t *testing.T) {
	app := buildTestApp(entity.ViewSettings)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

// Caso 4: rol fuera del enum → HTTP 401 INVALID_ROLE.
func TestRoleMiddleware_RolDesconocidoRetorna401(t *testing.T) {
	app := buildTestApp(entity.ViewSettings)
	resp := doRequest(t, app, "superusuario")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_ROLE")
}

// ──────────────────────────────────────────────────────────────────────────────
// Conjuntos de capacidades por defecto
// ──────────────────────────────────────────────────────────────────────────────

func TestDefaultRolePermissions_AdminCubreTodo(t *testing.T) {
	perms := entity.DefaultRolePermissions()
	admin, ok := entity.PermissionForRole(perms, entity.RoleAdmin)
	require.True(t, ok)

	for _, view := range []string{
		entity.ViewDashboard, entity.ViewPOS, entity.ViewTables,
		entity.ViewInventory, entity.ViewBilling, entity.ViewReports, entity.ViewSettings,
	} {
		assert.True(t, admin.HasView(view), "admin debe tener la vista %s", view)
	}
}

func TestDefaultRolePermissions_RolInexistente(t *testing.T) {
	_, ok := entity.PermissionForRole(entity.DefaultRolePermissions(), "fantasma")
	assert.False(t, ok)
}
