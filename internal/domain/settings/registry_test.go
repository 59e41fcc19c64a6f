package settings_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/resto-pos/internal/domain"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
	"github.com/tu-usuario/resto-pos/internal/domain/settings"
)

// ──────────────────────────────────────────────────────────────────────────────
// Registro de cuentas: unicidad de identificadores, protección de la última
// cuenta, semántica upsert y copy-on-write del roster.
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

func buildRoster() []entity.Account {
	return []entity.Account{
		{ID: "U1", Name: "Ana B", Initials: "AB", Role: entity.RoleAdmin, Password: "s1", Color: entity.ProfileColors[0]},
		{ID: "U2", Name: "Pedro Gómez", Initials: "PG", Role: entity.RoleWaiter, Password: "s2", Color: entity.ProfileColors[1]},
	}
}

// ── Validación ───────────────────────────────────────────────────────────────

// Candidatos sin name o sin password: el roster vuelve sin cambios.
func TestUpsert_CamposObligatorios(t *testing.T) {
	roster := buildRoster()

	cases := []settings.UpsertInput{
		{Name: "", Password: "x"},
		{Name: "   ", Password: "x"},
		{Name: "Carl D", Password: ""},
	}
	for _, in := range cases {
		out, _, err := settings.Upsert(roster, in, testNow)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, roster, out, "ante validación fallida el roster no cambia")
	}
}

// ── Alta ─────────────────────────────────────────────────────────────────────

// Escenario del contrato: roster [U1], upsert {name:"Carl D", password:"x"}
// produce un roster de 2 con iniciales CD e id nuevo distinto de U1.
func TestUpsert_AltaGeneraIDEIniciales(t *testing.T) {
	roster := buildRoster()[:1]

	out, saved, err := settings.Upsert(roster, settings.UpsertInput{Name: "Carl D", Password: "x"}, testNow)
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, "CD", saved.Initials)
	assert.NotEmpty(t, saved.ID)
	assert.NotEqual(t, "U1", saved.ID, "el id generado no debe chocar con los existentes")
	assert.Equal(t, saved, out[1], "la cuenta nueva se agrega al final")
	assert.Len(t, roster, 1, "el roster de entrada no se muta")
}

func TestUpsert_DefaultsRolYColor(t *testing.T) {
	out, saved, err := settings.Upsert(nil, settings.UpsertInput{Name: "Sidi Mohamed", Password: "x"}, testNow)
	require.NoError(t, err)

	assert.Equal(t, entity.RoleWaiter, saved.Role, "rol por defecto waiter")
	assert.Equal(t, entity.ProfileColors[1], saved.Color, "color por defecto: segunda entrada de la paleta")
	assert.Len(t, out, 1)
}

func TestUpsert_RolDesconocido(t *testing.T) {
	roster := buildRoster()
	out, _, err := settings.Upsert(roster, settings.UpsertInput{Name: "X Y", Password: "x", Role: "superadmin"}, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, roster, out)
}

func TestUpsert_IDsUnicosEnAltasSucesivas(t *testing.T) {
	var roster []entity.Account
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		var err error
		roster, _, err = settings.Upsert(roster, settings.UpsertInput{Name: "Ana B", Password: "x"}, testNow)
		require.NoError(t, err)
	}
	for _, a := range roster {
		assert.False(t, seen[a.ID], "id duplicado: %s", a.ID)
		seen[a.ID] = true
	}
}

// ── Edición ──────────────────────────────────────────────────────────────────

// Con ID existente la cuenta se reemplaza en su posición y las iniciales se
// recalculan (un renombre refresca las iniciales).
func TestUpsert_EdicionPreservaPosicionYRecalculaIniciales(t *testing.T) {
	roster := buildRoster()

	out, saved, err := settings.Upsert(roster, settings.UpsertInput{
		ID: "U1", Name: "Zara Khadija", Password: "nuevo", Role: entity.RoleManager,
	}, testNow)
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, "U1", out[0].ID, "la posición en el roster se conserva")
	assert.Equal(t, "ZK", saved.Initials, "las iniciales se recalculan en cada upsert")
	assert.Equal(t, entity.RoleManager, out[0].Role)
	assert.Equal(t, "Ana B", roster[0].Name, "el roster de entrada no se muta")
}

// ── Iniciales ────────────────────────────────────────────────────────────────

func TestInitials_Propiedades(t *testing.T) {
	cases := map[string]string{
		"Ana B":             "AB",
		"Carl D":            "CD",
		"madonna":           "M",
		"Juan Carlos Pérez": "JC",
		"  espacios   extra  ": "EE",
		"ángela maría":      "ÁM",
	}
	for name, want := range cases {
		got := settings.Initials(name)
		assert.Equal(t, want, got, "iniciales de %q", name)
		assert.LessOrEqual(t, len([]rune(got)), 2, "máximo 2 caracteres")
		assert.Equal(t, strings.ToUpper(got), got, "siempre en mayúsculas")
	}
}

// Idempotencia: re-upsert del mismo nombre produce las mismas iniciales.
func TestInitials_IdempotenteBajoReUpsert(t *testing.T) {
	roster, first, err := settings.Upsert(nil, settings.UpsertInput{Name: "Carl D", Password: "x"}, testNow)
	require.NoError(t, err)

	_, second, err := settings.Upsert(roster, settings.UpsertInput{
		ID: first.ID, Name: "Carl D", Password: "x",
	}, testNow)
	require.NoError(t, err)

	assert.Equal(t, first.Initials, second.Initials)
}

// ── Eliminación ──────────────────────────────────────────────────────────────

// Con roster de tamaño 1 la eliminación se rechaza sea cual sea el id.
func TestDelete_UltimaCuentaProtegida(t *testing.T) {
	roster := buildRoster()[:1]

	for _, id := range []string{"U1", "inexistente", ""} {
		out, err := settings.Delete(roster, id)
		assert.ErrorIs(t, err, domain.ErrLastAccount)
		assert.Equal(t, roster, out, "el roster queda sin cambios")
	}
}

// Con roster > 1 la eliminación de un id existente reduce el largo en exactamente 1.
func TestDelete_EliminaExactamenteUna(t *testing.T) {
	roster := buildRoster()

	out, err := settings.Delete(roster, "U1")
	require.NoError(t, err)

	assert.Len(t, out, len(roster)-1)
	assert.Equal(t, "U2", out[0].ID)
	assert.Len(t, roster, 2, "el roster de entrada no se muta")
}

// Un id inexistente es un no-op silencioso.
func TestDelete_IDInexistenteNoOp(t *testing.T) {
	roster := buildRoster()

	out, err := settings.Delete(roster, "no-existe")
	require.NoError(t, err)
	assert.Equal(t, roster, out)
}
