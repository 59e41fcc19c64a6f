package entity

import "time"

// Roles válidos para Account, ordenados por privilegio (admin el más alto).
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleCashier = "cashier"
	RoleWaiter  = "waiter"
)

// ProfileColors es la paleta fija de colores de perfil. El color por defecto
// de una cuenta nueva es la segunda entrada.
var ProfileColors = []string{
	"from-slate-700 to-slate-900",
	"from-emerald-600 to-emerald-800",
	"from-purple-600 to-purple-800",
	"from-blue-600 to-blue-800",
	"from-rose-600 to-rose-800",
	"from-amber-600 to-amber-800",
}

// Account representa un miembro del personal.
type Account struct {
	ID       string
	Name     string
	Initials string // derivadas del nombre: mayúsculas, máximo 2 caracteres
	Role     string // ver constantes Role*
	Password string // credencial opaca; el hashing queda fuera de este núcleo
	Color    string // una entrada de ProfileColors

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidRole informa si el rol pertenece al conjunto enumerado.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleCashier, RoleWaiter:
		return true
	}
	return false
}
