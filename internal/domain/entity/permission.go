package entity

// Vistas/funcionalidades gobernadas por rol.
const (
	ViewDashboard = "dashboard"
	ViewPOS       = "pos"
	ViewTables    = "tables"
	ViewInventory = "inventory"
	ViewBilling   = "billing"
	ViewReports   = "reports"
	ViewSettings  = "settings"
)

// RolePermission mapea un rol al conjunto de vistas que puede acceder.
// Este núcleo la consume (gating de visibilidad en el borde), no la muta.
type RolePermission struct {
	Role  string
	Views []string
}

// HasView informa si el permiso cubre la vista indicada.
func (p RolePermission) HasView(view string) bool {
	for _, v := range p.Views {
		if v == view {
			return true
		}
	}
	return false
}

// DefaultRolePermissions devuelve los conjuntos de capacidades por rol.
func DefaultRolePermissions() []RolePermission {
	return []RolePermission{
		{Role: RoleAdmin, Views: []string{
			ViewDashboard, ViewPOS, ViewTables, ViewInventory,
			ViewBilling, ViewReports, ViewSettings,
		}},
		{Role: RoleManager, Views: []string{
			ViewDashboard, ViewPOS, ViewTables, ViewInventory,
			ViewBilling, ViewReports,
		}},
		{Role: RoleCashier, Views: []string{ViewPOS, ViewBilling}},
		{Role: RoleWaiter, Views: []string{ViewPOS, ViewTables}},
	}
}

// PermissionForRole busca el conjunto de capacidades de un rol.
// Devuelve false si el rol no está en el listado.
func PermissionForRole(perms []RolePermission, role string) (RolePermission, bool) {
	for _, p := range perms {
		if p.Role == role {
			return p, true
		}
	}
	return RolePermission{}, false
}
