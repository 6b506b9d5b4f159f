// Package nav holds the static role-to-navigation mapping and the route
// guard's access rules. The tables are data, not logic: what a role can see
// is decided here and nowhere else.
package nav

import "github.com/buildmaintain/bm/internal/types"

// Item is one navigation entry.
type Item struct {
	Icon  string
	Label string
	Path  string
}

// LoginPath is where unauthenticated access to a guarded path redirects.
const LoginPath = "/login"

// DefaultPath is where authenticated users land.
const DefaultPath = "/dashboard"

var roleItems = map[types.Role][]Item{
	types.RoleSuperAdmin: {
		{Icon: "dashboard", Label: "Dashboard", Path: "/dashboard"},
		{Icon: "users", Label: "Users", Path: "/users"},
		{Icon: "building", Label: "Buildings", Path: "/buildings"},
		{Icon: "file-text", Label: "Contracts", Path: "/contracts"},
		{Icon: "wrench", Label: "Work Orders", Path: "/work-orders"},
		{Icon: "package", Label: "Inventory", Path: "/inventory"},
		{Icon: "kanban", Label: "Projects", Path: "/projects"},
		{Icon: "user", Label: "Tenants", Path: "/tenants"},
		{Icon: "receipt", Label: "Invoices", Path: "/invoices"},
		{Icon: "store", Label: "Vendors", Path: "/vendors"},
		{Icon: "leaf", Label: "Green Projects", Path: "/certifications"},
		{Icon: "file-text", Label: "Documents", Path: "/documents"},
		{Icon: "spreadsheet", Label: "BOQs", Path: "/boqs"},
		{Icon: "file-question", Label: "RFQs", Path: "/rfqs"},
		{Icon: "gavel", Label: "Bids", Path: "/bids"},
		{Icon: "package", Label: "Products", Path: "/products"},
		{Icon: "calculator", Label: "Calculations", Path: "/calculations"},
		{Icon: "settings", Label: "Platform Settings", Path: "/settings"},
	},
	types.RoleOrganizationAdmin: {
		{Icon: "dashboard", Label: "Dashboard", Path: "/dashboard"},
		{Icon: "users", Label: "Users", Path: "/users"},
		{Icon: "building", Label: "Buildings", Path: "/buildings"},
		{Icon: "file-text", Label: "Contracts", Path: "/contracts"},
		{Icon: "wrench", Label: "Work Orders", Path: "/work-orders"},
		{Icon: "package", Label: "Inventory", Path: "/inventory"},
		{Icon: "kanban", Label: "Projects", Path: "/projects"},
		{Icon: "user", Label: "Tenants", Path: "/tenants"},
		{Icon: "receipt", Label: "Invoices", Path: "/invoices"},
		{Icon: "store", Label: "Vendors", Path: "/vendors"},
		{Icon: "leaf", Label: "Green Projects", Path: "/certifications"},
		{Icon: "file-text", Label: "Documents", Path: "/documents"},
		{Icon: "spreadsheet", Label: "BOQs", Path: "/boqs"},
		{Icon: "file-question", Label: "RFQs", Path: "/rfqs"},
		{Icon: "gavel", Label: "Bids", Path: "/bids"},
		{Icon: "package", Label: "Products", Path: "/products"},
		{Icon: "settings", Label: "Settings", Path: "/settings"},
	},
	types.RoleFacilityManager: {
		{Icon: "dashboard", Label: "Dashboard", Path: "/dashboard"},
		{Icon: "building", Label: "Buildings", Path: "/buildings"},
		{Icon: "file-text", Label: "Contracts", Path: "/contracts"},
		{Icon: "wrench", Label: "Work Orders", Path: "/work-orders"},
		{Icon: "package", Label: "Inventory", Path: "/inventory"},
		{Icon: "kanban", Label: "Projects", Path: "/projects"},
		{Icon: "user", Label: "Tenants", Path: "/tenants"},
		{Icon: "store", Label: "Vendors", Path: "/vendors"},
		{Icon: "file-text", Label: "Documents", Path: "/documents"},
		{Icon: "spreadsheet", Label: "BOQs", Path: "/boqs"},
	},
	types.RoleGreenBuildingConsultant: {
		{Icon: "dashboard", Label: "Dashboard", Path: "/dashboard"},
		{Icon: "kanban", Label: "Projects", Path: "/projects"},
		{Icon: "leaf", Label: "Green Projects", Path: "/certifications"},
		{Icon: "file-text", Label: "Documents", Path: "/documents"},
		{Icon: "calculator", Label: "Calculations", Path: "/calculations"},
		{Icon: "package", Label: "Products", Path: "/products"},
	},
	types.RoleInteriorDesigner: {
		{Icon: "dashboard", Label: "Dashboard", Path: "/dashboard"},
		{Icon: "kanban", Label: "Projects", Path: "/projects"},
		{Icon: "spreadsheet", Label: "BOQs", Path: "/boqs"},
		{Icon: "file-text", Label: "Documents", Path: "/documents"},
		{Icon: "package", Label: "Products", Path: "/products"},
	},
	types.RoleVendor: {
		{Icon: "dashboard", Label: "Dashboard", Path: "/dashboard"},
		{Icon: "wrench", Label: "Work Orders", Path: "/work-orders"},
		{Icon: "receipt", Label: "Invoices", Path: "/invoices"},
		{Icon: "file-question", Label: "RFQs", Path: "/rfqs"},
		{Icon: "gavel", Label: "Bids", Path: "/bids"},
		{Icon: "package", Label: "Products", Path: "/products"},
	},
	types.RoleFinanceManager: {
		{Icon: "dashboard", Label: "Dashboard", Path: "/dashboard"},
		{Icon: "receipt", Label: "Invoices", Path: "/invoices"},
		{Icon: "file-text", Label: "Contracts", Path: "/contracts"},
		{Icon: "user", Label: "Tenants", Path: "/tenants"},
		{Icon: "building", Label: "Buildings", Path: "/buildings"},
		{Icon: "spreadsheet", Label: "BOQs", Path: "/boqs"},
		{Icon: "gavel", Label: "Bids", Path: "/bids"},
	},
	types.RoleFieldTechnician: {
		{Icon: "dashboard", Label: "Dashboard", Path: "/dashboard"},
		{Icon: "wrench", Label: "Work Orders", Path: "/work-orders"},
		{Icon: "package", Label: "Inventory", Path: "/inventory"},
		{Icon: "file-text", Label: "Documents", Path: "/documents"},
	},
}

// restricted lists the paths only specific roles may open even if reached
// directly rather than through the menu.
var restricted = map[string][]types.Role{
	"/users":    {types.RoleSuperAdmin, types.RoleOrganizationAdmin},
	"/settings": {types.RoleSuperAdmin, types.RoleOrganizationAdmin},
}

// ItemsFor returns the navigation menu for a role. Unknown roles get an
// empty menu rather than an error so a new server-side role degrades to a
// dashboard-only experience.
func ItemsFor(role types.Role) []Item {
	items := roleItems[role]
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Allowed reports whether a role may open a path. Paths outside the
// restricted set are open to any authenticated role.
func Allowed(role types.Role, path string) bool {
	roles, ok := restricted[path]
	if !ok {
		return true
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
