package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/buildmaintain/bm/internal/types"
)

func TestEveryRoleHasAMenu(t *testing.T) {
	for _, role := range types.Roles() {
		items := ItemsFor(role)
		assert.NotEmpty(t, items, "role %s", role)
		assert.Equal(t, DefaultPath, items[0].Path, "dashboard leads every menu")
	}
}

func TestUnknownRoleGetsEmptyMenu(t *testing.T) {
	assert.Empty(t, ItemsFor(types.Role("intern")))
}

func TestMenuShapePerRole(t *testing.T) {
	tests := []struct {
		role  types.Role
		count int
		has   string
		lacks string
	}{
		{types.RoleSuperAdmin, 18, "/users", ""},
		{types.RoleOrganizationAdmin, 17, "/users", "/calculations"},
		{types.RoleFacilityManager, 10, "/boqs", "/users"},
		{types.RoleGreenBuildingConsultant, 6, "/calculations", "/work-orders"},
		{types.RoleInteriorDesigner, 5, "/boqs", "/invoices"},
		{types.RoleVendor, 6, "/bids", "/buildings"},
		{types.RoleFinanceManager, 7, "/invoices", "/inventory"},
		{types.RoleFieldTechnician, 4, "/work-orders", "/invoices"},
	}
	for _, tt := range tests {
		items := ItemsFor(tt.role)
		assert.Len(t, items, tt.count, "role %s", tt.role)

		paths := map[string]bool{}
		for _, item := range items {
			paths[item.Path] = true
		}
		assert.True(t, paths[tt.has], "role %s should see %s", tt.role, tt.has)
		if tt.lacks != "" {
			assert.False(t, paths[tt.lacks], "role %s should not see %s", tt.role, tt.lacks)
		}
	}
}

func TestRestrictedPaths(t *testing.T) {
	assert.True(t, Allowed(types.RoleSuperAdmin, "/users"))
	assert.True(t, Allowed(types.RoleOrganizationAdmin, "/users"))
	assert.False(t, Allowed(types.RoleFacilityManager, "/users"))
	assert.False(t, Allowed(types.RoleVendor, "/settings"))
	assert.True(t, Allowed(types.RoleOrganizationAdmin, "/settings"))
}

func TestUnrestrictedPathsOpenToAllRoles(t *testing.T) {
	for _, role := range types.Roles() {
		assert.True(t, Allowed(role, "/work-orders"), "role %s", role)
		assert.True(t, Allowed(role, "/dashboard"), "role %s", role)
	}
}

func TestItemsForReturnsCopy(t *testing.T) {
	items := ItemsFor(types.RoleVendor)
	items[0].Label = "mutated"
	assert.Equal(t, "Dashboard", ItemsFor(types.RoleVendor)[0].Label)
}
