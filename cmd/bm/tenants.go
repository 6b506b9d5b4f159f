package main

import (
	"fmt"

	"github.com/buildmaintain/bm/internal/controller"
	"github.com/buildmaintain/bm/internal/types"
)

func tenantSpec() resourceSpec[types.Tenant] {
	return resourceSpec[types.Tenant]{
		use:      "tenants",
		singular: "tenant",
		navPath:  "/tenants",
		filter:   "building",
		ctrl: controller.Config[types.Tenant]{
			Name: "tenant",
			ID:   func(t types.Tenant) string { return t.ID },
			SearchFields: func(t types.Tenant) []string {
				return []string{t.Name, t.Unit}
			},
			Facet: func(t types.Tenant) string { return t.BuildingID },
			FormFromItem: func(t types.Tenant) map[string]any {
				return formFields(types.TenantForm{
					Name:         t.Name,
					Contact:      t.Contact,
					BuildingID:   t.BuildingID,
					Unit:         t.Unit,
					Area:         t.Area,
					LeaseDetails: t.LeaseDetails,
				})
			},
			ValidateForm: validateAs[types.TenantForm],
		},
		headers: []string{"ID", "NAME", "BUILDING", "UNIT", "RENT", "LEASE END"},
		row: func(t types.Tenant) []string {
			return []string{t.ID, t.Name, t.BuildingName, t.Unit,
				fmt.Sprintf("%.2f", t.LeaseDetails.MonthlyRent), t.LeaseDetails.EndDate}
		},
	}
}

func init() {
	rootCmd.AddCommand(newResourceCmd(tenantSpec(), func() resourceAPI[types.Tenant] { return api.Tenants }))
}
