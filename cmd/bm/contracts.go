package main

import (
	"fmt"

	"github.com/buildmaintain/bm/internal/controller"
	"github.com/buildmaintain/bm/internal/types"
)

func contractSpec() resourceSpec[types.AMCContract] {
	return resourceSpec[types.AMCContract]{
		use:      "contracts",
		singular: "contract",
		navPath:  "/contracts",
		filter:   "status",
		ctrl: controller.Config[types.AMCContract]{
			Name: "contract",
			ID:   func(c types.AMCContract) string { return c.ID },
			SearchFields: func(c types.AMCContract) []string {
				return []string{c.Title, c.Description}
			},
			Facet: func(c types.AMCContract) string { return string(c.Status) },
			FormFromItem: func(c types.AMCContract) map[string]any {
				return formFields(types.ContractForm{
					Title:               c.Title,
					Description:         c.Description,
					StartDate:           c.StartDate,
					EndDate:             c.EndDate,
					VendorID:            c.VendorID,
					BuildingID:          c.BuildingID,
					SLATerms:            c.SLATerms,
					Value:               c.Value,
					RenewalReminderDays: c.RenewalReminderDays,
				})
			},
			ValidateForm: validateAs[types.ContractForm],
		},
		headers: []string{"ID", "TITLE", "VENDOR", "BUILDING", "STATUS", "VALUE", "ENDS"},
		row: func(c types.AMCContract) []string {
			return []string{c.ID, c.Title, c.VendorName, c.BuildingName,
				string(c.Status), fmt.Sprintf("%.2f", c.Value), c.EndDate}
		},
	}
}

func init() {
	rootCmd.AddCommand(newResourceCmd(contractSpec(), func() resourceAPI[types.AMCContract] { return api.Contracts }))
}
