package main

import (
	"fmt"
	"strings"

	"github.com/buildmaintain/bm/internal/controller"
	"github.com/buildmaintain/bm/internal/types"
)

func vendorSpec() resourceSpec[types.Vendor] {
	return resourceSpec[types.Vendor]{
		use:      "vendors",
		singular: "vendor",
		navPath:  "/vendors",
		ctrl: controller.Config[types.Vendor]{
			Name: "vendor",
			ID:   func(v types.Vendor) string { return v.ID },
			SearchFields: func(v types.Vendor) []string {
				return []string{v.Name, v.Contact.ContactPerson}
			},
			FormFromItem: func(v types.Vendor) map[string]any {
				return formFields(types.VendorForm{
					Name:        v.Name,
					Contact:     v.Contact,
					Address:     v.Address,
					Category:    v.Category,
					Services:    v.Services,
					GSTNumber:   v.GSTNumber,
					PANNumber:   v.PANNumber,
					BankDetails: v.BankDetails,
				})
			},
			ValidateForm: validateAs[types.VendorForm],
		},
		headers: []string{"ID", "NAME", "CONTACT", "CATEGORIES", "RATING"},
		row: func(v types.Vendor) []string {
			return []string{v.ID, v.Name, v.Contact.ContactPerson,
				strings.Join(v.Category, ","), fmt.Sprintf("%.1f", v.Rating)}
		},
	}
}

func init() {
	rootCmd.AddCommand(newResourceCmd(vendorSpec(), func() resourceAPI[types.Vendor] { return api.Vendors }))
}
