package main

import (
	"fmt"

	"github.com/buildmaintain/bm/internal/controller"
	"github.com/buildmaintain/bm/internal/types"
)

func productSpec() resourceSpec[types.Product] {
	return resourceSpec[types.Product]{
		use:      "products",
		singular: "product",
		navPath:  "/products",
		filter:   "category",
		ctrl: controller.Config[types.Product]{
			Name: "product",
			ID:   func(p types.Product) string { return p.ID },
			SearchFields: func(p types.Product) []string {
				return []string{p.Name, p.Description}
			},
			Facet: func(p types.Product) string { return string(p.Category) },
			FormFromItem: func(p types.Product) map[string]any {
				return formFields(types.ProductForm{
					Name:           p.Name,
					Description:    p.Description,
					VendorID:       p.VendorID,
					Category:       p.Category,
					Subcategory:    p.Subcategory,
					Specifications: p.Specifications,
					Certifications: p.Certifications,
					Pricing:        p.Pricing,
					Availability:   p.Availability,
					Tags:           p.Tags,
				})
			},
			ValidateForm: validateAs[types.ProductForm],
		},
		headers: []string{"ID", "NAME", "VENDOR", "CATEGORY", "PRICE", "AVAILABILITY"},
		row: func(p types.Product) []string {
			price := fmt.Sprintf("%.2f %s/%s", p.Pricing.BasePrice, p.Pricing.Currency, p.Pricing.Unit)
			return []string{p.ID, p.Name, p.VendorName, string(p.Category), price, p.Availability}
		},
	}
}

func init() {
	rootCmd.AddCommand(newResourceCmd(productSpec(), func() resourceAPI[types.Product] { return api.Products }))
}
