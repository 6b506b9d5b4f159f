package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/buildmaintain/bm/internal/controller"
	"github.com/buildmaintain/bm/internal/types"
)

func inventorySpec() resourceSpec[types.InventoryItem] {
	return resourceSpec[types.InventoryItem]{
		use:      "inventory",
		singular: "inventory item",
		navPath:  "/inventory",
		filter:   "category",
		ctrl: controller.Config[types.InventoryItem]{
			Name: "inventory item",
			ID:   func(i types.InventoryItem) string { return i.ID },
			SearchFields: func(i types.InventoryItem) []string {
				return []string{i.Name, i.Description}
			},
			Facet: func(i types.InventoryItem) string { return string(i.Category) },
			FormFromItem: func(i types.InventoryItem) map[string]any {
				return formFields(types.InventoryForm{
					Name:          i.Name,
					Description:   i.Description,
					Quantity:      i.Quantity,
					ReorderPoint:  i.ReorderPoint,
					Unit:          i.Unit,
					Category:      i.Category,
					BuildingID:    i.BuildingID,
					VendorID:      i.VendorID,
					Location:      i.Location,
					PurchasePrice: i.PurchasePrice,
				})
			},
			ValidateForm: validateAs[types.InventoryForm],
		},
		headers: []string{"ID", "NAME", "CATEGORY", "BUILDING", "QTY", "REORDER AT"},
		row: func(i types.InventoryItem) []string {
			qty := fmt.Sprintf("%.0f %s", i.Quantity, i.Unit)
			if i.Quantity <= i.ReorderPoint {
				qty = color.New(color.FgRed).Sprint(qty)
			}
			return []string{i.ID, i.Name, string(i.Category), i.BuildingName,
				qty, fmt.Sprintf("%.0f", i.ReorderPoint)}
		},
	}
}

var lowStockCmd = &cobra.Command{
	Use:   "low-stock",
	Short: "List items at or below their reorder point",
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := requireAccess("/inventory"); err != nil {
			exitErr("%v", err)
		}
		items, err := api.Inventory.List(cmd.Context())
		if err != nil {
			exitErr("%v", err)
		}
		low := items[:0:0]
		for _, item := range items {
			if item.Quantity <= item.ReorderPoint {
				low = append(low, item)
			}
		}
		if len(low) == 0 {
			fmt.Println("All items above reorder point")
			return
		}
		spec := inventorySpec()
		renderTable(spec.headers, low, spec.row)
		fmt.Fprintf(os.Stdout, "%d items need restocking\n", len(low))
	},
}

func init() {
	cmd := newResourceCmd(inventorySpec(), func() resourceAPI[types.InventoryItem] { return api.Inventory })
	cmd.AddCommand(lowStockCmd)
	rootCmd.AddCommand(cmd)
}
