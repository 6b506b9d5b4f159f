package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buildmaintain/bm/internal/controller"
	"github.com/buildmaintain/bm/internal/types"
)

func buildingSpec() resourceSpec[types.Building] {
	return resourceSpec[types.Building]{
		use:      "buildings",
		singular: "building",
		navPath:  "/buildings",
		filter:   "building type",
		ctrl: controller.Config[types.Building]{
			Name: "building",
			ID:   func(b types.Building) string { return b.ID },
			SearchFields: func(b types.Building) []string {
				return []string{b.Name, b.Address}
			},
			Facet: func(b types.Building) string { return string(b.Type) },
			FormFromItem: func(b types.Building) map[string]any {
				return formFields(types.BuildingForm{
					Name:              b.Name,
					Address:           b.Address,
					Area:              b.Area,
					FacilityManagerID: b.FacilityManagerID,
					Type:              b.Type,
					YearBuilt:         b.YearBuilt,
					Floors:            b.Floors,
					Latitude:          b.Latitude,
					Longitude:         b.Longitude,
				})
			},
			ValidateForm: validateAs[types.BuildingForm],
		},
		headers: []string{"ID", "NAME", "TYPE", "ADDRESS", "FLOORS", "MANAGER"},
		row: func(b types.Building) []string {
			return []string{b.ID, b.Name, string(b.Type), b.Address,
				fmt.Sprintf("%d", b.Floors), b.FacilityManagerName}
		},
	}
}

var assignManagerID string

var assignManagerCmd = &cobra.Command{
	Use:   "assign-manager <building-id>",
	Short: "Assign a facility manager to a building",
	Long: `Assign a facility manager to a building. Without --manager, lists the
users holding the facility_manager role so one can be picked.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := requireAccess("/buildings"); err != nil {
			exitErr("%v", err)
		}
		if assignManagerID == "" {
			managers, err := api.Users.ListByRole(cmd.Context(), types.RoleFacilityManager)
			if err != nil {
				exitErr("%v", err)
			}
			if len(managers) == 0 {
				fmt.Println("No facility managers found")
				return
			}
			fmt.Println("Facility managers:")
			for _, m := range managers {
				fmt.Printf("  %s  %s <%s>\n", m.ID, m.Name, m.Email)
			}
			fmt.Println("\nRe-run with --manager <id> to assign")
			return
		}
		building, err := api.Buildings.UpdateFields(cmd.Context(), args[0],
			map[string]any{"facilityManagerId": assignManagerID})
		if err != nil {
			exitErr("%v", err)
		}
		notifier.Successf("building", "Manager assigned to %s", building.Name)
	},
}

func init() {
	cmd := newResourceCmd(buildingSpec(), func() resourceAPI[types.Building] { return api.Buildings })
	assignManagerCmd.Flags().StringVar(&assignManagerID, "manager", "", "facility manager user ID")
	cmd.AddCommand(assignManagerCmd)
	rootCmd.AddCommand(cmd)
}
