package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/buildmaintain/bm/internal/controller"
	"github.com/buildmaintain/bm/internal/types"
)

func calculationSpec() resourceSpec[types.Calculation] {
	return resourceSpec[types.Calculation]{
		use:      "calculations",
		singular: "calculation",
		navPath:  "/calculations",
		filter:   "calculation type",
		ctrl: controller.Config[types.Calculation]{
			Name: "calculation",
			ID:   func(c types.Calculation) string { return c.ID },
			SearchFields: func(c types.Calculation) []string {
				return []string{c.Name}
			},
			Facet: func(c types.Calculation) string { return string(c.Type) },
			FormFromItem: func(c types.Calculation) map[string]any {
				return formFields(types.CalculationForm{
					Type:           c.Type,
					Name:           c.Name,
					Description:    c.Description,
					ProjectID:      c.ProjectID,
					GreenProjectID: c.GreenProjectID,
					Inputs:         c.Inputs,
					Formula:        c.Formula,
					Unit:           c.Unit,
					Benchmark:      c.Benchmark,
				})
			},
			ValidateForm: validateAs[types.CalculationForm],
		},
		headers: []string{"ID", "NAME", "TYPE", "PROJECT", "COMPLIANT"},
		row: func(c types.Calculation) []string {
			compliant := color.New(color.FgRed).Sprint("no")
			if c.Compliance {
				compliant = color.New(color.FgGreen).Sprint("yes")
			}
			return []string{c.ID, c.Name, string(c.Type), c.ProjectName, compliant}
		},
	}
}

func printCompliance(benchmark float64, compliant bool, unit string) {
	status := color.New(color.FgRed).Sprint("✗ above benchmark")
	if compliant {
		status = color.New(color.FgGreen).Sprint("✓ within benchmark")
	}
	fmt.Printf("Benchmark:  %.2f %s\n", benchmark, unit)
	fmt.Printf("Compliance: %s\n", status)
}

var energyIn types.EnergyInput

var energyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Evaluate energy performance",
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := requireAccess("/calculations"); err != nil {
			exitErr("%v", err)
		}
		if err := energyIn.Validate(); err != nil {
			exitErr("%v", err)
		}
		res, err := api.Calculations.Energy(cmd.Context(), energyIn)
		if err != nil {
			exitErr("%v", err)
		}
		fmt.Printf("EPI:        %.2f %s\n", res.EPI, res.Unit)
		fmt.Printf("Carbon:     %.2f kgCO2e\n", res.CarbonFootprint)
		printCompliance(res.Benchmark, res.Compliance, res.Unit)
	},
}

var waterIn types.WaterInput

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Evaluate water consumption",
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := requireAccess("/calculations"); err != nil {
			exitErr("%v", err)
		}
		if err := waterIn.Validate(); err != nil {
			exitErr("%v", err)
		}
		res, err := api.Calculations.Water(cmd.Context(), waterIn)
		if err != nil {
			exitErr("%v", err)
		}
		fmt.Printf("Per capita: %.2f %s\n", res.PerCapitaConsumption, res.Unit)
		fmt.Printf("Savings:    %.2f%%\n", res.WaterSavings)
		printCompliance(res.Benchmark, res.Compliance, res.Unit)
	},
}

var wasteIn types.WasteInput

var wasteCmd = &cobra.Command{
	Use:   "waste",
	Short: "Evaluate waste diversion",
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := requireAccess("/calculations"); err != nil {
			exitErr("%v", err)
		}
		if err := wasteIn.Validate(); err != nil {
			exitErr("%v", err)
		}
		res, err := api.Calculations.Waste(cmd.Context(), wasteIn)
		if err != nil {
			exitErr("%v", err)
		}
		fmt.Printf("Diversion:  %.2f%%\n", res.WasteDiversionRate)
		printCompliance(res.Benchmark, res.Compliance, res.Unit)
	},
}

func init() {
	cmd := newResourceCmd(calculationSpec(), func() resourceAPI[types.Calculation] { return api.Calculations })

	energyCmd.Flags().Float64Var(&energyIn.BuildingArea, "area", 0, "building area (sqm)")
	energyCmd.Flags().Float64Var(&energyIn.EnergyConsumption, "consumption", 0, "energy consumed (kWh)")
	energyCmd.Flags().IntVar(&energyIn.Period, "period", 12, "period in months")
	energyCmd.Flags().StringVar(&energyIn.BuildingType, "type", "commercial", "building type")

	waterCmd.Flags().Float64Var(&waterIn.WaterConsumption, "consumption", 0, "water consumed (kL)")
	waterCmd.Flags().IntVar(&waterIn.Occupancy, "occupancy", 0, "number of occupants")
	waterCmd.Flags().Float64Var(&waterIn.RainwaterHarvestingCapacity, "rainwater", 0, "rainwater harvesting capacity (kL)")
	waterCmd.Flags().IntVar(&waterIn.Period, "period", 12, "period in months")

	wasteCmd.Flags().Float64Var(&wasteIn.TotalWaste, "total", 0, "total waste (kg)")
	wasteCmd.Flags().Float64Var(&wasteIn.RecycledWaste, "recycled", 0, "recycled waste (kg)")
	wasteCmd.Flags().IntVar(&wasteIn.Period, "period", 12, "period in months")

	cmd.AddCommand(energyCmd, waterCmd, wasteCmd)
	rootCmd.AddCommand(cmd)
}
