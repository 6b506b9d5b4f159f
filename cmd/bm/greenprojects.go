package main

import (
	"encoding/json"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/buildmaintain/bm/internal/controller"
	"github.com/buildmaintain/bm/internal/types"
)

func greenProjectSpec() resourceSpec[types.GreenProject] {
	return resourceSpec[types.GreenProject]{
		use:      "green-projects",
		singular: "green project",
		navPath:  "/certifications",
		filter:   "status",
		ctrl: controller.Config[types.GreenProject]{
			Name: "green project",
			ID:   func(g types.GreenProject) string { return g.ID },
			SearchFields: func(g types.GreenProject) []string {
				return []string{g.ProjectName, string(g.CertificationType)}
			},
			Facet: func(g types.GreenProject) string { return string(g.Status) },
			FormFromItem: func(g types.GreenProject) map[string]any {
				return formFields(types.GreenProjectForm{
					ProjectID:         g.ProjectID,
					CertificationType: g.CertificationType,
					TargetRating:      g.TargetRating,
					Consultants:       g.Consultants,
				})
			},
			ValidateForm: validateAs[types.GreenProjectForm],
		},
		headers: []string{"ID", "PROJECT", "CERTIFICATION", "STATUS", "TARGET", "ACHIEVED"},
		row: func(g types.GreenProject) []string {
			return []string{g.ID, g.ProjectName, string(g.CertificationType),
				string(g.Status), g.TargetRating, g.AchievedRating}
		},
	}
}

var checklistFile string

var addChecklistCmd = &cobra.Command{
	Use:   "add-checklist <green-project-id>",
	Short: "Attach a certification checklist from a JSON file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := requireAccess("/certifications"); err != nil {
			exitErr("%v", err)
		}
		fields, err := readFields(checklistFile)
		if err != nil {
			exitErr("%v", err)
		}
		data, _ := json.Marshal(fields)
		var checklist types.Checklist
		if err := json.Unmarshal(data, &checklist); err != nil {
			exitErr("invalid checklist: %v", err)
		}
		gp, err := api.GreenProjects.AddChecklist(cmd.Context(), args[0], checklist)
		if err != nil {
			exitErr("%v", err)
		}
		notifier.Successf("green project", "Checklist %q added to %s", checklist.Name, gp.ProjectName)
	},
}

var setItemCmd = &cobra.Command{
	Use:   "set-item <green-project-id> <checklist-index> <item-index> <status>",
	Short: "Update one checklist item's status",
	Args:  cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := requireAccess("/certifications"); err != nil {
			exitErr("%v", err)
		}
		checklistIndex, err := strconv.Atoi(args[1])
		if err != nil || checklistIndex < 0 {
			exitErr("checklist index must be a non-negative integer")
		}
		itemIndex, err := strconv.Atoi(args[2])
		if err != nil || itemIndex < 0 {
			exitErr("item index must be a non-negative integer")
		}
		status := types.ChecklistItemStatus(args[3])
		if !status.IsValid() {
			exitErr("invalid status %q", args[3])
		}
		gp, err := api.GreenProjects.UpdateChecklistItem(cmd.Context(), args[0], checklistIndex, itemIndex, status)
		if err != nil {
			exitErr("%v", err)
		}
		notifier.Successf("green project", "Checklist item updated on %s", gp.ProjectName)
	},
}

var costFile string

var addCostCmd = &cobra.Command{
	Use:   "add-cost <green-project-id>",
	Short: "Record a certification cost from a JSON file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := requireAccess("/certifications"); err != nil {
			exitErr("%v", err)
		}
		fields, err := readFields(costFile)
		if err != nil {
			exitErr("%v", err)
		}
		data, _ := json.Marshal(fields)
		var cost types.CertificationCost
		if err := json.Unmarshal(data, &cost); err != nil {
			exitErr("invalid cost: %v", err)
		}
		gp, err := api.GreenProjects.AddCost(cmd.Context(), args[0], cost)
		if err != nil {
			exitErr("%v", err)
		}
		notifier.Successf("green project", "Cost recorded against %s", gp.ProjectName)
	},
}

func init() {
	cmd := newResourceCmd(greenProjectSpec(), func() resourceAPI[types.GreenProject] { return api.GreenProjects })
	addChecklistCmd.Flags().StringVarP(&checklistFile, "file", "f", "-", "JSON file ('-' for stdin)")
	addCostCmd.Flags().StringVarP(&costFile, "file", "f", "-", "JSON file ('-' for stdin)")
	cmd.AddCommand(addChecklistCmd, setItemCmd, addCostCmd)
	rootCmd.AddCommand(cmd)
}
