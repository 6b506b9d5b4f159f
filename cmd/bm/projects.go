package main

import (
	"fmt"

	"github.com/buildmaintain/bm/internal/controller"
	"github.com/buildmaintain/bm/internal/types"
)

func projectSpec() resourceSpec[types.Project] {
	return resourceSpec[types.Project]{
		use:      "projects",
		singular: "project",
		navPath:  "/projects",
		filter:   "status",
		ctrl: controller.Config[types.Project]{
			Name: "project",
			ID:   func(p types.Project) string { return p.ID },
			SearchFields: func(p types.Project) []string {
				return []string{p.Name, p.Description}
			},
			Facet: func(p types.Project) string { return string(p.Status) },
			FormFromItem: func(p types.Project) map[string]any {
				return formFields(types.ProjectForm{
					Name:        p.Name,
					Description: p.Description,
					Type:        p.Type,
					BuildingID:  p.BuildingID,
					StartDate:   p.StartDate,
					EndDate:     p.EndDate,
					Budget:      p.Budget,
					ManagerID:   p.ManagerID,
					Priority:    p.Priority,
					Tags:        p.Tags,
				})
			},
			ValidateForm: validateAs[types.ProjectForm],
		},
		headers: []string{"ID", "NAME", "TYPE", "BUILDING", "STATUS", "BUDGET", "SPENT"},
		row: func(p types.Project) []string {
			return []string{p.ID, p.Name, string(p.Type), p.BuildingName,
				string(p.Status), fmt.Sprintf("%.2f", p.Budget), fmt.Sprintf("%.2f", p.Spent)}
		},
	}
}

func init() {
	rootCmd.AddCommand(newResourceCmd(projectSpec(), func() resourceAPI[types.Project] { return api.Projects }))
}
