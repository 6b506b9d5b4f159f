package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/buildmaintain/bm/internal/controller"
	"github.com/buildmaintain/bm/internal/types"
)

func taskSpec() resourceSpec[types.Task] {
	return resourceSpec[types.Task]{
		use:      "tasks",
		singular: "task",
		navPath:  "/projects",
		filter:   "status",
		ctrl: controller.Config[types.Task]{
			Name: "task",
			ID:   func(t types.Task) string { return t.ID },
			SearchFields: func(t types.Task) []string {
				return []string{t.Title, t.Description}
			},
			Facet: func(t types.Task) string { return string(t.Status) },
			FormFromItem: func(t types.Task) map[string]any {
				return formFields(types.TaskForm{
					Title:          t.Title,
					Description:    t.Description,
					ProjectID:      t.ProjectID,
					AssignedTo:     t.AssignedTo,
					StartDate:      t.StartDate,
					DueDate:        t.DueDate,
					Priority:       t.Priority,
					EstimatedHours: t.EstimatedHours,
					Dependencies:   t.Dependencies,
					Tags:           t.Tags,
				})
			},
			ValidateForm: validateAs[types.TaskForm],
		},
		headers: []string{"ID", "TITLE", "PROJECT", "STATUS", "PRIORITY", "ASSIGNEE", "DUE"},
		row: func(t types.Task) []string {
			return []string{t.ID, t.Title, t.ProjectName, string(t.Status),
				string(t.Priority), t.AssignedToName, t.DueDate}
		},
	}
}

var commentCmd = &cobra.Command{
	Use:   "comment <task-id> <text>...",
	Short: "Add a comment to a task",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := requireAccess("/projects"); err != nil {
			exitErr("%v", err)
		}
		task, err := api.Tasks.AddComment(cmd.Context(), args[0], strings.Join(args[1:], " "))
		if err != nil {
			exitErr("%v", err)
		}
		notifier.Successf("task", "Comment added to %s", task.Title)
	},
}

func init() {
	cmd := newResourceCmd(taskSpec(), func() resourceAPI[types.Task] { return api.Tasks })
	cmd.AddCommand(commentCmd)
	rootCmd.AddCommand(cmd)
}
