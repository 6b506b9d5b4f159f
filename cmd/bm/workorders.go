package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/buildmaintain/bm/internal/controller"
	"github.com/buildmaintain/bm/internal/types"
)

func workOrderSpec() resourceSpec[types.WorkOrder] {
	return resourceSpec[types.WorkOrder]{
		use:      "work-orders",
		singular: "work order",
		navPath:  "/work-orders",
		filter:   "status",
		ctrl: controller.Config[types.WorkOrder]{
			Name: "work order",
			ID:   func(w types.WorkOrder) string { return w.ID },
			SearchFields: func(w types.WorkOrder) []string {
				return []string{w.Title, w.Description}
			},
			Facet: func(w types.WorkOrder) string { return string(w.Status) },
			FormFromItem: func(w types.WorkOrder) map[string]any {
				return formFields(types.WorkOrderForm{
					Title:             w.Title,
					Description:       w.Description,
					BuildingID:        w.BuildingID,
					AssignedTo:        w.AssignedTo,
					Priority:          w.Priority,
					Category:          w.Category,
					EstimatedDuration: w.EstimatedDuration,
					ScheduledDate:     w.ScheduledDate,
					AMCContractID:     w.AMCContractID,
					Location:          w.Location,
					Tags:              w.Tags,
				})
			},
			ValidateForm: validateAs[types.WorkOrderForm],
		},
		headers: []string{"ID", "TITLE", "BUILDING", "STATUS", "PRIORITY", "ASSIGNEE", "SCHEDULED"},
		row: func(w types.WorkOrder) []string {
			return []string{w.ID, w.Title, w.BuildingName, string(w.Status),
				string(w.Priority), w.AssignedToName, w.ScheduledDate}
		},
	}
}

var photoCaption string

var addPhotoCmd = &cobra.Command{
	Use:   "add-photo <work-order-id> <url>",
	Short: "Attach a photo to a work order",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := requireAccess("/work-orders"); err != nil {
			exitErr("%v", err)
		}
		wo, err := api.WorkOrders.AddPhoto(cmd.Context(), args[0], args[1], photoCaption)
		if err != nil {
			exitErr("%v", err)
		}
		notifier.Successf("work order", "Photo added to %s", wo.Title)
	},
}

var addPartsCmd = &cobra.Command{
	Use:   "add-parts <work-order-id> <inventory-item-id> <quantity>",
	Short: "Record inventory consumed by a work order",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := requireAccess("/work-orders"); err != nil {
			exitErr("%v", err)
		}
		quantity, err := strconv.ParseFloat(args[2], 64)
		if err != nil || quantity <= 0 {
			exitErr("quantity must be a positive number")
		}
		wo, err := api.WorkOrders.AddPartsUsed(cmd.Context(), args[0], args[1], quantity)
		if err != nil {
			exitErr("%v", err)
		}
		notifier.Successf("work order", "Parts recorded against %s", wo.Title)
	},
}

func init() {
	cmd := newResourceCmd(workOrderSpec(), func() resourceAPI[types.WorkOrder] { return api.WorkOrders })
	addPhotoCmd.Flags().StringVar(&photoCaption, "caption", "", "photo caption")
	cmd.AddCommand(addPhotoCmd, addPartsCmd)
	rootCmd.AddCommand(cmd)
}
