package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/buildmaintain/bm/internal/controller"
	"github.com/buildmaintain/bm/internal/types"
)

func boqSpec() resourceSpec[types.BOQ] {
	return resourceSpec[types.BOQ]{
		use:      "boqs",
		singular: "BOQ",
		navPath:  "/boqs",
		filter:   "status",
		ctrl: controller.Config[types.BOQ]{
			Name: "BOQ",
			ID:   func(b types.BOQ) string { return b.ID },
			SearchFields: func(b types.BOQ) []string {
				return []string{b.Name, b.ProjectName}
			},
			Facet:    func(b types.BOQ) string { return string(b.Status) },
			Defaults: func() map[string]any { return formFields(types.NewBOQForm()) },
			FormFromItem: func(b types.BOQ) map[string]any {
				return formFields(types.BOQForm{
					Name:      b.Name,
					ProjectID: b.ProjectID,
					Items:     b.Items,
					Currency:  b.Currency,
					Notes:     b.Notes,
				})
			},
			ValidateForm: validateAs[types.BOQForm],
		},
		headers: []string{"ID", "NAME", "PROJECT", "STATUS", "ITEMS", "TOTAL"},
		row: func(b types.BOQ) []string {
			return []string{b.ID, b.Name, b.ProjectName, string(b.Status),
				fmt.Sprintf("%d", len(b.Items)), fmt.Sprintf("%.2f %s", b.Total, b.Currency)}
		},
	}
}

var exportDir string

var exportBOQCmd = &cobra.Command{
	Use:   "export <boq-id>",
	Short: "Export a BOQ as a spreadsheet",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := requireAccess("/boqs"); err != nil {
			exitErr("%v", err)
		}
		dir := exportDir
		if dir == "" {
			dir = cfg.DownloadDir
		}
		if dir == "" {
			dir, _ = os.Getwd()
		}
		ctrl := controller.New(boqSpec().ctrl, api.BOQs, notifier)
		defer ctrl.Close()
		dest, err := ctrl.Export(cmd.Context(), api.BOQs.Export, args[0], dir)
		if err != nil {
			os.Exit(1)
		}
		fmt.Println(dest)
	},
}

func init() {
	cmd := newResourceCmd(boqSpec(), func() resourceAPI[types.BOQ] { return api.BOQs })
	exportBOQCmd.Flags().StringVar(&exportDir, "dir", "", "destination directory")
	cmd.AddCommand(exportBOQCmd)
	rootCmd.AddCommand(cmd)
}
