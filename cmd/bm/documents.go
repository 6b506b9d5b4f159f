package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/buildmaintain/bm/internal/controller"
	"github.com/buildmaintain/bm/internal/types"
)

func documentSpec() resourceSpec[types.Document] {
	return resourceSpec[types.Document]{
		use:      "documents",
		singular: "document",
		navPath:  "/documents",
		filter:   "category",
		ctrl: controller.Config[types.Document]{
			Name: "document",
			ID:   func(d types.Document) string { return d.ID },
			SearchFields: func(d types.Document) []string {
				return []string{d.Name, d.OriginalName}
			},
			Facet: func(d types.Document) string { return string(d.Category) },
			// Metadata edits go through update; content replacement needs the
			// multipart upload command.
			FormFromItem: func(d types.Document) map[string]any {
				return formFields(types.DocumentForm{
					Name:           d.Name,
					Category:       d.Category,
					ProjectID:      d.ProjectID,
					GreenProjectID: d.GreenProjectID,
					WorkOrderID:    d.WorkOrderID,
					Tags:           d.Tags,
					Description:    d.Description,
				})
			},
			ValidateForm: validateAs[types.DocumentForm],
		},
		headers: []string{"ID", "NAME", "CATEGORY", "SIZE", "VERSION", "UPLOADED BY"},
		row: func(d types.Document) []string {
			return []string{d.ID, d.Name, string(d.Category),
				fmt.Sprintf("%d", d.Size), fmt.Sprintf("v%d", d.Version), d.UploadedByName}
		},
	}
}

var uploadForm types.DocumentForm

var uploadDocCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a file as a new document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := requireAccess("/documents"); err != nil {
			exitErr("%v", err)
		}
		if uploadForm.Name == "" {
			uploadForm.Name = filepath.Base(args[0])
		}
		if err := uploadForm.Validate(); err != nil {
			exitErr("%v", err)
		}
		file, err := os.Open(args[0])
		if err != nil {
			exitErr("%v", err)
		}
		defer func() { _ = file.Close() }()

		doc, err := api.Documents.Upload(cmd.Context(), uploadForm, filepath.Base(args[0]), file)
		if err != nil {
			exitErr("%v", err)
		}
		notifier.Successf("document", "Uploaded %s (%s)", doc.Name, doc.ID)
	},
}

var downloadDocDir string

var downloadDocCmd = &cobra.Command{
	Use:   "download <document-id>",
	Short: "Download a document's file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := requireAccess("/documents"); err != nil {
			exitErr("%v", err)
		}
		dir := downloadDocDir
		if dir == "" {
			dir = cfg.DownloadDir
		}
		if dir == "" {
			dir, _ = os.Getwd()
		}
		ctrl := controller.New(documentSpec().ctrl, api.Documents, notifier)
		defer ctrl.Close()
		dest, err := ctrl.Export(cmd.Context(), api.Documents.Download, args[0], dir)
		if err != nil {
			os.Exit(1)
		}
		fmt.Println(dest)
	},
}

func init() {
	cmd := newResourceCmd(documentSpec(), func() resourceAPI[types.Document] { return api.Documents })

	uploadDocCmd.Flags().StringVar(&uploadForm.Name, "name", "", "document name (defaults to filename)")
	uploadDocCmd.Flags().StringVar((*string)(&uploadForm.Category), "category", "other", "document category")
	uploadDocCmd.Flags().StringVar(&uploadForm.ProjectID, "project", "", "link to a project")
	uploadDocCmd.Flags().StringVar(&uploadForm.GreenProjectID, "green-project", "", "link to a green project")
	uploadDocCmd.Flags().StringVar(&uploadForm.WorkOrderID, "work-order", "", "link to a work order")
	uploadDocCmd.Flags().StringVar(&uploadForm.Description, "description", "", "document description")
	uploadDocCmd.Flags().StringSliceVar(&uploadForm.Tags, "tags", nil, "document tags")

	downloadDocCmd.Flags().StringVar(&downloadDocDir, "dir", "", "destination directory")

	cmd.AddCommand(uploadDocCmd, downloadDocCmd)
	rootCmd.AddCommand(cmd)
}
