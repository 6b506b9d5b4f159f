package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/buildmaintain/bm/internal/controller"
)

// resourceAPI is the gateway surface the generic commands need. Every
// gateway.Resource satisfies it.
type resourceAPI[T any] interface {
	controller.Backend[T]
	Get(ctx context.Context, id string) (T, error)
}

// resourceSpec describes one entity's command set.
type resourceSpec[T any] struct {
	use      string // command name, e.g. "buildings"
	singular string // e.g. "building"
	navPath  string // page path for the role gate, e.g. "/buildings"
	filter   string // what --filter matches, e.g. "status"; empty hides it
	ctrl     controller.Config[T]
	headers  []string
	row      func(T) []string
}

// newResourceCmd builds the standard list/get/create/update/delete command
// tree for one entity. Entity files add their extra subcommands on top.
func newResourceCmd[T any](spec resourceSpec[T], backend func() resourceAPI[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   spec.use,
		Short: fmt.Sprintf("Manage %ss", spec.singular),
	}

	var searchFlag, filterFlag string
	var jsonFlag bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %ss", spec.singular),
		Run: func(cmd *cobra.Command, args []string) {
			if _, err := requireAccess(spec.navPath); err != nil {
				exitErr("%v", err)
			}
			ctrl := controller.New(spec.ctrl, backend(), notifier)
			ctrl.Snapshots = db
			defer ctrl.Close()

			if err := ctrl.Load(cmd.Context()); err != nil {
				os.Exit(1)
			}
			ctrl.SetSearch(searchFlag)
			ctrl.SetFacet(filterFlag)
			items := ctrl.Visible()

			if jsonFlag {
				printJSON(items)
				return
			}
			renderTable(spec.headers, items, spec.row)
			if len(items) != len(ctrl.Items()) {
				fmt.Printf("%d of %d %ss\n", len(items), len(ctrl.Items()), spec.singular)
			} else {
				fmt.Printf("%d %ss\n", len(items), spec.singular)
			}
		},
	}
	listCmd.Flags().StringVar(&searchFlag, "search", "", "case-insensitive text match")
	if spec.filter != "" {
		listCmd.Flags().StringVar(&filterFlag, "filter", controller.FacetAll, "filter by "+spec.filter)
	}
	listCmd.Flags().BoolVar(&jsonFlag, "json", false, "print raw JSON")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: fmt.Sprintf("Show one %s", spec.singular),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if _, err := requireAccess(spec.navPath); err != nil {
				exitErr("%v", err)
			}
			item, err := backend().Get(cmd.Context(), args[0])
			if err != nil {
				exitErr("%v", err)
			}
			printJSON(item)
		},
	}

	var createFile string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: fmt.Sprintf("Create a %s from a JSON file", spec.singular),
		Run: func(cmd *cobra.Command, args []string) {
			if _, err := requireAccess(spec.navPath); err != nil {
				exitErr("%v", err)
			}
			fields, err := readFields(createFile)
			if err != nil {
				exitErr("%v", err)
			}
			ctrl := controller.New(spec.ctrl, backend(), notifier)
			defer ctrl.Close()
			ctrl.BeginCreate()
			for k, v := range fields {
				ctrl.SetField(k, v)
			}
			if err := ctrl.Submit(cmd.Context()); err != nil {
				exitErr("%v", err)
			}
		},
	}
	createCmd.Flags().StringVarP(&createFile, "file", "f", "-", "JSON file ('-' for stdin)")

	var updateFile string
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: fmt.Sprintf("Update a %s from a JSON file", spec.singular),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if _, err := requireAccess(spec.navPath); err != nil {
				exitErr("%v", err)
			}
			fields, err := readFields(updateFile)
			if err != nil {
				exitErr("%v", err)
			}
			item, err := backend().UpdateFields(cmd.Context(), args[0], fields)
			if err != nil {
				exitErr("%v", err)
			}
			notifier.Successf(spec.singular, "%s updated", spec.singular)
			printJSON(item)
		},
	}
	updateCmd.Flags().StringVarP(&updateFile, "file", "f", "-", "JSON file ('-' for stdin)")

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: fmt.Sprintf("Delete a %s", spec.singular),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if _, err := requireAccess(spec.navPath); err != nil {
				exitErr("%v", err)
			}
			ctrl := controller.New(spec.ctrl, backend(), notifier)
			defer ctrl.Close()
			confirm := func() bool {
				if yes {
					return true
				}
				answer := prompt(fmt.Sprintf("Delete %s %s? [y/N] ", spec.singular, args[0]))
				return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
			}
			if err := ctrl.Delete(cmd.Context(), args[0], confirm); err != nil {
				os.Exit(1)
			}
		},
	}
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")

	cmd.AddCommand(listCmd, getCmd, createCmd, updateCmd, deleteCmd)
	return cmd
}

// readFields loads a JSON object from a file or stdin.
func readFields(path string) (map[string]any, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	fields := map[string]any{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	return fields, nil
}

// validateAs decodes a draft into the entity's form type and runs its
// validation, so CLI input gets the same checks a dialog submission would.
func validateAs[F interface{ Validate() error }](fields map[string]any) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	var form F
	if err := json.Unmarshal(data, &form); err != nil {
		return fmt.Errorf("invalid fields: %w", err)
	}
	return form.Validate()
}

// formFields flattens a form struct into the draft map shape.
func formFields(form any) map[string]any {
	data, err := json.Marshal(form)
	if err != nil {
		return map[string]any{}
	}
	out := map[string]any{}
	_ = json.Unmarshal(data, &out)
	return out
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		exitErr("encode output: %v", err)
	}
	fmt.Println(string(data))
}

func renderTable[T any](headers []string, items []T, row func(T) []string) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	bold := color.New(color.Bold).SprintFunc()
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = bold(h)
	}
	fmt.Fprintln(w, strings.Join(cells, "\t"))
	for _, item := range items {
		fmt.Fprintln(w, strings.Join(row(item), "\t"))
	}
	_ = w.Flush()
}
