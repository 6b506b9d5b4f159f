package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/buildmaintain/bm/internal/controller"
	"github.com/buildmaintain/bm/internal/nav"
)

// page erases the entity type so the shell can hold whichever list the user
// navigated to.
type page interface {
	Load(ctx context.Context) error
	SetSearch(term string)
	SetFacet(value string)
	Render()
	Open(ctx context.Context, id string)
	Close()
}

type entityPage[T any] struct {
	spec resourceSpec[T]
	ctrl *controller.List[T]
	api  resourceAPI[T]
}

func newEntityPage[T any](spec resourceSpec[T], backend resourceAPI[T]) *entityPage[T] {
	ctrl := controller.New(spec.ctrl, backend, notifier)
	ctrl.Snapshots = db
	return &entityPage[T]{spec: spec, ctrl: ctrl, api: backend}
}

func (p *entityPage[T]) Load(ctx context.Context) error { return p.ctrl.Load(ctx) }
func (p *entityPage[T]) SetSearch(term string)          { p.ctrl.SetSearch(term) }
func (p *entityPage[T]) SetFacet(value string)          { p.ctrl.SetFacet(value) }
func (p *entityPage[T]) Close()                         { p.ctrl.Close() }

func (p *entityPage[T]) Render() {
	items := p.ctrl.Visible()
	renderTable(p.spec.headers, items, p.spec.row)
	fmt.Printf("%d of %d %ss\n", len(items), len(p.ctrl.Items()), p.spec.singular)
}

func (p *entityPage[T]) Open(ctx context.Context, id string) {
	item, err := p.api.Get(ctx, id)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	printJSON(item)
}

// pageRegistry builds the navigable pages. Keyed by nav path so role menus
// line up directly.
func pageRegistry() map[string]func() page {
	return map[string]func() page{
		"/buildings":      func() page { return newEntityPage(buildingSpec(), api.Buildings) },
		"/tenants":        func() page { return newEntityPage(tenantSpec(), api.Tenants) },
		"/contracts":      func() page { return newEntityPage(contractSpec(), api.Contracts) },
		"/work-orders":    func() page { return newEntityPage(workOrderSpec(), api.WorkOrders) },
		"/inventory":      func() page { return newEntityPage(inventorySpec(), api.Inventory) },
		"/vendors":        func() page { return newEntityPage(vendorSpec(), api.Vendors) },
		"/products":       func() page { return newEntityPage(productSpec(), api.Products) },
		"/projects":       func() page { return newEntityPage(projectSpec(), api.Projects) },
		"/invoices":       func() page { return newEntityPage(invoiceSpec(), api.Invoices) },
		"/boqs":           func() page { return newEntityPage(boqSpec(), api.BOQs) },
		"/rfqs":           func() page { return newEntityPage(rfqSpec(), api.RFQs) },
		"/bids":           func() page { return newEntityPage(bidSpec(), api.Bids) },
		"/documents":      func() page { return newEntityPage(documentSpec(), api.Documents) },
		"/calculations":   func() page { return newEntityPage(calculationSpec(), api.Calculations) },
		"/certifications": func() page { return newEntityPage(greenProjectSpec(), api.GreenProjects) },
		"/users":          func() page { return newEntityPage(userSpec(), api.Users) },
	}
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive session for browsing pages",
	Run: func(cmd *cobra.Command, args []string) {
		user, err := requireAuth()
		if err != nil {
			exitErr("%v", err)
		}

		rl, err := readline.New(color.New(color.FgCyan).Sprint("bm> "))
		if err != nil {
			exitErr("%v", err)
		}
		defer func() { _ = rl.Close() }()

		registry := pageRegistry()
		items := nav.ItemsFor(user.Role)
		var current page
		defer func() {
			if current != nil {
				current.Close()
			}
		}()

		fmt.Printf("Logged in as %s (%s). Type 'help' for commands.\n", user.Email, user.Role)

		for {
			line, err := rl.Readline()
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				return
			}
			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			command, rest := fields[0], fields[1:]

			switch command {
			case "help":
				fmt.Println("pages                 show the pages your role can open")
				fmt.Println("use <page>            open a page and fetch its list")
				fmt.Println("list                  show the current page's visible rows")
				fmt.Println("search <term>         set the free-text filter")
				fmt.Println("filter <value|all>    set the facet filter")
				fmt.Println("open <id>             show one record as JSON")
				fmt.Println("refresh               re-fetch the current page")
				fmt.Println("exit                  leave the shell")
			case "pages":
				for _, item := range items {
					fmt.Printf("  %-20s %s\n", strings.TrimPrefix(item.Path, "/"), item.Label)
				}
			case "use":
				if len(rest) != 1 {
					fmt.Println("usage: use <page>")
					continue
				}
				path := "/" + strings.TrimPrefix(rest[0], "/")
				if !nav.Allowed(user.Role, path) {
					fmt.Printf("role %s may not access %s\n", user.Role, path)
					continue
				}
				build, ok := registry[path]
				if !ok {
					fmt.Printf("unknown page %s\n", path)
					continue
				}
				if current != nil {
					current.Close()
				}
				current = build()
				if err := current.Load(cmd.Context()); err == nil {
					current.Render()
				}
			case "list":
				if current == nil {
					fmt.Println("no page open; try 'use buildings'")
					continue
				}
				current.Render()
			case "search":
				if current == nil {
					fmt.Println("no page open")
					continue
				}
				current.SetSearch(strings.Join(rest, " "))
				current.Render()
			case "filter":
				if current == nil {
					fmt.Println("no page open")
					continue
				}
				value := controller.FacetAll
				if len(rest) > 0 {
					value = rest[0]
				}
				current.SetFacet(value)
				current.Render()
			case "open":
				if current == nil || len(rest) != 1 {
					fmt.Println("usage: open <id> (with a page open)")
					continue
				}
				current.Open(cmd.Context(), rest[0])
			case "refresh":
				if current == nil {
					fmt.Println("no page open")
					continue
				}
				if err := current.Load(cmd.Context()); err == nil {
					current.Render()
				}
			case "exit", "quit":
				return
			default:
				fmt.Printf("unknown command %q; type 'help'\n", command)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
