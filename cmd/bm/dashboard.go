package main

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/buildmaintain/bm/internal/nav"
)

// countersFor maps navigation pages to collection fetchers. Only pages the
// role can see are queried.
func countersFor() map[string]func(context.Context) (int, error) {
	return map[string]func(context.Context) (int, error){
		"/buildings": func(ctx context.Context) (int, error) {
			items, err := api.Buildings.List(ctx)
			return len(items), err
		},
		"/tenants": func(ctx context.Context) (int, error) {
			items, err := api.Tenants.List(ctx)
			return len(items), err
		},
		"/contracts": func(ctx context.Context) (int, error) {
			items, err := api.Contracts.List(ctx)
			return len(items), err
		},
		"/work-orders": func(ctx context.Context) (int, error) {
			items, err := api.WorkOrders.List(ctx)
			return len(items), err
		},
		"/inventory": func(ctx context.Context) (int, error) {
			items, err := api.Inventory.List(ctx)
			return len(items), err
		},
		"/projects": func(ctx context.Context) (int, error) {
			items, err := api.Projects.List(ctx)
			return len(items), err
		},
		"/invoices": func(ctx context.Context) (int, error) {
			items, err := api.Invoices.List(ctx)
			return len(items), err
		},
		"/vendors": func(ctx context.Context) (int, error) {
			items, err := api.Vendors.List(ctx)
			return len(items), err
		},
		"/products": func(ctx context.Context) (int, error) {
			items, err := api.Products.List(ctx)
			return len(items), err
		},
		"/boqs": func(ctx context.Context) (int, error) {
			items, err := api.BOQs.List(ctx)
			return len(items), err
		},
		"/rfqs": func(ctx context.Context) (int, error) {
			items, err := api.RFQs.List(ctx)
			return len(items), err
		},
		"/bids": func(ctx context.Context) (int, error) {
			items, err := api.Bids.List(ctx)
			return len(items), err
		},
		"/documents": func(ctx context.Context) (int, error) {
			items, err := api.Documents.List(ctx)
			return len(items), err
		},
		"/calculations": func(ctx context.Context) (int, error) {
			items, err := api.Calculations.List(ctx)
			return len(items), err
		},
		"/certifications": func(ctx context.Context) (int, error) {
			items, err := api.GreenProjects.List(ctx)
			return len(items), err
		},
		"/users": func(ctx context.Context) (int, error) {
			items, err := api.Users.List(ctx)
			return len(items), err
		},
	}
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Summarize the collections visible to your role",
	Run: func(cmd *cobra.Command, args []string) {
		user, err := requireAuth()
		if err != nil {
			exitErr("%v", err)
		}

		counters := countersFor()
		type entry struct {
			label string
			count int
		}
		var mu sync.Mutex
		results := map[string]entry{}

		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(4)
		for _, item := range nav.ItemsFor(user.Role) {
			fetch, ok := counters[item.Path]
			if !ok {
				continue
			}
			g.Go(func() error {
				n, err := fetch(ctx)
				if err != nil {
					return fmt.Errorf("%s: %w", item.Label, err)
				}
				mu.Lock()
				results[item.Path] = entry{label: item.Label, count: n}
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			exitErr("%v", err)
		}

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		fmt.Printf("%s\n\n", cyan(fmt.Sprintf("=== %s (%s) ===", user.OrganizationName, user.Role)))

		paths := make([]string, 0, len(results))
		for p := range results {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		for _, p := range paths {
			fmt.Printf("  %-16s %d\n", results[p].label, results[p].count)
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
