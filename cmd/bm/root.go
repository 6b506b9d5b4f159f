package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/buildmaintain/bm/internal/apiclient"
	"github.com/buildmaintain/bm/internal/config"
	"github.com/buildmaintain/bm/internal/gateway"
	"github.com/buildmaintain/bm/internal/nav"
	"github.com/buildmaintain/bm/internal/notify"
	"github.com/buildmaintain/bm/internal/session"
	"github.com/buildmaintain/bm/internal/store"
	"github.com/buildmaintain/bm/internal/types"
)

// Shared state initialized by rootCmd's PersistentPreRunE. Every subcommand
// runs after it, so these are always populated inside Run closures.
var (
	cfg      config.Config
	db       store.Store
	sess     *session.Store
	client   *apiclient.Client
	api      *gateway.Set
	notifier *notify.Center

	flagAPIURL string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "bm",
	Short: "BuildMaintain facility management client",
	Long: `bm is the command-line client for the BuildMaintain facility
management platform: buildings, tenants, contracts, work orders, inventory,
procurement, invoicing, and green building certification tracking.

Log in once with 'bm login'; the session persists across invocations until
'bm logout' or the server rejects the token.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if flagAPIURL != "" {
			cfg.APIURL = flagAPIURL
		}
		if flagDebug {
			cfg.Debug = true
		}

		dbPath, err := cfg.StateDBPath()
		if err != nil {
			return fmt.Errorf("resolve state path: %w", err)
		}
		db, err = store.New(store.Config{Path: dbPath})
		if err != nil {
			return fmt.Errorf("open local state: %w", err)
		}

		sess = session.New(db)
		if err := sess.Hydrate(cmd.Context()); err != nil {
			return err
		}

		client = apiclient.New(cfg, sess.Token)
		client.AuthFailed = func() {
			sess.Invalidate(context.Background())
		}
		api = gateway.NewSet(client)
		notifier = notify.NewCenter(100, notify.NewConsoleSink(os.Stderr), &storeSink{db: db})

		// Rotate a near-expiry token before the command's own requests run.
		// Failure is not fatal here; the command's first call will surface it.
		if sess.ExpiresSoon() {
			if refresh, ok := sess.RefreshToken(); ok {
				if auth, err := api.Auth.Refresh(cmd.Context(), refresh); err == nil {
					_ = sess.CompleteAuth(cmd.Context(), auth)
				}
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			_ = db.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "API base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log API requests")
}

// requireAuth fails unless a session is held.
func requireAuth() (*types.User, error) {
	user := sess.CurrentUser()
	if user == nil {
		return nil, fmt.Errorf("not logged in; run 'bm login' first")
	}
	return user, nil
}

// requireAccess enforces the role gate for a page path before any request
// goes out.
func requireAccess(path string) (*types.User, error) {
	user, err := requireAuth()
	if err != nil {
		return nil, err
	}
	if !nav.Allowed(user.Role, path) {
		return nil, fmt.Errorf("role %s may not access %s", user.Role, path)
	}
	return user, nil
}

func exitErr(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
