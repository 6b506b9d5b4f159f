package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// clientVersion is stamped by the release build.
var clientVersion = "v0.4.0"

type healthResponse struct {
	Status           string `json:"status"`
	Version          string `json:"version"`
	MinClientVersion string `json:"minClientVersion,omitempty"`
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check connectivity, configuration and session health",
	Run: func(cmd *cobra.Command, args []string) {
		green := color.New(color.FgGreen).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		failed := false

		fmt.Printf("API URL: %s\n", cfg.APIURL)

		start := time.Now()
		var health healthResponse
		err := client.JSON(cmd.Context(), "GET", "/health", nil, &health)
		if err != nil {
			fmt.Printf("%s API unreachable: %v\n", red("✗"), err)
			failed = true
		} else {
			fmt.Printf("%s API reachable (%s, server %s)\n", green("✓"),
				time.Since(start).Round(time.Millisecond), health.Version)
			if health.MinClientVersion != "" && semver.IsValid(health.MinClientVersion) {
				if semver.Compare(clientVersion, health.MinClientVersion) < 0 {
					fmt.Printf("%s client %s is older than required %s; please upgrade\n",
						red("✗"), clientVersion, health.MinClientVersion)
					failed = true
				} else {
					fmt.Printf("%s client %s satisfies minimum %s\n",
						green("✓"), clientVersion, health.MinClientVersion)
				}
			}
		}

		if path, err := cfg.StateDBPath(); err == nil {
			if _, serr := os.Stat(path); serr == nil {
				fmt.Printf("%s local state at %s\n", green("✓"), path)
			} else {
				fmt.Printf("%s no local state yet (%s)\n", yellow("⚠"), path)
			}
		}

		if user := sess.CurrentUser(); user != nil {
			fmt.Printf("%s logged in as %s (%s)\n", green("✓"), user.Email, user.Role)
			if exp, ok := sess.TokenExpiry(); ok {
				if sess.ExpiresSoon() {
					fmt.Printf("%s token expires %s\n", yellow("⚠"), exp.Format(time.RFC3339))
				} else {
					fmt.Printf("%s token valid until %s\n", green("✓"), exp.Format(time.RFC3339))
				}
			}
		} else {
			fmt.Printf("%s not logged in\n", yellow("⚠"))
		}

		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
