package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrlokans/bookcafe/internal/config"
)

var (
	// Build information, injected by main
	version = "dev"
	commit  = "unknown"

	// Global flags
	envFiles []string
)

// rootCmd runs the API server when no subcommand is given
var rootCmd = &cobra.Command{
	Use:   "bookcafe",
	Short: "Book Cafe API - books, menus and orders for a cafe bookstore",
	Long: `Book Cafe API serves books, categories, menus and orders over a JSON REST API.

Configuration is read from the environment; .env files are loaded first
and never override variables that are already set.

Examples:
  bookcafe                       # same as "bookcafe serve"
  bookcafe serve --env-file prod.env
  bookcafe cleanup-audit --retention-days 7`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadEnvFiles(envFiles...)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

// SetBuildInfo records the version reported by the CLI and /health.
func SetBuildInfo(v, c string) {
	version = v
	commit = c
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "Environment file(s) to load (default: .env)")
}
