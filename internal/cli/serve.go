package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/bookcafe/internal/config"
	"github.com/mrlokans/bookcafe/internal/entrypoint"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	return entrypoint.Run(config.NewConfig(), version)
}
