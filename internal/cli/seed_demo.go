package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/bookcafe/internal/config"
	"github.com/mrlokans/bookcafe/internal/entrypoint"
)

var seedDemoCmd = &cobra.Command{
	Use:   "seed-demo",
	Short: "Fill the database with public domain books and a sample menu",
	Long: `Fill the configured database with demo records: public domain books with
categories, a small cafe menu and one order.

Run it against an empty database, then start the server with DEMO_MODE=true
to expose the data read-only.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := entrypoint.SeedDemo(cmd.Context(), config.NewConfig())
		if err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d categories, %d books, %d menus, %d orders\n",
			summary.Categories, summary.Books, summary.Menus, summary.Orders)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedDemoCmd)
}
