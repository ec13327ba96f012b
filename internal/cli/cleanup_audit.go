package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/bookcafe/internal/config"
	"github.com/mrlokans/bookcafe/internal/entrypoint"
)

var retentionDays int

// cleanupAuditCmd runs one audit retention sweep and exits
var cleanupAuditCmd = &cobra.Command{
	Use:   "cleanup-audit",
	Short: "Delete audit events older than the retention period",
	Long: `Delete audit events older than the retention period.

The server runs the same sweep on AUDIT_CLEANUP_SCHEDULE; use this command
when the task queue is disabled or to purge on demand.

Examples:
  bookcafe cleanup-audit
  bookcafe cleanup-audit --retention-days 7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if retentionDays < 0 {
			return fmt.Errorf("--retention-days must not be negative")
		}

		deleted, err := entrypoint.CleanupAudit(config.NewConfig(), retentionDays)
		if err != nil {
			return fmt.Errorf("audit cleanup failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d audit event(s)\n", deleted)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanupAuditCmd)

	cleanupAuditCmd.Flags().IntVar(&retentionDays, "retention-days", 0, "Days of audit events to keep (default: AUDIT_RETENTION_DAYS)")
}
