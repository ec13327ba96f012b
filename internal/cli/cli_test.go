package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func useTempDatabase(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_PATH", filepath.Join(t.TempDir(), "cli.db"))
	t.Setenv("DATABASE_LOG_LEVEL", "silent")
	t.Setenv("LOG_LEVEL", "error")
}

func TestVersionCommand(t *testing.T) {
	SetBuildInfo("1.2.3", "abc123")
	t.Cleanup(func() { SetBuildInfo("dev", "unknown") })

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "bookcafe 1.2.3 (commit abc123)\n", out)
}

func TestSeedDemoThenCleanupAudit(t *testing.T) {
	useTempDatabase(t)

	out, err := execute(t, "seed-demo")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 4 categories, 5 books, 5 menus, 1 orders")

	out, err = execute(t, "cleanup-audit", "--retention-days", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 0 audit event(s)")
}

func TestCleanupAuditRejectsNegativeRetention(t *testing.T) {
	useTempDatabase(t)
	t.Cleanup(func() { retentionDays = 0 })

	_, err := execute(t, "cleanup-audit", "--retention-days", "-1")

	assert.ErrorContains(t, err, "must not be negative")
}

func TestUnknownCommand(t *testing.T) {
	_, err := execute(t, "moonwalk")

	assert.Error(t, err)
}
