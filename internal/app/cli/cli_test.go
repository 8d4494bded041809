package cli_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"orderflow/internal/app/cli"
	"orderflow/internal/app/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCommand(config.New(filepath.Join(t.TempDir(), "missing.env")))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestListeners(t *testing.T) {
	out, err := run(t, "listeners", "--log-level", "error")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	require.Equal(t, "order.after_save (3)", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "  1. priority=2 "))
	require.True(t, strings.HasPrefix(lines[2], "  2. priority=1 "))
	require.True(t, strings.HasPrefix(lines[3], "  3. priority=-100 "))
	require.Equal(t, "order.before_save (3)", lines[4])
}

func TestListeners_SingleEvent(t *testing.T) {
	out, err := run(t, "listeners", "order.unknown", "--log-level", "error")
	require.NoError(t, err)
	require.Equal(t, "order.unknown (0)\n", out)
}

func TestServe_RequiresDatabase(t *testing.T) {
	t.Setenv(config.KeyDatabaseURL, "")
	_, err := run(t, "serve", "--log-level", "error")
	require.ErrorIs(t, err, config.ErrDatabaseURLRequired)
}

func TestMigrate_RejectsUnknownDirection(t *testing.T) {
	_, err := run(t, "migrate", "sideways", "--log-level", "error")
	require.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "listeners", "--log-level", "loud")
	require.Error(t, err)
}
