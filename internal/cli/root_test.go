package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/langtour/internal/tour"
)

// execute runs the root command with args and returns what it wrote to
// stdout and stderr.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "langtour.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "langtour", cmd.Use)
	assert.Contains(t, cmd.Long, "fixed order")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"list", "run"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	tests := map[string]string{
		"config":    "",
		"log-level": "warn",
		"metrics":   "false",
		"pace":      "1ms",
	}
	for name, def := range tests {
		f := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, def, f.DefValue, name)
	}
}

// ── list ─────────────────────────────────────────────────────────────────────

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 12)
	assert.True(t, strings.HasPrefix(lines[0], "bindings"))
	assert.Contains(t, lines[0], "Basics")
	assert.True(t, strings.HasPrefix(lines[11], "macros"))
	assert.Contains(t, lines[11], "Advanced")
}

// ── run ──────────────────────────────────────────────────────────────────────

func TestRunSingleTopic(t *testing.T) {
	out, stderr, err := execute(t, "run", "functions")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "--- Basics ---\n\n━━━ Functions — parameters ━━━\n"))
	assert.Contains(t, out, "━━━ Functions — return values ━━━")
	assert.NotContains(t, out, "Bindings")
	assert.Empty(t, stderr, "info logs are below the default level")
}

func TestRunFollowsTourOrder(t *testing.T) {
	out, _, err := execute(t, "run", "macros", "bindings", "macros")
	require.NoError(t, err)

	b := strings.Index(out, "━━━ Bindings")
	m := strings.Index(out, "━━━ Macros")
	require.NotEqual(t, -1, b)
	require.NotEqual(t, -1, m)
	assert.Less(t, b, m)
	assert.Equal(t, 1, strings.Count(out, "━━━ Macros — building a map from pairs ━━━"))
	assert.Contains(t, out, "\n--- Advanced ---\n")
}

func TestRunUnknownTopic(t *testing.T) {
	_, _, err := execute(t, "run", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, tour.ErrUnknownTopic)
}

func TestRunRequiresTopic(t *testing.T) {
	_, _, err := execute(t, "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

func TestRootRejectsArgs(t *testing.T) {
	_, _, err := execute(t, "ownership")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRunWholeTour(t *testing.T) {
	out, _, err := execute(t, "--pace", "0s")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "--- Basics ---\n"))
	assert.Equal(t, 1, strings.Count(out, "--- Basics ---"))
	assert.Equal(t, 1, strings.Count(out, "--- Advanced ---"))
	assert.Less(t, strings.Index(out, "━━━ Enums"), strings.Index(out, "━━━ Lifetimes"))
	assert.Contains(t, out, "  Result: 10\n")
}

func TestMetricsFlag(t *testing.T) {
	out, _, err := execute(t, "run", "functions", "--metrics")
	require.NoError(t, err)

	assert.Contains(t, out, "--- Metrics ---")
	assert.Contains(t, out, `langtour_sections_total{topic="functions"} 3`)
	assert.Contains(t, out, `langtour_topic_duration_seconds{topic="functions"} count=1`)
}

func TestDebugLogsCarryRunID(t *testing.T) {
	_, stderr, err := execute(t, "run", "functions", "--log-level", "debug")
	require.NoError(t, err)

	assert.Contains(t, stderr, "starting tour")
	assert.Contains(t, stderr, "topic started")
	assert.Contains(t, stderr, "topic=functions")
	assert.Contains(t, stderr, "run=")
}

// ── validation ───────────────────────────────────────────────────────────────

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "list", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "loud"`)
}

func TestNegativePace(t *testing.T) {
	_, _, err := execute(t, "list", "--pace=-1ms")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pace")
}

// ── config ───────────────────────────────────────────────────────────────────

func TestConfigSelectsTopics(t *testing.T) {
	path := writeConfig(t, "topics: [macros]\nlog_level: info\npace: 0s\n")

	out, stderr, err := execute(t, "--config", path)
	require.NoError(t, err)

	assert.Contains(t, out, "━━━ Macros — building a sequence from arguments ━━━")
	assert.NotContains(t, out, "Bindings")
	assert.Contains(t, stderr, "topic finished")
}

func TestFlagOverridesConfig(t *testing.T) {
	path := writeConfig(t, "log_level: info\n")

	_, stderr, err := execute(t, "run", "functions", "--config", path, "--log-level", "error")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestConfigBadLogLevel(t *testing.T) {
	path := writeConfig(t, "log_level: chatty\n")

	_, _, err := execute(t, "list", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestConfigMissingFile(t *testing.T) {
	_, _, err := execute(t, "list", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
