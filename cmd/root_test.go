package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), args, strings.NewReader(""), &out))
	return out.String()
}

func TestRunDoesNotCarryFlagsOver(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")

	runArgs(t, "scale", "c", "ionian", "--scale-file", first, "--midi", "--log-level", "error")
	assert.FileExists(t, filepath.Join(dir, "first.mid"))

	runArgs(t, "scale", "c", "ionian", "--scale-file", second, "--log-level", "error")
	assert.FileExists(t, second)
	assert.NoFileExists(t, filepath.Join(dir, "second.mid"))
	assert.False(t, rootCmd.PersistentFlags().Lookup("midi").Changed)
}

func TestRunDoesNotCarryConfigFileOver(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "notation.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output:\n  midi: true\nlog:\n  level: error\n"), 0600))

	first := filepath.Join(dir, "first.txt")
	runArgs(t, "scale", "d", "dorian", "--config", cfg, "--scale-file", first)
	assert.FileExists(t, filepath.Join(dir, "first.mid"))

	second := filepath.Join(dir, "second.txt")
	runArgs(t, "scale", "d", "dorian", "--scale-file", second, "--log-level", "error")
	assert.FileExists(t, second)
	assert.NoFileExists(t, filepath.Join(dir, "second.mid"))
	assert.Empty(t, cfgFile)
}
