package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// flag values persist between Execute calls; start each run from defaults
	rootCmd.ResetFlags()
	rootFlags()
	projectCmd.ResetFlags()
	projectFlags()
	initCmd.ResetFlags()
	initFlags()

	var out, logs bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&logs)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCLI_InitValidateProject(t *testing.T) {
	dir := t.TempDir()
	scenario := filepath.Join(dir, "scenario.yaml")

	out, err := execute(t, "init", scenario)
	require.NoError(t, err)
	assert.Contains(t, out, "Example scenario written")

	_, err = execute(t, "init", scenario)
	assert.Error(t, err, "init must not overwrite without --force")

	out, err = execute(t, "validate", scenario)
	require.NoError(t, err)
	assert.Contains(t, out, "valid")

	out, err = execute(t, "project", scenario, "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 17, "header plus years 0..15")

	reports := filepath.Join(dir, "reports")
	out, err = execute(t, "project", scenario, "--format", "summary", "--format", "pdf", "--output-dir", reports)
	require.NoError(t, err)
	entries, err := os.ReadDir(reports)
	require.NoError(t, err)
	assert.Len(t, entries, 2, out)
}

func TestCLI_Errors(t *testing.T) {
	_, err := execute(t, "project", "missing.yaml", "--format", "summary", "--output-dir", "")
	assert.Error(t, err)

	_, err = execute(t, "version", "--log-level", "chatty")
	assert.Error(t, err)
}

func TestCLI_FormatsAndVersion(t *testing.T) {
	out, err := execute(t, "formats", "--log-level", "warn")
	require.NoError(t, err)
	assert.Contains(t, out, "summary")
	assert.Contains(t, out, "console")

	out, err = execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "bamboo-forecast version")
}
