package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "langton version "+version+"\n", out)
}

func TestRunJSON(t *testing.T) {
	out, err := execute(t, "run", "--max-steps", "15000", "--check-interval", "200", "--json")
	require.NoError(t, err)

	var res runOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Detected)
	assert.Contains(t, []string{"NE", "NW", "SE", "SW"}, res.Direction)
	assert.Less(t, res.Steps, 15000)
	assert.GreaterOrEqual(t, res.Width, 100)
}

func TestRunShortBudget(t *testing.T) {
	out, err := execute(t, "run", "--max-steps", "100", "--check-interval", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "No highway within 100 steps")
	assert.Contains(t, out, "Grid: 100x100")
}

func TestRunRejectsBadDirection(t *testing.T) {
	_, err := execute(t, "run", "--dir", "7", "--max-steps", "10")
	assert.Error(t, err)
}

func TestRunReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "langton.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation:\n  size: 40\nrun:\n  max_steps: 10\n"), 0o644))

	out, err := execute(t, "--config", path, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "No highway within 10 steps")
	assert.Contains(t, out, "Grid: 40x40")
}

func TestGenerateStatsExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	out, err := execute(t, "generate",
		"--count", "3", "--output", dir, "--grid-size", "20",
		"--max-steps", "2000", "--check-interval", "100", "--workers", "2", "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved 3 results to "+dir)
	assert.Contains(t, out, "Simulations:      3")

	files, err := filepath.Glob(filepath.Join(dir, "sim_*.json"))
	require.NoError(t, err)
	assert.Len(t, files, 3)

	out, err = execute(t, "stats", dir, "--json")
	require.NoError(t, err)
	var stats statsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 3, stats.Total)
	assert.Len(t, stats.ByDirection, 4)

	pq := filepath.Join(t.TempDir(), "results.parquet")
	out, err = execute(t, "export", dir, pq)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 3 results")

	out, err = execute(t, "stats", pq)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Simulations:      3\n"), out)
}

func TestGenerateValidatesFlags(t *testing.T) {
	dir := t.TempDir()
	for _, args := range [][]string{
		{"generate", "--output", dir, "--count", "0"},
		{"generate", "--output", dir, "--grid-size", "5"},
		{"generate", "--output", dir, "--pattern-density", "2"},
	} {
		_, err := execute(t, args...)
		assert.Error(t, err, "args %v", args)
	}
}

func TestStatsRejectsUnknownFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	_, err := execute(t, "stats", path)
	assert.Error(t, err)
}

func TestExportEmptyDir(t *testing.T) {
	_, err := execute(t, "export", t.TempDir(), filepath.Join(t.TempDir(), "x.parquet"))
	assert.Error(t, err)
}
