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

// execute runs the CLI with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writePrices(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prices.txt")
	require.NoError(t, os.WriteFile(path, []byte("99\n149\n250\n314\n1999\n612\n"), 0o644))
	return path
}

func TestChangeCmd(t *testing.T) {
	out, err := execute(t, "change", "11", "0")
	require.NoError(t, err)
	assert.Equal(t, "11: [1 10] (2 coins)\n0: [] (0 coins)\n", out)

	out, err = execute(t, "change", "--denoms", "1,3,4", "6")
	require.NoError(t, err)
	assert.Equal(t, "6: [3 3] (2 coins)\n", out)

	_, err = execute(t, "change", "--denoms", "5,10", "6")
	assert.Error(t, err)

	_, err = execute(t, "change", "x")
	assert.Error(t, err)
}

func TestConfigCmd(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "length: 1000")
	assert.Contains(t, out, "strategy: whole")
}

func TestSimulateCmd(t *testing.T) {
	path := writePrices(t)
	out, err := execute(t, "simulate", "--prices", path, "--length", "50", "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "system:  [1 5 10 25]")
	assert.Contains(t, out, "over 50 payments")

	out, err = execute(t, "simulate", "--prices", path, "--length", "3", "--trace")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "bill="))
}

func TestSearchCmd_Text(t *testing.T) {
	path := writePrices(t)
	out, err := execute(t, "search", "--prices", path,
		"--vary", "2", "--from", "20", "--to", "30", "--length", "40", "--top", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "The winner is: [1 5 10 "), out)
	assert.Contains(t, out, "over 11 candidates")
	assert.Contains(t, out, "  1. ")
	assert.Contains(t, out, "  3. ")
}

func TestSearchCmd_JSONAndConfigFile(t *testing.T) {
	path := writePrices(t)
	cfgPath := filepath.Join(t.TempDir(), "search.yaml")
	cfg := "slots: [5, 10, 25]\nvaried: [0]\nfrom: 2\nto: 6\nlength: 30\nprices: " + path + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	out, err := execute(t, "search", "--config", cfgPath, "--json", "--top", "2", "--workers", "2")
	require.NoError(t, err)

	var rep searchReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 5, rep.Trials)
	assert.Len(t, rep.Top, 2)
	assert.Equal(t, rep.Winner, rep.Top[0].Denominations)
	assert.NotEmpty(t, rep.RunID)
}

func TestSearchCmd_Errors(t *testing.T) {
	path := writePrices(t)

	_, err := execute(t, "search", "--prices", filepath.Join(t.TempDir(), "none.txt"))
	assert.Error(t, err)

	_, err = execute(t, "search", "--prices", path, "--from", "9", "--to", "3")
	assert.Error(t, err)

	_, err = execute(t, "search", "--prices", path, "--log-level", "loud")
	assert.Error(t, err)
}
