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

const sampleInput = "029A\n980A\n179A\n456A\n379A\n"

// execute runs the root command with args; the config file defaults to a missing one.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSolve(t *testing.T) {
	path := writeFile(t, "input.txt", sampleInput)

	out, err := execute(t, "", "solve", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "126384")
	assert.Contains(t, lines[1], "154115708116294")
}

func TestSolveStdin(t *testing.T) {
	out, err := execute(t, sampleInput, "solve", "-d", "0", "-d", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "25392")
	assert.Contains(t, lines[1], "126384")
}

func TestSolveJSON(t *testing.T) {
	out, err := execute(t, sampleInput, "solve", "--json", "--depth", "2")
	require.NoError(t, err)

	var result jsonResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 2, result.Depth)
	assert.Equal(t, 126384, result.Sum)
	assert.Positive(t, result.MemoSize)
}

func TestSolveConfig(t *testing.T) {
	input := writeFile(t, "codes.txt", sampleInput)
	cfg := writeFile(t, "keypadsolver.yaml", "depths: [3]\nlog_level: error\ninput: "+input+"\n")

	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfg, "solve"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, 1, strings.Count(stdout.String(), "\n"))
	assert.Contains(t, stdout.String(), "310188")
}

func TestSolveErrors(t *testing.T) {
	_, err := execute(t, "029A\n12\n", "solve")
	assert.ErrorContains(t, err, "line 2")

	_, err = execute(t, sampleInput, "solve", "--depth=-1")
	assert.Error(t, err)

	out, err := execute(t, sampleInput, "solve", "--depth", "50")
	assert.ErrorContains(t, err, "overflow")
	assert.Empty(t, out)

	_, err = execute(t, "", "solve", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, err = execute(t, sampleInput, "--log-level", "loud", "solve")
	assert.Error(t, err)
}

func TestTrace(t *testing.T) {
	out, err := execute(t, "", "trace", "029A", "--depth", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "<A^A^^>AvvvA")
	assert.Contains(t, out, "complexity 029A: 348")

	out, err = execute(t, "", "trace", "029A")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "\n"))
	assert.Contains(t, out, "complexity 029A: 1972")

	_, err = execute(t, "", "trace", "029A", "--depth", "9")
	assert.Error(t, err)
	_, err = execute(t, "", "trace", "02B")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "keypadsolver version dev\n", out)
}
