package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var sb strings.Builder
	cmd.SetOut(&sb)
	cmd.SetErr(&sb)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return sb.String(), err
}

func TestRunDayWithExplicitInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day1.txt")
	require.NoError(t, os.WriteFile(path, []byte("L50\nL10\n"), 0o644))

	out, err := runCLI(t, "1", path)
	require.NoError(t, err)
	assert.Contains(t, out, "A: 1\n")
	assert.Contains(t, out, "B: 1\n")
	assert.Contains(t, out, "Time:")
}

func TestParseErrorIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day1.txt")
	require.NoError(t, os.WriteFile(path, []byte("X10\n"), 0o644))

	_, err := runCLI(t, "1", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown direction")
}

func TestUnimplementedDay(t *testing.T) {
	_, err := runCLI(t, "25")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no implementation for day 25")
}

func TestInvalidDay(t *testing.T) {
	for _, day := range []string{"0", "26", "x"} {
		_, err := runCLI(t, day)
		require.Error(t, err, "day %s", day)
		assert.Contains(t, err.Error(), "not a valid day")
	}
}

func TestMissingInputFile(t *testing.T) {
	_, err := runCLI(t, "1", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}
