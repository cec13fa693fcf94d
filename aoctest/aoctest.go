// Package aoctest verifies day solutions against the real puzzle input
// and the previously accepted answers.
package aoctest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aoc "github.com/runfalk/advent-of-code-2025"
)

// Real runs solve against data/day<day>.txt and checks both answers.
// The test is skipped when the input file is absent, since real inputs
// are assigned per participant and not committed.
func Real(t *testing.T, day int, solve aoc.Solution, wantA, wantB any) {
	t.Helper()

	path := filepath.Join("..", aoc.DefaultInputPath(day))
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		t.Skipf("no real input at %s", path)
	}
	require.NoError(t, err)

	gotA, gotB, err := solve(string(data))
	require.NoError(t, err, "solution failed to complete")
	assert.Equal(t, wantA, gotA, "part A")
	if wantB != nil {
		assert.Equal(t, wantB, gotB, "part B")
	}
}
