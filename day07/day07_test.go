package day07

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runfalk/advent-of-code-2025/aoctest"
)

const exampleInput = `.......S.......
...............
.......^.......
...............
......^.^......
...............
.....^.^.^.....
...............
....^.^...^....
...............
...^.^...^.^...
...............
..^...^.....^..
...............
.^.^.^.^.^...^.
...............`

func TestExampleA(t *testing.T) {
	m, err := parseInput(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, 21, partA(m))
}

func TestExampleB(t *testing.T) {
	m, err := parseInput(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, 40, partB(m))
}

func TestNoSplitters(t *testing.T) {
	m, err := parseInput("S..\n...")
	require.NoError(t, err)
	assert.Equal(t, 0, partA(m))
	assert.Equal(t, 1, partB(m))
}

func TestRejectsMalformedManifolds(t *testing.T) {
	for _, input := range []string{"...", "S.S", ".x.\nS.."} {
		_, err := parseInput(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestRealInput(t *testing.T) {
	aoctest.Real(t, 7, Solve, 1507, 1_537_373_473_728)
}
