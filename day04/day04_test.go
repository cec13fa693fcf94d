package day04

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runfalk/advent-of-code-2025/aoctest"
)

const exampleInput = `..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.`

func TestExampleA(t *testing.T) {
	numNeighbors, err := parseInput(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, 13, partA(numNeighbors))
}

func TestExampleB(t *testing.T) {
	numNeighbors, err := parseInput(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, 43, partB(numNeighbors))
}

func TestRejectsInvalidCharacters(t *testing.T) {
	_, err := parseInput("..@\n.x@")
	assert.Error(t, err)
}

func TestRealInput(t *testing.T) {
	aoctest.Real(t, 4, Solve, 1587, 8946)
}
