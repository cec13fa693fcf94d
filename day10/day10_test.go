package day10

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runfalk/advent-of-code-2025/aoctest"
)

const exampleInput = `[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
[...#.] (0,2,3,4) (2,3) (0,4) (0,1,2) (1,2,3,4) {7,5,12,7,2}
[.###.#] (0,1,2,3,4) (0,3,4) (0,1,2,4,5) (1,2) {10,11,11,5,10,5}`

func TestExampleA(t *testing.T) {
	machines, err := parseInput(exampleInput)
	require.NoError(t, err)
	got, err := partA(machines)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestExampleB(t *testing.T) {
	machines, err := parseInput(exampleInput)
	require.NoError(t, err)
	got, err := partB(machines)
	require.NoError(t, err)
	assert.Equal(t, 33, got)
}

func TestParseMachine(t *testing.T) {
	m, err := parseMachine("[.#.] (0,2) (1) {3,5,7}")
	require.NoError(t, err)
	assert.Equal(t, 3, m.lights)
	assert.Equal(t, 0b010, m.target)
	assert.Equal(t, []int{0b101, 0b010}, m.buttonMasks)
	assert.Equal(t, []int{3, 5, 7}, m.requirements)
}

func TestRejectsMalformedMachines(t *testing.T) {
	for _, input := range []string{
		"(0) {1}",
		"[.#. (0) {1,2,3}",
		"[.x.] (0) {1,2,3}",
		"[.#.] (0) 1,2,3",
		"[.#.] (0) {1,2,3",
		"[.#.] (0) {1,2}",
		"[.#.] 0) {1,2,3}",
		"[.#.] (0 {1,2,3}",
		"[.#.] (5) {1,2,3}",
		"[.#.] {1,2,3}",
	} {
		_, err := parseMachine(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestUnreachableTarget(t *testing.T) {
	m, err := parseMachine("[#] () {4}")
	require.NoError(t, err)
	_, err = minPressesToggle(m)
	assert.Error(t, err)
}

func TestCountersSplitAcrossButtons(t *testing.T) {
	m, err := parseMachine("[##] (0) (1) {3,5}")
	require.NoError(t, err)
	got, err := minPressesCounters(m)
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}

func TestCountersWithFreeVariable(t *testing.T) {
	// Two interchangeable buttons feeding the same light; any split
	// that sums to the requirement works.
	m, err := parseMachine("[#] (0) (0) {4}")
	require.NoError(t, err)
	got, err := minPressesCounters(m)
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestCountersUnreachable(t *testing.T) {
	m, err := parseMachine("[##] (0,1) {2,3}")
	require.NoError(t, err)
	_, err = minPressesCounters(m)
	assert.Error(t, err)
}

func TestRealInput(t *testing.T) {
	aoctest.Real(t, 10, Solve, 438, 16463)
}
