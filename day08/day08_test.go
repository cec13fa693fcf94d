package day08

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runfalk/advent-of-code-2025/aoctest"
)

const exampleInput = `162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689`

func TestExampleA(t *testing.T) {
	points, err := parseInput(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, 40, connect(points, sortedEdges(points), 10))
}

func TestExampleB(t *testing.T) {
	points, err := parseInput(exampleInput)
	require.NoError(t, err)
	got, err := partB(points)
	require.NoError(t, err)
	assert.Equal(t, 25_272, got)
}

func TestRejectsMalformedCoordinates(t *testing.T) {
	for _, input := range []string{"1,2", "1,2,3,4", "1,b,3"} {
		_, err := parseInput(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestRealInput(t *testing.T) {
	aoctest.Real(t, 8, Solve, 175_440, 3_200_955_921)
}
