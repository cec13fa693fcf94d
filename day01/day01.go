// Package day01 solves the Secret Entrance puzzle. The input is a list
// of dial rotations on a 0-99 circle starting at 50, each as L|R<clicks>
// on its own line.
//
// Part A counts how many rotations end with the dial at 0. Part B counts
// every click that passes through 0, including intermediate clicks on
// long rotations.
package day01

import (
	"fmt"
	"strconv"

	aoc "github.com/runfalk/advent-of-code-2025"
)

const (
	dialSize = 100
	startPos = 50
)

type rotation int

const (
	left rotation = iota
	right
)

type instruction struct {
	dir    rotation
	clicks int
}

// rotate advances the dial from position and returns where it lands.
func (in instruction) rotate(position int) int {
	delta := in.clicks % dialSize
	if in.dir == left {
		return (position + dialSize - delta) % dialSize
	}
	return (position + delta) % dialSize
}

// parseInput parses strict rotation instructions of form L|R<clicks>.
func parseInput(input string) ([]instruction, error) {
	var instructions []instruction
	for i, line := range aoc.Lines(input) {
		if line == "" {
			return nil, fmt.Errorf("missing direction on line %d", i+1)
		}
		var dir rotation
		switch line[0] {
		case 'L':
			dir = left
		case 'R':
			dir = right
		default:
			return nil, fmt.Errorf("unknown direction %q on line %d", line[0], i+1)
		}
		clicks, err := strconv.Atoi(line[1:])
		if err != nil || clicks < 0 {
			return nil, fmt.Errorf("invalid click count on line %d", i+1)
		}
		instructions = append(instructions, instruction{dir, clicks})
	}
	return instructions, nil
}

// partA counts how often the dial ends a rotation at 0.
func partA(rotations []instruction) int {
	position := startPos
	count := 0
	for _, in := range rotations {
		position = in.rotate(position)
		if position == 0 {
			count++
		}
	}
	return count
}

// partB counts every click landing on 0, including mid-rotation clicks.
func partB(rotations []instruction) int {
	position := startPos
	hits := 0
	for _, in := range rotations {
		offset := position
		if in.dir == right {
			offset = dialSize - position
		}
		clicksToZero := offset
		if clicksToZero == 0 {
			clicksToZero = dialSize
		}
		if clicksToZero <= in.clicks {
			hits += 1 + (in.clicks-clicksToZero)/dialSize
		}
		position = in.rotate(position)
	}
	return hits
}

// Solve computes both answers for day 1.
func Solve(input string) (any, any, error) {
	rotations, err := parseInput(input)
	if err != nil {
		return nil, nil, err
	}
	return partA(rotations), partB(rotations), nil
}
