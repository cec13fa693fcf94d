// Package day04 solves the Printing Department puzzle. The input is a
// grid of @ (paper rolls) and . (empty floor).
//
// A roll is accessible when fewer than four of its eight neighbors also
// hold rolls. Part A counts accessible rolls; part B repeatedly removes
// every accessible roll, counting how many can be removed before the
// cascade settles.
package day04

import (
	"fmt"

	"golang.org/x/exp/maps"

	aoc "github.com/runfalk/advent-of-code-2025"
)

// accessThreshold is the neighboring roll count at which a roll stops
// being accessible.
const accessThreshold = 4

// parseInput parses the grid into a neighbor-roll count per roll.
func parseInput(input string) (map[aoc.Pt]int, error) {
	rolls := make(map[aoc.Pt]bool)
	for y, line := range aoc.Lines(input) {
		for x, ch := range line {
			switch ch {
			case '@':
				rolls[aoc.Pt{X: x, Y: y}] = true
			case '.':
			default:
				return nil, fmt.Errorf("invalid character %q at row %d, col %d", ch, y+1, x+1)
			}
		}
	}

	numNeighbors := make(map[aoc.Pt]int, len(rolls))
	for cell := range rolls {
		count := 0
		cell.ForNeighbors(func(n aoc.Pt) bool {
			if rolls[n] {
				count++
			}
			return true
		})
		numNeighbors[cell] = count
	}
	return numNeighbors, nil
}

// partA counts rolls with fewer than four neighboring rolls.
func partA(numNeighbors map[aoc.Pt]int) int {
	count := 0
	for _, n := range numNeighbors {
		if n < accessThreshold {
			count++
		}
	}
	return count
}

// partB removes accessible rolls until no new ones become accessible
// and returns the total removed. It consumes its map argument.
func partB(numNeighbors map[aoc.Pt]int) int {
	var pending aoc.Stack[aoc.Pt]
	for cell, count := range numNeighbors {
		if count < accessThreshold {
			pending.Push(cell)
		}
	}

	removed := 0
	pending.While(func(cell aoc.Pt) bool {
		if _, ok := numNeighbors[cell]; !ok {
			return true
		}
		delete(numNeighbors, cell)
		removed++

		cell.ForNeighbors(func(n aoc.Pt) bool {
			if count, ok := numNeighbors[n]; ok {
				numNeighbors[n] = count - 1
				if count-1 < accessThreshold {
					pending.Push(n)
				}
			}
			return true
		})
		return true
	})
	return removed
}

// Solve computes both answers for day 4.
func Solve(input string) (any, any, error) {
	numNeighbors, err := parseInput(input)
	if err != nil {
		return nil, nil, err
	}
	return partA(numNeighbors), partB(maps.Clone(numNeighbors)), nil
}
