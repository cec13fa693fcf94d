// Package day03 solves the Lobby puzzle. Each input line is a bank of
// battery ratings (digits 1-9).
//
// From each bank, pick digits in their original order forming the
// largest possible number: two digits for part A, twelve for part B.
// Both parts sum the per-bank maxima.
package day03

import (
	"fmt"

	aoc "github.com/runfalk/advent-of-code-2025"
)

const (
	pickA = 2
	pickB = 12
)

// parseInput parses banks of battery ratings.
func parseInput(input string) ([][]int, error) {
	var banks [][]int
	for i, line := range aoc.Lines(input) {
		bank := make([]int, 0, len(line))
		for _, ch := range line {
			if ch < '1' || ch > '9' {
				return nil, fmt.Errorf("invalid battery rating %q on line %d", ch, i+1)
			}
			bank = append(bank, int(ch-'0'))
		}
		banks = append(banks, bank)
	}
	return banks, nil
}

// maxBankJoltage builds the largest possible numPicks-digit number that
// keeps the bank's digits in order.
func maxBankJoltage(batteries []int, numPicks int) (int, error) {
	if len(batteries) < numPicks {
		return 0, fmt.Errorf("bank needs at least %d batteries but only has %d", numPicks, len(batteries))
	}

	stack := make([]int, 0, numPicks)
	remaining := len(batteries)

	// Drop smaller leading digits while enough digits remain to reach
	// the target length.
	for _, digit := range batteries {
		for len(stack) > 0 && len(stack)+remaining > numPicks && stack[len(stack)-1] < digit {
			stack = stack[:len(stack)-1]
		}
		if len(stack) < numPicks {
			stack = append(stack, digit)
		}
		remaining--
	}

	value := 0
	for _, digit := range stack {
		value = value*10 + digit
	}
	return value, nil
}

func sumJoltages(banks [][]int, numPicks int) (int, error) {
	total := 0
	for _, bank := range banks {
		joltage, err := maxBankJoltage(bank, numPicks)
		if err != nil {
			return 0, err
		}
		total += joltage
	}
	return total, nil
}

func partA(banks [][]int) (int, error) {
	return sumJoltages(banks, pickA)
}

func partB(banks [][]int) (int, error) {
	return sumJoltages(banks, pickB)
}

// Solve computes both answers for day 3.
func Solve(input string) (any, any, error) {
	banks, err := parseInput(input)
	if err != nil {
		return nil, nil, err
	}
	a, err := partA(banks)
	if err != nil {
		return nil, nil, err
	}
	b, err := partB(banks)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
