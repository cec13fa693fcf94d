// Package day02 solves the Gift Shop puzzle. The input is a single run
// of comma-separated inclusive ID ranges start-end.
//
// An ID is invalid when its digits are a non-empty sequence repeated
// exactly twice (part A) or two or more times (part B). Both parts sum
// every invalid ID inside the given ranges.
package day02

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	aoc "github.com/runfalk/advent-of-code-2025"
)

type idRange struct {
	start, end int // inclusive
}

// parseInput parses strict inclusive ranges of the form start-end
// separated by commas.
func parseInput(input string) ([]idRange, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, errors.New("input must contain at least one range")
	}

	var ranges []idRange
	for i, part := range strings.Split(trimmed, ",") {
		rs := strings.TrimSpace(part)
		if rs == "" {
			return nil, fmt.Errorf("empty range at position %d", i+1)
		}
		startStr, endStr, ok := strings.Cut(rs, "-")
		if !ok {
			return nil, fmt.Errorf("missing dash in range %d", i+1)
		}
		start, err := strconv.Atoi(startStr)
		if err != nil {
			return nil, fmt.Errorf("invalid start in range %d: %w", i+1, err)
		}
		end, err := strconv.Atoi(endStr)
		if err != nil {
			return nil, fmt.Errorf("invalid end in range %d: %w", i+1, err)
		}
		if start > end {
			return nil, fmt.Errorf("range %d has start greater than end", i+1)
		}
		ranges = append(ranges, idRange{start, end})
	}
	return ranges, nil
}

// repeatedNumbers generates every number up to maxValue whose decimal
// digits are a base sequence repeated at least twice, keeping only
// repeat counts accepted by filterRepeat. The result is sorted and free
// of duplicates.
func repeatedNumbers(maxValue int, filterRepeat func(int) bool) []int {
	var numbers []int
	maxDigits := len(strconv.Itoa(maxValue))

	for baseLen := 1; baseLen <= maxDigits; baseLen++ {
		powBase := pow10(baseLen)
		baseStart, baseEnd := powBase/10, powBase-1
		for numRepeats := 2; numRepeats <= maxDigits/baseLen; numRepeats++ {
			if !filterRepeat(numRepeats) {
				continue
			}
			// A base b of baseLen digits repeated k times equals
			// b * (10^(baseLen*k) - 1) / (10^baseLen - 1).
			factor := (pow10(baseLen*numRepeats) - 1) / (powBase - 1)
			for base := baseStart; base <= baseEnd; base++ {
				candidate := base * factor
				if candidate > maxValue {
					break
				}
				numbers = append(numbers, candidate)
			}
		}
	}

	slices.Sort(numbers)
	return slices.Compact(numbers)
}

func pow10(n int) int {
	out := 1
	for i := 0; i < n; i++ {
		out *= 10
	}
	return out
}

// sumInvalid sums every repeated-sequence number that falls inside any
// of the ranges.
func sumInvalid(ranges []idRange, filterRepeat func(int) bool) int {
	maxValue := 0
	for _, r := range ranges {
		maxValue = max(maxValue, r.end)
	}
	if maxValue == 0 {
		return 0
	}

	numbers := repeatedNumbers(maxValue, filterRepeat)
	total := 0
	for _, r := range ranges {
		lo := sort.SearchInts(numbers, r.start)
		hi := sort.SearchInts(numbers, r.end+1)
		total += aoc.Sum(numbers[lo:hi]...)
	}
	return total
}

func partA(ranges []idRange) int {
	return sumInvalid(ranges, func(numRepeats int) bool { return numRepeats == 2 })
}

func partB(ranges []idRange) int {
	return sumInvalid(ranges, func(numRepeats int) bool { return numRepeats >= 2 })
}

// Solve computes both answers for day 2.
func Solve(input string) (any, any, error) {
	ranges, err := parseInput(input)
	if err != nil {
		return nil, nil, err
	}
	return partA(ranges), partB(ranges), nil
}
