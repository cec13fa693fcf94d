// Package day05 solves the Cafeteria puzzle. The input lists inclusive
// fresh ingredient ID ranges, then a blank line, then ingredient IDs to
// evaluate.
//
// Part A counts how many of the listed IDs fall within any fresh range.
// Part B counts the distinct IDs covered by the fresh ranges.
package day05

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	aoc "github.com/runfalk/advent-of-code-2025"
)

type span struct {
	start, end int // end exclusive
}

// parseInput parses the fresh ranges and ingredient IDs. Overlapping
// and adjacent ranges are merged so lookups can binary search.
func parseInput(input string) ([]span, []int, error) {
	lines := aoc.Lines(input)
	var ranges []span
	var ids []int

	i := 0
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			i++
			break
		}
		startStr, endStr, ok := strings.Cut(line, "-")
		if !ok {
			return nil, nil, fmt.Errorf("missing dash in range on line %d", i+1)
		}
		start, err := strconv.Atoi(startStr)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid range start on line %d: %w", i+1, err)
		}
		end, err := strconv.Atoi(endStr)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid range end on line %d: %w", i+1, err)
		}
		if start > end {
			return nil, nil, fmt.Errorf("range start exceeds end on line %d", i+1)
		}
		ranges = append(ranges, span{start, end + 1})
	}
	for ; i < len(lines); i++ {
		id, err := strconv.Atoi(lines[i])
		if err != nil {
			return nil, nil, fmt.Errorf("invalid ingredient ID on line %d: %w", i+1, err)
		}
		ids = append(ids, id)
	}

	slices.SortFunc(ranges, func(a, b span) int { return cmp.Compare(a.start, b.start) })
	merged := make([]span, 0, len(ranges))
	for _, r := range ranges {
		if n := len(merged); n > 0 && r.start <= merged[n-1].end {
			merged[n-1].end = max(merged[n-1].end, r.end)
			continue
		}
		merged = append(merged, r)
	}
	return merged, ids, nil
}

// partA counts ingredient IDs contained in any fresh range.
func partA(ranges []span, ids []int) int {
	count := 0
	for _, id := range ids {
		idx := sort.Search(len(ranges), func(i int) bool { return ranges[i].end > id })
		if idx < len(ranges) && ranges[idx].start <= id {
			count++
		}
	}
	return count
}

// partB returns the total number of unique IDs covered by the ranges.
func partB(ranges []span) int {
	total := 0
	for _, r := range ranges {
		total += r.end - r.start
	}
	return total
}

// Solve computes both answers for day 5.
func Solve(input string) (any, any, error) {
	ranges, ids, err := parseInput(input)
	if err != nil {
		return nil, nil, err
	}
	return partA(ranges, ids), partB(ranges), nil
}
