package aoc

import (
	"strconv"
	"strings"
)

// Lines splits s into lines after trimming surrounding whitespace.
// Empty input yields no lines.
func Lines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Atoi parses a decimal integer, ignoring surrounding whitespace.
func Atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// CutInts splits s on sep and parses every piece as a decimal integer.
func CutInts(s, sep string) ([]int, error) {
	parts := strings.Split(s, sep)
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := Atoi(p)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
