// Package aoc holds the shared plumbing for the Advent of Code 2025
// solutions: loading puzzle inputs, running a day's solver, and the
// small helpers the daily packages lean on.
package aoc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"
)

// A Solution computes both answers for one day from the raw puzzle
// input. Part B is nil for days where it has not been solved yet.
type Solution func(input string) (partA, partB any, err error)

// DefaultInputPath returns the conventional location of a day's real
// input file.
func DefaultInputPath(day int) string {
	return fmt.Sprintf("data/day%d.txt", day)
}

// ReadInput returns the puzzle input for day. An empty path means the
// conventional data file; if that file does not exist yet the input is
// downloaded from adventofcode.com and cached there. An explicit path is
// read as is.
func ReadInput(day int, path string) (string, error) {
	fetchable := path == ""
	if fetchable {
		path = DefaultInputPath(day)
	}
	b, err := os.ReadFile(path)
	if err == nil {
		return string(b), nil
	}
	if fetchable && errors.Is(err, fs.ErrNotExist) {
		return FetchInput(day, path)
	}
	return "", fmt.Errorf("failed to open input file %s: %w", path, err)
}

// RunSolution executes solve against input and writes both answers to w,
// followed by how long the solve took.
func RunSolution(w io.Writer, solve Solution, input string) error {
	t0 := time.Now()
	a, b, err := solve(input)
	if err != nil {
		return err
	}
	elapsed := time.Since(t0).Round(time.Microsecond)

	fmt.Fprintln(w, "A:", a)
	if b != nil {
		fmt.Fprintln(w, "B:", b)
	}
	fmt.Fprintf(w, "\nTime: %v\n", elapsed)
	return nil
}
