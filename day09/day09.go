// Package day09 solves the Movie Theater puzzle. The input is a loop of
// red tile coordinates listed in order around a rectilinear perimeter;
// every tile on or inside the loop is red or green.
//
// Part A finds the largest axis-aligned rectangle with two red tiles as
// opposite corners. Part B adds the restriction that the rectangle must
// lie entirely within the perimeter.
package day09

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	aoc "github.com/runfalk/advent-of-code-2025"
)

type rect struct {
	a, b aoc.Pt // a is the minimum corner, b the maximum, inclusive
}

func newRect(a, b aoc.Pt) rect {
	return rect{
		a: aoc.Pt{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		b: aoc.Pt{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

func (r rect) area() int {
	return (r.b.X - r.a.X + 1) * (r.b.Y - r.a.Y + 1)
}

// parseInput parses strict x,y coordinate pairs for the red tiles.
func parseInput(input string) ([]aoc.Pt, error) {
	var points []aoc.Pt
	for i, line := range aoc.Lines(input) {
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("missing Y coordinate on line %d", i+1)
		}
		if strings.Contains(ys, ",") {
			return nil, fmt.Errorf("too many comma-separated values on line %d", i+1)
		}
		x, err := strconv.Atoi(xs)
		if err != nil {
			return nil, fmt.Errorf("invalid X value on line %d: %w", i+1, err)
		}
		y, err := strconv.Atoi(ys)
		if err != nil {
			return nil, fmt.Errorf("invalid Y value on line %d: %w", i+1, err)
		}
		points = append(points, aoc.Pt{X: x, Y: y})
	}
	return points, nil
}

// partA returns the largest rectangle area spanned by any two red tiles.
func partA(points []aoc.Pt) int {
	best := 0
	for i, a := range points {
		for _, b := range points[i+1:] {
			best = max(best, newRect(a, b).area())
		}
	}
	return best
}

type interval struct {
	start, end int // inclusive
}

// rowCoverage computes, for every row of the perimeter's bounding
// range, the merged X intervals covered by the loop's interior.
func rowCoverage(points []aoc.Pt, minY, maxY int) ([][]interval, error) {
	height := maxY - minY + 1
	scanlines := make([][]int, height)
	rangesByY := make([][]interval, height)

	for i, a := range points {
		b := points[(i+1)%len(points)]
		if a.Y == b.Y {
			iv := interval{min(a.X, b.X), max(a.X, b.X)}
			rangesByY[a.Y-minY] = append(rangesByY[a.Y-minY], iv)
		} else {
			yStart, yEnd := min(a.Y, b.Y), max(a.Y, b.Y)
			for y := yStart; y < yEnd; y++ {
				scanlines[y-minY] = append(scanlines[y-minY], a.X)
			}
		}
	}

	for offset, xs := range scanlines {
		slices.Sort(xs)
		if len(xs)%2 != 0 {
			return nil, fmt.Errorf("uneven number of intersections on scanline %d", offset+minY)
		}
		for i := 0; i < len(xs); i += 2 {
			rangesByY[offset] = append(rangesByY[offset], interval{xs[i], xs[i+1]})
		}
	}

	for offset, ranges := range rangesByY {
		slices.SortFunc(ranges, func(a, b interval) int { return cmp.Compare(a.start, b.start) })
		var merged []interval
		for _, r := range ranges {
			if n := len(merged); n > 0 && r.start <= merged[n-1].end+1 {
				merged[n-1].end = max(merged[n-1].end, r.end)
				continue
			}
			merged = append(merged, r)
		}
		rangesByY[offset] = merged
	}
	return rangesByY, nil
}

// partB returns the largest red-cornered rectangle fully inside the
// perimeter.
func partB(points []aoc.Pt) (int, error) {
	for i, a := range points {
		b := points[(i+1)%len(points)]
		if a.X != b.X && a.Y != b.Y {
			return 0, errors.New("perimeter contains diagonal edge")
		}
	}
	if len(points) == 0 {
		return 0, errors.New("missing minimum Y value")
	}

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	rangesByY, err := rowCoverage(points, minY, maxY)
	if err != nil {
		return 0, err
	}

	best := 0
	for i, a := range points {
		for _, b := range points[i+1:] {
			r := newRect(a, b)
			if r.area() > best && coversRows(rangesByY, minY, r) {
				best = r.area()
			}
		}
	}
	return best, nil
}

// coversRows reports whether every row of r is fully contained in one
// of that row's covered intervals.
func coversRows(rangesByY [][]interval, minY int, r rect) bool {
	for y := r.a.Y; y <= r.b.Y; y++ {
		covered := false
		for _, iv := range rangesByY[y-minY] {
			if iv.start <= r.a.X && r.b.X <= iv.end {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

// Solve computes both answers for day 9.
func Solve(input string) (any, any, error) {
	points, err := parseInput(input)
	if err != nil {
		return nil, nil, err
	}
	b, err := partB(points)
	if err != nil {
		return nil, nil, err
	}
	return partA(points), b, nil
}
