// Package day08 solves the Playground puzzle. The input lists junction
// box coordinates, one x,y,z triple per line.
//
// Unique box pairs are ordered by increasing straight-line distance,
// ties broken by input order. Part A connects the 1000 closest pairs
// and multiplies the sizes of the three largest circuits. Part B keeps
// connecting until one circuit remains and multiplies the X coordinates
// of the final merging connection.
package day08

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	aoc "github.com/runfalk/advent-of-code-2025"
)

const connectionLimit = 1000

type point struct {
	x, y, z int
}

type edge struct {
	dist int // squared distance
	a, b int
}

// parseInput parses strict x,y,z coordinate triples.
func parseInput(input string) ([]point, error) {
	var points []point
	for i, line := range aoc.Lines(input) {
		parts := strings.Split(line, ",")
		if len(parts) < 3 {
			return nil, fmt.Errorf("missing coordinate on line %d", i+1)
		}
		if len(parts) > 3 {
			return nil, fmt.Errorf("too many comma-separated values on line %d", i+1)
		}
		var p point
		for j, dst := range []*int{&p.x, &p.y, &p.z} {
			v, err := strconv.Atoi(parts[j])
			if err != nil {
				return nil, fmt.Errorf("invalid %c value on line %d: %w", 'X'+j, i+1, err)
			}
			*dst = v
		}
		points = append(points, p)
	}
	return points, nil
}

func squaredDistance(a, b point) int {
	dx := aoc.AbsDiff(a.x, b.x)
	dy := aoc.AbsDiff(a.y, b.y)
	dz := aoc.AbsDiff(a.z, b.z)
	return dx*dx + dy*dy + dz*dz
}

// sortedEdges returns every unique pair ordered by squared distance,
// with ties broken by input order.
func sortedEdges(points []point) []edge {
	var edges []edge
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			edges = append(edges, edge{squaredDistance(points[i], points[j]), i, j})
		}
	}
	slices.SortFunc(edges, func(a, b edge) int {
		if c := cmp.Compare(a.dist, b.dist); c != 0 {
			return c
		}
		if c := cmp.Compare(a.a, b.a); c != 0 {
			return c
		}
		return cmp.Compare(a.b, b.b)
	})
	return edges
}

// connect unions the first limit edges and multiplies the three largest
// circuit sizes.
func connect(points []point, edges []edge, limit int) int {
	uf := aoc.NewUnionFind(len(points))
	for _, e := range edges[:min(limit, len(edges))] {
		uf.Union(e.a, e.b)
	}

	sizes := uf.ComponentSizes()
	slices.SortFunc(sizes, func(a, b int) int { return cmp.Compare(b, a) })
	return aoc.Product(sizes[:min(3, len(sizes))]...)
}

// finalConnection multiplies the X coordinates of the edge that first
// joins all boxes into a single circuit.
func finalConnection(points []point, edges []edge) (int, error) {
	uf := aoc.NewUnionFind(len(points))
	components := len(points)
	for _, e := range edges {
		if !uf.Union(e.a, e.b) {
			continue
		}
		components--
		if components == 1 {
			return points[e.a].x * points[e.b].x, nil
		}
	}
	return 0, errors.New("junction boxes never form a single circuit")
}

func partA(points []point) int {
	return connect(points, sortedEdges(points), connectionLimit)
}

func partB(points []point) (int, error) {
	return finalConnection(points, sortedEdges(points))
}

// Solve computes both answers for day 8.
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
