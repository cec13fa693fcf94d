// Package day07 solves the Laboratories puzzle. The input is a map of
// empty space (.), splitters (^) and exactly one start (S). A tachyon
// beam starts directly below S and always travels downward.
//
// Part A counts how many splitters any beam reaches before every beam
// exits the map, merging beams that share a column. Part B counts the
// timelines of a single particle that takes both paths at every
// splitter, keeping equal paths distinct.
package day07

import (
	"errors"
	"fmt"

	aoc "github.com/runfalk/advent-of-code-2025"
)

type manifold struct {
	splitters map[aoc.Pt]bool
	start     aoc.Pt
	width     int
	height    int
}

// nextSplitter returns the first splitter in column x at or below row y.
func (m *manifold) nextSplitter(x, y int) (aoc.Pt, bool) {
	for ny := y; ny < m.height; ny++ {
		if m.splitters[aoc.Pt{X: x, Y: ny}] {
			return aoc.Pt{X: x, Y: ny}, true
		}
	}
	return aoc.Pt{}, false
}

// parseInput locates the splitters and the start cell.
func parseInput(input string) (*manifold, error) {
	lines := aoc.Lines(input)
	m := &manifold{
		splitters: make(map[aoc.Pt]bool),
		height:    len(lines),
	}
	haveStart := false
	for y, line := range lines {
		m.width = max(m.width, len(line))
		for x, ch := range line {
			switch ch {
			case '.':
			case '^':
				m.splitters[aoc.Pt{X: x, Y: y}] = true
			case 'S':
				if haveStart {
					return nil, fmt.Errorf("second start position found on line %d", y+1)
				}
				haveStart = true
				m.start = aoc.Pt{X: x, Y: y}
			default:
				return nil, fmt.Errorf("invalid character %q on line %d", ch, y+1)
			}
		}
	}
	if !haveStart {
		return nil, errors.New("missing start position S")
	}
	return m, nil
}

// partA counts how often beams split until every beam exits the map.
func partA(m *manifold) int {
	beams := aoc.NewQueue(aoc.Pt{X: m.start.X, Y: m.start.Y + 1})
	visited := make(map[aoc.Pt]bool)
	splits := 0
	beams.While(func(beam aoc.Pt) bool {
		hit, ok := m.nextSplitter(beam.X, beam.Y)
		if ok && !visited[hit] {
			visited[hit] = true
			splits++
			if hit.X > 0 {
				beams.Push(aoc.Pt{X: hit.X - 1, Y: hit.Y})
			}
			if hit.X+1 < m.width {
				beams.Push(aoc.Pt{X: hit.X + 1, Y: hit.Y})
			}
		}
		return true
	})
	return splits
}

// scanPriority orders splitters top to bottom, left to right. The heap
// pops its highest priority first, so the rank is negated.
func (m *manifold) scanPriority(p aoc.Pt) int {
	return -(p.Y*m.width + p.X)
}

// partB counts the timelines of a particle that splits at every
// splitter, tracking how many timelines share each splitter.
func partB(m *manifold) int {
	first, ok := m.nextSplitter(m.start.X, m.start.Y+1)
	if !ok {
		// The particle never meets a splitter.
		return 1
	}

	counts := map[aoc.Pt]int{first: 1}
	var pending aoc.PQ[aoc.Pt]
	pending.Push(&aoc.PQI[aoc.Pt]{V: first, P: m.scanPriority(first)})

	timelines := 0
	for pending.Len() > 0 {
		cell := pending.Pop().V
		count := counts[cell]
		delete(counts, cell)
		if count == 0 {
			continue
		}

		for _, nx := range [2]int{cell.X - 1, cell.X + 1} {
			if nx < 0 || nx >= m.width {
				timelines += count
				continue
			}
			next, ok := m.nextSplitter(nx, cell.Y)
			if !ok {
				timelines += count
				continue
			}
			if counts[next] == 0 {
				pending.Push(&aoc.PQI[aoc.Pt]{V: next, P: m.scanPriority(next)})
			}
			counts[next] += count
		}
	}
	return timelines
}

// Solve computes both answers for day 7.
func Solve(input string) (any, any, error) {
	m, err := parseInput(input)
	if err != nil {
		return nil, nil, err
	}
	return partA(m), partB(m), nil
}
