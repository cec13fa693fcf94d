// Package day10 solves the Factory puzzle. Each input line describes a
// machine: an indicator target in brackets, button wiring diagrams in
// parentheses, and per-light joltage requirements in braces.
//
// Part A finds the minimum button presses to reach each machine's
// indicator pattern, where a press toggles the wired lights. Part B
// switches the buttons to joltage counters that each press increments,
// and finds the minimum presses to hit the exact requirements. Both
// parts sum the per-machine minima.
package day10

import (
	"errors"
	"fmt"
	"strings"

	aoc "github.com/runfalk/advent-of-code-2025"
)

type machine struct {
	target       int
	buttonMasks  []int
	requirements []int
	lights       int
}

// parseMachine parses a line like "[.#.] (0,2) (0,1) {3,5,7}".
func parseMachine(line string) (machine, error) {
	var m machine
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "[") {
		return m, errors.New("machine description must start with '['")
	}
	endIndicator := strings.IndexByte(line, ']')
	if endIndicator < 0 {
		return m, errors.New("missing closing ']' for indicator diagram")
	}
	diagram := line[1:endIndicator]
	m.lights = len(diagram)
	if m.lights == 0 {
		return m, errors.New("indicator diagram must contain at least one light")
	}
	for i := 0; i < len(diagram); i++ {
		switch diagram[i] {
		case '.':
		case '#':
			m.target |= 1 << i
		default:
			return m, fmt.Errorf("invalid indicator character %q", diagram[i])
		}
	}

	rest := strings.TrimSpace(line[endIndicator+1:])
	braceStart := strings.LastIndexByte(rest, '{')
	if braceStart < 0 {
		return m, errors.New("missing joltage requirement block")
	}
	buttonsPart := strings.TrimSpace(rest[:braceStart])
	joltsPart := strings.TrimSpace(rest[braceStart:])
	if !strings.HasSuffix(joltsPart, "}") {
		return m, errors.New("missing closing '}' for joltage requirements")
	}
	jolts, err := aoc.CutInts(joltsPart[1:len(joltsPart)-1], ",")
	if err != nil {
		return m, fmt.Errorf("invalid joltage value: %w", err)
	}
	if len(jolts) != m.lights {
		return m, fmt.Errorf("expected %d joltage entries, found %d", m.lights, len(jolts))
	}
	m.requirements = jolts

	for idx := 0; idx < len(buttonsPart); {
		for idx < len(buttonsPart) && buttonsPart[idx] == ' ' {
			idx++
		}
		if idx == len(buttonsPart) {
			break
		}
		if buttonsPart[idx] != '(' {
			return m, errors.New("expected '(' when parsing button definition")
		}
		afterOpen := idx + 1
		closeOff := strings.IndexByte(buttonsPart[afterOpen:], ')')
		if closeOff < 0 {
			return m, fmt.Errorf("missing ')' for button starting at %d", idx)
		}
		closeIdx := afterOpen + closeOff

		mask := 0
		if def := buttonsPart[afterOpen:closeIdx]; def != "" {
			indices, err := aoc.CutInts(def, ",")
			if err != nil {
				return m, fmt.Errorf("invalid light index in %q: %w", def, err)
			}
			for _, lightIdx := range indices {
				if lightIdx < 0 || lightIdx >= m.lights {
					return m, fmt.Errorf("light index %d out of bounds for %d-light machine", lightIdx, m.lights)
				}
				mask ^= 1 << lightIdx
			}
		}
		m.buttonMasks = append(m.buttonMasks, mask)
		idx = closeIdx + 1
	}
	if len(m.buttonMasks) == 0 {
		return m, errors.New("machine must list at least one button")
	}
	return m, nil
}

func parseInput(input string) ([]machine, error) {
	var machines []machine
	for i, line := range aoc.Lines(input) {
		m, err := parseMachine(line)
		if err != nil {
			return nil, fmt.Errorf("machine on line %d: %w", i+1, err)
		}
		machines = append(machines, m)
	}
	return machines, nil
}

// minPressesToggle returns the minimum presses to reach the machine's
// target pattern, searching breadth-first over light states.
func minPressesToggle(m machine) (int, error) {
	dist := make([]int, 1<<m.lights)
	for i := range dist {
		dist[i] = -1
	}
	dist[0] = 0

	states := aoc.NewQueue(0)
	states.While(func(state int) bool {
		if state == m.target {
			return false
		}
		for _, mask := range m.buttonMasks {
			next := state ^ mask
			if dist[next] == -1 {
				dist[next] = dist[state] + 1
				states.Push(next)
			}
		}
		return true
	})

	if dist[m.target] == -1 {
		return 0, errors.New("target configuration unreachable with given buttons")
	}
	return dist[m.target], nil
}

func partA(machines []machine) (int, error) {
	total := 0
	for _, m := range machines {
		presses, err := minPressesToggle(m)
		if err != nil {
			return 0, err
		}
		total += presses
	}
	return total, nil
}

func partB(machines []machine) (int, error) {
	total := 0
	for _, m := range machines {
		presses, err := minPressesCounters(m)
		if err != nil {
			return 0, err
		}
		total += presses
	}
	return total, nil
}

// Solve computes both answers for day 10.
func Solve(input string) (any, any, error) {
	machines, err := parseInput(input)
	if err != nil {
		return nil, nil, err
	}
	a, err := partA(machines)
	if err != nil {
		return nil, nil, err
	}
	b, err := partB(machines)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
