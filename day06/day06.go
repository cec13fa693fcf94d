// Package day06 solves the Trash Compactor puzzle. The input is a
// worksheet of column-aligned math problems: operand rows on top, then
// a final row with one + or * per problem. A fully blank column
// separates problems.
//
// Part A evaluates each problem's row-wise operands. Part B reads
// cephalopod numbers instead: within a problem, each column is one
// number with its most significant digit on top, read right to left.
// Both parts sum the per-problem results.
package day06

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	aoc "github.com/runfalk/advent-of-code-2025"
)

type operation int

const (
	opAdd operation = iota
	opMultiply
)

type problem struct {
	horizontal []int
	vertical   []int
	op         operation
}

// parseInput splits the worksheet into problems with both operand
// readings and the operator.
func parseInput(input string) ([]problem, error) {
	grid := aoc.ParseGrid(input)
	size := grid.Size()
	if size.Y < 2 {
		return nil, errors.New("expected at least two lines for operands and operators")
	}
	operatorRow := size.Y - 1

	var problems []problem
	col := 0
	for col < size.X {
		for col < size.X && columnBlank(grid, col) {
			col++
		}
		if col >= size.X {
			break
		}
		start := col
		for col < size.X && !columnBlank(grid, col) {
			col++
		}
		end := col

		var p problem
		for row := 0; row < operatorRow; row++ {
			field := strings.TrimSpace(string(grid[row][start:end]))
			if field == "" {
				continue
			}
			value, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q on line %d", field, row+1)
			}
			p.horizontal = append(p.horizontal, value)
		}
		if len(p.horizontal) == 0 {
			return nil, fmt.Errorf("problem spanning columns %d-%d has no operands", start, end)
		}

		switch op := strings.TrimSpace(string(grid[operatorRow][start:end])); op {
		case "+":
			p.op = opAdd
		case "*":
			p.op = opMultiply
		default:
			return nil, fmt.Errorf("unknown operator %q at columns %d-%d", op, start, end)
		}

		for c := end - 1; c >= start; c-- {
			var digits []byte
			for row := 0; row < operatorRow; row++ {
				ch := grid.At(aoc.Pt{X: c, Y: row})
				switch {
				case ch >= '0' && ch <= '9':
					digits = append(digits, ch)
				case ch != ' ':
					return nil, fmt.Errorf("invalid character %q in column %d on line %d", ch, c, row+1)
				}
			}
			if len(digits) == 0 {
				return nil, fmt.Errorf("column %d inside problem spanning %d-%d has no digits", c, start, end)
			}
			value, err := strconv.Atoi(string(digits))
			if err != nil {
				return nil, fmt.Errorf("invalid column number %q at column %d", digits, c+1)
			}
			p.vertical = append(p.vertical, value)
		}

		problems = append(problems, p)
	}
	return problems, nil
}

func columnBlank(g aoc.Grid[byte], col int) bool {
	for _, row := range g {
		if row[col] != ' ' {
			return false
		}
	}
	return true
}

func evaluate(op operation, operands []int) int {
	if op == opAdd {
		return aoc.Sum(operands...)
	}
	return aoc.Product(operands...)
}

// partA sums the row-wise result of every problem.
func partA(problems []problem) int {
	total := 0
	for _, p := range problems {
		total += evaluate(p.op, p.horizontal)
	}
	return total
}

// partB sums the column-wise result of every problem.
func partB(problems []problem) int {
	total := 0
	for _, p := range problems {
		total += evaluate(p.op, p.vertical)
	}
	return total
}

// Solve computes both answers for day 6.
func Solve(input string) (any, any, error) {
	problems, err := parseInput(input)
	if err != nil {
		return nil, nil, err
	}
	return partA(problems), partB(problems), nil
}
