package day10

import (
	"errors"
	"math/big"
)

// minPressesCounters treats every button as a counter incrementer and
// returns the minimum total presses that hit the joltage requirements
// exactly. The press counts solve a linear system with one equation
// per light; the system is reduced to row echelon form over exact
// rationals and the remaining free counts are searched exhaustively,
// bounded by each button's smallest wired requirement.
func minPressesCounters(m machine) (int, error) {
	allZero := true
	for _, req := range m.requirements {
		if req != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return 0, nil
	}

	// A button can never be pressed more times than the smallest
	// requirement among the lights it feeds.
	buttonCaps := make([]int, len(m.buttonMasks))
	for col, mask := range m.buttonMasks {
		maxPresses := 0
		first := true
		for light := 0; light < m.lights; light++ {
			if mask&(1<<light) == 0 {
				continue
			}
			if first || m.requirements[light] < maxPresses {
				maxPresses = m.requirements[light]
				first = false
			}
		}
		buttonCaps[col] = maxPresses
	}

	matrix := make([][]*big.Rat, m.lights)
	rhs := make([]*big.Rat, m.lights)
	for light := 0; light < m.lights; light++ {
		row := make([]*big.Rat, len(m.buttonMasks))
		for col, mask := range m.buttonMasks {
			if mask&(1<<light) != 0 {
				row[col] = big.NewRat(1, 1)
			} else {
				row[col] = new(big.Rat)
			}
		}
		matrix[light] = row
		rhs[light] = big.NewRat(int64(m.requirements[light]), 1)
	}

	pivotCols, err := reduce(matrix, rhs)
	if err != nil {
		return 0, err
	}

	var freeCols []int
	isPivot := make([]bool, len(m.buttonMasks))
	for _, col := range pivotCols {
		if col >= 0 {
			isPivot[col] = true
		}
	}
	for col := range m.buttonMasks {
		if !isPivot[col] {
			freeCols = append(freeCols, col)
		}
	}

	cs := &counterSearch{
		matrix:     matrix,
		rhs:        rhs,
		pivotCols:  pivotCols,
		freeCols:   freeCols,
		buttonCaps: buttonCaps,
		freeValues: make([]int, len(freeCols)),
		best:       -1,
	}
	cs.search(0, 0)
	if cs.best == -1 {
		return 0, errors.New("joltage requirements unreachable")
	}
	return cs.best, nil
}

// reduce brings the augmented system (matrix, rhs) to reduced row
// echelon form in place. It returns the pivot column of each row, or
// -1 for rows without one, and errors if a pivot-less row demands a
// nonzero right hand side.
func reduce(matrix [][]*big.Rat, rhs []*big.Rat) ([]int, error) {
	rows := len(matrix)
	cols := 0
	if rows > 0 {
		cols = len(matrix[0])
	}
	pivotCols := make([]int, rows)
	for i := range pivotCols {
		pivotCols[i] = -1
	}

	tmp := new(big.Rat)
	row := 0
	for col := 0; col < cols && row < rows; col++ {
		pivot := -1
		for r := row; r < rows; r++ {
			if matrix[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			continue
		}
		matrix[row], matrix[pivot] = matrix[pivot], matrix[row]
		rhs[row], rhs[pivot] = rhs[pivot], rhs[row]

		scale := new(big.Rat).Set(matrix[row][col])
		for c := col; c < cols; c++ {
			matrix[row][c].Quo(matrix[row][c], scale)
		}
		rhs[row].Quo(rhs[row], scale)

		for r := 0; r < rows; r++ {
			if r == row || matrix[r][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(matrix[r][col])
			for c := col; c < cols; c++ {
				tmp.Mul(factor, matrix[row][c])
				matrix[r][c].Sub(matrix[r][c], tmp)
			}
			tmp.Mul(factor, rhs[row])
			rhs[r].Sub(rhs[r], tmp)
		}
		pivotCols[row] = col
		row++
	}

	for r := row; r < rows; r++ {
		if rhs[r].Sign() != 0 {
			return nil, errors.New("system of equations inconsistent")
		}
	}
	return pivotCols, nil
}

type counterSearch struct {
	matrix     [][]*big.Rat
	rhs        []*big.Rat
	pivotCols  []int
	freeCols   []int
	buttonCaps []int
	freeValues []int
	best       int
}

func (cs *counterSearch) search(idx, partialSum int) {
	if cs.best != -1 && partialSum >= cs.best {
		return
	}
	if idx == len(cs.freeCols) {
		cs.evaluate(partialSum)
		return
	}
	col := cs.freeCols[idx]
	for presses := 0; presses <= cs.buttonCaps[col]; presses++ {
		cs.freeValues[idx] = presses
		cs.search(idx+1, partialSum+presses)
	}
}

// evaluate back-substitutes the chosen free counts and checks that
// every pivot count comes out a nonnegative integer within its cap.
func (cs *counterSearch) evaluate(freeSum int) {
	total := freeSum
	val := new(big.Rat)
	tmp := new(big.Rat)
	for row, col := range cs.pivotCols {
		if col < 0 {
			continue
		}
		val.Set(cs.rhs[row])
		for i, freeCol := range cs.freeCols {
			if cs.freeValues[i] == 0 {
				continue
			}
			tmp.SetInt64(int64(cs.freeValues[i]))
			tmp.Mul(tmp, cs.matrix[row][freeCol])
			val.Sub(val, tmp)
		}
		if !val.IsInt() || val.Sign() < 0 {
			return
		}
		presses := int(val.Num().Int64())
		if presses > cs.buttonCaps[col] {
			return
		}
		total += presses
		if cs.best != -1 && total >= cs.best {
			return
		}
	}
	if cs.best == -1 || total < cs.best {
		cs.best = total
	}
}
