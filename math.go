package aoc

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Float | constraints.Integer
}

func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

func Product[T Number](nums ...T) T {
	out := T(1)
	for _, v := range nums {
		out *= v
	}
	return out
}

func AbsDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func LCM(integers ...int) int {
	if len(integers) == 0 {
		panic("no integers")
	}
	result := integers[0]
	for _, v := range integers[1:] {
		result = result / GCD(result, v) * v
	}
	return result
}
