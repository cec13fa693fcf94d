package aoc

import "testing"

func TestParseGrid(t *testing.T) {
	g := ParseGrid("ab\ncdef\n")
	size := g.Size()
	if size != (Pt{4, 2}) {
		t.Fatalf("Size = %v, want {4 2}", size)
	}
	if got := g.At(Pt{1, 1}); got != 'd' {
		t.Errorf("At(1,1) = %q, want 'd'", got)
	}
	// Short lines are padded with spaces.
	if got := g.At(Pt{3, 0}); got != ' ' {
		t.Errorf("At(3,0) = %q, want ' '", got)
	}
	if _, ok := g.AtOk(Pt{4, 0}); ok {
		t.Error("AtOk succeeded out of bounds")
	}
}

func TestForNeighbors(t *testing.T) {
	var all, immediate int
	p := Pt{3, 3}
	p.ForNeighbors(func(Pt) bool { all++; return true })
	p.ForImmediateNeighbors(func(n Pt) bool {
		immediate++
		if n.X != p.X && n.Y != p.Y {
			t.Errorf("diagonal neighbor %v from ForImmediateNeighbors", n)
		}
		return true
	})
	if all != 8 || immediate != 4 {
		t.Errorf("neighbor counts = %d, %d; want 8, 4", all, immediate)
	}
}

func TestGridHash(t *testing.T) {
	a := ParseGrid("ab\ncd")
	b := ParseGrid("ab\ncd")
	if a.Hash() != b.Hash() {
		t.Error("equal grids hash differently")
	}
	b.Set(Pt{0, 0}, 'x')
	if a.Hash() == b.Hash() {
		t.Error("different grids share a hash")
	}
}
