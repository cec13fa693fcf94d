package aoc

import (
	"slices"
	"testing"
)

func TestQueueOrder(t *testing.T) {
	q := NewQueue(1, 2)
	q.Push(3)
	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		return true
	})
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("queue drained as %v, want [1 2 3]", got)
	}
	if q.Len() != 0 {
		t.Errorf("Len = %d after drain", q.Len())
	}
}

func TestStackOrder(t *testing.T) {
	var s Stack[int]
	s.Push(1)
	s.Push(2)
	s.Push(3)
	if v, ok := s.Peek(); !ok || v != 3 {
		t.Errorf("Peek = %v, %v; want 3, true", v, ok)
	}
	var got []int
	s.While(func(v int) bool {
		got = append(got, v)
		return true
	})
	if !slices.Equal(got, []int{3, 2, 1}) {
		t.Errorf("stack drained as %v, want [3 2 1]", got)
	}
}

func TestPQOrder(t *testing.T) {
	var pq PQ[string]
	pq.Push(&PQI[string]{V: "low", P: 1})
	pq.Push(&PQI[string]{V: "high", P: 9})
	pq.Push(&PQI[string]{V: "mid", P: 5})
	var got []string
	for pq.Len() > 0 {
		got = append(got, pq.Pop().V)
	}
	if !slices.Equal(got, []string{"high", "mid", "low"}) {
		t.Errorf("pq drained as %v", got)
	}
}

func TestUnionFind(t *testing.T) {
	u := NewUnionFind(5)
	if !u.Union(0, 1) {
		t.Error("Union(0, 1) reported no merge")
	}
	if u.Union(1, 0) {
		t.Error("Union(1, 0) merged twice")
	}
	u.Union(2, 3)
	u.Union(3, 0)
	if u.Find(2) != u.Find(1) {
		t.Error("0-3 are not in one set")
	}
	sizes := u.ComponentSizes()
	slices.Sort(sizes)
	if !slices.Equal(sizes, []int{1, 4}) {
		t.Errorf("ComponentSizes = %v, want [1 4]", sizes)
	}
}
