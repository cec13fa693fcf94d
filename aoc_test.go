package aoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\n  \n", nil},
		{"a\nb\n", []string{"a", "b"}},
		{"\na\nb", []string{"a", "b"}},
	}

	for _, tt := range tests {
		got := Lines(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("Lines(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Lines(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestAtoi(t *testing.T) {
	if got, err := Atoi(" 42\n"); err != nil || got != 42 {
		t.Errorf("Atoi = %v, %v; want 42, nil", got, err)
	}
	if _, err := Atoi("4x2"); err == nil {
		t.Error("Atoi accepted malformed input")
	}
}

func TestCutInts(t *testing.T) {
	got, err := CutInts("3,5,4,7", ",")
	if err != nil {
		t.Fatal(err)
	}
	want := []int{3, 5, 4, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CutInts[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if _, err := CutInts("1,two", ","); err == nil {
		t.Error("CutInts accepted malformed input")
	}
}

func TestReadInputMissingFile(t *testing.T) {
	if _, err := ReadInput(1, filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("ReadInput succeeded on a missing explicit path")
	}
}

func TestReadInputExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("R10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadInput(1, path)
	if err != nil {
		t.Fatal(err)
	}
	if got != "R10\n" {
		t.Errorf("ReadInput = %q, want %q", got, "R10\n")
	}
}

func TestRunSolution(t *testing.T) {
	var sb strings.Builder
	solve := func(string) (any, any, error) { return 1, 2, nil }
	if err := RunSolution(&sb, solve, ""); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "A: 1\n") || !strings.Contains(out, "B: 2\n") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRunSolutionNoPartB(t *testing.T) {
	var sb strings.Builder
	solve := func(string) (any, any, error) { return 7, nil, nil }
	if err := RunSolution(&sb, solve, ""); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(sb.String(), "B:") {
		t.Errorf("part B printed without an answer: %q", sb.String())
	}
}
