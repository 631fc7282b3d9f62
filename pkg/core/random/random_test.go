package random

import (
	"errors"
	"slices"
	"testing"
)

func TestChoiceEmpty(t *testing.T) {
	_, err := Choice(New(1), []int{})
	if !errors.Is(err, ErrEmptyChoice) {
		t.Fatalf("Choice(empty) error = %v, want ErrEmptyChoice", err)
	}
}

func TestChoiceUsesSource(t *testing.T) {
	items := []string{"a", "b", "c"}
	src := NewSequence(2, 0, 4)

	var got []string
	for range 3 {
		v, err := Choice(src, items)
		if err != nil {
			t.Fatalf("Choice error: %v", err)
		}
		got = append(got, v)
	}
	want := []string{"c", "a", "b"}
	if !slices.Equal(got, want) {
		t.Errorf("Choice sequence = %v, want %v", got, want)
	}
}

func TestFlipCoin(t *testing.T) {
	src := NewSequence(0, 1)
	if FlipCoin(src) {
		t.Error("FlipCoin with draw 0 should be false")
	}
	if !FlipCoin(src) {
		t.Error("FlipCoin with draw 1 should be true")
	}
}

func TestRandIntRange(t *testing.T) {
	src := New(42)
	seen := make(map[int]bool)
	for range 500 {
		v := RandInt(src, 3, 6)
		if v < 3 || v > 6 {
			t.Fatalf("RandInt(3, 6) = %d, out of range", v)
		}
		seen[v] = true
	}
	for v := 3; v <= 6; v++ {
		if !seen[v] {
			t.Errorf("RandInt(3, 6) never produced %d in 500 draws", v)
		}
	}
}

func TestRandIntSingleValue(t *testing.T) {
	if got := RandInt(New(7), 5, 5); got != 5 {
		t.Errorf("RandInt(5, 5) = %d, want 5", got)
	}
}

func TestRandIntPanicsOnInvertedRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("RandInt(2, 1) should panic")
		}
	}()
	RandInt(New(1), 2, 1)
}

func TestSample(t *testing.T) {
	items := []int{10, 20, 30, 40, 50}

	tests := []struct {
		name string
		k    int
		want int
	}{
		{"zero", 0, 0},
		{"negative", -3, 0},
		{"partial", 3, 3},
		{"exact", 5, 5},
		{"more than available", 9, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sample(New(3), items, tt.k)
			if len(got) != tt.want {
				t.Fatalf("len(Sample(k=%d)) = %d, want %d", tt.k, len(got), tt.want)
			}
			seen := make(map[int]bool)
			for _, v := range got {
				if seen[v] {
					t.Errorf("Sample returned %d twice", v)
				}
				seen[v] = true
				if !slices.Contains(items, v) {
					t.Errorf("Sample returned %d, not in input", v)
				}
			}
		})
	}
}

func TestSampleAllReturnsEveryItemOnce(t *testing.T) {
	items := []int{1, 2, 3, 4}
	got := Sample(New(9), items, len(items))
	slices.Sort(got)
	if !slices.Equal(got, items) {
		t.Errorf("Sample(k=len) = %v, want permutation of %v", got, items)
	}
}

func TestSampleDoesNotMutateInput(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}
	orig := slices.Clone(items)
	_ = Sample(New(11), items, 3)
	if !slices.Equal(items, orig) {
		t.Errorf("Sample mutated input: %v, want %v", items, orig)
	}
}

func TestNewIsReproducible(t *testing.T) {
	a, b := New(1234), New(1234)
	for range 50 {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("same seed diverged: %d != %d", x, y)
		}
	}
}

func TestSequenceWraps(t *testing.T) {
	s := NewSequence(1, 5)
	got := []int{s.IntN(10), s.IntN(10), s.IntN(10), s.IntN(3)}
	want := []int{1, 5, 1, 2}
	if !slices.Equal(got, want) {
		t.Errorf("Sequence draws = %v, want %v", got, want)
	}
	if s.Draws() != 4 {
		t.Errorf("Draws() = %d, want 4", s.Draws())
	}
}

func TestSequenceEmpty(t *testing.T) {
	s := NewSequence()
	for i := 0; i < 5; i++ {
		if got := s.IntN(3); got != 0 {
			t.Errorf("empty Sequence IntN = %d, want 0", got)
		}
	}
	if s.Draws() != 5 {
		t.Errorf("Draws() = %d, want 5", s.Draws())
	}
}
