package grid

import (
	"math"
	"slices"
	"testing"
)

func TestNew(t *testing.T) {
	g := New(842, 32)
	if g.Rows != 32 {
		t.Errorf("Rows = %d, want 32", g.Rows)
	}
	if math.Abs(g.RowHeight-26.3125) > 1e-9 {
		t.Errorf("RowHeight = %v, want 26.3125", g.RowHeight)
	}
	if got := g.Y(4); math.Abs(got-105.25) > 1e-9 {
		t.Errorf("Y(4) = %v, want 105.25", got)
	}
}

func TestNewDefaultRows(t *testing.T) {
	if g := New(320, 0); g.Rows != DefaultRows {
		t.Errorf("New(320, 0).Rows = %d, want %d", g.Rows, DefaultRows)
	}
}

func TestRowRangeOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b RowRange
		want bool
	}{
		{"identical", RowRange{2, 4}, RowRange{2, 4}, true},
		{"touching end", RowRange{2, 4}, RowRange{4, 6}, true},
		{"contained", RowRange{0, 10}, RowRange{3, 3}, true},
		{"adjacent", RowRange{2, 4}, RowRange{5, 7}, false},
		{"before", RowRange{8, 9}, RowRange{0, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("%v.Overlaps(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %v, %v", tt.a, tt.b)
			}
		})
	}
}

func TestRowRangeRows(t *testing.T) {
	if got := (RowRange{3, 5}).Rows(); !slices.Equal(got, []int{3, 4, 5}) {
		t.Errorf("Rows() = %v, want [3 4 5]", got)
	}
	if got := (RowRange{5, 3}).Rows(); got != nil {
		t.Errorf("inverted range Rows() = %v, want nil", got)
	}
}
