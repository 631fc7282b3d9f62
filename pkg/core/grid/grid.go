package grid

// DefaultRows is the number of rows a poster is divided into.
const DefaultRows = 32

// Grid is the immutable row geometry of a canvas.
type Grid struct {
	Rows      int     `json:"rows"`
	RowHeight float64 `json:"row_height"`
}

// New divides a canvas of the given height into rows equal rows.
// A non-positive rows count falls back to DefaultRows.
func New(height float64, rows int) Grid {
	if rows <= 0 {
		rows = DefaultRows
	}
	return Grid{Rows: rows, RowHeight: height / float64(rows)}
}

// Y returns the top pixel coordinate of row.
func (g Grid) Y(row int) float64 { return float64(row) * g.RowHeight }

// Height returns the pixel height of n rows.
func (g Grid) Height(n int) float64 { return float64(n) * g.RowHeight }

// AllRows returns every row index in ascending order.
func (g Grid) AllRows() []int {
	rows := make([]int, g.Rows)
	for i := range rows {
		rows[i] = i
	}
	return rows
}

// RowRange is an inclusive range of rows.
type RowRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of rows covered by r.
func (r RowRange) Len() int { return r.End - r.Start + 1 }

// Overlaps reports whether r and o share at least one row.
func (r RowRange) Overlaps(o RowRange) bool {
	return r.Start <= o.End && o.Start <= r.End
}

// Contains reports whether row lies inside r.
func (r RowRange) Contains(row int) bool {
	return row >= r.Start && row <= r.End
}

// Rows lists every row of r in ascending order.
func (r RowRange) Rows() []int {
	if r.End < r.Start {
		return nil
	}
	rows := make([]int, 0, r.Len())
	for row := r.Start; row <= r.End; row++ {
		rows = append(rows, row)
	}
	return rows
}
