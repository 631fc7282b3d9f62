package grid

import "slices"

// Pool is the ordered set of rows not yet claimed by any placed block.
// A Pool is owned by a single layout pass and is not safe for concurrent use.
type Pool struct {
	rows []int
}

// NewPool returns a pool holding every row in [0, rows).
func NewPool(rows int) *Pool {
	p := &Pool{rows: make([]int, 0, max(rows, 0))}
	for r := range rows {
		p.rows = append(p.rows, r)
	}
	return p
}

// PoolOf returns a pool holding the given rows. Duplicates are dropped and
// the rows are kept in ascending order.
func PoolOf(rows ...int) *Pool {
	sorted := slices.Clone(rows)
	slices.Sort(sorted)
	return &Pool{rows: slices.Compact(sorted)}
}

// Rows returns a copy of the free rows in ascending order.
func (p *Pool) Rows() []int { return slices.Clone(p.rows) }

// Len returns the number of free rows.
func (p *Pool) Len() int { return len(p.rows) }

// Contains reports whether row is free.
func (p *Pool) Contains(row int) bool {
	_, ok := slices.BinarySearch(p.rows, row)
	return ok
}

// RemoveRange deletes every row in [start, end] from the pool.
// Rows that are already absent are ignored.
func (p *Pool) RemoveRange(start, end int) {
	p.rows = slices.DeleteFunc(p.rows, func(r int) bool {
		return r >= start && r <= end
	})
}

// Filter returns a new pool with the rows for which keep reports true.
// The receiver is left unchanged.
func (p *Pool) Filter(keep func(row int) bool) *Pool {
	out := &Pool{rows: make([]int, 0, len(p.rows))}
	for _, r := range p.rows {
		if keep(r) {
			out.rows = append(out.rows, r)
		}
	}
	return out
}

// Clone returns an independent copy of the pool.
func (p *Pool) Clone() *Pool { return &Pool{rows: slices.Clone(p.rows)} }

// FindStarts returns every free row r such that all rows r..r+span-1 are
// free. Contiguity is decided by row number, so a gap in the pool breaks a
// run. The result is ascending and empty when the span cannot fit.
func FindStarts(p *Pool, span int) []int {
	starts := []int{}
	if span <= 0 {
		return starts
	}
	run := 0
	for i, r := range p.rows {
		if i > 0 && r == p.rows[i-1]+1 {
			run++
		} else {
			run = 1
		}
		if run >= span {
			starts = append(starts, r-span+1)
		}
	}
	return starts
}
