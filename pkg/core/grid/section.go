package grid

import "slices"

// Section is a bounded run of contiguous rows used as the placement unit for
// background rectangles.
type Section struct {
	StartRow int `json:"start_row"`
	Length   int `json:"length"`
}

// Range returns the rows covered by s.
func (s Section) Range() RowRange {
	return RowRange{Start: s.StartRow, End: s.StartRow + s.Length - 1}
}

// Sections groups rows into maximal ascending contiguous runs and splits each
// run into consecutive chunks of at most maxLen rows. A run whose length is
// not a multiple of maxLen ends with a shorter chunk. The result is fully
// determined by its inputs; rows may be unsorted or contain duplicates.
func Sections(rows []int, maxLen int) []Section {
	if maxLen <= 0 || len(rows) == 0 {
		return nil
	}
	sorted := slices.Clone(rows)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	var out []Section
	runStart := 0
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && sorted[i] == sorted[i-1]+1 {
			continue
		}
		out = appendChunks(out, sorted[runStart], i-runStart, maxLen)
		runStart = i
	}
	return out
}

func appendChunks(out []Section, start, length, maxLen int) []Section {
	for length > 0 {
		n := min(length, maxLen)
		out = append(out, Section{StartRow: start, Length: n})
		start += n
		length -= n
	}
	return out
}
