package series

import "sort"

// SortDesc returns a copy of the series sorted by year descending
// (latest first). The input is never modified.
func (s Series) SortDesc() Series {
	out := make(Series, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Year > out[j].Year
	})
	return out
}

// At returns the value at index i, or 0 when the index is out of range.
// Parallel statement series are assumed index-aligned after sorting;
// a missing point degrades to zero rather than panicking.
func (s Series) At(i int) float64 {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i].Value
}

// YearAt returns the fiscal year at index i, or 0 when out of range.
func (s Series) YearAt(i int) int {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i].Year
}

// Latest returns the most recent point's value, or 0 for an empty series.
func (s Series) Latest() float64 {
	if len(s) == 0 {
		return 0
	}
	return s.SortDesc()[0].Value
}

// ByYear returns the value for a specific fiscal year and whether it exists.
func (s Series) ByYear(year int) (float64, bool) {
	for _, p := range s {
		if p.Year == year {
			return p.Value, true
		}
	}
	return 0, false
}
