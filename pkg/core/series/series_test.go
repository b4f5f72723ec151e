package series

import "testing"

func TestSortDescDoesNotMutateInput(t *testing.T) {
	s := Series{{Year: 2021, Value: 1}, {Year: 2023, Value: 3}, {Year: 2022, Value: 2}}

	sorted := s.SortDesc()

	if sorted[0].Year != 2023 || sorted[1].Year != 2022 || sorted[2].Year != 2021 {
		t.Errorf("expected descending years, got %v", sorted)
	}
	if s[0].Year != 2021 {
		t.Errorf("input was mutated: %v", s)
	}
}

func TestAtOutOfRangeReturnsZero(t *testing.T) {
	s := Series{{Year: 2023, Value: 7}}

	if got := s.At(0); got != 7 {
		t.Errorf("At(0) = %v, want 7", got)
	}
	if got := s.At(1); got != 0 {
		t.Errorf("At(1) = %v, want 0", got)
	}
	if got := s.At(-1); got != 0 {
		t.Errorf("At(-1) = %v, want 0", got)
	}
}

func TestLatestPicksNewestYearRegardlessOfOrder(t *testing.T) {
	s := Series{{Year: 2021, Value: 10}, {Year: 2023, Value: 30}, {Year: 2022, Value: 20}}

	if got := s.Latest(); got != 30 {
		t.Errorf("Latest() = %v, want 30", got)
	}

	var empty Series
	if got := empty.Latest(); got != 0 {
		t.Errorf("empty Latest() = %v, want 0", got)
	}
}

func TestByYear(t *testing.T) {
	s := Series{{Year: 2023, Value: 30}, {Year: 2022, Value: 20}}

	if v, ok := s.ByYear(2022); !ok || v != 20 {
		t.Errorf("ByYear(2022) = %v, %v", v, ok)
	}
	if _, ok := s.ByYear(1999); ok {
		t.Error("ByYear(1999) should miss")
	}
}
