package layout_test

import (
	"testing"
	"time"

	"github.com/go-velt/velt/pkg/layout"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthGrid_AlwaysFortyTwoCells(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		cells := layout.MonthGrid(date(2024, month, 15), time.Sunday)
		if len(cells) != 42 {
			t.Fatalf("%v: %d cells, want 42", month, len(cells))
		}
	}
}

func TestMonthGrid_LeadingCellsAreAdjacentMonth(t *testing.T) {
	// March 2024 starts on a Friday; a Sunday-first grid leads with five
	// February cells.
	cells := layout.MonthGrid(date(2024, time.March, 1), time.Sunday)

	for i := 0; i < 5; i++ {
		if cells[i].InMonth {
			t.Errorf("cell %d should be out of month", i)
		}
		if cells[i].Date.Month() != time.February {
			t.Errorf("cell %d month = %v, want February", i, cells[i].Date.Month())
		}
	}
	if !cells[5].InMonth || cells[5].Date.Day() != 1 {
		t.Errorf("cell 5 = %+v, want March 1", cells[5])
	}
}

func TestMonthGrid_FirstWeekdayShiftsColumns(t *testing.T) {
	// With Monday first, March 2024 (starting Friday) leads with four
	// cells instead of five.
	cells := layout.MonthGrid(date(2024, time.March, 1), time.Monday)
	if cells[4].Date != date(2024, time.March, 1) {
		t.Errorf("cell 4 = %v, want March 1", cells[4].Date)
	}
	if got := cells[0].Date.Weekday(); got != time.Monday {
		t.Errorf("first cell weekday = %v, want Monday", got)
	}
}

func TestMonthGrid_RowMajorContiguousDates(t *testing.T) {
	cells := layout.MonthGrid(date(2024, time.February, 10), time.Sunday)
	for i := 1; i < len(cells); i++ {
		if !cells[i].Date.Equal(cells[i-1].Date.AddDate(0, 0, 1)) {
			t.Fatalf("cells %d..%d are not consecutive days", i-1, i)
		}
	}
}

func TestClampMonth_NormalizesToFirst(t *testing.T) {
	got := layout.ClampMonth(date(2024, time.February, 28), time.Time{}, time.Time{})
	if got != date(2024, time.February, 1) {
		t.Errorf("got %v, want 2024-02-01", got)
	}
}

func TestClampMonth_Bounds(t *testing.T) {
	min := date(2024, time.March, 10)
	max := date(2024, time.June, 20)

	if got := layout.ClampMonth(date(2024, time.January, 1), min, max); got != date(2024, time.March, 1) {
		t.Errorf("below min: got %v, want 2024-03-01", got)
	}
	if got := layout.ClampMonth(date(2024, time.December, 1), min, max); got != date(2024, time.June, 1) {
		t.Errorf("above max: got %v, want 2024-06-01", got)
	}
	if got := layout.ClampMonth(date(2024, time.April, 5), min, max); got != date(2024, time.April, 1) {
		t.Errorf("inside: got %v, want 2024-04-01", got)
	}
}

func TestClampMonth_ZeroTimeFallsBackToNow(t *testing.T) {
	got := layout.ClampMonth(time.Time{}, time.Time{}, time.Time{})
	if got != layout.MonthOf(time.Now().UTC()) {
		t.Errorf("got %v, want the current month", got)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, time.May, 3, 9, 30, 0, 0, time.UTC)
	b := time.Date(2024, time.May, 3, 23, 59, 0, 0, time.UTC)
	if !layout.SameDay(a, b) {
		t.Error("same calendar day reported different")
	}
	if layout.SameDay(a, b.AddDate(0, 0, 1)) {
		t.Error("different days reported same")
	}
}
