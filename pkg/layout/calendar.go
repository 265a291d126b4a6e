package layout

import "time"

// CalendarColumns is the number of weekday columns in a month grid.
const CalendarColumns = 7

// CalendarRows is the number of week rows in a month grid. Six rows fit
// every month for every first-weekday choice.
const CalendarRows = 6

// CalendarCell is one day cell of a month grid.
type CalendarCell struct {
	// Date is the day the cell shows, at midnight UTC.
	Date time.Time
	// InMonth is false for the leading and trailing cells that belong to
	// the adjacent months. Those render muted.
	InMonth bool
}

// MonthGrid computes the 6x7 cell grid for the month containing the
// given date. The grid starts on firstWeekday and always includes
// leading and trailing cells from the adjacent months.
//
// Cells are returned row-major: index = row*CalendarColumns + column.
func MonthGrid(displayed time.Time, firstWeekday time.Weekday) []CalendarCell {
	year, month, _ := displayed.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	lead := int(first.Weekday()-firstWeekday+7) % CalendarColumns
	start := first.AddDate(0, 0, -lead)

	cells := make([]CalendarCell, CalendarRows*CalendarColumns)
	for i := range cells {
		date := start.AddDate(0, 0, i)
		cells[i] = CalendarCell{
			Date:    date,
			InMonth: date.Month() == month && date.Year() == year,
		}
	}
	return cells
}

// ClampMonth normalizes a displayed month to the first day of its month
// and clamps it into [min, max] when bounds are non-zero. A malformed
// zero time clamps to the current month.
func ClampMonth(displayed, min, max time.Time) time.Time {
	if displayed.IsZero() {
		displayed = time.Now().UTC()
	}
	displayed = MonthOf(displayed)
	if !min.IsZero() {
		if lo := MonthOf(min); displayed.Before(lo) {
			displayed = lo
		}
	}
	if !max.IsZero() {
		if hi := MonthOf(max); displayed.After(hi) {
			displayed = hi
		}
	}
	return displayed
}

// MonthOf returns midnight UTC on the first day of t's month.
func MonthOf(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
