package datepicker

import (
	"time"

	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/layout"
	"github.com/go-velt/velt/pkg/style"
)

// Calendar geometry. The popup uses fixed metrics so hit-testing stays
// independent of the style service.
const (
	calPad      = 8.0
	calHeaderH  = 28.0
	calWeekdayH = 20.0
	calCell     = 28.0
	calArrowW   = 28.0
)

// calendar is the popup content widget. It shares the field's State.
type calendar struct {
	picker DatePicker
}

func (c calendar) Component() string {
	return style.ComponentDatePicker
}

func (c calendar) Measure(available graphics.Size, st State) graphics.Size {
	return graphics.Size{
		Width:  layout.CalendarColumns*calCell + 2*calPad,
		Height: calHeaderH + calWeekdayH + layout.CalendarRows*calCell + 2*calPad,
	}
}

func (c calendar) Layout(assigned graphics.Rect, st State) []core.Placement {
	return nil
}

func (c calendar) Draw(canvas host.Canvas, bounds graphics.Rect, st State, sty style.Resolver) {
	visual := sty.Resolve(style.ComponentFloating, 0)
	rounded := graphics.RRectFromRectAndRadius(bounds, graphics.CircularRadius(visual.BorderRadius))
	canvas.FillRRect(rounded, visual.Background)
	canvas.StrokeRRect(rounded, visual.BorderWidth, visual.Border)

	displayed := layout.ClampMonth(st.Displayed, c.picker.MinDate, c.picker.MaxDate)

	// Header: prev arrow, month label, next arrow.
	header := headerRect(bounds)
	drawArrow(canvas, prevRect(bounds), visual.Foreground, true)
	drawArrow(canvas, nextRect(bounds), visual.Foreground, false)
	label := displayed.Format("January 2006")
	canvas.Text(label, graphics.Offset{
		X: header.Left + calArrowW + 4,
		Y: header.Center().Y - 7,
	}, visual.Text)

	// Weekday initials.
	for col := 0; col < layout.CalendarColumns; col++ {
		day := time.Weekday((int(c.picker.FirstWeekday) + col) % 7)
		cell := weekdayRect(bounds, col)
		mutedVisual := sty.Resolve(style.ComponentDatePicker, style.FlagMuted)
		canvas.Text(day.String()[:2], graphics.Offset{X: cell.Left + 4, Y: cell.Top + 2}, mutedVisual.Text)
	}

	// Day cells.
	cells := layout.MonthGrid(displayed, c.picker.FirstWeekday)
	for i, cell := range cells {
		rect := cellRect(bounds, i)
		flags := c.cellFlags(st, cell, i)
		cellVisual := sty.Resolve(style.ComponentDatePicker, flags)
		if flags.Has(style.FlagSelected) || flags.Has(style.FlagFocused) {
			canvas.FillRRect(
				graphics.RRectFromRectAndRadius(rect, graphics.CircularRadius(cellVisual.BorderRadius)),
				cellVisual.Background,
			)
		}
		canvas.Text(cell.Date.Format("2"), graphics.Offset{X: rect.Left + 6, Y: rect.Top + 6}, cellVisual.Text)
	}
}

func (c calendar) HandleEvent(ev event.Event, bounds graphics.Rect, st *State) core.Reaction {
	displayed := layout.ClampMonth(st.Displayed, c.picker.MinDate, c.picker.MaxDate)
	st.Displayed = displayed

	switch ev.Kind {
	case event.PointerPressed:
		if ev.Button != event.ButtonPrimary {
			return core.Consumed()
		}
		if prevRect(bounds).Contains(ev.Position) {
			return c.navigate(st, -1)
		}
		if nextRect(bounds).Contains(ev.Position) {
			return c.navigate(st, 1)
		}
		if i := hitCell(bounds, ev.Position); i >= 0 {
			return c.selectCell(st, i)
		}
		// Presses on the popup chrome are swallowed.
		return core.Consumed()

	case event.Scrolled:
		if ev.ScrollDelta.Y > 0 {
			return c.navigate(st, 1)
		}
		if ev.ScrollDelta.Y < 0 {
			return c.navigate(st, -1)
		}

	case event.KeyPressed:
		return c.handleKey(ev, st)
	}
	return core.Ignored()
}

// navigate moves the displayed month, leaving the selection unchanged.
func (c calendar) navigate(st *State, months int) core.Reaction {
	st.Displayed = layout.ClampMonth(
		st.Displayed.AddDate(0, months, 0),
		c.picker.MinDate, c.picker.MaxDate,
	)
	return core.ConsumedRedraw()
}

// selectCell applies a click on cell i.
func (c calendar) selectCell(st *State, i int) core.Reaction {
	cells := layout.MonthGrid(st.Displayed, c.picker.FirstWeekday)
	cell := cells[i]
	if !cell.InMonth && !c.picker.SelectAdjacent {
		return core.Consumed()
	}
	if !c.inRange(cell.Date) {
		return core.Consumed()
	}
	st.Selected = cell.Date
	st.Open = false
	st.FocusCell = -1
	if c.picker.OnChanged != nil {
		c.picker.OnChanged(cell.Date)
	}
	return core.Reaction{Status: event.Consumed, CloseOverlay: true, Redraw: true}
}

func (c calendar) handleKey(ev event.Event, st *State) core.Reaction {
	switch ev.Key {
	case event.KeyPageUp:
		return c.navigate(st, -1)
	case event.KeyPageDown:
		return c.navigate(st, 1)

	case event.KeyLeft, event.KeyRight, event.KeyUp, event.KeyDown:
		if st.FocusCell < 0 {
			st.FocusCell = c.initialFocus(st)
			return core.ConsumedRedraw()
		}
		delta := map[event.Key]int{
			event.KeyLeft:  -1,
			event.KeyRight: 1,
			event.KeyUp:    -layout.CalendarColumns,
			event.KeyDown:  layout.CalendarColumns,
		}[ev.Key]
		next := st.FocusCell + delta
		if next >= 0 && next < layout.CalendarRows*layout.CalendarColumns {
			st.FocusCell = next
		}
		return core.ConsumedRedraw()

	case event.KeyHome:
		st.FocusCell = c.initialFocus(st)
		return core.ConsumedRedraw()

	case event.KeyEnter, event.KeySpace:
		if st.FocusCell >= 0 {
			return c.selectCell(st, st.FocusCell)
		}

	case event.KeyEscape:
		st.Open = false
		st.FocusCell = -1
		return core.Reaction{Status: event.Consumed, CloseOverlay: true, Redraw: true}
	}
	return core.Ignored()
}

// initialFocus is the selected date's cell when visible, otherwise the
// first in-month cell.
func (c calendar) initialFocus(st *State) int {
	cells := layout.MonthGrid(st.Displayed, c.picker.FirstWeekday)
	for i, cell := range cells {
		if !st.Selected.IsZero() && layout.SameDay(cell.Date, st.Selected) {
			return i
		}
	}
	for i, cell := range cells {
		if cell.InMonth {
			return i
		}
	}
	return 0
}

func (c calendar) inRange(date time.Time) bool {
	if !c.picker.MinDate.IsZero() && date.Before(c.picker.MinDate) {
		return false
	}
	if !c.picker.MaxDate.IsZero() && date.After(c.picker.MaxDate) {
		return false
	}
	return true
}

// cellFlags computes the style flags for one day cell.
func (c calendar) cellFlags(st State, cell layout.CalendarCell, i int) style.Flags {
	var flags style.Flags
	if !cell.InMonth {
		flags |= style.FlagMuted
	}
	if !st.Selected.IsZero() && layout.SameDay(cell.Date, st.Selected) {
		flags |= style.FlagSelected
	}
	if st.FocusCell == i {
		flags |= style.FlagFocused
	}
	return flags
}

// Popup geometry helpers, shared by Draw and HandleEvent.

func headerRect(bounds graphics.Rect) graphics.Rect {
	return graphics.RectFromLTWH(bounds.Left+calPad, bounds.Top+calPad, bounds.Width()-2*calPad, calHeaderH)
}

func prevRect(bounds graphics.Rect) graphics.Rect {
	h := headerRect(bounds)
	return graphics.RectFromLTWH(h.Left, h.Top, calArrowW, calHeaderH)
}

func nextRect(bounds graphics.Rect) graphics.Rect {
	h := headerRect(bounds)
	return graphics.RectFromLTWH(h.Right-calArrowW, h.Top, calArrowW, calHeaderH)
}

func weekdayRect(bounds graphics.Rect, col int) graphics.Rect {
	return graphics.RectFromLTWH(
		bounds.Left+calPad+float64(col)*calCell,
		bounds.Top+calPad+calHeaderH,
		calCell, calWeekdayH,
	)
}

func cellRect(bounds graphics.Rect, i int) graphics.Rect {
	row := i / layout.CalendarColumns
	col := i % layout.CalendarColumns
	return graphics.RectFromLTWH(
		bounds.Left+calPad+float64(col)*calCell,
		bounds.Top+calPad+calHeaderH+calWeekdayH+float64(row)*calCell,
		calCell, calCell,
	)
}

// hitCell returns the grid index under a point, or -1.
func hitCell(bounds graphics.Rect, p graphics.Offset) int {
	gridLeft := bounds.Left + calPad
	gridTop := bounds.Top + calPad + calHeaderH + calWeekdayH
	if p.X < gridLeft || p.Y < gridTop {
		return -1
	}
	col := int((p.X - gridLeft) / calCell)
	row := int((p.Y - gridTop) / calCell)
	if col >= layout.CalendarColumns || row >= layout.CalendarRows {
		return -1
	}
	return row*layout.CalendarColumns + col
}

// drawArrow draws a chevron pointing left or right.
func drawArrow(canvas host.Canvas, r graphics.Rect, color graphics.Color, left bool) {
	center := r.Center()
	span := 5.0
	tipX := center.X + span
	backX := center.X - span
	if left {
		tipX, backX = backX, tipX
	}
	canvas.Line(graphics.Offset{X: backX, Y: center.Y - span}, graphics.Offset{X: tipX, Y: center.Y}, 1.5, color)
	canvas.Line(graphics.Offset{X: tipX, Y: center.Y}, graphics.Offset{X: backX, Y: center.Y + span}, 1.5, color)
}
