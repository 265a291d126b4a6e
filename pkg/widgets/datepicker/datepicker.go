// Package datepicker provides a date field that opens an anchored
// calendar popup. The calendar floats above the main tree on the overlay
// manager's floating class and dismisses on outside clicks; the selected
// date is sticky across open/close.
package datepicker

import (
	"time"

	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/layout"
	"github.com/go-velt/velt/pkg/style"
	"github.com/go-velt/velt/pkg/widgets/floating"
)

// DefaultFormat is the date format shown in the field.
const DefaultFormat = "Jan 2, 2006"

// State is the caller-owned state of one date picker.
type State struct {
	// Selected is the chosen date. Zero means no selection. Selected is
	// sticky: it survives closing the popup.
	Selected time.Time
	// Displayed is the month the calendar shows, normalized to the first
	// of the month. Reset to Selected's month on open.
	Displayed time.Time
	// FocusCell is the keyboard-focused cell index in the 6x7 grid.
	FocusCell int
	// Open reports whether the calendar popup is showing.
	Open bool
	// Hovered reports whether the pointer is over the field.
	Hovered bool
}

// NewState creates state with an initial selection.
func NewState(initial time.Time) *State {
	return &State{
		Selected:  initial,
		Displayed: layout.MonthOf(initial),
		FocusCell: -1,
	}
}

// DatePicker is the widget adapter for the date field and its calendar
// popup.
type DatePicker struct {
	// ID must match the id the picker is bound with; the popup derives
	// its identity and anchoring from it.
	ID core.ID

	// Format is the Go time layout for the field text. Empty means
	// DefaultFormat.
	Format string

	// MinDate and MaxDate bound month navigation and selection when
	// non-zero.
	MinDate time.Time
	MaxDate time.Time

	// FirstWeekday is the leftmost calendar column. The zero value is
	// Sunday.
	FirstWeekday time.Weekday

	// SelectAdjacent enables selecting the muted adjacent-month cells.
	SelectAdjacent bool

	// Disabled disables interaction.
	Disabled bool

	// OnChanged is called when the user selects a date.
	OnChanged func(time.Time)

	// Measurer sizes the field text. Nil falls back to fixed metrics.
	Measurer host.TextMeasurer
}

// Component implements core.Widget.
func (d DatePicker) Component() string {
	return style.ComponentDatePicker
}

// Focusable implements core.FocusableWidget.
func (d DatePicker) Focusable() bool {
	return !d.Disabled
}

// Measure implements core.Widget.
func (d DatePicker) Measure(available graphics.Size, st State) graphics.Size {
	text := d.fieldText(st)
	size := d.measurer().MeasureText(text, graphics.TextStyle{FontSize: 14})
	// Field padding plus the trailing calendar glyph.
	width := size.Width + 16 + fieldGlyphWidth
	height := size.Height + 12
	if width > available.Width && available.Width > 0 {
		width = available.Width
	}
	return graphics.Size{Width: width, Height: height}
}

// Layout implements core.Widget. The field is a leaf.
func (d DatePicker) Layout(assigned graphics.Rect, st State) []core.Placement {
	return nil
}

// Draw implements core.Widget.
func (d DatePicker) Draw(canvas host.Canvas, bounds graphics.Rect, st State, sty style.Resolver) {
	visual := sty.Resolve(style.ComponentDatePicker, d.flags(st))
	rounded := graphics.RRectFromRectAndRadius(bounds, graphics.CircularRadius(visual.BorderRadius))
	canvas.FillRRect(rounded, visual.Background)
	if visual.BorderWidth > 0 {
		canvas.StrokeRRect(rounded, visual.BorderWidth, visual.Border)
	}

	inner := bounds.Inset(visual.Padding)
	canvas.Text(d.fieldText(st), inner.Origin(), visual.Text)
	drawCalendarGlyph(canvas, glyphRect(inner), visual.Foreground)
}

// HandleEvent implements core.Widget.
func (d DatePicker) HandleEvent(ev event.Event, bounds graphics.Rect, st *State) core.Reaction {
	if d.Disabled {
		return core.Ignored()
	}

	switch ev.Kind {
	case event.PointerMoved:
		hovered := bounds.Contains(ev.Position)
		if hovered == st.Hovered {
			return core.Ignored()
		}
		st.Hovered = hovered
		return core.Reaction{Redraw: true}

	case event.PointerPressed:
		if ev.Button != event.ButtonPrimary || !bounds.Contains(ev.Position) {
			return core.Ignored()
		}
		if st.Open {
			st.Open = false
			return core.Reaction{Status: event.Consumed, CloseOverlay: true, Redraw: true}
		}
		return d.open(bounds, st)

	case event.KeyPressed:
		switch ev.Key {
		case event.KeyEnter, event.KeySpace:
			if st.Open {
				st.Open = false
				return core.Reaction{Status: event.Consumed, CloseOverlay: true, Redraw: true}
			}
			return d.open(bounds, st)
		}

	case event.OverlayDismissed:
		st.Open = false
		st.FocusCell = -1
		return core.ConsumedRedraw()
	}
	return core.Ignored()
}

// open resets the displayed month to the selection and requests the
// calendar popup.
func (d DatePicker) open(bounds graphics.Rect, st *State) core.Reaction {
	st.Open = true
	base := st.Selected
	if base.IsZero() {
		base = time.Now().UTC()
	}
	st.Displayed = layout.ClampMonth(base, d.MinDate, d.MaxDate)
	st.FocusCell = -1

	popup := core.Bind(floating.PopupID(d.ID), calendar{picker: d}, st)
	return core.Reaction{
		Status:      event.Consumed,
		OpenOverlay: floating.Request(d.ID, bounds, popup, true),
		Redraw:      true,
	}
}

// flags converts field state to style flags.
func (d DatePicker) flags(st State) style.Flags {
	var flags style.Flags
	if st.Hovered {
		flags |= style.FlagHovered
	}
	if st.Open {
		flags |= style.FlagActive
	}
	if d.Disabled {
		flags |= style.FlagDisabled
	}
	return flags
}

// fieldText formats the selection for the field.
func (d DatePicker) fieldText(st State) string {
	if st.Selected.IsZero() {
		return "Select date"
	}
	format := d.Format
	if format == "" {
		format = DefaultFormat
	}
	return st.Selected.Format(format)
}

func (d DatePicker) measurer() host.TextMeasurer {
	if d.Measurer != nil {
		return d.Measurer
	}
	return host.FixedMeasurer{}
}

const fieldGlyphWidth = 20.0

// glyphRect is the trailing square the calendar glyph draws into.
func glyphRect(inner graphics.Rect) graphics.Rect {
	side := 12.0
	return graphics.RectFromLTWH(
		inner.Right-side,
		inner.Center().Y-side/2,
		side, side,
	)
}

// drawCalendarGlyph draws a minimal calendar icon: an outlined square
// with a header line.
func drawCalendarGlyph(canvas host.Canvas, r graphics.Rect, color graphics.Color) {
	canvas.StrokeRect(r, 1, color)
	headerY := r.Top + r.Height()*0.3
	canvas.Line(
		graphics.Offset{X: r.Left, Y: headerY},
		graphics.Offset{X: r.Right, Y: headerY},
		1, color,
	)
}
