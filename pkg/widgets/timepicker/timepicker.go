// Package timepicker provides a time-of-day field that opens a floating
// hour/minute editor. It shares the date picker's popup machinery: the
// editor floats on the overlay manager's floating class and the chosen
// time is sticky across open/close.
package timepicker

import (
	"fmt"

	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/style"
	"github.com/go-velt/velt/pkg/widgets/floating"
)

// State is the caller-owned state of one time picker.
type State struct {
	// Hour is the selected hour in [0, 23]. Sticky across open/close.
	Hour int
	// Minute is the selected minute in [0, 59]. Sticky across open/close.
	Minute int
	// Open reports whether the editor popup is showing.
	Open bool
	// Hovered reports whether the pointer is over the field.
	Hovered bool
	// EditingMinutes selects which column keyboard arrows adjust.
	EditingMinutes bool
}

// NewState creates state with an initial time. Out-of-range components
// are clamped.
func NewState(hour, minute int) *State {
	return &State{Hour: clampInt(hour, 0, 23), Minute: clampInt(minute, 0, 59)}
}

// TimePicker is the widget adapter for the time field and its popup.
type TimePicker struct {
	// ID must match the id the picker is bound with.
	ID core.ID

	// MinuteStep is the increment for the minute column. Zero means 1.
	MinuteStep int

	// Disabled disables interaction.
	Disabled bool

	// OnChanged is called with the new hour and minute after each edit.
	OnChanged func(hour, minute int)

	// Measurer sizes the field text. Nil falls back to fixed metrics.
	Measurer host.TextMeasurer
}

// Component implements core.Widget.
func (t TimePicker) Component() string {
	return style.ComponentTimePicker
}

// Focusable implements core.FocusableWidget.
func (t TimePicker) Focusable() bool {
	return !t.Disabled
}

// Measure implements core.Widget.
func (t TimePicker) Measure(available graphics.Size, st State) graphics.Size {
	size := t.measurer().MeasureText(fieldText(st), graphics.TextStyle{FontSize: 14})
	return graphics.Size{Width: size.Width + 16, Height: size.Height + 12}
}

// Layout implements core.Widget.
func (t TimePicker) Layout(assigned graphics.Rect, st State) []core.Placement {
	return nil
}

// Draw implements core.Widget.
func (t TimePicker) Draw(canvas host.Canvas, bounds graphics.Rect, st State, sty style.Resolver) {
	var flags style.Flags
	if st.Hovered {
		flags |= style.FlagHovered
	}
	if st.Open {
		flags |= style.FlagActive
	}
	if t.Disabled {
		flags |= style.FlagDisabled
	}
	visual := sty.Resolve(style.ComponentTimePicker, flags)
	rounded := graphics.RRectFromRectAndRadius(bounds, graphics.CircularRadius(visual.BorderRadius))
	canvas.FillRRect(rounded, visual.Background)
	if visual.BorderWidth > 0 {
		canvas.StrokeRRect(rounded, visual.BorderWidth, visual.Border)
	}
	canvas.Text(fieldText(st), bounds.Inset(visual.Padding).Origin(), visual.Text)
}

// HandleEvent implements core.Widget.
func (t TimePicker) HandleEvent(ev event.Event, bounds graphics.Rect, st *State) core.Reaction {
	if t.Disabled {
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
		st.Open = true
		popup := core.Bind(floating.PopupID(t.ID), editor{picker: t}, st)
		return core.Reaction{
			Status:      event.Consumed,
			OpenOverlay: floating.Request(t.ID, bounds, popup, true),
			Redraw:      true,
		}

	case event.OverlayDismissed:
		st.Open = false
		return core.ConsumedRedraw()
	}
	return core.Ignored()
}

// fieldText formats the selection as HH:MM.
func fieldText(st State) string {
	return fmt.Sprintf("%02d:%02d", st.Hour, st.Minute)
}

func (t TimePicker) measurer() host.TextMeasurer {
	if t.Measurer != nil {
		return t.Measurer
	}
	return host.FixedMeasurer{}
}

func (t TimePicker) minuteStep() int {
	if t.MinuteStep <= 0 {
		return 1
	}
	return t.MinuteStep
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
