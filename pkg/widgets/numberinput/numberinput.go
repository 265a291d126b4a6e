// Package numberinput provides a numeric field with increment and
// decrement buttons. The value clamps into [Min, Max] on every change,
// including malformed values handed over by the caller.
package numberinput

import (
	"strconv"

	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/style"
)

// Field geometry.
const (
	buttonWidth = 24.0
	fieldPad    = 8.0
)

// State is the caller-owned state of one number input.
type State struct {
	// Value is the current number.
	Value float64
	// Hovered reports whether the pointer is over the field.
	Hovered bool
}

// NewState creates state with an initial value.
func NewState(value float64) *State {
	return &State{Value: value}
}

// NumberInput is the numeric field widget.
type NumberInput struct {
	// ID must match the id the field is bound with.
	ID core.ID

	// Min and Max bound the value. A Max below Min collapses the range
	// to Min.
	Min float64
	Max float64

	// Step is the increment size. Zero or negative means 1.
	Step float64

	// Decimals is the number of fraction digits shown.
	Decimals int

	// Disabled disables interaction.
	Disabled bool

	// OnChanged is called with the new value after each change.
	OnChanged func(float64)

	// Measurer sizes the field text. Nil falls back to fixed metrics.
	Measurer host.TextMeasurer
}

// Component implements core.Widget.
func (n NumberInput) Component() string {
	return style.ComponentNumberInput
}

// Focusable implements core.FocusableWidget.
func (n NumberInput) Focusable() bool {
	return !n.Disabled
}

// Measure implements core.Widget.
func (n NumberInput) Measure(available graphics.Size, st State) graphics.Size {
	text := n.format(n.clamp(st.Value))
	size := n.measurer().MeasureText(text, graphics.TextStyle{FontSize: 14})
	width := size.Width + 2*fieldPad + 2*buttonWidth
	height := size.Height + 12
	if width > available.Width && available.Width > 0 {
		width = available.Width
	}
	return graphics.Size{Width: width, Height: height}
}

// Layout implements core.Widget.
func (n NumberInput) Layout(assigned graphics.Rect, st State) []core.Placement {
	return nil
}

// Draw implements core.Widget.
func (n NumberInput) Draw(canvas host.Canvas, bounds graphics.Rect, st State, sty style.Resolver) {
	value := n.clamp(st.Value)
	visual := sty.Resolve(style.ComponentNumberInput, n.flags(st))
	rounded := graphics.RRectFromRectAndRadius(bounds, graphics.CircularRadius(visual.BorderRadius))
	canvas.FillRRect(rounded, visual.Background)
	canvas.StrokeRRect(rounded, visual.BorderWidth, visual.Border)

	canvas.Text(n.format(value), graphics.Offset{X: bounds.Left + buttonWidth + fieldPad, Y: bounds.Top + 6}, visual.Text)

	n.drawButton(canvas, n.decRect(bounds), "-", value > n.Min, visual, sty)
	n.drawButton(canvas, n.incRect(bounds), "+", value < n.effectiveMax(), visual, sty)
}

func (n NumberInput) drawButton(canvas host.Canvas, rect graphics.Rect, glyph string, enabled bool, visual style.Visual, sty style.Resolver) {
	text := visual.Text
	if !enabled {
		muted := sty.Resolve(style.ComponentNumberInput, style.FlagMuted)
		text = muted.Text
	}
	canvas.Text(glyph, graphics.Offset{X: rect.Center().X - 3, Y: rect.Top + 6}, text)
}

// HandleEvent implements core.Widget.
func (n NumberInput) HandleEvent(ev event.Event, bounds graphics.Rect, st *State) core.Reaction {
	if n.Disabled {
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
		switch {
		case n.decRect(bounds).Contains(ev.Position):
			return n.adjust(-n.step(), st)
		case n.incRect(bounds).Contains(ev.Position):
			return n.adjust(n.step(), st)
		}
		return core.Consumed()

	case event.Scrolled:
		if !bounds.Contains(ev.Position) {
			return core.Ignored()
		}
		// Scrolling up increments.
		if ev.ScrollDelta.Y < 0 {
			return n.adjust(n.step(), st)
		}
		if ev.ScrollDelta.Y > 0 {
			return n.adjust(-n.step(), st)
		}

	case event.KeyPressed:
		switch ev.Key {
		case event.KeyUp:
			return n.adjust(n.step(), st)
		case event.KeyDown:
			return n.adjust(-n.step(), st)
		case event.KeyHome:
			return n.set(n.Min, st)
		case event.KeyEnd:
			return n.set(n.effectiveMax(), st)
		}
	}
	return core.Ignored()
}

// adjust moves the value by a delta and clamps.
func (n NumberInput) adjust(delta float64, st *State) core.Reaction {
	return n.set(n.clamp(st.Value)+delta, st)
}

func (n NumberInput) set(value float64, st *State) core.Reaction {
	value = n.clamp(value)
	if value == st.Value {
		return core.Consumed()
	}
	st.Value = value
	if n.OnChanged != nil {
		n.OnChanged(value)
	}
	return core.ConsumedRedraw()
}

// clamp bounds a value into [Min, Max].
func (n NumberInput) clamp(value float64) float64 {
	if value < n.Min {
		return n.Min
	}
	if max := n.effectiveMax(); value > max {
		return max
	}
	return value
}

// effectiveMax collapses an inverted range to Min.
func (n NumberInput) effectiveMax() float64 {
	if n.Max < n.Min {
		return n.Min
	}
	return n.Max
}

func (n NumberInput) step() float64 {
	if n.Step > 0 {
		return n.Step
	}
	return 1
}

func (n NumberInput) format(value float64) string {
	return strconv.FormatFloat(value, 'f', n.Decimals, 64)
}

func (n NumberInput) flags(st State) style.Flags {
	var flags style.Flags
	if st.Hovered {
		flags |= style.FlagHovered
	}
	if n.Disabled {
		flags |= style.FlagDisabled
	}
	return flags
}

func (n NumberInput) decRect(bounds graphics.Rect) graphics.Rect {
	return graphics.Rect{Left: bounds.Left, Top: bounds.Top, Right: bounds.Left + buttonWidth, Bottom: bounds.Bottom}
}

func (n NumberInput) incRect(bounds graphics.Rect) graphics.Rect {
	return graphics.Rect{Left: bounds.Right - buttonWidth, Top: bounds.Top, Right: bounds.Right, Bottom: bounds.Bottom}
}

func (n NumberInput) measurer() host.TextMeasurer {
	if n.Measurer != nil {
		return n.Measurer
	}
	return host.FixedMeasurer{}
}
