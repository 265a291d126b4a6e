// Package colorpicker provides a color swatch field that opens a
// floating HSV editor: a hue/saturation wheel plus value and alpha
// sliders. Pointer drags on the wheel map to hue and saturation through
// polar coordinates; a press at the exact wheel center zeroes saturation
// and keeps the prior hue.
package colorpicker

import (
	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/style"
	"github.com/go-velt/velt/pkg/widgets/floating"
)

// State is the caller-owned state of one color picker.
type State struct {
	// Hue is in degrees [0, 360).
	Hue float64
	// Saturation is in [0, 1].
	Saturation float64
	// Value is in [0, 1].
	Value float64
	// Alpha is in [0, 1].
	Alpha float64
	// Open reports whether the editor popup is showing.
	Open bool
	// Hovered reports whether the pointer is over the swatch.
	Hovered bool

	// drag remembers which editor control a drag started on.
	drag dragTarget
}

type dragTarget int

const (
	dragNone dragTarget = iota
	dragWheel
	dragValue
	dragAlpha
)

// NewState creates state from an initial color.
func NewState(initial graphics.Color) *State {
	hue, saturation, value, alpha := initial.HSVA()
	return &State{Hue: hue, Saturation: saturation, Value: value, Alpha: alpha}
}

// Color returns the state's current color.
func (s State) Color() graphics.Color {
	return graphics.HSVA(s.Hue, s.Saturation, s.Value, s.Alpha)
}

// ColorPicker is the widget adapter for the swatch field and its editor
// popup.
type ColorPicker struct {
	// ID must match the id the picker is bound with.
	ID core.ID

	// ShowAlpha adds the alpha slider to the editor.
	ShowAlpha bool

	// Disabled disables interaction.
	Disabled bool

	// OnChanged is called with the new color after each edit.
	OnChanged func(graphics.Color)
}

// Component implements core.Widget.
func (c ColorPicker) Component() string {
	return style.ComponentColorPicker
}

// Focusable implements core.FocusableWidget.
func (c ColorPicker) Focusable() bool {
	return !c.Disabled
}

// Measure implements core.Widget.
func (c ColorPicker) Measure(available graphics.Size, st State) graphics.Size {
	return graphics.Size{Width: 48, Height: 28}
}

// Layout implements core.Widget.
func (c ColorPicker) Layout(assigned graphics.Rect, st State) []core.Placement {
	return nil
}

// Draw implements core.Widget.
func (c ColorPicker) Draw(canvas host.Canvas, bounds graphics.Rect, st State, sty style.Resolver) {
	var flags style.Flags
	if st.Hovered {
		flags |= style.FlagHovered
	}
	if st.Open {
		flags |= style.FlagActive
	}
	if c.Disabled {
		flags |= style.FlagDisabled
	}
	visual := sty.Resolve(style.ComponentColorPicker, flags)
	rounded := graphics.RRectFromRectAndRadius(bounds, graphics.CircularRadius(visual.BorderRadius))
	canvas.FillRRect(rounded, st.Color())
	canvas.StrokeRRect(rounded, visual.BorderWidth, visual.Border)
}

// HandleEvent implements core.Widget.
func (c ColorPicker) HandleEvent(ev event.Event, bounds graphics.Rect, st *State) core.Reaction {
	if c.Disabled {
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
		st.drag = dragNone
		popup := core.Bind(floating.PopupID(c.ID), wheelEditor{picker: c}, st)
		return core.Reaction{
			Status:      event.Consumed,
			OpenOverlay: floating.Request(c.ID, bounds, popup, true),
			Redraw:      true,
		}

	case event.OverlayDismissed:
		st.Open = false
		st.drag = dragNone
		return core.ConsumedRedraw()
	}
	return core.Ignored()
}
