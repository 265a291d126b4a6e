package timepicker

import (
	"fmt"

	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/style"
)

// Editor geometry: two columns of up-arrow, value, down-arrow.
const (
	edPad    = 8.0
	edColW   = 48.0
	edRowH   = 28.0
	edColGap = 8.0
)

// editor is the popup content widget. It shares the field's State.
type editor struct {
	picker TimePicker
}

func (e editor) Component() string {
	return style.ComponentTimePicker
}

func (e editor) Measure(available graphics.Size, st State) graphics.Size {
	return graphics.Size{
		Width:  2*edColW + edColGap + 2*edPad,
		Height: 3*edRowH + 2*edPad,
	}
}

func (e editor) Layout(assigned graphics.Rect, st State) []core.Placement {
	return nil
}

func (e editor) Draw(canvas host.Canvas, bounds graphics.Rect, st State, sty style.Resolver) {
	visual := sty.Resolve(style.ComponentFloating, 0)
	rounded := graphics.RRectFromRectAndRadius(bounds, graphics.CircularRadius(visual.BorderRadius))
	canvas.FillRRect(rounded, visual.Background)
	canvas.StrokeRRect(rounded, visual.BorderWidth, visual.Border)

	for col := 0; col < 2; col++ {
		selected := (col == 1) == st.EditingMinutes
		var flags style.Flags
		if selected {
			flags |= style.FlagFocused
		}
		colVisual := sty.Resolve(style.ComponentTimePicker, flags)

		value := st.Hour
		if col == 1 {
			value = st.Minute
		}
		cell := valueRect(bounds, col)
		canvas.Text(fmt.Sprintf("%02d", value), graphics.Offset{X: cell.Left + 12, Y: cell.Top + 6}, colVisual.Text)
		drawStepArrow(canvas, upRect(bounds, col), colVisual.Foreground, true)
		drawStepArrow(canvas, downRect(bounds, col), colVisual.Foreground, false)
	}
}

func (e editor) HandleEvent(ev event.Event, bounds graphics.Rect, st *State) core.Reaction {
	switch ev.Kind {
	case event.PointerPressed:
		if ev.Button != event.ButtonPrimary {
			return core.Consumed()
		}
		for col := 0; col < 2; col++ {
			if upRect(bounds, col).Contains(ev.Position) {
				return e.step(st, col == 1, 1)
			}
			if downRect(bounds, col).Contains(ev.Position) {
				return e.step(st, col == 1, -1)
			}
			if valueRect(bounds, col).Contains(ev.Position) {
				st.EditingMinutes = col == 1
				return core.ConsumedRedraw()
			}
		}
		return core.Consumed()

	case event.Scrolled:
		if ev.ScrollDelta.Y < 0 {
			return e.step(st, st.EditingMinutes, 1)
		}
		if ev.ScrollDelta.Y > 0 {
			return e.step(st, st.EditingMinutes, -1)
		}

	case event.KeyPressed:
		switch ev.Key {
		case event.KeyUp:
			return e.step(st, st.EditingMinutes, 1)
		case event.KeyDown:
			return e.step(st, st.EditingMinutes, -1)
		case event.KeyLeft:
			st.EditingMinutes = false
			return core.ConsumedRedraw()
		case event.KeyRight:
			st.EditingMinutes = true
			return core.ConsumedRedraw()
		case event.KeyEnter, event.KeyEscape:
			st.Open = false
			return core.Reaction{Status: event.Consumed, CloseOverlay: true, Redraw: true}
		}
	}
	return core.Ignored()
}

// step adjusts a column, wrapping within its range.
func (e editor) step(st *State, minutes bool, direction int) core.Reaction {
	if minutes {
		step := e.picker.minuteStep() * direction
		st.Minute = ((st.Minute+step)%60 + 60) % 60
	} else {
		st.Hour = ((st.Hour+direction)%24 + 24) % 24
	}
	if e.picker.OnChanged != nil {
		e.picker.OnChanged(st.Hour, st.Minute)
	}
	return core.ConsumedRedraw()
}

// Editor geometry helpers.

func colLeft(bounds graphics.Rect, col int) float64 {
	return bounds.Left + edPad + float64(col)*(edColW+edColGap)
}

func upRect(bounds graphics.Rect, col int) graphics.Rect {
	return graphics.RectFromLTWH(colLeft(bounds, col), bounds.Top+edPad, edColW, edRowH)
}

func valueRect(bounds graphics.Rect, col int) graphics.Rect {
	return graphics.RectFromLTWH(colLeft(bounds, col), bounds.Top+edPad+edRowH, edColW, edRowH)
}

func downRect(bounds graphics.Rect, col int) graphics.Rect {
	return graphics.RectFromLTWH(colLeft(bounds, col), bounds.Top+edPad+2*edRowH, edColW, edRowH)
}

// drawStepArrow draws a chevron pointing up or down.
func drawStepArrow(canvas host.Canvas, r graphics.Rect, color graphics.Color, up bool) {
	center := r.Center()
	span := 5.0
	tipY := center.Y - span
	backY := center.Y + span
	if !up {
		tipY, backY = backY, tipY
	}
	canvas.Line(graphics.Offset{X: center.X - span, Y: backY}, graphics.Offset{X: center.X, Y: tipY}, 1.5, color)
	canvas.Line(graphics.Offset{X: center.X, Y: tipY}, graphics.Offset{X: center.X + span, Y: backY}, 1.5, color)
}
