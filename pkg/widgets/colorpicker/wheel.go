package colorpicker

import (
	"math"

	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/layout"
	"github.com/go-velt/velt/pkg/style"
)

// Editor geometry.
const (
	wheelPad      = 8.0
	wheelDiameter = 160.0
	sliderH       = 16.0
	sliderGap     = 8.0
)

// wheelEditor is the popup content widget. It shares the swatch's State.
type wheelEditor struct {
	picker ColorPicker
}

func (w wheelEditor) Component() string {
	return style.ComponentColorPicker
}

func (w wheelEditor) Measure(available graphics.Size, st State) graphics.Size {
	height := wheelDiameter + sliderGap + sliderH + 2*wheelPad
	if w.picker.ShowAlpha {
		height += sliderGap + sliderH
	}
	return graphics.Size{Width: wheelDiameter + 2*wheelPad, Height: height}
}

func (w wheelEditor) Layout(assigned graphics.Rect, st State) []core.Placement {
	return nil
}

func (w wheelEditor) Draw(canvas host.Canvas, bounds graphics.Rect, st State, sty style.Resolver) {
	visual := sty.Resolve(style.ComponentFloating, 0)
	rounded := graphics.RRectFromRectAndRadius(bounds, graphics.CircularRadius(visual.BorderRadius))
	canvas.FillRRect(rounded, visual.Background)
	canvas.StrokeRRect(rounded, visual.BorderWidth, visual.Border)

	// Hue ring: segments around the wheel at full saturation, plus a
	// radial saturation hint toward the center. The host has no gradient
	// primitive, so the wheel renders as arc segments.
	wheel := wheelRect(bounds)
	center := wheel.Center()
	radius := wheel.Width() / 2
	const segments = 48
	sweep := 2 * math.Pi / segments
	for i := 0; i < segments; i++ {
		hue := float64(i) / segments * 360
		canvas.Arc(center, radius-2, float64(i)*sweep, sweep, 4, graphics.HSVA(hue, 1, st.Value, 1))
		canvas.Arc(center, radius*0.55, float64(i)*sweep, sweep, radius*0.8,
			graphics.HSVA(hue, 0.5, st.Value, 0.35))
	}

	// Selection thumb.
	thumb := layout.WheelPoint(st.Hue, st.Saturation, wheel)
	canvas.StrokeCircle(thumb, 5, 2, visual.Foreground)

	// Value slider: track plus thumb.
	w.drawSlider(canvas, valueTrack(bounds), st.Value,
		graphics.HSVA(st.Hue, st.Saturation, 1, 1), visual)
	if w.picker.ShowAlpha {
		w.drawSlider(canvas, alphaTrack(bounds), st.Alpha, st.Color(), visual)
	}
}

func (w wheelEditor) drawSlider(canvas host.Canvas, track graphics.Rect, fraction float64, fill graphics.Color, visual style.Visual) {
	rounded := graphics.RRectFromRectAndRadius(track, graphics.CircularRadius(sliderH/2))
	canvas.FillRRect(rounded, fill.WithAlpha(0.3))
	canvas.StrokeRRect(rounded, 1, visual.Border)
	x := layout.SliderPoint(fraction, track)
	canvas.FillCircle(graphics.Offset{X: x, Y: track.Center().Y}, sliderH/2, fill)
	canvas.StrokeCircle(graphics.Offset{X: x, Y: track.Center().Y}, sliderH/2, 1, visual.Foreground)
}

func (w wheelEditor) HandleEvent(ev event.Event, bounds graphics.Rect, st *State) core.Reaction {
	switch ev.Kind {
	case event.PointerPressed:
		if ev.Button != event.ButtonPrimary {
			return core.Consumed()
		}
		switch {
		case wheelRect(bounds).Contains(ev.Position):
			st.drag = dragWheel
			return w.applyWheel(ev.Position, bounds, st)
		case valueTrack(bounds).Contains(ev.Position):
			st.drag = dragValue
			return w.applyValue(ev.Position, bounds, st)
		case w.picker.ShowAlpha && alphaTrack(bounds).Contains(ev.Position):
			st.drag = dragAlpha
			return w.applyAlpha(ev.Position, bounds, st)
		}
		return core.Consumed()

	case event.PointerMoved:
		switch st.drag {
		case dragWheel:
			return w.applyWheel(ev.Position, bounds, st)
		case dragValue:
			return w.applyValue(ev.Position, bounds, st)
		case dragAlpha:
			return w.applyAlpha(ev.Position, bounds, st)
		}

	case event.PointerReleased:
		if st.drag != dragNone {
			st.drag = dragNone
			return core.Consumed()
		}

	case event.KeyPressed:
		if ev.Key == event.KeyEscape || ev.Key == event.KeyEnter {
			st.Open = false
			st.drag = dragNone
			return core.Reaction{Status: event.Consumed, CloseOverlay: true, Redraw: true}
		}
	}
	return core.Ignored()
}

// applyWheel maps a pointer position to hue and saturation. The exact
// center yields saturation 0 with the hue unchanged.
func (w wheelEditor) applyWheel(p graphics.Offset, bounds graphics.Rect, st *State) core.Reaction {
	hue, saturation, ok := layout.WheelPick(p, wheelRect(bounds))
	if ok {
		st.Hue = hue
	}
	st.Saturation = saturation
	w.notify(st)
	return core.ConsumedRedraw()
}

func (w wheelEditor) applyValue(p graphics.Offset, bounds graphics.Rect, st *State) core.Reaction {
	st.Value = layout.SliderPick(p, valueTrack(bounds))
	w.notify(st)
	return core.ConsumedRedraw()
}

func (w wheelEditor) applyAlpha(p graphics.Offset, bounds graphics.Rect, st *State) core.Reaction {
	st.Alpha = layout.SliderPick(p, alphaTrack(bounds))
	w.notify(st)
	return core.ConsumedRedraw()
}

func (w wheelEditor) notify(st *State) {
	if w.picker.OnChanged != nil {
		w.picker.OnChanged(st.Color())
	}
}

// Editor geometry helpers.

func wheelRect(bounds graphics.Rect) graphics.Rect {
	return graphics.RectFromLTWH(bounds.Left+wheelPad, bounds.Top+wheelPad, wheelDiameter, wheelDiameter)
}

func valueTrack(bounds graphics.Rect) graphics.Rect {
	return graphics.RectFromLTWH(
		bounds.Left+wheelPad,
		bounds.Top+wheelPad+wheelDiameter+sliderGap,
		wheelDiameter, sliderH,
	)
}

func alphaTrack(bounds graphics.Rect) graphics.Rect {
	return graphics.RectFromLTWH(
		bounds.Left+wheelPad,
		bounds.Top+wheelPad+wheelDiameter+2*sliderGap+sliderH,
		wheelDiameter, sliderH,
	)
}
