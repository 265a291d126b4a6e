// Package host declares the capability surface velt consumes from the
// embedding GUI toolkit. The host owns the renderer, the window, and the
// event loop; velt components only emit draw commands against a Canvas,
// measure text through a TextMeasurer, and request repaints through an
// InvalidateFunc. None of these interfaces are implemented here.
package host

import "github.com/go-velt/velt/pkg/graphics"

// Canvas is the draw-command sink provided by the host for one frame.
// All coordinates are absolute within the current viewport. Components
// must not retain a Canvas across frames.
type Canvas interface {
	// FillRect fills a rectangle with a solid color.
	FillRect(r graphics.Rect, color graphics.Color)

	// StrokeRect outlines a rectangle.
	StrokeRect(r graphics.Rect, width float64, color graphics.Color)

	// FillRRect fills a rounded rectangle.
	FillRRect(rr graphics.RRect, color graphics.Color)

	// StrokeRRect outlines a rounded rectangle.
	StrokeRRect(rr graphics.RRect, width float64, color graphics.Color)

	// FillCircle fills a circle.
	FillCircle(center graphics.Offset, radius float64, color graphics.Color)

	// StrokeCircle outlines a circle.
	StrokeCircle(center graphics.Offset, radius float64, width float64, color graphics.Color)

	// Line draws a straight line segment.
	Line(from, to graphics.Offset, width float64, color graphics.Color)

	// Arc strokes a circular arc. Angles are in radians, measured
	// clockwise from the positive x axis.
	Arc(center graphics.Offset, radius, startAngle, sweepAngle, width float64, color graphics.Color)

	// Text draws a single run of text with its baseline origin at the
	// top-left of the given point.
	Text(text string, origin graphics.Offset, style graphics.TextStyle)

	// PushClip restricts subsequent commands to the given rectangle.
	// Clips nest; each PushClip must be matched by a PopClip.
	PushClip(r graphics.Rect)

	// PopClip removes the most recent clip rectangle.
	PopClip()
}

// TextMeasurer measures text using the host's font engine. Layout engines
// use it for intrinsic sizing of labels, tabs and menu entries.
type TextMeasurer interface {
	MeasureText(text string, style graphics.TextStyle) graphics.Size
}

// InvalidateFunc asks the host to schedule a repaint. Components call it
// only when visible state changed outside direct input handling, such as
// on an animation tick.
type InvalidateFunc func()

// FixedMeasurer is a TextMeasurer with constant per-rune advance and line
// height. Hosts with real font metrics should not use it; it exists for
// tests and headless layout.
type FixedMeasurer struct {
	// Advance is the horizontal advance per rune. Zero defaults to 8.
	Advance float64
	// LineHeight is the height of a text line. Zero defaults to 16.
	LineHeight float64
}

// MeasureText implements TextMeasurer.
func (m FixedMeasurer) MeasureText(text string, style graphics.TextStyle) graphics.Size {
	advance := m.Advance
	if advance <= 0 {
		advance = 8
	}
	height := m.LineHeight
	if height <= 0 {
		height = 16
	}
	if style.FontSize > 0 {
		scale := style.FontSize / 16
		advance *= scale
		height *= scale
	}
	count := 0
	for range text {
		count++
	}
	return graphics.Size{Width: float64(count) * advance, Height: height}
}
