package testing

import (
	"strings"

	"github.com/go-velt/velt/pkg/graphics"
)

// Op is one recorded draw command.
type Op struct {
	// Name is the Canvas method name, e.g. "FillRect".
	Name string
	// Bounds is the affected rectangle for rect-based commands.
	Bounds graphics.Rect
	// Color is the command color, where the command has one.
	Color graphics.Color
	// Text is the drawn string for "Text" commands.
	Text string
}

// RecordingCanvas implements host.Canvas and records commands instead of
// rendering them.
type RecordingCanvas struct {
	Ops []Op
}

// Reset discards the recorded commands.
func (c *RecordingCanvas) Reset() {
	c.Ops = nil
}

// Count returns the number of recorded commands with the given name.
func (c *RecordingCanvas) Count(name string) int {
	count := 0
	for _, op := range c.Ops {
		if op.Name == name {
			count++
		}
	}
	return count
}

// Texts returns every drawn string in order.
func (c *RecordingCanvas) Texts() []string {
	var texts []string
	for _, op := range c.Ops {
		if op.Name == "Text" {
			texts = append(texts, op.Text)
		}
	}
	return texts
}

// HasText reports whether any drawn string contains the substring.
func (c *RecordingCanvas) HasText(substring string) bool {
	for _, text := range c.Texts() {
		if strings.Contains(text, substring) {
			return true
		}
	}
	return false
}

func (c *RecordingCanvas) FillRect(r graphics.Rect, color graphics.Color) {
	c.Ops = append(c.Ops, Op{Name: "FillRect", Bounds: r, Color: color})
}

func (c *RecordingCanvas) StrokeRect(r graphics.Rect, width float64, color graphics.Color) {
	c.Ops = append(c.Ops, Op{Name: "StrokeRect", Bounds: r, Color: color})
}

func (c *RecordingCanvas) FillRRect(rr graphics.RRect, color graphics.Color) {
	c.Ops = append(c.Ops, Op{Name: "FillRRect", Bounds: rr.Rect, Color: color})
}

func (c *RecordingCanvas) StrokeRRect(rr graphics.RRect, width float64, color graphics.Color) {
	c.Ops = append(c.Ops, Op{Name: "StrokeRRect", Bounds: rr.Rect, Color: color})
}

func (c *RecordingCanvas) FillCircle(center graphics.Offset, radius float64, color graphics.Color) {
	c.Ops = append(c.Ops, Op{
		Name:   "FillCircle",
		Bounds: graphics.RectFromLTWH(center.X-radius, center.Y-radius, 2*radius, 2*radius),
		Color:  color,
	})
}

func (c *RecordingCanvas) StrokeCircle(center graphics.Offset, radius, width float64, color graphics.Color) {
	c.Ops = append(c.Ops, Op{
		Name:   "StrokeCircle",
		Bounds: graphics.RectFromLTWH(center.X-radius, center.Y-radius, 2*radius, 2*radius),
		Color:  color,
	})
}

func (c *RecordingCanvas) Line(from, to graphics.Offset, width float64, color graphics.Color) {
	c.Ops = append(c.Ops, Op{
		Name:   "Line",
		Bounds: graphics.Rect{Left: from.X, Top: from.Y, Right: to.X, Bottom: to.Y},
		Color:  color,
	})
}

func (c *RecordingCanvas) Arc(center graphics.Offset, radius, startAngle, sweepAngle, width float64, color graphics.Color) {
	c.Ops = append(c.Ops, Op{
		Name:   "Arc",
		Bounds: graphics.RectFromLTWH(center.X-radius, center.Y-radius, 2*radius, 2*radius),
		Color:  color,
	})
}

func (c *RecordingCanvas) Text(text string, origin graphics.Offset, style graphics.TextStyle) {
	c.Ops = append(c.Ops, Op{
		Name:   "Text",
		Bounds: graphics.RectFromOriginSize(origin, graphics.Size{}),
		Color:  style.Color,
		Text:   text,
	})
}

func (c *RecordingCanvas) PushClip(r graphics.Rect) {
	c.Ops = append(c.Ops, Op{Name: "PushClip", Bounds: r})
}

func (c *RecordingCanvas) PopClip() {
	c.Ops = append(c.Ops, Op{Name: "PopClip"})
}
