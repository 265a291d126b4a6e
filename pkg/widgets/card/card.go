// Package card provides a padded, bordered container with optional
// head, body and foot rows stacked vertically.
package card

import (
	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/style"
)

// Row indices used in placements.
const (
	RowHead = iota
	RowBody
	RowFoot
)

// State is the caller-owned state of one card. Cards keep no state of
// their own.
type State struct{}

// Card is the container widget.
type Card struct {
	// Head, Body and Foot are the row contents. Nil rows collapse.
	Head core.Node
	Body core.Node
	Foot core.Node
}

// Component implements core.Widget.
func (c Card) Component() string {
	return style.ComponentCard
}

// Measure implements core.Widget.
func (c Card) Measure(available graphics.Size, st State) graphics.Size {
	padding := graphics.UniformInsets(12)
	spacing := 8.0
	inner := graphics.Size{
		Width:  available.Width - padding.Horizontal(),
		Height: available.Height - padding.Vertical(),
	}

	width := 0.0
	height := 0.0
	rows := 0
	for _, row := range c.rows() {
		size := row.Measure(inner)
		if size.Width > width {
			width = size.Width
		}
		height += size.Height
		rows++
	}
	if rows > 1 {
		height += spacing * float64(rows-1)
	}
	return graphics.Size{
		Width:  width + padding.Horizontal(),
		Height: height + padding.Vertical(),
	}
}

// Layout implements core.Widget.
func (c Card) Layout(assigned graphics.Rect, st State) []core.Placement {
	padding := graphics.UniformInsets(12)
	spacing := 8.0
	inner := assigned.Inset(padding)

	var placements []core.Placement
	y := inner.Top
	for index, row := range []core.Node{c.Head, c.Body, c.Foot} {
		if row == nil {
			continue
		}
		size := row.Measure(inner.Size())
		placements = append(placements, core.Placement{
			Index:  index,
			Bounds: graphics.RectFromLTWH(inner.Left, y, inner.Width(), size.Height),
		})
		y += size.Height + spacing
	}
	return placements
}

// Draw implements core.Widget.
func (c Card) Draw(canvas host.Canvas, bounds graphics.Rect, st State, sty style.Resolver) {
	visual := sty.Resolve(style.ComponentCard, 0)
	rounded := graphics.RRectFromRectAndRadius(bounds, graphics.CircularRadius(visual.BorderRadius))
	canvas.FillRRect(rounded, visual.Background)
	canvas.StrokeRRect(rounded, visual.BorderWidth, visual.Border)

	placements := c.Layout(bounds, st)
	rows := []core.Node{c.Head, c.Body, c.Foot}
	for i, p := range placements {
		rows[p.Index].Draw(canvas, p.Bounds, sty)
		if i < len(placements)-1 {
			// Separator under every row but the last.
			y := p.Bounds.Bottom + 4
			canvas.Line(
				graphics.Offset{X: p.Bounds.Left, Y: y},
				graphics.Offset{X: p.Bounds.Right, Y: y},
				1, visual.Border,
			)
		}
	}
}

// HandleEvent implements core.Widget. Events route to the row under the
// pointer; key events offer to every row until one consumes.
func (c Card) HandleEvent(ev event.Event, bounds graphics.Rect, st *State) core.Reaction {
	placements := c.Layout(bounds, *st)
	rows := []core.Node{c.Head, c.Body, c.Foot}

	if ev.PointerEvent() {
		for _, p := range placements {
			if p.Bounds.Contains(ev.Position) {
				return rows[p.Index].HandleEvent(ev, p.Bounds)
			}
		}
		return core.Ignored()
	}
	for _, p := range placements {
		if r := rows[p.Index].HandleEvent(ev, p.Bounds); r.Status == event.Consumed {
			return r
		}
	}
	return core.Ignored()
}

// rows returns the non-nil rows in order.
func (c Card) rows() []core.Node {
	var rows []core.Node
	for _, row := range []core.Node{c.Head, c.Body, c.Foot} {
		if row != nil {
			rows = append(rows, row)
		}
	}
	return rows
}
