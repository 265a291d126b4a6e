// Package grid provides a flow container. In wrap mode children pack
// left to right and break to a new row when the next child would
// overflow; in columns mode children fill a fixed number of equal-width
// columns row by row.
package grid

import (
	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/layout"
	"github.com/go-velt/velt/pkg/style"
)

// Mode selects how the grid places its children.
type Mode int

const (
	// ModeWrap packs children by intrinsic size, breaking rows on
	// overflow.
	ModeWrap Mode = iota
	// ModeColumns places children into a fixed column count.
	ModeColumns
)

// State is the caller-owned state of one grid. A grid keeps no state of
// its own; the type exists so the grid binds like every other widget.
type State struct{}

// Grid is the flow container widget.
type Grid struct {
	// Children are the cell nodes, in placement order.
	Children []core.Node

	// Mode selects wrap or fixed-column placement.
	Mode Mode

	// Columns is the column count in ModeColumns. Values below 1 clamp
	// to 1.
	Columns int

	// RowHeight is the fixed row height in ModeColumns. Zero falls back
	// to the tallest child's measured height.
	RowHeight float64

	// Spacing is the gap between cells. Negative values clamp to 0.
	Spacing float64
}

// Component implements core.Widget.
func (g Grid) Component() string {
	return style.ComponentGrid
}

// Measure implements core.Widget.
func (g Grid) Measure(available graphics.Size, st State) graphics.Size {
	return g.pack(available).Size
}

// Layout implements core.Widget.
func (g Grid) Layout(assigned graphics.Rect, st State) []core.Placement {
	result := g.pack(assigned.Size())
	placements := make([]core.Placement, len(result.Placements))
	for i, p := range result.Placements {
		placements[i] = core.Placement{
			Index:  p.Index,
			Bounds: p.Bounds.Translate(assigned.Left, assigned.Top),
		}
	}
	return placements
}

// Draw implements core.Widget.
func (g Grid) Draw(canvas host.Canvas, bounds graphics.Rect, st State, sty style.Resolver) {
	for _, p := range g.Layout(bounds, st) {
		g.Children[p.Index].Draw(canvas, p.Bounds, sty)
	}
}

// HandleEvent implements core.Widget. Pointer events route to the cell
// under the pointer; key events offer to every cell until one consumes.
func (g Grid) HandleEvent(ev event.Event, bounds graphics.Rect, st *State) core.Reaction {
	placements := g.Layout(bounds, *st)

	switch ev.Kind {
	case event.PointerPressed, event.PointerReleased, event.Scrolled:
		for _, p := range placements {
			if p.Bounds.Contains(ev.Position) {
				return g.Children[p.Index].HandleEvent(ev, p.Bounds)
			}
		}

	case event.PointerMoved:
		// Moves go to every cell so hover state clears on exit.
		reaction := core.Ignored()
		for _, p := range placements {
			r := g.Children[p.Index].HandleEvent(ev, p.Bounds)
			if r.Status == event.Consumed {
				return r
			}
			if r.Redraw {
				reaction.Redraw = true
			}
		}
		return reaction

	default:
		for _, p := range placements {
			if r := g.Children[p.Index].HandleEvent(ev, p.Bounds); r.Status == event.Consumed {
				return r
			}
		}
	}
	return core.Ignored()
}

// pack runs the layout engine for the configured mode.
func (g Grid) pack(available graphics.Size) layout.WrapResult {
	spacing := g.Spacing
	if spacing < 0 {
		spacing = 0
	}
	sizes := make([]graphics.Size, len(g.Children))
	for i, child := range g.Children {
		sizes[i] = child.Measure(available)
	}

	if g.Mode == ModeColumns {
		rowHeight := g.RowHeight
		if rowHeight <= 0 {
			for _, size := range sizes {
				if size.Height > rowHeight {
					rowHeight = size.Height
				}
			}
		}
		return layout.Columns(len(g.Children), g.Columns, available.Width, rowHeight, spacing)
	}
	return layout.Wrap(sizes, available.Width, spacing)
}
