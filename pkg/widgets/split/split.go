// Package split provides a two-pane container separated by a draggable
// divider. The divider position is stored in pixels from the leading
// edge and clamps so neither pane shrinks below its minimum.
package split

import (
	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/style"
)

// DefaultDividerWidth is the divider thickness.
const DefaultDividerWidth = 4.0

// Axis selects the pane arrangement.
type Axis int

const (
	// Horizontal places the panes side by side with a vertical divider.
	Horizontal Axis = iota
	// Vertical stacks the panes with a horizontal divider.
	Vertical
)

// State is the caller-owned state of one split.
type State struct {
	// Position is the divider's distance from the leading edge in
	// pixels. Negative means centered on first layout.
	Position float64
	// Dragging reports whether the divider is being dragged.
	Dragging bool
	// Hovered reports whether the pointer is over the divider.
	Hovered bool
}

// NewState creates state with the divider at the given position.
// Negative positions center the divider.
func NewState(position float64) *State {
	return &State{Position: position}
}

// Split is the two-pane container widget.
type Split struct {
	// ID must match the id the split is bound with.
	ID core.ID

	// Axis selects side-by-side or stacked panes.
	Axis Axis

	// First and Second are the pane contents.
	First  core.Node
	Second core.Node

	// MinFirst and MinSecond are the pane minimum sizes along the axis.
	MinFirst  float64
	MinSecond float64

	// DividerWidth is the divider thickness. Zero means
	// DefaultDividerWidth.
	DividerWidth float64

	// Disabled freezes the divider.
	Disabled bool

	// OnResized is called with the clamped position after each drag
	// step.
	OnResized func(float64)
}

// Component implements core.Widget.
func (s Split) Component() string {
	return style.ComponentSplit
}

// Measure implements core.Widget. A split fills the available space.
func (s Split) Measure(available graphics.Size, st State) graphics.Size {
	return available
}

// Layout implements core.Widget.
func (s Split) Layout(assigned graphics.Rect, st State) []core.Placement {
	first, second := s.paneRects(assigned, st)
	return []core.Placement{
		{Index: 0, Bounds: first},
		{Index: 1, Bounds: second},
	}
}

// Draw implements core.Widget.
func (s Split) Draw(canvas host.Canvas, bounds graphics.Rect, st State, sty style.Resolver) {
	first, second := s.paneRects(bounds, st)
	if s.First != nil {
		s.First.Draw(canvas, first, sty)
	}
	if s.Second != nil {
		s.Second.Draw(canvas, second, sty)
	}

	var flags style.Flags
	if st.Hovered || st.Dragging {
		flags |= style.FlagHovered
	}
	if st.Dragging {
		flags |= style.FlagActive
	}
	if s.Disabled {
		flags |= style.FlagDisabled
	}
	visual := sty.Resolve(style.ComponentSplit, flags)
	canvas.FillRect(s.dividerRect(bounds, st), visual.Background)
}

// HandleEvent implements core.Widget. Divider drags take precedence;
// everything else routes to the pane under the pointer.
func (s Split) HandleEvent(ev event.Event, bounds graphics.Rect, st *State) core.Reaction {
	divider := s.dividerRect(bounds, *st)

	switch ev.Kind {
	case event.PointerPressed:
		if !s.Disabled && ev.Button == event.ButtonPrimary && divider.Contains(ev.Position) {
			st.Dragging = true
			return core.ConsumedRedraw()
		}

	case event.PointerMoved:
		if st.Dragging {
			return s.drag(ev.Position, bounds, st)
		}
		hovered := divider.Contains(ev.Position)
		if hovered != st.Hovered {
			st.Hovered = hovered
			s.forward(ev, bounds, st)
			return core.Reaction{Redraw: true}
		}

	case event.PointerReleased:
		if st.Dragging {
			st.Dragging = false
			return core.ConsumedRedraw()
		}
	}

	return s.forward(ev, bounds, st)
}

// drag moves the divider to the pointer, clamped.
func (s Split) drag(p graphics.Offset, bounds graphics.Rect, st *State) core.Reaction {
	var position float64
	if s.Axis == Horizontal {
		position = p.X - bounds.Left
	} else {
		position = p.Y - bounds.Top
	}
	position = s.clamp(position, s.length(bounds))
	if position == st.Position {
		return core.Consumed()
	}
	st.Position = position
	if s.OnResized != nil {
		s.OnResized(position)
	}
	return core.ConsumedRedraw()
}

// forward routes an event to the pane under the pointer, or offers it to
// both panes for non-pointer events.
func (s Split) forward(ev event.Event, bounds graphics.Rect, st *State) core.Reaction {
	first, second := s.paneRects(bounds, *st)
	if ev.PointerEvent() {
		switch {
		case s.First != nil && first.Contains(ev.Position):
			return s.First.HandleEvent(ev, first)
		case s.Second != nil && second.Contains(ev.Position):
			return s.Second.HandleEvent(ev, second)
		}
		return core.Ignored()
	}
	if s.First != nil {
		if r := s.First.HandleEvent(ev, first); r.Status == event.Consumed {
			return r
		}
	}
	if s.Second != nil {
		if r := s.Second.HandleEvent(ev, second); r.Status == event.Consumed {
			return r
		}
	}
	return core.Ignored()
}

// position resolves the stored divider position against the bounds,
// centering negative positions and clamping everything.
func (s Split) position(bounds graphics.Rect, st State) float64 {
	length := s.length(bounds)
	position := st.Position
	if position < 0 {
		position = (length - s.dividerWidth()) / 2
	}
	return s.clamp(position, length)
}

// clamp bounds the divider so both panes keep their minimum sizes. When
// the minimums do not fit, the first pane's minimum wins.
func (s Split) clamp(position, length float64) float64 {
	max := length - s.MinSecond - s.dividerWidth()
	if position > max {
		position = max
	}
	if position < s.MinFirst {
		position = s.MinFirst
	}
	if position < 0 {
		position = 0
	}
	return position
}

func (s Split) paneRects(bounds graphics.Rect, st State) (graphics.Rect, graphics.Rect) {
	position := s.position(bounds, st)
	divider := s.dividerWidth()
	if s.Axis == Horizontal {
		first := graphics.Rect{Left: bounds.Left, Top: bounds.Top, Right: bounds.Left + position, Bottom: bounds.Bottom}
		second := graphics.Rect{Left: bounds.Left + position + divider, Top: bounds.Top, Right: bounds.Right, Bottom: bounds.Bottom}
		return first, second
	}
	first := graphics.Rect{Left: bounds.Left, Top: bounds.Top, Right: bounds.Right, Bottom: bounds.Top + position}
	second := graphics.Rect{Left: bounds.Left, Top: bounds.Top + position + divider, Right: bounds.Right, Bottom: bounds.Bottom}
	return first, second
}

func (s Split) dividerRect(bounds graphics.Rect, st State) graphics.Rect {
	position := s.position(bounds, st)
	if s.Axis == Horizontal {
		return graphics.Rect{Left: bounds.Left + position, Top: bounds.Top, Right: bounds.Left + position + s.dividerWidth(), Bottom: bounds.Bottom}
	}
	return graphics.Rect{Left: bounds.Left, Top: bounds.Top + position, Right: bounds.Right, Bottom: bounds.Top + position + s.dividerWidth()}
}

// length is the bounds extent along the split axis.
func (s Split) length(bounds graphics.Rect) float64 {
	if s.Axis == Horizontal {
		return bounds.Width()
	}
	return bounds.Height()
}

func (s Split) dividerWidth() float64 {
	if s.DividerWidth > 0 {
		return s.DividerWidth
	}
	return DefaultDividerWidth
}
