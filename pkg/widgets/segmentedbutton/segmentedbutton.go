// Package segmentedbutton provides a segment strip where exactly one
// segment is selected, or any number of them in multi-select mode.
package segmentedbutton

import (
	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/layout"
	"github.com/go-velt/velt/pkg/style"
)

// Strip geometry.
const (
	segmentHeight = 28.0
	segmentPad    = 12.0
)

// State is the caller-owned state of one segmented button.
type State struct {
	// Selected is the single-select index, clamped to the segment range.
	Selected int
	// Multi holds the per-segment selection in multi-select mode.
	Multi []bool
	// Hovered is the index of the hovered segment, -1 for none.
	Hovered int
	// Focus is the keyboard cursor, moved with the arrow keys.
	Focus int
}

// NewState creates single-select state with the given selection.
func NewState(selected int) *State {
	return &State{Selected: selected, Hovered: -1, Focus: selected}
}

// NewMultiState creates multi-select state for the given segment count.
func NewMultiState(count int) *State {
	return &State{Multi: make([]bool, count), Hovered: -1}
}

// Segment is one strip entry.
type Segment struct {
	// Label is the segment text.
	Label string
	// Disabled renders the segment muted and unselectable.
	Disabled bool
}

// SegmentedButton is the segment strip widget.
type SegmentedButton struct {
	// ID must match the id the strip is bound with.
	ID core.ID

	// Segments are the strip entries.
	Segments []Segment

	// Multi toggles segments independently instead of moving a single
	// selection.
	Multi bool

	// Equal gives every segment the same width instead of its label's.
	Equal bool

	// Disabled disables the whole strip.
	Disabled bool

	// OnChanged is called with the toggled index after each change.
	OnChanged func(int)

	// Measurer sizes the segment labels. Nil falls back to fixed
	// metrics.
	Measurer host.TextMeasurer
}

// Component implements core.Widget.
func (s SegmentedButton) Component() string {
	return style.ComponentSegmentedButton
}

// Focusable implements core.FocusableWidget.
func (s SegmentedButton) Focusable() bool {
	return !s.Disabled && len(s.Segments) > 0
}

// Measure implements core.Widget.
func (s SegmentedButton) Measure(available graphics.Size, st State) graphics.Size {
	width := 0.0
	for _, w := range s.segmentWidths() {
		width += w
	}
	if width > available.Width && available.Width > 0 {
		width = available.Width
	}
	return graphics.Size{Width: width, Height: segmentHeight}
}

// Layout implements core.Widget. The strip is a leaf.
func (s SegmentedButton) Layout(assigned graphics.Rect, st State) []core.Placement {
	return nil
}

// Draw implements core.Widget.
func (s SegmentedButton) Draw(canvas host.Canvas, bounds graphics.Rect, st State, sty style.Resolver) {
	base := sty.Resolve(style.ComponentSegmentedButton, s.stripFlags())
	outer := graphics.RRectFromRectAndRadius(bounds, graphics.CircularRadius(base.BorderRadius))
	canvas.FillRRect(outer, base.Background)

	segments := s.segments(bounds)
	for i, segment := range s.Segments {
		flags := s.segmentFlags(st, i, segment)
		visual := sty.Resolve(style.ComponentSegmentedButton, flags)
		rect := segments[i]
		if flags.Has(style.FlagSelected) || flags.Has(style.FlagHovered) {
			canvas.FillRect(rect, visual.Background)
		}
		canvas.Text(segment.Label, graphics.Offset{X: rect.Left + segmentPad, Y: rect.Top + 6}, visual.Text)
		if i > 0 {
			// Divider between segments.
			canvas.Line(
				graphics.Offset{X: rect.Left, Y: rect.Top},
				graphics.Offset{X: rect.Left, Y: rect.Bottom},
				base.BorderWidth, base.Border,
			)
		}
	}
	canvas.StrokeRRect(outer, base.BorderWidth, base.Border)
}

// HandleEvent implements core.Widget.
func (s SegmentedButton) HandleEvent(ev event.Event, bounds graphics.Rect, st *State) core.Reaction {
	if s.Disabled {
		return core.Ignored()
	}

	switch ev.Kind {
	case event.PointerMoved:
		hovered := s.hitSegment(bounds, ev.Position)
		if hovered == st.Hovered {
			return core.Ignored()
		}
		st.Hovered = hovered
		return core.Reaction{Redraw: true}

	case event.PointerPressed:
		if ev.Button != event.ButtonPrimary {
			return core.Ignored()
		}
		if index := s.hitSegment(bounds, ev.Position); index >= 0 {
			st.Focus = index
			return s.toggle(index, st)
		}

	case event.KeyPressed:
		switch ev.Key {
		case event.KeyLeft:
			st.Focus = s.step(st.Focus, -1)
			if !s.Multi {
				return s.toggle(st.Focus, st)
			}
			return core.ConsumedRedraw()
		case event.KeyRight:
			st.Focus = s.step(st.Focus, 1)
			if !s.Multi {
				return s.toggle(st.Focus, st)
			}
			return core.ConsumedRedraw()
		case event.KeyEnter, event.KeySpace:
			return s.toggle(st.Focus, st)
		}
	}
	return core.Ignored()
}

// toggle applies a selection change at the index.
func (s SegmentedButton) toggle(index int, st *State) core.Reaction {
	if len(s.Segments) == 0 {
		return core.Consumed()
	}
	index = layout.ClampIndex(index, len(s.Segments))
	if s.Segments[index].Disabled {
		return core.Consumed()
	}

	if s.Multi {
		if len(st.Multi) < len(s.Segments) {
			grown := make([]bool, len(s.Segments))
			copy(grown, st.Multi)
			st.Multi = grown
		}
		st.Multi[index] = !st.Multi[index]
	} else {
		if st.Selected == index {
			return core.Consumed()
		}
		st.Selected = index
	}
	if s.OnChanged != nil {
		s.OnChanged(index)
	}
	return core.ConsumedRedraw()
}

// step moves the keyboard cursor over disabled segments, wrapping.
func (s SegmentedButton) step(from, delta int) int {
	count := len(s.Segments)
	if count == 0 {
		return 0
	}
	index := from
	for i := 0; i < count; i++ {
		index = ((index+delta)%count + count) % count
		if !s.Segments[index].Disabled {
			return index
		}
	}
	return from
}

func (s SegmentedButton) stripFlags() style.Flags {
	if s.Disabled {
		return style.FlagDisabled
	}
	return 0
}

func (s SegmentedButton) segmentFlags(st State, index int, segment Segment) style.Flags {
	var flags style.Flags
	if segment.Disabled || s.Disabled {
		flags |= style.FlagDisabled
	}
	if s.selected(st, index) {
		flags |= style.FlagSelected
	}
	if index == st.Hovered && !segment.Disabled && !s.Disabled {
		flags |= style.FlagHovered
	}
	return flags
}

// selected reports whether a segment is selected in the current mode.
func (s SegmentedButton) selected(st State, index int) bool {
	if s.Multi {
		return index < len(st.Multi) && st.Multi[index]
	}
	return index == layout.ClampIndex(st.Selected, len(s.Segments))
}

func (s SegmentedButton) segmentWidths() []float64 {
	measurer := s.measurer()
	widths := make([]float64, len(s.Segments))
	for i, segment := range s.Segments {
		size := measurer.MeasureText(segment.Label, graphics.TextStyle{FontSize: 14})
		widths[i] = size.Width + 2*segmentPad
	}
	return widths
}

func (s SegmentedButton) segments(bounds graphics.Rect) []graphics.Rect {
	mode := layout.StripIntrinsic
	if s.Equal {
		mode = layout.StripEqual
	}
	segments := layout.Strip(s.segmentWidths(), mode, bounds.Width(), bounds.Height(), 0)
	for i := range segments {
		segments[i] = segments[i].Translate(bounds.Left, bounds.Top)
	}
	return segments
}

func (s SegmentedButton) hitSegment(bounds graphics.Rect, p graphics.Offset) int {
	if !bounds.Contains(p) {
		return -1
	}
	for i, segment := range s.segments(bounds) {
		if segment.Contains(p) {
			return i
		}
	}
	return -1
}

func (s SegmentedButton) measurer() host.TextMeasurer {
	if s.Measurer != nil {
		return s.Measurer
	}
	return host.FixedMeasurer{}
}
