// Package selectionlist provides a vertical option list with a single
// selected index, movable by pointer or the arrow keys.
package selectionlist

import (
	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/layout"
	"github.com/go-velt/velt/pkg/style"
)

// Row geometry.
const (
	rowHeight = 26.0
	rowPad    = 10.0
)

// State is the caller-owned state of one selection list.
type State struct {
	// Selected is the selected option index, clamped to the option
	// range. -1 means no selection.
	Selected int
	// Hovered is the index of the hovered option, -1 for none.
	Hovered int
}

// NewState creates state with the given selection, -1 for none.
func NewState(selected int) *State {
	return &State{Selected: selected, Hovered: -1}
}

// SelectionList is the option list widget.
type SelectionList struct {
	// ID must match the id the list is bound with.
	ID core.ID

	// Options are the row labels.
	Options []string

	// Disabled disables interaction.
	Disabled bool

	// OnChanged is called with the new selected index after a change.
	OnChanged func(int)

	// Measurer sizes the row labels. Nil falls back to fixed metrics.
	Measurer host.TextMeasurer
}

// Component implements core.Widget.
func (l SelectionList) Component() string {
	return style.ComponentSelectionList
}

// Focusable implements core.FocusableWidget.
func (l SelectionList) Focusable() bool {
	return !l.Disabled && len(l.Options) > 0
}

// Measure implements core.Widget.
func (l SelectionList) Measure(available graphics.Size, st State) graphics.Size {
	width := 0.0
	measurer := l.measurer()
	for _, option := range l.Options {
		size := measurer.MeasureText(option, graphics.TextStyle{FontSize: 14})
		if w := size.Width + 2*rowPad; w > width {
			width = w
		}
	}
	if width > available.Width && available.Width > 0 {
		width = available.Width
	}
	return graphics.Size{Width: width, Height: float64(len(l.Options)) * rowHeight}
}

// Layout implements core.Widget.
func (l SelectionList) Layout(assigned graphics.Rect, st State) []core.Placement {
	return nil
}

// Draw implements core.Widget.
func (l SelectionList) Draw(canvas host.Canvas, bounds graphics.Rect, st State, sty style.Resolver) {
	base := sty.Resolve(style.ComponentSelectionList, l.listFlags())
	canvas.FillRect(bounds, base.Background)
	canvas.StrokeRect(bounds, base.BorderWidth, base.Border)

	selected := l.selectedIndex(st)
	for i, option := range l.Options {
		row := l.rowRect(bounds, i)
		flags := l.listFlags()
		if i == selected {
			flags |= style.FlagSelected
		}
		if i == st.Hovered && !l.Disabled {
			flags |= style.FlagHovered
		}
		visual := sty.Resolve(style.ComponentSelectionList, flags)
		if flags.Has(style.FlagSelected) || flags.Has(style.FlagHovered) {
			canvas.FillRect(row, visual.Background)
		}
		canvas.Text(option, graphics.Offset{X: row.Left + rowPad, Y: row.Top + 5}, visual.Text)
	}
}

// HandleEvent implements core.Widget.
func (l SelectionList) HandleEvent(ev event.Event, bounds graphics.Rect, st *State) core.Reaction {
	if l.Disabled {
		return core.Ignored()
	}

	switch ev.Kind {
	case event.PointerMoved:
		hovered := l.hitRow(bounds, ev.Position)
		if hovered == st.Hovered {
			return core.Ignored()
		}
		st.Hovered = hovered
		return core.Reaction{Redraw: true}

	case event.PointerPressed:
		if ev.Button != event.ButtonPrimary {
			return core.Ignored()
		}
		if index := l.hitRow(bounds, ev.Position); index >= 0 {
			return l.choose(index, st)
		}

	case event.KeyPressed:
		count := len(l.Options)
		if count == 0 {
			break
		}
		switch ev.Key {
		case event.KeyDown:
			return l.choose(l.selectedIndex(*st)+1, st)
		case event.KeyUp:
			selected := l.selectedIndex(*st)
			if selected < 0 {
				selected = count
			}
			return l.choose(selected-1, st)
		case event.KeyHome:
			return l.choose(0, st)
		case event.KeyEnd:
			return l.choose(count-1, st)
		}
	}
	return core.Ignored()
}

// choose clamps and applies a selection change.
func (l SelectionList) choose(index int, st *State) core.Reaction {
	if len(l.Options) == 0 {
		return core.Consumed()
	}
	index = layout.ClampIndex(index, len(l.Options))
	if index == st.Selected {
		return core.Consumed()
	}
	st.Selected = index
	if l.OnChanged != nil {
		l.OnChanged(index)
	}
	return core.ConsumedRedraw()
}

// selectedIndex clamps the stored selection, keeping -1 for none.
func (l SelectionList) selectedIndex(st State) int {
	if st.Selected < 0 {
		return -1
	}
	return layout.ClampIndex(st.Selected, len(l.Options))
}

func (l SelectionList) listFlags() style.Flags {
	if l.Disabled {
		return style.FlagDisabled
	}
	return 0
}

func (l SelectionList) rowRect(bounds graphics.Rect, index int) graphics.Rect {
	return graphics.RectFromLTWH(bounds.Left, bounds.Top+float64(index)*rowHeight, bounds.Width(), rowHeight)
}

func (l SelectionList) hitRow(bounds graphics.Rect, p graphics.Offset) int {
	if !bounds.Contains(p) {
		return -1
	}
	for i := range l.Options {
		if l.rowRect(bounds, i).Contains(p) {
			return i
		}
	}
	return -1
}

func (l SelectionList) measurer() host.TextMeasurer {
	if l.Measurer != nil {
		return l.Measurer
	}
	return host.FixedMeasurer{}
}
