// Package tabbar provides a tab strip with paged content. The active
// index is sticky and clamps into the tab range whenever the caller
// hands over an out-of-range value.
package tabbar

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
	tabHeight = 32.0
	tabPad    = 12.0
)

// State is the caller-owned state of one tab bar.
type State struct {
	// Active is the selected tab index, clamped to the tab range.
	Active int
	// Hovered is the index of the hovered tab, -1 for none.
	Hovered int
}

// NewState creates state with the given active tab.
func NewState(active int) *State {
	return &State{Active: active, Hovered: -1}
}

// Tab is one strip entry.
type Tab struct {
	// Label is the tab text.
	Label string
	// Disabled renders the tab muted and unselectable.
	Disabled bool
}

// TabBar is the tab strip widget with one content page per tab.
type TabBar struct {
	// ID must match the id the bar is bound with.
	ID core.ID

	// Tabs are the strip entries.
	Tabs []Tab

	// Pages holds one content node per tab. Missing pages leave the
	// content area empty.
	Pages []core.Node

	// Equal gives every tab the same width instead of its label's.
	Equal bool

	// Disabled disables the whole bar.
	Disabled bool

	// OnChanged is called with the new active index after a switch.
	OnChanged func(int)

	// Measurer sizes the tab labels. Nil falls back to fixed metrics.
	Measurer host.TextMeasurer
}

// Component implements core.Widget.
func (b TabBar) Component() string {
	return style.ComponentTabBar
}

// Focusable implements core.FocusableWidget.
func (b TabBar) Focusable() bool {
	return !b.Disabled && len(b.Tabs) > 0
}

// Measure implements core.Widget.
func (b TabBar) Measure(available graphics.Size, st State) graphics.Size {
	width := 0.0
	for _, w := range b.tabWidths() {
		width += w
	}
	if width > available.Width && available.Width > 0 {
		width = available.Width
	}
	height := tabHeight
	if page := b.page(st.Active); page != nil {
		pageSize := page.Measure(graphics.Size{Width: available.Width, Height: available.Height - tabHeight})
		height += pageSize.Height
		if pageSize.Width > width {
			width = pageSize.Width
		}
	}
	return graphics.Size{Width: width, Height: height}
}

// Layout implements core.Widget. The active page fills everything below
// the strip.
func (b TabBar) Layout(assigned graphics.Rect, st State) []core.Placement {
	active := layout.ClampIndex(st.Active, len(b.Tabs))
	if b.page(active) == nil {
		return nil
	}
	return []core.Placement{{Index: active, Bounds: b.pageRect(assigned)}}
}

// Draw implements core.Widget.
func (b TabBar) Draw(canvas host.Canvas, bounds graphics.Rect, st State, sty style.Resolver) {
	active := layout.ClampIndex(st.Active, len(b.Tabs))
	segments := b.segments(bounds)
	base := sty.Resolve(style.ComponentTabBar, 0)

	// Baseline under the whole strip.
	canvas.Line(
		graphics.Offset{X: bounds.Left, Y: bounds.Top + tabHeight},
		graphics.Offset{X: bounds.Right, Y: bounds.Top + tabHeight},
		base.BorderWidth, base.Border,
	)

	for i, tab := range b.Tabs {
		flags := b.tabFlags(st, i, active, tab)
		visual := sty.Resolve(style.ComponentTabBar, flags)
		segment := segments[i]
		if flags.Has(style.FlagSelected) || flags.Has(style.FlagHovered) {
			canvas.FillRect(segment, visual.Background)
		}
		canvas.Text(tab.Label, graphics.Offset{X: segment.Left + tabPad, Y: segment.Top + 8}, visual.Text)
		if i == active {
			// Active indicator along the segment's bottom edge.
			canvas.Line(
				graphics.Offset{X: segment.Left, Y: segment.Bottom - 1},
				graphics.Offset{X: segment.Right, Y: segment.Bottom - 1},
				2, visual.Accent,
			)
		}
	}

	if page := b.page(active); page != nil {
		page.Draw(canvas, b.pageRect(bounds), sty)
	}
}

// HandleEvent implements core.Widget.
func (b TabBar) HandleEvent(ev event.Event, bounds graphics.Rect, st *State) core.Reaction {
	active := layout.ClampIndex(st.Active, len(b.Tabs))
	pageRect := b.pageRect(bounds)

	if b.Disabled {
		return core.Ignored()
	}

	switch ev.Kind {
	case event.PointerMoved:
		hovered := b.hitTab(bounds, ev.Position)
		if hovered != st.Hovered {
			st.Hovered = hovered
			if page := b.page(active); page != nil {
				page.HandleEvent(ev, pageRect)
			}
			return core.Reaction{Redraw: true}
		}

	case event.PointerPressed:
		if ev.Button != event.ButtonPrimary {
			break
		}
		if index := b.hitTab(bounds, ev.Position); index >= 0 {
			return b.activate(index, st)
		}

	case event.KeyPressed:
		switch ev.Key {
		case event.KeyLeft:
			return b.activate(b.nextEnabled(active, -1), st)
		case event.KeyRight:
			return b.activate(b.nextEnabled(active, 1), st)
		case event.KeyHome:
			return b.activate(b.nextEnabled(-1, 1), st)
		case event.KeyEnd:
			return b.activate(b.nextEnabled(0, -1), st)
		}
	}

	if page := b.page(active); page != nil {
		if ev.Kind != event.PointerMoved || pageRect.Contains(ev.Position) {
			return page.HandleEvent(ev, pageRect)
		}
	}
	return core.Ignored()
}

// activate switches the active tab, skipping disabled ones.
func (b TabBar) activate(index int, st *State) core.Reaction {
	if len(b.Tabs) == 0 {
		return core.Consumed()
	}
	index = layout.ClampIndex(index, len(b.Tabs))
	if index < 0 || b.Tabs[index].Disabled || index == st.Active {
		return core.Consumed()
	}
	st.Active = index
	if b.OnChanged != nil {
		b.OnChanged(index)
	}
	return core.ConsumedRedraw()
}

// nextEnabled steps over disabled tabs, wrapping.
func (b TabBar) nextEnabled(from, delta int) int {
	count := len(b.Tabs)
	if count == 0 {
		return -1
	}
	index := from
	for i := 0; i < count; i++ {
		index = ((index+delta)%count + count) % count
		if !b.Tabs[index].Disabled {
			return index
		}
	}
	return from
}

func (b TabBar) tabFlags(st State, index, active int, tab Tab) style.Flags {
	var flags style.Flags
	if tab.Disabled || b.Disabled {
		flags |= style.FlagDisabled
	}
	if index == active {
		flags |= style.FlagSelected
	}
	if index == st.Hovered && !tab.Disabled && !b.Disabled {
		flags |= style.FlagHovered
	}
	return flags
}

// tabWidths returns each tab's strip width before the mode is applied.
func (b TabBar) tabWidths() []float64 {
	measurer := b.measurer()
	widths := make([]float64, len(b.Tabs))
	for i, tab := range b.Tabs {
		size := measurer.MeasureText(tab.Label, graphics.TextStyle{FontSize: 14})
		widths[i] = size.Width + 2*tabPad
	}
	return widths
}

// segments lays the strip out within the bar bounds.
func (b TabBar) segments(bounds graphics.Rect) []graphics.Rect {
	mode := layout.StripIntrinsic
	if b.Equal {
		mode = layout.StripEqual
	}
	segments := layout.Strip(b.tabWidths(), mode, bounds.Width(), tabHeight, 0)
	for i := range segments {
		segments[i] = segments[i].Translate(bounds.Left, bounds.Top)
	}
	return segments
}

func (b TabBar) hitTab(bounds graphics.Rect, p graphics.Offset) int {
	for i, segment := range b.segments(bounds) {
		if segment.Contains(p) {
			return i
		}
	}
	return -1
}

func (b TabBar) pageRect(bounds graphics.Rect) graphics.Rect {
	return graphics.Rect{Left: bounds.Left, Top: bounds.Top + tabHeight, Right: bounds.Right, Bottom: bounds.Bottom}
}

func (b TabBar) page(index int) core.Node {
	if index < 0 || index >= len(b.Pages) {
		return nil
	}
	return b.Pages[index]
}

func (b TabBar) measurer() host.TextMeasurer {
	if b.Measurer != nil {
		return b.Measurer
	}
	return host.FixedMeasurer{}
}
