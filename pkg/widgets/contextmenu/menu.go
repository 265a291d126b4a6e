package contextmenu

import (
	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/layout"
	"github.com/go-velt/velt/pkg/style"
)

// Menu geometry.
const (
	menuPad      = 4.0
	menuItemH    = 26.0
	menuItemPad  = 10.0
	menuMinWidth = 120.0
)

// menu is the overlay content widget. It shares the trigger's State.
type menu struct {
	trigger ContextMenu
}

func (m menu) Component() string {
	return style.ComponentContextMenu
}

func (m menu) Measure(available graphics.Size, st State) graphics.Size {
	width := menuMinWidth
	measurer := m.trigger.measurer()
	for _, item := range m.trigger.Items {
		size := measurer.MeasureText(item.Label, graphics.TextStyle{FontSize: 14})
		if w := size.Width + 2*menuItemPad; w > width {
			width = w
		}
	}
	height := float64(len(m.trigger.Items))*menuItemH + 2*menuPad
	return graphics.Size{Width: width + 2*menuPad, Height: height}
}

func (m menu) Layout(assigned graphics.Rect, st State) []core.Placement {
	return nil
}

func (m menu) Draw(canvas host.Canvas, bounds graphics.Rect, st State, sty style.Resolver) {
	visual := sty.Resolve(style.ComponentContextMenu, 0)
	rounded := graphics.RRectFromRectAndRadius(bounds, graphics.CircularRadius(visual.BorderRadius))
	canvas.FillRRect(rounded, visual.Background)
	canvas.StrokeRRect(rounded, visual.BorderWidth, visual.Border)

	for i, item := range m.trigger.Items {
		row := m.itemRect(bounds, i)
		flags := m.itemFlags(st, i, item)
		itemVisual := sty.Resolve(style.ComponentContextMenu, flags)
		if flags.Has(style.FlagHovered) || flags.Has(style.FlagSelected) {
			canvas.FillRRect(
				graphics.RRectFromRectAndRadius(row, graphics.CircularRadius(3)),
				itemVisual.Background,
			)
		}
		canvas.Text(item.Label, graphics.Offset{X: row.Left + menuItemPad, Y: row.Top + 5}, itemVisual.Text)
	}
}

func (m menu) itemFlags(st State, index int, item Item) style.Flags {
	var flags style.Flags
	if item.Disabled {
		flags |= style.FlagMuted
		return flags
	}
	if index == st.Highlight {
		flags |= style.FlagSelected
	}
	return flags
}

func (m menu) HandleEvent(ev event.Event, bounds graphics.Rect, st *State) core.Reaction {
	switch ev.Kind {
	case event.PointerMoved:
		highlight := m.hitItem(bounds, ev.Position)
		if highlight == st.Highlight {
			return core.Consumed()
		}
		st.Highlight = highlight
		return core.ConsumedRedraw()

	case event.PointerPressed:
		if ev.Button != event.ButtonPrimary {
			return core.Consumed()
		}
		if index := m.hitItem(bounds, ev.Position); index >= 0 {
			return m.choose(index, st)
		}
		return core.Consumed()

	case event.KeyPressed:
		switch ev.Key {
		case event.KeyDown:
			st.Highlight = m.nextEnabled(st.Highlight, 1)
			return core.ConsumedRedraw()
		case event.KeyUp:
			st.Highlight = m.nextEnabled(st.Highlight, -1)
			return core.ConsumedRedraw()
		case event.KeyEnter, event.KeySpace:
			if st.Highlight >= 0 {
				return m.choose(st.Highlight, st)
			}
			return core.Consumed()
		case event.KeyEscape:
			st.Open = false
			st.Highlight = -1
			return core.Reaction{Status: event.Consumed, CloseOverlay: true, Redraw: true}
		}
	}
	return core.Ignored()
}

// choose runs the item callback and closes the menu.
func (m menu) choose(index int, st *State) core.Reaction {
	index = layout.ClampIndex(index, len(m.trigger.Items))
	item := m.trigger.Items[index]
	if item.Disabled {
		return core.Consumed()
	}
	st.Open = false
	st.Highlight = -1
	if item.OnSelect != nil {
		item.OnSelect()
	}
	return core.Reaction{Status: event.Consumed, CloseOverlay: true, Redraw: true}
}

// nextEnabled steps the highlight over disabled items, wrapping.
func (m menu) nextEnabled(from, delta int) int {
	count := len(m.trigger.Items)
	if count == 0 {
		return -1
	}
	index := from
	for i := 0; i < count; i++ {
		index = ((index+delta)%count + count) % count
		if !m.trigger.Items[index].Disabled {
			return index
		}
	}
	return from
}

func (m menu) itemRect(bounds graphics.Rect, index int) graphics.Rect {
	return graphics.RectFromLTWH(
		bounds.Left+menuPad,
		bounds.Top+menuPad+float64(index)*menuItemH,
		bounds.Width()-2*menuPad,
		menuItemH,
	)
}

func (m menu) hitItem(bounds graphics.Rect, p graphics.Offset) int {
	for i := range m.trigger.Items {
		if m.itemRect(bounds, i).Contains(p) {
			return i
		}
	}
	return -1
}
