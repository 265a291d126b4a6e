// Package badge provides a small status adornment pinned to a corner of
// its anchor, such as an unread count on an icon.
package badge

import (
	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/style"
	"github.com/go-velt/velt/pkg/widgets/floating"
)

// State is the caller-owned state of one badge. Badges keep no state of
// their own.
type State struct{}

// Badge is the adornment widget. It wraps an anchor node and draws the
// badge text centered on one of the anchor's corners.
type Badge struct {
	// Label is the badge text. Empty hides the badge, leaving only the
	// anchor.
	Label string

	// Anchor is the node the badge adorns. Nil draws the badge alone.
	Anchor core.Node

	// Corner is the anchor corner the badge centers on. The zero value
	// is floating.TopLeft; status badges usually want floating.TopRight.
	Corner floating.Alignment

	// Measurer sizes the badge text. Nil falls back to fixed metrics.
	Measurer host.TextMeasurer
}

// Component implements core.Widget.
func (b Badge) Component() string {
	return style.ComponentBadge
}

// Measure implements core.Widget. The badge itself never grows the
// anchor's layout.
func (b Badge) Measure(available graphics.Size, st State) graphics.Size {
	if b.Anchor != nil {
		return b.Anchor.Measure(available)
	}
	return b.badgeSize()
}

// Layout implements core.Widget.
func (b Badge) Layout(assigned graphics.Rect, st State) []core.Placement {
	if b.Anchor == nil {
		return nil
	}
	return []core.Placement{{Index: 0, Bounds: assigned}}
}

// Draw implements core.Widget.
func (b Badge) Draw(canvas host.Canvas, bounds graphics.Rect, st State, sty style.Resolver) {
	if b.Anchor != nil {
		b.Anchor.Draw(canvas, bounds, sty)
	}
	if b.Label == "" {
		return
	}

	visual := sty.Resolve(style.ComponentBadge, 0)
	rect := b.badgeRect(bounds)
	rounded := graphics.RRectFromRectAndRadius(rect, graphics.CircularRadius(rect.Height()/2))
	canvas.FillRRect(rounded, visual.Background)
	canvas.Text(b.Label, graphics.Offset{
		X: rect.Left + visual.Padding.Left,
		Y: rect.Top + visual.Padding.Top,
	}, visual.Text)
}

// HandleEvent implements core.Widget. The badge is inert; events go to
// the anchor.
func (b Badge) HandleEvent(ev event.Event, bounds graphics.Rect, st *State) core.Reaction {
	if b.Anchor != nil {
		return b.Anchor.HandleEvent(ev, bounds)
	}
	return core.Ignored()
}

// badgeRect centers the badge on the configured anchor corner.
func (b Badge) badgeRect(bounds graphics.Rect) graphics.Rect {
	if b.Anchor == nil {
		return graphics.RectFromOriginSize(bounds.Origin(), b.badgeSize())
	}
	return floating.Align(bounds, b.badgeSize(), b.Corner)
}

func (b Badge) badgeSize() graphics.Size {
	size := b.measurer().MeasureText(b.Label, graphics.TextStyle{FontSize: 11})
	width := size.Width + 8
	height := size.Height + 2
	if width < height {
		// Single-character badges stay round.
		width = height
	}
	return graphics.Size{Width: width, Height: height}
}

func (b Badge) measurer() host.TextMeasurer {
	if b.Measurer != nil {
		return b.Measurer
	}
	return host.FixedMeasurer{}
}
