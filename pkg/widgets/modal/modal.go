// Package modal provides the exclusive dialog layer: a scrim covering
// the viewport with a centered panel holding the caller's content.
// Opening a modal closes any modal already active; Escape and,
// optionally, a press on the scrim dismiss it.
package modal

import (
	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/style"
)

// State is the caller-owned state of one modal.
type State struct {
	// Open reports whether the dialog is showing.
	Open bool
}

// DialogID returns the conventional instance id for a dialog owned by
// the given instance.
func DialogID(owner core.ID) core.ID {
	return owner + "/dialog"
}

// Request builds a modal-class overlay request. The anchor is left zero
// so placement falls back to the owner; the dialog measures to the full
// viewport, which pins it to the origin regardless.
func Request(owner core.ID, content core.Node) *core.OverlayRequest {
	return &core.OverlayRequest{
		Owner:   owner,
		Content: content,
		Class:   core.ClassModal,
	}
}

// Dialog is the overlay content widget. It fills the viewport with a
// scrim and centers one child panel on it.
type Dialog struct {
	// Content is the panel content node.
	Content core.Node

	// DismissOnBackdrop closes the dialog when a press lands on the
	// scrim outside the panel.
	DismissOnBackdrop bool

	// OnClosed is called after the dialog closes itself.
	OnClosed func()
}

// Component implements core.Widget.
func (d Dialog) Component() string {
	return style.ComponentModal
}

// Measure implements core.Widget. A dialog claims the whole viewport so
// the scrim sits under every press.
func (d Dialog) Measure(available graphics.Size, st State) graphics.Size {
	return available
}

// Layout implements core.Widget.
func (d Dialog) Layout(assigned graphics.Rect, st State) []core.Placement {
	return []core.Placement{{Index: 0, Bounds: d.panelRect(assigned)}}
}

// panelRect centers the content, grown by the panel padding, within the
// assigned space.
func (d Dialog) panelRect(assigned graphics.Rect) graphics.Rect {
	padding := graphics.UniformInsets(16)
	inner := graphics.Size{
		Width:  assigned.Width() - padding.Horizontal(),
		Height: assigned.Height() - padding.Vertical(),
	}
	var content graphics.Size
	if d.Content != nil {
		content = d.Content.Measure(inner)
	}
	if content.Width > inner.Width {
		content.Width = inner.Width
	}
	if content.Height > inner.Height {
		content.Height = inner.Height
	}
	center := assigned.Center()
	return graphics.RectFromLTWH(
		center.X-content.Width/2,
		center.Y-content.Height/2,
		content.Width,
		content.Height,
	)
}

// Draw implements core.Widget.
func (d Dialog) Draw(canvas host.Canvas, bounds graphics.Rect, st State, sty style.Resolver) {
	scrim := sty.Resolve(style.ComponentModal, 0)
	canvas.FillRect(bounds, scrim.Background)

	panel := d.panelRect(bounds)
	chrome := sty.Resolve(style.ComponentFloating, 0)
	frame := panel.Inset(graphics.UniformInsets(-8))
	rounded := graphics.RRectFromRectAndRadius(frame, graphics.CircularRadius(chrome.BorderRadius))
	canvas.FillRRect(rounded, chrome.Background)
	canvas.StrokeRRect(rounded, chrome.BorderWidth, chrome.Border)
	if d.Content != nil {
		d.Content.Draw(canvas, panel, sty)
	}
}

// HandleEvent implements core.Widget. Pointer events inside the panel
// reach the content; everything else stops at the scrim.
func (d Dialog) HandleEvent(ev event.Event, bounds graphics.Rect, st *State) core.Reaction {
	panel := d.panelRect(bounds)

	switch ev.Kind {
	case event.PointerPressed, event.PointerMoved, event.PointerReleased, event.Scrolled:
		if d.Content != nil && panel.Contains(ev.Position) {
			if reaction := d.Content.HandleEvent(ev, panel); reaction.Status == event.Consumed {
				return reaction
			}
			return core.Consumed()
		}
		if ev.Kind == event.PointerPressed && d.DismissOnBackdrop {
			return d.close(st)
		}
		// The scrim swallows pointer input that misses the panel.
		return core.Consumed()

	case event.KeyPressed:
		if d.Content != nil {
			if reaction := d.Content.HandleEvent(ev, panel); reaction.Status == event.Consumed {
				return reaction
			}
		}
		if ev.Key == event.KeyEscape {
			return d.close(st)
		}
	}
	return core.Ignored()
}

func (d Dialog) close(st *State) core.Reaction {
	st.Open = false
	if d.OnClosed != nil {
		d.OnClosed()
	}
	return core.Reaction{Status: event.Consumed, CloseOverlay: true, Redraw: true}
}
