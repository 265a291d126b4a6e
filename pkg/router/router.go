// Package router maps host-delivered raw input onto component behavior:
// it hit-tests active overlays before the main tree, honors capture
// during drags, dismisses overlays on outside clicks, and drives keyboard
// focus traversal.
package router

import (
	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/overlay"
)

// Router dispatches raw input events for one root.
type Router struct {
	registry *core.Registry
	overlays *overlay.Manager
	focus    *FocusRing

	invalidate host.InvalidateFunc

	// captured receives every pointer event between a consumed press and
	// the matching release, regardless of position.
	captured core.ID
	// capturedOverlay is the overlay the captured node lives in, 0 when
	// it lives in the main tree.
	capturedOverlay overlay.ID
}

// New creates a router over a registry and an overlay manager.
func New(registry *core.Registry, overlays *overlay.Manager) *Router {
	return &Router{
		registry: registry,
		overlays: overlays,
		focus:    NewFocusRing(registry),
	}
}

// Focus returns the router's focus ring.
func (r *Router) Focus() *FocusRing {
	return r.focus
}

// SetInvalidate installs the host's redraw signal. Reactions that request
// a redraw are forwarded through it.
func (r *Router) SetInvalidate(fn host.InvalidateFunc) {
	r.invalidate = fn
}

// Dispatch routes one event and reports whether it was consumed.
//
// Hit-testing order: active overlays from topmost to bottommost, then the
// main tree from topmost paint order down. The first instance whose
// bounds contain the pointer receives the event; Ignored lets it fall
// through to the next candidate. Key events go to the topmost overlay
// first, then to the focused instance.
func (r *Router) Dispatch(ev event.Event) event.DispatchResult {
	switch ev.Kind {
	case event.KeyPressed:
		return r.dispatchKey(ev)
	case event.PointerPressed, event.PointerReleased, event.PointerMoved, event.Scrolled:
		return r.dispatchPointer(ev)
	default:
		return event.Ignored
	}
}

func (r *Router) dispatchKey(ev event.Event) event.DispatchResult {
	if ev.Key == event.KeyTab {
		if ev.Mods.Has(event.ModShift) {
			r.focus.Prev()
		} else {
			r.focus.Next()
		}
		return event.Consumed
	}

	// The topmost overlay sees keys before the focused main-tree
	// instance, so an open calendar handles arrows and Enter.
	if top := r.overlays.Top(); top != nil {
		owner := top.Owner
		reaction := top.Content.HandleEvent(ev, top.Bounds)
		r.apply(owner, reaction)
		if reaction.Status == event.Consumed {
			if ev.Key == event.KeyEscape && reaction.CloseOverlay {
				// Escape returns focus to the overlay's anchor.
				r.focus.SetFocus(owner)
			}
			return event.Consumed
		}
	}

	// Fallback for overlay content that ignores Escape: the router
	// closes the topmost modal or menu layer itself.
	if ev.Key == event.KeyEscape {
		if top := r.overlays.TopExclusive(); top != nil {
			r.dismiss(top)
			r.focus.SetFocus(top.Owner)
			return event.Consumed
		}
	}

	if focused := r.focus.Focused(); focused != "" {
		if instance := r.registry.Get(focused); instance != nil {
			reaction := instance.Node.HandleEvent(ev, instance.Bounds)
			r.apply(focused, reaction)
			return reaction.Status
		}
	}
	return event.Ignored
}

// dismiss closes an overlay the router decided to close and tells the
// owner, so open flags in component state stay in sync.
func (r *Router) dismiss(active *overlay.Active) {
	owner := active.Owner
	r.overlays.Close(active.ID)
	if instance := r.registry.Get(owner); instance != nil {
		reaction := instance.Node.HandleEvent(event.Event{Kind: event.OverlayDismissed}, instance.Bounds)
		r.apply(owner, reaction)
	}
}

func (r *Router) dispatchPointer(ev event.Event) event.DispatchResult {
	// Capture: the node that consumed the press owns the pointer until
	// release, so drags keep working outside its bounds.
	if r.captured != "" {
		result := r.deliverToCaptured(ev)
		if ev.Kind == event.PointerReleased {
			r.captured = ""
			r.capturedOverlay = 0
		}
		return result
	}

	// Overlays, topmost first.
	var result event.DispatchResult
	var hitOverlay bool
	r.overlays.TopDown(func(active *overlay.Active) bool {
		if !active.Bounds.Contains(ev.Position) {
			return true
		}
		hitOverlay = true
		result = r.deliverToOverlay(active, ev)
		if result == event.Consumed && ev.Kind == event.PointerPressed {
			r.captured = active.Content.ID()
			r.capturedOverlay = active.ID
		}
		// Pointer events do not fall through below an overlay's bounds:
		// the layer's backdrop swallows what its content ignored.
		result = event.Consumed
		return false
	})
	if hitOverlay {
		return result
	}

	// Outside-click dismissal. The press is consumed by the close action
	// alone so the widget underneath is not activated by the same click.
	if ev.Kind == event.PointerPressed {
		if closed := r.closeTopDismissable(); closed {
			return event.Consumed
		}
	}

	// Main tree, topmost paint order first.
	result = event.Ignored
	r.registry.TopDown(func(instance *core.Instance) bool {
		if !instance.Bounds.Contains(ev.Position) {
			return true
		}
		reaction := instance.Node.HandleEvent(ev, instance.Bounds)
		r.apply(instance.Node.ID(), reaction)
		if reaction.Status == event.Consumed {
			result = event.Consumed
			if ev.Kind == event.PointerPressed {
				r.captured = instance.Node.ID()
				r.capturedOverlay = 0
				if instance.Node.Focusable() {
					r.focus.SetFocus(instance.Node.ID())
				}
			}
			return false
		}
		// Ignored: fall through to the next candidate underneath.
		return true
	})
	return result
}

// deliverToOverlay hands an event to an overlay's content tree.
func (r *Router) deliverToOverlay(active *overlay.Active, ev event.Event) event.DispatchResult {
	reaction := active.Content.HandleEvent(ev, active.Bounds)
	owner := active.Owner
	if owner == "" {
		owner = active.Content.ID()
	}
	r.apply(owner, reaction)
	return reaction.Status
}

// deliverToCaptured routes a pointer event to the capture holder, looking
// its current bounds up fresh.
func (r *Router) deliverToCaptured(ev event.Event) event.DispatchResult {
	if r.capturedOverlay != 0 {
		if active := r.overlays.Find(r.capturedOverlay); active != nil {
			return r.deliverToOverlay(active, ev)
		}
		return event.Ignored
	}
	instance := r.registry.Get(r.captured)
	if instance == nil {
		return event.Ignored
	}
	reaction := instance.Node.HandleEvent(ev, instance.Bounds)
	r.apply(r.captured, reaction)
	return reaction.Status
}

// closeTopDismissable closes the topmost overlay that dismisses on
// outside clicks. Returns true when one was closed.
func (r *Router) closeTopDismissable() bool {
	var top *overlay.Active
	r.overlays.TopDown(func(active *overlay.Active) bool {
		if active.DismissOnOutsideClick {
			top = active
			return false
		}
		return true
	})
	if top == nil {
		return false
	}
	r.dismiss(top)
	return true
}

// apply executes the side effects a reaction asked for.
func (r *Router) apply(owner core.ID, reaction core.Reaction) {
	if reaction.CloseOverlay {
		r.overlays.CloseOwned(owner)
	}
	if reaction.OpenOverlay != nil {
		req := *reaction.OpenOverlay
		if req.Owner == "" {
			req.Owner = owner
		}
		// A zero-size anchor at a point is valid (context menus open at
		// the cursor); only a zero-value anchor falls back.
		if req.Anchor == (graphics.Rect{}) {
			// No anchor supplied: fall back to the owner's last bounds.
			if instance := r.registry.Get(req.Owner); instance != nil {
				req.Anchor = instance.Bounds
			}
		}
		r.overlays.Open(req)
	}
	if reaction.Redraw && r.invalidate != nil {
		r.invalidate()
	}
}
