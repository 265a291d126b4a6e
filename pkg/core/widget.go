// Package core defines the contract every velt component implements and
// the machinery binding a component to its caller-owned state.
//
// The host drives components through a fixed per-frame protocol: measure
// and layout, then draw, then input, then animation ticks. Measure, layout
// and draw are read-only phases; a Widget receives its state by value
// there, so mutation during those phases cannot compile against this API.
// HandleEvent and Tick receive the state exclusively, by pointer, for the
// duration of the single call.
package core

import (
	"fmt"
	"time"

	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/style"
)

// ID is a stable widget instance identity supplied by the caller.
// Layout and overlay anchoring reset if the caller does not keep ids
// stable across frames.
type ID string

// Placement positions one child within a component's assigned space.
// Bounds are absolute, already offset by the assigned rectangle.
type Placement struct {
	// Index is the child's index in the component's own ordering.
	Index int
	// Bounds is the child's resolved rectangle.
	Bounds graphics.Rect
}

// OverlayClass selects the exclusivity behavior of a floating layer.
type OverlayClass int

const (
	// ClassFloating is a plain positioning layer. Floating layers do not
	// participate in exclusivity and may coexist with one modal.
	ClassFloating OverlayClass = iota
	// ClassModal is a modal layer. Opening a modal closes any active
	// modal first.
	ClassModal
	// ClassContextMenu is a context menu layer. Opening a context menu
	// closes any active context menu first.
	ClassContextMenu
)

// String returns a human-readable representation of the overlay class.
func (c OverlayClass) String() string {
	switch c {
	case ClassFloating:
		return "floating"
	case ClassModal:
		return "modal"
	case ClassContextMenu:
		return "context_menu"
	default:
		return fmt.Sprintf("OverlayClass(%d)", int(c))
	}
}

// OverlayRequest asks the overlay manager to float a content tree above
// the main tree, anchored to a rectangle. A zero-size anchor positions
// the overlay at a point, which is how context menus open at the cursor.
type OverlayRequest struct {
	// Owner is the instance requesting the overlay. Escape returns focus
	// here when the overlay closes.
	Owner ID

	// Anchor is the rectangle placement is computed from, in viewport
	// coordinates.
	Anchor graphics.Rect

	// Content is the floating tree.
	Content Node

	// Class selects exclusivity and stacking behavior.
	Class OverlayClass

	// ZOrder breaks ties between overlays opened in the same frame.
	// Higher is closer to the user.
	ZOrder int

	// DismissOnOutsideClick closes the overlay when a pointer press
	// lands outside every active overlay.
	DismissOnOutsideClick bool
}

// Reaction is a component's answer to one event: a dispatch status plus
// the side effects the component wants, confined to this struct. The
// adapter itself never performs I/O.
type Reaction struct {
	// Status reports whether the event was consumed.
	Status event.DispatchResult

	// OpenOverlay, when non-nil, asks the overlay manager to open a
	// floating layer.
	OpenOverlay *OverlayRequest

	// CloseOverlay asks the overlay manager to close the layers owned by
	// this instance.
	CloseOverlay bool

	// Redraw reports that visible state changed and the host should
	// repaint even though no overlay was touched.
	Redraw bool
}

// Ignored is the zero reaction: event not handled.
func Ignored() Reaction {
	return Reaction{}
}

// Consumed is a reaction that stops propagation without side effects.
func Consumed() Reaction {
	return Reaction{Status: event.Consumed}
}

// ConsumedRedraw consumes the event and requests a repaint.
func ConsumedRedraw() Reaction {
	return Reaction{Status: event.Consumed, Redraw: true}
}

// Widget is the capability set a component class implements against the
// host, generic over its caller-owned state type. Measure, Layout and
// Draw take the state by value; HandleEvent takes it exclusively.
//
// Malformed state (an out-of-range index, a date outside the calendar
// range) must be clamped to the nearest valid value, never reported as
// an error.
type Widget[S any] interface {
	// Component returns the style component name, e.g. "date_picker".
	Component() string

	// Measure returns the desired size within the available space.
	Measure(available graphics.Size, st S) graphics.Size

	// Layout places children within the assigned space. Leaf components
	// return nil.
	Layout(assigned graphics.Rect, st S) []Placement

	// Draw emits draw commands for the component. It must not mutate
	// anything observable.
	Draw(canvas host.Canvas, bounds graphics.Rect, st S, sty style.Resolver)

	// HandleEvent reacts to one input event. State mutation happens only
	// here and in Tick.
	HandleEvent(ev event.Event, bounds graphics.Rect, st *S) Reaction
}

// Animated is implemented by widgets whose state advances with time.
// Tick returns true when the visual state actually changed, so the host
// repaints only when needed.
type Animated[S any] interface {
	Tick(dt time.Duration, st *S) bool
}

// FocusableWidget is implemented by widgets that participate in keyboard
// focus traversal.
type FocusableWidget interface {
	Focusable() bool
}
