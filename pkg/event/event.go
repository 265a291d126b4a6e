// Package event defines the raw input events the host delivers to velt
// and the dispatch results components answer with. The router package
// turns these raw events into semantic component behavior.
package event

import (
	"fmt"
	"time"

	"github.com/go-velt/velt/pkg/graphics"
)

// Kind identifies the type of an input event.
type Kind int

const (
	// PointerMoved reports a pointer position change.
	PointerMoved Kind = iota
	// PointerPressed reports a pointer button press.
	PointerPressed
	// PointerReleased reports a pointer button release.
	PointerReleased
	// KeyPressed reports a keyboard key press.
	KeyPressed
	// Scrolled reports scroll wheel or trackpad movement.
	Scrolled
	// Tick reports an animation frame with the elapsed time delta.
	Tick
	// OverlayDismissed is synthesized by the router toward the owner of
	// an overlay it closed on its own (outside click, Escape), so the
	// owner's open flag stays in sync.
	OverlayDismissed
)

// String returns a human-readable representation of the event kind.
func (k Kind) String() string {
	switch k {
	case PointerMoved:
		return "pointer_moved"
	case PointerPressed:
		return "pointer_pressed"
	case PointerReleased:
		return "pointer_released"
	case KeyPressed:
		return "key_pressed"
	case Scrolled:
		return "scrolled"
	case Tick:
		return "tick"
	case OverlayDismissed:
		return "overlay_dismissed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Button identifies a pointer button.
type Button int

const (
	// ButtonNone means no button is involved (moves, scrolls).
	ButtonNone Button = iota
	// ButtonPrimary is the left mouse button or a touch contact.
	ButtonPrimary
	// ButtonSecondary is the right mouse button.
	ButtonSecondary
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
)

// Key identifies a keyboard key. Only the keys velt components react to
// are enumerated; hosts map everything else to KeyUnknown.
type Key int

const (
	// KeyUnknown is any key velt does not handle.
	KeyUnknown Key = iota
	// KeyTab moves keyboard focus.
	KeyTab
	// KeyEscape dismisses the topmost modal or menu overlay.
	KeyEscape
	// KeyEnter activates or selects.
	KeyEnter
	// KeySpace activates or selects.
	KeySpace
	// KeyLeft moves selection or focus left.
	KeyLeft
	// KeyRight moves selection or focus right.
	KeyRight
	// KeyUp moves selection or focus up.
	KeyUp
	// KeyDown moves selection or focus down.
	KeyDown
	// KeyHome jumps to the first item.
	KeyHome
	// KeyEnd jumps to the last item.
	KeyEnd
	// KeyPageUp moves a page or month backward.
	KeyPageUp
	// KeyPageDown moves a page or month forward.
	KeyPageDown
)

// Modifiers is a bit set of modifier keys held during an event.
type Modifiers uint8

const (
	// ModShift is set while a shift key is held.
	ModShift Modifiers = 1 << iota
	// ModControl is set while a control key is held.
	ModControl
	// ModAlt is set while an alt/option key is held.
	ModAlt
)

// Has reports whether all bits in mod are set.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod == mod
}

// Event is one host-delivered input event. Fields beyond Kind are valid
// only for the kinds that carry them.
type Event struct {
	// Kind discriminates the payload.
	Kind Kind

	// Position is the pointer position for pointer and scroll events.
	Position graphics.Offset

	// Button is the pressed or released button for pointer events.
	Button Button

	// Key is the pressed key for KeyPressed events.
	Key Key

	// Mods are the modifier keys held during the event.
	Mods Modifiers

	// ScrollDelta is the scroll distance for Scrolled events. Positive Y
	// scrolls down.
	ScrollDelta graphics.Offset

	// Delta is the elapsed time for Tick events.
	Delta time.Duration
}

// PointerEvent reports whether the event carries a pointer position.
func (e Event) PointerEvent() bool {
	switch e.Kind {
	case PointerMoved, PointerPressed, PointerReleased, Scrolled:
		return true
	}
	return false
}

// DispatchResult tells the router whether an event was handled.
type DispatchResult int

const (
	// Ignored lets the event fall through to the next candidate.
	Ignored DispatchResult = iota
	// Consumed stops further propagation.
	Consumed
)

// String returns a human-readable representation of the dispatch result.
func (r DispatchResult) String() string {
	switch r {
	case Ignored:
		return "ignored"
	case Consumed:
		return "consumed"
	default:
		return fmt.Sprintf("DispatchResult(%d)", int(r))
	}
}
