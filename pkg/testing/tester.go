package testing

import (
	stdtesting "testing"

	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/event"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/overlay"
	"github.com/go-velt/velt/pkg/router"
	"github.com/go-velt/velt/pkg/style"
)

const (
	// DefaultWidth is the default viewport width.
	DefaultWidth = 800.0
	// DefaultHeight is the default viewport height.
	DefaultHeight = 600.0
)

// Tester drives a registry, overlay manager and router over a fixed
// viewport with synthetic input.
type Tester struct {
	// Registry holds the mounted main-tree instances.
	Registry *core.Registry
	// Overlays is the overlay manager the router closes and the widgets
	// open layers on.
	Overlays *overlay.Manager
	// Router dispatches the synthetic input.
	Router *router.Router
	// Theme is the resolver used by Draw.
	Theme *style.Theme

	invalidations int
}

// NewTester creates a tester with the default viewport and light theme.
func NewTester(t *stdtesting.T) *Tester {
	t.Helper()
	return NewTesterWithViewport(t, graphics.RectFromLTWH(0, 0, DefaultWidth, DefaultHeight))
}

// NewTesterWithViewport creates a tester over an explicit viewport.
func NewTesterWithViewport(t *stdtesting.T, viewport graphics.Rect) *Tester {
	t.Helper()
	registry := core.NewRegistry()
	overlays := overlay.NewManager(viewport)
	tester := &Tester{
		Registry: registry,
		Overlays: overlays,
		Router:   router.New(registry, overlays),
		Theme:    style.Light(),
	}
	tester.Router.SetInvalidate(func() { tester.invalidations++ })
	return tester
}

// Mount registers a node at fixed bounds and adds it to the focus ring
// when it is focusable.
func (t *Tester) Mount(node core.Node, bounds graphics.Rect) {
	t.Registry.Mount(node)
	t.Registry.PlaceAt(node.ID(), bounds)
	if node.Focusable() {
		t.Router.Focus().Add(node.ID())
	}
}

// Invalidations returns how many redraws reactions have requested.
func (t *Tester) Invalidations() int {
	return t.invalidations
}

// MoveTo dispatches a pointer move.
func (t *Tester) MoveTo(x, y float64) event.DispatchResult {
	return t.Router.Dispatch(event.Event{
		Kind:     event.PointerMoved,
		Position: graphics.Offset{X: x, Y: y},
	})
}

// Press dispatches a primary button press.
func (t *Tester) Press(x, y float64) event.DispatchResult {
	return t.PressWith(event.ButtonPrimary, x, y)
}

// PressWith dispatches a press with an explicit button.
func (t *Tester) PressWith(button event.Button, x, y float64) event.DispatchResult {
	return t.Router.Dispatch(event.Event{
		Kind:     event.PointerPressed,
		Position: graphics.Offset{X: x, Y: y},
		Button:   button,
	})
}

// Release dispatches a primary button release.
func (t *Tester) Release(x, y float64) event.DispatchResult {
	return t.Router.Dispatch(event.Event{
		Kind:     event.PointerReleased,
		Position: graphics.Offset{X: x, Y: y},
		Button:   event.ButtonPrimary,
	})
}

// Click dispatches a press and release at the same point.
func (t *Tester) Click(x, y float64) event.DispatchResult {
	result := t.Press(x, y)
	t.Release(x, y)
	return result
}

// RightClick dispatches a secondary button press and release.
func (t *Tester) RightClick(x, y float64) event.DispatchResult {
	result := t.PressWith(event.ButtonSecondary, x, y)
	t.Router.Dispatch(event.Event{
		Kind:     event.PointerReleased,
		Position: graphics.Offset{X: x, Y: y},
		Button:   event.ButtonSecondary,
	})
	return result
}

// Scroll dispatches a scroll with a vertical delta at a point.
func (t *Tester) Scroll(x, y, deltaY float64) event.DispatchResult {
	return t.Router.Dispatch(event.Event{
		Kind:        event.Scrolled,
		Position:    graphics.Offset{X: x, Y: y},
		ScrollDelta: graphics.Offset{Y: deltaY},
	})
}

// Key dispatches a key press.
func (t *Tester) Key(key event.Key) event.DispatchResult {
	return t.Router.Dispatch(event.Event{Kind: event.KeyPressed, Key: key})
}

// KeyWith dispatches a key press with modifiers.
func (t *Tester) KeyWith(key event.Key, mods event.Modifiers) event.DispatchResult {
	return t.Router.Dispatch(event.Event{Kind: event.KeyPressed, Key: key, Mods: mods})
}

// Draw paints the main tree in paint order, then the overlays, into a
// fresh recording canvas.
func (t *Tester) Draw() *RecordingCanvas {
	canvas := &RecordingCanvas{}
	t.Registry.BottomUp(func(instance *core.Instance) bool {
		instance.Node.Draw(canvas, instance.Bounds, t.Theme)
		return true
	})
	t.Overlays.Draw(canvas, t.Theme)
	return canvas
}
