// Package overlay manages the floating layers composited above the main
// widget tree: modals, context menus, and the positioning layers the
// pickers use for their popups. Layers are placed relative to an anchor,
// flipped and clamped into the viewport, and composited oldest-first with
// the most recently opened layer topmost.
package overlay

import (
	"fmt"
	"sync/atomic"

	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/errors"
	"github.com/go-velt/velt/pkg/graphics"
	"github.com/go-velt/velt/pkg/host"
	"github.com/go-velt/velt/pkg/style"
)

// ID identifies one active overlay.
type ID uint64

var nextOverlayID uint64

// Active is a resolved floating layer.
type Active struct {
	// ID identifies the layer for Close.
	ID ID
	// Owner is the widget instance that opened the layer.
	Owner core.ID
	// Class is the exclusivity class the layer opened with.
	Class core.OverlayClass
	// Content is the floating tree.
	Content core.Node
	// Bounds is the resolved screen rectangle, always fully contained in
	// the viewport.
	Bounds graphics.Rect
	// Anchor is the rectangle the layer was placed against, kept for
	// repositioning.
	Anchor graphics.Rect
	// ZOrder breaks compositing ties between coexisting layers.
	ZOrder int
	// DismissOnOutsideClick closes the layer on an outside pointer press.
	DismissOnOutsideClick bool
}

// Manager owns the active overlays of one root.
//
// Exclusivity: at most one ClassModal and one ClassContextMenu layer are
// active at a time; opening a second closes the first. ClassFloating
// layers coexist freely with each other and with one modal.
type Manager struct {
	viewport graphics.Rect
	active   []*Active
}

// NewManager creates a manager for the given viewport.
func NewManager(viewport graphics.Rect) *Manager {
	return &Manager{viewport: viewport}
}

// Viewport returns the current viewport.
func (m *Manager) Viewport() graphics.Rect {
	return m.viewport
}

// Open resolves placement for a request and activates the layer.
// Requests with nil content or an anchor that does not resolve inside
// the viewport are dropped: Open reports them and returns (0, false).
func (m *Manager) Open(req core.OverlayRequest) (ID, bool) {
	if req.Content == nil {
		errors.Report(errors.New("overlay.Open", errors.KindOverlay,
			fmt.Errorf("request with nil content dropped")))
		return 0, false
	}
	if !m.resolvable(req.Anchor) {
		errors.Report(&errors.VeltError{
			Op:       "overlay.Open",
			Kind:     errors.KindOverlay,
			Err:      fmt.Errorf("anchor %+v outside viewport, request dropped", req.Anchor),
			Instance: string(req.Owner),
		})
		return 0, false
	}

	// Exclusivity: a second modal or context menu replaces the first.
	if req.Class == core.ClassModal || req.Class == core.ClassContextMenu {
		m.closeClass(req.Class)
	}

	size := req.Content.Measure(m.viewport.Size())
	active := &Active{
		ID:                    ID(atomic.AddUint64(&nextOverlayID, 1)),
		Owner:                 req.Owner,
		Class:                 req.Class,
		Content:               req.Content,
		Bounds:                Place(req.Anchor, size, m.viewport),
		Anchor:                req.Anchor,
		ZOrder:                req.ZOrder,
		DismissOnOutsideClick: req.DismissOnOutsideClick,
	}
	m.insert(active)
	return active.ID, true
}

// Close removes a layer by id. Unknown ids are ignored.
func (m *Manager) Close(id ID) {
	for i, active := range m.active {
		if active.ID == id {
			m.active = append(m.active[:i], m.active[i+1:]...)
			return
		}
	}
}

// CloseOwned removes every layer opened by the given instance.
func (m *Manager) CloseOwned(owner core.ID) {
	kept := m.active[:0]
	for _, active := range m.active {
		if active.Owner != owner {
			kept = append(kept, active)
		}
	}
	m.active = kept
}

// closeClass removes every layer of the given class.
func (m *Manager) closeClass(class core.OverlayClass) {
	kept := m.active[:0]
	for _, active := range m.active {
		if active.Class != class {
			kept = append(kept, active)
		}
	}
	m.active = kept
}

// RepositionAll re-places every active layer against a new viewport,
// re-measuring content against the new available space.
func (m *Manager) RepositionAll(viewport graphics.Rect) {
	m.viewport = viewport
	for _, active := range m.active {
		size := active.Content.Measure(viewport.Size())
		active.Bounds = Place(active.Anchor, size, viewport)
	}
}

// Len returns the number of active layers.
func (m *Manager) Len() int {
	return len(m.active)
}

// Top returns the topmost layer, or nil.
func (m *Manager) Top() *Active {
	if len(m.active) == 0 {
		return nil
	}
	return m.active[len(m.active)-1]
}

// TopExclusive returns the topmost modal or context-menu layer, or nil.
// Escape handling targets this layer.
func (m *Manager) TopExclusive() *Active {
	for i := len(m.active) - 1; i >= 0; i-- {
		if m.active[i].Class != core.ClassFloating {
			return m.active[i]
		}
	}
	return nil
}

// Find returns the active layer with the given id, or nil.
func (m *Manager) Find(id ID) *Active {
	for _, active := range m.active {
		if active.ID == id {
			return active
		}
	}
	return nil
}

// TopDown visits layers from topmost to bottommost, stopping early when
// the visitor returns false.
func (m *Manager) TopDown(visit func(*Active) bool) {
	for i := len(m.active) - 1; i >= 0; i-- {
		if !visit(m.active[i]) {
			return
		}
	}
}

// Draw composites every active layer, bottommost first. The host calls
// this strictly after drawing the main tree.
func (m *Manager) Draw(canvas host.Canvas, sty style.Resolver) {
	for _, active := range m.active {
		active.Content.Draw(canvas, active.Bounds, sty)
	}
}

// insert places a layer into compositing order: by ZOrder, then by open
// sequence, so the most recently opened of equal z renders topmost.
func (m *Manager) insert(active *Active) {
	at := len(m.active)
	for at > 0 {
		prev := m.active[at-1]
		if prev.ZOrder <= active.ZOrder {
			break
		}
		at--
	}
	m.active = append(m.active, nil)
	copy(m.active[at+1:], m.active[at:])
	m.active[at] = active
}

// resolvable reports whether an anchor can position an overlay: it must
// intersect the viewport, or be a point inside it.
func (m *Manager) resolvable(anchor graphics.Rect) bool {
	if anchor.IsEmpty() {
		return m.viewport.Contains(anchor.Origin())
	}
	return !m.viewport.Intersect(anchor).IsEmpty()
}
