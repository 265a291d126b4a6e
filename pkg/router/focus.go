package router

import (
	"github.com/go-velt/velt/pkg/core"
	"github.com/go-velt/velt/pkg/errors"
)

// FocusRing is the ordered set of keyboard-focusable instances. At most
// one instance holds focus. Traversal wraps at both ends and skips
// instances that have been unmounted since they were added.
type FocusRing struct {
	registry *core.Registry
	order    []core.ID
	focused  core.ID
}

// NewFocusRing creates a ring over the given registry.
func NewFocusRing(registry *core.Registry) *FocusRing {
	return &FocusRing{registry: registry}
}

// Add appends an instance to the traversal order. Duplicate ids are a
// caller contract violation: they are reported and ignored.
func (f *FocusRing) Add(id core.ID) {
	for _, existing := range f.order {
		if existing == id {
			errors.Contractf("router.FocusRing.Add", string(id), "id already in focus ring")
			return
		}
	}
	f.order = append(f.order, id)
}

// Remove drops an instance from the ring, clearing focus if it was
// focused.
func (f *FocusRing) Remove(id core.ID) {
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	if f.focused == id {
		f.focused = ""
	}
}

// Focused returns the id holding focus, or "" when none does.
func (f *FocusRing) Focused() core.ID {
	return f.focused
}

// SetFocus moves focus to an instance already in the ring. Ids not in
// the ring or not mounted are ignored.
func (f *FocusRing) SetFocus(id core.ID) {
	if !f.contains(id) || !f.mounted(id) {
		return
	}
	f.focused = id
}

// ClearFocus removes focus from every instance.
func (f *FocusRing) ClearFocus() {
	f.focused = ""
}

// Next moves focus forward, wrapping at the end. Returns false when the
// ring holds no focusable mounted instance.
func (f *FocusRing) Next() bool {
	return f.move(1)
}

// Prev moves focus backward, wrapping at the start.
func (f *FocusRing) Prev() bool {
	return f.move(-1)
}

// Len returns the number of ids in the ring, including ids pending
// pruning.
func (f *FocusRing) Len() int {
	return len(f.order)
}

// move advances focus by delta, skipping unmounted instances and pruning
// them from the ring as it encounters them.
func (f *FocusRing) move(delta int) bool {
	f.prune()
	count := len(f.order)
	if count == 0 {
		return false
	}

	current := -1
	for i, id := range f.order {
		if id == f.focused {
			current = i
			break
		}
	}

	for step := 1; step <= count; step++ {
		next := wrapIndex(current+delta*step, count)
		candidate := f.order[next]
		if f.focusable(candidate) {
			f.focused = candidate
			return true
		}
	}
	return false
}

// prune removes unmounted instances so the ring only ever names mounted
// ones.
func (f *FocusRing) prune() {
	kept := f.order[:0]
	for _, id := range f.order {
		if f.mounted(id) {
			kept = append(kept, id)
		} else if f.focused == id {
			f.focused = ""
		}
	}
	f.order = kept
}

func (f *FocusRing) contains(id core.ID) bool {
	for _, existing := range f.order {
		if existing == id {
			return true
		}
	}
	return false
}

func (f *FocusRing) mounted(id core.ID) bool {
	return f.registry != nil && f.registry.Mounted(id)
}

func (f *FocusRing) focusable(id core.ID) bool {
	if f.registry == nil {
		return false
	}
	instance := f.registry.Get(id)
	return instance != nil && instance.Node.Focusable()
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}
