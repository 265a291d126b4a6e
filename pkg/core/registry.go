package core

import (
	"github.com/go-velt/velt/pkg/errors"
	"github.com/go-velt/velt/pkg/graphics"
)

// Instance records a mounted node and its last-resolved bounds.
type Instance struct {
	// Node is the bound component.
	Node Node
	// Bounds is the rectangle assigned during the last layout pass.
	Bounds graphics.Rect
}

// Registry is the arena of mounted instances for one root. The host
// registers each node once, updates its bounds after layout, and removes
// it when the caller drops the component. Registration order is paint
// order: later instances draw, and therefore hit-test, above earlier
// ones.
type Registry struct {
	order     []ID
	instances map[ID]*Instance
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{instances: make(map[ID]*Instance)}
}

// Mount adds a node. Mounting an id that is already present is a caller
// contract violation; it is reported and the new node replaces the old
// one, with visual behavior undefined until ids are unique again.
func (r *Registry) Mount(node Node) {
	id := node.ID()
	if _, exists := r.instances[id]; exists {
		errors.Contractf("core.Registry.Mount", string(id), "duplicate instance id")
		r.instances[id].Node = node
		return
	}
	r.order = append(r.order, id)
	r.instances[id] = &Instance{Node: node}
}

// Unmount removes an instance. Unknown ids are ignored.
func (r *Registry) Unmount(id ID) {
	if _, exists := r.instances[id]; !exists {
		return
	}
	delete(r.instances, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// PlaceAt records the bounds layout resolved for an instance.
func (r *Registry) PlaceAt(id ID, bounds graphics.Rect) {
	if instance, exists := r.instances[id]; exists {
		instance.Bounds = bounds
	}
}

// Get returns the instance for an id, or nil.
func (r *Registry) Get(id ID) *Instance {
	return r.instances[id]
}

// Mounted reports whether an id is currently mounted.
func (r *Registry) Mounted(id ID) bool {
	_, exists := r.instances[id]
	return exists
}

// Len returns the number of mounted instances.
func (r *Registry) Len() int {
	return len(r.order)
}

// TopDown visits instances from topmost paint order to bottommost,
// stopping early when the visitor returns false.
func (r *Registry) TopDown(visit func(*Instance) bool) {
	for i := len(r.order) - 1; i >= 0; i-- {
		if instance := r.instances[r.order[i]]; instance != nil {
			if !visit(instance) {
				return
			}
		}
	}
}

// BottomUp visits instances in paint order, stopping early when the
// visitor returns false.
func (r *Registry) BottomUp(visit func(*Instance) bool) {
	for _, id := range r.order {
		if instance := r.instances[id]; instance != nil {
			if !visit(instance) {
				return
			}
		}
	}
}
