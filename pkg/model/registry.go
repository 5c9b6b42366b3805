package model

import (
	"fmt"

	"github.com/philipparndt/gobim/pkg/geometry"
)

// Registry owns the live component list and all of its mutable display
// state. All access happens on the render-loop goroutine, so the registry
// carries no locking; the loader hands completed snapshots over instead
// of mutating the registry from another goroutine.
type Registry struct {
	components []*Component
	byID       map[int32]*Component
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{byID: make(map[int32]*Component)}
}

// Load atomically replaces the snapshot. The previous snapshot must have
// been released with Clear first; Load fails on duplicate ids and leaves
// the registry unchanged.
func (r *Registry) Load(components []*Component) error {
	byID := make(map[int32]*Component, len(components))
	for _, c := range components {
		if _, exists := byID[c.ID]; exists {
			return fmt.Errorf("duplicate component id %d", c.ID)
		}
		byID[c.ID] = c
	}
	r.components = components
	r.byID = byID
	return nil
}

// Components returns the current snapshot in load order
func (r *Registry) Components() []*Component {
	return r.components
}

// Len returns the number of components in the snapshot
func (r *Registry) Len() int {
	return len(r.components)
}

// Get returns the component with the given id, or ok=false if absent
func (r *Registry) Get(id int32) (*Component, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// SetVisibility sets one component's visibility. An absent id is a no-op:
// visibility toggles are UI-driven and may race a reload.
func (r *Registry) SetVisibility(id int32, visible bool) {
	if c, ok := r.byID[id]; ok {
		c.Visible = visible
	}
}

// SetHighlight highlights the target and clears the highlight on every
// other component in the same operation, keeping at most one component
// highlighted. An absent id leaves the registry untouched.
func (r *Registry) SetHighlight(id int32) {
	target, ok := r.byID[id]
	if !ok {
		return
	}
	for _, c := range r.components {
		c.Highlighted = false
	}
	target.Highlighted = true
}

// ClearHighlight removes the highlight from every component
func (r *Registry) ClearHighlight() {
	for _, c := range r.components {
		c.Highlighted = false
	}
}

// Highlighted returns the currently highlighted component, if any
func (r *Registry) Highlighted() (*Component, bool) {
	for _, c := range r.components {
		if c.Highlighted {
			return c, true
		}
	}
	return nil, false
}

// SetPosition moves one component; absent ids are ignored
func (r *Registry) SetPosition(id int32, pos geometry.Vector3) {
	if c, ok := r.byID[id]; ok {
		c.Position = pos
	}
}

// SetClipPlane assigns the plane to every component, replacing any prior
// assignment. Components never accumulate more than one clip plane.
func (r *Registry) SetClipPlane(plane geometry.Plane) {
	for _, c := range r.components {
		p := plane
		c.ClipPlane = &p
	}
}

// ClearClipPlanes removes the clip assignment from every component
func (r *Registry) ClearClipPlanes() {
	for _, c := range r.components {
		c.ClipPlane = nil
	}
}

// Clear releases every component's geometry handle and empties the
// snapshot. Clearing an empty registry is a no-op.
func (r *Registry) Clear() {
	for _, c := range r.components {
		if c.Geometry != nil {
			c.Geometry.Release()
		}
	}
	r.components = nil
	r.byID = make(map[int32]*Component)
}
