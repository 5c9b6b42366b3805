// Package picking resolves rays to components. The actual intersection
// test is delegated to the scene collaborator; this package owns the
// nearest-hit policy and the highlight side effect.
package picking

import (
	"github.com/philipparndt/gobim/pkg/geometry"
	"github.com/philipparndt/gobim/pkg/model"
)

// Hit is one ray intersection reported by a scene
type Hit struct {
	ComponentID int32
	Point       geometry.Vector3
	Distance    float64
}

// Scene answers ray-intersection queries against the presented model.
// Implemented by the rendering collaborator; BoundsScene is the built-in
// headless fallback.
type Scene interface {
	Intersect(ray geometry.Ray) []Hit
}

// Nearest selects the hit with the smallest distance along the ray.
// Equal distances keep the earliest hit in intersection order, so the
// result is deterministic for any input.
func Nearest(hits []Hit) (Hit, bool) {
	if len(hits) == 0 {
		return Hit{}, false
	}
	nearest := hits[0]
	for _, h := range hits[1:] {
		if h.Distance < nearest.Distance {
			nearest = h
		}
	}
	return nearest, true
}

// SelectionEngine turns picks into highlight mutations on the registry
type SelectionEngine struct {
	registry *model.Registry
}

// NewSelectionEngine creates an engine bound to a registry
func NewSelectionEngine(registry *model.Registry) *SelectionEngine {
	return &SelectionEngine{registry: registry}
}

// Pick casts the ray and highlights the nearest hit component. With no
// hit nothing changes: an empty click does not clear the selection.
func (e *SelectionEngine) Pick(ray geometry.Ray, scene Scene) (Hit, bool) {
	hit, ok := Nearest(scene.Intersect(ray))
	if !ok {
		return Hit{}, false
	}
	if hit.ComponentID > 0 {
		e.registry.SetHighlight(hit.ComponentID)
	}
	return hit, true
}
