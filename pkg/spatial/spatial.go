// Package spatial holds the pure geometry math that runs over a registry
// snapshot: model bounds, per-component centroids and explode offsets.
// Everything here is side-effect free so it can be unit-tested without a
// presentation layer.
package spatial

import (
	"github.com/philipparndt/gobim/pkg/geometry"
	"github.com/philipparndt/gobim/pkg/model"
)

// Bounds returns the axis-aligned union over every component with a
// computable local bound. Components without geometry are skipped; the
// skipped count lets the caller log them.
func Bounds(components []*model.Component) (geometry.BoundingBox, int) {
	bounds := geometry.NewBoundingBox()
	skipped := 0
	for _, c := range components {
		if c.Geometry == nil {
			skipped++
			continue
		}
		local, ok := c.Geometry.Bounds()
		if !ok {
			skipped++
			continue
		}
		bounds.ExtendBox(local)
	}
	return bounds, skipped
}

// Centroids returns each component's bounding-box center keyed by id.
// Centers derive from the decode-time geometry, so they are invariant
// under explode displacement; callers must recompute only when the set
// of component identities changes, never mid-gesture.
func Centroids(components []*model.Component) map[int32]geometry.Vector3 {
	centroids := make(map[int32]geometry.Vector3, len(components))
	for _, c := range components {
		if c.Geometry == nil {
			continue
		}
		local, ok := c.Geometry.Bounds()
		if !ok {
			continue
		}
		centroids[c.ID] = local.Center()
	}
	return centroids
}

// ExplodeOffsets computes the outward displacement of every component
// for the given explode amount. A component whose centroid coincides
// with the model center stays put: its direction is the zero vector,
// never NaN. At amount 0 every offset is exactly zero.
func ExplodeOffsets(amount float64, centroids map[int32]geometry.Vector3, modelCenter geometry.Vector3, modelSize float64) map[int32]geometry.Vector3 {
	offsets := make(map[int32]geometry.Vector3, len(centroids))
	for id, centroid := range centroids {
		direction := centroid.Sub(modelCenter).Normalize()
		offsets[id] = direction.Mul(amount * modelSize * 0.5)
	}
	return offsets
}

// ApplyOffsets moves every component to its initial position plus its
// offset. Components without an offset return to their initial position,
// so repeated application never accumulates drift.
func ApplyOffsets(registry *model.Registry, offsets map[int32]geometry.Vector3) {
	for _, c := range registry.Components() {
		offset, ok := offsets[c.ID]
		if !ok {
			registry.SetPosition(c.ID, c.InitialPosition)
			continue
		}
		registry.SetPosition(c.ID, c.InitialPosition.Add(offset))
	}
}
