package picking

import (
	"math"

	"github.com/philipparndt/gobim/pkg/geometry"
	"github.com/philipparndt/gobim/pkg/model"
)

// BoundsScene is a headless Scene that intersects rays with the world
// bounding boxes of visible components. It trades precision for having
// no renderer dependency; a real scene collaborator replaces it when a
// renderer is attached.
type BoundsScene struct {
	Registry *model.Registry
}

// Intersect returns a hit for every visible component whose world bounds
// the ray crosses.
func (s *BoundsScene) Intersect(ray geometry.Ray) []Hit {
	var hits []Hit
	for _, c := range s.Registry.Components() {
		if !c.Visible {
			continue
		}
		bounds, ok := c.WorldBounds()
		if !ok {
			continue
		}
		if t, ok := intersectBox(ray, bounds); ok {
			hits = append(hits, Hit{
				ComponentID: c.ID,
				Point:       ray.At(t),
				Distance:    t,
			})
		}
	}
	return hits
}

// intersectBox is the slab test: the ray hits the box when the entry
// parameter across all three axis slabs stays below the exit parameter.
func intersectBox(ray geometry.Ray, box geometry.BoundingBox) (float64, bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	origins := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	directions := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	mins := [3]float64{box.Min.X, box.Min.Y, box.Min.Z}
	maxs := [3]float64{box.Max.X, box.Max.Y, box.Max.Z}

	for i := 0; i < 3; i++ {
		if directions[i] == 0 {
			if origins[i] < mins[i] || origins[i] > maxs[i] {
				return 0, false
			}
			continue
		}
		t1 := (mins[i] - origins[i]) / directions[i]
		t2 := (maxs[i] - origins[i]) / directions[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	if tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		// Ray starts inside the box
		return 0, true
	}
	return tMin, true
}
