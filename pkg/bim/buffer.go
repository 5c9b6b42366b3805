package bim

import (
	"errors"

	"github.com/philipparndt/gobim/pkg/geometry"
)

// GeometryBuffer is the mesh-equivalent output of a Runtime decode: a
// flat triangle soup where every vertex carries the id of the building
// entity it belongs to. Ids of 0 or below mean "no associated entity".
type GeometryBuffer struct {
	Vertices []geometry.Vector3
	IDs      []int32  // per-vertex entity id, one per vertex
	Indices  []uint32 // triangle list, three indices per triangle
}

// Validate checks the structural invariants a buffer must satisfy before
// component extraction can run.
func (b *GeometryBuffer) Validate() error {
	if len(b.Vertices) == 0 {
		return errors.New("geometry buffer has no vertices")
	}
	if len(b.IDs) != len(b.Vertices) {
		return errors.New("geometry buffer is missing the per-vertex identifier attribute")
	}
	if len(b.Indices)%3 != 0 {
		return errors.New("geometry buffer index count is not a multiple of 3")
	}
	for _, idx := range b.Indices {
		if int(idx) >= len(b.Vertices) {
			return errors.New("geometry buffer index out of range")
		}
	}
	return nil
}

// DistinctIDs returns every distinct positive vertex id in first-seen
// order. Non-positive ids are sentinel "no entity" values and excluded.
func (b *GeometryBuffer) DistinctIDs() []int32 {
	seen := make(map[int32]struct{})
	var ids []int32
	for _, id := range b.IDs {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// Subset allocates a geometry subset restricted to the triangles whose
// vertices all carry the given id. The subset owns its storage and must
// be released by its eventual owner.
func (b *GeometryBuffer) Subset(id int32) *GeometrySubset {
	s := &GeometrySubset{id: id, bounds: geometry.NewBoundingBox()}
	remap := make(map[uint32]uint32)

	for i := 0; i+2 < len(b.Indices); i += 3 {
		i0, i1, i2 := b.Indices[i], b.Indices[i+1], b.Indices[i+2]
		if b.IDs[i0] != id || b.IDs[i1] != id || b.IDs[i2] != id {
			continue
		}
		for _, src := range []uint32{i0, i1, i2} {
			dst, ok := remap[src]
			if !ok {
				dst = uint32(len(s.vertices))
				remap[src] = dst
				s.vertices = append(s.vertices, b.Vertices[src])
				s.bounds.Extend(b.Vertices[src])
			}
			s.indices = append(s.indices, dst)
		}
	}
	return s
}

// GeometrySubset is the geometry of a single component. It implements
// model.GeometryHandle.
type GeometrySubset struct {
	id       int32
	vertices []geometry.Vector3
	indices  []uint32
	bounds   geometry.BoundingBox
	released bool
}

// ID returns the entity id the subset was built for
func (s *GeometrySubset) ID() int32 {
	return s.id
}

// TriangleCount returns the number of triangles in the subset
func (s *GeometrySubset) TriangleCount() int {
	return len(s.indices) / 3
}

// Vertices returns the subset's vertex positions
func (s *GeometrySubset) Vertices() []geometry.Vector3 {
	return s.vertices
}

// Bounds returns the local bounding box. ok is false for a released or
// empty subset.
func (s *GeometrySubset) Bounds() (geometry.BoundingBox, bool) {
	if s.released || !s.bounds.IsValid() {
		return geometry.BoundingBox{}, false
	}
	return s.bounds, true
}

// Released reports whether the subset has been released
func (s *GeometrySubset) Released() bool {
	return s.released
}

// Release frees the subset's storage. Releasing twice is a no-op.
func (s *GeometrySubset) Release() {
	if s.released {
		return
	}
	s.released = true
	s.vertices = nil
	s.indices = nil
}
