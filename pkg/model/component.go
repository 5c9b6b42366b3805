package model

import (
	"github.com/philipparndt/gobim/pkg/geometry"
)

// GeometryHandle is the geometry resource owned by a component. The
// registry releases it when the component is removed; nothing else may.
type GeometryHandle interface {
	// Bounds returns the local bounding box of the geometry. ok is false
	// when the geometry carries no computable bound.
	Bounds() (geometry.BoundingBox, bool)
	// Release frees the underlying resource. Release is idempotent.
	Release()
}

// Component is one addressable building element extracted from a model
type Component struct {
	ID       int32
	Name     string
	Category string

	// Geometry is exclusively owned by the component and released when
	// the component leaves the registry.
	Geometry GeometryHandle

	Visible     bool
	Highlighted bool

	// InitialPosition is captured at decode time and never changes.
	// It is the baseline every explode offset is applied to.
	InitialPosition geometry.Vector3

	// Position is the current world position, InitialPosition plus the
	// active explode offset.
	Position geometry.Vector3

	// ClipPlane is the single active clip assignment, nil when clipping
	// is inactive.
	ClipPlane *geometry.Plane
}

// NewComponent creates a visible, unhighlighted component at its initial position
func NewComponent(id int32, name, category string, geom GeometryHandle, pos geometry.Vector3) *Component {
	return &Component{
		ID:              id,
		Name:            name,
		Category:        category,
		Geometry:        geom,
		Visible:         true,
		InitialPosition: pos,
		Position:        pos,
	}
}

// WorldBounds returns the component's bounds translated to its current position
func (c *Component) WorldBounds() (geometry.BoundingBox, bool) {
	if c.Geometry == nil {
		return geometry.BoundingBox{}, false
	}
	local, ok := c.Geometry.Bounds()
	if !ok {
		return geometry.BoundingBox{}, false
	}
	return local.Translate(c.Position.Sub(c.InitialPosition)), true
}
