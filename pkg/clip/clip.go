// Package clip owns the section-plane state: which axis is cut, where
// the cut sits on the UI slider, and whether it is active at all.
package clip

import (
	"github.com/philipparndt/gobim/pkg/geometry"
	"github.com/philipparndt/gobim/pkg/model"
)

// sliderScale maps the [0,100] UI slider range onto world units. The
// plane constant is -position/sliderScale, so a full slider sweep moves
// the cut through 10 world units. This is a UI design choice, not a
// property of the model.
const sliderScale = 10.0

// ComputePlane returns the section plane for an axis and slider position
func ComputePlane(axis geometry.Axis, position float64) geometry.Plane {
	return geometry.NewAxisPlane(axis, -position/sliderScale)
}

// Controller tracks the clip state and keeps every component's clip
// assignment in sync with it. Each mutation recomputes and reapplies in
// one step; components are never left half-updated.
type Controller struct {
	axis     geometry.Axis
	position float64
	active   bool
}

// NewController creates an inactive controller cutting along X at 0
func NewController() *Controller {
	return &Controller{axis: geometry.AxisX}
}

// Axis returns the current clip axis
func (c *Controller) Axis() geometry.Axis {
	return c.axis
}

// Position returns the current slider position in [0,100]
func (c *Controller) Position() float64 {
	return c.position
}

// Active reports whether clipping is applied
func (c *Controller) Active() bool {
	return c.active
}

// Plane returns the plane for the current axis and position
func (c *Controller) Plane() geometry.Plane {
	return ComputePlane(c.axis, c.position)
}

// SetAxis switches the cut axis and reapplies the clip state
func (c *Controller) SetAxis(registry *model.Registry, axis geometry.Axis) {
	c.axis = axis
	c.apply(registry)
}

// SetPosition moves the cut. Values outside [0,100] are clamped.
func (c *Controller) SetPosition(registry *model.Registry, position float64) {
	if position < 0 {
		position = 0
	}
	if position > 100 {
		position = 100
	}
	c.position = position
	c.apply(registry)
}

// SetActive enables or disables clipping. Disabling clears the clip
// assignment on every component so no plane reference leaks.
func (c *Controller) SetActive(registry *model.Registry, active bool) {
	c.active = active
	c.apply(registry)
}

func (c *Controller) apply(registry *model.Registry) {
	if !c.active {
		registry.ClearClipPlanes()
		return
	}
	registry.SetClipPlane(c.Plane())
}
