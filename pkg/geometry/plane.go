package geometry

// Plane is an infinite plane in Hessian normal form:
// a point p lies on the plane when Normal·p + Constant == 0.
type Plane struct {
	Normal   Vector3
	Constant float64
}

// NewPlane creates a plane from a normal and constant.
// The normal is normalized; the constant is taken as-is.
func NewPlane(normal Vector3, constant float64) Plane {
	return Plane{Normal: normal.Normalize(), Constant: constant}
}

// NewAxisPlane creates a plane whose normal is the unit vector of the axis
func NewAxisPlane(axis Axis, constant float64) Plane {
	return Plane{Normal: axis.Unit(), Constant: constant}
}

// DistanceTo returns the signed distance from the point to the plane
func (p Plane) DistanceTo(point Vector3) float64 {
	return p.Normal.Dot(point) + p.Constant
}
