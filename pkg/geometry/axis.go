package geometry

// Axis identifies one of the three world axes
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Unit returns the unit vector along the axis
func (a Axis) Unit() Vector3 {
	switch a {
	case AxisY:
		return Vector3{Y: 1}
	case AxisZ:
		return Vector3{Z: 1}
	default:
		return Vector3{X: 1}
	}
}

func (a Axis) String() string {
	switch a {
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "x"
	}
}

// ParseAxis resolves "x", "y" or "z" to an Axis; anything else reports false
func ParseAxis(s string) (Axis, bool) {
	switch s {
	case "x", "X":
		return AxisX, true
	case "y", "Y":
		return AxisY, true
	case "z", "Z":
		return AxisZ, true
	}
	return AxisX, false
}
