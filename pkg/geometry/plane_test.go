package geometry

import (
	"math"
	"testing"
)

func TestNewAxisPlane(t *testing.T) {
	tests := []struct {
		axis     Axis
		expected Vector3
	}{
		{AxisX, NewVector3(1, 0, 0)},
		{AxisY, NewVector3(0, 1, 0)},
		{AxisZ, NewVector3(0, 0, 1)},
	}

	for _, tt := range tests {
		plane := NewAxisPlane(tt.axis, -2.5)
		if plane.Normal != tt.expected {
			t.Errorf("axis %s: expected normal %v, got %v", tt.axis, tt.expected, plane.Normal)
		}
		if plane.Constant != -2.5 {
			t.Errorf("axis %s: expected constant -2.5, got %v", tt.axis, plane.Constant)
		}
	}
}

func TestPlaneDistanceTo(t *testing.T) {
	plane := NewAxisPlane(AxisY, -1) // y = 1 plane

	above := plane.DistanceTo(NewVector3(0, 3, 0))
	if math.Abs(above-2) > 1e-10 {
		t.Errorf("expected distance 2, got %v", above)
	}

	on := plane.DistanceTo(NewVector3(5, 1, -7))
	if math.Abs(on) > 1e-10 {
		t.Errorf("expected distance 0, got %v", on)
	}

	below := plane.DistanceTo(NewVector3(0, -1, 0))
	if math.Abs(below+2) > 1e-10 {
		t.Errorf("expected distance -2, got %v", below)
	}
}

func TestNewPlaneNormalizesNormal(t *testing.T) {
	plane := NewPlane(NewVector3(0, 0, 10), 4)
	if plane.Normal != NewVector3(0, 0, 1) {
		t.Errorf("expected normalized normal, got %v", plane.Normal)
	}
}

func TestRayAt(t *testing.T) {
	ray := NewRay(NewVector3(1, 0, 0), NewVector3(0, 2, 0))

	p := ray.At(3)
	expected := NewVector3(1, 3, 0) // direction normalized to unit length
	if p != expected {
		t.Errorf("expected %v, got %v", expected, p)
	}
}

func TestParseAxis(t *testing.T) {
	if a, ok := ParseAxis("z"); !ok || a != AxisZ {
		t.Errorf("ParseAxis(z) = %v, %v", a, ok)
	}
	if _, ok := ParseAxis("w"); ok {
		t.Error("ParseAxis(w) should fail")
	}
}
