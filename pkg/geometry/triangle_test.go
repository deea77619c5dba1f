package geometry

import (
	"math"
	"testing"
)

// right triangle with legs 3 and 4 in the XZ plane
func rightTriangle() Triangle {
	return NewTriangle(
		Vector3{},
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 0, 4),
	)
}

func TestTriangleArea(t *testing.T) {
	area := rightTriangle().Area()
	if math.Abs(area-6.0) > 1e-10 {
		t.Errorf("Area failed: expected 6, got %v", area)
	}
}

func TestTrianglePerimeter(t *testing.T) {
	perimeter := rightTriangle().Perimeter()
	if math.Abs(perimeter-12.0) > 1e-10 {
		t.Errorf("Perimeter failed: expected 12, got %v", perimeter)
	}
}

func TestTriangleCalculateNormal(t *testing.T) {
	// (3,0,0) x (0,0,4) points down -Y
	n := rightTriangle().CalculateNormal()
	expected := NewVector3(0, -1, 0)
	if n.Distance(expected) > 1e-10 {
		t.Errorf("CalculateNormal failed: expected %v, got %v", expected, n)
	}
}

func TestTriangleCalculateNormalDegenerate(t *testing.T) {
	tri := NewTriangle(Vector3{}, NewVector3(1, 1, 1), NewVector3(2, 2, 2), NewVector3(3, 3, 3))
	if n := tri.CalculateNormal(); n != (Vector3{}) {
		t.Errorf("CalculateNormal on collinear points: expected zero vector, got %v", n)
	}
}

func TestTriangleSignedVolume(t *testing.T) {
	tri := NewTriangle(Vector3{}, NewVector3(1, 0, 0), NewVector3(0, 1, 0), NewVector3(0, 0, 1))
	if v := tri.SignedVolume(); math.Abs(v-1.0/6.0) > 1e-12 {
		t.Errorf("SignedVolume failed: expected 1/6, got %v", v)
	}

	flipped := NewTriangle(Vector3{}, tri.V1, tri.V3, tri.V2)
	if v := flipped.SignedVolume(); math.Abs(v+1.0/6.0) > 1e-12 {
		t.Errorf("SignedVolume with flipped winding: expected -1/6, got %v", v)
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(
		Vector3{},
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	center := tri.Center()
	expected := NewVector3(1, 1, 0)

	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}
