package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()
	if !bbox.IsEmpty() {
		t.Fatal("new bounding box should be empty")
	}

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxExtents(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(10, 20, 30))

	// Y is up: width is X, depth is Z, height is Y
	if bbox.Width() != 10 || bbox.Depth() != 30 || bbox.Height() != 20 {
		t.Errorf("extents failed: got width=%v depth=%v height=%v", bbox.Width(), bbox.Depth(), bbox.Height())
	}
	if bbox.LargestDimension() != 30 {
		t.Errorf("LargestDimension failed: expected 30, got %v", bbox.LargestDimension())
	}
	if bbox.SmallestDimension() != 10 {
		t.Errorf("SmallestDimension failed: expected 10, got %v", bbox.SmallestDimension())
	}
}

func TestBoundingBoxBottomCenter(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 5, 0))
	bbox.Extend(NewVector3(10, 20, 30))

	expected := NewVector3(5, 5, 15)
	if got := bbox.BottomCenter(); got != expected {
		t.Errorf("BottomCenter failed: expected %v, got %v", expected, got)
	}
}

func TestBoundingBoxVolume(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(2, 3, 4))

	if math.Abs(bbox.Volume()-24.0) > 1e-10 {
		t.Errorf("Volume failed: expected 24, got %v", bbox.Volume())
	}
}
