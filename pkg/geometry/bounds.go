package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates an inverted bounding box that any Extend call will
// collapse onto the first point.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Vector3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// IsEmpty reports whether no point has been added
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Width is the X extent
func (b BoundingBox) Width() float64 {
	return b.Max.X - b.Min.X
}

// Depth is the Z extent
func (b BoundingBox) Depth() float64 {
	return b.Max.Z - b.Min.Z
}

// Height is the Y extent
func (b BoundingBox) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// LargestDimension returns the biggest of width, depth and height
func (b BoundingBox) LargestDimension() float64 {
	return math.Max(b.Width(), math.Max(b.Depth(), b.Height()))
}

// SmallestDimension returns the smallest of width, depth and height
func (b BoundingBox) SmallestDimension() float64 {
	return math.Min(b.Width(), math.Min(b.Depth(), b.Height()))
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector3 {
	return Vector3{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
		Z: (b.Min.Z + b.Max.Z) / 2.0,
	}
}

// BottomCenter returns the center of the box footprint at its lowest Y
func (b BoundingBox) BottomCenter() Vector3 {
	c := b.Center()
	c.Y = b.Min.Y
	return c
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	size := b.Size()
	return size.Length()
}

// Volume returns the volume of the bounding box
func (b BoundingBox) Volume() float64 {
	size := b.Size()
	return size.X * size.Y * size.Z
}
