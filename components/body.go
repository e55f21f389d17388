package components

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ShapeKind tags the concrete variant behind a Shape.
type ShapeKind uint8

const (
	ShapeAxisAlignedBox ShapeKind = iota
)

// String returns the display name for a ShapeKind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeAxisAlignedBox:
		return "AxisAlignedBox"
	}
	return "Unknown"
}

// Shape is the collision geometry of a Collider.
// New variants only need a kind and a pair test registered in the systems
// package; pairs without a test never collide.
type Shape interface {
	Kind() ShapeKind
	// Extents returns the half-size of the shape's axis-aligned bounds.
	Extents() r2.Vec
}

// AxisAlignedBox is an unrotated rectangle centred on the collider position.
type AxisAlignedBox struct {
	HalfExtents r2.Vec
}

// NewAxisAlignedBox returns a box with the given half-extents.
// Negative components are clamped to zero.
func NewAxisAlignedBox(halfX, halfY float64) AxisAlignedBox {
	return AxisAlignedBox{HalfExtents: r2.Vec{X: math.Max(halfX, 0), Y: math.Max(halfY, 0)}}
}

// Kind implements Shape.
func (AxisAlignedBox) Kind() ShapeKind { return ShapeAxisAlignedBox }

// Extents implements Shape.
func (b AxisAlignedBox) Extents() r2.Vec { return b.HalfExtents }

// Collider holds the physical state of one body.
type Collider struct {
	Position     r2.Vec // centre of mass, world units
	Velocity     r2.Vec
	Acceleration r2.Vec
	Mass         float64
	Static       bool // exempt from integration
	Shape        Shape
}

// HalfExtents returns the bounds of the collider's shape, or zero when it has none.
func (c *Collider) HalfExtents() r2.Vec {
	if c.Shape == nil {
		return r2.Vec{}
	}
	return c.Shape.Extents()
}
