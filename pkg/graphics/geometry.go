// Package graphics provides the geometry and color primitives shared by
// every velt component: offsets, sizes, rectangles, edge insets, and an
// ARGB color type with HSV conversion for the color picker.
package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the component-wise difference of two offsets.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Distance returns the euclidean length of the offset.
func (o Offset) Distance() float64 {
	return math.Hypot(o.X, o.Y)
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromOriginSize constructs a Rect from an origin point and a size.
func RectFromOriginSize(origin Offset, size Size) Rect {
	return RectFromLTWH(origin.X, origin.Y, size.Width, size.Height)
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Contains reports whether the point lies inside the rectangle.
// Points on the right or bottom edge are outside.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.Left >= r.Left && other.Top >= r.Top &&
		other.Right <= r.Right && other.Bottom <= r.Bottom
}

// Intersect returns the intersection of two rectangles.
// Returns empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right, other.Right)
	bottom := math.Min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{} // Empty
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// Inset returns the rectangle shrunk by the given insets.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		Left:   r.Left + in.Left,
		Top:    r.Top + in.Top,
		Right:  r.Right - in.Right,
		Bottom: r.Bottom - in.Bottom,
	}
}

// Radius represents corner radii for rounded rectangles.
type Radius struct {
	X float64
	Y float64
}

// CircularRadius creates a circular radius with equal X/Y values.
func CircularRadius(value float64) Radius {
	return Radius{X: value, Y: value}
}

// RRect represents a rounded rectangle with per-corner radii.
type RRect struct {
	Rect        Rect
	TopLeft     Radius
	TopRight    Radius
	BottomRight Radius
	BottomLeft  Radius
}

// RRectFromRectAndRadius creates a rounded rectangle with uniform corner radii.
func RRectFromRectAndRadius(rect Rect, radius Radius) RRect {
	return RRect{
		Rect:        rect,
		TopLeft:     radius,
		TopRight:    radius,
		BottomRight: radius,
		BottomLeft:  radius,
	}
}

// Insets describes spacing on each side of a rectangle.
type Insets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// UniformInsets creates Insets with the same value on every side.
func UniformInsets(value float64) Insets {
	return Insets{Left: value, Top: value, Right: value, Bottom: value}
}

// SymmetricInsets creates Insets with the given horizontal and vertical values.
func SymmetricInsets(horizontal, vertical float64) Insets {
	return Insets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Horizontal returns the total horizontal inset.
func (i Insets) Horizontal() float64 {
	return i.Left + i.Right
}

// Vertical returns the total vertical inset.
func (i Insets) Vertical() float64 {
	return i.Top + i.Bottom
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
