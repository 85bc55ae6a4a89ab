package sapling

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorTransparent = Color{}
)

// NRGBA converts the color to the standard library's 8-bit representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Mix linearly interpolates toward other by t in [0, 1].
func (c Color) Mix(other Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for offsets, translations, and scroll deltas.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Point is a position in logical pixels. The coordinate system has its origin
// at the top-left, with Y increasing downward.
type Point struct {
	X, Y float64
}

// Add translates the point by a vector.
func (p Point) Add(v Vec2) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// Size is a width/height pair in logical pixels.
type Size struct {
	Width, Height float64
}

// Pad returns the size grown by the given padding on all sides.
func (s Size) Pad(p Padding) Size {
	return Size{s.Width + p.Horizontal(), s.Height + p.Vertical()}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// NewRect builds a rectangle from a position and a size.
func NewRect(p Point, s Size) Rect {
	return Rect{p.X, p.Y, s.Width, s.Height}
}

// Position returns the top-left corner.
func (r Rect) Position() Point {
	return Point{r.X, r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{r.Width, r.Height}
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains reports whether the point lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Intersection returns the overlapping region of r and other.
// Returns a zero Rect if they do not overlap.
func (r Rect) Intersection(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.X+r.Width, other.X+other.Width)
	y2 := min(r.Y+r.Height, other.Y+other.Height)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{x1, y1, x2 - x1, y2 - y1}
}

// Translate returns the rectangle moved by a vector.
func (r Rect) Translate(v Vec2) Rect {
	return Rect{r.X + v.X, r.Y + v.Y, r.Width, r.Height}
}

// Shrink returns the rectangle inset by the given padding.
func (r Rect) Shrink(p Padding) Rect {
	return Rect{
		X:      r.X + p.Left,
		Y:      r.Y + p.Top,
		Width:  max(r.Width-p.Horizontal(), 0),
		Height: max(r.Height-p.Vertical(), 0),
	}
}

// Padding is space around content, one value per edge.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// UniformPadding returns equal padding on all four edges.
func UniformPadding(v float64) Padding {
	return Padding{v, v, v, v}
}

// Horizontal returns Left + Right.
func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

// Vertical returns Top + Bottom.
func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Alignment positions content along an axis.
type Alignment uint8

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)
