// Package geometry provides basic geometric types used throughout the application.
package geometry

import (
	"math"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns the sum of two points.
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns the point scaled by a factor.
func (p Point2D) Scale(factor float64) Point2D {
	return Point2D{X: p.X * factor, Y: p.Y * factor}
}

// Angle returns the angle of the vector from the origin to p, in radians.
func (p Point2D) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Clamp returns the point with both coordinates clamped to [lo, hi].
func (p Point2D) Clamp(lo, hi float64) Point2D {
	return Point2D{X: Clamp(p.X, lo, hi), Y: Clamp(p.Y, lo, hi)}
}

// Rect represents a rectangle with floating-point coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect creates a new Rect.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point2D) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point2D {
	return Point2D{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// RelativePoint maps a normalized (0..1, 0..1) position to a point
// inside the rectangle.
func (r Rect) RelativePoint(nx, ny float64) Point2D {
	return Point2D{X: r.X + nx*r.Width, Y: r.Y + ny*r.Height}
}

// Normalize maps a point inside the rectangle to normalized (0..1, 0..1)
// coordinates. Points outside the rectangle map outside the unit square.
func (r Rect) Normalize(p Point2D) Point2D {
	if r.Width == 0 || r.Height == 0 {
		return Point2D{}
	}
	return Point2D{X: (p.X - r.X) / r.Width, Y: (p.Y - r.Y) / r.Height}
}

// Scaled returns the rectangle with all coordinates multiplied by the
// given factors.
func (r Rect) Scaled(sx, sy float64) Rect {
	return Rect{X: r.X * sx, Y: r.Y * sy, Width: r.Width * sx, Height: r.Height * sy}
}

// UVRect is an axis-aligned rectangle in texture UV space, stored as two
// corners rather than origin+size because garment UV islands are authored
// that way.
type UVRect struct {
	U1 float64 `json:"u1"`
	V1 float64 `json:"v1"`
	U2 float64 `json:"u2"`
	V2 float64 `json:"v2"`
}

// Width returns the U extent.
func (r UVRect) Width() float64 { return r.U2 - r.U1 }

// Height returns the V extent.
func (r UVRect) Height() float64 { return r.V2 - r.V1 }

// ToRect converts the UV rectangle to an origin+size Rect scaled to the
// given pixel dimensions.
func (r UVRect) ToRect(pixelW, pixelH float64) Rect {
	return Rect{
		X:      r.U1 * pixelW,
		Y:      r.V1 * pixelH,
		Width:  r.Width() * pixelW,
		Height: r.Height() * pixelH,
	}
}

// AffineTransform represents a 2x3 affine transformation matrix.
// [a b tx]
// [c d ty]
type AffineTransform struct {
	A, B, TX float64
	C, D, TY float64
}

// Identity returns the identity transform.
func Identity() AffineTransform {
	return AffineTransform{A: 1, D: 1}
}

// Translation returns a translation transform.
func Translation(tx, ty float64) AffineTransform {
	return AffineTransform{A: 1, D: 1, TX: tx, TY: ty}
}

// Rotation returns a rotation transform around the origin.
func Rotation(radians float64) AffineTransform {
	cos := math.Cos(radians)
	sin := math.Sin(radians)
	return AffineTransform{A: cos, B: -sin, C: sin, D: cos}
}

// Scale returns a scaling transform.
func Scale(sx, sy float64) AffineTransform {
	return AffineTransform{A: sx, D: sy}
}

// Apply applies the transform to a point.
func (t AffineTransform) Apply(p Point2D) Point2D {
	return Point2D{
		X: t.A*p.X + t.B*p.Y + t.TX,
		Y: t.C*p.X + t.D*p.Y + t.TY,
	}
}

// Compose returns this transform composed with another (this * other).
func (t AffineTransform) Compose(other AffineTransform) AffineTransform {
	return AffineTransform{
		A:  t.A*other.A + t.B*other.C,
		B:  t.A*other.B + t.B*other.D,
		TX: t.A*other.TX + t.B*other.TY + t.TX,
		C:  t.C*other.A + t.D*other.C,
		D:  t.C*other.B + t.D*other.D,
		TY: t.C*other.TX + t.D*other.TY + t.TY,
	}
}

// Inverse returns the inverse transform, if it exists.
func (t AffineTransform) Inverse() (AffineTransform, bool) {
	det := t.A*t.D - t.B*t.C
	if math.Abs(det) < 1e-10 {
		return AffineTransform{}, false
	}

	invDet := 1.0 / det
	return AffineTransform{
		A:  t.D * invDet,
		B:  -t.B * invDet,
		TX: (t.B*t.TY - t.D*t.TX) * invDet,
		C:  -t.C * invDet,
		D:  t.A * invDet,
		TY: (t.C*t.TX - t.A*t.TY) * invDet,
	}, true
}

// Size represents a 2D size.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewSize creates a new Size.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Clamp restricts x to the range [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// WrapDegrees normalizes an angle in degrees to the range [0, 360).
func WrapDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}
