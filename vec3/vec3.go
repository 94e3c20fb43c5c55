// Package vec3 provides a minimal fixed-size 3-component real vector used
// throughout the simulation for positions, velocities and fields.
package vec3

import "math"

// Vec3 is a 3-component vector of 64-bit reals.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns a+b.
func Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a-b.
func Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a*s.
func Scale(a Vec3, s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the Euclidean dot product a.b.
func Dot(a, b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns a x b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Norm2 returns the Euclidean square |a|^2.
func Norm2(a Vec3) float64 {
	return Dot(a, a)
}

// Norm returns the Euclidean length |a|.
func Norm(a Vec3) float64 {
	return math.Sqrt(Norm2(a))
}

// AddTo accumulates b*scale into *a. Used by the trilinear kernel
// (interp.Vec3) to sum weighted corner values.
func (a *Vec3) AddTo(b Vec3, scale float64) {
	a.X += b.X * scale
	a.Y += b.Y * scale
	a.Z += b.Z * scale
}

// Axis returns the component along axis 0,1,2 (x,y,z).
func (a Vec3) Axis(axis int) float64 {
	switch axis {
	case 0:
		return a.X
	case 1:
		return a.Y
	default:
		return a.Z
	}
}

// SetAxis sets the component along axis 0,1,2 (x,y,z).
func (a *Vec3) SetAxis(axis int, v float64) {
	switch axis {
	case 0:
		a.X = v
	case 1:
		a.Y = v
	default:
		a.Z = v
	}
}

// Finite reports whether all three components are finite (not NaN, not Inf).
func (a Vec3) Finite() bool {
	return !math.IsNaN(a.X) && !math.IsInf(a.X, 0) &&
		!math.IsNaN(a.Y) && !math.IsInf(a.Y, 0) &&
		!math.IsNaN(a.Z) && !math.IsInf(a.Z, 0)
}
