// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package geom provides the ray/geometry intersection layer: vectors,
// rays, hit records, axis-aligned bounding boxes, and the geometry
// primitives (sphere, plane, triangle) that the spatial index and the
// reflection models build on.
package geom

import "math"

// Epsilon is the self-intersection guard used by every raycast in this
// package. Solutions with t <= Epsilon are rejected so that a ray spawned
// from a surface does not immediately re-hit it.
const Epsilon = 1e-3

// Vector is a 3-element vector of 32-bit floats, used both as a point and
// as a color (element-wise product composes color absorption).
type Vector struct {
	X, Y, Z float32
}

// V is a convenience constructor.
func V(x, y, z float32) Vector { return Vector{x, y, z} }

// Eq (==) returns true if v and a have identical components.
func (v Vector) Eq(a Vector) bool { return v.X == a.X && v.Y == a.Y && v.Z == a.Z }

// Aeq (~=) almost-equals returns true if v and a are within Epsilon of
// each other, component-wise. Used where a direct comparison is unlikely
// to return true due to float rounding.
func (v Vector) Aeq(a Vector) bool {
	return aeq(v.X, a.X) && aeq(v.Y, a.Y) && aeq(v.Z, a.Z)
}

func aeq(x, y float32) bool {
	d := x - y
	if d < 0 {
		d = -d
	}
	return d < Epsilon
}

// Add returns v+a.
func (v Vector) Add(a Vector) Vector { return Vector{v.X + a.X, v.Y + a.Y, v.Z + a.Z} }

// Sub returns v-a.
func (v Vector) Sub(a Vector) Vector { return Vector{v.X - a.X, v.Y - a.Y, v.Z - a.Z} }

// Mul returns the element-wise product of v and a (used to compose color
// absorption: mirror.color * reflected_color, etc.).
func (v Vector) Mul(a Vector) Vector { return Vector{v.X * a.X, v.Y * a.Y, v.Z * a.Z} }

// Scale returns v scaled by s.
func (v Vector) Scale(s float32) Vector { return Vector{v.X * s, v.Y * s, v.Z * s} }

// Neg returns -v.
func (v Vector) Neg() Vector { return Vector{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of v and a.
func (v Vector) Dot(a Vector) float32 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z }

// Cross returns the cross product v x a.
func (v Vector) Cross(a Vector) Vector {
	return Vector{
		v.Y*a.Z - v.Z*a.Y,
		v.Z*a.X - v.X*a.Z,
		v.X*a.Y - v.Y*a.X,
	}
}

// LenSq returns the squared length of v.
func (v Vector) LenSq() float32 { return v.Dot(v) }

// Len returns the length of v.
func (v Vector) Len() float32 { return float32(math.Sqrt(float64(v.LenSq()))) }

// Unit returns v normalized to unit length. The zero vector normalizes to
// itself rather than panicking or producing NaN, since geometry
// degeneracies (spec §7) must never abort rendering.
func (v Vector) Unit() Vector {
	l := v.Len()
	if l < Epsilon {
		return v
	}
	return v.Scale(1 / l)
}

// Min returns the component-wise minimum of v and a.
func (v Vector) Min(a Vector) Vector {
	return Vector{minf(v.X, a.X), minf(v.Y, a.Y), minf(v.Z, a.Z)}
}

// Max returns the component-wise maximum of v and a.
func (v Vector) Max(a Vector) Vector {
	return Vector{maxf(v.X, a.X), maxf(v.Y, a.Y), maxf(v.Z, a.Z)}
}

// Basis returns two unit vectors orthogonal to v and to each other,
// completing a right-handed orthonormal frame (v, tangent, bitangent).
// Used to build cone/hemisphere samples around an axis such as a surface
// normal or a mirror reflection direction.
func (v Vector) Basis() (tangent, bitangent Vector) {
	axis := v.Unit()
	up := V(0, 1, 0)
	if absf(axis.Y) > 1-Epsilon {
		up = V(1, 0, 0)
	}
	tangent = up.Cross(axis).Unit()
	bitangent = axis.Cross(tangent)
	return tangent, bitangent
}

// Reflect returns v reflected about unit normal n: v - 2(v.n)n.
func (v Vector) Reflect(n Vector) Vector {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

func absf(a float32) float32 {
	if a < 0 {
		return -a
	}
	return a
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
