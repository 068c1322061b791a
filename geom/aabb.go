// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import "math"

// AABB is an axis-aligned bounding box: two vectors Min <= Max
// component-wise. An infinite plane's AABB spans the full extent on every
// axis so that R-tree traversal always visits it (spec §4.1).
type AABB struct {
	Min, Max Vector
}

// infinite returns the full-extent AABB used by unbounded primitives.
func infinite() AABB {
	inf := float32(math.Inf(1))
	return AABB{Min: V(-inf, -inf, -inf), Max: V(inf, inf, inf)}
}

// Union returns the smallest AABB containing both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

// Center returns the AABB's center point.
func (a AABB) Center() Vector {
	return a.Min.Add(a.Max).Scale(0.5)
}

// Raycast performs the slab test over the half-line t >= 0, returning the
// entry/exit parameters (tmin, tmax) and whether the interval is
// non-empty and not entirely behind the ray origin.
func (a AABB) Raycast(r Ray) (tmin, tmax float32, ok bool) {
	tmin = 0
	tmax = float32(math.Inf(1))

	t1x := (a.Min.X - r.Origin.X) * r.Recip.X
	t2x := (a.Max.X - r.Origin.X) * r.Recip.X
	tmin, tmax = narrow(tmin, tmax, t1x, t2x)

	t1y := (a.Min.Y - r.Origin.Y) * r.Recip.Y
	t2y := (a.Max.Y - r.Origin.Y) * r.Recip.Y
	tmin, tmax = narrow(tmin, tmax, t1y, t2y)

	t1z := (a.Min.Z - r.Origin.Z) * r.Recip.Z
	t2z := (a.Max.Z - r.Origin.Z) * r.Recip.Z
	tmin, tmax = narrow(tmin, tmax, t1z, t2z)

	if tmin > tmax {
		return tmin, tmax, false
	}
	return tmin, tmax, true
}

// narrow intersects the running [tmin,tmax] interval with [lo,hi] (the
// two candidate crossings on one axis, in either order).
func narrow(tmin, tmax, a, b float32) (float32, float32) {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo > tmin {
		tmin = lo
	}
	if hi < tmax {
		tmax = hi
	}
	return tmin, tmax
}
