// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

// Triangle is a geometry primitive defined by three positions and three
// per-vertex normals, shaded by barycentric interpolation. Grounded on
// original_source/geometry.hpp's Triangle::raycast (Moeller-Trumbore via
// scalar triple products) — gazed-vu/physics has no triangle primitive.
type Triangle struct {
	P0, P1, P2 Vector
	N0, N1, N2 Vector
}

// Raycast solves [p1-p0, p2-p0, -d] . (u,v,t) = o-p0. A hit requires
// u >= 0, v >= 0, u+v <= 1, t > Epsilon. The shading normal is the
// barycentric interpolation n0 + u(n1-n0) + v(n2-n0), normalized.
func (tr Triangle) Raycast(r Ray) (t float32, normal Vector, ok bool) {
	e1 := tr.P1.Sub(tr.P0)
	e2 := tr.P2.Sub(tr.P0)
	neg := r.Direction.Neg()

	det := e1.Dot(e2.Cross(neg))
	if det < Epsilon && det > -Epsilon {
		return 0, Vector{}, false
	}
	invDet := 1 / det

	b := r.Origin.Sub(tr.P0)
	row0 := e2.Cross(neg)
	row1 := neg.Cross(e1)
	row2 := e1.Cross(e2)

	u := invDet * row0.Dot(b)
	v := invDet * row1.Dot(b)
	tt := invDet * row2.Dot(b)

	if u < 0 || v < 0 || u+v > 1 || tt <= Epsilon {
		return 0, Vector{}, false
	}

	n := tr.N0.Add(tr.N1.Sub(tr.N0).Scale(u)).Add(tr.N2.Sub(tr.N0).Scale(v))
	return tt, n.Unit(), true
}

// BoundingBox returns the tight AABB around the triangle's three vertices.
func (tr Triangle) BoundingBox() AABB {
	return AABB{
		Min: tr.P0.Min(tr.P1).Min(tr.P2),
		Max: tr.P0.Max(tr.P1).Max(tr.P2),
	}
}
