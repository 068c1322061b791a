// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

// Plane is an infinite geometry primitive through Point with unit Normal.
// Modeled on gazed-vu/physics/shape.go's plane shape and
// gazed-vu/physics/caster.go's castRayPlane.
type Plane struct {
	Point  Vector
	Normal Vector
}

// Raycast returns no-hit if the ray is nearly parallel to the plane
// (|d.n| < Epsilon); otherwise solves t = ((c-o).n)/(d.n). The plane
// returns its own unoriented normal — it does not flip based on ray
// direction (spec §4.1).
func (p Plane) Raycast(r Ray) (t float32, normal Vector, ok bool) {
	denom := r.Direction.Dot(p.Normal)
	if denom < Epsilon && denom > -Epsilon {
		return 0, Vector{}, false
	}
	t = p.Point.Sub(r.Origin).Dot(p.Normal) / denom
	if t <= Epsilon {
		return 0, Vector{}, false
	}
	return t, p.Normal, true
}

// BoundingBox returns the full-extent box so R-tree traversal always
// visits an infinite plane.
func (p Plane) BoundingBox() AABB {
	return infinite()
}
