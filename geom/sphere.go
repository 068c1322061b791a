// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import "math"

// Sphere is a geometry primitive centered at Center with positive Radius.
// Modeled on gazed-vu/physics/shape.go's sphere shape and
// gazed-vu/physics/caster.go's castRaySphere, generalized from a
// contact-point cast to a full Hit (t, outward normal).
type Sphere struct {
	Center Vector
	Radius float32
}

// Raycast solves (o + t*d - c)^2 = r^2, returning the smaller positive
// root beyond Epsilon, else the larger one, else no hit. The normal
// always points outward, even for rays originating inside the sphere —
// callers use sign(normal . direction) to detect the inside/outside
// transition (spec §4.1).
func (s Sphere) Raycast(r Ray) (t float32, normal Vector, ok bool) {
	oc := r.Origin.Sub(s.Center)
	b := r.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	det := b*b - c
	if det < 0 {
		return 0, Vector{}, false
	}
	sq := float32(math.Sqrt(float64(det)))

	t1 := -b - sq
	t2 := -b + sq
	switch {
	case t1 > Epsilon:
		t = t1
	case t2 > Epsilon:
		t = t2
	default:
		return 0, Vector{}, false
	}

	hit := r.At(t)
	normal = hit.Sub(s.Center).Scale(1 / s.Radius)
	return t, normal, true
}

// BoundingBox returns the tight AABB around the sphere.
func (s Sphere) BoundingBox() AABB {
	r := V(s.Radius, s.Radius, s.Radius)
	return AABB{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}
