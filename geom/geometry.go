// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

// Geometry is the tagged-sum interface implemented by Sphere, Plane, and
// Triangle. Raycast rejects solutions with t <= Epsilon so a ray spawned
// from a surface does not immediately re-hit it.
type Geometry interface {
	Raycast(r Ray) (t float32, normal Vector, ok bool)
	BoundingBox() AABB
}
