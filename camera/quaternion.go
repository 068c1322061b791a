// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package camera

import (
	"math"

	"github.com/ehwan/raytracing/geom"
)

// quaternion is a unit rotation quaternion in float32, the minimum slice
// of gazed-vu/math/lin/quaternion.go's Q needed to compose pitch/yaw/roll
// into an orthonormal basis: axis-angle construction, multiplication, and
// vector rotation. Extracted and retyped to float32 rather than keeping
// the teacher's full float64 vector/matrix/quaternion/transform library,
// since nothing else in this tree needs the rest of it (see DESIGN.md).
type quaternion struct {
	x, y, z, w float32
}

// setAa sets q to the rotation of angle radians about axis (ax,ay,az),
// mirroring lin.Q.SetAa.
func (q *quaternion) setAa(ax, ay, az, angle float32) {
	lenSq := ax*ax + ay*ay + az*az
	if lenSq == 0 {
		q.x, q.y, q.z, q.w = 0, 0, 0, 1
		return
	}
	s := float32(math.Sin(float64(angle)*0.5)) / float32(math.Sqrt(float64(lenSq)))
	q.x, q.y, q.z, q.w = ax*s, ay*s, az*s, float32(math.Cos(float64(angle)*0.5))
}

// mult sets q to the product r*s, mirroring lin.Q.Mult.
func (q *quaternion) mult(r, s quaternion) {
	q.x = r.w*s.x + r.x*s.w - r.y*s.z + r.z*s.y
	q.y = r.w*s.y + r.x*s.z + r.y*s.w - r.z*s.x
	q.z = r.w*s.z - r.x*s.y + r.y*s.x + r.z*s.w
	q.w = r.w*s.w - r.x*s.x - r.y*s.y - r.z*s.z
}

// rotate rotates v by q, mirroring lin.V3.MultQ's faster cross-product
// formulation.
func (q quaternion) rotate(v geom.Vector) geom.Vector {
	c0x, c0y, c0z := 2*(q.y*v.Z-q.z*v.Y), 2*(q.z*v.X-q.x*v.Z), 2*(q.x*v.Y-q.y*v.X)
	c1x, c1y, c1z := q.y*c0z-q.z*c0y, q.z*c0x-q.x*c0z, q.x*c0y-q.y*c0x
	return geom.V(v.X+q.w*c0x+c1x, v.Y+q.w*c0y+c1y, v.Z+q.w*c0z+c1z)
}
