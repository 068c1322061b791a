// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package material

import "github.com/ehwan/raytracing/geom"

// Face dispatches to Front when the ray strikes the outward face
// (d.n < 0) and to Back otherwise. Grounded on FaceReflection::get_color.
type Face struct {
	Front, Back Material
}

func (m Face) GetColor(ray geom.Ray, hit geom.Hit, world World) geom.Vector {
	if ray.Direction.Dot(hit.Normal) < 0 {
		return m.Front.GetColor(ray, hit, world)
	}
	return m.Back.GetColor(ray, hit, world)
}
