// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package material

import "github.com/ehwan/raytracing/geom"

// Mirror reflects a single child ray about the surface normal. Grounded on
// MirrorReflection::get_color.
type Mirror struct {
	Color geom.Vector
}

func (m Mirror) GetColor(ray geom.Ray, hit geom.Hit, world World) geom.Vector {
	origin := childOrigin(ray, hit)
	direction := ray.Direction.Reflect(hit.Normal)
	child := geom.NewRay(origin, direction, ray.Bounce+0.3, ray.ThreadID)
	return world.GetColor(child).Mul(m.Color)
}
