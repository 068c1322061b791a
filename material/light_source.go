// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package material

import "github.com/ehwan/raytracing/geom"

// LightSource is a terminal emitter: it returns Color regardless of
// incident direction, ending recursion along this path. Grounded on
// DirectionalLightSource::get_color.
type LightSource struct {
	Color geom.Vector
}

func (m LightSource) GetColor(ray geom.Ray, hit geom.Hit, world World) geom.Vector {
	return m.Color
}

// DirectionalLightSource weights the emitted color by |d.n|, the
// directional variant named in spec §4.3.
type DirectionalLightSource struct {
	Color geom.Vector
}

func (m DirectionalLightSource) GetColor(ray geom.Ray, hit geom.Hit, world World) geom.Vector {
	weight := ray.Direction.Dot(hit.Normal)
	if weight < 0 {
		weight = -weight
	}
	return m.Color.Scale(weight)
}
