// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package material

import (
	"math"

	"github.com/ehwan/raytracing/geom"
)

// Checker is a procedural pattern material: it returns ColorA or ColorB
// depending on the parity of floor(hit.x/Scale)+floor(hit.z/Scale). It
// never recurses, so it must be composed with a reflectance model via
// Multiply to actually scatter light (spec §9's open-question decision:
// procedural shading is exposed only through Multiply, never attached to
// Geometry). Grounded on original_source/geometry.hpp's Plane::get_color
// checker pattern.
type Checker struct {
	ColorA, ColorB geom.Vector
	Scale          float32
}

func (m Checker) GetColor(ray geom.Ray, hit geom.Hit, world World) geom.Vector {
	p := ray.At(hit.T)
	cx := cellIndex(p.X, m.Scale)
	cz := cellIndex(p.Z, m.Scale)
	if (cx+cz)%2 == 0 {
		return m.ColorA
	}
	return m.ColorB
}

func cellIndex(v, scale float32) int {
	n := int(math.Floor(float64(v / scale)))
	if n%2 == 0 {
		return 0
	}
	return 1
}
