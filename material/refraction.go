// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package material

import (
	"math"

	"github.com/ehwan/raytracing/geom"
)

// Refraction bends a ray through the surface per Snell's law, falling
// back to total internal reflection when the refracted direction would
// not exist. Grounded on Refragtion::get_color (sic in original_source).
type Refraction struct {
	Color geom.Vector
	Index float32
}

func (m Refraction) GetColor(ray geom.Ray, hit geom.Hit, world World) geom.Vector {
	origin := childOrigin(ray, hit)

	normalComponent := hit.Normal.Scale(hit.Normal.Dot(ray.Direction))
	tangent := ray.Direction.Sub(normalComponent)

	index := m.Index
	if hit.Normal.Dot(ray.Direction) > 0 {
		index = 1 / index
	}

	a2 := index * index * normalComponent.LenSq()
	a1 := 1 - index*index*tangent.LenSq()

	var direction geom.Vector
	if a1 <= 0 {
		// total internal reflection
		direction = tangent.Sub(normalComponent)
	} else {
		alpha := float32(math.Sqrt(float64(a2 / a1)))
		direction = normalComponent.Add(tangent.Scale(alpha)).Unit()
	}

	child := geom.NewRay(origin, direction, ray.Bounce+0.3, ray.ThreadID)
	return world.GetColor(child).Mul(m.Color)
}
