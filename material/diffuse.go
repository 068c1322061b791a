// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package material

import (
	"math"

	"github.com/ehwan/raytracing/geom"
)

// Diffuse is a Lambertian surface: child rays are drawn from the
// hemisphere above the normal with z sampled uniformly and the azimuth
// sampled uniformly, as described in spec §4.3. Grounded on
// DiffuseReflection::get_color.
type Diffuse struct {
	Color       geom.Vector
	SampleCount int
}

func (m Diffuse) GetColor(ray geom.Ray, hit geom.Hit, world World) geom.Vector {
	origin := childOrigin(ray, hit)
	tangent, bitangent := hit.Normal.Basis()

	sum := geom.Vector{}
	for i := 0; i < m.SampleCount; i++ {
		z := world.Random01(ray.ThreadID)
		phi := float64(world.Random01(ray.ThreadID)) * 2 * math.Pi
		r := float32(math.Sqrt(float64(1 - z*z)))
		x := float32(math.Cos(phi)) * r
		y := float32(math.Sin(phi)) * r

		direction := tangent.Scale(x).Add(bitangent.Scale(y)).Add(hit.Normal.Scale(z))
		child := geom.NewRay(origin, direction, ray.Bounce+1, ray.ThreadID)
		sum = sum.Add(world.GetColor(child))
	}
	mean := sum.Scale(1 / float32(m.SampleCount))
	return mean.Mul(m.Color)
}
