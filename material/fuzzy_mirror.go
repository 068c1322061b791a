// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package material

import (
	"math"

	"github.com/ehwan/raytracing/geom"
)

// FuzzyMirror scatters child rays in a cone of half-angle Fuzziness*pi/2
// around the mirror direction. Samples falling below the tangent plane
// are discarded. Grounded on FuzzyMirrorReflection::get_color, with the
// cone sampled by the standard uniform-solid-angle-in-a-cap construction
// rather than the source's sin-reshaped polar angle (spec §4.3 describes
// the cone by its half-angle, not the source's specific reshaping).
type FuzzyMirror struct {
	Color       geom.Vector
	Fuzziness   float32
	SampleCount int
}

func (m FuzzyMirror) GetColor(ray geom.Ray, hit geom.Hit, world World) geom.Vector {
	origin := childOrigin(ray, hit)
	reflection := ray.Direction.Reflect(hit.Normal)
	tangent, bitangent := reflection.Basis()

	thetaMax := float64(m.Fuzziness) * math.Pi / 2
	cosThetaMax := float32(math.Cos(thetaMax))

	sum := geom.Vector{}
	valid := 0
	for i := 0; i < m.SampleCount; i++ {
		u1 := world.Random01(ray.ThreadID)
		u2 := world.Random01(ray.ThreadID)

		cosTheta := 1 - u1*(1-cosThetaMax)
		sinTheta := float32(math.Sqrt(float64(1 - cosTheta*cosTheta)))
		phi := float64(u2) * 2 * math.Pi
		x := float32(math.Cos(phi)) * sinTheta
		y := float32(math.Sin(phi)) * sinTheta

		direction := tangent.Scale(x).Add(bitangent.Scale(y)).Add(reflection.Scale(cosTheta))
		if direction.Dot(hit.Normal) < 0 {
			continue
		}
		child := geom.NewRay(origin, direction, ray.Bounce+1, ray.ThreadID)
		sum = sum.Add(world.GetColor(child))
		valid++
	}
	if valid == 0 {
		return geom.Vector{}
	}
	mean := sum.Scale(1 / float32(valid))
	return mean.Mul(m.Color)
}
