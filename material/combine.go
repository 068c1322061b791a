// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package material

import "github.com/ehwan/raytracing/geom"

// Combine blends two sub-materials: s1*r1(...) + s2*r2(...). Grounded on
// CombineReflection::get_color.
type Combine struct {
	R1, R2 Material
	S1, S2 float32
}

func (m Combine) GetColor(ray geom.Ray, hit geom.Hit, world World) geom.Vector {
	c1 := m.R1.GetColor(ray, hit, world)
	c2 := m.R2.GetColor(ray, hit, world)
	return c1.Scale(m.S1).Add(c2.Scale(m.S2))
}

// Multiply composes two sub-materials by element-wise product, used to
// tint a procedural pattern (e.g. Checker) by a reflectance model.
// Supplemented per spec §9: the procedural-color path is exposed only
// through this composition, never attached to the geometry itself.
type Multiply struct {
	R1, R2 Material
}

func (m Multiply) GetColor(ray geom.Ray, hit geom.Hit, world World) geom.Vector {
	c1 := m.R1.GetColor(ray, hit, world)
	c2 := m.R2.GetColor(ray, hit, world)
	return c1.Mul(c2)
}
