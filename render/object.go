// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import (
	"github.com/ehwan/raytracing/geom"
	"github.com/ehwan/raytracing/material"
)

// Object pairs a geometry primitive with the material that shades it.
// Both are shared-immutable references borrowed by the World for its
// lifetime. Grounded on original_source/src/world.hpp's Object struct
// (GeometryObject* + ReflectionModel*).
type Object struct {
	Geometry geom.Geometry
	Material material.Material
}

// Raycast satisfies spatial.Hittable by delegating to the geometry.
func (o Object) Raycast(ray geom.Ray) (t float32, normal geom.Vector, ok bool) {
	return o.Geometry.Raycast(ray)
}
