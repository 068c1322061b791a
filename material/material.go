// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package material implements the reflection model library: the
// surface-interaction contracts that turn a ray/hit pair into outgoing
// radiance, recursively invoking the owning world for child rays.
//
// Grounded on original_source/reflection.cpp's ReflectionModel variants
// (MirrorReflection, FuzzyMirrorReflection, DiffuseReflection, Refragtion,
// CombineReflection, FaceReflection, DirectionalLightSource), restructured
// as a Go interface + concrete-struct tagged union the way
// gazed-vu/physics/shape.go structures its Shape variants.
package material

import "github.com/ehwan/raytracing/geom"

// World is the subset of the renderer a material needs to recurse:
// evaluating a child ray's color and drawing from a worker's random
// stream. Kept minimal to avoid a dependency cycle between material and
// render.
type World interface {
	GetColor(ray geom.Ray) geom.Vector
	Random01(threadID int) float32
}

// Material maps a surface interaction to outgoing radiance.
type Material interface {
	GetColor(ray geom.Ray, hit geom.Hit, world World) geom.Vector
}

// childOrigin is the point on the surface where child rays originate.
func childOrigin(ray geom.Ray, hit geom.Hit) geom.Vector {
	return ray.At(hit.T)
}
