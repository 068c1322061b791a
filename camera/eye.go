// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package camera implements the pinhole camera: position, orthonormal
// basis, perspective parameters, and the pixel-to-world-ray mapping used
// to construct primary rays. Grounded on original_source/camera.hpp's Eye
// and EyeAngle classes.
package camera

import (
	"math"

	"github.com/ehwan/raytracing/geom"
)

// Eye holds a position and an orthonormal basis (X, Y, Z) where -Z is the
// view direction, plus perspective parameters.
type Eye struct {
	Position geom.Vector
	X, Y, Z  geom.Vector

	tanHalfFOV float32
	aspect     float32
	near       float32
}

// NewEye returns an Eye at the origin looking down -Z with X right, Y up.
func NewEye() Eye {
	return Eye{
		Position: geom.V(0, 0, 0),
		X:        geom.V(1, 0, 0),
		Y:        geom.V(0, 1, 0),
		Z:        geom.V(0, 0, 1),
	}
}

// SetPerspective sets the vertical field of view theta (radians), the
// aspect ratio, and the near-plane distance.
func (e *Eye) SetPerspective(theta, aspect, near float32) {
	e.tanHalfFOV = float32(math.Tan(float64(theta) * 0.5))
	e.aspect = aspect
	e.near = near
}

// WorldOf maps a point in the eye's local frame to world space:
// position + local.x*X + local.y*Y + local.z*Z.
func (e Eye) WorldOf(local geom.Vector) geom.Vector {
	return e.X.Scale(local.X).Add(e.Y.Scale(local.Y)).Add(e.Z.Scale(local.Z)).Add(e.Position)
}

// WorldOfPixel maps normalized pixel coordinates i,j in [0,1] to the
// corresponding point on the near plane, in world space.
func (e Eye) WorldOfPixel(i, j float32) geom.Vector {
	h := e.tanHalfFOV * e.near
	w := h * e.aspect
	local := geom.V(w*(i-0.5), -h*(j-0.5), -e.near)
	return e.WorldOf(local)
}

// PrimaryRay builds the primary ray through normalized pixel coordinates
// i,j, with bounce 0 and the given owning thread.
func (e Eye) PrimaryRay(i, j float32, threadID int) geom.Ray {
	origin := e.WorldOf(geom.V(0, 0, 0))
	target := e.WorldOfPixel(i, j)
	return geom.NewRay(origin, target.Sub(origin), 0, threadID)
}
