// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package camera

import (
	"math"

	"github.com/ehwan/raytracing/geom"
)

const (
	halfPi = math.Pi / 2
	fullPi = math.Pi
	twoPi  = 2 * math.Pi
)

// EyeAngle is an Eye driven by Euler angles. Pitch is clamped to
// [-pi/2, pi/2], yaw is wrapped to [0, 2*pi), and roll is clamped to
// [-pi, pi]; the basis is recomputed from scratch on every assignment.
// Grounded on original_source/camera.hpp's EyeAngle::angle() setter; basis
// composition uses a quaternion the way the teacher's own camera.go
// composes view orientation with lin.Q, rather than the source's inline
// trig — see quaternion.go for the float32 extraction of that logic.
type EyeAngle struct {
	Eye
	Pitch, Yaw, Roll float32
}

// NewEyeAngle returns an EyeAngle at the origin with zero Euler angles.
func NewEyeAngle() EyeAngle {
	return EyeAngle{Eye: NewEye()}
}

// SetAngle clamps/wraps pitch, yaw, and roll and recomputes the
// orthonormal basis.
func (e *EyeAngle) SetAngle(pitch, yaw, roll float32) {
	e.Pitch = clampf(pitch, -halfPi, halfPi)
	e.Yaw = wrapf(yaw, twoPi)
	e.Roll = clampf(roll, -fullPi, fullPi)

	var qYaw, qPitch, qRoll quaternion
	qYaw.setAa(0, 1, 0, e.Yaw)
	qPitch.setAa(1, 0, 0, e.Pitch)
	qRoll.setAa(0, 0, 1, e.Roll)

	var pitchRoll, combined quaternion
	pitchRoll.mult(qPitch, qRoll)
	combined.mult(qYaw, pitchRoll)

	e.X = combined.rotate(geom.V(1, 0, 0))
	e.Y = combined.rotate(geom.V(0, 1, 0))
	e.Z = combined.rotate(geom.V(0, 0, 1))
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrapf wraps v into [0, period).
func wrapf(v, period float32) float32 {
	m := float32(math.Mod(float64(v), float64(period)))
	if m < 0 {
		m += period
	}
	return m
}
