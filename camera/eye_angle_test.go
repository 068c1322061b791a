// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package camera

import (
	"math"
	"testing"

	"github.com/ehwan/raytracing/geom"
)

func TestEyeAnglePitchClamped(t *testing.T) {
	e := NewEyeAngle()
	e.SetAngle(float32(math.Pi), 0, 0)
	if e.Pitch > float32(math.Pi/2)+1e-3 {
		t.Errorf("expected pitch clamped to pi/2, got %f", e.Pitch)
	}
}

func TestEyeAngleYawWrapped(t *testing.T) {
	e := NewEyeAngle()
	e.SetAngle(0, float32(-math.Pi/2), 0)
	if e.Yaw < 0 || e.Yaw >= float32(2*math.Pi) {
		t.Errorf("expected yaw wrapped into [0,2pi), got %f", e.Yaw)
	}
}

func TestEyeAngleRollClamped(t *testing.T) {
	e := NewEyeAngle()
	e.SetAngle(0, 0, float32(10))
	if e.Roll > float32(math.Pi)+1e-3 {
		t.Errorf("expected roll clamped to pi, got %f", e.Roll)
	}
}

func TestEyeAngleBasisStaysOrthonormal(t *testing.T) {
	e := NewEyeAngle()
	e.SetAngle(0.4, 1.2, -0.3)
	if !aeqF(e.X.Len(), 1) || !aeqF(e.Y.Len(), 1) || !aeqF(e.Z.Len(), 1) {
		t.Errorf("expected unit-length basis vectors, got X=%v Y=%v Z=%v", e.X, e.Y, e.Z)
	}
	if !aeqF(e.X.Dot(e.Y), 0) || !aeqF(e.Y.Dot(e.Z), 0) || !aeqF(e.X.Dot(e.Z), 0) {
		t.Errorf("expected orthogonal basis vectors, got X=%v Y=%v Z=%v", e.X, e.Y, e.Z)
	}
}

func TestEyeAngleZeroAngleIsIdentityBasis(t *testing.T) {
	e := NewEyeAngle()
	e.SetAngle(0, 0, 0)
	if !e.X.Aeq(geom.V(1, 0, 0)) || !e.Y.Aeq(geom.V(0, 1, 0)) || !e.Z.Aeq(geom.V(0, 0, 1)) {
		t.Errorf("expected identity basis at zero angle, got X=%v Y=%v Z=%v", e.X, e.Y, e.Z)
	}
}

func aeqF(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-3
}
