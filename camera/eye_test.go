// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package camera

import (
	"math"
	"testing"

	"github.com/ehwan/raytracing/geom"
)

func TestEyeWorldOfIdentity(t *testing.T) {
	e := NewEye()
	e.Position = geom.V(1, 2, 3)
	p := e.WorldOf(geom.V(1, 0, 0))
	if !p.Aeq(geom.V(2, 2, 3)) {
		t.Errorf("expected (2,2,3), got %v", p)
	}
}

func TestEyeWorldOfPixelCenterIsOnAxis(t *testing.T) {
	e := NewEye()
	e.SetPerspective(float32(math.Pi/2), 1, 1)
	p := e.WorldOfPixel(0.5, 0.5)
	if !p.Aeq(geom.V(0, 0, -1)) {
		t.Errorf("expected center pixel to land at (0,0,-1), got %v", p)
	}
}

func TestEyePrimaryRayPointsForward(t *testing.T) {
	e := NewEye()
	e.SetPerspective(float32(math.Pi/2), 1, 1)
	ray := e.PrimaryRay(0.5, 0.5, 3)
	if !ray.Direction.Aeq(geom.V(0, 0, -1)) {
		t.Errorf("expected ray direction (0,0,-1), got %v", ray.Direction)
	}
	if ray.ThreadID != 3 {
		t.Errorf("expected threadID 3, got %d", ray.ThreadID)
	}
}
