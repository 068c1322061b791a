// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import (
	"math"
	"testing"
)

func TestNewRayNormalizesDirection(t *testing.T) {
	r := NewRay(V(0, 0, 0), V(3, 4, 0), 1, 2)
	if !aeq(r.Direction.Len(), 1) {
		t.Errorf("expected unit direction, got length %f", r.Direction.Len())
	}
	if r.Bounce != 1 || r.ThreadID != 2 {
		t.Errorf("expected bounce=1 threadID=2, got bounce=%f threadID=%d", r.Bounce, r.ThreadID)
	}
}

func TestNewRayRecipIsInverseDirection(t *testing.T) {
	r := NewRay(V(0, 0, 0), V(1, 0, 0), 0, 0)
	if !aeq(r.Recip.X, 1) {
		t.Errorf("expected Recip.X=1, got %f", r.Recip.X)
	}
	if !math.IsInf(float64(r.Recip.Y), 1) {
		t.Errorf("expected Recip.Y=+Inf for a zero axial component, got %f", r.Recip.Y)
	}
}

func TestRayAt(t *testing.T) {
	r := NewRay(V(1, 2, 3), V(0, 0, -1), 0, 0)
	p := r.At(5)
	if !p.Aeq(V(1, 2, -2)) {
		t.Errorf("expected point (1,2,-2), got %v", p)
	}
}
