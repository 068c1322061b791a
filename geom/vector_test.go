// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import "testing"

func TestVectorDot(t *testing.T) {
	a, b := V(1, 2, 3), V(4, -5, 6)
	if got, want := a.Dot(b), float32(12.0); got != want {
		t.Errorf("expected dot %f, got %f", want, got)
	}
}

func TestVectorCross(t *testing.T) {
	x, y := V(1, 0, 0), V(0, 1, 0)
	if got, want := x.Cross(y), V(0, 0, 1); !got.Eq(want) {
		t.Errorf("expected cross %v, got %v", want, got)
	}
}

func TestVectorUnit(t *testing.T) {
	v := V(3, 4, 0).Unit()
	if got, want := v.Len(), float32(1.0); !aeq(got, want) {
		t.Errorf("expected unit length %f, got %f", want, got)
	}
}

func TestVectorUnitZero(t *testing.T) {
	v := V(0, 0, 0).Unit()
	if !v.Eq(V(0, 0, 0)) {
		t.Errorf("expected zero vector to normalize to itself, got %v", v)
	}
}

func TestVectorMul(t *testing.T) {
	a, b := V(0.5, 0.5, 0.5), V(1, 0.5, 0)
	if got, want := a.Mul(b), V(0.5, 0.25, 0); !got.Aeq(want) {
		t.Errorf("expected elementwise product %v, got %v", want, got)
	}
}
