// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import "math"

// Hit is the result of a raycast: a parameter t > 0, a unit surface
// normal, and an opaque Object reference. A "no hit" Hit has T set to
// +Inf and Object nil.
type Hit struct {
	T      float32
	Normal Vector
	Object any
}

// NoHit is the sentinel result of a raycast that found nothing.
func NoHit() Hit { return Hit{T: float32(math.Inf(1))} }

// Found reports whether the hit struck something.
func (h Hit) Found() bool { return h.Object != nil }
