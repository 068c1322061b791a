// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import (
	"testing"

	"github.com/ehwan/raytracing/camera"
	"github.com/ehwan/raytracing/geom"
	"github.com/ehwan/raytracing/material"
)

func newTestWorld(w, h, threads int) *World {
	world := &World{MaxBounce: 2, ShootCount: 1}
	world.Init(w, h, threads, 42)
	eye := camera.NewEye()
	eye.SetPerspective(1.0, 1.0, 1.0)
	world.Camera = eye
	return world
}

func TestEmptySceneRendersAllZero(t *testing.T) {
	world := newTestWorld(4, 4, 2)
	world.Render()
	buf := world.GetImageBuffer(false)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("expected all-zero image for empty scene, byte %d = %d", i, b)
		}
	}
}

func TestGetColorZeroAtBounceBudget(t *testing.T) {
	world := newTestWorld(2, 2, 1)
	ray := geom.NewRay(geom.V(0, 0, 0), geom.V(0, 0, -1), world.MaxBounce, 0)
	got := world.GetColor(ray)
	if !got.Eq(geom.Vector{}) {
		t.Errorf("expected zero color when bounce >= max_bounce, got %v", got)
	}
}

func TestInsertAndHitLightSource(t *testing.T) {
	world := newTestWorld(1, 1, 1)
	sphere := geom.Sphere{Center: geom.V(0, 0, -5), Radius: 1}
	obj := Object{Geometry: sphere, Material: material.LightSource{Color: geom.V(1, 1, 1)}}
	world.Insert(obj)

	ray := geom.NewRay(geom.V(0, 0, 0), geom.V(0, 0, -1), 0, 0)
	got := world.GetColor(ray)
	if !got.Aeq(geom.V(1, 1, 1)) {
		t.Errorf("expected light source color (1,1,1), got %v", got)
	}
}

func TestSampleCountCapped(t *testing.T) {
	world := newTestWorld(1, 1, 1)
	world.sampleCount = maxSampleCount
	world.Render()
	if world.sampleCount != maxSampleCount {
		t.Errorf("expected sample_count to stay capped at %d, got %d", maxSampleCount, world.sampleCount)
	}
}

func TestRebalancePartitionCoversAllPixelsOnce(t *testing.T) {
	world := newTestWorld(10, 10, 3)
	for i := range world.timing {
		world.timing[i] = float32(i % 5)
	}
	world.Rebalance()

	covered := make([]bool, world.width*world.height)
	for _, wk := range world.workers {
		for i := wk.begin; i < wk.end; i++ {
			if covered[i] {
				t.Fatalf("pixel %d covered by more than one worker", i)
			}
			covered[i] = true
		}
	}
	for i, c := range covered {
		if !c {
			t.Errorf("pixel %d not covered by any worker after rebalance", i)
		}
	}
}

func TestRebalanceUniformTimingSplitsEvenly(t *testing.T) {
	world := newTestWorld(100, 100, 2)
	for i := range world.timing {
		world.timing[i] = 1.0
	}
	world.Rebalance()

	// The upper_bound-style strict-greater-than search lands one pixel past
	// the exact midpoint when the prefix sum hits the target boundary
	// exactly; spec names [0,5000)/[5000,10000) as the nominal split.
	if world.workers[0].begin != 0 || world.workers[0].end < 4990 || world.workers[0].end > 5010 {
		t.Errorf("expected first worker range near [0,5000), got [%d,%d)", world.workers[0].begin, world.workers[0].end)
	}
	if world.workers[1].begin != world.workers[0].end || world.workers[1].end != 10000 {
		t.Errorf("expected second worker range [%d,10000), got [%d,%d)", world.workers[0].end, world.workers[1].begin, world.workers[1].end)
	}
}

func TestRebalanceSkewedTimingFavorsHeavyPixels(t *testing.T) {
	world := newTestWorld(100, 100, 2)
	for i := range world.timing {
		if i < 1000 {
			world.timing[i] = 1.0
		} else {
			world.timing[i] = 0.0
		}
	}
	world.Rebalance()

	// Spec names this split as "approximately [0,500) and [500,10000)": the
	// strict-greater-than boundary search lands one pixel past 500.
	if world.workers[0].begin != 0 || world.workers[0].end < 490 || world.workers[0].end > 510 {
		t.Errorf("expected first worker range near [0,500), got [%d,%d)", world.workers[0].begin, world.workers[0].end)
	}
	if world.workers[1].begin != world.workers[0].end || world.workers[1].end != 10000 {
		t.Errorf("expected second worker range [%d,10000), got [%d,%d)", world.workers[0].end, world.workers[1].begin, world.workers[1].end)
	}
}

func TestClearFramebufferResetsSampleCount(t *testing.T) {
	world := newTestWorld(2, 2, 1)
	world.Render()
	if world.SampleCount() == 0 {
		t.Fatalf("expected sample_count > 0 after a render pass")
	}
	world.ClearFramebuffer()
	if world.SampleCount() != 0 {
		t.Errorf("expected sample_count reset to 0, got %d", world.SampleCount())
	}
}

func TestRunningAverageConvergesToConstantColor(t *testing.T) {
	world := newTestWorld(1, 1, 1)
	sphere := geom.Sphere{Center: geom.V(0, 0, -5), Radius: 5}
	obj := Object{Geometry: sphere, Material: material.LightSource{Color: geom.V(0.5, 0.5, 0.5)}}
	world.Insert(obj)

	for pass := 0; pass < 20; pass++ {
		world.Render()
	}
	got := world.framebuffer[0]
	if !got.Aeq(geom.V(0.5, 0.5, 0.5)) {
		t.Errorf("expected running average to converge to (0.5,0.5,0.5), got %v", got)
	}
}
