// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package viewer

import "testing"

type fakeWorld struct {
	renders    int
	rebalances int
	clears     int
}

func (w *fakeWorld) Render()              { w.renders++ }
func (w *fakeWorld) Rebalance()           { w.rebalances++ }
func (w *fakeWorld) ClearFramebuffer()    { w.clears++ }
func (w *fakeWorld) GetImageBuffer(alpha bool) []byte { return []byte{1, 2, 3} }
func (w *fakeWorld) Width() int           { return 1 }
func (w *fakeWorld) Height() int          { return 1 }

type fakeDevice struct {
	frames    []Pressed
	i         int
	opened    bool
	disposed  bool
	swapCount int
}

func (d *fakeDevice) Open()                      { d.opened = true }
func (d *fakeDevice) Dispose()                    { d.disposed = true }
func (d *fakeDevice) IsAlive() bool                { return d.i < len(d.frames) }
func (d *fakeDevice) Size() (x, y, w, h int)       { return 0, 0, 1, 1 }
func (d *fakeDevice) SwapBuffers(buf []byte, w, h int) { d.swapCount++ }
func (d *fakeDevice) Update() *Pressed {
	if d.i >= len(d.frames) {
		return nil
	}
	p := d.frames[d.i]
	d.i++
	return &p
}

func TestLoopRendersEachFrameUntilNotAlive(t *testing.T) {
	dev := &fakeDevice{frames: []Pressed{{}, {}, {}}}
	world := &fakeWorld{}
	Loop(dev, world, nil)

	if !dev.opened || !dev.disposed {
		t.Errorf("expected Open and Dispose both called, got opened=%v disposed=%v", dev.opened, dev.disposed)
	}
	if world.renders != 3 {
		t.Errorf("expected 3 renders, got %d", world.renders)
	}
	if dev.swapCount != 3 {
		t.Errorf("expected 3 buffer swaps, got %d", dev.swapCount)
	}
}

func TestLoopStopsOnQuitKey(t *testing.T) {
	dev := &fakeDevice{frames: []Pressed{
		{},
		{Down: map[int]int{KeyQuit: 1}},
		{}, // never reached
	}}
	world := &fakeWorld{}
	Loop(dev, world, nil)

	if world.renders != 1 {
		t.Errorf("expected loop to stop before the quit frame renders, got %d renders", world.renders)
	}
}

func TestLoopClearsFramebufferOnlyWhenCameraMoved(t *testing.T) {
	dev := &fakeDevice{frames: []Pressed{{}, {}, {}}}
	world := &fakeWorld{}
	calls := 0
	move := func(p *Pressed) bool {
		calls++
		return calls == 2 // only the second frame reports a camera move
	}
	Loop(dev, world, move)

	if world.clears != 1 {
		t.Errorf("expected exactly 1 ClearFramebuffer call, got %d", world.clears)
	}
}

func TestLoopClearsFramebufferOnResize(t *testing.T) {
	dev := &fakeDevice{frames: []Pressed{{Resized: true}}}
	world := &fakeWorld{}
	Loop(dev, world, nil)

	if world.clears != 1 {
		t.Errorf("expected a resize to clear the framebuffer, got %d clears", world.clears)
	}
}
