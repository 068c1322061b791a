// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package viewer defines the interactive display contract: a thin
// adapter between a progressively-rendered World and a window able to
// present its framebuffer and report user input. Grounded on
// gazed-vu/device/device.go's Device/Pressed shape, with the native OS
// backend dropped — scene construction and the interactive display
// layer are explicit external collaborators, not rendering-core code.
package viewer

// World is the subset of render.World the viewer drives each frame.
type World interface {
	Render()
	Rebalance()
	ClearFramebuffer()
	GetImageBuffer(alpha bool) []byte
	Width() int
	Height() int
}

// Device wraps OS-specific window and input handling. The expected
// usage, unchanged from the teacher's Device contract:
//
//	dev.Open()
//	for dev.IsAlive() {
//	    pressed := dev.Update()
//	    // drive the World from pressed, then present its framebuffer.
//	    dev.SwapBuffers()
//	}
//	dev.Dispose()
type Device interface {
	Open()
	Dispose()
	IsAlive() bool
	Size() (x, y, width, height int)

	// SwapBuffers presents buf, a tightly packed RGB or RGBA image of
	// the given width and height, produced by World.GetImageBuffer.
	SwapBuffers(buf []byte, width, height int)

	Update() *Pressed
}

// Pressed communicates current user input: which keys are down and for
// how long, the mouse location, and whether the window gained focus or
// was resized since the last poll. Mirrors device.Pressed's duration
// convention: positive means still held, negative means released since
// the last poll.
type Pressed struct {
	Mx, My  int
	Scroll  int
	Down    map[int]int
	Focus   bool
	Resized bool
}

// Key codes shared by a Device implementation and a move function. Loop
// itself checks only KeyQuit; the movement keys are left to move. Values
// are arbitrary and only need to be consistent with a Device implementation.
const (
	KeyForward = iota
	KeyBack
	KeyLeft
	KeyRight
	KeyPitchUp
	KeyPitchDown
	KeyYawLeft
	KeyYawRight
	KeyQuit
)

// Camera is the subset of camera.EyeAngle the interactive loop moves.
type Camera interface {
	SetAngle(pitch, yaw, roll float32)
}

// Loop drives one interactive session: open the device, and on every
// iteration poll input, apply any camera move through move, render one
// pass, rebalance, and present. move reports whether it changed the
// camera, in which case the framebuffer's progressive accumulation is
// reset before the next pass. Loop returns when the device reports it
// is no longer alive or a KeyQuit press is seen.
func Loop(dev Device, world World, move func(p *Pressed) (moved bool)) {
	dev.Open()
	defer dev.Dispose()

	for dev.IsAlive() {
		pressed := dev.Update()
		if pressed == nil {
			break
		}
		if d, ok := pressed.Down[KeyQuit]; ok && d > 0 {
			break
		}

		moved := pressed.Resized
		if move != nil && move(pressed) {
			moved = true
		}
		if moved {
			world.ClearFramebuffer()
		}

		world.Render()
		world.Rebalance()

		buf := world.GetImageBuffer(false)
		dev.SwapBuffers(buf, world.Width(), world.Height())
	}
}
