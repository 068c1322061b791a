// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package imageio implements the image output adapter: encoding an
// accumulated RGB8/RGBA8 framebuffer to PNG, and decoding PNGs back for
// tests and tooling. Grounded on gazed-vu/load/png.go's thin wrapper
// around image/png, adapted from a texture-loading helper into a
// path-traced-framebuffer writer.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
)

// WritePNG encodes a row-major, top-to-bottom RGB8 or RGBA8 buffer
// (stride 3 or 4 bytes per pixel) as a PNG written to w.
func WritePNG(w io.Writer, buf []byte, width, height int, alpha bool) error {
	stride := 3
	if alpha {
		stride = 4
	}
	if len(buf) != width*height*stride {
		err := fmt.Errorf("imageio: buffer length %d does not match %dx%d at stride %d", len(buf), width, height, stride)
		slog.Error("png encode failed", "error", err)
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * stride
			a := byte(255)
			if alpha {
				a = buf[i+3]
			}
			img.SetRGBA(x, y, color.RGBA{R: buf[i], G: buf[i+1], B: buf[i+2], A: a})
		}
	}
	return png.Encode(w, img)
}

// ReadPNG decodes a PNG and returns its pixels as a row-major, top-to-
// bottom RGB8 buffer alongside its dimensions.
func ReadPNG(r io.Reader) (buf []byte, width, height int, err error) {
	img, err := png.Decode(r)
	if err != nil {
		slog.Error("png decode failed", "error", err)
		return nil, 0, 0, err
	}
	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()
	buf = make([]byte, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r32, g32, b32, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*width + x) * 3
			buf[i+0] = byte(r32 >> 8)
			buf[i+1] = byte(g32 >> 8)
			buf[i+2] = byte(b32 >> 8)
		}
	}
	return buf, width, height, nil
}
