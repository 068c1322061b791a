// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package meshio implements the external mesh adapters: a binary
// triangle-soup (STL-style) loader/writer and a marching-cubes frame
// stream reader, both out of the rendering core per spec §6.
package meshio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"log/slog"

	"github.com/ehwan/raytracing/geom"
)

// ErrASCIISTL is returned when the input begins with the ASCII STL
// "solid" prefix, which this reader does not support.
var ErrASCIISTL = errors.New("meshio: ASCII STL not supported")

// Triangle is a decoded mesh face: three positions and the face normal
// read from the file (not yet per-vertex).
type Triangle struct {
	Normal     geom.Vector
	P0, P1, P2 geom.Vector
}

// ReadSTL parses a binary triangle-soup mesh: an 80-byte header (ignored),
// a little-endian uint32 triangle count, then per triangle a float32x3
// normal, three float32x3 positions, and a uint16 attribute (ignored).
// A "solid" ASCII prefix in the first five bytes is treated as
// unsupported rather than guessed at.
func ReadSTL(r io.Reader) ([]Triangle, error) {
	br := bufio.NewReader(r)

	prefix, err := br.Peek(5)
	if err == nil && string(prefix) == "solid" {
		slog.Error("stl decode failed", "error", ErrASCIISTL)
		return nil, ErrASCIISTL
	}

	header := make([]byte, 80)
	if _, err := io.ReadFull(br, header); err != nil {
		slog.Error("stl decode failed", "error", err)
		return nil, err
	}

	var count uint32
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		slog.Error("stl decode failed", "error", err)
		return nil, err
	}

	triangles := make([]Triangle, count)
	for i := range triangles {
		var raw [12]float32
		if err := binary.Read(br, binary.LittleEndian, &raw); err != nil {
			slog.Error("stl decode failed", "error", err, "triangle", i)
			return nil, err
		}
		var attr uint16
		if err := binary.Read(br, binary.LittleEndian, &attr); err != nil {
			slog.Error("stl decode failed", "error", err, "triangle", i)
			return nil, err
		}
		triangles[i] = Triangle{
			Normal: geom.V(raw[0], raw[1], raw[2]),
			P0:     geom.V(raw[3], raw[4], raw[5]),
			P1:     geom.V(raw[6], raw[7], raw[8]),
			P2:     geom.V(raw[9], raw[10], raw[11]),
		}
	}
	return triangles, nil
}

// WriteSTL writes triangles in the same binary layout ReadSTL parses,
// zeroing the 80-byte header and the per-triangle attribute.
func WriteSTL(w io.Writer, triangles []Triangle) error {
	header := make([]byte, 80)
	if _, err := w.Write(header); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(triangles))); err != nil {
		return err
	}
	for _, tr := range triangles {
		raw := [12]float32{
			tr.Normal.X, tr.Normal.Y, tr.Normal.Z,
			tr.P0.X, tr.P0.Y, tr.P0.Z,
			tr.P1.X, tr.P1.Y, tr.P1.Z,
			tr.P2.X, tr.P2.Y, tr.P2.Z,
		}
		if err := binary.Write(w, binary.LittleEndian, raw); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return err
		}
	}
	return nil
}

// VertexNormals computes the per-vertex normal as the normalized mean of
// face normals shared by vertices within squared-distance tolerance 1e-6,
// the optional post-pass named in spec §6.
func VertexNormals(triangles []Triangle) []geom.Vector {
	positions := make([]geom.Vector, 0, len(triangles)*3)
	normals := make([]geom.Vector, 0, len(triangles)*3)
	for _, tr := range triangles {
		positions = append(positions, tr.P0, tr.P1, tr.P2)
		normals = append(normals, tr.Normal, tr.Normal, tr.Normal)
	}

	const tolerance = 1e-6
	out := make([]geom.Vector, len(positions))
	for i, p := range positions {
		sum := geom.Vector{}
		for j, q := range positions {
			if p.Sub(q).LenSq() < tolerance {
				sum = sum.Add(normals[j])
			}
		}
		out[i] = sum.Unit()
	}
	return out
}
