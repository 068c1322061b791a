// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package meshio

import (
	"encoding/binary"
	"io"
	"log/slog"

	"github.com/ehwan/raytracing/geom"
)

// Frame is one marching-cubes mesh snapshot: a timestamp and the
// positions, normals, and triangle vertex indices extracted at that
// simulation time.
type Frame struct {
	T         float32
	Positions []geom.Vector
	Normals   []geom.Vector
	Indices   []uint32
}

// frameHeader mirrors the on-wire layout: t, nvert, ntri.
type frameHeader struct {
	T     float32
	NVert int32
	NTri  int32
}

func readHeader(r io.Reader) (frameHeader, error) {
	var h frameHeader
	if err := binary.Read(r, binary.LittleEndian, &h.T); err != nil {
		return h, err
	}
	if err := binary.Read(r, binary.LittleEndian, &h.NVert); err != nil {
		return h, err
	}
	if err := binary.Read(r, binary.LittleEndian, &h.NTri); err != nil {
		return h, err
	}
	return h, nil
}

func payloadLen(h frameHeader) int64 {
	positions := int64(h.NVert) * 3 * 4
	normals := int64(h.NVert) * 3 * 4
	indices := int64(h.NTri) * 3 * 4
	return positions + normals + indices
}

// ReadFrame decodes one frame: t, nvert, ntri, then nvert positions,
// nvert normals, and ntri triangles of three uint32 indices.
func ReadFrame(r io.Reader) (Frame, error) {
	h, err := readHeader(r)
	if err != nil {
		slog.Error("marching-cubes frame decode failed", "error", err)
		return Frame{}, err
	}

	positions := make([]geom.Vector, h.NVert)
	if err := readVectors(r, positions); err != nil {
		slog.Error("marching-cubes frame decode failed", "error", err)
		return Frame{}, err
	}
	normals := make([]geom.Vector, h.NVert)
	if err := readVectors(r, normals); err != nil {
		slog.Error("marching-cubes frame decode failed", "error", err)
		return Frame{}, err
	}
	indices := make([]uint32, h.NTri*3)
	if err := binary.Read(r, binary.LittleEndian, indices); err != nil {
		slog.Error("marching-cubes frame decode failed", "error", err)
		return Frame{}, err
	}

	return Frame{T: h.T, Positions: positions, Normals: normals, Indices: indices}, nil
}

func readVectors(r io.Reader, out []geom.Vector) error {
	raw := make([]float32, len(out)*3)
	if err := binary.Read(r, binary.LittleEndian, raw); err != nil {
		return err
	}
	for i := range out {
		out[i] = geom.V(raw[3*i], raw[3*i+1], raw[3*i+2])
	}
	return nil
}

// SkipFrame reads one frame's header and discards its payload without
// allocating position/normal/index buffers, the fast path for consumers
// scanning past frames with t < T_min.
func SkipFrame(r io.Reader) (t float32, err error) {
	h, err := readHeader(r)
	if err != nil {
		if err != io.EOF {
			slog.Error("marching-cubes frame skip failed", "error", err)
		}
		return 0, err
	}
	_, err = io.CopyN(io.Discard, r, payloadLen(h))
	if err != nil {
		slog.Error("marching-cubes frame skip failed", "error", err)
	}
	return h.T, err
}

// ReadFramesFrom reads successive frames from r, decoding only those
// with t >= tMin and skipping the payload of earlier ones, until r is
// exhausted.
func ReadFramesFrom(r io.Reader, tMin float32) ([]Frame, error) {
	var frames []Frame
	for {
		h, err := readHeader(r)
		if err == io.EOF {
			return frames, nil
		}
		if err != nil {
			slog.Error("marching-cubes stream decode failed", "error", err)
			return frames, err
		}
		if h.T < tMin {
			if _, err := io.CopyN(io.Discard, r, payloadLen(h)); err != nil {
				slog.Error("marching-cubes stream decode failed", "error", err)
				return frames, err
			}
			continue
		}

		positions := make([]geom.Vector, h.NVert)
		if err := readVectors(r, positions); err != nil {
			slog.Error("marching-cubes stream decode failed", "error", err)
			return frames, err
		}
		normals := make([]geom.Vector, h.NVert)
		if err := readVectors(r, normals); err != nil {
			slog.Error("marching-cubes stream decode failed", "error", err)
			return frames, err
		}
		indices := make([]uint32, h.NTri*3)
		if err := binary.Read(r, binary.LittleEndian, indices); err != nil {
			slog.Error("marching-cubes stream decode failed", "error", err)
			return frames, err
		}
		frames = append(frames, Frame{T: h.T, Positions: positions, Normals: normals, Indices: indices})
	}
}
