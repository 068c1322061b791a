// Copyright © 2026 The Raytracing Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package meshio

import (
	"bytes"
	"testing"

	"github.com/ehwan/raytracing/geom"
)

func TestSTLRoundTrip(t *testing.T) {
	triangles := []Triangle{
		{Normal: geom.V(0, 0, 1), P0: geom.V(0, 0, 0), P1: geom.V(1, 0, 0), P2: geom.V(0, 1, 0)},
		{Normal: geom.V(0, 1, 0), P0: geom.V(0, 0, 0), P1: geom.V(0, 0, 1), P2: geom.V(1, 0, 0)},
	}

	var buf bytes.Buffer
	if err := WriteSTL(&buf, triangles); err != nil {
		t.Fatalf("WriteSTL failed: %v", err)
	}

	got, err := ReadSTL(&buf)
	if err != nil {
		t.Fatalf("ReadSTL failed: %v", err)
	}
	if len(got) != len(triangles) {
		t.Fatalf("expected %d triangles, got %d", len(triangles), len(got))
	}
	for i := range triangles {
		if !got[i].Normal.Eq(triangles[i].Normal) || !got[i].P0.Eq(triangles[i].P0) ||
			!got[i].P1.Eq(triangles[i].P1) || !got[i].P2.Eq(triangles[i].P2) {
			t.Errorf("triangle %d round-trip mismatch: got %+v, want %+v", i, got[i], triangles[i])
		}
	}
}

func TestReadSTLRejectsASCII(t *testing.T) {
	r := bytes.NewReader([]byte("solid mymesh\nfacet normal 0 0 1\n"))
	if _, err := ReadSTL(r); err != ErrASCIISTL {
		t.Errorf("expected ErrASCIISTL, got %v", err)
	}
}

func TestVertexNormalsAveragesSharedVertex(t *testing.T) {
	shared := geom.V(0, 0, 0)
	triangles := []Triangle{
		{Normal: geom.V(0, 0, 1), P0: shared, P1: geom.V(1, 0, 0), P2: geom.V(0, 1, 0)},
		{Normal: geom.V(0, 1, 0), P0: shared, P1: geom.V(0, 0, 1), P2: geom.V(1, 0, 0)},
	}
	normals := VertexNormals(triangles)
	// index 0 and index 3 both correspond to `shared`, averaging (0,0,1) and (0,1,0).
	want := geom.V(0, 1, 1).Unit()
	if !normals[0].Aeq(want) {
		t.Errorf("expected shared-vertex normal %v, got %v", want, normals[0])
	}
	if !normals[3].Aeq(want) {
		t.Errorf("expected shared-vertex normal %v, got %v", want, normals[3])
	}
}
