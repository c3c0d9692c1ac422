package models

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/orrery/pkg/render"
)

func TestLoadGLBInvalidPath(t *testing.T) {
	if _, err := LoadGLB("/nonexistent/path.glb"); err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestGLTFLoaderCreation(t *testing.T) {
	if !NewGLTFLoader().CalculateNormals {
		t.Error("CalculateNormals should default to true")
	}
}

// writeTriangleGLB saves a one-triangle document with a red material.
func writeTriangleGLB(t *testing.T) string {
	t.Helper()

	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}})
	idx := modeler.WriteIndices(doc, []uint16{0, 1, 2})
	mat := 0
	doc.Materials = []*gltf.Material{{
		Name:                 "red",
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{BaseColorFactor: &[4]float64{1, 0, 0, 1}},
	}}
	doc.Meshes = []*gltf.Mesh{{
		Name: "tri",
		Primitives: []*gltf.Primitive{{
			Indices:    &idx,
			Material:   &mat,
			Attributes: map[string]int{gltf.POSITION: pos},
		}},
	}}

	path := filepath.Join(t.TempDir(), "tri.glb")
	if err := gltf.SaveBinary(doc, path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadGLB(t *testing.T) {
	m, err := Load(writeTriangleGLB(t))
	if err != nil {
		t.Fatal(err)
	}
	if m.VertexCount() != 3 || m.TriangleCount() != 1 {
		t.Fatalf("got %d vertices, %d triangles", m.VertexCount(), m.TriangleCount())
	}
	if m.BoundsMax.X != 2 || m.BoundsMax.Y != 2 {
		t.Errorf("bounds max = %v", m.BoundsMax)
	}
	// No normals in the file: computed from the face.
	if n := m.Vertices[0].Normal; n.Z != 1 {
		t.Errorf("normal = %v, want +Z", n)
	}
	soup := m.VertexArray()
	if !soup[0].HasColor || soup[0].Color != render.RGB(255, 0, 0) {
		t.Errorf("material color = %+v", soup[0])
	}
}
