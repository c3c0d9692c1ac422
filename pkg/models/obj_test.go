package models

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/orrery/pkg/math3d"
)

const quadOBJ = `# unit quad
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1//1 2//1 3//1 4//1
`

func TestParseOBJQuadFan(t *testing.T) {
	m, err := ParseOBJ(strings.NewReader(quadOBJ), "quad")
	if err != nil {
		t.Fatal(err)
	}
	if m.VertexCount() != 4 || m.TriangleCount() != 2 {
		t.Fatalf("got %d vertices, %d triangles", m.VertexCount(), m.TriangleCount())
	}
	if m.Faces[0].V != [3]int{0, 1, 2} || m.Faces[1].V != [3]int{0, 2, 3} {
		t.Errorf("faces = %v", m.Faces)
	}
	if m.Vertices[2].Normal != math3d.V3(0, 0, 1) {
		t.Errorf("normal = %v", m.Vertices[2].Normal)
	}
	if m.BoundsMin != math3d.V3(0, 0, 0) || m.BoundsMax != math3d.V3(1, 1, 0) {
		t.Errorf("bounds = %v..%v", m.BoundsMin, m.BoundsMax)
	}
}

func TestParseOBJCornerForms(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
vn 0 0 -1
f 1 2/1 3/1/2
f -3 -2 -1
`
	m, err := ParseOBJ(strings.NewReader(src), "corners")
	if err != nil {
		t.Fatal(err)
	}
	if m.TriangleCount() != 2 {
		t.Fatalf("triangles = %d", m.TriangleCount())
	}
	// Corner 3/1/2 carries its own normal, so it is a distinct vertex.
	if m.Vertices[m.Faces[0].V[2]].Normal != math3d.V3(0, 0, -1) {
		t.Errorf("explicit normal lost: %v", m.Vertices[m.Faces[0].V[2]].Normal)
	}
	// Negative indices resolve to the same positions, sharing plain corners.
	if m.Faces[1].V[0] != m.Faces[0].V[0] {
		t.Errorf("relative index did not share vertex: %v vs %v", m.Faces[1], m.Faces[0])
	}
}

func TestParseOBJComputesMissingNormals(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	m, err := ParseOBJ(strings.NewReader(src), "tri")
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range m.Vertices {
		if math.Abs(v.Normal.Z-1) > 1e-9 {
			t.Errorf("vertex %d normal = %v, want +Z", i, v.Normal)
		}
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"short vertex", "v 1 2\n"},
		{"bad float", "v 1 x 3\n"},
		{"index out of range", "v 0 0 0\nf 1 2 3\n"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"two corners", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"bad normal index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1//1 2//1 3//1\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(tc.src), tc.name)
			if !errors.Is(err, ErrInvalidOBJ) {
				t.Errorf("err = %v, want ErrInvalidOBJ", err)
			}
		})
	}
}

func TestLoadDispatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quad.OBJ")
	if err := os.WriteFile(path, []byte(quadOBJ), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "quad.OBJ" || m.TriangleCount() != 2 {
		t.Errorf("loaded %q with %d triangles", m.Name, m.TriangleCount())
	}

	if _, err := Load(filepath.Join(dir, "model.fbx")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := LoadOBJ(filepath.Join(dir, "missing.obj")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not-exist", err)
	}
}
