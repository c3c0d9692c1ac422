package models

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
)

// UVSphere generates a unit sphere with stacks latitude bands and slices
// longitude segments. Normals point outward. stacks is at least 2 and
// slices at least 3.
func UVSphere(stacks, slices int) *Mesh {
	stacks, slices = max(stacks, 2), max(slices, 3)
	m := NewMesh("sphere")

	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		y, r := math.Cos(phi), math.Sin(phi)
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			p := math3d.V3(r*math.Cos(theta), y, r*math.Sin(theta))
			m.Vertices = append(m.Vertices, MeshVertex{Position: p, Normal: p})
		}
	}

	row := slices + 1
	for i := range stacks {
		for j := range slices {
			a := i*row + j
			b := a + row
			// Counter-clockwise seen from outside. The zero-area triangles
			// at the poles are skipped.
			if i != 0 {
				m.Faces = append(m.Faces, Face{V: [3]int{a, a + 1, b}, Material: -1})
			}
			if i != stacks-1 {
				m.Faces = append(m.Faces, Face{V: [3]int{a + 1, b + 1, b}, Material: -1})
			}
		}
	}

	m.CalculateBounds()
	return m
}

// Ring generates a flat annulus in the XZ plane between inner and outer
// radius, facing +Y.
func Ring(inner, outer float64, segments int) *Mesh {
	segments = max(segments, 3)
	if inner > outer {
		inner, outer = outer, inner
	}
	m := NewMesh("ring")
	up := math3d.Up()

	for j := 0; j <= segments; j++ {
		theta := 2 * math.Pi * float64(j) / float64(segments)
		c, s := math.Cos(theta), math.Sin(theta)
		m.Vertices = append(m.Vertices,
			MeshVertex{Position: math3d.V3(inner*c, 0, inner*s), Normal: up},
			MeshVertex{Position: math3d.V3(outer*c, 0, outer*s), Normal: up},
		)
	}

	for j := range segments {
		a := j * 2
		m.Faces = append(m.Faces,
			Face{V: [3]int{a, a + 2, a + 1}, Material: -1},
			Face{V: [3]int{a + 2, a + 3, a + 1}, Material: -1},
		)
	}

	m.CalculateBounds()
	return m
}
