package models

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/orrery/pkg/math3d"
)

// ErrInvalidOBJ is returned for OBJ input that cannot be parsed.
var ErrInvalidOBJ = errors.New("invalid obj")

// LoadOBJ loads a Wavefront OBJ file. Only geometry is read: v, vn and f
// records. Faces with more than three corners are fan-triangulated.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, err := ParseOBJ(f, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mesh, nil
}

// objCorner is one face corner: position and normal indices, zero-based,
// normal -1 when absent.
type objCorner struct {
	v, vn int
}

// ParseOBJ reads OBJ text from r.
func ParseOBJ(r io.Reader, name string) (*Mesh, error) {
	var (
		positions []math3d.Vec3
		normals   []math3d.Vec3
		corners   = make(map[objCorner]int)
		mesh      = NewMesh(name)
	)

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", line, err)
			}
			positions = append(positions, p)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", line, err)
			}
			normals = append(normals, n)
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: %w: face needs at least 3 corners", line, ErrInvalidOBJ)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				c, err := parseCorner(tok, len(positions), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				i, ok := corners[c]
				if !ok {
					i = len(mesh.Vertices)
					v := MeshVertex{Position: positions[c.v]}
					if c.vn >= 0 {
						v.Normal = normals[c.vn]
					}
					mesh.Vertices = append(mesh.Vertices, v)
					corners[c] = i
				}
				idx = append(idx, i)
			}
			for k := 1; k+1 < len(idx); k++ {
				mesh.Faces = append(mesh.Faces, Face{V: [3]int{idx[0], idx[k], idx[k+1]}, Material: -1})
			}
		}
		// vt, o, g, s, usemtl, mtllib and the rest are ignored.
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	if !mesh.hasNormals() {
		mesh.CalculateSmoothNormals()
	}
	mesh.CalculateBounds()
	return mesh, nil
}

func parseVec3(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("%w: want 3 components, got %d", ErrInvalidOBJ, len(fields))
	}
	var c [3]float64
	for i := range c {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("%w: %w", ErrInvalidOBJ, err)
		}
		c[i] = v
	}
	return math3d.V3(c[0], c[1], c[2]), nil
}

// parseCorner parses "v", "v/vt", "v//vn" or "v/vt/vn". Indices are
// one-based; negative indices count back from the latest element.
func parseCorner(tok string, nv, nn int) (objCorner, error) {
	parts := strings.Split(tok, "/")
	v, err := resolveIndex(parts[0], nv)
	if err != nil {
		return objCorner{}, fmt.Errorf("corner %q: %w", tok, err)
	}
	c := objCorner{v: v, vn: -1}
	if len(parts) == 3 && parts[2] != "" {
		if c.vn, err = resolveIndex(parts[2], nn); err != nil {
			return objCorner{}, fmt.Errorf("corner %q: %w", tok, err)
		}
	}
	return c, nil
}

func resolveIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidOBJ, err)
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	default:
		return 0, fmt.Errorf("%w: index %d out of range (%d defined)", ErrInvalidOBJ, i, n)
	}
}
