package render

import (
	"github.com/taigrr/orrery/pkg/math3d"
)

// nearDistance is the signed clip-space distance of v from the near plane
// z = -w. It is negative between the eye and the near plane.
func nearDistance(v *TransformedVertex) float64 {
	return v.clip.Z + v.clip.W
}

// clipNear clips a triangle against the near plane and appends what is
// left to dst as a fan of whole triangles: none, one or two.
func clipNear(dst []TransformedVertex, v0, v1, v2 *TransformedVertex, viewport math3d.Mat4) []TransformedVertex {
	tri := [3]*TransformedVertex{v0, v1, v2}
	var poly [4]TransformedVertex
	n := 0
	for i := range 3 {
		a, b := tri[i], tri[(i+1)%3]
		da, db := nearDistance(a), nearDistance(b)
		if da >= 0 {
			poly[n] = *a
			n++
		}
		if (da >= 0) != (db >= 0) {
			poly[n] = lerpVertex(a, b, da/(da-db), viewport)
			n++
		}
	}
	for i := 1; i+1 < n; i++ {
		dst = append(dst, poly[0], poly[i], poly[i+1])
	}
	return dst
}

// lerpVertex interpolates every attribute in clip space and projects the
// result again.
func lerpVertex(a, b *TransformedVertex, t float64, viewport math3d.Mat4) TransformedVertex {
	v := TransformedVertex{
		Normal:    a.Normal.Lerp(b.Normal, t),
		Intensity: a.Intensity + (b.Intensity-a.Intensity)*t,
		Color:     a.Color.Lerp(b.Color, t),
		Object:    a.Object.Lerp(b.Object, t),
	}
	v.project(math3d.V4(
		a.clip.X+(b.clip.X-a.clip.X)*t,
		a.clip.Y+(b.clip.Y-a.clip.Y)*t,
		a.clip.Z+(b.clip.Z-a.clip.Z)*t,
		a.clip.W+(b.clip.W-a.clip.W)*t,
	), viewport)
	return v
}
