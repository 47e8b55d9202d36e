package meshgen

import "math"

// UVSphere generates a sphere of radius Scale/2 from two poles and
// Parallels-1 rings of Meridians points. Ring indices wrap modulo
// Meridians, so the seam is closed and no point is duplicated.
//
// The pole caps are always triangle fans; the bands between rings are
// quads.
func UVSphere(b *Buffers, p UVSphereParams) {
	b.Reset()

	radius := p.Scale * 0.5
	m := p.Meridians

	b.addPoint(Point3{X: 0, Y: radius, Z: 0})
	for j := 0; j < p.Parallels-1; j++ {
		polar := math.Pi * float64(j+1) / float64(p.Parallels)
		sp, cp := math.Sincos(polar)
		for i := 0; i < m; i++ {
			azimuth := 2 * math.Pi * float64(i) / float64(m)
			sa, ca := math.Sincos(azimuth)
			b.addPoint(Point3{X: sp * ca, Y: cp, Z: sp * sa}.MulScalar(radius))
		}
	}
	b.addPoint(Point3{X: 0, Y: -radius, Z: 0})

	for i := 0; i < m; i++ {
		a := i + 1
		next := (i+1)%m + 1
		b.Triangles.AddTriangle(0, next, a)
	}

	for j := 0; j < p.Parallels-2; j++ {
		aStart := j*m + 1
		bStart := (j+1)*m + 1
		for i := 0; i < m; i++ {
			a := aStart + i
			a1 := aStart + (i+1)%m
			bl := bStart + i
			b1 := bStart + (i+1)%m
			b.quad(a, a1, b1, bl)
		}
	}

	south := len(b.Points) - 1
	last := m*(p.Parallels-2) + 1
	for i := 0; i < m; i++ {
		a := last + i
		next := last + (i+1)%m
		b.Triangles.AddTriangle(south, a, next)
	}
}
