package meshgen

import "math"

// Cylinder generates a cylinder along Y from +Height/2 down to -Height/2.
// Rings run top to bottom, each with RadialSegments points and a radius
// interpolated from RadiusTop to RadiusBottom. Rings wrap modulo
// RadialSegments. Unless OpenEnded, each end is closed by a fan around a
// centre point; the two centre points are the last two points.
func Cylinder(b *Buffers, p CylinderParams) {
	b.Reset()

	r := p.RadialSegments
	h := p.HeightSegments
	half := p.Height / 2

	for j := 0; j <= h; j++ {
		t := float64(j) / float64(h)
		y := half - t*p.Height
		radius := p.RadiusTop + (p.RadiusBottom-p.RadiusTop)*t
		for i := 0; i < r; i++ {
			s, c := math.Sincos(2 * math.Pi * float64(i) / float64(r))
			b.addPoint(Point3{X: radius * c, Y: y, Z: radius * s})
		}
	}

	for j := 0; j < h; j++ {
		for i := 0; i < r; i++ {
			a := j*r + i
			a1 := j*r + (i+1)%r
			b1 := (j+1)*r + (i+1)%r
			bl := (j+1)*r + i
			b.quad(a, a1, b1, bl)
		}
	}

	if p.OpenEnded {
		return
	}

	top := len(b.Points)
	b.addPoint(Point3{X: 0, Y: half, Z: 0})
	bottom := len(b.Points)
	b.addPoint(Point3{X: 0, Y: -half, Z: 0})

	for i := 0; i < r; i++ {
		b.Triangles.AddTriangle(top, (i+1)%r, i)
	}
	base := h * r
	for i := 0; i < r; i++ {
		b.Triangles.AddTriangle(bottom, base+i, base+(i+1)%r)
	}
}
