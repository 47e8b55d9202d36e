package meshgen

import "math"

// Torus generates a torus around the Y axis as a (RadialDivisions+1) x
// (TubularDivisions+1) grid. The first and last rows and columns
// coincide for a full sweep but keep distinct indices.
func Torus(b *Buffers, p TorusParams) {
	b.Reset()

	radial := p.RadialDivisions
	tubular := p.TubularDivisions

	for j := 0; j <= radial; j++ {
		v := float64(j) / float64(radial) * 2 * math.Pi
		sv, cv := math.Sincos(v)
		for i := 0; i <= tubular; i++ {
			u := float64(i) / float64(tubular) * p.Arc
			su, cu := math.Sincos(u)
			ring := p.Radius + p.Tube*cv
			b.addPoint(Point3{
				X: ring * cu,
				Y: p.Tube * sv,
				Z: ring * su,
			})
		}
	}

	row := tubular + 1
	for j := 1; j <= radial; j++ {
		for i := 1; i <= tubular; i++ {
			a := row*j + i - 1
			bl := row*(j-1) + i - 1
			c := row*(j-1) + i
			d := row*j + i

			if b.KeepQuads {
				b.Quads.AddQuadFace(d, c, bl, a)
				continue
			}
			b.Triangles.AddTriangle(d, bl, a)
			b.Triangles.AddTriangle(d, c, bl)
		}
	}
}
