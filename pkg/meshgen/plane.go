package meshgen

// Plane generates a grid in the XZ plane spanning [-w/2, w/2] along X and
// [-h/2, h/2] along Z, with Z negated so rows advance towards -Z. Points
// are row-major, (DivisionsX+1) per row.
func Plane(b *Buffers, p PlaneParams) {
	b.Reset()

	halfW := p.Width / 2
	halfH := p.Height / 2
	gridX := p.DivisionsX
	gridZ := p.DivisionsZ
	gridX1 := gridX + 1
	gridZ1 := gridZ + 1
	segW := p.Width / float64(gridX)
	segH := p.Height / float64(gridZ)

	for iz := 0; iz < gridZ1; iz++ {
		z := float64(iz)*segH - halfH
		for ix := 0; ix < gridX1; ix++ {
			x := float64(ix)*segW - halfW
			b.addPoint(Point3{X: x, Y: 0, Z: -z})
		}
	}

	for iz := 0; iz < gridZ; iz++ {
		for ix := 0; ix < gridX; ix++ {
			a := ix + gridX1*iz
			bl := ix + gridX1*(iz+1)
			c := (ix + 1) + gridX1*(iz+1)
			d := (ix + 1) + gridX1*iz

			if b.KeepQuads {
				b.Quads.AddQuadFace(d, c, bl, a)
				continue
			}
			b.Triangles.AddTriangle(d, bl, a)
			b.Triangles.AddTriangle(d, c, bl)
		}
	}
}
