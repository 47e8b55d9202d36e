package meshgen

var cubeCorners = [8]Point3{
	{X: -0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: 0.5, Z: -0.5},
	{X: -0.5, Y: 0.5, Z: -0.5},
	{X: -0.5, Y: 0.5, Z: 0.5},
	{X: 0.5, Y: 0.5, Z: 0.5},
	{X: 0.5, Y: -0.5, Z: 0.5},
	{X: -0.5, Y: -0.5, Z: 0.5},
}

// Cube generates an axis-aligned cube with edge length scale centred on
// the origin: 8 points and 12 triangles, or 6 quads when quads are kept.
func Cube(b *Buffers, scale float64) {
	b.Reset()
	for _, c := range cubeCorners {
		b.addPoint(c.MulScalar(scale))
	}

	if b.KeepQuads {
		// Each quad splits on its first diagonal into the triangle pair below.
		b.Quads.AddQuadFace(0, 3, 2, 1) // front
		b.Quads.AddQuadFace(2, 3, 4, 5) // top
		b.Quads.AddQuadFace(1, 2, 5, 6) // right
		b.Quads.AddQuadFace(0, 7, 4, 3) // left
		b.Quads.AddQuadFace(5, 4, 7, 6) // back
		b.Quads.AddQuadFace(0, 1, 6, 7) // bottom
		return
	}

	t := &b.Triangles
	t.AddTriangle(0, 2, 1) // front
	t.AddTriangle(0, 3, 2)
	t.AddTriangle(2, 3, 4) // top
	t.AddTriangle(2, 4, 5)
	t.AddTriangle(1, 2, 5) // right
	t.AddTriangle(1, 5, 6)
	t.AddTriangle(0, 7, 4) // left
	t.AddTriangle(0, 4, 3)
	t.AddTriangle(5, 4, 7) // back
	t.AddTriangle(5, 7, 6)
	t.AddTriangle(0, 6, 7) // bottom
	t.AddTriangle(0, 1, 6)
}
