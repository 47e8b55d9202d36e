package meshgen

import "math"

// phi is the golden ratio.
var phi = (1 + math.Sqrt(5)) / 2

var tetrahedronPoints = []Point3{
	{X: 1, Y: 1, Z: 1},
	{X: -1, Y: -1, Z: 1},
	{X: -1, Y: 1, Z: -1},
	{X: 1, Y: -1, Z: -1},
}

var tetrahedronFaces = []int{
	2, 1, 0,
	0, 3, 2,
	1, 3, 0,
	2, 3, 1,
}

var octahedronPoints = []Point3{
	{X: 1, Y: 0, Z: 0},
	{X: -1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: -1, Z: 0},
	{X: 0, Y: 0, Z: 1},
	{X: 0, Y: 0, Z: -1},
}

var octahedronFaces = []int{
	0, 2, 4,
	0, 4, 3,
	0, 3, 5,
	0, 5, 2,
	1, 2, 5,
	1, 5, 3,
	1, 3, 4,
	1, 4, 2,
}

var icosahedronPoints = []Point3{
	{X: -1, Y: phi, Z: 0},
	{X: 1, Y: phi, Z: 0},
	{X: -1, Y: -phi, Z: 0},
	{X: 1, Y: -phi, Z: 0},
	{X: 0, Y: -1, Z: phi},
	{X: 0, Y: 1, Z: phi},
	{X: 0, Y: -1, Z: -phi},
	{X: 0, Y: 1, Z: -phi},
	{X: phi, Y: 0, Z: -1},
	{X: phi, Y: 0, Z: 1},
	{X: -phi, Y: 0, Z: -1},
	{X: -phi, Y: 0, Z: 1},
}

var icosahedronFaces = []int{
	0, 11, 5,
	0, 5, 1,
	0, 1, 7,
	0, 7, 10,
	0, 10, 11,
	1, 5, 9,
	5, 11, 4,
	11, 10, 2,
	10, 7, 6,
	7, 1, 8,
	3, 9, 4,
	3, 4, 2,
	3, 2, 6,
	3, 6, 8,
	3, 8, 9,
	4, 9, 5,
	2, 4, 11,
	6, 2, 10,
	8, 6, 7,
	9, 8, 1,
}

var dodecahedronPoints = []Point3{
	{X: -1, Y: -1, Z: -1},
	{X: -1, Y: -1, Z: 1},
	{X: -1, Y: 1, Z: -1},
	{X: -1, Y: 1, Z: 1},
	{X: 1, Y: -1, Z: -1},
	{X: 1, Y: -1, Z: 1},
	{X: 1, Y: 1, Z: -1},
	{X: 1, Y: 1, Z: 1},
	{X: 0, Y: -1 / phi, Z: -phi},
	{X: 0, Y: -1 / phi, Z: phi},
	{X: 0, Y: 1 / phi, Z: -phi},
	{X: 0, Y: 1 / phi, Z: phi},
	{X: -1 / phi, Y: -phi, Z: 0},
	{X: -1 / phi, Y: phi, Z: 0},
	{X: 1 / phi, Y: -phi, Z: 0},
	{X: 1 / phi, Y: phi, Z: 0},
	{X: -phi, Y: 0, Z: -1 / phi},
	{X: phi, Y: 0, Z: -1 / phi},
	{X: -phi, Y: 0, Z: 1 / phi},
	{X: phi, Y: 0, Z: 1 / phi},
}

// Each pentagon is three triangles fanned from its first vertex.
var dodecahedronFaces = []int{
	3, 11, 7, 3, 7, 15, 3, 15, 13,
	7, 19, 17, 7, 17, 6, 7, 6, 15,
	17, 4, 8, 17, 8, 10, 17, 10, 6,
	8, 0, 16, 8, 16, 2, 8, 2, 10,
	0, 12, 1, 0, 1, 18, 0, 18, 16,
	6, 10, 2, 6, 2, 13, 6, 13, 15,
	2, 16, 18, 2, 18, 3, 2, 3, 13,
	18, 1, 9, 18, 9, 11, 18, 11, 3,
	4, 14, 12, 4, 12, 0, 4, 0, 8,
	11, 9, 5, 11, 5, 19, 11, 19, 7,
	19, 5, 14, 19, 14, 4, 19, 4, 17,
	1, 12, 14, 1, 14, 5, 1, 5, 9,
}

// Tetrahedron generates a regular tetrahedron inscribed in a sphere of
// radius scale/2: 4 points, 4 triangles.
func Tetrahedron(b *Buffers, scale float64) {
	inscribed(b, tetrahedronPoints, tetrahedronFaces, scale)
}

// Octahedron generates a regular octahedron with vertices on the axes at
// distance scale/2: 6 points, 8 triangles.
func Octahedron(b *Buffers, scale float64) {
	inscribed(b, octahedronPoints, octahedronFaces, scale)
}

// Icosahedron generates a regular icosahedron inscribed in a sphere of
// radius scale/2: 12 points, 20 triangles.
func Icosahedron(b *Buffers, scale float64) {
	inscribed(b, icosahedronPoints, icosahedronFaces, scale)
}

// Dodecahedron generates a regular dodecahedron inscribed in a sphere of
// radius scale/2: 20 points, 36 triangles (each pentagon as three).
func Dodecahedron(b *Buffers, scale float64) {
	inscribed(b, dodecahedronPoints, dodecahedronFaces, scale)
}

func inscribed(b *Buffers, points []Point3, faces []int, scale float64) {
	b.Reset()
	radius := scale * 0.5
	for _, p := range points {
		b.addPoint(onSphere(p, radius))
	}
	b.Triangles = append(b.Triangles, faces...)
}
