package meshgen

// Per-face grid bases for the normalized cube. A face point is
// origin + (i*right + j*up)/divisions.
var (
	cubeFaceOrigins = [6]Point3{
		{X: -1, Y: -1, Z: -1},
		{X: 1, Y: -1, Z: -1},
		{X: 1, Y: -1, Z: 1},
		{X: -1, Y: -1, Z: 1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1},
	}
	cubeFaceRights = [6]Point3{
		{X: 2, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 2},
		{X: -2, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: -2},
		{X: 2, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
	}
	cubeFaceUps = [6]Point3{
		{X: 0, Y: 2, Z: 0},
		{X: 0, Y: 2, Z: 0},
		{X: 0, Y: 2, Z: 0},
		{X: 0, Y: 2, Z: 0},
		{X: 0, Y: 0, Z: 2},
		{X: 0, Y: 0, Z: -2},
	}
)

// NormalizedCube generates a sphere of radius Scale/2 by subdividing each
// cube face into a Divisions x Divisions grid and projecting every grid
// point onto the sphere. Faces do not share points along cube edges.
//
// A cell's split diagonal flips when exactly one of (row in lower half,
// column in left half) holds, so the four quadrants of each face mirror
// one another.
func NormalizedCube(b *Buffers, p NormalizedCubeParams) {
	b.Reset()

	radius := p.Scale * 0.5
	d := p.Divisions
	step := 1.0 / float64(d)

	for face := 0; face < 6; face++ {
		origin := cubeFaceOrigins[face]
		right := cubeFaceRights[face]
		up := cubeFaceUps[face]
		for j := 0; j <= d; j++ {
			for i := 0; i <= d; i++ {
				offset := right.MulScalar(float64(i)).Add(up.MulScalar(float64(j)))
				b.addPoint(onSphere(origin.Add(offset.MulScalar(step)), radius))
			}
		}
	}

	k := d + 1
	for face := 0; face < 6; face++ {
		for j := 0; j < d; j++ {
			bottom := j < d/2
			for i := 0; i < d; i++ {
				left := i < d/2

				a := (face*k+j)*k + i
				bl := (face*k+j)*k + i + 1
				c := (face*k+j+1)*k + i
				dd := (face*k+j+1)*k + i + 1

				if bottom != left {
					b.quadAlt(a, c, dd, bl)
				} else {
					b.quad(a, c, dd, bl)
				}
			}
		}
	}
}
