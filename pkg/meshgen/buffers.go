package meshgen

import "fmt"

// Buffers collects generator output. Points are indexed by insertion
// order and coincident points are never merged.
//
// With KeepQuads set, four-sided faces are stored in Quads as 4-runs.
// Otherwise they are split into Triangles using the diagonal each
// generator prescribes, and Quads stays empty.
type Buffers struct {
	Points    []Point3
	Triangles Indices
	Quads     Indices
	KeepQuads bool
}

// NewBuffers returns empty buffers in the given face mode.
func NewBuffers(keepQuads bool) *Buffers {
	return &Buffers{KeepQuads: keepQuads}
}

// Reset empties the buffers, keeping their capacity and face mode.
func (b *Buffers) Reset() {
	b.Points = b.Points[:0]
	b.Triangles = b.Triangles[:0]
	b.Quads = b.Quads[:0]
}

func (b *Buffers) addPoint(p Point3) {
	b.Points = append(b.Points, p)
}

// quad emits a four-sided face, split on the i1-i3 diagonal when quads
// are not kept.
func (b *Buffers) quad(i1, i2, i3, i4 int) {
	if b.KeepQuads {
		b.Quads.AddQuadFace(i1, i2, i3, i4)
		return
	}
	b.Triangles.AddQuad(i1, i2, i3, i4)
}

// quadAlt is quad with the i2-i4 diagonal.
func (b *Buffers) quadAlt(i1, i2, i3, i4 int) {
	if b.KeepQuads {
		b.Quads.AddQuadFace(i1, i2, i3, i4)
		return
	}
	b.Triangles.AddQuadAlt(i1, i2, i3, i4)
}

// PointCount returns the number of points.
func (b *Buffers) PointCount() int {
	return len(b.Points)
}

// TriangleCount returns the number of triangles, counting each quad as two.
func (b *Buffers) TriangleCount() int {
	return len(b.Triangles)/3 + 2*(len(b.Quads)/4)
}

// FaceCount returns the number of faces, counting each quad once.
func (b *Buffers) FaceCount() int {
	return len(b.Triangles)/3 + len(b.Quads)/4
}

// Check verifies the run lengths and that every index addresses a point.
func (b *Buffers) Check() error {
	if len(b.Triangles)%3 != 0 {
		return fmt.Errorf("%w: %d triangle indices is not a multiple of 3", ErrMalformedIndices, len(b.Triangles))
	}
	if len(b.Quads)%4 != 0 {
		return fmt.Errorf("%w: %d quad indices is not a multiple of 4", ErrMalformedIndices, len(b.Quads))
	}
	n := len(b.Points)
	for i, idx := range b.Triangles {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: triangle index %d at position %d, %d points", ErrIndexOutOfRange, idx, i, n)
		}
	}
	for i, idx := range b.Quads {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: quad index %d at position %d, %d points", ErrIndexOutOfRange, idx, i, n)
		}
	}
	return nil
}
