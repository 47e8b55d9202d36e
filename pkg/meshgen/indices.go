package meshgen

// Indices is a flat index buffer. Triangle buffers hold runs of 3,
// quad buffers hold runs of 4.
type Indices []int

// AddTriangle appends one triangle in argument order.
func (ix *Indices) AddTriangle(i1, i2, i3 int) {
	*ix = append(*ix, i1, i2, i3)
}

// AddQuad appends the quad as two triangles split along the i1-i3 diagonal.
func (ix *Indices) AddQuad(i1, i2, i3, i4 int) {
	*ix = append(*ix, i1, i2, i3, i1, i3, i4)
}

// AddQuadAlt appends the quad as two triangles split along the i2-i4 diagonal.
func (ix *Indices) AddQuadAlt(i1, i2, i3, i4 int) {
	*ix = append(*ix, i1, i2, i4, i2, i3, i4)
}

// AddQuadFace appends the quad as a single 4-run.
func (ix *Indices) AddQuadFace(i1, i2, i3, i4 int) {
	*ix = append(*ix, i1, i2, i3, i4)
}
