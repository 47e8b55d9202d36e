// Package kernel defines the abstract geometry kernel interface.
// Implementations turn indexed polyhedral buffers into solids, place
// them in space and produce render meshes. The kernel abstraction
// allows swapping backends without changing the rest of the system.
package kernel

import (
	"errors"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ErrForeignSolid is returned when a kernel is handed a solid built by a
// different backend.
var ErrForeignSolid = errors.New("kernel: solid belongs to another kernel")

// Topology summarizes the combinatorics of a solid.
type Topology struct {
	Vertices  int  `json:"vertices"`
	Edges     int  `json:"edges"`
	Faces     int  `json:"faces"`
	Triangles int  `json:"triangles"` // triangular faces
	Quads     int  `json:"quads"`     // quadrilateral faces
	Border    int  `json:"border"`    // half-edges without a twin
	Closed    bool `json:"closed"`
}

// Euler returns V - E + F.
func (t Topology) Euler() int {
	return t.Vertices - t.Edges + t.Faces
}

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box in world space.
	BoundingBox() (min, max [3]float64)
	// Topology reports the surface counts. Transforms do not change it.
	Topology() Topology
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	Name() string

	// Polyhedron assembles a surface from a point list plus triangle
	// (runs of 3) and quad (runs of 4) index buffers. quads may be nil.
	Polyhedron(points []v3.Vec, triangles, quads []int) (Solid, error)

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees
	Scale(s Solid, x, y, z float64) Solid

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
