// Package polyhedron assembles generated shapes into kernel solids.
package polyhedron

import (
	"fmt"

	"github.com/chazu/facet/pkg/kernel"
	"github.com/chazu/facet/pkg/meshgen"
)

// Factory builds solids for every supported shape on one kernel. A
// Factory holds no buffers between calls and is safe for concurrent use
// if its kernel is.
type Factory struct {
	k kernel.Kernel
}

// NewFactory returns a factory bound to k.
func NewFactory(k kernel.Kernel) *Factory {
	return &Factory{k: k}
}

// Kernel returns the kernel the factory builds on.
func (f *Factory) Kernel() kernel.Kernel { return f.k }

// Create validates s, generates it into fresh buffers and hands them to
// the kernel. In triangle mode no quad buffer is passed. Shapes without
// quad faces ignore allowQuads.
func (f *Factory) Create(s meshgen.Shape, allowQuads bool) (kernel.Solid, error) {
	b, err := meshgen.Build(s, allowQuads)
	if err != nil {
		return nil, err
	}
	if err := b.Check(); err != nil {
		return nil, fmt.Errorf("polyhedron: %s: %w", s.Kind(), err)
	}

	var quads []int
	if allowQuads {
		quads = b.Quads
	}
	solid, err := f.k.Polyhedron(b.Points, b.Triangles, quads)
	if err != nil {
		return nil, fmt.Errorf("polyhedron: %s: %w", s.Kind(), err)
	}
	return solid, nil
}

// CreateCube builds a unit cube scaled by scale.
func (f *Factory) CreateCube(scale float64, allowQuads bool) (kernel.Solid, error) {
	return f.Create(meshgen.ScaledSolid{Solid: meshgen.KindCube, Scale: scale}, allowQuads)
}

// CreatePlane builds a subdivided plane in the XZ plane.
func (f *Factory) CreatePlane(p meshgen.PlaneParams, allowQuads bool) (kernel.Solid, error) {
	return f.Create(p, allowQuads)
}

// CreateUVSphere builds a latitude/longitude sphere.
func (f *Factory) CreateUVSphere(p meshgen.UVSphereParams, allowQuads bool) (kernel.Solid, error) {
	return f.Create(p, allowQuads)
}

// CreateNormalizedCube builds a cube whose face grids are pushed onto a
// sphere.
func (f *Factory) CreateNormalizedCube(p meshgen.NormalizedCubeParams, allowQuads bool) (kernel.Solid, error) {
	return f.Create(p, allowQuads)
}

// CreateTorus builds a torus or torus arc.
func (f *Factory) CreateTorus(p meshgen.TorusParams, allowQuads bool) (kernel.Solid, error) {
	return f.Create(p, allowQuads)
}

// CreateCylinder builds a cylinder, cone or frustum.
func (f *Factory) CreateCylinder(p meshgen.CylinderParams, allowQuads bool) (kernel.Solid, error) {
	return f.Create(p, allowQuads)
}

// CreateTetrahedron builds a regular tetrahedron with circumradius scale/2.
func (f *Factory) CreateTetrahedron(scale float64) (kernel.Solid, error) {
	return f.Create(meshgen.ScaledSolid{Solid: meshgen.KindTetrahedron, Scale: scale}, false)
}

// CreateOctahedron builds a regular octahedron with circumradius scale/2.
func (f *Factory) CreateOctahedron(scale float64) (kernel.Solid, error) {
	return f.Create(meshgen.ScaledSolid{Solid: meshgen.KindOctahedron, Scale: scale}, false)
}

// CreateIcosahedron builds a regular icosahedron with circumradius scale/2.
func (f *Factory) CreateIcosahedron(scale float64) (kernel.Solid, error) {
	return f.Create(meshgen.ScaledSolid{Solid: meshgen.KindIcosahedron, Scale: scale}, false)
}

// CreateDodecahedron builds a regular dodecahedron with circumradius
// scale/2. Its pentagons are stored as triangle fans.
func (f *Factory) CreateDodecahedron(scale float64) (kernel.Solid, error) {
	return f.Create(meshgen.ScaledSolid{Solid: meshgen.KindDodecahedron, Scale: scale}, false)
}
