// Package sdfx implements the kernel.Kernel interface on top of the
// github.com/deadsy/sdfx CAD library. Solids keep their half-edge surface
// untouched and accumulate placement in an sdf.M44 matrix that is applied
// when bounds or meshes are requested.
package sdfx

import (
	"fmt"
	"math"

	"github.com/chazu/facet/pkg/halfedge"
	"github.com/chazu/facet/pkg/kernel"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// Name is the registered backend name.
const Name = "sdfx"

// sdfxSolid pairs a surface with its object-to-world transform.
type sdfxSolid struct {
	poly *halfedge.Polyhedron
	m    sdf.M44
	// mirrored is set when the transform has a negative determinant, so
	// winding must be reversed to keep faces pointing outward.
	mirrored bool
}

// BoundingBox returns the axis-aligned bounding box of the transformed
// vertices.
func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	bb := s.box()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

func (s *sdfxSolid) box() sdf.Box3 {
	if s.poly.VertexCount() == 0 {
		return sdf.Box3{}
	}
	lo := v3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi := v3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for v, p := range s.poly.Points {
		if s.poly.VertexEdge(v) == halfedge.None {
			continue
		}
		w := s.m.MulPosition(p)
		lo = v3.Vec{X: math.Min(lo.X, w.X), Y: math.Min(lo.Y, w.Y), Z: math.Min(lo.Z, w.Z)}
		hi = v3.Vec{X: math.Max(hi.X, w.X), Y: math.Max(hi.Y, w.Y), Z: math.Max(hi.Z, w.Z)}
	}
	return sdf.Box3{Min: lo, Max: hi}
}

// Topology reports the half-edge counts of the untransformed surface.
func (s *sdfxSolid) Topology() kernel.Topology {
	p := s.poly
	return kernel.Topology{
		Vertices:  p.VertexCount(),
		Edges:     p.EdgeCount(),
		Faces:     p.FaceCount(),
		Triangles: p.CountDegree(3),
		Quads:     p.CountDegree(4),
		Border:    p.BorderEdgeCount(),
		Closed:    p.IsClosed(),
	}
}

// SdfxKernel implements kernel.Kernel using sdfx matrices.
type SdfxKernel struct{}

// New returns a new SdfxKernel.
func New() *SdfxKernel {
	return &SdfxKernel{}
}

// Name returns "sdfx".
func (k *SdfxKernel) Name() string { return Name }

// unwrap extracts the underlying solid. It panics on a solid from another
// backend, which is a programming error.
func unwrap(s kernel.Solid) *sdfxSolid {
	ss, ok := s.(*sdfxSolid)
	if !ok {
		panic(fmt.Sprintf("sdfx: %v: %T", kernel.ErrForeignSolid, s))
	}
	return ss
}

// derive returns a copy of s with m applied after its current transform.
func derive(s kernel.Solid, m sdf.M44, mirror bool) kernel.Solid {
	in := unwrap(s)
	return &sdfxSolid{
		poly:     in.poly,
		m:        m.Mul(in.m),
		mirrored: in.mirrored != mirror,
	}
}

// Polyhedron builds the half-edge surface with an identity transform.
func (k *SdfxKernel) Polyhedron(points []v3.Vec, triangles, quads []int) (kernel.Solid, error) {
	p, err := halfedge.Build(points, triangles, quads)
	if err != nil {
		return nil, fmt.Errorf("sdfx: %w", err)
	}
	return &sdfxSolid{poly: p, m: sdf.Identity3d()}, nil
}

// Translate moves a solid by (x, y, z).
func (k *SdfxKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	return derive(s, sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z}), false)
}

// Rotate rotates a solid by Euler angles (degrees) around X, Y, Z axes.
// X is applied first.
func (k *SdfxKernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	xRad := x * math.Pi / 180.0
	yRad := y * math.Pi / 180.0
	zRad := z * math.Pi / 180.0

	m := sdf.RotateZ(zRad).Mul(sdf.RotateY(yRad)).Mul(sdf.RotateX(xRad))
	return derive(s, m, false)
}

// Scale scales a solid about the origin.
func (k *SdfxKernel) Scale(s kernel.Solid, x, y, z float64) kernel.Solid {
	return derive(s, sdf.Scale3d(v3.Vec{X: x, Y: y, Z: z}), x*y*z < 0)
}

// ToMesh fans every face into triangles, transforms the points and
// computes area-weighted vertex normals.
func (k *SdfxKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	in := unwrap(s)

	vertices := make([]float32, 0, len(in.poly.Points)*3)
	for _, p := range in.poly.Points {
		w := in.m.MulPosition(p)
		vertices = append(vertices, float32(w.X), float32(w.Y), float32(w.Z))
	}

	tris := in.poly.Triangulate()
	indices := make([]uint32, 0, len(tris))
	for i := 0; i < len(tris); i += 3 {
		a, b, c := tris[i], tris[i+1], tris[i+2]
		if in.mirrored {
			b, c = c, b
		}
		indices = append(indices, uint32(a), uint32(b), uint32(c))
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  kernel.ComputeVertexNormals(vertices, indices),
		Indices:  indices,
	}, nil
}
