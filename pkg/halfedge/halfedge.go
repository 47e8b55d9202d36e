// Package halfedge provides an index-based half-edge polyhedral surface
// built from indexed triangle and quad lists.
//
// Every face owns a cycle of half-edges linked by Next and Prev. Two
// half-edges running in opposite directions between the same vertices
// are twins. A half-edge with no twin lies on the border.
package halfedge

import (
	"errors"
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// None marks a missing link.
const None = -1

// Errors returned by Build.
var (
	ErrMalformedIndices = errors.New("halfedge: malformed index buffer")
	ErrIndexOutOfRange  = errors.New("halfedge: index out of range")
	ErrDegenerateFace   = errors.New("halfedge: face repeats a vertex")
	ErrNonManifold      = errors.New("halfedge: directed edge used by more than one face")
)

// HalfEdge is one directed side of an edge.
type HalfEdge struct {
	Origin int // vertex the half-edge leaves
	Face   int
	Next   int
	Prev   int
	Twin   int // None on a border
}

// Face references one half-edge of its boundary cycle.
type Face struct {
	Edge   int
	Degree int
}

// Polyhedron is a half-edge surface over a point list.
type Polyhedron struct {
	Points    []v3.Vec
	HalfEdges []HalfEdge
	Faces     []Face

	// vertexEdge holds one outgoing half-edge per vertex, None if the
	// vertex is not used by any face.
	vertexEdge []int
}

type directed struct{ from, to int }

// Build constructs a polyhedron. triangles holds runs of 3 indices and
// quads runs of 4; either may be nil. Triangles are added before quads,
// so face indices follow that order.
func Build(points []v3.Vec, triangles, quads []int) (*Polyhedron, error) {
	if len(triangles)%3 != 0 {
		return nil, fmt.Errorf("%w: %d triangle indices", ErrMalformedIndices, len(triangles))
	}
	if len(quads)%4 != 0 {
		return nil, fmt.Errorf("%w: %d quad indices", ErrMalformedIndices, len(quads))
	}

	nFaces := len(triangles)/3 + len(quads)/4
	p := &Polyhedron{
		Points:     append([]v3.Vec(nil), points...),
		HalfEdges:  make([]HalfEdge, 0, len(triangles)+len(quads)),
		Faces:      make([]Face, 0, nFaces),
		vertexEdge: make([]int, len(points)),
	}
	for i := range p.vertexEdge {
		p.vertexEdge[i] = None
	}

	edges := make(map[directed]int, len(triangles)+len(quads))
	for i := 0; i < len(triangles); i += 3 {
		if err := p.addFace(triangles[i:i+3], edges); err != nil {
			return nil, err
		}
	}
	for i := 0; i < len(quads); i += 4 {
		if err := p.addFace(quads[i:i+4], edges); err != nil {
			return nil, err
		}
	}

	for e, he := range edges {
		if twin, ok := edges[directed{e.to, e.from}]; ok {
			p.HalfEdges[he].Twin = twin
		}
	}
	return p, nil
}

func (p *Polyhedron) addFace(vs []int, edges map[directed]int) error {
	face := len(p.Faces)
	n := len(vs)
	for i, v := range vs {
		if v < 0 || v >= len(p.Points) {
			return fmt.Errorf("%w: face %d uses vertex %d of %d", ErrIndexOutOfRange, face, v, len(p.Points))
		}
		for _, w := range vs[:i] {
			if w == v {
				return fmt.Errorf("%w: face %d uses vertex %d twice", ErrDegenerateFace, face, v)
			}
		}
	}

	first := len(p.HalfEdges)
	for i, v := range vs {
		to := vs[(i+1)%n]
		key := directed{v, to}
		if other, dup := edges[key]; dup {
			return fmt.Errorf("%w: edge %d->%d in faces %d and %d", ErrNonManifold, v, to, p.HalfEdges[other].Face, face)
		}
		he := first + i
		edges[key] = he
		p.HalfEdges = append(p.HalfEdges, HalfEdge{
			Origin: v,
			Face:   face,
			Next:   first + (i+1)%n,
			Prev:   first + (i+n-1)%n,
			Twin:   None,
		})
		if p.vertexEdge[v] == None {
			p.vertexEdge[v] = he
		}
	}
	p.Faces = append(p.Faces, Face{Edge: first, Degree: n})
	return nil
}

// Target returns the vertex half-edge e points to.
func (p *Polyhedron) Target(e int) int {
	return p.HalfEdges[p.HalfEdges[e].Next].Origin
}

// VertexEdge returns an outgoing half-edge of v, or None.
func (p *Polyhedron) VertexEdge(v int) int {
	return p.vertexEdge[v]
}
