package halfedge

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// VertexCount returns the number of vertices used by at least one face.
func (p *Polyhedron) VertexCount() int {
	n := 0
	for _, e := range p.vertexEdge {
		if e != None {
			n++
		}
	}
	return n
}

// FaceCount returns the number of faces.
func (p *Polyhedron) FaceCount() int { return len(p.Faces) }

// HalfEdgeCount returns the number of half-edges.
func (p *Polyhedron) HalfEdgeCount() int { return len(p.HalfEdges) }

// BorderEdgeCount returns the number of half-edges without a twin.
func (p *Polyhedron) BorderEdgeCount() int {
	n := 0
	for _, he := range p.HalfEdges {
		if he.Twin == None {
			n++
		}
	}
	return n
}

// EdgeCount returns the number of undirected edges.
func (p *Polyhedron) EdgeCount() int {
	border := p.BorderEdgeCount()
	return (len(p.HalfEdges)-border)/2 + border
}

// IsClosed reports whether every half-edge has a twin.
func (p *Polyhedron) IsClosed() bool {
	return len(p.Faces) > 0 && p.BorderEdgeCount() == 0
}

// IsTriangleMesh reports whether every face is a triangle.
func (p *Polyhedron) IsTriangleMesh() bool {
	return p.allDegree(3)
}

// IsPureQuad reports whether every face is a quad.
func (p *Polyhedron) IsPureQuad() bool {
	return p.allDegree(4)
}

func (p *Polyhedron) allDegree(d int) bool {
	for _, f := range p.Faces {
		if f.Degree != d {
			return false
		}
	}
	return len(p.Faces) > 0
}

// CountDegree returns the number of faces with d sides.
func (p *Polyhedron) CountDegree(d int) int {
	n := 0
	for _, f := range p.Faces {
		if f.Degree == d {
			n++
		}
	}
	return n
}

// EulerCharacteristic returns V - E + F.
func (p *Polyhedron) EulerCharacteristic() int {
	return p.VertexCount() - p.EdgeCount() + p.FaceCount()
}

// FaceDegree returns the number of sides of face f.
func (p *Polyhedron) FaceDegree(f int) int {
	return p.Faces[f].Degree
}

// FaceVertices returns the vertices of face f in boundary order.
func (p *Polyhedron) FaceVertices(f int) []int {
	vs := make([]int, 0, p.Faces[f].Degree)
	start := p.Faces[f].Edge
	e := start
	for {
		vs = append(vs, p.HalfEdges[e].Origin)
		e = p.HalfEdges[e].Next
		if e == start {
			break
		}
	}
	return vs
}

// VertexDegree returns the number of distinct vertices sharing an edge
// with v.
func (p *Polyhedron) VertexDegree(v int) int {
	if p.vertexEdge[v] == None {
		return 0
	}
	seen := make(map[int]struct{})
	for e, he := range p.HalfEdges {
		switch {
		case he.Origin == v:
			seen[p.Target(e)] = struct{}{}
		case p.Target(e) == v:
			seen[he.Origin] = struct{}{}
		}
	}
	return len(seen)
}

// Triangulate returns the faces as triangles, fanning each face from its
// first vertex.
func (p *Polyhedron) Triangulate() []int {
	var out []int
	for f := range p.Faces {
		vs := p.FaceVertices(f)
		for i := 1; i+1 < len(vs); i++ {
			out = append(out, vs[0], vs[i], vs[i+1])
		}
	}
	return out
}

// Volume returns the signed enclosed volume. It is positive for a closed
// surface whose faces wind counter-clockwise seen from outside.
func (p *Polyhedron) Volume() float64 {
	var vol float64
	for f := range p.Faces {
		vs := p.FaceVertices(f)
		a := p.Points[vs[0]]
		for i := 1; i+1 < len(vs); i++ {
			b := p.Points[vs[i]]
			c := p.Points[vs[i+1]]
			vol += a.Dot(b.Cross(c))
		}
	}
	return vol / 6
}

// Bounds returns the axis-aligned box of the vertices used by faces.
func (p *Polyhedron) Bounds() (min, max v3.Vec) {
	min = v3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max = v3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for v, e := range p.vertexEdge {
		if e == None {
			continue
		}
		pt := p.Points[v]
		min = v3.Vec{X: math.Min(min.X, pt.X), Y: math.Min(min.Y, pt.Y), Z: math.Min(min.Z, pt.Z)}
		max = v3.Vec{X: math.Max(max.X, pt.X), Y: math.Max(max.Y, pt.Y), Z: math.Max(max.Z, pt.Z)}
	}
	return min, max
}
