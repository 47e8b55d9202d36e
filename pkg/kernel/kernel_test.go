package kernel

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// --- Mesh helper method tests ---

func TestMeshVertexCount(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		want     int
	}{
		{"empty", nil, 0},
		{"one vertex", []float32{1, 2, 3}, 1},
		{"four vertices", []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Vertices: tt.vertices}
			if got := m.VertexCount(); got != tt.want {
				t.Errorf("VertexCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshTriangleCount(t *testing.T) {
	tests := []struct {
		name    string
		indices []uint32
		want    int
	}{
		{"empty", nil, 0},
		{"one triangle", []uint32{0, 1, 2}, 1},
		{"two triangles", []uint32{0, 1, 2, 2, 3, 0}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Indices: tt.indices}
			if got := m.TriangleCount(); got != tt.want {
				t.Errorf("TriangleCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshIsEmpty(t *testing.T) {
	t.Run("empty mesh", func(t *testing.T) {
		m := &Mesh{}
		if !m.IsEmpty() {
			t.Error("IsEmpty() = false for empty mesh, want true")
		}
	})
	t.Run("non-empty mesh", func(t *testing.T) {
		m := &Mesh{Vertices: []float32{1, 2, 3}}
		if m.IsEmpty() {
			t.Error("IsEmpty() = true for non-empty mesh, want false")
		}
	})
}

func TestMeshAppend(t *testing.T) {
	m := &Mesh{
		Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:  []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		Indices:  []uint32{0, 1, 2},
	}
	m.Append(&Mesh{
		Vertices: []float32{0, 0, 1, 1, 0, 1, 0, 1, 1},
		Normals:  []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		Indices:  []uint32{0, 1, 2},
	})
	if m.VertexCount() != 6 || m.TriangleCount() != 2 {
		t.Fatalf("after Append: %d vertices, %d triangles", m.VertexCount(), m.TriangleCount())
	}
	want := []uint32{0, 1, 2, 3, 4, 5}
	for i, idx := range m.Indices {
		if idx != want[i] {
			t.Fatalf("Indices = %v, want %v", m.Indices, want)
		}
	}
}

func TestComputeVertexNormals(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		indices  []uint32
		want     []float32
	}{
		{
			name:     "ccw in xy plane",
			vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
			indices:  []uint32{0, 1, 2},
			want:     []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		},
		{
			name:     "cw in xy plane",
			vertices: []float32{0, 0, 0, 0, 1, 0, 1, 0, 0},
			indices:  []uint32{0, 1, 2},
			want:     []float32{0, 0, -1, 0, 0, -1, 0, 0, -1},
		},
		{
			name:     "unused vertex",
			vertices: []float32{0, 0, 0, 1, 0, 0, 0, 0, 1, 5, 5, 5},
			indices:  []uint32{0, 1, 2},
			want:     []float32{0, -1, 0, 0, -1, 0, 0, -1, 0, 0, 0, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeVertexNormals(tt.vertices, tt.indices)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if d := got[i] - tt.want[i]; d > 1e-6 || d < -1e-6 {
					t.Fatalf("normals = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestTopologyEuler(t *testing.T) {
	cube := Topology{Vertices: 8, Edges: 18, Faces: 12, Closed: true}
	if got := cube.Euler(); got != 2 {
		t.Errorf("Euler() = %d, want 2", got)
	}
}

// --- Compile-time interface check with a stub kernel ---

// stubSolid is a minimal Solid implementation for testing.
type stubSolid struct {
	minBB, maxBB [3]float64
	topo         Topology
}

func (s *stubSolid) BoundingBox() (min, max [3]float64) {
	return s.minBB, s.maxBB
}

func (s *stubSolid) Topology() Topology { return s.topo }

// stubKernel is a minimal Kernel implementation that proves the interface
// is satisfiable. It tracks bounds and ignores rotation.
type stubKernel struct{}

func (k *stubKernel) Name() string { return "stub" }

func (k *stubKernel) Polyhedron(points []v3.Vec, triangles, quads []int) (Solid, error) {
	s := &stubSolid{topo: Topology{
		Vertices:  len(points),
		Triangles: len(triangles) / 3,
		Quads:     len(quads) / 4,
	}}
	s.topo.Faces = s.topo.Triangles + s.topo.Quads
	for i, p := range points {
		c := [3]float64{p.X, p.Y, p.Z}
		for j := 0; j < 3; j++ {
			if i == 0 || c[j] < s.minBB[j] {
				s.minBB[j] = c[j]
			}
			if i == 0 || c[j] > s.maxBB[j] {
				s.maxBB[j] = c[j]
			}
		}
	}
	return s, nil
}

func (k *stubKernel) Translate(s Solid, x, y, z float64) Solid {
	in := s.(*stubSolid)
	d := [3]float64{x, y, z}
	out := *in
	for j := 0; j < 3; j++ {
		out.minBB[j] += d[j]
		out.maxBB[j] += d[j]
	}
	return &out
}

func (k *stubKernel) Rotate(s Solid, _, _, _ float64) Solid { return s }
func (k *stubKernel) Scale(s Solid, _, _, _ float64) Solid  { return s }

func (k *stubKernel) ToMesh(_ Solid) (*Mesh, error) {
	return &Mesh{}, nil
}

// Compile-time checks that the stubs implement the interfaces.
var _ Solid = (*stubSolid)(nil)
var _ Kernel = (*stubKernel)(nil)

func TestStubKernelPolyhedronBoundingBox(t *testing.T) {
	var k Kernel = &stubKernel{}
	s, err := k.Polyhedron([]v3.Vec{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 20, Z: 30}, {X: 10}}, []int{0, 1, 2}, nil)
	if err != nil {
		t.Fatalf("Polyhedron() error = %v", err)
	}
	s = k.Translate(s, 1, 1, 1)
	min, max := s.BoundingBox()
	if min != [3]float64{1, 1, 1} {
		t.Errorf("min = %v, want [1 1 1]", min)
	}
	if max != [3]float64{11, 21, 31} {
		t.Errorf("max = %v, want [11 21 31]", max)
	}
	if got := s.Topology().Faces; got != 1 {
		t.Errorf("Topology().Faces = %d, want 1", got)
	}
}

func TestStubKernelToMesh(t *testing.T) {
	var k Kernel = &stubKernel{}
	s, _ := k.Polyhedron(nil, nil, nil)
	m, err := k.ToMesh(s)
	if err != nil {
		t.Fatalf("ToMesh() error = %v", err)
	}
	if m == nil {
		t.Fatal("ToMesh() returned nil mesh")
	}
	if !m.IsEmpty() {
		t.Error("stub ToMesh() should return empty mesh")
	}
}
