// Package pipeline runs scene scripts and single shapes end to end:
// evaluate, validate, tessellate, and hand back render meshes with
// display colours and JSON-ready diagnostics.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/chazu/facet/pkg/engine"
	"github.com/chazu/facet/pkg/graph"
	"github.com/chazu/facet/pkg/kernel"
	"github.com/chazu/facet/pkg/kernel/manifold"
	"github.com/chazu/facet/pkg/kernel/sdfx"
	"github.com/chazu/facet/pkg/meshgen"
	"github.com/chazu/facet/pkg/polyhedron"
	"github.com/chazu/facet/pkg/tessellate"
	"go.uber.org/zap"
)

// ErrUnknownKernel is returned by NewKernel for unregistered names.
var ErrUnknownKernel = errors.New("pipeline: unknown kernel")

// NewKernel returns the geometry backend registered under name.
func NewKernel(name string) (kernel.Kernel, error) {
	switch name {
	case "", sdfx.Name:
		return sdfx.New(), nil
	case manifold.Name:
		return manifold.New()
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
}

// colorPalette is a default palette used to assign distinct colors to meshes.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// MeshData is the JSON-serializable mesh format handed to viewers.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	PartName string    `json:"partName"`
	Color    string    `json:"color"`
}

// EvalErrorData is a JSON-serializable diagnostic.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result of one run. Slices are never nil so they
// serialize as [] rather than null.
type EvalResult struct {
	Meshes   []MeshData      `json:"meshes"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []EvalErrorData `json:"warnings"`
}

func newResult() EvalResult {
	return EvalResult{
		Meshes:   []MeshData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}
}

func (r *EvalResult) fail(msg string) {
	r.Errors = append(r.Errors, EvalErrorData{Message: msg})
}

func (r *EvalResult) addMeshes(meshes []*kernel.Mesh) {
	for _, m := range meshes {
		color := colorPalette[len(r.Meshes)%len(colorPalette)]
		r.Meshes = append(r.Meshes, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			PartName: m.PartName,
			Color:    color,
		})
	}
}

// OK reports whether the run produced no errors.
func (r EvalResult) OK() bool { return len(r.Errors) == 0 }

// KernelMeshes returns the meshes in kernel form for export. The slices
// are shared with the result.
func (r EvalResult) KernelMeshes() []*kernel.Mesh {
	out := make([]*kernel.Mesh, len(r.Meshes))
	for i, m := range r.Meshes {
		out[i] = &kernel.Mesh{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			PartName: m.PartName,
		}
	}
	return out
}

// Pipeline owns an engine and a kernel. It is safe for sequential reuse;
// the engine serializes generations.
type Pipeline struct {
	engine *engine.Engine
	kernel kernel.Kernel
	log    *zap.Logger
}

// New creates a pipeline on k. A nil logger discards output.
func New(k kernel.Kernel, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		engine: engine.NewEngine(),
		kernel: k,
		log:    log,
	}
}

// Kernel returns the pipeline's geometry backend.
func (p *Pipeline) Kernel() kernel.Kernel { return p.kernel }

// Evaluate takes Lisp source and returns mesh data plus diagnostics.
func (p *Pipeline) Evaluate(source string) EvalResult {
	result := newResult()

	// Step 1: Evaluate the Lisp source into a scene.
	g, evalErrs, err := p.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		p.log.Error("evaluate failed", zap.Error(err))
		result.fail(err.Error())
		return result
	}

	// Step 2: Convert eval errors.
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		p.log.Debug("script errors", zap.Int("count", len(evalErrs)))
		return result
	}

	// Step 3: Validate. Errors stop the run, warnings ride along.
	v := graph.ValidateAll(g)
	for _, e := range v.Errors {
		result.Errors = append(result.Errors, EvalErrorData{
			Line:    sourceLine(g.Get(e.NodeID)),
			Message: e.Message,
		})
	}
	for _, w := range v.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{
			Line:    sourceLine(g.Get(w.NodeID)),
			Message: w.Message,
		})
		p.log.Warn("scene warning", zap.String("message", w.Message))
	}
	if len(v.Errors) > 0 {
		return result
	}

	// Step 4: Tessellate the scene into triangle meshes.
	meshes, err := tessellate.Tessellate(g, p.kernel)
	if err != nil {
		p.log.Error("tessellate failed", zap.Error(err))
		result.fail("tessellation failed: " + err.Error())
		return result
	}

	result.addMeshes(meshes)
	p.log.Debug("evaluated scene",
		zap.Uint64("version", g.Version),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("meshes", len(meshes)),
		zap.String("kernel", p.kernel.Name()),
	)
	return result
}

func sourceLine(n *graph.Node) int {
	if n == nil {
		return 0
	}
	return n.Source.Line
}

// Shape builds a single shape without a script. The mesh is named after
// the shape kind. Topology is reported from the kernel solid.
func (p *Pipeline) Shape(s meshgen.Shape, allowQuads bool) (EvalResult, kernel.Topology) {
	result := newResult()

	solid, err := polyhedron.NewFactory(p.kernel).Create(s, allowQuads)
	if err != nil {
		p.log.Error("create failed", zap.Error(err))
		result.fail(err.Error())
		return result, kernel.Topology{}
	}
	topo := solid.Topology()

	if !meshgen.Closed(s) {
		result.Warnings = append(result.Warnings, EvalErrorData{
			Message: fmt.Sprintf("%s is an open surface", s.Kind()),
		})
	}
	if allowQuads && !meshgen.HasQuads(s) {
		result.Warnings = append(result.Warnings, EvalErrorData{
			Message: fmt.Sprintf("%s has no quad faces; quads ignored", s.Kind()),
		})
	}

	m, err := p.kernel.ToMesh(solid)
	if err != nil {
		p.log.Error("mesh failed", zap.Error(err))
		result.fail(err.Error())
		return result, topo
	}
	m.PartName = s.Kind().String()
	result.addMeshes([]*kernel.Mesh{m})

	p.log.Debug("built shape",
		zap.Stringer("kind", s.Kind()),
		zap.Int("vertices", topo.Vertices),
		zap.Int("edges", topo.Edges),
		zap.Int("faces", topo.Faces),
		zap.Int("euler", topo.Euler()),
		zap.Bool("closed", topo.Closed),
	)
	return result, topo
}
