// Package tessellate walks a scene graph and produces triangle meshes
// using a geometry kernel. One mesh is produced per shape reached.
package tessellate

import (
	"fmt"

	"github.com/chazu/facet/pkg/graph"
	"github.com/chazu/facet/pkg/kernel"
	"github.com/chazu/facet/pkg/polyhedron"
)

// transformStack accumulates spatial transforms during graph traversal.
type transformStack struct {
	translations []graph.Vec3
	rotations    []graph.Vec3
	scales       []graph.Vec3
}

func newTransformStack() *transformStack {
	return &transformStack{}
}

func (ts *transformStack) push(td graph.TransformData) {
	var t, r graph.Vec3
	s := graph.Vec3{X: 1, Y: 1, Z: 1}
	if td.Translation != nil {
		t = *td.Translation
	}
	if td.Rotation != nil {
		r = *td.Rotation
	}
	if td.Scale != nil {
		s = *td.Scale
	}
	ts.translations = append(ts.translations, t)
	ts.rotations = append(ts.rotations, r)
	ts.scales = append(ts.scales, s)
}

func (ts *transformStack) pop() {
	if n := len(ts.translations); n > 0 {
		ts.translations = ts.translations[:n-1]
		ts.rotations = ts.rotations[:n-1]
		ts.scales = ts.scales[:n-1]
	}
}

// accumulatedTranslation returns the sum of all translations on the stack.
func (ts *transformStack) accumulatedTranslation() graph.Vec3 {
	var sum graph.Vec3
	for _, t := range ts.translations {
		sum = sum.Add(t)
	}
	return sum
}

// accumulatedRotation returns the sum of all rotations on the stack.
func (ts *transformStack) accumulatedRotation() graph.Vec3 {
	var sum graph.Vec3
	for _, r := range ts.rotations {
		sum = sum.Add(r)
	}
	return sum
}

// accumulatedScale returns the component-wise product of all scales.
func (ts *transformStack) accumulatedScale() graph.Vec3 {
	p := graph.Vec3{X: 1, Y: 1, Z: 1}
	for _, s := range ts.scales {
		p = p.Mul(s)
	}
	return p
}

// Tessellate walks the scene and produces one triangle mesh per shape
// node reached from the roots, using the provided geometry kernel. A root
// nested under another node is reached only through its parent, and a
// scene without roots is walked from its top-level nodes instead. The
// tessellator is read-only and never mutates the scene.
func Tessellate(g *graph.Scene, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if g == nil {
		return nil, nil
	}

	w := &walker{g: g, f: polyhedron.NewFactory(k), ts: newTransformStack()}

	var meshes []*kernel.Mesh
	for _, rootID := range g.DrawRoots() {
		root := g.Get(rootID)
		if root == nil {
			continue
		}
		collected, err := w.walk(root)
		if err != nil {
			return nil, fmt.Errorf("tessellate: error walking root %s: %w", rootID.Short(), err)
		}
		meshes = append(meshes, collected...)
	}

	return meshes, nil
}

type walker struct {
	g  *graph.Scene
	f  *polyhedron.Factory
	ts *transformStack
}

// walk recursively traverses a node and its children, collecting meshes.
func (w *walker) walk(n *graph.Node) ([]*kernel.Mesh, error) {
	switch n.Kind {
	case graph.NodeShape:
		return w.shape(n)

	case graph.NodeTransform:
		td, ok := n.Data.(graph.TransformData)
		if !ok {
			return nil, fmt.Errorf("transform node %s has unexpected data type %T", n.ID.Short(), n.Data)
		}
		w.ts.push(td)
		defer w.ts.pop()
		return w.children(n)

	case graph.NodeGroup:
		return w.children(n)

	default:
		return nil, fmt.Errorf("unknown node kind: %v", n.Kind)
	}
}

func (w *walker) children(n *graph.Node) ([]*kernel.Mesh, error) {
	var meshes []*kernel.Mesh
	for _, child := range w.g.Children(n) {
		collected, err := w.walk(child)
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, collected...)
	}
	return meshes, nil
}

// shape builds the solid for a shape node and places it with the
// accumulated rotation, scale and translation, in that order.
func (w *walker) shape(n *graph.Node) ([]*kernel.Mesh, error) {
	sd, ok := n.Data.(graph.ShapeData)
	if !ok || sd.Shape == nil {
		return nil, fmt.Errorf("shape node %s has unsupported data type %T", n.ID.Short(), n.Data)
	}

	k := w.f.Kernel()
	solid, err := w.f.Create(sd.Shape, sd.AllowQuads)
	if err != nil {
		return nil, fmt.Errorf("node %s: %w", n.DisplayName(), err)
	}

	rot := w.ts.accumulatedRotation()
	if rot != (graph.Vec3{}) {
		solid = k.Rotate(solid, rot.X, rot.Y, rot.Z)
	}

	scale := w.ts.accumulatedScale()
	if scale != (graph.Vec3{X: 1, Y: 1, Z: 1}) {
		solid = k.Scale(solid, scale.X, scale.Y, scale.Z)
	}

	trans := w.ts.accumulatedTranslation()
	if trans != (graph.Vec3{}) {
		solid = k.Translate(solid, trans.X, trans.Y, trans.Z)
	}

	mesh, err := k.ToMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("tessellate: ToMesh failed for node %s: %w", n.ID.Short(), err)
	}
	mesh.PartName = n.DisplayName()

	return []*kernel.Mesh{mesh}, nil
}
