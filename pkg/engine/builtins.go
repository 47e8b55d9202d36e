package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/facet/pkg/graph"
	"github.com/chazu/facet/pkg/meshgen"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpShape wraps shape parameters returned by a shape builtin before they
// are added to the scene.
type sexpShape struct {
	data graph.ShapeData
}

func (s *sexpShape) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(%s)", s.data.Shape.Kind())
}
func (s *sexpShape) Type() *zygo.RegisteredType { return nil }

// sexpNodeRef wraps a graph.NodeID so it can be passed between builtins.
type sexpNodeRef struct {
	id   graph.NodeID
	name string // human-readable name for error messages
}

func (n *sexpNodeRef) SexpString(ps *zygo.PrintState) string {
	if n.name != "" {
		return fmt.Sprintf("(noderef %q)", n.name)
	}
	return fmt.Sprintf("(noderef %s)", n.id.Short())
}
func (n *sexpNodeRef) Type() *zygo.RegisteredType { return nil }

// sexpVec3 wraps a graph.Vec3.
type sexpVec3 struct {
	vec graph.Vec3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Scene builder
// ---------------------------------------------------------------------------

// sceneBuilder owns the scene under construction and the per-evaluation
// counters that keep anonymous node IDs deterministic.
type sceneBuilder struct {
	g   *graph.Scene
	seq map[string]int
}

func newSceneBuilder(g *graph.Scene) *sceneBuilder {
	return &sceneBuilder{g: g, seq: make(map[string]int)}
}

// path returns prefix/n where n counts prior uses of prefix.
func (b *sceneBuilder) path(prefix string) string {
	n := b.seq[prefix]
	b.seq[prefix] = n + 1
	return fmt.Sprintf("%s/%d", prefix, n)
}

// addShape adds a shape node. Anonymous shapes get a counted path.
func (b *sceneBuilder) addShape(name string, sd graph.ShapeData) (*sexpNodeRef, error) {
	var id graph.NodeID
	if name != "" {
		if b.g.Lookup(name) != nil {
			return nil, fmt.Errorf("name %q already defined", name)
		}
		id = graph.NewNodeID("defshape/" + name)
	} else {
		id = graph.NewNodeID(b.path("shape/" + sd.Shape.Kind().String()))
	}
	b.g.AddNode(&graph.Node{
		ID:   id,
		Kind: graph.NodeShape,
		Name: name,
		Data: sd,
	})
	return &sexpNodeRef{id: id, name: name}, nil
}

// ref resolves a node reference, adding inline shapes as anonymous nodes.
func (b *sceneBuilder) ref(s zygo.Sexp) (*sexpNodeRef, error) {
	switch v := s.(type) {
	case *sexpNodeRef:
		return v, nil
	case *sexpShape:
		return b.addShape("", v.data)
	}
	return nil, fmt.Errorf("expected node reference or shape, got %T (%s)", s, s.SexpString(nil))
}

// ---------------------------------------------------------------------------
// Shape builtins
// ---------------------------------------------------------------------------

// shapeReader parses the keywords of one shape builtin into a Shape.
type shapeReader func(r *argReader) meshgen.Shape

func scaledSolid(k meshgen.Kind) shapeReader {
	return func(r *argReader) meshgen.Shape {
		s := meshgen.DefaultScaledSolid(k)
		if v, ok := r.arg(0); ok {
			f, err := toFloat64(v)
			if err != nil {
				r.fail("scale", err)
			}
			s.Scale = f
		}
		r.number("scale", &s.Scale)
		return s
	}
}

// shapeReaders maps builtin names (after kebab-case conversion) to their
// keyword parsers. Unset keywords keep the record defaults.
var shapeReaders = map[string]shapeReader{
	"cube":         scaledSolid(meshgen.KindCube),
	"tetrahedron":  scaledSolid(meshgen.KindTetrahedron),
	"octahedron":   scaledSolid(meshgen.KindOctahedron),
	"icosahedron":  scaledSolid(meshgen.KindIcosahedron),
	"dodecahedron": scaledSolid(meshgen.KindDodecahedron),

	"plane": func(r *argReader) meshgen.Shape {
		p := meshgen.DefaultPlaneParams()
		r.number("width", &p.Width)
		r.number("height", &p.Height)
		r.integer("divisions-x", &p.DivisionsX)
		r.integer("divisions-z", &p.DivisionsZ)
		return p
	},
	"uv_sphere": func(r *argReader) meshgen.Shape {
		p := meshgen.DefaultUVSphereParams()
		r.integer("meridians", &p.Meridians)
		r.integer("parallels", &p.Parallels)
		r.number("scale", &p.Scale)
		return p
	},
	"normalized_cube": func(r *argReader) meshgen.Shape {
		p := meshgen.DefaultNormalizedCubeParams()
		r.integer("divisions", &p.Divisions)
		r.number("scale", &p.Scale)
		return p
	},
	"torus": func(r *argReader) meshgen.Shape {
		p := meshgen.DefaultTorusParams()
		r.integer("radial", &p.RadialDivisions)
		r.integer("tubular", &p.TubularDivisions)
		r.number("radius", &p.Radius)
		r.number("tube", &p.Tube)
		r.number("arc", &p.Arc)
		return p
	},
	"cylinder": func(r *argReader) meshgen.Shape {
		p := meshgen.DefaultCylinderParams()
		var radius float64
		if r.number("radius", &radius) {
			p.RadiusTop, p.RadiusBottom = radius, radius
		}
		r.number("radius-top", &p.RadiusTop)
		r.number("radius-bottom", &p.RadiusBottom)
		r.number("height", &p.Height)
		r.integer("radial", &p.RadialSegments)
		r.integer("height-segments", &p.HeightSegments)
		r.flag("open-ended", &p.OpenEnded)
		return p
	},
}

// shapeBuiltin wraps a shapeReader as a zygomys function. Every shape
// accepts :quads; parameters are validated before the value is returned.
func shapeBuiltin(read shapeReader) func(*zygo.Zlisp, string, []zygo.Sexp) (zygo.Sexp, error) {
	return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		name = strings.ReplaceAll(name, "_", "-")
		r := newArgReader(name, args)
		sd := graph.ShapeData{Shape: read(r)}
		r.flag("quads", &sd.AllowQuads)
		if err := r.done(); err != nil {
			return zygo.SexpNull, err
		}
		if err := sd.Shape.Validate(); err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
		}
		return &sexpShape{data: sd}, nil
	}
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs all scene DSL builtins into a zygomys environment.
// The builtins operate on the builder's scene, populating it during evaluation.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, b *sceneBuilder) {
	g := b.g

	for name, read := range shapeReaders {
		env.AddFunction(name, shapeBuiltin(read))
	}

	// -----------------------------------------------------------------------
	// (defshape "name" (uv-sphere ...))
	// -----------------------------------------------------------------------
	env.AddFunction("defshape", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 2 {
			return zygo.SexpNull, fmt.Errorf("defshape requires a name and a shape expression")
		}

		shapeName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defshape: name: %w", err)
		}
		body, ok := args[1].(*sexpShape)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("defshape: expected shape expression, got %T", args[1])
		}

		ref, err := b.addShape(shapeName, body.data)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defshape: %w", err)
		}
		return ref, nil
	})

	// -----------------------------------------------------------------------
	// (shape "name")
	// -----------------------------------------------------------------------
	env.AddFunction("shape", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("shape requires a name argument")
		}

		shapeName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("shape: name: %w", err)
		}

		n := g.Lookup(shapeName)
		if n == nil {
			return zygo.SexpNull, fmt.Errorf("shape: no shape named %q", shapeName)
		}

		return &sexpNodeRef{id: n.ID, name: shapeName}, nil
	})

	// -----------------------------------------------------------------------
	// (vec3 1 2 3)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}

		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: x: %w", err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: y: %w", err)
		}
		z, err := toFloat64(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: z: %w", err)
		}

		return &sexpVec3{vec: graph.Vec3{X: x, Y: y, Z: z}}, nil
	})

	// -----------------------------------------------------------------------
	// (place (shape "ball") :at (vec3 0 0 1) :rotate (vec3 0 90 0) :scale 2)
	// -----------------------------------------------------------------------
	env.AddFunction("place", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		r := newArgReader("place", args)

		if len(r.pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("place requires one shape or node reference, got %d", len(r.pa.positional))
		}

		ref, _ := r.arg(0)
		child, err := b.ref(ref)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("place: %w", err)
		}
		g.RemoveRoot(child.id)

		td := graph.TransformData{}
		r.vec3("at", &td.Translation)
		r.vec3("rotate", &td.Rotation)
		r.scale("scale", &td.Scale)
		if err := r.done(); err != nil {
			return zygo.SexpNull, err
		}
		if s := td.Scale; s != nil && (s.X == 0 || s.Y == 0 || s.Z == 0) {
			return zygo.SexpNull, fmt.Errorf("place: scale %s has a zero component", s)
		}

		prefix := "place/" + child.id.Short()
		if child.name != "" {
			prefix = "place/" + child.name
		}
		id := graph.NewNodeID(b.path(prefix))

		g.AddNode(&graph.Node{
			ID:       id,
			Kind:     graph.NodeTransform,
			Children: []graph.NodeID{child.id},
			Data:     td,
		})

		return &sexpNodeRef{id: id}, nil
	})

	// -----------------------------------------------------------------------
	// (group "name" (place ...) (shape "ball") (list ...) ...)
	// -----------------------------------------------------------------------
	env.AddFunction("group", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("group requires a name argument")
		}

		groupName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("group: name: %w", err)
		}
		if g.Lookup(groupName) != nil {
			return zygo.SexpNull, fmt.Errorf("group: name %q already defined", groupName)
		}

		var children []graph.NodeID
		addChild := func(i int, s zygo.Sexp) error {
			ref, err := b.ref(s)
			if err != nil {
				return fmt.Errorf("group: child %d: %w", i, err)
			}
			g.RemoveRoot(ref.id)
			children = append(children, ref.id)
			return nil
		}
		for i := 1; i < len(args); i++ {
			switch args[i].(type) {
			case *zygo.SexpPair, *zygo.SexpArray:
				items, err := sexpListToSlice(args[i])
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("group: child %d: %w", i, err)
				}
				for _, item := range items {
					if err := addChild(i, item); err != nil {
						return zygo.SexpNull, err
					}
				}
			default:
				if err := addChild(i, args[i]); err != nil {
					return zygo.SexpNull, err
				}
			}
		}

		id := graph.NewNodeID("group/" + groupName)
		g.AddNode(&graph.Node{
			ID:       id,
			Kind:     graph.NodeGroup,
			Name:     groupName,
			Children: children,
			Data:     graph.GroupData{},
		})
		g.AddRoot(id)

		return &sexpNodeRef{id: id, name: groupName}, nil
	})
}
