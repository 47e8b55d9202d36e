package graph

import (
	"math"
	"strings"
	"testing"

	"github.com/chazu/facet/pkg/meshgen"
)

func hasResultWarning(r ValidationResult, substr string) bool {
	for _, w := range r.Warnings {
		if strings.Contains(w.Message, substr) {
			return true
		}
	}
	return false
}

func hasResultError(r ValidationResult, substr string) bool {
	for _, e := range r.Errors {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func singleShape(s meshgen.Shape, quads bool) *Scene {
	g := New()
	id := NewNodeID("defshape/only")
	g.AddNode(&Node{ID: id, Kind: NodeShape, Name: "only", Data: ShapeData{Shape: s, AllowQuads: quads}})
	g.AddRoot(id)
	return g
}

func TestValidateAll_ValidScene(t *testing.T) {
	r := ValidateAll(buildValidScene())
	if len(r.Errors) != 0 || len(r.Warnings) != 0 {
		t.Errorf("ValidateAll() = %d errors, %d warnings, want none", len(r.Errors), len(r.Warnings))
		for _, e := range r.Errors {
			t.Logf("  %s", e)
		}
		for _, w := range r.Warnings {
			t.Logf("  %s", w.Message)
		}
	}
}

func TestValidateAll_OpenSurfaces(t *testing.T) {
	tests := []struct {
		name  string
		shape meshgen.Shape
		open  bool
	}{
		{"plane", meshgen.DefaultPlaneParams(), true},
		{"torus", meshgen.DefaultTorusParams(), true},
		{"normalized cube", meshgen.DefaultNormalizedCubeParams(), true},
		{"open cylinder", meshgen.CylinderParams{RadiusTop: 1, RadiusBottom: 1, Height: 1, RadialSegments: 8, HeightSegments: 1, OpenEnded: true}, true},
		{"cylinder", meshgen.DefaultCylinderParams(), false},
		{"dodecahedron", meshgen.DefaultScaledSolid(meshgen.KindDodecahedron), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidateAll(singleShape(tt.shape, false))
			if got := hasResultWarning(r, "open surface"); got != tt.open {
				t.Errorf("open surface warning = %v, want %v", got, tt.open)
			}
			if len(r.Errors) != 0 {
				t.Errorf("unexpected errors: %v", r.Errors)
			}
		})
	}
}

func TestValidateAll_QuadRequests(t *testing.T) {
	r := ValidateAll(singleShape(meshgen.DefaultScaledSolid(meshgen.KindIcosahedron), true))
	if !hasResultWarning(r, "no quad faces") {
		t.Error("expected quad warning for icosahedron")
	}
	r = ValidateAll(singleShape(meshgen.DefaultScaledSolid(meshgen.KindCube), true))
	if hasResultWarning(r, "no quad faces") {
		t.Error("unexpected quad warning for cube")
	}
}

func TestValidateAll_Mirror(t *testing.T) {
	g := buildValidScene()
	g.Get(NewNodeID("place/die/1")).Data = TransformData{Scale: &Vec3{-1, 1, 1}}

	r := ValidateAll(g)
	if !hasResultWarning(r, "mirrors") {
		t.Error("expected mirror warning")
	}
	if len(r.Errors) != 0 {
		t.Errorf("mirror should not be an error: %v", r.Errors)
	}
}

func TestValidateAll_NonFinite(t *testing.T) {
	g := buildValidScene()
	g.Get(NewNodeID("place/die/1")).Data = TransformData{Translation: &Vec3{math.Inf(1), 0, 0}}

	r := ValidateAll(g)
	if !hasResultError(r, "non-finite") {
		t.Error("expected non-finite error")
	}
	g.Get(NewNodeID("place/die/1")).Data = TransformData{Rotation: &Vec3{0, math.NaN(), 0}}
	r = ValidateAll(g)
	if !hasResultError(r, "non-finite") {
		t.Error("expected non-finite error for NaN")
	}
}

func TestValidateAll_DuplicatePlacement(t *testing.T) {
	g := buildValidScene()
	g.Get(NewNodeID("place/die/1")).Data = TransformData{Translation: &Vec3{-2, 0, 0}}

	r := ValidateAll(g)
	if !hasResultWarning(r, "placement duplicates") {
		t.Error("expected duplicate placement warning")
	}
	n := 0
	for _, w := range r.Warnings {
		if strings.Contains(w.Message, "placement duplicates") {
			n++
		}
	}
	if n != 1 {
		t.Errorf("duplicate placement warnings = %d, want 1", n)
	}
}

func TestValidateAll_SplitsTier1Warnings(t *testing.T) {
	g := buildValidScene()
	g.AddNode(&Node{
		ID: NewNodeID("spare"), Kind: NodeShape, Name: "spare",
		Data: ShapeData{Shape: meshgen.DefaultScaledSolid(meshgen.KindCube)},
	})
	r := ValidateAll(g)
	if !hasResultWarning(r, "orphan") {
		t.Error("orphan warning should land in Warnings")
	}
	if len(r.Errors) != 0 {
		t.Errorf("unexpected errors: %v", r.Errors)
	}
}
