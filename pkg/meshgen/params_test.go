package meshgen

import (
	"errors"
	"math"
	"testing"
)

func TestDefaults(t *testing.T) {
	if p := DefaultUVSphereParams(); p.Meridians != 32 || p.Parallels != 32 || p.Scale != 1 {
		t.Errorf("DefaultUVSphereParams() = %+v", p)
	}
	if p := DefaultNormalizedCubeParams(); p.Divisions != 32 || p.Scale != 1 {
		t.Errorf("DefaultNormalizedCubeParams() = %+v", p)
	}
	if p := DefaultPlaneParams(); p.Width != 1 || p.Height != 1 || p.DivisionsX != 4 || p.DivisionsZ != 4 {
		t.Errorf("DefaultPlaneParams() = %+v", p)
	}
	p := DefaultTorusParams()
	if p.RadialDivisions != 16 || p.TubularDivisions != 16 || p.Radius != 0.5 || p.Tube != 0.2 || p.Arc != 2*math.Pi {
		t.Errorf("DefaultTorusParams() = %+v", p)
	}
	c := DefaultCylinderParams()
	if c.RadiusTop != 0.5 || c.RadiusBottom != 0.5 || c.Height != 1 || c.RadialSegments != 16 || c.HeightSegments != 1 || c.OpenEnded {
		t.Errorf("DefaultCylinderParams() = %+v", c)
	}
}

func TestDefaultsValidate(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			s, err := DefaultShape(k)
			if err != nil {
				t.Fatalf("DefaultShape(%s) error = %v", k, err)
			}
			if s.Kind() != k {
				t.Errorf("Kind() = %s, want %s", s.Kind(), k)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
	}{
		{"sphere two meridians", UVSphereParams{Meridians: 2, Parallels: 8, Scale: 1}},
		{"sphere one parallel", UVSphereParams{Meridians: 8, Parallels: 1, Scale: 1}},
		{"sphere zero scale", UVSphereParams{Meridians: 8, Parallels: 8}},
		{"normalized cube zero divisions", NormalizedCubeParams{Scale: 1}},
		{"normalized cube NaN scale", NormalizedCubeParams{Divisions: 2, Scale: math.NaN()}},
		{"plane zero width", PlaneParams{Height: 1, DivisionsX: 1, DivisionsZ: 1}},
		{"plane zero divisions", PlaneParams{Width: 1, Height: 1, DivisionsX: 0, DivisionsZ: 1}},
		{"torus negative tube", TorusParams{RadialDivisions: 4, TubularDivisions: 4, Radius: 1, Tube: -1, Arc: 1}},
		{"torus arc over a turn", TorusParams{RadialDivisions: 4, TubularDivisions: 4, Radius: 1, Tube: 0.1, Arc: 7}},
		{"torus zero arc", TorusParams{RadialDivisions: 4, TubularDivisions: 4, Radius: 1, Tube: 0.1}},
		{"cylinder two segments", CylinderParams{RadiusTop: 1, RadiusBottom: 1, Height: 1, RadialSegments: 2, HeightSegments: 1}},
		{"cylinder zero radii", CylinderParams{Height: 1, RadialSegments: 8, HeightSegments: 1}},
		{"cylinder infinite height", CylinderParams{RadiusTop: 1, Height: math.Inf(1), RadialSegments: 8, HeightSegments: 1}},
		{"solid not fixed", ScaledSolid{Solid: KindTorus, Scale: 1}},
		{"solid negative scale", ScaledSolid{Solid: KindCube, Scale: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.Validate()
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("Validate() = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestConeIsValid(t *testing.T) {
	p := CylinderParams{RadiusTop: 0, RadiusBottom: 1, Height: 2, RadialSegments: 8, HeightSegments: 2}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil for a cone", err)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if got, err := ParseKind("uv_sphere"); err != nil || got != KindUVSphere {
		t.Errorf("ParseKind(uv_sphere) = %v, %v", got, err)
	}
	if _, err := ParseKind("teapot"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("ParseKind(teapot) error = %v, want ErrInvalidParameter", err)
	}
	if got := Kind(99).String(); got != "Kind(99)" {
		t.Errorf("Kind(99).String() = %q", got)
	}
}
