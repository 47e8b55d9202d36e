package meshgen

import (
	"fmt"
	"math"
)

// Shape is a parameter record for one shape family.
type Shape interface {
	Kind() Kind
	Validate() error
}

// UVSphereParams describes a latitude/longitude sphere.
type UVSphereParams struct {
	Meridians int     `yaml:"meridians" json:"meridians"`
	Parallels int     `yaml:"parallels" json:"parallels"`
	Scale     float64 `yaml:"scale" json:"scale"`
}

// DefaultUVSphereParams returns 32 meridians, 32 parallels, unit scale.
func DefaultUVSphereParams() UVSphereParams {
	return UVSphereParams{Meridians: 32, Parallels: 32, Scale: 1}
}

// Kind returns KindUVSphere.
func (UVSphereParams) Kind() Kind { return KindUVSphere }

// Validate requires at least 3 meridians, 2 parallels and a positive scale.
func (p UVSphereParams) Validate() error {
	if err := atLeast("meridians", p.Meridians, 3); err != nil {
		return err
	}
	if err := atLeast("parallels", p.Parallels, 2); err != nil {
		return err
	}
	return positive("scale", p.Scale)
}

// NormalizedCubeParams describes a subdivided cube projected onto a sphere.
type NormalizedCubeParams struct {
	Divisions int     `yaml:"divisions" json:"divisions"`
	Scale     float64 `yaml:"scale" json:"scale"`
}

// DefaultNormalizedCubeParams returns 32 divisions per edge, unit scale.
func DefaultNormalizedCubeParams() NormalizedCubeParams {
	return NormalizedCubeParams{Divisions: 32, Scale: 1}
}

// Kind returns KindNormalizedCube.
func (NormalizedCubeParams) Kind() Kind { return KindNormalizedCube }

// Validate requires at least one division and a positive scale.
func (p NormalizedCubeParams) Validate() error {
	if err := atLeast("divisions", p.Divisions, 1); err != nil {
		return err
	}
	return positive("scale", p.Scale)
}

// PlaneParams describes a grid in the XZ plane centred on the origin.
type PlaneParams struct {
	Width      float64 `yaml:"width" json:"width"`
	Height     float64 `yaml:"height" json:"height"`
	DivisionsX int     `yaml:"divisions_x" json:"divisionsX"`
	DivisionsZ int     `yaml:"divisions_z" json:"divisionsZ"`
}

// DefaultPlaneParams returns a unit plane with a 4x4 grid.
func DefaultPlaneParams() PlaneParams {
	return PlaneParams{Width: 1, Height: 1, DivisionsX: 4, DivisionsZ: 4}
}

// Kind returns KindPlane.
func (PlaneParams) Kind() Kind { return KindPlane }

// Validate requires positive extents and at least one division per axis.
func (p PlaneParams) Validate() error {
	if err := positive("width", p.Width); err != nil {
		return err
	}
	if err := positive("height", p.Height); err != nil {
		return err
	}
	if err := atLeast("divisions_x", p.DivisionsX, 1); err != nil {
		return err
	}
	return atLeast("divisions_z", p.DivisionsZ, 1)
}

// TorusParams describes a torus around the Y axis. Arc is the sweep
// around the axis in radians.
type TorusParams struct {
	RadialDivisions  int     `yaml:"radial_divisions" json:"radialDivisions"`
	TubularDivisions int     `yaml:"tubular_divisions" json:"tubularDivisions"`
	Radius           float64 `yaml:"radius" json:"radius"`
	Tube             float64 `yaml:"tube" json:"tube"`
	Arc              float64 `yaml:"arc" json:"arc"`
}

// DefaultTorusParams returns a full 16x16 torus of radius 0.5, tube 0.2.
func DefaultTorusParams() TorusParams {
	return TorusParams{
		RadialDivisions:  16,
		TubularDivisions: 16,
		Radius:           0.5,
		Tube:             0.2,
		Arc:              2 * math.Pi,
	}
}

// Kind returns KindTorus.
func (TorusParams) Kind() Kind { return KindTorus }

// Validate requires positive radii and divisions, and an arc no larger
// than a full turn.
func (p TorusParams) Validate() error {
	if err := atLeast("radial_divisions", p.RadialDivisions, 1); err != nil {
		return err
	}
	if err := atLeast("tubular_divisions", p.TubularDivisions, 1); err != nil {
		return err
	}
	if err := positive("radius", p.Radius); err != nil {
		return err
	}
	if err := positive("tube", p.Tube); err != nil {
		return err
	}
	if err := positive("arc", p.Arc); err != nil {
		return err
	}
	if p.Arc > 2*math.Pi+1e-9 {
		return fmt.Errorf("%w: arc %g exceeds a full turn", ErrInvalidParameter, p.Arc)
	}
	return nil
}

// CylinderParams describes a capped, possibly tapered, cylinder along Y.
type CylinderParams struct {
	RadiusTop      float64 `yaml:"radius_top" json:"radiusTop"`
	RadiusBottom   float64 `yaml:"radius_bottom" json:"radiusBottom"`
	Height         float64 `yaml:"height" json:"height"`
	RadialSegments int     `yaml:"radial_segments" json:"radialSegments"`
	HeightSegments int     `yaml:"height_segments" json:"heightSegments"`
	OpenEnded      bool    `yaml:"open_ended" json:"openEnded"`
}

// DefaultCylinderParams returns a closed unit-height cylinder of radius 0.5
// with 16 radial segments.
func DefaultCylinderParams() CylinderParams {
	return CylinderParams{
		RadiusTop:      0.5,
		RadiusBottom:   0.5,
		Height:         1,
		RadialSegments: 16,
		HeightSegments: 1,
	}
}

// Kind returns KindCylinder.
func (CylinderParams) Kind() Kind { return KindCylinder }

// Validate requires non-negative radii that are not both zero, a positive
// height and enough segments to close a ring.
func (p CylinderParams) Validate() error {
	if err := nonNegative("radius_top", p.RadiusTop); err != nil {
		return err
	}
	if err := nonNegative("radius_bottom", p.RadiusBottom); err != nil {
		return err
	}
	if p.RadiusTop == 0 && p.RadiusBottom == 0 {
		return fmt.Errorf("%w: radius_top and radius_bottom are both zero", ErrInvalidParameter)
	}
	if err := positive("height", p.Height); err != nil {
		return err
	}
	if err := atLeast("radial_segments", p.RadialSegments, 3); err != nil {
		return err
	}
	return atLeast("height_segments", p.HeightSegments, 1)
}

// ScaledSolid selects one of the fixed solids (cube, tetrahedron,
// octahedron, icosahedron, dodecahedron) at a uniform scale.
type ScaledSolid struct {
	Solid Kind    `yaml:"-" json:"-"`
	Scale float64 `yaml:"scale" json:"scale"`
}

// DefaultScaledSolid returns k at unit scale.
func DefaultScaledSolid(k Kind) ScaledSolid {
	return ScaledSolid{Solid: k, Scale: 1}
}

// Kind returns the selected solid.
func (s ScaledSolid) Kind() Kind { return s.Solid }

// Validate requires a fixed-solid kind and a positive scale.
func (s ScaledSolid) Validate() error {
	if !s.Solid.IsFixedSolid() {
		return fmt.Errorf("%w: %s is not a fixed solid", ErrInvalidParameter, s.Solid)
	}
	return positive("scale", s.Scale)
}

// DefaultShape returns the default parameter record for k.
func DefaultShape(k Kind) (Shape, error) {
	switch k {
	case KindPlane:
		return DefaultPlaneParams(), nil
	case KindUVSphere:
		return DefaultUVSphereParams(), nil
	case KindNormalizedCube:
		return DefaultNormalizedCubeParams(), nil
	case KindTorus:
		return DefaultTorusParams(), nil
	case KindCylinder:
		return DefaultCylinderParams(), nil
	}
	if k.IsFixedSolid() {
		return DefaultScaledSolid(k), nil
	}
	return nil, fmt.Errorf("%w: unknown shape %s", ErrInvalidParameter, k)
}

func atLeast(name string, v, min int) error {
	if v < min {
		return fmt.Errorf("%w: %s is %d, must be at least %d", ErrInvalidParameter, name, v, min)
	}
	return nil
}

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s is %g, must be positive and finite", ErrInvalidParameter, name, v)
	}
	return nil
}

func nonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s is %g, must be non-negative and finite", ErrInvalidParameter, name, v)
	}
	return nil
}
