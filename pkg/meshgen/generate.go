package meshgen

import "fmt"

// Generate fills b with the mesh described by s. The parameters are not
// validated; call s.Validate first when they come from outside.
func Generate(s Shape, b *Buffers) error {
	switch p := s.(type) {
	case UVSphereParams:
		UVSphere(b, p)
	case NormalizedCubeParams:
		NormalizedCube(b, p)
	case PlaneParams:
		Plane(b, p)
	case TorusParams:
		Torus(b, p)
	case CylinderParams:
		Cylinder(b, p)
	case ScaledSolid:
		switch p.Solid {
		case KindCube:
			Cube(b, p.Scale)
		case KindTetrahedron:
			Tetrahedron(b, p.Scale)
		case KindOctahedron:
			Octahedron(b, p.Scale)
		case KindIcosahedron:
			Icosahedron(b, p.Scale)
		case KindDodecahedron:
			Dodecahedron(b, p.Scale)
		default:
			return fmt.Errorf("%w: %s is not a fixed solid", ErrInvalidParameter, p.Solid)
		}
	default:
		return fmt.Errorf("%w: unsupported shape type %T", ErrInvalidParameter, s)
	}
	return nil
}

// Build validates s and generates it into freshly allocated buffers.
func Build(s Shape, keepQuads bool) (*Buffers, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil shape", ErrInvalidParameter)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", s.Kind(), err)
	}
	b := NewBuffers(keepQuads)
	if err := Generate(s, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Closed reports whether s produces a surface without border edges. The
// plane is a sheet, the torus and normalized cube repeat their seam points
// as separate vertices, and an open-ended cylinder has no caps.
func Closed(s Shape) bool {
	switch p := s.(type) {
	case PlaneParams, TorusParams, NormalizedCubeParams:
		return false
	case CylinderParams:
		return !p.OpenEnded
	}
	return true
}

// HasQuads reports whether s emits quad faces in quad mode.
func HasQuads(s Shape) bool {
	switch p := s.(type) {
	case ScaledSolid:
		return p.Solid == KindCube
	case UVSphereParams:
		return p.Parallels > 2
	}
	return s != nil
}
