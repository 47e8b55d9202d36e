package meshgen

import (
	"fmt"
	"strings"
)

// Kind enumerates the shapes this package can generate.
type Kind int

const (
	KindCube Kind = iota
	KindPlane
	KindUVSphere
	KindNormalizedCube
	KindTorus
	KindCylinder
	KindTetrahedron
	KindOctahedron
	KindIcosahedron
	KindDodecahedron
)

var kindNames = [...]string{
	KindCube:           "cube",
	KindPlane:          "plane",
	KindUVSphere:       "uv-sphere",
	KindNormalizedCube: "normalized-cube",
	KindTorus:          "torus",
	KindCylinder:       "cylinder",
	KindTetrahedron:    "tetrahedron",
	KindOctahedron:     "octahedron",
	KindIcosahedron:    "icosahedron",
	KindDodecahedron:   "dodecahedron",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsFixedSolid reports whether k is a shape described by a scale alone.
func (k Kind) IsFixedSolid() bool {
	switch k {
	case KindCube, KindTetrahedron, KindOctahedron, KindIcosahedron, KindDodecahedron:
		return true
	}
	return false
}

// ParseKind maps a shape name to its Kind. Underscores are accepted in
// place of hyphens.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if name == n || name == strings.ReplaceAll(n, "-", "_") {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown shape %q", ErrInvalidParameter, name)
}

// Kinds returns every shape kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, len(kindNames))
	for i := range kindNames {
		ks[i] = Kind(i)
	}
	return ks
}
