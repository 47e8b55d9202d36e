package meshgen

import (
	"errors"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Point3 is a mesh vertex position.
type Point3 = v3.Vec

// Errors reported by parameter validation and buffer checks.
var (
	ErrInvalidParameter = errors.New("meshgen: invalid parameter")
	ErrMalformedIndices = errors.New("meshgen: malformed index buffer")
	ErrIndexOutOfRange  = errors.New("meshgen: index out of range")
)

// onSphere returns p projected onto the sphere of the given radius.
func onSphere(p Point3, radius float64) Point3 {
	return p.Normalize().MulScalar(radius)
}
