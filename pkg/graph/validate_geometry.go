package graph

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/chazu/facet/pkg/meshgen"
)

// ---------------------------------------------------------------------------
// Tier 2: geometric validation (errors and warnings)
// ---------------------------------------------------------------------------

// validateGeometry runs all Tier 2 geometric checks.
// Returns errors (blocking) and warnings (advisory) separately.
func validateGeometry(g *Scene) ([]ValidationError, []ValidationWarning) {
	var errs []ValidationError
	var warnings []ValidationWarning

	errs = append(errs, validateFiniteTransforms(g)...)

	warnings = append(warnings, validateOpenSurfaces(g)...)
	warnings = append(warnings, validateQuadRequests(g)...)
	warnings = append(warnings, validateMirrors(g)...)
	warnings = append(warnings, validateDuplicatePlacements(g)...)

	return errs, warnings
}

func finite(v *Vec3) bool {
	if v == nil {
		return true
	}
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// validateFiniteTransforms rejects NaN or infinite transform components.
func validateFiniteTransforms(g *Scene) []ValidationError {
	var errs []ValidationError

	for _, node := range g.Nodes {
		td, ok := node.Data.(TransformData)
		if !ok {
			continue
		}
		if !finite(td.Translation) || !finite(td.Rotation) || !finite(td.Scale) {
			errs = append(errs, ValidationError{
				NodeID:   node.ID,
				Message:  "transform has a non-finite component",
				Severity: SeverityError,
			})
		}
	}

	return errs
}

// validateOpenSurfaces warns about shapes that produce a surface with
// border edges. Such solids have no enclosed volume.
func validateOpenSurfaces(g *Scene) []ValidationWarning {
	var warnings []ValidationWarning

	for _, node := range g.Nodes {
		sd, ok := node.Data.(ShapeData)
		if !ok || sd.Shape == nil {
			continue
		}
		if !meshgen.Closed(sd.Shape) {
			warnings = append(warnings, ValidationWarning{
				NodeID:  node.ID,
				Message: fmt.Sprintf("%s %q produces an open surface", sd.Shape.Kind(), node.DisplayName()),
			})
		}
	}

	return warnings
}

// validateQuadRequests warns when quads are requested from a shape that
// only emits triangles.
func validateQuadRequests(g *Scene) []ValidationWarning {
	var warnings []ValidationWarning

	for _, node := range g.Nodes {
		sd, ok := node.Data.(ShapeData)
		if !ok || sd.Shape == nil || !sd.AllowQuads {
			continue
		}
		if !meshgen.HasQuads(sd.Shape) {
			warnings = append(warnings, ValidationWarning{
				NodeID:  node.ID,
				Message: fmt.Sprintf("%s has no quad faces; quads ignored", sd.Shape.Kind()),
			})
		}
	}

	return warnings
}

// validateMirrors warns about scales with a negative determinant.
func validateMirrors(g *Scene) []ValidationWarning {
	var warnings []ValidationWarning

	for _, node := range g.Nodes {
		td, ok := node.Data.(TransformData)
		if !ok || td.Scale == nil {
			continue
		}
		if td.Scale.X*td.Scale.Y*td.Scale.Z < 0 {
			warnings = append(warnings, ValidationWarning{
				NodeID:  node.ID,
				Message: "scale mirrors its child; winding is reversed on output",
			})
		}
	}

	return warnings
}

func vecKey(v *Vec3) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g,%g,%g", v.X, v.Y, v.Z)
}

// validateDuplicatePlacements warns when two transforms place the same
// child identically, producing coincident geometry.
func validateDuplicatePlacements(g *Scene) []ValidationWarning {
	var warnings []ValidationWarning

	// Visit nodes in ID order so the reported duplicate is stable.
	ids := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)

	seen := make(map[string]NodeID)
	for _, id := range ids {
		node := g.Nodes[NodeID(id)]
		td, ok := node.Data.(TransformData)
		if !ok || len(node.Children) != 1 {
			continue
		}
		key := strings.Join([]string{
			string(node.Children[0]), vecKey(td.Translation), vecKey(td.Rotation), vecKey(td.Scale),
		}, "|")
		if first, dup := seen[key]; dup {
			warnings = append(warnings, ValidationWarning{
				NodeID:  node.ID,
				Message: fmt.Sprintf("placement duplicates node %s", first.Short()),
			})
			continue
		}
		seen[key] = node.ID
	}

	return warnings
}
