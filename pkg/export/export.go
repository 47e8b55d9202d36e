// Package export writes render meshes and raw polyhedral buffers to disk
// formats: binary STL through the sdfx renderer, 3MF through go3mf, JSON
// in the render mesh layout, and Wavefront OBJ.
package export

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chazu/facet/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/hpinc/go3mf"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("export: unknown format")

// Format names an output file format.
type Format string

const (
	FormatSTL  Format = "stl"
	Format3MF  Format = "3mf"
	FormatJSON Format = "json"
	FormatOBJ  Format = "obj"
)

// Formats lists every supported format.
var Formats = []Format{FormatSTL, Format3MF, FormatJSON, FormatOBJ}

// ParseFormat maps a case-insensitive name, with or without a leading
// dot, to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "."))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Triangles flattens render meshes into sdfx triangles.
func Triangles(meshes []*kernel.Mesh) []*sdf.Triangle3 {
	var n int
	for _, m := range meshes {
		n += m.TriangleCount()
	}
	out := make([]*sdf.Triangle3, 0, n)
	for _, m := range meshes {
		vert := func(i uint32) v3.Vec {
			return v3.Vec{
				X: float64(m.Vertices[i*3]),
				Y: float64(m.Vertices[i*3+1]),
				Z: float64(m.Vertices[i*3+2]),
			}
		}
		for t := 0; t+2 < len(m.Indices); t += 3 {
			out = append(out, &sdf.Triangle3{
				vert(m.Indices[t]),
				vert(m.Indices[t+1]),
				vert(m.Indices[t+2]),
			})
		}
	}
	return out
}

// WriteSTL writes all meshes into one binary STL file.
func WriteSTL(path string, meshes []*kernel.Mesh) error {
	if err := render.SaveSTL(path, Triangles(meshes)); err != nil {
		return fmt.Errorf("export: stl: %w", err)
	}
	return nil
}

// merge concatenates meshes into a single mesh. A lone mesh keeps its
// part name.
func merge(meshes []*kernel.Mesh) *kernel.Mesh {
	out := &kernel.Mesh{}
	for _, m := range meshes {
		out.Append(m)
	}
	if len(meshes) == 1 {
		out.PartName = meshes[0].PartName
	}
	return out
}

func toPoint3D(m *kernel.Mesh, i int) go3mf.Point3D {
	return go3mf.Point3D{m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]}
}

// Write3MF writes all meshes as one mesh object in a 3MF package, with the
// default millimetre unit.
func Write3MF(path string, meshes []*kernel.Mesh) error {
	m := merge(meshes)

	var mesh go3mf.Mesh
	mesh.Vertices.Vertex = make([]go3mf.Point3D, 0, m.VertexCount())
	for i := 0; i < m.VertexCount(); i++ {
		mesh.Vertices.Vertex = append(mesh.Vertices.Vertex, toPoint3D(m, i))
	}
	mesh.Triangles.Triangle = make([]go3mf.Triangle, 0, m.TriangleCount())
	for t := 0; t+2 < len(m.Indices); t += 3 {
		mesh.Triangles.Triangle = append(mesh.Triangles.Triangle, go3mf.Triangle{
			V1: m.Indices[t], V2: m.Indices[t+1], V3: m.Indices[t+2],
		})
	}

	var model go3mf.Model
	obj := &go3mf.Object{Name: m.PartName, Mesh: &mesh}
	obj.ID = model.Resources.UnusedID()
	model.Resources.Objects = append(model.Resources.Objects, obj)
	model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: obj.ID})

	f, err := go3mf.CreateWriter(path)
	if err != nil {
		return fmt.Errorf("export: 3mf: %w", err)
	}
	if err := f.Encode(&model); err != nil {
		f.Close()
		return fmt.Errorf("export: 3mf: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: 3mf: %w", err)
	}
	return nil
}

// document is the top-level JSON layout.
type document struct {
	Meshes []*kernel.Mesh `json:"meshes"`
}

// WriteJSON writes the meshes as {"meshes": [...]}, one object per mesh
// with flat vertex, normal and index arrays.
func WriteJSON(w io.Writer, meshes []*kernel.Mesh) error {
	if meshes == nil {
		meshes = []*kernel.Mesh{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Meshes: meshes}); err != nil {
		return fmt.Errorf("export: json: %w", err)
	}
	return nil
}

// WriteOBJ writes raw generator output. Triangles and quads are runs of 3
// and 4 zero-based indices into points; quads stay 4-vertex faces.
func WriteOBJ(w io.Writer, points []v3.Vec, triangles, quads []int) error {
	if len(triangles)%3 != 0 || len(quads)%4 != 0 {
		return fmt.Errorf("export: obj: index buffers of length %d and %d are not whole faces", len(triangles), len(quads))
	}
	bw := bufio.NewWriter(w)
	for _, p := range points {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	if err := writeFaces(bw, triangles, 3, 1, len(points)); err != nil {
		return err
	}
	if err := writeFaces(bw, quads, 4, 1, len(points)); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteMeshesOBJ writes render meshes as named OBJ objects with vertex
// normals.
func WriteMeshesOBJ(w io.Writer, meshes []*kernel.Mesh) error {
	bw := bufio.NewWriter(w)
	base := 1
	for _, m := range meshes {
		if m.PartName != "" {
			fmt.Fprintf(bw, "o %s\n", m.PartName)
		}
		n := m.VertexCount()
		for i := 0; i < n; i++ {
			fmt.Fprintf(bw, "v %g %g %g\n", m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2])
		}
		hasNormals := len(m.Normals) == len(m.Vertices)
		if hasNormals {
			for i := 0; i < n; i++ {
				fmt.Fprintf(bw, "vn %g %g %g\n", m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2])
			}
		}
		for t := 0; t+2 < len(m.Indices); t += 3 {
			a, b, c := base+int(m.Indices[t]), base+int(m.Indices[t+1]), base+int(m.Indices[t+2])
			if a-base >= n || b-base >= n || c-base >= n {
				return fmt.Errorf("export: obj: mesh %q index out of range", m.PartName)
			}
			if hasNormals {
				fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
			} else {
				fmt.Fprintf(bw, "f %d %d %d\n", a, b, c)
			}
		}
		base += n
	}
	return bw.Flush()
}

func writeFaces(w io.Writer, idx []int, degree, base, n int) error {
	for f := 0; f+degree <= len(idx); f += degree {
		line := "f"
		for _, i := range idx[f : f+degree] {
			if i < 0 || i >= n {
				return fmt.Errorf("export: obj: index %d out of range [0, %d)", i, n)
			}
			line += fmt.Sprintf(" %d", i+base)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
