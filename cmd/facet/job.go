package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/chazu/facet/internal/config"
	"github.com/chazu/facet/internal/logger"
	"github.com/chazu/facet/pkg/export"
	"github.com/chazu/facet/pkg/kernel"
	"github.com/chazu/facet/pkg/meshgen"
	"github.com/chazu/facet/pkg/pipeline"
)

// errStdout is returned when a binary format is asked to go to stdout.
var errStdout = errors.New("stl and 3mf need a file path, not -")

// job is one run: either a script or a single configured shape.
type job struct {
	script string // source text; empty selects the shape
	shape  meshgen.Shape
	quads  bool
}

func newJob(cfg *config.Config, scriptPath string) (*job, error) {
	if scriptPath != "" {
		src, err := os.ReadFile(scriptPath)
		if err != nil {
			return nil, fmt.Errorf("reading script: %w", err)
		}
		return &job{script: string(src)}, nil
	}
	s, err := cfg.Shape.Shape()
	if err != nil {
		return nil, err
	}
	return &job{shape: s, quads: cfg.Shape.AllowQuads}, nil
}

func (j *job) run(p *pipeline.Pipeline) pipeline.EvalResult {
	if j.shape == nil {
		return p.Evaluate(j.script)
	}
	result, topo := p.Shape(j.shape, j.quads)
	logger.Info("generated "+j.shape.Kind().String(),
		zap.Int("vertices", topo.Vertices),
		zap.Int("edges", topo.Edges),
		zap.Int("faces", topo.Faces),
		zap.Int("triangles", topo.Triangles),
		zap.Int("quads", topo.Quads),
		zap.Int("border", topo.Border),
		zap.Bool("closed", topo.Closed),
	)
	return result
}

// createFile opens a text output file. Tests replace it.
var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// write stores the result. Single shapes written as OBJ come straight
// from the generator so quads survive; everything else goes through the
// render meshes.
func (j *job) write(format export.Format, path string, result pipeline.EvalResult, stdout io.Writer) error {
	meshes := result.KernelMeshes()

	switch format {
	case export.FormatSTL, export.Format3MF:
		if path == "-" {
			return errStdout
		}
		if format == export.FormatSTL {
			return export.WriteSTL(path, meshes)
		}
		return export.Write3MF(path, meshes)
	}

	if path == "-" {
		return j.writeText(format, stdout, meshes)
	}
	f, err := createFile(path)
	if err != nil {
		return err
	}
	err = j.writeText(format, f, meshes)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing %s: %w", path, cerr)
	}
	return err
}

func (j *job) writeText(format export.Format, w io.Writer, meshes []*kernel.Mesh) error {
	switch format {
	case export.FormatJSON:
		return export.WriteJSON(w, meshes)
	case export.FormatOBJ:
		if j.shape != nil {
			b, err := meshgen.Build(j.shape, j.quads)
			if err != nil {
				return err
			}
			return export.WriteOBJ(w, b.Points, b.Triangles, b.Quads)
		}
		return export.WriteMeshesOBJ(w, meshes)
	}
	return fmt.Errorf("%w: %q", export.ErrUnknownFormat, format)
}
