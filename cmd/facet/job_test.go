package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chazu/facet/internal/config"
	"github.com/chazu/facet/pkg/export"
	"github.com/chazu/facet/pkg/kernel/sdfx"
	"github.com/chazu/facet/pkg/pipeline"
)

func shapeJob(t *testing.T, kind string, quads bool) *job {
	t.Helper()
	cfg := config.Default()
	cfg.Shape.Kind = kind
	cfg.Shape.AllowQuads = quads
	j, err := newJob(cfg, "")
	if err != nil {
		t.Fatalf("newJob: %v", err)
	}
	return j
}

func TestNewJobScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.facet")
	if err := os.WriteFile(path, []byte(`(group "g" (cube))`), 0644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	j, err := newJob(config.Default(), path)
	if err != nil {
		t.Fatalf("newJob: %v", err)
	}
	if j.shape != nil || !strings.Contains(j.script, "group") {
		t.Errorf("job = %+v, want a script job", j)
	}

	if _, err := newJob(config.Default(), filepath.Join(t.TempDir(), "missing.facet")); err == nil {
		t.Error("expected an error for a missing script")
	}
}

func TestWrite(t *testing.T) {
	p := pipeline.New(sdfx.New(), nil)

	tests := []struct {
		name   string
		job    *job
		format export.Format
		check  func(t *testing.T, out []byte)
	}{
		{
			name:   "obj keeps quads",
			job:    shapeJob(t, "cube", true),
			format: export.FormatOBJ,
			check: func(t *testing.T, out []byte) {
				if n := strings.Count(string(out), "\nf "); n != 6 {
					t.Errorf("faces = %d, want 6 quads", n)
				}
			},
		},
		{
			name:   "json",
			job:    shapeJob(t, "octahedron", false),
			format: export.FormatJSON,
			check: func(t *testing.T, out []byte) {
				if !strings.Contains(string(out), `"partName": "octahedron"`) {
					t.Errorf("json missing part name:\n%s", out)
				}
			},
		},
		{
			name:   "script obj",
			job:    &job{script: `(group "g" (cube) (tetrahedron))`},
			format: export.FormatOBJ,
			check: func(t *testing.T, out []byte) {
				if n := strings.Count(string(out), "\no "); n != 1 || !strings.HasPrefix(string(out), "o ") {
					t.Errorf("expected two named objects:\n%s", out)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.job.run(p)
			if !result.OK() {
				t.Fatalf("run: %v", result.Errors)
			}

			path := filepath.Join(t.TempDir(), "out."+string(tt.format))
			if err := tt.job.write(tt.format, path, result, nil); err != nil {
				t.Fatalf("write: %v", err)
			}
			out, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			tt.check(t, out)

			var stdout bytes.Buffer
			if err := tt.job.write(tt.format, "-", result, &stdout); err != nil {
				t.Fatalf("write to stdout: %v", err)
			}
			if !bytes.Equal(stdout.Bytes(), out) {
				t.Error("stdout output differs from file output")
			}
		})
	}
}

func TestWriteBinaryFormats(t *testing.T) {
	p := pipeline.New(sdfx.New(), nil)
	j := shapeJob(t, "icosahedron", false)
	result := j.run(p)

	for _, f := range []export.Format{export.FormatSTL, export.Format3MF} {
		t.Run(string(f), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out."+string(f))
			if err := j.write(f, path, result, nil); err != nil {
				t.Fatalf("write: %v", err)
			}
			if info, err := os.Stat(path); err != nil || info.Size() == 0 {
				t.Errorf("expected a non-empty file, got %v", err)
			}
			if err := j.write(f, "-", result, &bytes.Buffer{}); !errors.Is(err, errStdout) {
				t.Errorf("stdout err = %v, want errStdout", err)
			}
		})
	}
}

// failingCloser buffers writes and fails on Close.
type failingCloser struct {
	bytes.Buffer
	err error
}

func (f *failingCloser) Close() error { return f.err }

func TestWriteReportsCloseError(t *testing.T) {
	p := pipeline.New(sdfx.New(), nil)
	j := shapeJob(t, "cube", false)
	result := j.run(p)

	errDisk := errors.New("disk full")
	orig := createFile
	t.Cleanup(func() { createFile = orig })

	for _, f := range []export.Format{export.FormatJSON, export.FormatOBJ} {
		t.Run(string(f), func(t *testing.T) {
			out := &failingCloser{err: errDisk}
			createFile = func(string) (io.WriteCloser, error) { return out, nil }

			err := j.write(f, "out."+string(f), result, nil)
			if !errors.Is(err, errDisk) {
				t.Fatalf("write err = %v, want the close error", err)
			}
			if out.Len() == 0 {
				t.Error("nothing was written before close")
			}
		})
	}

	t.Run("write error wins", func(t *testing.T) {
		out := &failingCloser{err: errDisk}
		createFile = func(string) (io.WriteCloser, error) { return out, nil }

		err := j.write(export.Format("ply"), "out.ply", result, nil)
		if !errors.Is(err, export.ErrUnknownFormat) {
			t.Errorf("write err = %v, want ErrUnknownFormat", err)
		}
	})
}
