// Package config handles facet configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/chazu/facet/internal/logger"
	"github.com/chazu/facet/pkg/export"
	"github.com/chazu/facet/pkg/meshgen"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// KernelNames lists the geometry kernels a config may select.
var KernelNames = []string{"sdfx", "manifold"}

// Config holds all facet settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Shape   ShapeConfig   `yaml:"shape"`
	Kernel  KernelConfig  `yaml:"kernel"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig selects where and how meshes are written.
type OutputConfig struct {
	Format string `yaml:"format"` // stl, 3mf, json or obj
	Path   string `yaml:"path"`   // "-" writes json and obj to stdout
}

// ShapeConfig selects the shape generated when no script is given. Each
// family keeps its own parameter record so switching kind keeps the
// others' settings.
type ShapeConfig struct {
	Kind       string  `yaml:"kind"`
	AllowQuads bool    `yaml:"allow_quads"`
	Scale      float64 `yaml:"scale"` // cube and the platonic solids

	Plane          meshgen.PlaneParams          `yaml:"plane"`
	UVSphere       meshgen.UVSphereParams       `yaml:"uv_sphere"`
	NormalizedCube meshgen.NormalizedCubeParams `yaml:"normalized_cube"`
	Torus          meshgen.TorusParams          `yaml:"torus"`
	Cylinder       meshgen.CylinderParams       `yaml:"cylinder"`
}

// KernelConfig selects the geometry backend.
type KernelConfig struct {
	Name string `yaml:"name"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the documented shape defaults.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: string(export.FormatSTL),
			Path:   "out.stl",
		},
		Shape: ShapeConfig{
			Kind:           meshgen.KindCube.String(),
			Scale:          1,
			Plane:          meshgen.DefaultPlaneParams(),
			UVSphere:       meshgen.DefaultUVSphereParams(),
			NormalizedCube: meshgen.DefaultNormalizedCubeParams(),
			Torus:          meshgen.DefaultTorusParams(),
			Cylinder:       meshgen.DefaultCylinderParams(),
		},
		Kernel: KernelConfig{
			Name: "sdfx",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Shape returns the parameter record for the configured kind.
func (s ShapeConfig) Shape() (meshgen.Shape, error) {
	k, err := meshgen.ParseKind(s.Kind)
	if err != nil {
		return nil, err
	}
	switch k {
	case meshgen.KindPlane:
		return s.Plane, nil
	case meshgen.KindUVSphere:
		return s.UVSphere, nil
	case meshgen.KindNormalizedCube:
		return s.NormalizedCube, nil
	case meshgen.KindTorus:
		return s.Torus, nil
	case meshgen.KindCylinder:
		return s.Cylinder, nil
	}
	return meshgen.ScaledSolid{Solid: k, Scale: s.Scale}, nil
}

// Validate checks every section and reports the first problem.
func (c *Config) Validate() error {
	if _, err := export.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("%w: output.format: %v", ErrInvalidConfig, err)
	}
	if c.Output.Path == "" {
		return fmt.Errorf("%w: output.path is empty", ErrInvalidConfig)
	}

	shape, err := c.Shape.Shape()
	if err != nil {
		return fmt.Errorf("%w: shape.kind: %v", ErrInvalidConfig, err)
	}
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("%w: shape: %v", ErrInvalidConfig, err)
	}

	known := false
	for _, n := range KernelNames {
		known = known || n == c.Kernel.Name
	}
	if !known {
		return fmt.Errorf("%w: kernel.name %q is not one of %v", ErrInvalidConfig, c.Kernel.Name, KernelNames)
	}

	if !logger.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("%w: logging.level %q is not one of %v", ErrInvalidConfig, c.Logging.Level, logger.Levels)
	}
	return nil
}
