package config

import (
	"flag"
	"path/filepath"

	"github.com/chazu/facet/pkg/export"
)

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagShape   = flag.String("shape", "", "Shape to generate (cube, plane, uv-sphere, normalized-cube, torus, cylinder, tetrahedron, octahedron, icosahedron, dodecahedron)")
	flagQuads   = flag.Bool("quads", false, "Keep quad faces where the shape has them")
	flagOut     = flag.String("out", "", "Output path, or - for stdout (json and obj only)")
	flagFormat  = flag.String("format", "", "Output format: stl, 3mf, json or obj (default from -out extension)")
	flagKernel  = flag.String("kernel", "", "Geometry kernel: sdfx or manifold")
	flagLogFile = flag.String("log-file", "", "Also write logs to this file")
	flagScript  = flag.String("script", "", "Evaluate a Lisp scene script instead of a single shape")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// ScriptPath returns the scene script given via -script, if any.
func ScriptPath() string {
	return *flagScript
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagShape != "" {
		cfg.Shape.Kind = *flagShape
	}
	if *flagQuads {
		cfg.Shape.AllowQuads = true
	}
	if *flagKernel != "" {
		cfg.Kernel.Name = *flagKernel
	}
	if *flagOut != "" {
		cfg.Output.Path = *flagOut
		if *flagFormat == "" {
			if f, err := export.ParseFormat(filepath.Ext(*flagOut)); err == nil {
				cfg.Output.Format = string(f)
			}
		}
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
}
