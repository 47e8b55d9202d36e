// Command facet generates procedural polyhedra and scripted scenes and
// writes them as STL, 3MF, JSON or OBJ.
//
//	facet -shape torus -quads -out torus.obj
//	facet -script examples/table.facet -out table.3mf
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/chazu/facet/internal/config"
	"github.com/chazu/facet/internal/logger"
	"github.com/chazu/facet/pkg/export"
	"github.com/chazu/facet/pkg/pipeline"
)

func main() {
	os.Exit(run())
}

func run() int {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 2
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	k, err := pipeline.NewKernel(cfg.Kernel.Name)
	if err != nil {
		logger.Error("kernel unavailable", zap.String("kernel", cfg.Kernel.Name), zap.Error(err))
		return 1
	}
	p := pipeline.New(k, logger.Named("pipeline"))

	job, err := newJob(cfg, config.ScriptPath())
	if err != nil {
		logger.Error("bad input", zap.Error(err))
		return 1
	}

	result := job.run(p)
	for _, w := range result.Warnings {
		logger.Warn(w.Message, zap.Int("line", w.Line))
	}
	if !result.OK() {
		for _, e := range result.Errors {
			logger.Error(e.Message, zap.Int("line", e.Line))
		}
		return 1
	}

	format, _ := export.ParseFormat(cfg.Output.Format)
	if err := job.write(format, cfg.Output.Path, result, os.Stdout); err != nil {
		logger.Error("write failed", zap.String("path", cfg.Output.Path), zap.Error(err))
		return 1
	}

	logger.Info("wrote output",
		zap.String("path", cfg.Output.Path),
		zap.String("format", string(format)),
		zap.Int("meshes", len(result.Meshes)),
	)
	return 0
}
