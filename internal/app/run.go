package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vk/travisgen/internal/ctxlog"
	"github.com/vk/travisgen/internal/emit"
	"github.com/vk/travisgen/internal/fsutil"
	"github.com/vk/travisgen/internal/render"
)

// matrixExtension is the file suffix matrix configs are discovered by.
const matrixExtension = ".hcl"

// Run generates one pipeline file per discovered matrix config. Each config
// is independent; generation stops at the first failure and no output file
// is written for a config that failed any stage.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	files, err := fsutil.FindMatrixFiles(cfg.ConfigPath, matrixExtension)
	if err != nil {
		return fmt.Errorf("failed to resolve matrix configs: %w", err)
	}
	if cfg.OutputPath != "" && len(files) > 1 {
		return fmt.Errorf("-o is only valid for a single matrix config, found %d", len(files))
	}
	a.logger.Debug("Matrix configs resolved.", "count", len(files))

	for _, file := range files {
		if err := a.generate(ctx, file, cfg.OutputPath); err != nil {
			return err
		}
	}
	return nil
}

// generate runs the full load → render → emit translation for one config and
// writes the result.
func (a *App) generate(ctx context.Context, file, outputPath string) error {
	matrixCfg, err := a.loader.LoadFile(ctx, file)
	if err != nil {
		return err
	}

	descriptor, err := render.Render(matrixCfg)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", file, err)
	}
	a.logger.Debug("Matrix rendered.", "file", file, "jobs", len(descriptor.Jobs))

	text, err := emit.Emit(descriptor)
	if err != nil {
		return fmt.Errorf("failed to emit %s: %w", file, err)
	}

	if outputPath == "-" {
		_, err := a.outW.Write(text)
		return err
	}
	target := outputPath
	if target == "" {
		target = derivedOutputPath(file)
	}
	if err := os.WriteFile(target, text, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	a.logger.Info("Pipeline file generated.", "source", file, "target", target)
	return nil
}

// derivedOutputPath maps ci/matrix.hcl to ci/matrix.travis.yml.
func derivedOutputPath(file string) string {
	return strings.TrimSuffix(file, matrixExtension) + ".travis.yml"
}
