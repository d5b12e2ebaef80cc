package hclconfig

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/travisgen/internal/ctxlog"
	"github.com/vk/travisgen/internal/model"
)

// Loader parses matrix files into build-matrix configurations. A single
// Loader may load any number of files; the underlying parser caches sources
// for diagnostics.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL matrix loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// LoadFile parses and translates one matrix file. The returned configuration
// is not yet validated; validation belongs to rendering, so that a caller
// can inspect a malformed configuration if it wants to.
func (l *Loader) LoadFile(ctx context.Context, path string) (*model.BuildMatrixConfig, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading matrix file.", "path", path)

	hclFile, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}

	var file matrixFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &file); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
	}
	if file.Matrix == nil {
		return nil, fmt.Errorf("%s: no matrix block found", path)
	}

	cfg, err := translateMatrix(file.Matrix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("Matrix file translated.", "path", path, "versions", cfg.Versions)
	return cfg, nil
}
