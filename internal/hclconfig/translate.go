package hclconfig

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/travisgen/internal/model"
)

// Defaults applied when the matrix block leaves the corresponding attribute
// out. The generator targets Rust crates on the provider's Linux workers.
const (
	defaultLanguage = "rust"
	defaultOS       = "linux"
	defaultDist     = "xenial"
)

// translateMatrix converts the HCL-specific schema into the agnostic model.
func translateMatrix(b *matrixBlock) (*model.BuildMatrixConfig, error) {
	versions, err := versionList(b)
	if err != nil {
		return nil, err
	}

	cfg := &model.BuildMatrixConfig{
		Language:              b.Language,
		OS:                    b.OS,
		Dist:                  b.Dist,
		Cache:                 b.Cache,
		Versions:              versions,
		TestCommandline:       b.TestCommandline,
		ScheduledTestBranches: b.ScheduledTestBranches,
		TestSchedule:          b.TestSchedule,
		Bench:                 translateEntry(b.Bench),
		Clippy:                translateEntry(b.Clippy),
		Rustfmt:               translateEntry(b.Rustfmt),
	}
	if cfg.Language == "" {
		cfg.Language = defaultLanguage
	}
	if cfg.OS == "" {
		cfg.OS = defaultOS
	}
	if cfg.Dist == "" {
		cfg.Dist = defaultDist
	}

	for _, e := range b.Entries {
		cfg.AdditionalEntries = append(cfg.AdditionalEntries, model.NamedEntry{
			Name: e.Name,
			Entry: model.MatrixEntry{
				Run:                e.Run,
				RunCron:            e.RunCron,
				Version:            e.Version,
				InstallCommandline: e.InstallCommandline,
				Commandline:        e.Commandline,
			},
		})
	}
	return cfg, nil
}

// translateEntry converts a fixed-role block; an absent block is a disabled
// entry.
func translateEntry(b *entryBlock) model.MatrixEntry {
	if b == nil {
		return model.MatrixEntry{}
	}
	return model.MatrixEntry{
		Run:                b.Run,
		RunCron:            b.RunCron,
		Version:            b.Version,
		InstallCommandline: b.InstallCommandline,
		Commandline:        b.Commandline,
	}
}

// versionList evaluates the deferred `versions` expression down to a list of
// strings, keeping source order.
func versionList(b *matrixBlock) ([]string, error) {
	val, diags := b.Versions.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate versions: %w", diags)
	}
	if val.IsNull() || !val.CanIterateElements() {
		return nil, fmt.Errorf("versions must be a list of toolchain channels")
	}
	var versions []string
	for it := val.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		if ev.Type() != cty.String || ev.IsNull() {
			return nil, fmt.Errorf("versions must contain only strings, got %s", ev.Type().FriendlyName())
		}
		versions = append(versions, ev.AsString())
	}
	return versions, nil
}
