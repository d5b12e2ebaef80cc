package hclconfig_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/travisgen/internal/hclconfig"
	"github.com/vk/travisgen/internal/model"
	"github.com/vk/travisgen/internal/testutil"
)

const sampleMatrix = `
matrix {
  cache    = "cargo"
  versions = ["stable", "beta", "nightly"]

  test_commandline        = "cargo test --verbose --all"
  scheduled_test_branches = ["master"]
  test_schedule           = "0 4 * * *"

  bench {
    run         = true
    run_cron    = true
    version     = "nightly"
    commandline = "cargo bench"
  }

  clippy {
    run                 = true
    version             = "stable"
    install_commandline = "rustup component add clippy"
    commandline         = "cargo clippy -- -D warnings"
  }

  rustfmt {
    run                 = true
    version             = "stable"
    install_commandline = "rustup component add rustfmt"
    commandline         = "cargo fmt -v -- --check"
  }

  entry "audit" {
    run         = true
    version     = "stable"
    commandline = "cargo audit"
  }
}
`

func TestLoadFile(t *testing.T) {
	cfg, err := testutil.LoadMatrixString(t, sampleMatrix)
	require.NoError(t, err)

	// Defaults fill in what the block left out.
	assert.Equal(t, "rust", cfg.Language)
	assert.Equal(t, "linux", cfg.OS)
	assert.Equal(t, "xenial", cfg.Dist)

	assert.Equal(t, "cargo", cfg.Cache)
	assert.Equal(t, []string{"stable", "beta", "nightly"}, cfg.Versions)
	assert.Equal(t, "cargo test --verbose --all", cfg.TestCommandline)
	assert.Equal(t, []string{"master"}, cfg.ScheduledTestBranches)
	assert.Equal(t, "0 4 * * *", cfg.TestSchedule)

	assert.Equal(t, model.MatrixEntry{
		Run:         true,
		RunCron:     true,
		Version:     "nightly",
		Commandline: "cargo bench",
	}, cfg.Bench)
	assert.Equal(t, "rustup component add clippy", cfg.Clippy.InstallCommandline)
	assert.True(t, cfg.Rustfmt.Run)

	require.Len(t, cfg.AdditionalEntries, 1)
	assert.Equal(t, "audit", cfg.AdditionalEntries[0].Name)
	assert.Equal(t, "cargo audit", cfg.AdditionalEntries[0].Entry.Commandline)

	// The loaded config passes model validation as-is.
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileOmittedRoleBlocksAreDisabled(t *testing.T) {
	cfg, err := testutil.LoadMatrixString(t, `
matrix {
  versions         = ["stable"]
  test_commandline = "cargo test"
}
`)
	require.NoError(t, err)
	assert.False(t, cfg.Bench.Run)
	assert.False(t, cfg.Clippy.Run)
	assert.False(t, cfg.Rustfmt.Run)
	assert.Empty(t, cfg.AdditionalEntries)
}

func TestLoadFileErrors(t *testing.T) {
	testCases := []struct {
		name    string
		source  string
		wantErr string
	}{
		{
			name:    "no matrix block",
			source:  "",
			wantErr: "no matrix block found",
		},
		{
			name: "versions is not a list",
			source: `
matrix {
  versions         = "stable"
  test_commandline = "cargo test"
}
`,
			wantErr: "versions must be a list",
		},
		{
			name: "versions with non-string element",
			source: `
matrix {
  versions         = ["stable", 2]
  test_commandline = "cargo test"
}
`,
			wantErr: "versions must contain only strings",
		},
		{
			name: "missing test_commandline",
			source: `
matrix {
  versions = ["stable"]
}
`,
			wantErr: "test_commandline",
		},
		{
			name:    "unparseable HCL",
			source:  `matrix {`,
			wantErr: "failed to parse",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := testutil.LoadMatrixString(t, tc.source)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoaderMissingFile(t *testing.T) {
	_, err := hclconfig.NewLoader().LoadFile(context.Background(), "does-not-exist.hcl")
	require.Error(t, err)
}
