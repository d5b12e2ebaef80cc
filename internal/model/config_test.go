package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a minimal configuration that passes validation;
// individual tests break one field at a time.
func validConfig() *BuildMatrixConfig {
	return &BuildMatrixConfig{
		Language:        "rust",
		OS:              "linux",
		Dist:            "xenial",
		Cache:           "cargo",
		Versions:        []string{"stable", "beta", "nightly"},
		TestCommandline: "cargo test --verbose --all",
		Bench: MatrixEntry{
			Run:         true,
			Version:     "nightly",
			Commandline: "cargo bench",
		},
	}
}

func TestBuildMatrixConfigValidate(t *testing.T) {
	testCases := []struct {
		name      string
		mutate    func(*BuildMatrixConfig)
		expectErr error
	}{
		{
			name:   "valid config",
			mutate: func(c *BuildMatrixConfig) {},
		},
		{
			name:      "error - empty versions",
			mutate:    func(c *BuildMatrixConfig) { c.Versions = nil },
			expectErr: ErrInvalidConfig,
		},
		{
			name: "error - duplicate versions",
			mutate: func(c *BuildMatrixConfig) {
				c.Versions = []string{"stable", "nightly", "stable"}
			},
			expectErr: ErrInvalidConfig,
		},
		{
			name: "error - unknown channel in versions",
			mutate: func(c *BuildMatrixConfig) {
				c.Versions = []string{"stable", "shiny"}
			},
			expectErr: ErrInvalidConfig,
		},
		{
			name:      "error - empty test commandline",
			mutate:    func(c *BuildMatrixConfig) { c.TestCommandline = "" },
			expectErr: ErrInvalidConfig,
		},
		{
			name: "error - running fixed role without commandline",
			mutate: func(c *BuildMatrixConfig) {
				c.Clippy = MatrixEntry{Run: true, Version: "stable"}
			},
			expectErr: ErrInvalidEntry,
		},
		{
			name: "error - additional entry with empty name",
			mutate: func(c *BuildMatrixConfig) {
				c.AdditionalEntries = []NamedEntry{{Entry: MatrixEntry{}}}
			},
			expectErr: ErrInvalidConfig,
		},
		{
			name: "error - duplicate additional entry",
			mutate: func(c *BuildMatrixConfig) {
				e := NamedEntry{Name: "audit", Entry: MatrixEntry{}}
				c.AdditionalEntries = []NamedEntry{e, e}
			},
			expectErr: ErrInvalidConfig,
		},
		{
			name: "error - cron entry without scheduled branches",
			mutate: func(c *BuildMatrixConfig) {
				c.Bench.RunCron = true
			},
			expectErr: ErrInvalidConfig,
		},
		{
			name: "error - cron entry with bad schedule",
			mutate: func(c *BuildMatrixConfig) {
				c.Bench.RunCron = true
				c.ScheduledTestBranches = []string{"master"}
				c.TestSchedule = "every tuesday"
			},
			expectErr: ErrInvalidConfig,
		},
		{
			name: "cron entry with branches and schedule",
			mutate: func(c *BuildMatrixConfig) {
				c.Bench.RunCron = true
				c.ScheduledTestBranches = []string{"master"}
				c.TestSchedule = "0 4 * * *"
			},
		},
		{
			name: "cron flag on disabled entry needs no schedule",
			mutate: func(c *BuildMatrixConfig) {
				c.Clippy = MatrixEntry{RunCron: true}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.expectErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFixedRolesOrder(t *testing.T) {
	cfg := validConfig()
	roles := cfg.FixedRoles()
	require.Len(t, roles, 3)
	assert.Equal(t, "rustfmt", roles[0].Name)
	assert.Equal(t, "bench", roles[1].Name)
	assert.Equal(t, "clippy", roles[2].Name)
}
