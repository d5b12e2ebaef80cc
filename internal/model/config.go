package model

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// NamedEntry pairs a user-chosen role identifier with its matrix entry.
// Additional entries are kept as an ordered slice rather than a map so that
// the configuration carries no iteration-order ambiguity.
type NamedEntry struct {
	Name  string
	Entry MatrixEntry
}

// BuildMatrixConfig aggregates the matrix entries for the fixed roles, the
// user-defined additional entries, and the global pipeline settings. It is
// immutable after construction.
type BuildMatrixConfig struct {
	Bench   MatrixEntry
	Clippy  MatrixEntry
	Rustfmt MatrixEntry

	// AdditionalEntries holds user-defined roles beyond the fixed three,
	// in configuration-source order.
	AdditionalEntries []NamedEntry

	// Language is the provider's language declaration, e.g. "rust".
	Language string

	// OS and Dist select the worker image, e.g. "linux" / "xenial".
	OS   string
	Dist string

	// Cache names the provider cache kind, e.g. "cargo". Empty disables
	// caching.
	Cache string

	// Versions are the toolchain channels every push is tested against,
	// in the order they should appear in the pipeline.
	Versions []string

	// TestCommandline is the command the baseline test jobs run.
	TestCommandline string

	// ScheduledTestBranches are the branches on which cron-only entries
	// may trigger. Ignored unless some entry has RunCron set.
	ScheduledTestBranches []string

	// TestSchedule is the cron expression governing scheduled runs, in
	// standard 5-field syntax.
	TestSchedule string
}

// cronParser accepts the standard 5-field cron syntax the CI provider uses
// for build schedules.
var cronParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
)

// FixedRoles returns the fixed-role entries paired with their identifiers,
// in the stable role order used throughout rendering.
func (c *BuildMatrixConfig) FixedRoles() []NamedEntry {
	return []NamedEntry{
		{Name: "rustfmt", Entry: c.Rustfmt},
		{Name: "bench", Entry: c.Bench},
		{Name: "clippy", Entry: c.Clippy},
	}
}

// Validate checks the aggregate configuration. It returns an error wrapping
// ErrInvalidConfig or ErrInvalidEntry describing the first problem found.
func (c *BuildMatrixConfig) Validate() error {
	if c.Language == "" {
		return fmt.Errorf("%w: language must not be empty", ErrInvalidConfig)
	}
	if c.OS == "" {
		return fmt.Errorf("%w: os must not be empty", ErrInvalidConfig)
	}
	if len(c.Versions) == 0 {
		return fmt.Errorf("%w: versions must not be empty", ErrInvalidConfig)
	}
	seen := make(map[string]struct{}, len(c.Versions))
	for _, v := range c.Versions {
		if !ValidChannel(v) {
			return fmt.Errorf("%w: unrecognized toolchain channel %q in versions", ErrInvalidConfig, v)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: duplicate toolchain channel %q in versions", ErrInvalidConfig, v)
		}
		seen[v] = struct{}{}
	}
	if c.TestCommandline == "" {
		return fmt.Errorf("%w: test_commandline must not be empty", ErrInvalidConfig)
	}

	cronNeeded := false
	for _, role := range c.FixedRoles() {
		if err := role.Entry.Validate(role.Name); err != nil {
			return err
		}
		cronNeeded = cronNeeded || (role.Entry.Run && role.Entry.RunCron)
	}
	names := make(map[string]struct{}, len(c.AdditionalEntries))
	for _, extra := range c.AdditionalEntries {
		if extra.Name == "" {
			return fmt.Errorf("%w: additional matrix entry with empty name", ErrInvalidConfig)
		}
		if _, dup := names[extra.Name]; dup {
			return fmt.Errorf("%w: duplicate additional matrix entry %q", ErrInvalidConfig, extra.Name)
		}
		names[extra.Name] = struct{}{}
		if err := extra.Entry.Validate(extra.Name); err != nil {
			return err
		}
		cronNeeded = cronNeeded || (extra.Entry.Run && extra.Entry.RunCron)
	}

	if cronNeeded {
		if len(c.ScheduledTestBranches) == 0 {
			return fmt.Errorf("%w: cron-only entries need scheduled_test_branches", ErrInvalidConfig)
		}
		if c.TestSchedule == "" {
			return fmt.Errorf("%w: cron-only entries need a test_schedule", ErrInvalidConfig)
		}
		if _, err := cronParser.Parse(c.TestSchedule); err != nil {
			return fmt.Errorf("%w: bad test_schedule %q: %v", ErrInvalidConfig, c.TestSchedule, err)
		}
	}
	return nil
}
