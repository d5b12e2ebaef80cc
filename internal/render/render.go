package render

import (
	"fmt"
	"sort"

	"github.com/vk/travisgen/internal/model"
)

// testFlag guards the baseline test command. The "test" role is implicit:
// it has no matrix entry, runs on every baseline job, and is switched off by
// every role job.
const testFlag = "RUN_TEST"

// branchFilter is the fixed push/PR allow-list: release tags plus the
// mainline and bors staging branches.
var branchFilter = []string{
	`/^v\d+\.\d+\.\d+.*$/`,
	"master",
	"trying",
	"staging",
}

// Render translates a build-matrix configuration into a pipeline descriptor.
// It validates the configuration first and wraps any failure in a
// *RenderError; on error the returned descriptor is nil.
func Render(cfg *model.BuildMatrixConfig) (*Descriptor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &RenderError{Err: err}
	}

	roles := roleTable(cfg)
	if err := checkFlagCollisions(roles); err != nil {
		return nil, err
	}

	d := &Descriptor{
		Language:     cfg.Language,
		OS:           cfg.OS,
		Dist:         cfg.Dist,
		Cache:        cfg.Cache,
		Versions:     append([]string(nil), cfg.Versions...),
		BranchFilter: append([]string(nil), branchFilter...),
	}

	// Global defaults: the test guard is on, every role guard is off. A
	// disabled role keeps its flag here so the guard can never fire.
	d.GlobalEnv = append(d.GlobalEnv, EnvVar{Name: testFlag, Value: "true"})
	for _, role := range roles {
		if role.global {
			d.GlobalEnv = append(d.GlobalEnv, EnvVar{Name: role.flag, Value: "false"})
		}
	}

	// The baseline test axis: one job per channel, inheriting the defaults.
	for _, v := range cfg.Versions {
		d.Jobs = append(d.Jobs, JobSpec{Label: v, Toolchain: v})
	}

	// One included job per running role, flipping exactly its own flag on
	// and the test flag off.
	for _, role := range roles {
		if !role.entry.Run {
			continue
		}
		d.Jobs = append(d.Jobs, JobSpec{
			Label:     role.name,
			Toolchain: role.entry.Version,
			EnvOverrides: []EnvVar{
				{Name: role.flag, Value: "true"},
				{Name: testFlag, Value: "false"},
			},
			CronOnly: role.entry.RunCron,
		})
		if role.entry.InstallCommandline != "" {
			d.BeforeScript = append(d.BeforeScript, ScriptLine{
				Guard:   role.flag,
				Command: role.entry.InstallCommandline,
			})
		}
	}

	d.Script = append(d.Script, ScriptLine{Guard: testFlag, Command: cfg.TestCommandline})
	for _, role := range roles {
		if role.entry.Run {
			d.Script = append(d.Script, ScriptLine{Guard: role.flag, Command: role.entry.Commandline})
		}
	}

	d.ScheduledBranches = append(d.ScheduledBranches, cfg.ScheduledTestBranches...)
	sort.Strings(d.ScheduledBranches)

	return d, nil
}

// role is one row of the renderer's branch table.
type role struct {
	name  string
	flag  string
	entry model.MatrixEntry

	// global records whether the role's flag belongs in the global
	// environment defaults. Fixed roles always do; additional roles only
	// once they actually run.
	global bool
}

// roleTable lists every role in the stable rendering order: the fixed roles
// first, then the additional entries in lexicographic name order. The order
// is independent of any map iteration so that rendering the same
// configuration twice yields the same descriptor.
func roleTable(cfg *model.BuildMatrixConfig) []role {
	var roles []role
	for _, fixed := range cfg.FixedRoles() {
		roles = append(roles, role{
			name:   fixed.Name,
			flag:   DeriveFlag(fixed.Name),
			entry:  fixed.Entry,
			global: true,
		})
	}
	extras := append([]model.NamedEntry(nil), cfg.AdditionalEntries...)
	sort.Slice(extras, func(i, j int) bool { return extras[i].Name < extras[j].Name })
	for _, extra := range extras {
		roles = append(roles, role{
			name:   extra.Name,
			flag:   DeriveFlag(extra.Name),
			entry:  extra.Entry,
			global: extra.Entry.Run,
		})
	}
	return roles
}

// checkFlagCollisions verifies that flag derivation stayed injective over the
// configured role identifiers, the implicit test role included.
func checkFlagCollisions(roles []role) error {
	owners := map[string]string{testFlag: "test"}
	for _, r := range roles {
		if prev, taken := owners[r.flag]; taken {
			return &RenderError{
				Role: r.name,
				Err:  fmt.Errorf("%w: roles %q and %q both derive %s", ErrFlagCollision, prev, r.name, r.flag),
			}
		}
		owners[r.flag] = r.name
	}
	return nil
}
