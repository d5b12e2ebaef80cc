package model

import "fmt"

// MatrixEntry is one named build variant: which toolchain it needs, whether it
// runs at all, whether it runs only on scheduled (cron) builds, and the shell
// command lines for setup and execution.
type MatrixEntry struct {
	// Run enables the entry. A disabled entry contributes no job and no
	// script line, but its guard flag still appears (as false) in the
	// global environment defaults so the guard can never fire.
	Run bool

	// RunCron restricts the entry's job to scheduled builds on the
	// configured branches. It has no effect when Run is false.
	RunCron bool

	// Version is the toolchain channel the entry's job runs on: "stable",
	// "beta", "nightly" (optionally date-pinned) or a semantic version.
	Version string

	// InstallCommandline is an optional setup command executed in the
	// before-script phase, guarded by the entry's flag. Empty means no
	// extra toolchain component is needed.
	InstallCommandline string

	// Commandline is the command the entry's guard runs in the script
	// phase. Required whenever Run is true.
	Commandline string
}

// Validate checks the entry's internal consistency. The role name is only
// used to label the error.
func (e MatrixEntry) Validate(role string) error {
	if !e.Run {
		return nil
	}
	if e.Commandline == "" {
		return fmt.Errorf("%w: role %q runs but has no commandline", ErrInvalidEntry, role)
	}
	if e.Version == "" {
		return fmt.Errorf("%w: role %q runs but has no toolchain version", ErrInvalidEntry, role)
	}
	if !ValidChannel(e.Version) {
		return fmt.Errorf("%w: role %q: unrecognized toolchain channel %q", ErrInvalidEntry, role, e.Version)
	}
	return nil
}
