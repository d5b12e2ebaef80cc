package hclconfig

import "github.com/hashicorp/hcl/v2"

// matrixFile is the top-level structure of a matrix file. Exactly one
// `matrix` block is expected per file.
type matrixFile struct {
	Matrix *matrixBlock `hcl:"matrix,block"`
}

// matrixBlock mirrors the `matrix` block attributes and nested role blocks.
type matrixBlock struct {
	Language string `hcl:"language,optional"`
	OS       string `hcl:"os,optional"`
	Dist     string `hcl:"dist,optional"`
	Cache    string `hcl:"cache,optional"`

	// Versions stays an expression so evaluation can be deferred to the
	// translation step, where a useful error with source context is built.
	Versions hcl.Expression `hcl:"versions"`

	TestCommandline       string   `hcl:"test_commandline"`
	ScheduledTestBranches []string `hcl:"scheduled_test_branches,optional"`
	TestSchedule          string   `hcl:"test_schedule,optional"`

	Bench   *entryBlock        `hcl:"bench,block"`
	Clippy  *entryBlock        `hcl:"clippy,block"`
	Rustfmt *entryBlock        `hcl:"rustfmt,block"`
	Entries []*namedEntryBlock `hcl:"entry,block"`
}

// entryBlock is one fixed-role matrix entry (`bench`, `clippy`, `rustfmt`).
type entryBlock struct {
	Run                bool   `hcl:"run,optional"`
	RunCron            bool   `hcl:"run_cron,optional"`
	Version            string `hcl:"version,optional"`
	InstallCommandline string `hcl:"install_commandline,optional"`
	Commandline        string `hcl:"commandline,optional"`
}

// namedEntryBlock is a user-defined `entry "<name>" { ... }` block.
type namedEntryBlock struct {
	Name               string `hcl:"name,label"`
	Run                bool   `hcl:"run,optional"`
	RunCron            bool   `hcl:"run_cron,optional"`
	Version            string `hcl:"version,optional"`
	InstallCommandline string `hcl:"install_commandline,optional"`
	Commandline        string `hcl:"commandline,optional"`
}
