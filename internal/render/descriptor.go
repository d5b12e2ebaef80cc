package render

// EnvVar is a single environment assignment. Values are the provider's
// bool-as-string convention ("true"/"false") for guard flags.
type EnvVar struct {
	Name  string
	Value string
}

// JobSpec is one entry of the build matrix. A job with no overrides is a
// baseline job and inherits the global environment defaults unchanged; a job
// with overrides was contributed by a role and flips exactly the flags that
// role needs.
type JobSpec struct {
	// Label names the job for diagnostics: the toolchain channel for
	// baseline jobs, the role identifier for role jobs.
	Label string

	// Toolchain is the channel the job runs on.
	Toolchain string

	// EnvOverrides are the flag assignments the job layers over the
	// global defaults, in emission order.
	EnvOverrides []EnvVar

	// CronOnly restricts the job to scheduled builds.
	CronOnly bool
}

// ScriptLine is one guarded command: the emitted pipeline runs Command only
// when the environment flag Guard evaluates to true at build time.
type ScriptLine struct {
	Guard   string
	Command string
}

// Descriptor is the intermediate, provider-agnostic representation of the
// pipeline. Every collection is an ordered slice; there are no maps, so the
// descriptor has exactly one serialization.
type Descriptor struct {
	Language string
	OS       string
	Dist     string

	// Cache names the provider cache kind; empty means caching disabled.
	Cache string

	// Versions is the global toolchain axis, in configuration order.
	Versions []string

	// GlobalEnv holds the environment defaults every job starts from.
	GlobalEnv []EnvVar

	// Jobs lists the baseline jobs first, then the role jobs in stable
	// role order.
	Jobs []JobSpec

	BeforeScript []ScriptLine
	Script       []ScriptLine

	// ScheduledBranches are the branches cron-only jobs may trigger on,
	// sorted for reproducible output.
	ScheduledBranches []string

	// BranchFilter is the push/PR branch allow-list, patterns included.
	BranchFilter []string
}
