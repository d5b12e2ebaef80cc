package emit

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vk/travisgen/internal/render"
)

// EmitError describes a descriptor the emitter refuses to serialize, such as
// a job referencing a toolchain channel missing from the global version axis.
type EmitError struct {
	Detail string
}

func (e *EmitError) Error() string { return "emit: " + e.Detail }

// Emit serializes the descriptor to the provider's pipeline syntax. The
// output is byte-reproducible for equal descriptors.
func Emit(d *render.Descriptor) ([]byte, error) {
	if err := checkDescriptor(d); err != nil {
		return nil, err
	}

	root := makeMapping()
	appendPair(root, "language", scalar(d.Language))
	appendPair(root, "os", scalar(d.OS))
	if d.Dist != "" {
		appendPair(root, "dist", scalar(d.Dist))
	}
	if d.Cache != "" {
		appendPair(root, "cache", scalar(d.Cache))
	} else {
		appendPair(root, "cache", boolean(false))
	}

	versions := makeSequence()
	for _, v := range d.Versions {
		versions.Content = append(versions.Content, scalar(v))
	}
	appendPair(root, "rust", versions)

	global := makeSequence()
	for _, ev := range d.GlobalEnv {
		global.Content = append(global.Content, scalar(ev.Name+"="+ev.Value))
	}
	env := makeMapping()
	appendPair(env, "global", global)
	appendPair(root, "env", env)

	matrix := makeMapping()
	appendPair(matrix, "fast_finish", boolean(true))
	if includes := includeList(d); includes != nil {
		appendPair(matrix, "include", includes)
	}
	appendPair(root, "matrix", matrix)

	if lines := guardedLines(d.BeforeScript); lines != nil {
		appendPair(root, "before_script", lines)
	}
	appendPair(root, "script", guardedLines(d.Script))

	only := makeSequence()
	for _, b := range d.BranchFilter {
		only.Content = append(only.Content, scalar(b))
	}
	branches := makeMapping()
	appendPair(branches, "only", only)
	appendPair(root, "branches", branches)

	email := makeMapping()
	appendPair(email, "on_success", scalar("never"))
	notifications := makeMapping()
	appendPair(notifications, "email", email)
	appendPair(root, "notifications", notifications)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, &EmitError{Detail: err.Error()}
	}
	if err := enc.Close(); err != nil {
		return nil, &EmitError{Detail: err.Error()}
	}
	return buf.Bytes(), nil
}

// includeList renders the non-baseline jobs as matrix include entries, or
// nil when every job is a baseline job.
func includeList(d *render.Descriptor) *yaml.Node {
	includes := makeSequence()
	for _, job := range d.Jobs {
		if len(job.EnvOverrides) == 0 {
			continue
		}
		entry := makeMapping()
		appendPair(entry, "rust", scalar(job.Toolchain))
		if job.CronOnly {
			appendPair(entry, "if", scalar(cronCondition(d.ScheduledBranches)))
		}
		assignments := make([]string, 0, len(job.EnvOverrides))
		for _, ev := range job.EnvOverrides {
			assignments = append(assignments, ev.Name+"="+ev.Value)
		}
		appendPair(entry, "env", scalar(strings.Join(assignments, " ")))
		includes.Content = append(includes.Content, entry)
	}
	if len(includes.Content) == 0 {
		return nil
	}
	return includes
}

// guardedLines renders a script table as runtime shell conditionals, one per
// guarded command.
func guardedLines(lines []render.ScriptLine) *yaml.Node {
	if len(lines) == 0 {
		return nil
	}
	seq := makeSequence()
	for _, line := range lines {
		cmd := fmt.Sprintf("if [ %q = \"true\" ]; then %s; fi", "$"+line.Guard, line.Command)
		seq.Content = append(seq.Content, scalar(cmd))
	}
	return seq
}

// cronCondition builds the provider condition restricting a job to scheduled
// builds on the configured branches.
func cronCondition(branches []string) string {
	cond := "type = cron"
	switch len(branches) {
	case 0:
		return cond
	case 1:
		return cond + " AND branch = " + branches[0]
	default:
		return cond + " AND branch IN (" + strings.Join(branches, ", ") + ")"
	}
}

// checkDescriptor rejects descriptors whose parts disagree with each other.
func checkDescriptor(d *render.Descriptor) error {
	if d.Language == "" {
		return &EmitError{Detail: "descriptor has no language"}
	}
	if len(d.Versions) == 0 {
		return &EmitError{Detail: "descriptor has no toolchain versions"}
	}
	if len(d.Script) == 0 {
		return &EmitError{Detail: "descriptor has an empty script table"}
	}
	declared := make(map[string]struct{}, len(d.Versions))
	for _, v := range d.Versions {
		declared[v] = struct{}{}
	}
	flags := make(map[string]struct{}, len(d.GlobalEnv))
	for _, ev := range d.GlobalEnv {
		flags[ev.Name] = struct{}{}
	}
	for _, job := range d.Jobs {
		if _, ok := declared[job.Toolchain]; !ok {
			return &EmitError{Detail: fmt.Sprintf("job %q references undeclared toolchain channel %q", job.Label, job.Toolchain)}
		}
		if job.CronOnly && len(d.ScheduledBranches) == 0 {
			return &EmitError{Detail: fmt.Sprintf("cron-only job %q but no scheduled branches", job.Label)}
		}
	}
	for _, line := range append(append([]render.ScriptLine(nil), d.BeforeScript...), d.Script...) {
		if _, ok := flags[line.Guard]; !ok {
			return &EmitError{Detail: fmt.Sprintf("script guard %s is not a declared environment flag", line.Guard)}
		}
	}
	return nil
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func boolean(b bool) *yaml.Node {
	v := "false"
	if b {
		v = "true"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v}
}

func makeMapping() *yaml.Node  { return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"} }
func makeSequence() *yaml.Node { return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"} }

func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalar(key), value)
}
