// Package emit serializes a pipeline descriptor to the provider's YAML
// syntax. It is pure string construction over an explicit node tree: mapping
// keys keep the order the descriptor dictates, so the same descriptor always
// serializes to byte-identical text. Emission is all-or-nothing; a
// structurally inconsistent descriptor yields an *EmitError and no output.
package emit
