package render

import "strings"

// DeriveFlag maps a role identifier to its guard flag: "RUN_" plus the
// upper-cased identifier with every non-alphanumeric rune replaced by an
// underscore. Distinct identifiers may collapse to the same flag (for
// example "cargo-audit" and "cargo_audit"); Render rejects that with
// ErrFlagCollision rather than silently merging jobs.
func DeriveFlag(role string) string {
	var b strings.Builder
	b.WriteString("RUN_")
	for _, r := range strings.ToUpper(role) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
