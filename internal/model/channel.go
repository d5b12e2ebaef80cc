package model

import (
	"regexp"

	goversion "github.com/hashicorp/go-version"
)

// namedChannels matches the rustup release channels, with an optional
// date pin such as "nightly-2019-04-01".
var namedChannels = regexp.MustCompile(`^(stable|beta|nightly)(-\d{4}-\d{2}-\d{2})?$`)

// ValidChannel reports whether s names a toolchain channel the target
// provider understands: one of the release channels, or a concrete
// semantic version such as "1.31.0".
func ValidChannel(s string) bool {
	if namedChannels.MatchString(s) {
		return true
	}
	_, err := goversion.NewSemver(s)
	return err == nil
}
