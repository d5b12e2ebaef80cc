package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveFlag(t *testing.T) {
	testCases := []struct {
		role string
		flag string
	}{
		{role: "test", flag: "RUN_TEST"},
		{role: "rustfmt", flag: "RUN_RUSTFMT"},
		{role: "bench", flag: "RUN_BENCH"},
		{role: "cargo-audit", flag: "RUN_CARGO_AUDIT"},
		{role: "miri.nightly", flag: "RUN_MIRI_NIGHTLY"},
		{role: "coverage2", flag: "RUN_COVERAGE2"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.flag, DeriveFlag(tc.role), "role %q", tc.role)
	}
}
