// Package model defines the format-agnostic build-matrix configuration: the
// matrix entries for the fixed roles (bench, clippy, rustfmt), any user-defined
// additional entries, and the global settings (toolchain versions, OS,
// distribution, cache, scheduling).
//
// The model carries no behaviour beyond validation. It is constructed once by a
// configuration loader (see the hclconfig package), passed immutably through
// rendering, and discarded after the pipeline descriptor has been emitted.
package model
