package model

import "errors"

// ErrInvalidEntry reports a malformed single matrix entry, such as a runnable
// entry without a command line.
var ErrInvalidEntry = errors.New("invalid matrix entry")

// ErrInvalidConfig reports a malformed aggregate configuration, such as an
// empty or duplicated toolchain version list.
var ErrInvalidConfig = errors.New("invalid matrix config")
