package render

import (
	"errors"
	"fmt"
)

// ErrFlagCollision reports two roles deriving the same guard flag.
var ErrFlagCollision = errors.New("guard flag collision")

// RenderError wraps any failure encountered while translating a configuration
// into a descriptor, naming the offending role when one is known.
type RenderError struct {
	Role string
	Err  error
}

func (e *RenderError) Error() string {
	if e.Role == "" {
		return fmt.Sprintf("render: %v", e.Err)
	}
	return fmt.Sprintf("render: role %q: %v", e.Role, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
