package newsreels

import (
	"errors"
	"fmt"
)

// ErrCancelled indicates the user closed the window or backed out of the
// reels. It is normal flow control, not a failure.
var ErrCancelled = errors.New("operation cancelled by user")

// InfrastructureError is a failure of the rendering stack itself (SDL could
// not start, the font is missing, ...). Applications usually cannot recover
// from it.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init_sdl", "load_locale")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("newsreels: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("newsreels: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
