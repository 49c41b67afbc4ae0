package trace

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates a step index outside [0, len-1].
	ErrIndexOutOfRange = errors.New("trace: step index out of range")

	// ErrInvalidTrace indicates a trace that breaks a structural invariant.
	ErrInvalidTrace = errors.New("trace: invalid trace")
)

// StepError wraps an invariant violation with the offending step.
type StepError struct {
	Index   int
	Reason  string
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %s: %v", e.Index, e.Reason, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
