package smt

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout is returned if a bounded wait for a solver response expired.
	ErrTimeout = fmt.Errorf("solver timeout")
	// ErrUndefined is returned if a solver response could not be read or was unexpected.
	ErrUndefined = fmt.Errorf("undefined solver result")
	// ErrUnsat is returned if a model is requested for an unsatisfiable problem.
	ErrUnsat = fmt.Errorf("problem is unsatisfiable")
	// ErrWrite is returned if a command could not be sent to the solver.
	ErrWrite = fmt.Errorf("cannot write to solver")
	// ErrParse is returned if a solver response contains a malformed value.
	ErrParse = fmt.Errorf("cannot parse solver response")
)

// AssertionError reports a semantic error in caller supplied constraints.
type AssertionError struct {
	Msg string
}

func NewAssertionError(msg string, args ...interface{}) error {
	return &AssertionError{Msg: fmt.Sprintf(msg, args...)}
}

func (e *AssertionError) Error() string {
	return "assertion error: " + e.Msg
}

// IsAssertionError checks whether err is or wraps an *AssertionError.
func IsAssertionError(err error) bool {
	var aerr *AssertionError
	return errors.As(err, &aerr)
}
