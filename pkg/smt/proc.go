package smt

import (
	"context"
)

// Proc is the communication channel to a solver accepting SMT-LIB2 text.
//
// A Proc is owned by exactly one session. After a read has failed with
// ErrTimeout the response of the timed out request may still arrive and is
// delivered to the next read, so the protocol state of the session is
// undefined from then on.
type Proc interface {
	// Init establishes the solver and its byte streams. It must be called
	// before any Write or Read.
	Init() error
	// Write sends the given text and flushes it to the solver.
	Write(s string) error
	// Read performs a single bounded read of the solver output.
	// The wait is bounded by the given context. An expired deadline
	// results in ErrTimeout.
	Read(ctx context.Context) (string, error)
	// ReadResponse reads exactly one complete response, which is either
	// a balanced parenthesized expression or a single line.
	ReadResponse(ctx context.Context) (string, error)
}
