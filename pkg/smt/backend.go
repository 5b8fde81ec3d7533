package smt

import (
	"time"
)

// Backend is a solver backend for constraint problems built from nodes
// of type N, addressed by handles of type H.
//
// The operations follow their meaning in SMT-LIB2. The expected call
// sequence is SetLogic, followed by building the problem and finally
// CheckSat or Solve, but it is not enforced.
type Backend[H comparable, N Node, S Sort] interface {
	SetLogic(p Proc) error

	// NewVar declares a new variable. An empty name requests a generated one.
	NewVar(name string, sort S) H
	// Assert adds a function application to the given operands.
	Assert(fn N, operands ...H) H

	// CheckSat waits without bound for the verdict of the solver.
	CheckSat(p Proc) (bool, error)
	CheckSatWithTimeout(p Proc, timeout time.Duration) (bool, error)

	// Solve returns the values the solver assigned to variables.
	Solve(p Proc) (map[H]uint64, error)
	SolveWithTimeout(p Proc, timeout time.Duration) (map[H]uint64, error)
}
