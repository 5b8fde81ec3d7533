package smt

import (
	"fmt"
)

// Node is an expression node of a theory. Its string representation must be
// the exact SMT-LIB2 token used for the node: the symbol of a variable,
// the literal of a constant or the operator of a function application.
type Node interface {
	fmt.Stringer

	// IsVar returns true if the node is a symbolic variable.
	IsVar() bool
	// IsConst returns true if the node is a constant value.
	IsConst() bool
}

// Function can be implemented by a Node to override the default function
// classification, which is "neither variable nor constant".
type Function interface {
	IsFn() bool
}

// Boolean can be implemented by a Node to mark boolean sorted nodes.
// Nodes not implementing it are never boolean.
type Boolean interface {
	IsBool() bool
}

// IsFn returns true if the node is a function application.
func IsFn(n Node) bool {
	if f, ok := n.(Function); ok {
		return f.IsFn()
	}
	return !n.IsVar() && !n.IsConst()
}

// IsBool returns true if the node is boolean sorted.
func IsBool(n Node) bool {
	if b, ok := n.(Boolean); ok {
		return b.IsBool()
	}
	return false
}

// Sort is the type of a term. Its string representation is the SMT-LIB2
// sort expression, for example Int or (_ BitVec 32).
type Sort interface {
	fmt.Stringer
}

// Logic associates the node values and sorts of a theory.
// Its string representation is the logic name used for set-logic.
// An empty name means that no logic is set for a session.
type Logic[N Node, S Sort] interface {
	fmt.Stringer

	// FreeVar creates the node value for a declared variable.
	FreeVar(name string, sort S) N
}
