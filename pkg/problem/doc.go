// Package problem reads constraint problems over integers and booleans
// from YAML documents and solves them with an SMT-LIB2 solver.
//
// A problem document looks like
//
//	logic: QF_LIA
//	variables:
//	  x: Int
//	  y: Int
//	  flag: Bool
//	assertions:
//	- x + y == ${TOTAL}
//	- flag || x < y
//
// Environment references are substituted before the document is parsed.
package problem
