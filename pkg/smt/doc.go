// Package smt defines the capabilities a theory and a solver process must
// provide to be driven by an SMT backend.
//
// A theory supplies expression nodes (Node), sorts (Sort) and a Logic
// binding both together. A solver process is reached through Proc, which
// exchanges raw SMT-LIB2 text. Backends (see package smtlib2) combine both
// to build constraint problems, check their satisfiability and extract
// models.
package smt
