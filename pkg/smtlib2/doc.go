// Package smtlib2 provides an SMT backend producing standard SMT-LIB2
// text. Any solver accepting this format can be used to solve the
// constraints.
//
// A session (SMTLib2) stores the problem as an append-only graph of theory
// nodes. Function nodes reference their operands by edges tagged with the
// operand position. Boolean function nodes not used as operand of another
// node are the assertions of the problem.
//
// To solve a problem the complete set of declarations and assertions is
// sent to the solver process, followed by check-sat and, for Solve,
// get-model. The model is parsed back into values for the variable nodes.
//
// A session is not safe for concurrent use. After a solver interaction
// failed with smt.ErrTimeout, the response of the timed out command may
// still be delivered to a later read. Such a session and its solver process
// should be discarded.
package smtlib2
