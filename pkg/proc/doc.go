// Package proc implements the communication with SMT-LIB2 solvers over
// byte streams.
//
// A Channel exchanges text over an arbitrary pair of streams, a Process
// additionally spawns the solver binary whose standard input and output
// are used as streams.
//
// Reads are bounded by a context. A pump goroutine reads the solver output
// in chunks of a fixed size and hands them over one by one, so a read
// whose context expires returns ErrTimeout without affecting the pending
// stream read. Output arriving after a timeout is kept and delivered to
// the next read.
package proc
