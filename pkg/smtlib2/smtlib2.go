package smtlib2

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mandelsoft/logging"

	"github.com/mandelsoft/smt/pkg/graph"
	"github.com/mandelsoft/smt/pkg/smt"
)

type variable[S smt.Sort] struct {
	handle graph.Handle
	sort   S
}

// SMTLib2 is a problem session for a theory with nodes N and sorts S.
type SMTLib2[N smt.Node, S smt.Sort] struct {
	id      string
	logic   smt.Logic[N, S]
	framing Framing
	log     logging.Logger

	graph   *graph.Graph[N]
	counter int
	vars    map[string]variable[S]
	names   map[graph.Handle]string
}

// New creates an empty session. The logic is fixed for the lifetime of
// the session. If it renders to an empty name, no logic is set.
func New[N smt.Node, S smt.Sort](logic smt.Logic[N, S], opts ...Option) *SMTLib2[N, S] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	id := uuid.NewString()
	s := &SMTLib2[N, S]{
		id:      id,
		logic:   logic,
		framing: o.framing,
		log:     logging.DefaultContext().Logger(REALM).WithValues("session", id),
		graph:   graph.New[N](),
		vars:    map[string]variable[S]{},
		names:   map[graph.Handle]string{},
	}
	s.log.Debug("new session for logic {{logic}}", "logic", logic.String(), "framing", o.framing)
	return s
}

func (s *SMTLib2[N, S]) ID() string {
	return s.id
}

func (s *SMTLib2[N, S]) Logic() smt.Logic[N, S] {
	return s.logic
}

// NewVar declares a variable of the given sort. An empty name requests a
// generated name X_<n>, where n is a session local counter. Generated
// names skip names already registered.
//
// Registering a name twice replaces the registry entry. Both nodes then
// render to the same solver symbol, which is declared once, and model
// values are reported for the latest node, only.
func (s *SMTLib2[N, S]) NewVar(name string, sort S) graph.Handle {
	if name == "" {
		name = s.generateName()
	}
	h := s.graph.AddNode(s.logic.FreeVar(name, sort))
	if old, ok := s.vars[name]; ok {
		s.log.Warn("variable {{name}} registered again, replacing node {{old}}", "name", name, "old", old.handle)
	}
	s.vars[name] = variable[S]{handle: h, sort: sort}
	s.names[h] = name
	s.log.Debug("new variable {{name}} with sort {{sort}}", "name", name, "sort", sort.String(), "handle", h)
	return h
}

func (s *SMTLib2[N, S]) generateName() string {
	for {
		s.counter++
		name := fmt.Sprintf("X_%d", s.counter)
		if _, ok := s.vars[name]; !ok {
			return name
		}
	}
}

// NewConst adds a constant leaf.
func (s *SMTLib2[N, S]) NewConst(value N) graph.Handle {
	return s.graph.AddNode(value)
}

// Assert adds a function node applied to the given operands in order.
// The returned handle can be used as operand of further functions. If
// it is never used as operand and the function is boolean, it is
// asserted.
func (s *SMTLib2[N, S]) Assert(fn N, operands ...graph.Handle) graph.Handle {
	for _, op := range operands {
		if !s.graph.Valid(op) {
			panic(fmt.Sprintf("operand %s of %q not issued by session", op, fn.String()))
		}
	}
	h := s.graph.AddNode(fn)
	for i, op := range operands {
		s.graph.AddEdge(h, op, i)
	}
	return h
}

// Lookup returns the node and sort registered for a variable name.
func (s *SMTLib2[N, S]) Lookup(name string) (graph.Handle, S, bool) {
	v, ok := s.vars[name]
	return v.handle, v.sort, ok
}

// Name returns the name a variable node has been registered with.
func (s *SMTLib2[N, S]) Name(h graph.Handle) (string, bool) {
	n, ok := s.names[h]
	return n, ok
}

func (s *SMTLib2[N, S]) Node(h graph.Handle) N {
	return s.graph.Node(h)
}

// Len returns the number of nodes of the session.
func (s *SMTLib2[N, S]) Len() int {
	return s.graph.Len()
}
