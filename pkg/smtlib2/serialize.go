package smtlib2

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/mandelsoft/smt/pkg/graph"
	"github.com/mandelsoft/smt/pkg/smt"
)

// Declarations returns the names of all registered variables.
func (s *SMTLib2[N, S]) Declarations() sets.Set[string] {
	decls := sets.New[string]()
	for name, v := range s.vars {
		if s.graph.Node(v.handle).IsVar() {
			decls.Insert(name)
		}
	}
	return decls
}

// GenerateAsserts renders the declarations of all variables followed by
// an assertion for every boolean function node which is not an operand.
func (s *SMTLib2[N, S]) GenerateAsserts() string {
	var b strings.Builder

	for _, name := range sets.List(s.Declarations()) {
		fmt.Fprintf(&b, "(declare-fun %s () %s)\n", name, s.vars[name].sort)
	}
	for _, h := range s.graph.Roots() {
		n := s.graph.Node(h)
		if smt.IsFn(n) && smt.IsBool(n) {
			b.WriteString("(assert ")
			s.expand(&b, h)
			b.WriteString(")\n")
		}
	}
	return b.String()
}

// ExpandAssertion renders the expression rooted at the given node in
// prefix notation.
func (s *SMTLib2[N, S]) ExpandAssertion(h graph.Handle) string {
	var b strings.Builder
	s.expand(&b, h)
	return b.String()
}

func (s *SMTLib2[N, S]) expand(b *strings.Builder, h graph.Handle) {
	n := s.graph.Node(h)
	fn := smt.IsFn(n)
	if fn {
		b.WriteString("(")
	}
	b.WriteString(n.String())
	for _, c := range s.graph.Successors(h) {
		b.WriteString(" ")
		s.expand(b, c)
	}
	if fn {
		b.WriteString(")")
	}
}
