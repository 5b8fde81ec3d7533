package expression

import (
	"github.com/mandelsoft/smt/pkg/graph"
	"github.com/mandelsoft/smt/pkg/smt"
	"github.com/mandelsoft/smt/pkg/smtlib2"
	"github.com/mandelsoft/smt/pkg/theories/ints"
	"github.com/mandelsoft/smt/pkg/utils"
)

// Session is a problem session of the integer theory.
type Session = smtlib2.SMTLib2[ints.Node, ints.Sort]

type operator struct {
	fn ints.Node
	// operand is the required operand sort. Operators without operand
	// sort accept any sort, as long as all operands agree.
	operand *ints.Sort
}

func required(s ints.Sort) *ints.Sort {
	return &s
}

var binary = map[string]operator{
	"||": {ints.Or, required(ints.Bool)},
	"&&": {ints.And, required(ints.Bool)},
	"==": {ints.Eq, nil},
	"!=": {ints.Distinct, nil},
	"<":  {ints.Lt, required(ints.Int)},
	"<=": {ints.Le, required(ints.Int)},
	">":  {ints.Gt, required(ints.Int)},
	">=": {ints.Ge, required(ints.Int)},
	"+":  {ints.Add, required(ints.Int)},
	"-":  {ints.Sub, required(ints.Int)},
	"*":  {ints.Mul, required(ints.Int)},
	"/":  {ints.Div, required(ints.Int)},
	"%":  {ints.Mod, required(ints.Int)},
}

var unary = map[string]operator{
	"!": {ints.Not, required(ints.Bool)},
	"-": {ints.Neg, required(ints.Int)},
}

// Build adds the nodes for an expression to the session. Variables must
// already be declared in the session. Sort conflicts and unknown
// variables are reported as *smt.AssertionError. The session is not
// modified in this case.
func Build(s *Session, n *Node) (graph.Handle, ints.Sort, error) {
	sort, err := Check(s, n)
	if err != nil {
		return 0, 0, err
	}
	return build(s, n), sort, nil
}

// Check determines the sort of an expression.
func Check(s *Session, n *Node) (ints.Sort, error) {
	switch {
	case n.Value != nil:
		return ints.Int, nil
	case n.Bool != nil:
		return ints.Bool, nil
	case n.IsVariable():
		_, sort, ok := s.Lookup(n.Name)
		if !ok {
			return 0, smt.NewAssertionError("undeclared variable %q", n.Name)
		}
		return sort, nil
	}

	op, ok := lookup(n)
	if !ok {
		return 0, smt.NewAssertionError("unknown operator %q with %d operands", n.Name, len(n.Args))
	}
	var first ints.Sort
	for i, a := range n.Args {
		sort, err := Check(s, a)
		if err != nil {
			return 0, err
		}
		if op.operand != nil && sort != *op.operand {
			return 0, smt.NewAssertionError("operand %q of %q must be %s, but is %s", a, n.Name, *op.operand, sort)
		}
		if i == 0 {
			first = sort
		} else if sort != first {
			return 0, smt.NewAssertionError("operands of %q must have the same sort, but found %s and %s", n, first, sort)
		}
	}
	return op.fn.Sort(), nil
}

func lookup(n *Node) (operator, bool) {
	var (
		op operator
		ok bool
	)
	switch len(n.Args) {
	case 1:
		op, ok = unary[n.Name]
	case 2:
		op, ok = binary[n.Name]
	}
	return op, ok
}

func build(s *Session, n *Node) graph.Handle {
	switch {
	case n.Value != nil:
		return s.NewConst(ints.IntConst(*n.Value))
	case n.Bool != nil:
		return s.NewConst(ints.BoolConst(*n.Bool))
	case n.IsVariable():
		h, _, _ := s.Lookup(n.Name)
		return h
	}
	op, _ := lookup(n)
	operands := utils.TransformSlice(n.Args, func(a *Node) graph.Handle { return build(s, a) })
	return s.Assert(op.fn, operands...)
}

// BuildAssertion builds a boolean expression to be asserted.
// Variables and literals are asserted by comparing them to true.
func BuildAssertion(s *Session, n *Node) (graph.Handle, error) {
	sort, err := Check(s, n)
	if err != nil {
		return 0, err
	}
	if sort != ints.Bool {
		return 0, smt.NewAssertionError("assertion %q must be Bool, but is %s", n, sort)
	}
	h := build(s, n)
	if !smt.IsFn(s.Node(h)) {
		h = s.Assert(ints.Eq, h, s.NewConst(ints.BoolConst(true)))
	}
	return h, nil
}
