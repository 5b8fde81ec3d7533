// Package ints provides the core boolean theory combined with integer
// arithmetic.
package ints

import (
	"fmt"

	"github.com/mandelsoft/smt/pkg/smt"
)

type Sort int

const (
	Int Sort = iota
	Bool
)

func (s Sort) String() string {
	switch s {
	case Int:
		return "Int"
	case Bool:
		return "Bool"
	default:
		return fmt.Sprintf("<invalid sort %d>", int(s))
	}
}

// ParseSort maps a sort name to a sort.
func ParseSort(name string) (Sort, error) {
	switch name {
	case "Int":
		return Int, nil
	case "Bool":
		return Bool, nil
	default:
		return 0, fmt.Errorf("unknown sort %q", name)
	}
}

type Kind int

const (
	Variable Kind = iota
	Constant
	Function
)

// Node is a node value of the theory. For functions the sort is the
// sort of the result.
type Node struct {
	kind  Kind
	token string
	sort  Sort
}

var _ smt.Node = Node{}
var _ smt.Boolean = Node{}

func (n Node) String() string {
	return n.token
}

func (n Node) Kind() Kind {
	return n.kind
}

func (n Node) Sort() Sort {
	return n.sort
}

func (n Node) IsVar() bool {
	return n.kind == Variable
}

func (n Node) IsConst() bool {
	return n.kind == Constant
}

func (n Node) IsBool() bool {
	return n.sort == Bool
}

func Var(name string, sort Sort) Node {
	return Node{kind: Variable, token: name, sort: sort}
}

func IntConst(v int64) Node {
	if v < 0 {
		return Node{kind: Constant, token: fmt.Sprintf("(- %d)", -v), sort: Int}
	}
	return Node{kind: Constant, token: fmt.Sprintf("%d", v), sort: Int}
}

func BoolConst(b bool) Node {
	return Node{kind: Constant, token: fmt.Sprintf("%t", b), sort: Bool}
}

func fn(op string, sort Sort) Node {
	return Node{kind: Function, token: op, sort: sort}
}

var (
	Eq       = fn("=", Bool)
	Distinct = fn("distinct", Bool)
	Lt       = fn("<", Bool)
	Le       = fn("<=", Bool)
	Gt       = fn(">", Bool)
	Ge       = fn(">=", Bool)
	And      = fn("and", Bool)
	Or       = fn("or", Bool)
	Not      = fn("not", Bool)
	Implies  = fn("=>", Bool)
	Xor      = fn("xor", Bool)

	Add = fn("+", Int)
	Sub = fn("-", Int)
	Neg = fn("-", Int)
	Mul = fn("*", Int)
	Div = fn("div", Int)
	Mod = fn("mod", Int)
	Abs = fn("abs", Int)
)

// Ite is the if-then-else function yielding a result of the given sort.
func Ite(sort Sort) Node {
	return fn("ite", sort)
}

// Logic is the name of an SMT-LIB2 logic covered by this theory.
type Logic string

const (
	None   Logic = ""
	QF_LIA Logic = "QF_LIA"
	QF_NIA Logic = "QF_NIA"
	LIA    Logic = "LIA"
)

var _ smt.Logic[Node, Sort] = QF_LIA

func (l Logic) String() string {
	return string(l)
}

func (l Logic) FreeVar(name string, sort Sort) Node {
	return Var(name, sort)
}
