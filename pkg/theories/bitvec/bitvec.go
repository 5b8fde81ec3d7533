// Package bitvec provides the theory of fixed size bitvectors.
package bitvec

import (
	"fmt"

	"github.com/mandelsoft/smt/pkg/smt"
)

// Sort is either a bitvector sort of a given width or Bool.
type Sort struct {
	width int
}

var Bool = Sort{}

func BitVec(width int) Sort {
	if width <= 0 {
		panic(fmt.Sprintf("invalid bitvector width %d", width))
	}
	return Sort{width: width}
}

// Width returns the number of bits or 0 for Bool.
func (s Sort) Width() int {
	return s.width
}

func (s Sort) String() string {
	if s.width == 0 {
		return "Bool"
	}
	return fmt.Sprintf("(_ BitVec %d)", s.width)
}

type kind int

const (
	variable kind = iota
	constant
	function
)

type Node struct {
	kind    kind
	token   string
	boolean bool
}

var _ smt.Node = Node{}
var _ smt.Boolean = Node{}

func (n Node) String() string {
	return n.token
}

func (n Node) IsVar() bool {
	return n.kind == variable
}

func (n Node) IsConst() bool {
	return n.kind == constant
}

func (n Node) IsBool() bool {
	return n.boolean
}

func Var(name string, sort Sort) Node {
	return Node{kind: variable, token: name, boolean: sort == Bool}
}

// Const returns the bitvector literal of the given width. Widths
// divisible by four are rendered in hexadecimal, others in binary.
func Const(v uint64, width int) Node {
	if width <= 0 || width > 64 {
		panic(fmt.Sprintf("invalid bitvector width %d", width))
	}
	if width < 64 {
		v &= (uint64(1) << width) - 1
	}
	if width%4 == 0 {
		return Node{kind: constant, token: fmt.Sprintf("#x%0*x", width/4, v)}
	}
	return Node{kind: constant, token: fmt.Sprintf("#b%0*b", width, v)}
}

func BoolConst(b bool) Node {
	return Node{kind: constant, token: fmt.Sprintf("%t", b), boolean: true}
}

func fn(op string, boolean bool) Node {
	return Node{kind: function, token: op, boolean: boolean}
}

var (
	BVAdd  = fn("bvadd", false)
	BVSub  = fn("bvsub", false)
	BVMul  = fn("bvmul", false)
	BVUDiv = fn("bvudiv", false)
	BVURem = fn("bvurem", false)
	BVAnd  = fn("bvand", false)
	BVOr   = fn("bvor", false)
	BVXor  = fn("bvxor", false)
	BVNot  = fn("bvnot", false)
	BVNeg  = fn("bvneg", false)
	BVShl  = fn("bvshl", false)
	BVLShr = fn("bvlshr", false)
	Concat = fn("concat", false)

	BVULt = fn("bvult", true)
	BVULe = fn("bvule", true)
	BVUGt = fn("bvugt", true)
	BVUGe = fn("bvuge", true)
	Eq    = fn("=", true)
	And   = fn("and", true)
	Or    = fn("or", true)
	Not   = fn("not", true)
)

// Extract selects the bits i down to j of its operand.
func Extract(i, j int) Node {
	return fn(fmt.Sprintf("(_ extract %d %d)", i, j), false)
}

// ZeroExtend widens its operand by n zero bits.
func ZeroExtend(n int) Node {
	return fn(fmt.Sprintf("(_ zero_extend %d)", n), false)
}

type Logic string

const (
	None  Logic = ""
	QF_BV Logic = "QF_BV"
)

var _ smt.Logic[Node, Sort] = QF_BV

func (l Logic) String() string {
	return string(l)
}

func (l Logic) FreeVar(name string, sort Sort) Node {
	return Var(name, sort)
}
