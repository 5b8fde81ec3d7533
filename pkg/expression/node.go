package expression

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mandelsoft/smt/pkg/utils"
)

// Node is a node of a parsed expression. Literals carry a Value or a
// Bool, variables a Name, only. Operators carry their operator symbol
// as Name and their operands as Args.
type Node struct {
	Name  string
	Args  []*Node
	Value *int64
	Bool  *bool
}

func (n *Node) String() string {
	switch {
	case n.Value != nil:
		return fmt.Sprintf("%d", *n.Value)
	case n.Bool != nil:
		return fmt.Sprintf("%t", *n.Bool)
	case len(n.Args) == 1:
		return fmt.Sprintf("%s%s", n.Name, n.Args[0])
	case len(n.Args) > 0:
		args := utils.TransformSlice(n.Args, (*Node).String)
		return fmt.Sprintf("(%s)", strings.Join(args, n.Name))
	}
	return n.Name
}

func (n *Node) IsVariable() bool {
	return n.Value == nil && n.Bool == nil && len(n.Args) == 0
}

func NewValueNode(v int64) *Node {
	return &Node{
		Value: utils.Pointer(v),
	}
}

func NewBoolNode(b bool) *Node {
	return &Node{
		Bool: utils.Pointer(b),
	}
}

func NewVariableNode(n string) *Node {
	return &Node{
		Name: n,
	}
}

func NewOperatorNode(op string, args ...*Node) *Node {
	return &Node{
		Name: op,
		Args: args,
	}
}

// Variables returns the names of all variables used by the expression
// in the order of their first occurrence.
func (n *Node) Variables() []string {
	if n.IsVariable() {
		return []string{n.Name}
	}
	var result []string
	for _, a := range n.Args {
		for _, v := range a.Variables() {
			if !slices.Contains(result, v) {
				result = append(result, v)
			}
		}
	}
	return result
}
