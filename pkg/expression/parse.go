package expression

import (
	"math"
	"unicode"

	"github.com/mandelsoft/smt/pkg/scanner"
)

type parser struct {
	scanner.Scanner
}

func NewParser(in string) *parser {
	return &parser{scanner.NewScanner(in)}
}

// levels lists the binary operators by increasing precedence.
// Comparisons do not associate.
var levels = [][]string{
	{"||"},
	{"&&"},
	{"==", "!=", "<=", ">=", "<", ">"},
	{"+", "-"},
	{"*", "/", "%"},
}

const comparisons = 2

////////////////////////////////////////////////////////////////////////////////

func (s *parser) parseExpression() (*Node, error) {
	return s.parseLevel(0)
}

func (s *parser) parseLevel(level int) (*Node, error) {
	if level == len(levels) {
		return s.parseUnary()
	}
	o1, err := s.parseLevel(level + 1)
	if err != nil {
		return nil, err
	}
	for {
		s.SkipBlanks()
		op := s.parseOperator(levels[level])
		if op == "" {
			return o1, nil
		}
		o2, err := s.parseLevel(level + 1)
		if err != nil {
			return nil, err
		}
		o1 = NewOperatorNode(op, o1, o2)
		if level == comparisons {
			s.SkipBlanks()
			if s.parseOperator(levels[level]) != "" {
				return nil, s.Errorf("comparisons cannot be chained")
			}
			return o1, nil
		}
	}
}

func (s *parser) parseOperator(ops []string) string {
	for _, op := range ops {
		if s.ConsumeString(op) {
			return op
		}
	}
	return ""
}

func (s *parser) parseUnary() (*Node, error) {
	switch s.SkipBlanks() {
	case '!':
		if s.Peek() == '=' {
			break
		}
		s.Next()
		o, err := s.parseUnary()
		if err != nil {
			return nil, err
		}
		return NewOperatorNode("!", o), nil
	case '-':
		s.Next()
		if unicode.IsDigit(s.Current()) {
			return s.parseNumber(true)
		}
		o, err := s.parseUnary()
		if err != nil {
			return nil, err
		}
		return NewOperatorNode("-", o), nil
	}
	return s.parseOperand()
}

func (s *parser) parseOperand() (*Node, error) {
	n := s.SkipBlanks()
	switch {
	case unicode.IsDigit(n):
		return s.parseNumber(false)
	case unicode.IsLetter(n) || n == '_':
		return s.parseName()
	case n == '(':
		s.Next()
		e, err := s.parseExpression()
		if err != nil {
			return nil, err
		}
		s.SkipBlanks()
		err = s.ConsumeRune(')')
		if err != nil {
			return nil, err
		}
		return e, nil
	case s.AtEnd():
		return nil, s.Errorf("unexpected end of expression")
	default:
		return nil, s.Errorf("unexpected character %q for operand", string(n))
	}
}

func (s *parser) parseNumber(negative bool) (*Node, error) {
	n := s.Current()
	if !unicode.IsDigit(n) {
		return nil, s.Errorf("number must be a sequence of digits, but found %q", string(n))
	}
	var num uint64
	for unicode.IsDigit(n) {
		d := uint64(n - '0')
		if num > (math.MaxInt64+1-d)/10 {
			return nil, s.Errorf("number too large")
		}
		num = num*10 + d
		n = s.Next()
	}
	if negative {
		return NewValueNode(int64(-num)), nil
	}
	if num > math.MaxInt64 {
		return nil, s.Errorf("number too large")
	}
	return NewValueNode(int64(num)), nil
}

func (s *parser) parseName() (*Node, error) {
	n := s.Current()
	name := ""
	for unicode.IsDigit(n) || unicode.IsLetter(n) || n == '_' {
		name = name + string(n)
		n = s.Next()
	}
	switch name {
	case "true":
		return NewBoolNode(true), nil
	case "false":
		return NewBoolNode(false), nil
	}
	return NewVariableNode(name), nil
}

// Parse parses an infix expression.
func Parse(in string) (*Node, error) {
	p := NewParser(in)

	n, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.SkipBlanks()
	if !p.AtEnd() {
		return nil, p.Errorf("unexpected character %q", string(p.Current()))
	}
	return n, nil
}
