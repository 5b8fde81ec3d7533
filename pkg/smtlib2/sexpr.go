package smtlib2

import (
	"strings"
	"unicode"

	"github.com/mandelsoft/smt/pkg/scanner"
)

// sexpr is a parsed s-expression. A nil list with a non-empty atom is
// a token, everything else is a (possibly empty) list.
type sexpr struct {
	atom string
	list []*sexpr
}

func (e *sexpr) IsList() bool {
	return e.atom == ""
}

func (e *sexpr) Head() string {
	if !e.IsList() || len(e.list) == 0 {
		return ""
	}
	return e.list[0].atom
}

func (e *sexpr) String() string {
	if !e.IsList() {
		return e.atom
	}
	parts := make([]string, len(e.list))
	for i, s := range e.list {
		parts[i] = s.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func parseSExprs(text string) ([]*sexpr, error) {
	var result []*sexpr

	s := scanner.NewScanner(text)
	for {
		skipBlanks(s)
		if s.AtEnd() {
			return result, nil
		}
		e, err := parseSExpr(s)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
}

func skipBlanks(s scanner.Scanner) rune {
	for {
		c := s.SkipBlanks()
		if c != ';' {
			return c
		}
		for !s.AtEnd() && c != '\n' {
			c = s.Next()
		}
	}
}

func parseSExpr(s scanner.Scanner) (*sexpr, error) {
	c := skipBlanks(s)
	switch {
	case s.AtEnd():
		return nil, s.Errorf("unexpected end of input")
	case c == ')':
		return nil, s.Errorf("unexpected ')'")
	case c == '(':
		e := &sexpr{list: []*sexpr{}}
		s.Next()
		for {
			c = skipBlanks(s)
			if s.AtEnd() {
				return nil, s.Errorf("')' expected")
			}
			if c == ')' {
				s.Next()
				return e, nil
			}
			sub, err := parseSExpr(s)
			if err != nil {
				return nil, err
			}
			e.list = append(e.list, sub)
		}
	case c == '"':
		return parseQuoted(s, '"')
	case c == '|':
		return parseQuoted(s, '|')
	default:
		var b strings.Builder
		for !s.AtEnd() && !unicode.IsSpace(c) && !strings.ContainsRune("()\";|", c) {
			b.WriteRune(c)
			c = s.Next()
		}
		return &sexpr{atom: b.String()}, nil
	}
}

// parseQuoted parses string literals and quoted symbols. The delimiters
// are kept. Inside string literals a doubled quote denotes a quote.
func parseQuoted(s scanner.Scanner, delim rune) (*sexpr, error) {
	var b strings.Builder

	b.WriteRune(delim)
	c := s.Next()
	for {
		if s.AtEnd() {
			return nil, s.Errorf("unterminated %c", delim)
		}
		b.WriteRune(c)
		if c == delim {
			c = s.Next()
			if delim == '"' && c == '"' {
				b.WriteRune(c)
				c = s.Next()
				continue
			}
			return &sexpr{atom: b.String()}, nil
		}
		c = s.Next()
	}
}
