package smtlib2

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mandelsoft/smt/pkg/graph"
	"github.com/mandelsoft/smt/pkg/smt"
)

// ParseModel extracts the values of the variables from a get-model
// response. Every define-fun without parameters whose name is a
// registered variable and whose value is a decimal, hexadecimal (#x) or
// binary (#b) literal contributes an entry. Other values, like booleans
// or negative numbers, are ignored.
//
// A numeric value which cannot be represented as uint64 results in
// smt.ErrParse. An error response of the solver results in
// smt.ErrUndefined.
func (s *SMTLib2[N, S]) ParseModel(text string) (map[graph.Handle]uint64, error) {
	exprs, err := parseSExprs(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", smt.ErrParse, err)
	}
	result := map[graph.Handle]uint64{}
	for _, e := range exprs {
		if err := s.collect(e, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *SMTLib2[N, S]) collect(e *sexpr, result map[graph.Handle]uint64) error {
	if !e.IsList() {
		return nil
	}
	switch e.Head() {
	case "error":
		return fmt.Errorf("%w: solver reported %s", smt.ErrUndefined, e)
	case "define-fun":
		return s.define(e, result)
	}
	for _, sub := range e.list {
		if err := s.collect(sub, result); err != nil {
			return err
		}
	}
	return nil
}

// define handles (define-fun NAME () SORT VALUE).
func (s *SMTLib2[N, S]) define(e *sexpr, result map[graph.Handle]uint64) error {
	if len(e.list) != 5 || e.list[1].IsList() || !e.list[2].IsList() || len(e.list[2].list) != 0 {
		s.log.Trace("ignoring definition {{definition}}", "definition", e)
		return nil
	}
	name := e.list[1].atom
	if !isModelName(name) {
		s.log.Trace("ignoring definition of {{name}}", "name", name)
		return nil
	}
	v, ok, err := decodeValue(e.list[4])
	if err != nil {
		return fmt.Errorf("%w: value of %s: %w", smt.ErrParse, name, err)
	}
	if !ok {
		s.log.Trace("ignoring non-numeric value {{value}} of {{name}}", "name", name, "value", e.list[4])
		return nil
	}
	entry, found := s.vars[name]
	if !found {
		s.log.Warn("model contains unknown variable {{name}}", "name", name)
		return nil
	}
	result[entry.handle] = v
	return nil
}

func isModelName(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		if !(c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

// decodeValue decodes numeric literals. The indexed form (_ bvN W) is
// accepted as decimal N.
func decodeValue(e *sexpr) (uint64, bool, error) {
	tok := e.atom
	if e.IsList() {
		if len(e.list) != 3 || e.Head() != "_" || e.list[1].IsList() || !strings.HasPrefix(e.list[1].atom, "bv") {
			return 0, false, nil
		}
		tok = strings.TrimPrefix(e.list[1].atom, "bv")
		if tok == "" || tok[0] < '0' || tok[0] > '9' {
			return 0, false, nil
		}
	}

	var (
		digits string
		base   int
	)
	switch {
	case strings.HasPrefix(tok, "#x"):
		digits, base = tok[2:], 16
	case strings.HasPrefix(tok, "#b"):
		digits, base = tok[2:], 2
	case tok != "" && tok[0] >= '0' && tok[0] <= '9':
		digits, base = tok, 10
	default:
		return 0, false, nil
	}
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, true, err
	}
	return v, true, nil
}
