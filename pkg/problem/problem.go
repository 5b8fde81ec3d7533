package problem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/drone/envsubst"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"gopkg.in/yaml.v3"

	"github.com/mandelsoft/smt/pkg/expression"
	"github.com/mandelsoft/smt/pkg/smtlib2"
	"github.com/mandelsoft/smt/pkg/theories/ints"
	"github.com/mandelsoft/smt/pkg/utils"
)

type Problem struct {
	Logic      string            `json:"logic,omitempty" yaml:"logic,omitempty"`
	Variables  map[string]string `json:"variables,omitempty" yaml:"variables,omitempty"`
	Assertions []string          `json:"assertions,omitempty" yaml:"assertions,omitempty"`
}

var name = regexp.MustCompile("^[a-zA-Z_][a-zA-Z0-9_]*$")

// Read reads a problem file.
func Read(fs vfs.FileSystem, path string, env ...func(string) string) (*Problem, error) {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("cannot read problem file %q: %w", path, err)
	}
	p, err := Parse(data, env...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse parses a problem document. Variable references are resolved
// by the given mapping, which defaults to the process environment.
// Keys are read as YAML 1.2, so variables like y, n or on keep their
// names.
func Parse(data []byte, env ...func(string) string) (*Problem, error) {
	text, err := envsubst.Eval(string(data), utils.OptionalDefaulted(os.Getenv, env...))
	if err != nil {
		return nil, fmt.Errorf("substitution failed: %w", err)
	}
	var p Problem
	dec := yaml.NewDecoder(bytes.NewBufferString(text))
	dec.KnownFields(true)
	err = dec.Decode(&p)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &p, nil
}

// Validate checks the problem for syntactic and sort errors.
// All detected errors are reported.
func (p *Problem) Validate() error {
	_, err := p.build()
	return err
}

// Build validates the problem and creates a solver session for it.
func (p *Problem) Build(opts ...smtlib2.Option) (*Instance, error) {
	s, err := p.build(opts...)
	if err != nil {
		return nil, err
	}
	log.Debug("problem with {{variables}} variables and {{assertions}} assertions", "variables", len(p.Variables), "assertions", len(p.Assertions), "session", s.ID())
	return &Instance{session: s}, nil
}

func (p *Problem) build(opts ...smtlib2.Option) (*expression.Session, error) {
	var errs []error

	if p.Logic != "" && !name.MatchString(p.Logic) {
		errs = append(errs, fmt.Errorf("invalid logic %q", p.Logic))
	}
	s := smtlib2.New[ints.Node, ints.Sort](ints.Logic(p.Logic), opts...)

	for _, n := range utils.OrderedMapKeys(p.Variables) {
		sort, err := ints.ParseSort(p.Variables[n])
		switch {
		case !name.MatchString(n) || n == "true" || n == "false":
			errs = append(errs, fmt.Errorf("invalid variable name %q", n))
		case err != nil:
			errs = append(errs, fmt.Errorf("variable %q: %w", n, err))
		default:
			s.NewVar(n, sort)
		}
	}
	if len(p.Assertions) == 0 {
		errs = append(errs, fmt.Errorf("no assertions"))
	}
	for i, a := range p.Assertions {
		e, err := expression.Parse(a)
		if err == nil {
			_, err = expression.BuildAssertion(s, e)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("assertion %d: %w", i+1, err))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return s, nil
}
