package problem

import (
	"context"
	"errors"
	"strings"

	"github.com/mandelsoft/smt/pkg/expression"
	"github.com/mandelsoft/smt/pkg/smt"
)

type Status string

const (
	Sat     Status = "sat"
	Unsat   Status = "unsat"
	Unknown Status = "unknown"
)

// Result is the outcome of solving a problem. The model contains the
// values of all variables with a non-negative integer value.
type Result struct {
	Status Status            `json:"status"`
	Model  map[string]uint64 `json:"model,omitempty"`
}

// Instance is a problem prepared for a solver.
type Instance struct {
	session *expression.Session
}

func (i *Instance) Session() *expression.Session {
	return i.session
}

// Script returns the SMT-LIB2 script sent to the solver by Solve.
func (i *Instance) Script() string {
	var b strings.Builder
	if l := i.session.Logic().String(); l != "" {
		b.WriteString("(set-logic " + l + ")\n")
	}
	b.WriteString(i.session.GenerateAsserts())
	b.WriteString("(check-sat)\n(get-model)\n")
	return b.String()
}

// Check determines the satisfiability of the problem.
func (i *Instance) Check(ctx context.Context, p smt.Proc) (*Result, error) {
	if err := i.session.SetLogic(p); err != nil {
		return nil, err
	}
	answer, err := i.session.CheckSatAnswer(ctx, p)
	if err != nil {
		return nil, err
	}
	return &Result{Status: status(answer)}, nil
}

// status classifies a check-sat answer. Everything neither sat nor
// unsat, including garbage, is inconclusive.
func status(answer string) Status {
	switch {
	case answer == "sat\n":
		return Sat
	case strings.TrimSpace(answer) == "unsat":
		return Unsat
	default:
		return Unknown
	}
}

// Solve determines a model for the problem.
func (i *Instance) Solve(ctx context.Context, p smt.Proc) (*Result, error) {
	if err := i.session.SetLogic(p); err != nil {
		return nil, err
	}
	values, err := i.session.SolveContext(ctx, p)
	if errors.Is(err, smt.ErrUnsat) {
		return &Result{Status: Unsat}, nil
	}
	if err != nil {
		return nil, err
	}
	r := &Result{Status: Sat, Model: map[string]uint64{}}
	for h, v := range values {
		if n, ok := i.session.Name(h); ok {
			r.Model[n] = v
		}
	}
	log.Debug("found model for {{variables}} variables", "variables", len(r.Model), "session", i.session.ID())
	return r, nil
}
