package smtlib2

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mandelsoft/smt/pkg/ctxutil"
	"github.com/mandelsoft/smt/pkg/graph"
	"github.com/mandelsoft/smt/pkg/smt"
)

// SetLogic sends the set-logic command for the logic of the session.
// Nothing is sent for a logic without name.
func (s *SMTLib2[N, S]) SetLogic(p smt.Proc) error {
	name := s.logic.String()
	if name == "" {
		s.log.Debug("no logic to set")
		return nil
	}
	return s.write(p, fmt.Sprintf("(set-logic %s)\n", name))
}

// CheckSat sends the problem followed by check-sat and waits for the
// answer without time limit. The problem is satisfiable only if the
// answer is exactly "sat".
func (s *SMTLib2[N, S]) CheckSat(p smt.Proc) (bool, error) {
	return s.CheckSatContext(context.Background(), p)
}

// CheckSatWithTimeout works like CheckSat, but fails with smt.ErrTimeout
// if no answer arrives in time. A non-positive timeout waits forever.
func (s *SMTLib2[N, S]) CheckSatWithTimeout(p smt.Proc, timeout time.Duration) (bool, error) {
	resp, err := s.checkSat(bound{context.Background(), timeout}, p)
	return resp == "sat\n", err
}

// CheckSatContext works like CheckSat. Reading the answer is bound to the
// given context. An expired deadline results in smt.ErrTimeout, all other
// read failures in smt.ErrUndefined.
func (s *SMTLib2[N, S]) CheckSatContext(ctx context.Context, p smt.Proc) (bool, error) {
	resp, err := s.CheckSatAnswer(ctx, p)
	return resp == "sat\n", err
}

// CheckSatAnswer works like CheckSatContext, but returns the unprocessed
// answer of the solver, for example "unknown\n".
func (s *SMTLib2[N, S]) CheckSatAnswer(ctx context.Context, p smt.Proc) (string, error) {
	return s.checkSat(bound{ctx, 0}, p)
}

func (s *SMTLib2[N, S]) checkSat(b bound, p smt.Proc) (string, error) {
	if err := s.write(p, s.GenerateAsserts()); err != nil {
		return "", err
	}
	if err := s.write(p, "(check-sat)\n"); err != nil {
		return "", err
	}
	resp, err := b.read(p, s.framing)
	if err != nil {
		return "", s.readError("check-sat", err)
	}
	s.log.Debug("check-sat answered {{answer}}", "answer", strings.TrimSpace(resp))
	return resp, nil
}

// Solve checks the problem and, if it is satisfiable, requests and
// parses the model. It fails with smt.ErrUnsat if the problem is not
// satisfiable. In this case get-model is never sent.
func (s *SMTLib2[N, S]) Solve(p smt.Proc) (map[graph.Handle]uint64, error) {
	return s.SolveContext(context.Background(), p)
}

// SolveWithTimeout works like Solve, but every single read is limited
// by the given timeout. The overall duration is not limited.
func (s *SMTLib2[N, S]) SolveWithTimeout(p smt.Proc, timeout time.Duration) (map[graph.Handle]uint64, error) {
	return s.solve(bound{context.Background(), timeout}, p)
}

// SolveContext works like Solve. All reads together are bound to the
// given context.
func (s *SMTLib2[N, S]) SolveContext(ctx context.Context, p smt.Proc) (map[graph.Handle]uint64, error) {
	return s.solve(bound{ctx, 0}, p)
}

func (s *SMTLib2[N, S]) solve(b bound, p smt.Proc) (map[graph.Handle]uint64, error) {
	resp, err := s.checkSat(b, p)
	if err != nil {
		return nil, err
	}
	if resp != "sat\n" {
		s.log.Debug("problem is not satisfiable")
		return nil, smt.ErrUnsat
	}
	if err := s.write(p, "(get-model)\n"); err != nil {
		return nil, err
	}
	text, err := s.readModel(b, p)
	if err != nil {
		return nil, err
	}
	return s.ParseModel(text)
}

func (s *SMTLib2[N, S]) readModel(b bound, p smt.Proc) (string, error) {
	if s.framing == Raw {
		// first chunk is the acknowledgement of get-model
		if _, err := b.read(p, Raw); err != nil {
			return "", s.readError("get-model", err)
		}
		text, err := b.read(p, Raw)
		if err != nil {
			return "", s.readError("get-model", err)
		}
		return text, nil
	}
	for {
		text, err := b.read(p, Framed)
		if err != nil {
			return "", s.readError("get-model", err)
		}
		if strings.HasPrefix(strings.TrimSpace(text), "(") {
			return text, nil
		}
		s.log.Debug("skipping response {{response}} awaiting model", "response", strings.TrimSpace(text))
	}
}

// bound limits a single read by its own timeout within a parent context.
type bound struct {
	ctx     context.Context
	timeout time.Duration
}

func (b bound) read(p smt.Proc, framing Framing) (string, error) {
	ctx := ctxutil.TimeoutContext(b.ctx, b.timeout)
	defer ctxutil.Cancel(ctx)
	if framing == Raw {
		return p.Read(ctx)
	}
	return p.ReadResponse(ctx)
}

func (s *SMTLib2[N, S]) write(p smt.Proc, text string) error {
	s.log.Trace("sending {{text}}", "text", text)
	err := p.Write(text)
	if err == nil {
		return nil
	}
	if errors.Is(err, smt.ErrWrite) {
		return err
	}
	return fmt.Errorf("%w: %w", smt.ErrWrite, err)
}

func (s *SMTLib2[N, S]) readError(cmd string, err error) error {
	if errors.Is(err, smt.ErrTimeout) {
		s.log.Debug("no answer for {{command}} in time", "command", cmd)
		return err
	}
	if ctxutil.IsTimeout(err) {
		s.log.Debug("no answer for {{command}} in time", "command", cmd)
		return fmt.Errorf("%w: %w", smt.ErrTimeout, err)
	}
	s.log.LogError(err, "reading answer for {{command}}", "command", cmd)
	return fmt.Errorf("%w: %s: %w", smt.ErrUndefined, cmd, err)
}
