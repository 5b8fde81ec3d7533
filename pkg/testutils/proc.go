package testutils

import (
	"context"
	"fmt"
	"io"

	"github.com/mandelsoft/smt/pkg/smt"
)

// ScriptedProc is an in-memory smt.Proc answering reads with
// a predefined sequence of responses.
type ScriptedProc struct {
	Initialized bool
	Written     []string
	Responses   []string
	Reads       int
	Closed      bool

	// WriteErr, if set, is the cause of every write failure.
	WriteErr error
	// ReadErr, if set, is returned when the responses are exhausted.
	ReadErr error
}

var _ smt.Proc = (*ScriptedProc)(nil)

func NewScriptedProc(responses ...string) *ScriptedProc {
	return &ScriptedProc{Responses: responses}
}

func (p *ScriptedProc) Init() error {
	p.Initialized = true
	return nil
}

func (p *ScriptedProc) Write(s string) error {
	if p.WriteErr != nil {
		return fmt.Errorf("%w: %w", smt.ErrWrite, p.WriteErr)
	}
	p.Written = append(p.Written, s)
	return nil
}

func (p *ScriptedProc) Read(ctx context.Context) (string, error) {
	p.Reads++
	if len(p.Responses) == 0 {
		if p.ReadErr != nil {
			return "", p.ReadErr
		}
		return "", fmt.Errorf("solver output: %w", io.EOF)
	}
	r := p.Responses[0]
	p.Responses = p.Responses[1:]
	return r, nil
}

func (p *ScriptedProc) ReadResponse(ctx context.Context) (string, error) {
	return p.Read(ctx)
}

func (p *ScriptedProc) Close() error {
	p.Closed = true
	return nil
}

// Script returns all written text.
func (p *ScriptedProc) Script() string {
	s := ""
	for _, w := range p.Written {
		s += w
	}
	return s
}
