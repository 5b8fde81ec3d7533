package testutils

import (
	"bufio"
	"io"
	"strings"
	"sync"
	"time"
)

// FakeSolver emulates a solver process talking SMT-LIB2 over pipes.
// It expects one command per line and answers commands by their
// head symbol with the configured outputs. Every output is written
// separately.
type FakeSolver struct {
	lock      sync.Mutex
	commands  []string
	responses map[string][]string
	delays    map[string]time.Duration

	cmdr  *io.PipeReader
	cmdw  *io.PipeWriter
	respr *io.PipeReader
	respw *io.PipeWriter
	done  chan struct{}
}

func NewFakeSolver() *FakeSolver {
	return &FakeSolver{
		responses: map[string][]string{},
		delays:    map[string]time.Duration{},
		done:      make(chan struct{}),
	}
}

// Respond configures the outputs written for every command with the given head.
func (f *FakeSolver) Respond(head string, outputs ...string) *FakeSolver {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.responses[head] = outputs
	return f
}

// Delay configures a delay before the outputs of a command are written.
func (f *FakeSolver) Delay(head string, d time.Duration) *FakeSolver {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.delays[head] = d
	return f
}

// Streams starts the solver and returns its input and output streams.
func (f *FakeSolver) Streams() (io.WriteCloser, io.ReadCloser) {
	f.cmdr, f.cmdw = io.Pipe()
	f.respr, f.respw = io.Pipe()
	go f.run()
	return f.cmdw, f.respr
}

func (f *FakeSolver) run() {
	defer close(f.done)
	defer f.respw.Close()

	scanner := bufio.NewScanner(f.cmdr)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		head := Head(line)

		f.lock.Lock()
		f.commands = append(f.commands, line)
		outputs := f.responses[head]
		delay := f.delays[head]
		f.lock.Unlock()

		if len(outputs) > 0 && delay > 0 {
			time.Sleep(delay)
		}
		for _, o := range outputs {
			if _, err := f.respw.Write([]byte(o)); err != nil {
				return
			}
		}
	}
}

// Commands returns the commands received so far.
func (f *FakeSolver) Commands() []string {
	f.lock.Lock()
	defer f.lock.Unlock()
	return append([]string(nil), f.commands...)
}

// Heads returns the head symbols of the commands received so far.
func (f *FakeSolver) Heads() []string {
	var r []string
	for _, c := range f.Commands() {
		r = append(r, Head(c))
	}
	return r
}

// Close terminates the solver. Its output stream reports the end of
// the output afterwards.
func (f *FakeSolver) Close() {
	if f.cmdr == nil {
		return
	}
	f.cmdr.Close()
	f.respw.Close()
	<-f.done
}

// Head returns the head symbol of a command.
func Head(cmd string) string {
	cmd = strings.TrimPrefix(strings.TrimSpace(cmd), "(")
	if i := strings.IndexAny(cmd, " )"); i >= 0 {
		return cmd[:i]
	}
	return cmd
}
