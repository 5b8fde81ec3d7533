package proc

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/mandelsoft/smt/pkg/ctxutil"
	"github.com/mandelsoft/smt/pkg/smt"
	"github.com/mandelsoft/smt/pkg/utils"
)

// Process is a solver subprocess reading SMT-LIB2 commands from its
// standard input and answering on its standard output.
type Process struct {
	path string
	args []string
	opts options

	cmd     *exec.Cmd
	channel *Channel
	exited  utils.Sync
	trigger utils.SyncTrigger
	status  utils.Settable[error]
}

var _ smt.Proc = (*Process)(nil)

// NewProcess prepares a solver process. The process is spawned by Init.
func NewProcess(path string, args []string, opts ...Option) *Process {
	p := &Process{
		path: path,
		args: append([]string(nil), args...),
		opts: evalOptions(opts...),
	}
	p.exited, p.trigger = utils.NewSyncPoint()
	return p
}

func (p *Process) String() string {
	return fmt.Sprintf("%s %v", p.path, p.args)
}

// Init spawns the solver and opens its streams.
func (p *Process) Init() error {
	if p.cmd != nil {
		return fmt.Errorf("solver %q already started", p.path)
	}
	cmd := exec.Command(p.path, p.args...)
	cmd.Dir = p.opts.dir
	cmd.Stderr = p.opts.stderr

	in, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("cannot create solver input: %w", err)
	}
	// the output pipe is handled explicitly, because the pipe provided by
	// exec is closed by Wait even if there is unread output.
	out, w, err := os.Pipe()
	if err != nil {
		in.Close()
		return fmt.Errorf("cannot create solver output: %w", err)
	}
	cmd.Stdout = w

	if err := cmd.Start(); err != nil {
		in.Close()
		out.Close()
		w.Close()
		return fmt.Errorf("cannot start solver %q: %w", p.path, err)
	}
	w.Close()
	log.Debug("started solver {{solver}} ({{pid}})", "solver", p.path, "pid", cmd.Process.Pid)

	p.cmd = cmd
	p.channel = newChannel(in, out, p.opts)
	go func() {
		err := cmd.Wait()
		p.status.Set(err)
		log.Debug("solver {{pid}} exited", "pid", cmd.Process.Pid, "status", err)
		p.trigger.Done()
	}()
	return p.channel.Init()
}

func (p *Process) Write(s string) error {
	if p.channel == nil {
		return fmt.Errorf("%w: %w", smt.ErrWrite, ErrNotInitialized)
	}
	return p.channel.Write(s)
}

func (p *Process) Read(ctx context.Context) (string, error) {
	if p.channel == nil {
		return "", ErrNotInitialized
	}
	return p.channel.Read(ctx)
}

func (p *Process) ReadResponse(ctx context.Context) (string, error) {
	if p.channel == nil {
		return "", ErrNotInitialized
	}
	return p.channel.ReadResponse(ctx)
}

// Exited provides a sync point triggered when the solver terminates.
func (p *Process) Exited() utils.Sync {
	return p.exited
}

// ExitStatus reports whether the process has terminated and
// the error returned by waiting for it.
func (p *Process) ExitStatus() (bool, error) {
	err, ok := p.status.Get()
	return ok, err
}

// Close closes the solver input, which asks the solver to terminate.
// A solver still running after the grace period is killed.
func (p *Process) Close() error {
	if p.cmd == nil {
		return nil
	}
	err := p.channel.Close()

	ctx := ctxutil.TimeoutContext(context.Background(), p.opts.grace)
	defer ctxutil.Cancel(ctx)
	if !p.exited.Wait(ctx) {
		log.Debug("killing solver {{pid}}", "pid", p.cmd.Process.Pid)
		if kerr := p.cmd.Process.Kill(); kerr != nil && err == nil {
			err = kerr
		}
		p.exited.Wait(context.Background())
	}
	return err
}
