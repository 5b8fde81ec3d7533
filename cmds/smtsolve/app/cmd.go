package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gowebpki/jcs"
	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/smt/pkg/batch"
	"github.com/mandelsoft/smt/pkg/ctxutil"
	"github.com/mandelsoft/smt/pkg/problem"
	"github.com/mandelsoft/smt/pkg/proc"
	"github.com/mandelsoft/smt/pkg/smtlib2"
	"github.com/mandelsoft/smt/pkg/utils"
)

// Solver is a solver connection usable by the command.
type Solver = batch.Solver

// Factory provides a solver connection for a solver command.
type Factory func(path string, args []string) Solver

func ProcessFactory(path string, args []string) Solver {
	return proc.NewProcess(path, args, proc.WithStderr(os.Stderr))
}

type Options struct {
	cmd *cobra.Command

	solver   string
	args     []string
	timeout  time.Duration
	output   string
	framing  string
	script   bool
	check    bool
	level    string
	parallel int

	fs      vfs.FileSystem
	factory Factory
}

func New(fss ...vfs.FileSystem) *cobra.Command {
	return NewWithFactory(ProcessFactory, fss...)
}

// NewWithFactory creates the command using the given factory to
// connect to solvers.
func NewWithFactory(factory Factory, fss ...vfs.FileSystem) *cobra.Command {
	opts := &Options{
		fs:      utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
		factory: factory,
	}

	cfg := GetConfig(opts.fs, os.Getenv)
	opts.solver = *cfg.Solver
	opts.args = cfg.Args
	opts.framing = smtlib2.Framed.String()
	if cfg.Framing != nil {
		opts.framing = *cfg.Framing
	}

	cmd := &cobra.Command{
		Use:   "smtsolve <options> {<problem file>}",
		Short: "solve constraint problems",
		Long: `
This command solves a constraint problem over integer and boolean variables
with an SMT-LIB2 solver. The problem is read from a YAML file, or from
standard input if the file name is "-". It prints the verdict of the solver
and, if the problem is satisfiable, the values of the variables.

If multiple problem files are given, they are solved concurrently by separate
solver processes and a list of results is printed.

The solver command is taken from the environment variables SMT_SOLVER and
SMT_SOLVER_ARGS or from a .smtsolve config file. It defaults to "z3 -in".
The default log level can be set with the environment variable SMT_LOG_LEVEL.
`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts.cmd = cmd
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return opts.Run(args) }

	opts.AddFlags(cmd.Flags())
	return cmd
}

// AddFlags registers the command line options. Defaults are the
// values already present in the options.
func (o *Options) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&o.solver, "solver", "s", o.solver, "solver command")
	flags.StringArrayVarP(&o.args, "arg", "a", o.args, "solver argument")
	flags.DurationVarP(&o.timeout, "timeout", "t", 0, "timeout for solver answers")
	flags.StringVarP(&o.output, "output", "o", "yaml", "output format (yaml or json)")
	flags.StringVarP(&o.framing, "framing", "f", o.framing, "response framing (framed or raw)")
	flags.BoolVarP(&o.script, "script", "", false, "print SMT-LIB2 script instead of solving")
	flags.BoolVarP(&o.check, "check", "c", false, "check satisfiability, only")
	flags.StringVarP(&o.level, "log-level", "L", "", "log level (default from SMT_LOG_LEVEL or warn)")
	flags.IntVarP(&o.parallel, "parallel", "p", 1, "number of concurrently running solvers")
}

func (o *Options) Run(args []string) error {
	if o.level != "" {
		l, err := logging.ParseLevel(o.level)
		if err != nil {
			return fmt.Errorf("invalid log level %q", o.level)
		}
		logging.DefaultContext().AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("smt")))
	}

	var framing smtlib2.Framing
	switch strings.ToLower(strings.TrimSpace(o.framing)) {
	case smtlib2.Framed.String():
		framing = smtlib2.Framed
	case smtlib2.Raw.String():
		framing = smtlib2.Raw
	default:
		return fmt.Errorf("invalid framing %q", o.framing)
	}

	format := strings.ToLower(strings.TrimSpace(o.output))
	if format != "yaml" && format != "json" {
		return fmt.Errorf("invalid output format %q", o.output)
	}

	var jobs []batch.Job
	for _, path := range args {
		p, err := o.read(path)
		if err != nil {
			return err
		}
		instance, err := p.Build(smtlib2.WithFraming(framing))
		if err != nil {
			if len(args) > 1 {
				return fmt.Errorf("%s: %w", path, err)
			}
			return err
		}
		jobs = append(jobs, batch.Job{Name: path, Instance: instance})
	}

	if o.script {
		for _, j := range jobs {
			if len(jobs) > 1 {
				fmt.Fprintf(o.cmd.OutOrStdout(), "; %s\n", j.Name)
			}
			if _, err := io.WriteString(o.cmd.OutOrStdout(), j.Instance.Script()); err != nil {
				return err
			}
		}
		return nil
	}

	if len(jobs) == 1 {
		return o.solve(format, jobs[0].Instance)
	}

	factory := func() Solver {
		return o.factory(o.solver, o.args)
	}
	outcomes := batch.NewPool("smtsolve", o.parallel, factory, o.timeout, o.check).Run(o.context(), jobs)
	if err := o.print(format, outcomes); err != nil {
		return err
	}
	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err() != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d problems failed", failed, len(outcomes))
	}
	return nil
}

func (o *Options) solve(format string, instance *problem.Instance) error {
	solver := o.factory(o.solver, o.args)
	log.Debug("using solver {{solver}}", "solver", o.solver, "args", o.args)
	if err := solver.Init(); err != nil {
		return fmt.Errorf("cannot start solver %q: %w", o.solver, err)
	}
	defer solver.Close()

	ctx := ctxutil.TimeoutContext(o.context(), o.timeout)
	defer ctxutil.Cancel(ctx)

	var (
		result *problem.Result
		err    error
	)
	if o.check {
		result, err = instance.Check(ctx, solver)
	} else {
		result, err = instance.Solve(ctx, solver)
	}
	if err != nil {
		return err
	}
	return o.print(format, result)
}

func (o *Options) context() context.Context {
	if ctx := o.cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func (o *Options) read(path string) (*problem.Problem, error) {
	if path != "-" {
		return problem.Read(o.fs, path)
	}
	data, err := io.ReadAll(o.cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("cannot read problem: %w", err)
	}
	return problem.Parse(data)
}

func (o *Options) print(format string, result interface{}) error {
	var (
		data []byte
		err  error
	)
	if format == "json" {
		data, err = json.Marshal(result)
		if err == nil {
			data, err = jcs.Transform(data)
		}
	} else {
		data, err = yaml.Marshal(result)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(o.cmd.OutOrStdout(), "%s\n", strings.TrimSpace(string(data)))
	return err
}
