package batch

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mandelsoft/logging"
	"k8s.io/client-go/util/workqueue"

	"github.com/mandelsoft/smt/pkg/ctxutil"
	"github.com/mandelsoft/smt/pkg/problem"
)

// worker solves the jobs provided by the queue one after the other.
type worker struct {
	logging.UnboundLogger
	pool  *Pool
	queue workqueue.Interface
}

func newWorker(p *Pool, queue workqueue.Interface, number int) *worker {
	return &worker{
		UnboundLogger: logging.DynamicLogger(logging.DefaultContext(), REALM,
			logging.NewAttribute("pool", p.name),
			logging.NewAttribute("worker", strconv.Itoa(number)),
		),
		pool:  p,
		queue: queue,
	}
}

func (w *worker) Run(ctx context.Context, jobs []Job, outcomes []*Outcome) {
	w.Debug("starting worker")
	for {
		obj, shutdown := w.queue.Get()
		if shutdown {
			break
		}
		i := obj.(int)
		outcomes[i] = w.process(ctx, jobs[i])
		w.queue.Done(obj)
	}
	w.Debug("exit worker")
}

func (w *worker) process(ctx context.Context, job Job) *Outcome {
	result, err := w.solve(ctx, job)
	if err != nil {
		w.Info("solving {{problem}} failed: {{error}}", "problem", job.Name, "error", err.Error())
		return &Outcome{Problem: job.Name, Error: err.Error(), err: err}
	}
	w.Debug("solved {{problem}}: {{status}}", "problem", job.Name, "status", result.Status)
	return &Outcome{Problem: job.Name, Result: result}
}

func (w *worker) solve(ctx context.Context, job Job) (*problem.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	solver := w.pool.factory()
	if err := solver.Init(); err != nil {
		return nil, fmt.Errorf("cannot start solver: %w", err)
	}
	defer solver.Close()

	ctx = ctxutil.TimeoutContext(ctx, w.pool.timeout)
	defer ctxutil.Cancel(ctx)
	if w.pool.check {
		return job.Instance.Check(ctx, solver)
	}
	return job.Instance.Solve(ctx, solver)
}
