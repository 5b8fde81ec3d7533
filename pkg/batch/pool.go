// Package batch solves sets of problems concurrently. Every problem is
// solved by a dedicated solver connection, the pool size limits the
// number of concurrently running solvers.
package batch

import (
	"context"
	"sync"
	"time"

	"github.com/mandelsoft/logging"
	"k8s.io/client-go/util/workqueue"

	"github.com/mandelsoft/smt/pkg/problem"
	"github.com/mandelsoft/smt/pkg/smt"
)

// Solver is a solver connection used for a single problem.
type Solver interface {
	smt.Proc
	Close() error
}

type Factory func() Solver

// Job is a named problem instance.
type Job struct {
	Name     string
	Instance *problem.Instance
}

// Outcome is the result for a job. Either Result or Error is set.
type Outcome struct {
	Problem string `json:"problem"`
	*problem.Result
	Error string `json:"error,omitempty"`

	err error
}

func (o *Outcome) Err() error {
	return o.err
}

type Pool struct {
	logging.UnboundLogger
	name    string
	size    int
	factory Factory
	timeout time.Duration
	check   bool
}

// NewPool creates a pool running at most size solvers at a time.
// The timeout limits the answer time of the solver per problem. If check
// is set, only the satisfiability is determined.
func NewPool(name string, size int, factory Factory, timeout time.Duration, check bool) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{
		UnboundLogger: logging.DynamicLogger(logging.DefaultContext(), REALM, logging.NewAttribute("pool", name)),
		name:          name,
		size:          size,
		factory:       factory,
		timeout:       timeout,
		check:         check,
	}
}

func (p *Pool) GetName() string {
	return p.name
}

func (p *Pool) Size() int {
	return p.size
}

// Run solves all jobs and returns the outcomes in job order.
// Jobs not yet started when the context is done fail with the context
// error.
func (p *Pool) Run(ctx context.Context, jobs []Job) []*Outcome {
	queue := workqueue.NewNamed(p.name)
	for i := range jobs {
		queue.Add(i)
	}
	queue.ShutDown()

	outcomes := make([]*Outcome, len(jobs))
	size := min(p.size, len(jobs))
	p.Debug("solving {{jobs}} problems with {{workers}} workers", "jobs", len(jobs), "workers", size)

	var wg sync.WaitGroup
	for n := 0; n < size; n++ {
		wg.Add(1)
		w := newWorker(p, queue, n)
		go func() {
			defer wg.Done()
			w.Run(ctx, jobs, outcomes)
		}()
	}
	wg.Wait()
	return outcomes
}
