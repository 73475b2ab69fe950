// Package solver computes how many presses the operator needs to type door codes
// through a chain of directional keypad robots.
package solver

import (
	"log/slog"
	"sync"

	"github.com/go-ricrob/keypadsolver/internal/logging"
	"github.com/go-ricrob/keypadsolver/internal/solver"
)

// Errors returned by the solver.
var (
	ErrMalformedCode = solver.ErrMalformedCode
	ErrDepth         = solver.ErrDepth
	ErrOverflow      = solver.ErrOverflow
)

// Aggregate returns the sum of the complexities of codes typed through depth directional keypad robots.
func Aggregate(codes []string, depth int) (int, error) {
	return solver.New().Sum(codes, depth)
}

// Result is the outcome of one depth.
type Result struct {
	Depth    int
	Sum      int
	MemoSize int // number of memoized transitions
}

// Runner evaluates codes for several depths.
type Runner interface {
	Run() ([]Result, error)
}

var _ Runner = (*runner)(nil)

// Option configures a Runner.
type Option func(*runner)

// WithLogger sets the logger of the runner.
func WithLogger(log *slog.Logger) Option {
	return func(r *runner) {
		if log != nil {
			r.log = log
		}
	}
}

type runner struct {
	codes  []string
	depths []int
	log    *slog.Logger
}

// New returns a runner evaluating codes for every depth in depths.
func New(codes []string, depths []int, opts ...Option) Runner {
	r := &runner{codes: codes, depths: depths, log: logging.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates every depth in its own goroutine. Results are ordered like the depths;
// the first error encountered in depth order is returned.
func (r *runner) Run() ([]Result, error) {
	results := make([]Result, len(r.depths))
	errs := make([]error, len(r.depths))

	wg := new(sync.WaitGroup)
	wg.Add(len(r.depths))
	for i, depth := range r.depths {
		go func(i, depth int) {
			defer wg.Done()

			a := solver.New(solver.WithLogger(r.log))
			sum, err := a.Sum(r.codes, depth)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = Result{Depth: depth, Sum: sum, MemoSize: a.MemoStats().Size}
			r.log.Info("solved", "depth", depth, "codes", len(r.codes), "sum", sum)
		}(i, depth)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
