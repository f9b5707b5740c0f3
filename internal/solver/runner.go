package solver

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Job is a puzzle input to be solved.
type Job struct {
	Key   Key
	Input string
}

// Result is the outcome of a job.
type Result struct {
	Key      Key
	Answers  Answers
	Duration time.Duration
	Err      error
}

// Runner runs registered solvers.
type Runner struct {
	registry  *Registry
	logger    *zap.Logger
	numWorker int
}

// NewRunner returns a runner executing at most numWorker solvers at once.
func NewRunner(registry *Registry, logger *zap.Logger, numWorker int) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{registry: registry, logger: logger, numWorker: max(1, numWorker)}
}

// Run solves a single job.
func (r *Runner) Run(ctx context.Context, job Job) Result {
	res := Result{Key: job.Key}
	fn, err := r.registry.Lookup(job.Key)
	if err != nil {
		res.Err = err
		return res
	}

	logger := r.logger.With(zap.Stringer("solver", job.Key))
	logger.Debug("solving", zap.Int("inputBytes", len(job.Input)))

	start := time.Now()
	res.Answers, err = fn(ctx, job.Input)
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", job.Key, err)
		logger.Debug("solve failed", zap.Duration("duration", res.Duration), zap.Error(err))
		return res
	}
	logger.Debug("solved", zap.Duration("duration", res.Duration), zap.Ints("answers", res.Answers.Values()))
	return res
}

// RunAll solves all jobs concurrently. A failing job does not stop the
// others. Results are ordered by key.
func (r *Runner) RunAll(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))

	var g errgroup.Group
	g.SetLimit(r.numWorker)
	for i, job := range jobs {
		g.Go(func() error {
			results[i] = r.Run(ctx, job)
			return nil
		})
	}
	g.Wait() // jobs report errors in their results

	slices.SortStableFunc(results, func(a, b Result) int { return a.Key.Compare(b.Key) })
	return results
}
