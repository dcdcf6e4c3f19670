package spellcheck

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nao1215/spelldigest/internal/model"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the pool width used when none is configured.
const DefaultWorkers = 5

// OutcomeHook is called once per completed probe, from the goroutine that
// ran it. Implementations must be safe for concurrent use.
type OutcomeHook func(outcome model.Outcome)

// Executor probes lookup targets through a fixed-width worker pool.
type Executor struct {
	// prober performs the individual lookups.
	prober Prober

	// baseURL is stripped from target URLs to recover misspelled words.
	baseURL string

	// workers is the maximum number of concurrent probes.
	workers int

	// hook, if set, observes every outcome as it completes.
	hook OutcomeHook

	logger *slog.Logger
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithWorkers sets the pool width. Non-positive values keep the default.
func WithWorkers(n int) ExecutorOption {
	return func(e *Executor) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithOutcomeHook registers a hook that observes every outcome.
func WithOutcomeHook(hook OutcomeHook) ExecutorOption {
	return func(e *Executor) {
		e.hook = hook
	}
}

// WithExecutorLogger sets a custom logger.
func WithExecutorLogger(logger *slog.Logger) ExecutorOption {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewExecutor creates an Executor that probes with prober and recovers
// misspelled words by stripping baseURL.
func NewExecutor(prober Prober, baseURL string, opts ...ExecutorOption) *Executor {
	e := &Executor{
		prober:  prober,
		baseURL: baseURL,
		workers: DefaultWorkers,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Workers returns the pool width.
func (e *Executor) Workers() int {
	return e.workers
}

// Run probes every target and returns once each one has a terminal outcome.
//
// All targets are submitted up front; at most Workers probes are in flight.
// A failed probe never stops the others. If ctx is cancelled, probes that
// have not started yet are recorded as Failed with ctx.Err().
func (e *Executor) Run(ctx context.Context, targets []model.Target) *Result {
	e.logger.Info("probing words",
		"targets", len(targets),
		"workers", e.workers,
	)

	startTime := time.Now()
	result := &Result{
		Outcomes: make([]model.Outcome, 0, len(targets)),
	}

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(e.workers)

	for _, target := range targets {
		g.Go(func() error {
			outcome := e.probe(ctx, target)

			mu.Lock()
			result.Outcomes = append(result.Outcomes, outcome)
			mu.Unlock()

			e.observe(outcome)

			// Failures are recorded in the outcome; the group never aborts.
			return nil
		})
	}

	_ = g.Wait() //nolint:errcheck // goroutines always return nil

	result.Elapsed = time.Since(startTime)
	known, unknown, failed := result.Counts()
	e.logger.Info("probing complete",
		"targets", len(targets),
		"known", known,
		"unknown", unknown,
		"failed", failed,
		"elapsed", result.Elapsed,
	)

	return result
}

// probe runs and classifies a single lookup.
func (e *Executor) probe(ctx context.Context, target model.Target) model.Outcome {
	if err := ctx.Err(); err != nil {
		return Classify(target, e.baseURL, 0, err)
	}

	start := time.Now()
	status, err := e.prober.Probe(ctx, target)
	outcome := Classify(target, e.baseURL, status, err)
	outcome.Elapsed = time.Since(start)
	return outcome
}

// observe logs an outcome and forwards it to the hook.
func (e *Executor) observe(outcome model.Outcome) {
	if outcome.IsFailed() {
		e.logger.Warn("probe failed; word excluded from digest",
			"word", outcome.Target.Word,
			"url", outcome.Target.URL,
			"status", outcome.StatusCode,
			"reason", outcome.ReasonText(),
		)
	} else {
		e.logger.Debug("probe completed",
			"word", outcome.Target.Word,
			"outcome", outcome.Kind.String(),
			"elapsed", outcome.Elapsed,
		)
	}

	if e.hook != nil {
		e.hook(outcome)
	}
}
