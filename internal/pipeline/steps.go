package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/nao1215/spelldigest/internal/digest"
	"github.com/nao1215/spelldigest/internal/document"
	"github.com/nao1215/spelldigest/internal/model"
	"github.com/nao1215/spelldigest/internal/spellcheck"
	"github.com/nao1215/spelldigest/internal/tokenizer"
)

// FetchDocumentStep retrieves the source document. Any failure here is
// fatal: without a document there is nothing to check.
type FetchDocumentStep struct {
	fetcher document.Fetcher
	logger  *slog.Logger
}

// FetchDocumentStepOption configures a FetchDocumentStep.
type FetchDocumentStepOption func(*FetchDocumentStep)

// WithFetchLogger sets a custom logger for the fetch step.
func WithFetchLogger(logger *slog.Logger) FetchDocumentStepOption {
	return func(s *FetchDocumentStep) {
		s.logger = logger
	}
}

// NewFetchDocumentStep creates a step that fetches run.DocumentURL.
func NewFetchDocumentStep(fetcher document.Fetcher, opts ...FetchDocumentStepOption) *FetchDocumentStep {
	s := &FetchDocumentStep{
		fetcher: fetcher,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *FetchDocumentStep) Name() string {
	return "fetch_document"
}

// Do executes the fetch step.
func (s *FetchDocumentStep) Do(ctx context.Context, run *model.Run) error {
	doc, err := s.fetcher.Fetch(ctx, run.DocumentURL)
	if err != nil {
		return err
	}
	run.Document = doc

	s.logger.Info("document fetched",
		"url", doc.URL,
		"bytes", doc.Size,
		"content_type", doc.ContentType,
	)
	return nil
}

// TokenizeStep splits the document body into candidate words.
type TokenizeStep struct{}

// NewTokenizeStep creates a tokenize step.
func NewTokenizeStep() *TokenizeStep {
	return &TokenizeStep{}
}

// Name returns the step name.
func (s *TokenizeStep) Name() string {
	return "tokenize"
}

// Do executes the tokenize step.
func (s *TokenizeStep) Do(_ context.Context, run *model.Run) error {
	if run.Document == nil {
		return ErrNoDocument
	}
	run.Words = tokenizer.Tokenize(run.Document.Body)
	return nil
}

// BuildTargetsStep turns candidate words into lookup targets.
type BuildTargetsStep struct{}

// NewBuildTargetsStep creates a target-building step.
func NewBuildTargetsStep() *BuildTargetsStep {
	return &BuildTargetsStep{}
}

// Name returns the step name.
func (s *BuildTargetsStep) Name() string {
	return "build_targets"
}

// Do executes the target-building step.
func (s *BuildTargetsStep) Do(_ context.Context, run *model.Run) error {
	run.Targets = spellcheck.BuildTargets(run.SpellCheckBaseURL, run.Words)
	return nil
}

// ProbeStep checks every target against the spell-check service.
// Individual probe failures never fail the step.
type ProbeStep struct {
	prober  spellcheck.Prober
	workers int
	hook    spellcheck.OutcomeHook
	logger  *slog.Logger
}

// ProbeStepOption configures a ProbeStep.
type ProbeStepOption func(*ProbeStep)

// WithProbeWorkers sets the number of concurrent probes.
func WithProbeWorkers(n int) ProbeStepOption {
	return func(s *ProbeStep) {
		s.workers = n
	}
}

// WithProbeHook registers a hook invoked for every completed probe.
func WithProbeHook(hook spellcheck.OutcomeHook) ProbeStepOption {
	return func(s *ProbeStep) {
		s.hook = hook
	}
}

// WithProbeLogger sets a custom logger for the probe step.
func WithProbeLogger(logger *slog.Logger) ProbeStepOption {
	return func(s *ProbeStep) {
		s.logger = logger
	}
}

// NewProbeStep creates a probe step backed by prober.
func NewProbeStep(prober spellcheck.Prober, opts ...ProbeStepOption) *ProbeStep {
	s := &ProbeStep{
		prober:  prober,
		workers: spellcheck.DefaultWorkers,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *ProbeStep) Name() string {
	return "probe"
}

// Do executes the probe step.
func (s *ProbeStep) Do(ctx context.Context, run *model.Run) error {
	executor := spellcheck.NewExecutor(s.prober, run.SpellCheckBaseURL,
		spellcheck.WithWorkers(s.workers),
		spellcheck.WithOutcomeHook(s.hook),
		spellcheck.WithExecutorLogger(s.logger),
	)

	result := executor.Run(ctx, run.Targets)
	run.Outcomes = result.Outcomes
	run.Misspelled = result.Misspelled()
	return nil
}

// DigestStep reduces the misspelled words to the final answer.
type DigestStep struct {
	algorithm string
	sorted    bool
	suffix    string
}

// DigestStepOption configures a DigestStep.
type DigestStepOption func(*DigestStep)

// WithDigestAlgorithm selects the hash algorithm.
func WithDigestAlgorithm(name string) DigestStepOption {
	return func(s *DigestStep) {
		s.algorithm = name
	}
}

// WithDigestSorted sorts the misspelled words before digesting.
func WithDigestSorted(sorted bool) DigestStepOption {
	return func(s *DigestStep) {
		s.sorted = sorted
	}
}

// WithDigestSuffix sets the string appended to the digest.
func WithDigestSuffix(suffix string) DigestStepOption {
	return func(s *DigestStep) {
		s.suffix = suffix
	}
}

// NewDigestStep creates a digest step. The defaults are MD5, completion
// order, and the "@outsideinc.com" suffix.
func NewDigestStep(opts ...DigestStepOption) *DigestStep {
	s := &DigestStep{
		algorithm: digest.MD5,
		suffix:    DefaultSuffix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *DigestStep) Name() string {
	return "digest"
}

// Do executes the digest step.
func (s *DigestStep) Do(_ context.Context, run *model.Run) error {
	words := run.Misspelled
	if s.sorted {
		words = slices.Clone(words)
		slices.Sort(words)
	}

	sum, err := digest.Reduce(words, digest.WithAlgorithm(s.algorithm))
	if err != nil {
		return fmt.Errorf("failed to digest misspelled words: %w", err)
	}

	run.Misspelled = words
	run.Sorted = s.sorted
	run.HashAlgorithm = s.algorithm
	run.Digest = sum
	run.Answer = FormatAnswer(sum, s.suffix)
	return nil
}
