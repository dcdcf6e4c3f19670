package pipeline

import (
	"net/http"
	"time"

	"github.com/nao1215/spelldigest/internal/digest"
	"github.com/nao1215/spelldigest/internal/document"
	"github.com/nao1215/spelldigest/internal/spellcheck"
)

// DefaultPipelineConfig holds configuration for the default pipeline.
type DefaultPipelineConfig struct {
	// Workers is the number of concurrent spell-check probes.
	Workers int

	// Timeout bounds every spell-check probe.
	Timeout time.Duration

	// MaxBodySize caps the document body.
	MaxBodySize int64

	// Sorted sorts the misspelled words before digesting.
	Sorted bool

	// HashAlgorithm selects the digest algorithm.
	HashAlgorithm string

	// Suffix is appended to the digest.
	Suffix string

	// Hook observes every probe outcome.
	Hook spellcheck.OutcomeHook
}

// DefaultPipelineOption configures a DefaultPipelineConfig.
type DefaultPipelineOption func(*DefaultPipelineConfig)

// WithPipelineWorkers sets the probe concurrency.
func WithPipelineWorkers(n int) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Workers = n
	}
}

// WithPipelineTimeout sets the per-probe timeout.
func WithPipelineTimeout(d time.Duration) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Timeout = d
	}
}

// WithPipelineMaxBodySize sets the document size cap.
func WithPipelineMaxBodySize(size int64) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.MaxBodySize = size
	}
}

// WithPipelineSorted enables sorting before digesting.
func WithPipelineSorted(sorted bool) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Sorted = sorted
	}
}

// WithPipelineHashAlgorithm selects the digest algorithm.
func WithPipelineHashAlgorithm(name string) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.HashAlgorithm = name
	}
}

// WithPipelineSuffix sets the answer suffix.
func WithPipelineSuffix(suffix string) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Suffix = suffix
	}
}

// WithPipelineHook registers a per-outcome hook.
func WithPipelineHook(hook spellcheck.OutcomeHook) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Hook = hook
	}
}

// DefaultPipeline creates a pipeline with all steps configured:
// fetch_document, tokenize, build_targets, probe, digest.
// The same client serves the document fetch and the probes.
func DefaultPipeline(client *http.Client, pipelineOpts []Option, configOpts ...DefaultPipelineOption) *Pipeline {
	p := New(pipelineOpts...)

	cfg := &DefaultPipelineConfig{
		Workers:       spellcheck.DefaultWorkers,
		Timeout:       60 * time.Second,
		MaxBodySize:   document.DefaultMaxBodySize,
		HashAlgorithm: digest.MD5,
		Suffix:        DefaultSuffix,
	}
	for _, opt := range configOpts {
		opt(cfg)
	}

	p.AddSteps(
		NewFetchDocumentStep(
			document.NewHTTPFetcher(client,
				document.WithMaxBodySize(cfg.MaxBodySize),
				document.WithLogger(p.logger),
			),
			WithFetchLogger(p.logger),
		),
		NewTokenizeStep(),
		NewBuildTargetsStep(),
		NewProbeStep(
			spellcheck.NewHTTPProber(client, cfg.Timeout),
			WithProbeWorkers(cfg.Workers),
			WithProbeHook(cfg.Hook),
			WithProbeLogger(p.logger),
		),
		NewDigestStep(
			WithDigestAlgorithm(cfg.HashAlgorithm),
			WithDigestSorted(cfg.Sorted),
			WithDigestSuffix(cfg.Suffix),
		),
	)

	return p
}
