package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/nao1215/spelldigest/internal/config"
	"github.com/nao1215/spelldigest/internal/database"
	seclog "github.com/nao1215/spelldigest/internal/log"
	"github.com/nao1215/spelldigest/internal/model"
	"github.com/nao1215/spelldigest/internal/pipeline"
	"github.com/nao1215/spelldigest/internal/transport"
	"github.com/spf13/cobra"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Spell-check the document and print the digest",
		Long: `Run fetches the document, checks every word against the spell-check
service and prints "<digest>@outsideinc.com".

Spell-check requests run concurrently. Requests that fail or time out are
logged as warnings and their words are left out of the digest; use --strict
to turn them into a non-zero exit status.

Without --sort the misspelled words are digested in the order their
requests complete, so the answer can differ between runs.

Examples:
  # Use the built-in endpoints
  spelldigest run

  # Reproducible answer
  spelldigest run --sort

  # Custom endpoints and concurrency
  spelldigest run --document-url http://localhost:8080/doc \
    --spelling-url http://localhost:8080/spelling/ -w 10

  # Markdown report saved to a file and to the history database
  spelldigest run -m -o report.md --save

Configuration file (.spelldigest) example:
  documentUrl: "https://outside-interview.herokuapp.com/document"
  workers: 8
  timeout: "10s"
  sort: true`,
		Args: cobra.NoArgs,
		RunE: runRunCmd,
	}

	// Endpoint flags
	cmd.Flags().String("document-url", config.DefaultDocumentURL,
		"URL of the document to spell-check")
	cmd.Flags().String("spelling-url", config.DefaultSpellCheckBaseURL,
		"Spell-check base URL; each word is appended verbatim")

	// Probe behavior flags
	cmd.Flags().IntP("workers", "w", config.DefaultWorkers,
		"Number of concurrent spell-check requests")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each HTTP request")
	cmd.Flags().StringP("proxy", "x", "",
		"SOCKS5 proxy address (e.g., 127.0.0.1:1080)")

	// Digest flags
	cmd.Flags().Bool("sort", false,
		"Sort misspelled words before digesting for a reproducible answer")
	cmd.Flags().Bool("strict", false,
		"Exit with an error if any spell-check request failed")
	cmd.Flags().String("hash", config.DefaultHashAlgorithm,
		"Digest algorithm (md5 or blake2b)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .spelldigest in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("log-json", false,
		"Write logs to stderr as JSON")

	// History flags
	cmd.Flags().Bool("save", false,
		"Save the result to the run history database")
	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory of the run history database")

	return cmd
}

// runRunCmd executes the run command.
func runRunCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose, cfg.JSONLog)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Warn("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runSpellDigest(ctx, cfg, logger, cmd.OutOrStdout())
}

// commandContext returns the command's context, or Background when the
// command was not started through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the configuration file and
// the command flags. Only flags the user actually set override the file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// A missing file is only an error when the path was given explicitly.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := file.Apply(cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if flags.Changed("document-url") {
		if cfg.DocumentURL, err = flags.GetString("document-url"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("spelling-url") {
		if cfg.SpellCheckBaseURL, err = flags.GetString("spelling-url"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("workers") {
		if cfg.Workers, err = flags.GetInt("workers"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("proxy") {
		if cfg.ProxyAddress, err = flags.GetString("proxy"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("sort") {
		if cfg.SortBeforeDigest, err = flags.GetBool("sort"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("strict") {
		if cfg.Strict, err = flags.GetBool("strict"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("hash") {
		if cfg.HashAlgorithm, err = flags.GetString("hash"); err != nil {
			return nil, err
		}
	}

	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}
	if cfg.JSONLog, err = flags.GetBool("log-json"); err != nil {
		return nil, err
	}
	if cfg.SaveToDB, err = flags.GetBool("save"); err != nil {
		return nil, err
	}
	if cfg.DBDir, err = flags.GetString("db-dir"); err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// setupLogger creates a redacting structured logger on w.
func setupLogger(w io.Writer, verbose, jsonLog bool) *slog.Logger {
	if jsonLog {
		return seclog.NewSecureJSONLogger(w, verbose)
	}
	return seclog.NewSecureLogger(w, verbose)
}

// runSpellDigest executes one run and writes the report to stdout or the
// configured file.
func runSpellDigest(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout io.Writer) error {
	logger.Info("processing",
		"document", cfg.DocumentURL,
		"spellCheck", cfg.SpellCheckBaseURL,
		"workers", cfg.Workers,
		"timeout", cfg.Timeout,
		"sort", cfg.SortBeforeDigest,
	)

	client, err := transport.NewClient(
		transport.WithTimeout(cfg.Timeout),
		transport.WithProxy(cfg.ProxyAddress),
		transport.WithHeaders(cfg.Headers),
		transport.WithUserAgent(cfg.UserAgent),
		transport.WithMaxConnsPerHost(cfg.Workers),
	)
	if err != nil {
		return fmt.Errorf("failed to create HTTP client: %w", err)
	}

	var done atomic.Int64
	progress := func(outcome model.Outcome) {
		logger.Debug("probe finished",
			"done", done.Add(1),
			"word", outcome.Target.Word,
			"outcome", outcome.Kind.String(),
		)
	}

	p := pipeline.DefaultPipeline(client.HTTPClient(),
		[]pipeline.Option{pipeline.WithLogger(logger)},
		pipeline.WithPipelineWorkers(cfg.Workers),
		pipeline.WithPipelineTimeout(cfg.Timeout),
		pipeline.WithPipelineMaxBodySize(cfg.MaxBodySize),
		pipeline.WithPipelineSorted(cfg.SortBeforeDigest),
		pipeline.WithPipelineHashAlgorithm(cfg.HashAlgorithm),
		pipeline.WithPipelineSuffix(cfg.Suffix),
		pipeline.WithPipelineHook(progress),
	)

	run := model.NewRun(cfg.DocumentURL, cfg.SpellCheckBaseURL)
	if err := p.Execute(ctx, run); err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("run interrupted: %w", err)
		}
		return fmt.Errorf("run failed: %w", err)
	}

	summary := model.NewSummary(run)
	if summary.HasFailures() {
		logger.Warn("some spell-check requests failed; their words are not in the digest",
			"failed", summary.FailedCount,
			"total", summary.ProbeCount(),
		)
	}

	if err := outputReport(cfg, run, stdout); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if cfg.SaveToDB {
		if err := saveRun(ctx, cfg.DBDir, summary, logger); err != nil {
			logger.Error("failed to save run", "error", err)
		}
	}

	if cfg.Strict {
		return pipeline.CheckFailures(run)
	}
	return nil
}

// outputReport writes the run in the requested format.
func outputReport(cfg *config.Config, run *model.Run, stdout io.Writer) (err error) {
	w, closeOutput, err := openOutput(cfg.ReportFile, stdout)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeOutput())
	}()

	_, err = newReportWriter(w, cfg.JSONReport, cfg.MarkdownReport).Write(run)
	return err
}

// saveRun stores summary in the history database under dbDir.
func saveRun(ctx context.Context, dbDir string, summary *model.Summary, logger *slog.Logger) error {
	db, err := database.Open(dbDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	id, err := db.SaveRun(ctx, summary)
	if err != nil {
		return err
	}

	logger.Info("run saved to database", "id", id, "path", db.Path())
	return nil
}
