package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"orcidscout/internal/config"
	"orcidscout/internal/fileutil"
	"orcidscout/internal/logging"
	"orcidscout/internal/lookup"
	"orcidscout/internal/orcid"
	"orcidscout/internal/scopus"
	"orcidscout/internal/services"
	"orcidscout/internal/tabular"
)

const verificationReminder = "ORCID iDs come from Scopus profiles and can be wrong or stale. " +
	"Verify each iD on orcid.org before importing it into another system."

type lookupOptions struct {
	ror        string
	column     string
	sheet      string
	output     string
	format     string
	json       bool
	noProgress bool
}

func newLookupCommand(ctx *commandContext) *cobra.Command {
	var opts lookupOptions

	cmd := &cobra.Command{
		Use:   "lookup <authors.csv|authors.xlsx>",
		Short: "Resolve ORCID iDs for Scopus author ids and check affiliation",
		Long: "Reads Scopus Author IDs from a CSV or Excel file, looks up each author's ORCID iD in Scopus,\n" +
			"then checks the ORCID employment history for the target organization's ROR ID.\n" +
			"Rows are processed one at a time with a fixed pause between them.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runLookup(cmd, cfg, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ror, "ror", "", "Target organization ROR ID (overrides affiliation.ror_id)")
	flags.StringVar(&opts.column, "column", "", "Header of the author id column (default: first column)")
	flags.StringVar(&opts.sheet, "sheet", "", "Worksheet to read from .xlsx input (default: first sheet)")
	flags.StringVarP(&opts.output, "output", "o", "", "Results file path (overrides output.path)")
	flags.StringVar(&opts.format, "format", "", "Results file format: csv, xlsx, or json")
	flags.BoolVar(&opts.json, "json", false, "Print results as JSON instead of a table")
	flags.BoolVar(&opts.noProgress, "no-progress", false, "Disable progress output")
	return cmd
}

func runLookup(cmd *cobra.Command, cfg *config.Config, inputPath string, opts lookupOptions) error {
	if opts.ror != "" {
		cfg.Affiliation.RORID = strings.TrimSpace(opts.ror)
	}
	if err := cfg.RequireTarget(); err != nil {
		return err
	}

	outputPath := cfg.Output.Path
	if opts.output != "" {
		expanded, err := config.ExpandPath(opts.output)
		if err != nil {
			return fmt.Errorf("resolve output path: %w", err)
		}
		outputPath = expanded
	}
	format := strings.ToLower(strings.TrimSpace(opts.format))
	if format == "" {
		format = tabular.FormatForPath(outputPath, cfg.Output.Format)
	}
	if !slices.Contains(config.OutputFormats, format) {
		return fmt.Errorf("--format must be one of %s, got %q", strings.Join(config.OutputFormats, ", "), format)
	}

	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	runCtx := services.WithRunID(cmd.Context(), uuid.NewString())

	rows, err := tabular.ReadAuthors(inputPath, tabular.ReadOptions{
		Column: firstNonEmpty(opts.column, cfg.Input.Column),
		Sheet:  firstNonEmpty(opts.sheet, cfg.Input.Sheet),
	})
	if err != nil {
		return fmt.Errorf("read %s: %w", inputPath, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("no author ids found in %s", inputPath)
	}

	lock, err := fileutil.AcquireRunLock(outputPath)
	if err != nil {
		if errors.Is(err, fileutil.ErrLocked) {
			return fmt.Errorf("another lookup is writing %s: %w", outputPath, err)
		}
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logging.WarnWithContext(runCtx, logger, "run lock not released", "lock_release_failed",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "remove "+lock.Path()+" manually"),
				logging.String(logging.FieldImpact, "next run may report the output as locked"),
			)
		}
	}()

	runner, err := buildRunner(cfg, logger)
	if err != nil {
		return err
	}

	progress := newProgressReporter(cmd.ErrOrStderr(), len(rows), !opts.noProgress)
	results, err := runner.Run(runCtx, rows, progress.Update)
	progress.Finish()
	if err != nil {
		logging.ErrorWithContext(runCtx, logger, "lookup interrupted", "batch_interrupted",
			logging.Int("completed", len(results)),
			logging.Int("rows", len(rows)),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "rerun the lookup; partial results are not saved"),
		)
		return fmt.Errorf("lookup stopped after %d of %d rows: %w", len(results), len(rows), err)
	}

	err = fileutil.WriteAtomic(outputPath, 0o644, func(w io.Writer) error {
		return tabular.WriteResults(w, format, results)
	})
	if err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	logging.WithContext(runCtx, logger).Info("results written",
		logging.String("path", outputPath),
		logging.String("format", format),
		logging.Int("rows", len(results)),
	)

	if opts.json {
		return writeJSON(cmd, tabular.Records(results))
	}
	printResults(cmd.OutOrStdout(), results, outputPath)
	return nil
}

func buildRunner(cfg *config.Config, logger *slog.Logger) (*lookup.Runner, error) {
	scopusClient, err := scopus.New(cfg.Scopus.APIKey, cfg.Scopus.BaseURL,
		scopus.WithHTTPClient(&http.Client{Timeout: cfg.ScopusTimeout()}))
	if err != nil {
		return nil, fmt.Errorf("scopus client: %w", err)
	}
	orcidClient, err := orcid.New(cfg.ORCID.BaseURL,
		orcid.WithHTTPClient(&http.Client{Timeout: cfg.ORCIDTimeout()}))
	if err != nil {
		return nil, fmt.Errorf("orcid client: %w", err)
	}
	return lookup.NewRunner(
		lookup.NewResolver(scopusClient, cfg.ORCID.IDBaseURL, logger),
		lookup.NewVerifier(orcidClient, cfg.Affiliation.DisambiguationSource, logger),
		cfg.Affiliation.RORID,
		lookup.WithInterval(cfg.RequestInterval()),
		lookup.WithLogger(logger),
	), nil
}

func printResults(out io.Writer, results []lookup.ResultRow, outputPath string) {
	colorize := shouldColorize(out)
	fmt.Fprintln(out, renderResultsTable(results, colorize))
	fmt.Fprintln(out)
	for _, line := range renderSummary(results, colorize) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Results written to %s\n", outputPath)
	fmt.Fprintln(out, verificationReminder)
}
