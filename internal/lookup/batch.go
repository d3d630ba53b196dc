package lookup

import (
	"context"
	"log/slog"
	"time"

	"orcidscout/internal/logging"
	"orcidscout/internal/services"
)

// ProgressFunc is called after each row with its 1-based index.
type ProgressFunc func(index, total int)

// Runner processes input rows sequentially.
type Runner struct {
	resolver *Resolver
	verifier *Verifier
	target   string
	interval time.Duration
	logger   *slog.Logger
	sleep    func(context.Context, time.Duration) error
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithInterval overrides DefaultInterval. Zero disables pacing.
func WithInterval(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d >= 0 {
			r.interval = d
		}
	}
}

// WithSleeper replaces the pause implementation, mainly for tests.
func WithSleeper(fn func(context.Context, time.Duration) error) RunnerOption {
	return func(r *Runner) {
		if fn != nil {
			r.sleep = fn
		}
	}
}

// WithLogger sets the runner's logger.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logging.NewComponentLogger(logger, "lookup")
	}
}

// NewRunner builds a Runner that checks affiliations against targetOrgID.
func NewRunner(resolver *Resolver, verifier *Verifier, targetOrgID string, opts ...RunnerOption) *Runner {
	runner := &Runner{
		resolver: resolver,
		verifier: verifier,
		target:   targetOrgID,
		interval: DefaultInterval,
		logger:   logging.NewComponentLogger(nil, "lookup"),
		sleep:    SleepWithContext,
	}
	for _, opt := range opts {
		opt(runner)
	}
	return runner
}

// Run resolves and verifies every row, returning exactly one ResultRow per
// input row in input order. If ctx is cancelled, Run stops and returns the
// rows completed so far together with the context error.
func (r *Runner) Run(ctx context.Context, rows []InputRow, onProgress ProgressFunc) ([]ResultRow, error) {
	total := len(rows)
	results := make([]ResultRow, 0, total)
	start := time.Now()

	logging.WithContext(ctx, r.logger).Info("batch started",
		logging.Int("rows", total),
		logging.Duration("interval", r.interval),
	)

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		rowCtx := services.WithAuthorID(services.WithRow(ctx, i+1), row.AuthorID)

		result := r.processRow(rowCtx, row)
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, result)

		logging.WithContext(rowCtx, r.logger).Debug("row processed",
			logging.String("orcid", result.ORCIDCell()),
			logging.String("affiliated", result.Affiliation.String()),
		)
		if onProgress != nil {
			onProgress(i+1, total)
		}

		if i < total-1 {
			if err := r.sleep(ctx, r.interval); err != nil {
				return results, err
			}
		}
	}

	logging.WithContext(ctx, r.logger).Info("batch completed",
		logging.Int("rows", len(results)),
		logging.Duration("elapsed", time.Since(start).Round(time.Millisecond)),
	)
	return results, nil
}

func (r *Runner) processRow(ctx context.Context, row InputRow) ResultRow {
	identity := r.resolver.Resolve(ctx, row.AuthorID)
	result := ResultRow{
		AuthorID:    row.AuthorID,
		Name:        identity.DisplayName,
		RegistryID:  identity.RegistryID,
		Diagnostic:  identity.Diagnostic,
		Affiliation: StatusNotChecked,
	}
	if identity.RegistryID != "" {
		result.Affiliation = r.verifier.Verify(ctx, identity.RegistryID, r.target)
	}
	return result
}
