package services

import "context"

type contextKey string

const (
	runIDKey    contextKey = "run_id"
	rowKey      contextKey = "row"
	authorIDKey contextKey = "author_id"
)

// WithRunID annotates context with the batch run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the batch run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithRow annotates context with the 1-based input row number.
func WithRow(ctx context.Context, row int) context.Context {
	if row <= 0 {
		return ctx
	}
	return context.WithValue(ctx, rowKey, row)
}

// RowFromContext returns the input row number if present.
func RowFromContext(ctx context.Context) (int, bool) {
	if v, ok := ctx.Value(rowKey).(int); ok && v > 0 {
		return v, true
	}
	return 0, false
}

// WithAuthorID annotates context with the author identifier being resolved.
func WithAuthorID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, authorIDKey, id)
}

// AuthorIDFromContext returns the author identifier if present. Blank
// identifiers are reported as present so log lines show the empty cell.
func AuthorIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(authorIDKey).(string)
	return v, ok
}
