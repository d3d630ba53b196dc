// Package logging assembles structured slog loggers and formatting helpers used
// across orcidscout.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so lookup code can tag log lines
// with the run identifier, the input row, and the author being resolved. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
package logging
