// Package lookup implements the ORCID Scout batch pipeline.
//
// A Resolver turns a Scopus author id into a display name and, when Scopus
// knows one, the canonical ORCID iD. A Verifier fetches the ORCID record and
// reports whether any employment references the target organization. Runner
// drives both over an ordered list of rows, one row at a time, pausing a fixed
// interval between rows.
//
// Failures never drop a row. Upstream errors degrade the affected fields to
// sentinel values ("Error 429", StatusError, ...) and the batch moves on; only
// context cancellation stops a run early.
package lookup
