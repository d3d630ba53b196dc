// Package services defines shared utilities consumed by the lookup pipeline and
// its external API clients.
//
// Key responsibilities:
//   - Context helpers that stamp the run identifier, input row, and author id
//     for structured logging.
//   - Error markers plus the Wrap helper and StatusError type so clients report
//     failures uniformly and callers can recover the HTTP status with errors.As.
package services
