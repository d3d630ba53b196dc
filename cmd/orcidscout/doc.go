// Package main hosts the orcidscout CLI entrypoint and command graph.
//
// The Cobra command tree loads configuration once, reads the author id table,
// runs the lookup batch, and renders results to the terminal and the output
// file. Business logic lives in internal/lookup; this package only wires
// clients, progress, and presentation together.
package main
