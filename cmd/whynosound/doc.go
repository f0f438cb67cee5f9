// Package main hosts the whynosound CLI entrypoint and command graph.
//
// The root invocation runs the full diagnostic: it wires configuration,
// logging, the tool runner, and the probes together, aggregates the findings,
// and renders the report as glyph-per-check text or JSON. Subcommands list
// the known checks and scaffold configuration. The decision logic lives in
// internal/diagnose; keep this package declarative.
package main
