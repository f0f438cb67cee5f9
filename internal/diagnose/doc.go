// Package diagnose holds the core diagnostic model: check identities,
// findings, the probe orchestrator, and the aggregation logic that turns a
// set of findings into a report with a verdict, a probable root cause, and an
// ordered remediation plan.
//
// Key types:
//   - CheckID: stable identity of one diagnostic dimension, totally ordered
//     by causal priority (upstream causes rank before downstream symptoms)
//   - Finding: structured outcome of one probe, including the explicit
//     "unknown" severity for facts a probe could not determine
//   - Report: immutable aggregation result consumed by the renderers
//
// Probes live in internal/probes; this package only defines the Probe
// interface they implement. Aggregate is a pure function so it can be tested
// with synthetic finding sets.
package diagnose
