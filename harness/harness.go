// Package harness validates and benchmarks the morton strategies.
//
// The Checker compares every strategy against fixed reference tables and
// boundary probes and reports each disagreement as a Mismatch instead of
// stopping. The Runner times every strategy over linear and random sweeps and
// ranks them per operation.
package harness

import "errors"

var (
	// ErrUnknownConfigKeys is returned when a config file carries keys that
	// map to no Config field.
	ErrUnknownConfigKeys = errors.New("harness: unknown config keys")
	// ErrSweepFailed is returned when at least one correctness sweep found mismatches.
	ErrSweepFailed = errors.New("harness: correctness sweep failed")
)
