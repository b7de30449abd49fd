// SPDX-License-Identifier: MIT

// Package cache: functional configuration for the Resolver.
//   - Option: functional options mutating resolver construction state,
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical values —
//     a nil collaborator is a programmer error, not a runtime condition).

package cache

import (
	"github.com/apex/log"

	"github.com/katalvlaran/matcache/matrix"
	"github.com/katalvlaran/matcache/matrix/ops"
)

// Inverter is the external inversion collaborator: a pure function defined
// for any square, non-singular matrix and failing for singular input.
type Inverter func(matrix.Matrix) (matrix.Matrix, error)

// Defaults (single source of truth).
var (
	// defaultInverter is the LU-based inversion from matrix/ops.
	defaultInverter Inverter = ops.Inverse

	// defaultLogger is the package-level apex logger; at its default level
	// the debug hit/miss events are simply dropped.
	defaultLogger log.Interface = log.Log
)

// Option mutates Resolver construction state.
type Option func(*Resolver)

// WithInverter overrides the inversion collaborator.
// Panics on nil (programmer error).
func WithInverter(fn Inverter) Option {
	if fn == nil {
		panic("cache: WithInverter(nil)")
	}

	return func(r *Resolver) { r.invert = fn }
}

// WithLogger overrides the trace sink for hit/miss events.
// Panics on nil (programmer error); use the default to discard traces.
func WithLogger(l log.Interface) Option {
	if l == nil {
		panic("cache: WithLogger(nil)")
	}

	return func(r *Resolver) { r.logger = l }
}
