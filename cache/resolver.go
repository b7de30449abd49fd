// SPDX-License-Identifier: MIT
// Package cache: cache-coherent inverse resolution.

package cache

import (
	"fmt"

	"github.com/apex/log"

	"github.com/katalvlaran/matcache/matrix"
)

// Resolver returns a valid inverse for a CachedMatrix: from cache when fresh,
// otherwise computed via the inversion collaborator and written back.
// The zero-cost validity check is the dirty flag — Resolve never compares
// matrix contents.
type Resolver struct {
	invert Inverter      // inversion collaborator, never nil
	logger log.Interface // hit/miss trace sink, never nil
}

// NewResolver builds a Resolver with ops.Inverse as the collaborator and the
// package-level apex logger as the trace sink, then applies opts in order.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{invert: defaultInverter, logger: defaultLogger}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns an inverse valid for c's current matrix.
// Blueprint:
//
//	Stage 1 (Validate): c must be non-nil.
//	Stage 2 (Hit): inverse present AND not stale → trace "cache hit",
//	               return the stored value unchanged.
//	Stage 3 (Miss): trace "cache miss", invert the current matrix;
//	               collaborator failure propagates with the cache untouched.
//	Stage 4 (Write-back): SetInverse, return the freshly stored value.
//
// Errors: ErrNilCache, ErrSingular (wrapped, match via errors.Is).
// Complexity: O(1) on a hit; collaborator-bound (O(n³) for LU) on a miss.
func (r *Resolver) Resolve(c *CachedMatrix) (matrix.Matrix, error) {
	// Stage 1: Validate the holder
	if c == nil {
		return nil, fmt.Errorf("Resolve: %w", ErrNilCache)
	}

	// Stage 2: Fast path — serve the fresh cached inverse
	if inv := c.Inverse(); inv != nil && !c.Stale() {
		r.logger.WithField("dim", inv.Rows()).Debug("cache hit")

		return inv, nil
	}

	// Stage 3: Miss — invert the current matrix value
	data := c.Matrix()
	r.logger.WithField("dim", data.Rows()).Debug("cache miss")
	inv, err := r.invert(data)
	if err != nil { // propagate, cache state untouched
		return nil, fmt.Errorf("Resolve: %w", err)
	}

	// Stage 4: Write back and return the same instance just stored
	c.SetInverse(inv)

	return inv, nil
}
