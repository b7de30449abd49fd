// SPDX-License-Identifier: MIT
// Package cache: sentinel error surface.
// The cache layer owns only ErrNilCache; shape and singularity failures are
// the substrate's sentinels, re-exported here so callers can match them
// without importing matrix or ops directly. errors.Is works at any level.

package cache

import (
	"errors"

	"github.com/katalvlaran/matcache/matrix"
	"github.com/katalvlaran/matcache/matrix/ops"
)

// ErrNilCache indicates that a nil *CachedMatrix was passed to the Resolver.
var ErrNilCache = errors.New("cache: nil cached matrix")

// ErrNonSquare is returned by SetMatrix/NewWith when the candidate matrix has
// rows != cols. Alias of matrix.ErrNonSquare; errors.Is matches either name.
var ErrNonSquare = matrix.ErrNonSquare

// ErrSingular is propagated out of Resolve when the inversion collaborator
// cannot invert the current matrix. Alias of ops.ErrSingular.
var ErrSingular = ops.ErrSingular
