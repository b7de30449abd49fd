// Package cache memoizes the inverse of a square matrix.
//
// The package provides two pieces:
//
//   - CachedMatrix: a stateful holder of one matrix value, its last-computed
//     inverse (if any), and a dirty flag. Replacing the matrix immediately
//     clears the stored inverse and marks the holder stale — it is never
//     possible to read an old inverse as valid after a replacement, even
//     transiently.
//   - Resolver: given a CachedMatrix, returns a valid inverse. Fresh cached
//     values are returned unchanged (the fast path the whole package exists
//     for); stale or absent values trigger one inversion and a write-back.
//
// Validity is a single boolean flag, never a content comparison: SetMatrix
// flips it, SetInverse clears it. A content hash would reintroduce the O(n²)
// scan the flag avoids.
//
// State machine of a CachedMatrix:
//
//	EMPTY  (no inverse ever computed, dirty)
//	FRESH  (inverse present, not dirty)
//	STALE  (inverse present but superseded, dirty)
//
//	EMPTY/FRESH/STALE ──SetMatrix──▶ EMPTY
//	EMPTY/FRESH/STALE ──SetInverse─▶ FRESH
//
// Concurrency: none. One logical owner mutates the matrix and reads the
// inverse sequentially; callers sharing a CachedMatrix across goroutines must
// supply external mutual exclusion around the read-check-compute-write
// sequence in Resolve. A raced miss only recomputes (both results are equal),
// it never corrupts — but SetMatrix concurrent with Resolve is undefined.
//
// Cache hits and misses are traced at debug level through apex/log; the sink
// is optional and never affects correctness.
package cache
