// Package matcache memoizes the inverse of a square matrix, so repeated
// requests for the inverse of an unchanged matrix never pay the O(n³)
// inversion cost twice.
//
// 🚀 What is matcache?
//
//	A small, single-owner caching layer over dense linear algebra:
//		• CachedMatrix: one matrix value, its last-computed inverse, a dirty flag
//		• Resolver: returns a valid inverse — cached when fresh, recomputed when stale
//		• Dense matrices: bounds-checked, row-major float64 storage
//		• Inversion: Doolittle LU + forward/backward substitution
//
// ✨ Why choose matcache?
//
//   - Cheap coherency – a boolean flag decides validity, never a content compare
//   - Fail-fast – sentinel errors for non-square and singular inputs, matched via errors.Is
//   - Observable – cache hits and misses traced through apex/log
//   - Pure Go – no cgo
//
// Everything is organized under three subpackages:
//
//	cache/      — CachedMatrix holder + Resolver (the coherency core)
//	matrix/     — Matrix interface, Dense implementation, Mul, validators
//	matrix/ops/ — LU decomposition and Inverse (the inversion collaborator)
//
// Quick flow:
//
//	SetMatrix(M) ──▶ Resolve ──▶ invert M, cache, return M⁻¹
//	Resolve      ──▶ cache hit, return M⁻¹ again (no recomputation)
//	SetMatrix(N) ──▶ Resolve ──▶ invert N, cache, return N⁻¹
//
// Dive into cache/doc.go for the state machine and the coherency contract.
//
//	go get github.com/katalvlaran/matcache
package matcache
