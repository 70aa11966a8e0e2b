// Package lvlinear is a compact dense linear-algebra core: shape-safe
// matrices, elementwise and product arithmetic, and a QR-based
// least-squares solver built from classical Gram–Schmidt.
//
// 🚀 What is lvlinear?
//
//	A small, deterministic library that brings together:
//		• Dense matrices: row-major float64 storage, strict shape validation
//		• Elementwise & product ops: Add, Sub, Scale, Mul, Transpose
//		• Vector kernels: Frobenius Norm, Dot product
//		• Extraction & accumulation: Row, Column, AppendRow, RowBuilder
//		• Orthogonalization: classical Gram–Schmidt with dependency detection
//		• Decomposition & solving: QR, back substitution, least-squares Solve
//
// ✨ Why choose lvlinear?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, value semantics, no aliasing
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed loop orders, reproducible results
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/ — Dense storage, construction, arithmetic kernels & converters
//	lsq/    — Gram–Schmidt, QR decomposition and least-squares solving
//
// Every operation returns a freshly owned value and never mutates its
// inputs, so the whole library is safe to call from concurrent call sites
// without locking.
//
//	go get github.com/katalvlaran/lvlinear
package lvlinear
