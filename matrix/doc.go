// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra primitives of lvlinear.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with strict shape validation and
//     value semantics (every operation returns a fresh result; inputs are
//     never mutated).
//   - Elementwise and product kernels: Add, Sub, Scale, Mul, Transpose,
//     plus the vector kernels Norm (Frobenius) and Dot.
//   - Extraction and accumulation: Row, Column, AppendRow, and the strict
//     RowBuilder for growing a matrix one row at a time.
//   - Converters: FromRows/ToRows for nested-slice ingestion and export,
//     Apply for elementwise transforms.
//
// All user-triggered failures surface as package-level sentinel errors
// (matched via errors.Is); kernels never panic on bad shapes. Kernels keep
// a *Dense fast-path over the flat backing slice and a generic At/Set
// fallback for foreign Matrix implementations.
//
// See the examples in this package and lsq for usage patterns.
package matrix
