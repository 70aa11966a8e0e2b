// SPDX-License-Identifier: MIT

// Package lsq computes least-squares (and exact) solutions of dense linear
// systems via QR decomposition built from classical Gram–Schmidt
// orthogonalization and back substitution.
//
// 🚀 What is lsq?
//
//	The solving layer of lvlinear:
//	  • GramSchmidt — orthonormal row basis with linear-dependency detection
//	  • QR          — A ≈ Q·R with orthonormal Q columns, upper-triangular R
//	  • BackSubstitution — triangular solve, last equation first
//	  • Solve       — least-squares x for A·x = b (tall or square A)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlinear/lsq"
//
//	x, err := lsq.Solve(a, b)                       // default tolerance
//	x, err  = lsq.Solve(a, b, lsq.WithEpsilon(1e-8)) // tuned per call
//
// Numeric policy:
//
//   - Dependency detection uses a per-call tolerance (DefaultEpsilon = 1e-10,
//     override via WithEpsilon) instead of a hidden process-wide constant.
//   - The orthogonalizer is CLASSICAL Gram–Schmidt: each projection
//     coefficient is taken against the original input row, not the running
//     partially-orthogonalized vector. This is numerically weaker than
//     modified Gram–Schmidt but is the documented algorithm of this package;
//     see the GramSchmidt contract for the tradeoff.
//   - Back substitution deliberately does NOT guard its diagonal divisors:
//     a zero or near-zero pivot propagates ±Inf/NaN into the result rather
//     than raising an error. Callers uncertain about column independence
//     should check QR's rank signal (Q.Cols() == A.Cols()) before trusting
//     Solve's output.
//
// All operations are pure: inputs are never mutated and every result is a
// freshly owned matrix, so the package is safe to call concurrently.
//
// Control flow: Solve → QR → GramSchmidt → matrix kernels. Each layer
// depends only on the layers below it; no cycles.
package lsq
