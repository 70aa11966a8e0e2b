// SPDX-License-Identifier: MIT
// Package lsq_test: runnable examples for the solve pipeline.

package lsq_test

import (
	"fmt"

	"github.com/katalvlaran/lvlinear/lsq"
	"github.com/katalvlaran/lvlinear/matrix"
)

// ExampleSolve solves a diagonal 2×2 system exactly.
func ExampleSolve() {
	a, err := matrix.FromRows([][]float64{
		{2, 0},
		{0, 4},
	})
	if err != nil {
		fmt.Println("FromRows failed:", err)
		return
	}
	b, err := matrix.NewColumnVector(2, 2, 4)
	if err != nil {
		fmt.Println("NewColumnVector failed:", err)
		return
	}

	x, err := lsq.Solve(a, b)
	if err != nil {
		fmt.Println("Solve failed:", err)
		return
	}

	x0, _ := x.At(0, 0)
	x1, _ := x.At(1, 0)
	fmt.Printf("%g %g\n", x0, x1)

	// Output:
	// 1 1
}

// ExampleGramSchmidt orthonormalizes two rows of R² and reports the rank.
func ExampleGramSchmidt() {
	m, err := matrix.FromRows([][]float64{
		{3, 0},
		{1, 1},
	})
	if err != nil {
		fmt.Println("FromRows failed:", err)
		return
	}

	q, err := lsq.GramSchmidt(m)
	if err != nil {
		fmt.Println("GramSchmidt failed:", err)
		return
	}

	fmt.Println("accepted rows:", q.Rows())
	fmt.Print(q)

	// Output:
	// accepted rows: 2
	// [1, 0]
	// [0, 1]
}
