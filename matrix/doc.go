// Package matrix offers a small dense linear-algebra kernel for the
// input-output models in this module.
//
// The matrix package provides:
//
//   - Dense, a row-major Matrix with bounds-checked At/Set and a finite-only
//     numeric policy.
//   - Element-wise and product kernels (Add, Sub, Mul, MatVec, Transpose).
//   - Partial-pivoting LU factorization with a relative pivot guard, direct
//     linear solves (Solve) and inversion (Inverse).
//
// Systems here are tiny (tens of sectors), so every kernel favors
// determinism over blocking tricks: fixed loop orders, no goroutines, and
// bit-identical results for identical inputs.
//
//	A, _ := matrix.NewDenseFrom([][]float64{{4, 1}, {2, 3}})
//	x, err := matrix.Solve(A, []float64{1, 2})
//	if errors.Is(err, matrix.ErrSingular) {
//		// I − A had no unique solution
//	}
package matrix
