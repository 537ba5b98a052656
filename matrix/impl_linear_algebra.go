// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition/subtraction, matrix and matrix-vector products,
// transpose, partial-pivoting LU factorization, direct linear solves and
// inversion. All functions perform strict fail-fast validation and return
// sentinel errors wrapped with the operation tag.
//
// Notes:
//   - Every kernel has a *Dense fast-path (flat slice loops) and an At/Set fallback.
//   - Loop orders are fixed, so identical inputs give bit-identical outputs.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of accumulators in dot products and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opLU        = "LU"
	opSolve     = "Solve"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// flatten returns a row-major copy of m's elements.
// *Dense is copied with a single copy(); other implementations go through At.
func flatten(m Matrix, tag string) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		out := make([]float64, len(d.data))
		copy(out, d.data)

		return out, nil
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out[i*cols+j] = v
		}
	}

	return out, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes; operands are not mutated.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast-path: both *Dense → single flat loop.
	if da, ok := a.(*Dense); ok {
		if db, ok2 := b.(*Dense); ok2 {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: fixed i→j order through At/Set.
	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Add returns a + b (element-wise). Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a − b (element-wise). Errors: ErrNilMatrix, ErrDimensionMismatch.
// The Leontief technology matrix I − A is built with this kernel.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product a × b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Determinism:
//   - Fixed i→k→j order (cache friendly on row-major storage).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Both operands flattened once; the generic path then shares the fast loop.
	ad, err := flatten(a, opMul)
	if err != nil {
		return nil, err
	}
	bd, err := flatten(b, opMul)
	if err != nil {
		return nil, err
	}

	var (
		i, k, j int
		aik     float64
	)
	for i = 0; i < rows; i++ {
		for k = 0; k < inner; k++ {
			aik = ad[i*inner+k]
			if aik == 0 {
				continue // skip structural zeros
			}
			for j = 0; j < cols; j++ {
				res.data[i*cols+j] += aik * bd[k*cols+j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new *Dense.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	src, err := flatten(m, opTranspose)
	if err != nil {
		return nil, err
	}
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = src[i*cols+j]
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var (
		i, j int
		mv   float64
		err  error
	)
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// LUP is a partial-pivoting LU factorization P·A = L·U of a square matrix.
// L (unit lower) and U (upper) share one packed row-major buffer; perm maps
// factor row i to the original row perm[i].
type LUP struct {
	n     int       // system size
	lu    []float64 // packed factors: strict lower = L, upper incl. diagonal = U
	perm  []int     // row permutation applied to A
	swaps int       // number of row exchanges (determinant sign)
}

// LU factorizes a square matrix with partial (row) pivoting.
// MAIN DESCRIPTION:
//   - Doolittle elimination on a private copy; at step k the row with the
//     largest |a[i,k]| (i ≥ k, first maximum in i order) becomes the pivot.
//
// Implementation:
//   - Stage 1: validate non-nil, square, finite; copy into a flat buffer.
//   - Stage 2: compute ‖A‖∞ and threshold = pivotTol·‖A‖∞.
//   - Stage 3: eliminate column by column; fail when |pivot| ≤ threshold.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrSingular.
//
// Determinism:
//   - Fixed k→i→j order and first-maximum pivot choice.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - Factor once with LU and call (*LUP).Solve for several right-hand sides.
func LU(m Matrix, opts ...Option) (*LUP, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)

	n := m.Rows()
	lu, err := flatten(m, opLU)
	if err != nil {
		return nil, err
	}
	if err = ValidateFiniteVec(lu); err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	// ‖A‖∞ = max row absolute sum; the pivot guard is relative to it.
	var (
		i, j, k, p int
		rowSum     float64
		norm       float64
	)
	for i = 0; i < n; i++ {
		rowSum = ZeroSum
		for j = 0; j < n; j++ {
			rowSum += math.Abs(lu[i*n+j])
		}
		if rowSum > norm {
			norm = rowSum
		}
	}
	threshold := o.pivotTol * norm

	perm := make([]int, n)
	for i = 0; i < n; i++ {
		perm[i] = i
	}

	swaps := 0
	var best, cand, pivot, f float64
	for k = 0; k < n; k++ {
		// Pivot search: largest magnitude in column k at or below the diagonal.
		p, best = k, math.Abs(lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if cand = math.Abs(lu[i*n+k]); cand > best {
				p, best = i, cand
			}
		}
		if best <= threshold || best == 0 {
			return nil, matrixErrorf(opLU, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				lu[k*n+j], lu[p*n+j] = lu[p*n+j], lu[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			swaps++
		}

		// Eliminate below the pivot; store multipliers in the strict lower part.
		pivot = lu[k*n+k]
		for i = k + 1; i < n; i++ {
			f = lu[i*n+k] / pivot
			lu[i*n+k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				lu[i*n+j] -= f * lu[k*n+j]
			}
		}
	}

	return &LUP{n: n, lu: lu, perm: perm, swaps: swaps}, nil
}

// Size returns the dimension n of the factorized system.
func (f *LUP) Size() int { return f.n }

// Pivot returns a copy of the row permutation (factor row i ← original row perm[i]).
func (f *LUP) Pivot() []int {
	out := make([]int, len(f.perm))
	copy(out, f.perm)

	return out
}

// L materializes the unit lower-triangular factor.
func (f *LUP) L() *Dense {
	l, _ := NewDense(f.n, f.n) // n > 0 is guaranteed by LU
	var i, j int
	for i = 0; i < f.n; i++ {
		for j = 0; j < i; j++ {
			l.data[i*f.n+j] = f.lu[i*f.n+j]
		}
		l.data[i*f.n+i] = 1.0
	}

	return l
}

// U materializes the upper-triangular factor.
func (f *LUP) U() *Dense {
	u, _ := NewDense(f.n, f.n)
	var i, j int
	for i = 0; i < f.n; i++ {
		for j = i; j < f.n; j++ {
			u.data[i*f.n+j] = f.lu[i*f.n+j]
		}
	}

	return u
}

// Det returns det(A) = (−1)^swaps · Π U[i,i].
func (f *LUP) Det() float64 {
	det := 1.0
	for i := 0; i < f.n; i++ {
		det *= f.lu[i*f.n+i]
	}
	if f.swaps%2 == 1 {
		det = -det
	}

	return det
}

// Solve returns x with A·x = b using the stored factors.
// Forward substitution on L (unit diagonal), then backward substitution on U.
//
// Errors:
//   - ErrNilMatrix (nil b), ErrDimensionMismatch (len(b) != n), ErrNaNInf.
//
// Complexity:
//   - Time O(n^2), Space O(n).
func (f *LUP) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateFiniteVec(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n := f.n
	x := make([]float64, n)
	var (
		i, k int
		sum  float64
	)
	// Forward: L·y = P·b (y stored in x).
	for i = 0; i < n; i++ {
		sum = b[f.perm[i]]
		for k = 0; k < i; k++ {
			sum -= f.lu[i*n+k] * x[k]
		}
		x[i] = sum
	}
	// Backward: U·x = y.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= f.lu[i*n+k] * x[k]
		}
		x[i] = sum / f.lu[i*n+i]
	}

	return x, nil
}

// Solve returns x with a·x = b through a single LU factorization.
// It never forms a⁻¹.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	f, err := LU(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}

// Inverse computes A⁻¹ by solving A·x = e_col for every basis column.
// Produces a new *Dense; does not mutate the input.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - If you only need A⁻¹·b, call Solve; forming the inverse is a last resort.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	f, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := f.n
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	e := make([]float64, n)
	var col, i int
	var x []float64
	for col = 0; col < n; col++ {
		e[col] = 1.0
		if x, err = f.Solve(e); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
		e[col] = 0.0
	}

	return inv, nil
}
