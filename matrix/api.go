// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid logic duplication — each facade delegates to a canonical kernel.
//
// AI-Hints:
//   - Use NewIdentity/IdentityLike to build I for Leontief-style I − A systems.
//   - ColSums of (I − A)⁻¹ are the classic output multipliers.

package matrix

import "math"

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// IdentityLike returns I with dimension = Rows(m); requires a square m.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// RowSums returns r where r[i] = Σ_j m[i,j]. Implementation: MatVec(m, ones).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1.0
	}

	return MatVec(m, ones)
}

// ColSums returns c where c[j] = Σ_i m[i,j]. Implementation: Transpose → RowSums.
func ColSums(m Matrix) ([]float64, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("ColSums", err)
	}

	return RowSums(mt)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// NaN never compares equal. Negative tolerances are taken by absolute value.
//
// AI-Hints:
//   - AllClose with small atol/rtol is the right tool for invariance tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	ad, err := flatten(a, "AllClose")
	if err != nil {
		return false, err
	}
	bd, err := flatten(b, "AllClose")
	if err != nil {
		return false, err
	}
	for idx := range ad {
		if math.IsNaN(ad[idx]) || math.IsNaN(bd[idx]) {
			return false, nil
		}
		if ad[idx] == bd[idx] { // covers equal infinities
			continue
		}
		if math.Abs(ad[idx]-bd[idx]) > atol+rtol*math.Abs(bd[idx]) {
			return false, nil
		}
	}

	return true, nil
}

// ToRows exports m as a freshly allocated [][]float64 (row-major).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToRows", err)
	}
	flat, err := flatten(m, "ToRows")
	if err != nil {
		return nil, err
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = flat[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return out, nil
}
