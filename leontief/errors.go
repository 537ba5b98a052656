// SPDX-License-Identifier: MIT

package leontief

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mathmodels/matrix"
)

var (
	// ErrEmptyEconomy indicates an economy with no sectors.
	ErrEmptyEconomy = errors.New("leontief: economy has no sectors")

	// ErrShape indicates a non-square coefficient table or a demand/label
	// vector whose length differs from the number of sectors.
	ErrShape = errors.New("leontief: shape mismatch")

	// ErrInvalidCoefficient indicates a negative, NaN or ±Inf consumption coefficient.
	ErrInvalidCoefficient = errors.New("leontief: invalid consumption coefficient")

	// ErrInvalidDemand indicates a negative, NaN or ±Inf external demand.
	ErrInvalidDemand = errors.New("leontief: invalid external demand")

	// ErrUnproductive is returned by WithProductiveCheck when some column sum
	// of the coefficient matrix is ≥ 1 (sector consumes all of its output).
	ErrUnproductive = errors.New("leontief: economy is not productive")

	// ErrUnknownPreset indicates a preset name outside A, B, C.
	ErrUnknownPreset = errors.New("leontief: unknown preset economy")
)

// ErrSingularEconomy marks a singular or near-singular technology matrix I − A.
// It is the matrix sentinel itself, so errors.Is works with either name.
var ErrSingularEconomy = matrix.ErrSingular

// leontiefErrorf wraps err with an operation tag, preserving it via %w.
func leontiefErrorf(tag string, err error) error {
	return fmt.Errorf("leontief: %s: %w", tag, err)
}
