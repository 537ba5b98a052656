// SPDX-License-Identifier: MIT

package leontief

import "github.com/katalvlaran/mathmodels/matrix"

// Option configures an Economy at construction time.
type Option func(*options)

type options struct {
	productiveCheck bool
	matrixOpts      []matrix.Option
}

// WithProductiveCheck rejects economies whose coefficient matrix has a column
// sum ≥ 1. Off by default: the solver trusts the caller's matrix and only
// fails on a singular I − A.
func WithProductiveCheck() Option {
	return func(o *options) { o.productiveCheck = true }
}

// WithPivotTolerance forwards the relative pivot threshold to the LU kernel.
// Panics on a negative or non-finite tol (see matrix.WithPivotTolerance).
func WithPivotTolerance(tol float64) Option {
	mo := matrix.WithPivotTolerance(tol) // validate eagerly
	return func(o *options) { o.matrixOpts = append(o.matrixOpts, mo) }
}

func gatherOptions(user ...Option) options {
	var o options
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
