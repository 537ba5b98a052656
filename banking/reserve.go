// SPDX-License-Identifier: MIT

package banking

import (
	"fmt"
	"math"
)

// Reserve describes a chain of banks sharing one reserve ratio.
type Reserve struct {
	InitialDeposit float64 `json:"initial_deposit"`
	Banks          int     `json:"banks"`
	Ratio          float64 `json:"ratio"`
}

// NewReserve validates its inputs and returns a Reserve.
//
// Errors:
//   - ErrInvalidDeposit, ErrInvalidBanks, ErrInvalidRatio.
func NewReserve(initialDeposit float64, banks int, ratio float64) (*Reserve, error) {
	r := &Reserve{InitialDeposit: initialDeposit, Banks: banks, Ratio: ratio}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate checks deposit ≥ 0 and finite, banks ≥ 0, and 0 < ratio ≤ 1.
func (r *Reserve) Validate() error {
	if math.IsNaN(r.InitialDeposit) || math.IsInf(r.InitialDeposit, 0) || r.InitialDeposit < 0 {
		return fmt.Errorf("banking: deposit=%g: %w", r.InitialDeposit, ErrInvalidDeposit)
	}
	if r.Banks < 0 {
		return fmt.Errorf("banking: banks=%d: %w", r.Banks, ErrInvalidBanks)
	}
	if math.IsNaN(r.Ratio) || r.Ratio <= 0 || r.Ratio > 1 {
		return fmt.Errorf("banking: ratio=%g: %w", r.Ratio, ErrInvalidRatio)
	}

	return nil
}

// Deposit returns the amount d₀(1−r)^i deposited in bank i.
func (r *Reserve) Deposit(i int) float64 {
	return r.InitialDeposit * math.Pow(1-r.Ratio, float64(i))
}

// CumulativeDeposits returns Banks+1 running totals: element i is the sum of
// deposits in banks 0..i.
//
// Implementation:
//   - Keeps the current deposit and multiplies it by (1−r) per bank instead
//     of calling math.Pow for each i.
//
// Complexity:
//   - Time O(Banks), Space O(Banks).
func (r *Reserve) CumulativeDeposits() []float64 {
	out := make([]float64, r.Banks+1)
	keep := 1 - r.Ratio
	curr, total := r.InitialDeposit, 0.0
	for i := range out {
		total += curr
		out[i] = total
		curr *= keep
	}

	return out
}

// Multiplier returns the money multiplier 1/r.
func (r *Reserve) Multiplier() float64 { return 1 / r.Ratio }

// TotalDepositsLimit returns d₀/r, the limit of CumulativeDeposits as the
// number of banks grows.
func (r *Reserve) TotalDepositsLimit() float64 { return r.InitialDeposit / r.Ratio }
