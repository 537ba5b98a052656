// SPDX-License-Identifier: MIT

package leontief

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mathmodels/matrix"
)

// displayDecimals is the rounding applied to equilibrium production for display.
const displayDecimals = 2

// Sector is one sector of the economy and its external (consumer) demand.
type Sector struct {
	Name   string  // display label, e.g. "Mining"
	Demand float64 // external demand, ≥ 0
}

// Result pairs sector labels with equilibrium production, in sector order.
type Result struct {
	Sectors    []string  `json:"sectors"`
	Production []float64 `json:"production"`
}

// Economy is an open Leontief input-output model: a square matrix A where
// A[i][j] is the fraction of sector j's output consumed by sector i, plus the
// sectors carrying external demand D. An Economy is immutable once built.
type Economy struct {
	a       *matrix.Dense
	sectors []Sector
	opts    options
}

// NewEconomy validates and builds an Economy.
//
// Implementation:
//   - Stage 1: reject empty input and length mismatches (ErrEmptyEconomy, ErrShape).
//   - Stage 2: reject negative/non-finite coefficients and demand.
//   - Stage 3: copy the table into a matrix.Dense; optional productiveness check.
//
// Errors:
//   - ErrEmptyEconomy, ErrShape, ErrInvalidCoefficient, ErrInvalidDemand, ErrUnproductive.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func NewEconomy(coeffs [][]float64, sectors []Sector, opts ...Option) (*Economy, error) {
	n := len(sectors)
	if n == 0 || len(coeffs) == 0 {
		return nil, leontiefErrorf("NewEconomy", ErrEmptyEconomy)
	}
	if len(coeffs) != n {
		return nil, leontiefErrorf("NewEconomy",
			fmt.Errorf("%d coefficient rows for %d sectors: %w", len(coeffs), n, ErrShape))
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(coeffs[i]) != n {
			return nil, leontiefErrorf("NewEconomy",
				fmt.Errorf("row %d has %d entries, want %d: %w", i, len(coeffs[i]), n, ErrShape))
		}
		for j = 0; j < n; j++ {
			if !nonNegativeFinite(coeffs[i][j]) {
				return nil, leontiefErrorf("NewEconomy",
					fmt.Errorf("A[%d][%d]=%g: %w", i, j, coeffs[i][j], ErrInvalidCoefficient))
			}
		}
	}
	for i = 0; i < n; i++ {
		if !nonNegativeFinite(sectors[i].Demand) {
			return nil, leontiefErrorf("NewEconomy",
				fmt.Errorf("sector %q demand=%g: %w", sectors[i].Name, sectors[i].Demand, ErrInvalidDemand))
		}
	}

	a, err := matrix.NewDenseFrom(coeffs)
	if err != nil {
		return nil, leontiefErrorf("NewEconomy", err)
	}

	e := &Economy{
		a:       a,
		sectors: append([]Sector(nil), sectors...),
		opts:    gatherOptions(opts...),
	}
	if e.opts.productiveCheck {
		if err = e.checkProductive(); err != nil {
			return nil, leontiefErrorf("NewEconomy", err)
		}
	}

	return e, nil
}

// Size returns the number of sectors.
func (e *Economy) Size() int { return len(e.sectors) }

// Sectors returns a copy of the sectors in model order.
func (e *Economy) Sectors() []Sector { return append([]Sector(nil), e.sectors...) }

// Labels returns the sector names in model order.
func (e *Economy) Labels() []string {
	out := make([]string, len(e.sectors))
	for i, s := range e.sectors {
		out[i] = s.Name
	}

	return out
}

// Demand returns the external demand vector D.
func (e *Economy) Demand() []float64 {
	out := make([]float64, len(e.sectors))
	for i, s := range e.sectors {
		out[i] = s.Demand
	}

	return out
}

// Coefficients returns a copy of the consumption-coefficient table A.
func (e *Economy) Coefficients() [][]float64 {
	rows, _ := matrix.ToRows(e.a) // e.a is never nil after NewEconomy
	return rows
}

// WithDemand returns a new Economy with the same coefficients and new
// external demand, keeping sector names. Used for demand sweeps.
func (e *Economy) WithDemand(demand []float64) (*Economy, error) {
	if len(demand) != len(e.sectors) {
		return nil, leontiefErrorf("WithDemand",
			fmt.Errorf("%d demand values for %d sectors: %w", len(demand), len(e.sectors), ErrShape))
	}
	sectors := e.Sectors()
	for i := range sectors {
		sectors[i].Demand = demand[i]
	}
	coeffs := e.Coefficients()

	return newEconomyWithOptions(coeffs, sectors, e.opts)
}

func newEconomyWithOptions(coeffs [][]float64, sectors []Sector, o options) (*Economy, error) {
	e, err := NewEconomy(coeffs, sectors)
	if err != nil {
		return nil, err
	}
	e.opts = o
	if o.productiveCheck {
		if err = e.checkProductive(); err != nil {
			return nil, leontiefErrorf("WithDemand", err)
		}
	}

	return e, nil
}

// Technology returns the technology matrix I − A.
func (e *Economy) Technology() (matrix.Matrix, error) {
	I, err := matrix.IdentityLike(e.a)
	if err != nil {
		return nil, leontiefErrorf("Technology", err)
	}
	t, err := matrix.Sub(I, e.a)
	if err != nil {
		return nil, leontiefErrorf("Technology", err)
	}

	return t, nil
}

// Equilibrium solves (I − A)·X = D with a single direct linear solve and
// returns production per sector rounded to two decimals.
//
// Errors:
//   - ErrSingularEconomy (matrix.ErrSingular) when I − A is singular or near-singular.
//
// Determinism:
//   - Identical economies give bit-identical results.
func (e *Economy) Equilibrium() (Result, error) {
	x, err := e.RawEquilibrium()
	if err != nil {
		return Result{}, err
	}
	for i := range x {
		x[i] = roundTo(x[i], displayDecimals)
	}

	return Result{Sectors: e.Labels(), Production: x}, nil
}

// RawEquilibrium is Equilibrium without display rounding.
func (e *Economy) RawEquilibrium() ([]float64, error) {
	x, err := e.solve()
	if err != nil {
		return nil, leontiefErrorf("RawEquilibrium", err)
	}

	return x, nil
}

// Multipliers returns the output multipliers: column sums of (I − A)⁻¹.
// Entry j is the total production required across the economy to deliver
// one extra unit of sector j's output to consumers.
func (e *Economy) Multipliers() ([]float64, error) {
	t, err := e.Technology()
	if err != nil {
		return nil, err
	}
	inv, err := matrix.Inverse(t, e.opts.matrixOpts...)
	if err != nil {
		return nil, leontiefErrorf("Multipliers", err)
	}
	m, err := matrix.ColSums(inv)
	if err != nil {
		return nil, leontiefErrorf("Multipliers", err)
	}

	return m, nil
}

// solve runs the direct solve of (I − A)·X = D.
func (e *Economy) solve() ([]float64, error) {
	t, err := e.Technology()
	if err != nil {
		return nil, err
	}

	return matrix.Solve(t, e.Demand(), e.opts.matrixOpts...)
}

// checkProductive enforces column sums < 1.
func (e *Economy) checkProductive() error {
	sums, err := matrix.ColSums(e.a)
	if err != nil {
		return err
	}
	for j, s := range sums {
		if s >= 1 {
			return fmt.Errorf("sector %q column sum %.4f: %w", e.sectors[j].Name, s, ErrUnproductive)
		}
	}

	return nil
}

// Solve is the presentation-facing entry point: coefficient table, demand
// vector and labels in; (labels, rounded production) out.
func Solve(coeffs [][]float64, demand []float64, labels []string, opts ...Option) (Result, error) {
	if len(labels) != len(demand) {
		return Result{}, leontiefErrorf("Solve",
			fmt.Errorf("%d labels for %d demand values: %w", len(labels), len(demand), ErrShape))
	}
	sectors := make([]Sector, len(labels))
	for i := range labels {
		sectors[i] = Sector{Name: labels[i], Demand: demand[i]}
	}
	e, err := NewEconomy(coeffs, sectors, opts...)
	if err != nil {
		return Result{}, err
	}

	return e.Equilibrium()
}

// EquilibriumProduction returns X = (I − A)⁻¹·D rounded to two decimals,
// without labels.
func EquilibriumProduction(coeffs [][]float64, demand []float64, opts ...Option) ([]float64, error) {
	labels := make([]string, len(demand))
	for i := range labels {
		labels[i] = fmt.Sprintf("S%d", i+1)
	}
	res, err := Solve(coeffs, demand, labels, opts...)
	if err != nil {
		return nil, err
	}

	return res.Production, nil
}

func nonNegativeFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
