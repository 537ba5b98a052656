// Package leontief implements the open Leontief input-output model.
//
// An economy of n sectors is described by a consumption-coefficient matrix A,
// where A[i][j] is the fraction of sector j's output consumed by sector i, and
// an external demand vector D. Equilibrium production X balances supply with
// internal plus external demand:
//
//	X = A·X + D   ⇔   (I − A)·X = D
//
// Equilibrium performs one direct linear solve of (I − A)·X = D (no explicit
// inverse) and rounds each component to two decimals for display. A singular
// or near-singular I − A fails with ErrSingularEconomy; economic soundness
// of A is otherwise trusted unless WithProductiveCheck is given.
//
// Extras:
//   - Multipliers: column sums of (I − A)⁻¹.
//   - Irreducible / Downstream: dependency structure between sectors.
//   - Preset: the classroom economies A, B and C over Mining, Lumber, Energy.
//
// Example:
//
//	e, _ := leontief.Preset("A", []float64{10, 10, 10})
//	res, err := e.Equilibrium()
//	// res.Sectors    = [Mining Lumber Energy]
//	// res.Production = [36.78 21.84 17.24]
package leontief
