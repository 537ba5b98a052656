// Package mathmodels is a small toolkit of classroom mathematical models for
// economics and ecology, solved exactly or integrated numerically, with a
// terminal front end.
//
// What is inside?
//
//	matrix/    — dense matrix kernel: LU with partial pivoting, Solve, Inverse
//	leontief/  — open input-output model: equilibrium production (I − A)X = D,
//	             preset economies, output multipliers, sector reachability
//	lotka/     — Lotka-Volterra predator-prey simulation (Euler, optional RK4),
//	             equilibrium, conserved quantity, trace helpers
//	consumer/  — two-good budget constraint and Cobb–Douglas indifference curves
//	banking/   — fractional-reserve deposit creation and the money multiplier
//
// The mathmodels command (cmd/mathmodels) runs each model from a TOML or YAML
// scenario and prints styled tables, bars and sparklines, or JSON/CSV.
//
// Guarantees:
//   - Deterministic: no randomness, no concurrency, no I/O in model packages.
//   - Fail fast: invalid inputs return sentinel errors (match with errors.Is);
//     panics are reserved for programmer errors in option constructors.
//   - Numerics: float64 throughout; singularity is detected with a relative
//     pivot threshold rather than exact zero.
//
// Quick start:
//
//	e, _ := leontief.Preset("A", []float64{10, 10, 10})
//	res, _ := e.Equilibrium()   // Mining 36.78, Lumber 21.84, Energy 17.24
//
//	tr, _ := lotka.Simulate(lotka.Params{
//		Prey0: 3, Predator0: 5, Alpha: 2.5, Beta: 1.3333, Delta: 1, Gamma: 1,
//		Duration: 30, Step: lotka.DefaultStep,
//	})
//	fmt.Println(tr.Len())       // 300000
package mathmodels
