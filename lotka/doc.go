// Package lotka simulates the Lotka-Volterra predator-prey system.
//
//	dx/dt = αx − βxy     prey: growth α, predation β
//	dy/dt = δxy − γy     predator: reproduction per prey δ, mortality γ
//
// Simulate integrates with a fixed step h and returns a fully materialized
// Trace of floor(T/h) samples. Explicit Euler is the default; RK4 is an
// explicit opt-in with the same step. The step is never adapted and
// populations are never clamped: choose h small relative to the rates
// (DefaultStep = 1e-4 for rates of order 1).
//
// Invalid inputs (negative populations or rates, non-finite values,
// non-positive step or duration) fail fast with ErrInvalidParams.
//
// Helpers: Equilibrium (coexistence point), Invariant and
// Trace.InvariantDrift (integration error gauge), Trace.Downsample and
// Trace.Summary for rendering.
package lotka
