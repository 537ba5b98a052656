// SPDX-License-Identifier: MIT

package lotka

import "fmt"

// Simulate integrates the Lotka-Volterra system
//
//	dx/dt = x(α − βy)    (prey)
//	dy/dt = y(δx − γ)    (predator)
//
// with a fixed step h for n = floor(T/h) points, t[0] = 0.
//
// Implementation (Euler, default):
//
//	t[i+1]        = t[i] + h
//	predator[i+1] = predator[i] + h*predator[i]*(δ*prey[i] − γ)
//	prey[i+1]     = prey[i]     + h*prey[i]*(α − predator[i]*β)
//
// Both updates read only time-i values. No step adaptation and no clamping:
// with a large h populations may overshoot below zero or diverge.
//
// Errors:
//   - ErrInvalidParams (see Params.Validate), ErrTooManySteps.
//
// Complexity:
//   - Time O(n), Space O(n) for the fully materialized trace.
func Simulate(p Params, opts ...Option) (*Trace, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("lotka: Simulate: %w", err)
	}
	o := gatherOptions(opts...)

	n := p.Steps()
	if n > o.maxSteps {
		return nil, fmt.Errorf("lotka: Simulate: %d steps > %d: %w", n, o.maxSteps, ErrTooManySteps)
	}

	tr := &Trace{
		Integrator: o.integrator,
		Time:       make([]float64, n),
		Prey:       make([]float64, n),
		Predator:   make([]float64, n),
	}
	tr.Time[0] = 0.0
	tr.Prey[0] = p.Prey0
	tr.Predator[0] = p.Predator0

	step := eulerStep
	if o.integrator == RK4 {
		step = rk4Step
	}
	h := p.Step
	for i := 0; i < n-1; i++ {
		tr.Time[i+1] = tr.Time[i] + h
		tr.Prey[i+1], tr.Predator[i+1] = step(p, tr.Prey[i], tr.Predator[i], h)
	}

	return tr, nil
}

// derivative returns (dx/dt, dy/dt) at prey x, predator y.
func derivative(p Params, x, y float64) (float64, float64) {
	return x * (p.Alpha - y*p.Beta), y * (p.Delta*x - p.Gamma)
}

// eulerStep advances one explicit Euler step; both updates use time-i values.
func eulerStep(p Params, x, y, h float64) (float64, float64) {
	nextY := y + h*y*(p.Delta*x-p.Gamma)
	nextX := x + h*x*(p.Alpha-y*p.Beta)

	return nextX, nextY
}

// rk4Step advances one classical Runge–Kutta step.
func rk4Step(p Params, x, y, h float64) (float64, float64) {
	k1x, k1y := derivative(p, x, y)
	k2x, k2y := derivative(p, x+h/2*k1x, y+h/2*k1y)
	k3x, k3y := derivative(p, x+h/2*k2x, y+h/2*k2y)
	k4x, k4y := derivative(p, x+h*k3x, y+h*k3y)

	return x + h/6*(k1x+2*k2x+2*k3x+k4x),
		y + h/6*(k1y+2*k2y+2*k3y+k4y)
}
