// SPDX-License-Identifier: MIT

package lotka

import "fmt"

// Integrator selects the fixed-step scheme used by Simulate.
type Integrator int

const (
	// Euler is the explicit forward Euler method (first order). Default.
	Euler Integrator = iota

	// RK4 is the classical fourth-order Runge–Kutta method, same fixed step.
	RK4
)

// String returns "euler" or "rk4".
func (i Integrator) String() string {
	switch i {
	case Euler:
		return "euler"
	case RK4:
		return "rk4"
	default:
		return fmt.Sprintf("integrator(%d)", int(i))
	}
}

// ParseIntegrator maps "euler"/"rk4" (case-sensitive, as written in
// scenario files) to an Integrator.
func ParseIntegrator(s string) (Integrator, error) {
	switch s {
	case "", "euler":
		return Euler, nil
	case "rk4":
		return RK4, nil
	default:
		return Euler, invalidf("integrator %q (want euler or rk4)", s)
	}
}

// DefaultMaxSteps bounds the materialized trace (three float64 slices).
const DefaultMaxSteps = 10_000_000

const (
	panicUnknownIntegrator = "lotka: WithIntegrator: unknown integrator"
	panicMaxStepsInvalid   = "lotka: WithMaxSteps: limit must be positive"
)

// Option configures Simulate.
type Option func(*options)

type options struct {
	integrator Integrator
	maxSteps   int
}

// WithIntegrator selects the integration scheme. Panics on an unknown value.
func WithIntegrator(i Integrator) Option {
	if i != Euler && i != RK4 {
		panic(panicUnknownIntegrator)
	}

	return func(o *options) { o.integrator = i }
}

// WithMaxSteps overrides DefaultMaxSteps. Panics on n <= 0.
func WithMaxSteps(n int) Option {
	if n <= 0 {
		panic(panicMaxStepsInvalid)
	}

	return func(o *options) { o.maxSteps = n }
}

func gatherOptions(user ...Option) options {
	o := options{integrator: Euler, maxSteps: DefaultMaxSteps}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
