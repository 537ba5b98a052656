// SPDX-License-Identifier: MIT

package lotka

import (
	"fmt"
	"math"
)

// DefaultStep is the fixed Euler step of the classroom scenario.
const DefaultStep = 1e-4

// Species is one animal population of the model. Color is presentation-only.
type Species struct {
	Name       string
	Population float64 // initial population density, ≥ 0
	GrowthRate float64 // prey: α; predator: δ (reproduction per prey consumed)
	DeathRate  float64 // prey: β (predation); predator: γ (mortality)
	Color      string  // hex color for charts, e.g. "#ff9f43"
}

// String renders "Name | Population: p".
func (s Species) String() string {
	return fmt.Sprintf("%s | Population: %g", s.Name, s.Population)
}

// Params holds the scalar inputs of a simulation run.
type Params struct {
	Prey0     float64 `json:"prey0"`     // initial prey population x₀
	Predator0 float64 `json:"predator0"` // initial predator population y₀
	Alpha     float64 `json:"alpha"`     // prey growth rate α
	Beta      float64 `json:"beta"`      // predation rate β
	Delta     float64 `json:"delta"`     // predator reproduction per prey δ
	Gamma     float64 `json:"gamma"`     // predator death rate γ
	Duration  float64 `json:"duration"`  // total simulated time T
	Step      float64 `json:"step"`      // fixed step h
}

// NewParams maps a prey/predator pair onto Params. The prey's growth and death
// rates become α and β; the predator's growth and death rates become δ and γ.
// The predator's growth and death rates stay two distinct inputs.
func NewParams(prey, predator Species, duration, step float64) Params {
	return Params{
		Prey0:     prey.Population,
		Predator0: predator.Population,
		Alpha:     prey.GrowthRate,
		Beta:      prey.DeathRate,
		Delta:     predator.GrowthRate,
		Gamma:     predator.DeathRate,
		Duration:  duration,
		Step:      step,
	}
}

// Validate fails fast on inputs that would otherwise yield silent NaN,
// negative or empty traces.
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"prey0", p.Prey0},
		{"predator0", p.Predator0},
		{"alpha", p.Alpha},
		{"beta", p.Beta},
		{"delta", p.Delta},
		{"gamma", p.Gamma},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return invalidf("%s=%g is not finite", f.name, f.v)
		}
		if f.v < 0 {
			return invalidf("%s=%g is negative", f.name, f.v)
		}
	}
	if math.IsNaN(p.Step) || math.IsInf(p.Step, 0) || p.Step <= 0 {
		return invalidf("step=%g must be positive and finite", p.Step)
	}
	if math.IsNaN(p.Duration) || math.IsInf(p.Duration, 0) || p.Duration <= 0 {
		return invalidf("duration=%g must be positive and finite", p.Duration)
	}
	if p.Steps() < 1 {
		return invalidf("duration=%g shorter than step=%g", p.Duration, p.Step)
	}

	return nil
}

// Steps returns the trace length floor(T/h) of the float64 quotient, so
// 0.3/0.1 (2.9999999999999996) gives 2. Returns 0 for non-positive inputs.
func (p Params) Steps() int {
	if !(p.Step > 0) || !(p.Duration > 0) {
		return 0
	}
	q := p.Duration / p.Step
	if math.IsNaN(q) {
		return 0
	}
	if q >= 1<<53 { // beyond exact float integers; any step budget rejects it
		return math.MaxInt
	}
	return int(math.Floor(q))
}
