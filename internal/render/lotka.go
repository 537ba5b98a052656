// SPDX-License-Identifier: MIT

package render

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/mathmodels/lotka"
)

const sparkWidth = 60

// LotkaReport is a simulation run reduced for display. A diverging run keeps
// its ±Inf and NaN samples; the JSON encoding writes them as null.
type LotkaReport struct {
	Prey       lotka.Species
	Predator   lotka.Species
	Params     lotka.Params
	Integrator string
	Steps      int
	Summary    lotka.Summary
	Drift      float64
	Trace      *lotka.Trace
	Coexist    *[2]float64
	spark      *lotka.Trace
}

// NewLotkaReport summarizes the full trace and keeps at most samples
// evenly spaced points for tables and encoders (samples <= 0 keeps all).
func NewLotkaReport(prey, predator lotka.Species, p lotka.Params, tr *lotka.Trace, samples int) *LotkaReport {
	r := &LotkaReport{
		Prey:       prey,
		Predator:   predator,
		Params:     p,
		Integrator: tr.Integrator.String(),
		Steps:      tr.Len(),
		Summary:    tr.Summary(),
		Drift:      tr.InvariantDrift(p),
		Trace:      tr.Downsample(samples),
		spark:      tr.Downsample(sparkWidth),
	}
	if x, y, err := lotka.Equilibrium(p); err == nil {
		r.Coexist = &[2]float64{x, y}
	}

	return r
}

// Text renders both populations as colored sparklines plus a sample table.
func (r *LotkaReport) Text() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(fmt.Sprintf("Lotka-Volterra: %ss and %ss", r.Predator.Name, r.Prey.Name)))
	b.WriteString("\n")
	b.WriteString(swatch(r.Predator.String(), r.Predator.Color))
	b.WriteString("\n")
	b.WriteString(swatch(r.Prey.String(), r.Prey.Color))
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render(fmt.Sprintf(
		"α=%g β=%g δ=%g γ=%g  T=%g h=%g  %s, %d steps",
		r.Params.Alpha, r.Params.Beta, r.Params.Delta, r.Params.Gamma,
		r.Params.Duration, r.Params.Step, r.Integrator, r.Steps)))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%-10s %s\n", LabelStyle.Render("predator"), swatch(Sparkline(r.spark.Predator), r.Predator.Color))
	fmt.Fprintf(&b, "%-10s %s\n\n", LabelStyle.Render("prey"), swatch(Sparkline(r.spark.Prey), r.Prey.Color))

	s := r.Summary
	stats := [][]string{
		{r.Predator.Name, fixed(s.PredatorMin, 3), fixed(s.PredatorMax, 3), fixed(s.PredatorPeakTime, 2), fixed(s.Final.Predator, 3)},
		{r.Prey.Name, fixed(s.PreyMin, 3), fixed(s.PreyMax, 3), fixed(s.PreyPeakTime, 2), fixed(s.Final.Prey, 3)},
	}
	b.WriteString(newTable([]string{"Species", "Min", "Max", "Peak at", "Final"}, stats).String())
	b.WriteString("\n")

	rows := make([][]string, r.Trace.Len())
	for i := range rows {
		rows[i] = []string{fixed(r.Trace.Time[i], 2), fixed(r.Trace.Predator[i], 3), fixed(r.Trace.Prey[i], 3)}
	}
	b.WriteString(newTable([]string{"t", r.Predator.Name, r.Prey.Name}, rows).String())
	b.WriteString("\n")

	if r.Coexist != nil {
		b.WriteString(MutedStyle.Render(fmt.Sprintf("coexistence point: prey=%.4f predator=%.4f", r.Coexist[0], r.Coexist[1])))
		b.WriteString("\n")
	}
	drift := fmt.Sprintf("invariant drift: %.3e", r.Drift)
	switch {
	case math.IsNaN(r.Drift):
		b.WriteString(WarnStyle.Render("invariant drift: undefined (a population left the positive range)"))
	case r.Drift > 0.05:
		b.WriteString(WarnStyle.Render(drift + " (step too large?)"))
	default:
		b.WriteString(MutedStyle.Render(drift))
	}

	return b.String()
}

// Data returns the report itself.
func (r *LotkaReport) Data() any { return r }

// MarshalJSON encodes the report with non-finite numbers as null.
func (r *LotkaReport) MarshalJSON() ([]byte, error) {
	type point struct {
		Time     jsonFloat `json:"time"`
		Prey     jsonFloat `json:"prey"`
		Predator jsonFloat `json:"predator"`
	}
	s := r.Summary
	out := struct {
		Prey       lotka.Species `json:"prey"`
		Predator   lotka.Species `json:"predator"`
		Params     lotka.Params  `json:"params"`
		Integrator string        `json:"integrator"`
		Steps      int           `json:"steps"`
		Summary    struct {
			PreyMin          jsonFloat `json:"prey_min"`
			PreyMax          jsonFloat `json:"prey_max"`
			PreyPeakTime     jsonFloat `json:"prey_peak_time"`
			PredatorMin      jsonFloat `json:"predator_min"`
			PredatorMax      jsonFloat `json:"predator_max"`
			PredatorPeakTime jsonFloat `json:"predator_peak_time"`
			Final            point     `json:"final"`
		} `json:"summary"`
		Drift jsonFloat `json:"invariant_drift"`
		Trace struct {
			Time     []jsonFloat `json:"time"`
			Prey     []jsonFloat `json:"prey"`
			Predator []jsonFloat `json:"predator"`
		} `json:"trace"`
		Coexist *[2]jsonFloat `json:"equilibrium,omitempty"`
	}{
		Prey:       r.Prey,
		Predator:   r.Predator,
		Params:     r.Params,
		Integrator: r.Integrator,
		Steps:      r.Steps,
		Drift:      jsonFloat(r.Drift),
	}
	out.Summary.PreyMin = jsonFloat(s.PreyMin)
	out.Summary.PreyMax = jsonFloat(s.PreyMax)
	out.Summary.PreyPeakTime = jsonFloat(s.PreyPeakTime)
	out.Summary.PredatorMin = jsonFloat(s.PredatorMin)
	out.Summary.PredatorMax = jsonFloat(s.PredatorMax)
	out.Summary.PredatorPeakTime = jsonFloat(s.PredatorPeakTime)
	out.Summary.Final = point{jsonFloat(s.Final.Time), jsonFloat(s.Final.Prey), jsonFloat(s.Final.Predator)}
	if r.Trace != nil {
		out.Trace.Time = jsonFloats(r.Trace.Time)
		out.Trace.Prey = jsonFloats(r.Trace.Prey)
		out.Trace.Predator = jsonFloats(r.Trace.Predator)
	}
	if r.Coexist != nil {
		out.Coexist = &[2]jsonFloat{jsonFloat(r.Coexist[0]), jsonFloat(r.Coexist[1])}
	}

	return json.Marshal(out)
}

// Table returns the retained samples as time, prey, predator rows.
func (r *LotkaReport) Table() ([]string, [][]string) {
	rows := make([][]string, r.Trace.Len())
	for i := range rows {
		rows[i] = []string{num(r.Trace.Time[i]), num(r.Trace.Prey[i]), num(r.Trace.Predator[i])}
	}

	return []string{"time", "prey", "predator"}, rows
}
