// SPDX-License-Identifier: MIT

package lotka

import "math"

// Trace is a fully materialized simulation: three time-aligned series of
// equal length floor(T/h).
type Trace struct {
	Integrator Integrator `json:"-"`
	Time       []float64  `json:"time"`
	Prey       []float64  `json:"prey"`
	Predator   []float64  `json:"predator"`
}

// Point is one (time, prey, predator) sample.
type Point struct {
	Time     float64 `json:"time"`
	Prey     float64 `json:"prey"`
	Predator float64 `json:"predator"`
}

// Summary holds extrema of a trace for captions and reports.
type Summary struct {
	PreyMin          float64 `json:"prey_min"`
	PreyMax          float64 `json:"prey_max"`
	PreyPeakTime     float64 `json:"prey_peak_time"`
	PredatorMin      float64 `json:"predator_min"`
	PredatorMax      float64 `json:"predator_max"`
	PredatorPeakTime float64 `json:"predator_peak_time"`
	Final            Point   `json:"final"`
}

// Len returns the number of samples.
func (t *Trace) Len() int { return len(t.Time) }

// At returns sample i. Panics on an out-of-range index, like a slice.
func (t *Trace) At(i int) Point {
	return Point{Time: t.Time[i], Prey: t.Prey[i], Predator: t.Predator[i]}
}

// Downsample returns at most k evenly spaced samples, keeping the first and
// last. k <= 0 or k >= Len returns a copy of the whole trace.
func (t *Trace) Downsample(k int) *Trace {
	n := t.Len()
	if k <= 0 || k >= n {
		return &Trace{
			Integrator: t.Integrator,
			Time:       append([]float64(nil), t.Time...),
			Prey:       append([]float64(nil), t.Prey...),
			Predator:   append([]float64(nil), t.Predator...),
		}
	}

	out := &Trace{
		Integrator: t.Integrator,
		Time:       make([]float64, k),
		Prey:       make([]float64, k),
		Predator:   make([]float64, k),
	}
	var idx int
	for i := 0; i < k; i++ {
		if k == 1 {
			idx = 0
		} else {
			idx = int(math.Round(float64(i) * float64(n-1) / float64(k-1)))
		}
		out.Time[i] = t.Time[idx]
		out.Prey[i] = t.Prey[idx]
		out.Predator[i] = t.Predator[idx]
	}

	return out
}

// Summary scans the trace once for extrema. The first occurrence wins on ties.
// Returns the zero Summary for an empty trace.
func (t *Trace) Summary() Summary {
	n := t.Len()
	if n == 0 {
		return Summary{}
	}
	s := Summary{
		PreyMin:          t.Prey[0],
		PreyMax:          t.Prey[0],
		PreyPeakTime:     t.Time[0],
		PredatorMin:      t.Predator[0],
		PredatorMax:      t.Predator[0],
		PredatorPeakTime: t.Time[0],
		Final:            t.At(n - 1),
	}
	for i := 1; i < n; i++ {
		if t.Prey[i] < s.PreyMin {
			s.PreyMin = t.Prey[i]
		}
		if t.Prey[i] > s.PreyMax {
			s.PreyMax, s.PreyPeakTime = t.Prey[i], t.Time[i]
		}
		if t.Predator[i] < s.PredatorMin {
			s.PredatorMin = t.Predator[i]
		}
		if t.Predator[i] > s.PredatorMax {
			s.PredatorMax, s.PredatorPeakTime = t.Predator[i], t.Time[i]
		}
	}

	return s
}

// InvariantDrift returns max |V(t) − V(0)| / |V(0)| over the trace, where V is
// the conserved quantity of the exact flow (see Invariant). It gauges the
// integrator's accumulated error. Samples with a non-positive population are
// skipped; if V(0) is undefined the result is NaN. When V(0) == 0 the drift is
// absolute.
func (t *Trace) InvariantDrift(p Params) float64 {
	if t.Len() == 0 {
		return math.NaN()
	}
	v0 := Invariant(p, t.Prey[0], t.Predator[0])
	if math.IsNaN(v0) {
		return math.NaN()
	}
	scale := math.Abs(v0)
	if scale == 0 {
		scale = 1
	}

	var worst float64
	for i := 1; i < t.Len(); i++ {
		v := Invariant(p, t.Prey[i], t.Predator[i])
		if math.IsNaN(v) {
			continue
		}
		if d := math.Abs(v-v0) / scale; d > worst {
			worst = d
		}
	}

	return worst
}
