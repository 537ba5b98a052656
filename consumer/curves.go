// SPDX-License-Identifier: MIT

package consumer

import (
	"fmt"
	"math"
)

const (
	// DefaultAlpha is the Cobb–Douglas share of the first item.
	DefaultAlpha = 1.0 / 3.0

	// DefaultPoints is the number of x₁ samples per curve.
	DefaultPoints = 100
)

// DefaultLevels returns the utility levels 1, 3, 5, 7, 9. A fresh slice each call.
func DefaultLevels() []float64 {
	return []float64{1, 3, 5, 7, 9}
}

// Curve is one sampled indifference curve: every (First[i], Second[i]) pair
// attains utility Level.
type Curve struct {
	Level  float64   `json:"level"`
	First  []float64 `json:"first"`
	Second []float64 `json:"second"`
}

// IndifferenceCurves samples one iso-utility curve per level:
//
//	x₂ = ū^(1/(1−α)) · x₁^(−α/(1−α)),   x₁ ∈ linspace(1, B, points)
//
// Curves share the same x₁ grid and are returned in level order.
//
// Errors:
//   - ErrInvalidAlpha, ErrInvalidLevel, ErrInvalidPoints.
//
// Complexity:
//   - Time O(len(levels)·points), Space O(len(levels)·points).
func (c *Consumer) IndifferenceCurves(alpha float64, levels []float64, points int) ([]Curve, error) {
	const tag = "consumer: IndifferenceCurves"
	if err := validateAlpha(alpha); err != nil {
		return nil, consumerErrorf(tag, err)
	}
	if points < 1 {
		return nil, consumerErrorf(fmt.Sprintf("%s: points=%d", tag, points), ErrInvalidPoints)
	}
	for _, u := range levels {
		if !positiveFinite(u) {
			return nil, consumerErrorf(fmt.Sprintf("%s: level=%g", tag, u), ErrInvalidLevel)
		}
	}

	grid := linspace(1, c.Budget, points)
	levelExp := 1 / (1 - alpha)
	xExp := -alpha / (1 - alpha)

	curves := make([]Curve, len(levels))
	for k, u := range levels {
		scale := math.Pow(u, levelExp)
		second := make([]float64, points)
		for i, x1 := range grid {
			second[i] = scale * math.Pow(x1, xExp)
		}
		curves[k] = Curve{
			Level:  u,
			First:  append([]float64(nil), grid...),
			Second: second,
		}
	}

	return curves, nil
}

// linspace returns n evenly spaced values from lo to hi inclusive.
// n == 1 yields [lo].
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi

	return out
}
