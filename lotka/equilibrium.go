// SPDX-License-Identifier: MIT

package lotka

import (
	"fmt"
	"math"
)

// Equilibrium returns the coexistence fixed point (x*, y*) = (γ/δ, α/β),
// where both derivatives vanish with non-zero populations.
//
// Errors:
//   - ErrNoCoexistence when β == 0 or δ == 0.
func Equilibrium(p Params) (prey, predator float64, err error) {
	if p.Beta == 0 || p.Delta == 0 {
		return 0, 0, fmt.Errorf("lotka: Equilibrium: beta=%g delta=%g: %w", p.Beta, p.Delta, ErrNoCoexistence)
	}

	return p.Gamma / p.Delta, p.Alpha / p.Beta, nil
}

// Invariant evaluates V(x, y) = δx − γ ln x + βy − α ln y, which is constant
// along exact solutions. Returns NaN for non-positive populations.
func Invariant(p Params, x, y float64) float64 {
	if x <= 0 || y <= 0 {
		return math.NaN()
	}

	return p.Delta*x - p.Gamma*math.Log(x) + p.Beta*y - p.Alpha*math.Log(y)
}
