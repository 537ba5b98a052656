// SPDX-License-Identifier: MIT

package lotka

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParams indicates a caller-supplied parameter outside the model's
	// domain: negative or non-finite population, negative or non-finite rate,
	// non-positive step or duration, or a duration shorter than one step.
	ErrInvalidParams = errors.New("lotka: invalid parameters")

	// ErrTooManySteps indicates floor(T/h) exceeds the configured step budget.
	ErrTooManySteps = errors.New("lotka: step count exceeds limit")

	// ErrNoCoexistence indicates the coexistence equilibrium does not exist
	// (β = 0 or δ = 0).
	ErrNoCoexistence = errors.New("lotka: no coexistence equilibrium")
)

// invalidf wraps ErrInvalidParams with a field-specific description.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidParams)
}
