// SPDX-License-Identifier: MIT

package consumer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPrice indicates a non-positive or non-finite item price.
	ErrInvalidPrice = errors.New("consumer: price must be positive and finite")

	// ErrInvalidBudget indicates a non-positive or non-finite budget.
	ErrInvalidBudget = errors.New("consumer: budget must be positive and finite")

	// ErrInvalidAlpha indicates a Cobb–Douglas share outside the open interval (0, 1).
	ErrInvalidAlpha = errors.New("consumer: alpha must lie in (0, 1)")

	// ErrInvalidLevel indicates a non-positive or non-finite utility level.
	ErrInvalidLevel = errors.New("consumer: utility level must be positive and finite")

	// ErrInvalidPoints indicates a sample count below one.
	ErrInvalidPoints = errors.New("consumer: points must be >= 1")
)

// consumerErrorf tags err with the failing operation.
func consumerErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
