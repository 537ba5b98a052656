// SPDX-License-Identifier: MIT

package banking

import "errors"

var (
	// ErrInvalidDeposit indicates a negative or non-finite initial deposit.
	ErrInvalidDeposit = errors.New("banking: initial deposit must be finite and >= 0")

	// ErrInvalidBanks indicates a negative number of banks.
	ErrInvalidBanks = errors.New("banking: number of banks must be >= 0")

	// ErrInvalidRatio indicates a reserve ratio outside (0, 1].
	ErrInvalidRatio = errors.New("banking: reserve ratio must lie in (0, 1]")
)
