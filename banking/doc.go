// Package banking models deposit creation under fractional-reserve banking.
//
// An initial deposit d₀ enters bank 0. Each bank keeps the fraction r in
// reserve and lends the rest, which is deposited in the next bank, so bank i
// receives d₀(1−r)^i. CumulativeDeposits returns the running total after
// each bank; as the chain grows it approaches d₀/r, and 1/r is the money
// multiplier.
package banking
