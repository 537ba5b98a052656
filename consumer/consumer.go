// SPDX-License-Identifier: MIT

package consumer

import (
	"fmt"
	"math"
)

// Item is a purchasable good. Color is presentation-only (hex, e.g. "#ee5253").
type Item struct {
	Name  string  `json:"name"`
	Color string  `json:"color"`
	Price float64 `json:"price"`
}

// Consumer buys two items under a fixed budget.
type Consumer struct {
	First  Item    `json:"first"`
	Second Item    `json:"second"`
	Budget float64 `json:"budget"`
}

// BudgetLine is the constraint p₁x₁ + p₂x₂ = B described by its intercepts.
type BudgetLine struct {
	FirstMax  float64 `json:"first_max"`  // B/p₁, all budget spent on the first item
	SecondMax float64 `json:"second_max"` // B/p₂, all budget spent on the second item
}

// Bundle is a quantity pair together with the utility it attains.
type Bundle struct {
	First   float64 `json:"first"`
	Second  float64 `json:"second"`
	Utility float64 `json:"utility"`
}

// NewConsumer validates prices and budget and returns a Consumer.
//
// Errors:
//   - ErrInvalidPrice, ErrInvalidBudget.
func NewConsumer(first, second Item, budget float64) (*Consumer, error) {
	c := &Consumer{First: first, Second: second, Budget: budget}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks that both prices and the budget are positive and finite.
func (c *Consumer) Validate() error {
	for _, it := range []Item{c.First, c.Second} {
		if !positiveFinite(it.Price) {
			return consumerErrorf(fmt.Sprintf("consumer: item %q price=%g", it.Name, it.Price), ErrInvalidPrice)
		}
	}
	if !positiveFinite(c.Budget) {
		return consumerErrorf(fmt.Sprintf("consumer: budget=%g", c.Budget), ErrInvalidBudget)
	}

	return nil
}

// BudgetLine returns the intercepts of the budget constraint. Each intercept
// divides the budget by its own item's price.
func (c *Consumer) BudgetLine() BudgetLine {
	return BudgetLine{
		FirstMax:  c.Budget / c.First.Price,
		SecondMax: c.Budget / c.Second.Price,
	}
}

// SecondAt returns the quantity of the second item left affordable after
// buying x1 of the first, clamped at zero.
func (c *Consumer) SecondAt(x1 float64) float64 {
	rest := (c.Budget - c.First.Price*x1) / c.Second.Price
	if rest < 0 {
		return 0
	}

	return rest
}

// Affordable reports whether the bundle (x1, x2) satisfies p₁x₁ + p₂x₂ ≤ B
// with non-negative quantities. A relative tolerance of 1e-12 absorbs
// rounding on the line itself.
func (c *Consumer) Affordable(x1, x2 float64) bool {
	if x1 < 0 || x2 < 0 {
		return false
	}
	cost := c.First.Price*x1 + c.Second.Price*x2

	return cost <= c.Budget*(1+1e-12)
}

// OptimalBundle returns the Cobb–Douglas demand
//
//	x₁ = αB/p₁,  x₂ = (1−α)B/p₂
//
// which spends exactly the budget and maximizes u = x₁^α · x₂^(1−α).
//
// Errors:
//   - ErrInvalidAlpha when alpha ∉ (0, 1).
func (c *Consumer) OptimalBundle(alpha float64) (Bundle, error) {
	if err := validateAlpha(alpha); err != nil {
		return Bundle{}, consumerErrorf("consumer: OptimalBundle", err)
	}
	x1 := alpha * c.Budget / c.First.Price
	x2 := (1 - alpha) * c.Budget / c.Second.Price

	return Bundle{First: x1, Second: x2, Utility: Utility(alpha, x1, x2)}, nil
}

// Utility evaluates u = x₁^α · x₂^(1−α). Negative quantities yield NaN.
func Utility(alpha, x1, x2 float64) float64 {
	if x1 < 0 || x2 < 0 {
		return math.NaN()
	}

	return math.Pow(x1, alpha) * math.Pow(x2, 1-alpha)
}

func validateAlpha(alpha float64) error {
	if math.IsNaN(alpha) || alpha <= 0 || alpha >= 1 {
		return ErrInvalidAlpha
	}

	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
