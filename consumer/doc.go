// Package consumer models a two-good consumer: the budget constraint
// p₁x₁ + p₂x₂ = B and a Cobb–Douglas preference u = x₁^α · x₂^(1−α).
//
// Quantities are expressed in (first, second) item space: the first item is
// plotted on the horizontal axis, the second on the vertical one.
//
// What is provided:
//   - Consumer.BudgetLine and Consumer.Affordable for the constraint;
//   - IndifferenceCurves sampling iso-utility curves x₂(x₁) for a set of
//     utility levels on x₁ ∈ linspace(1, B, points);
//   - Consumer.OptimalBundle, the utility-maximizing affordable bundle.
//
// Defaults (DefaultAlpha = 1/3, DefaultLevels = 1,3,5,7,9, DefaultPoints = 100)
// are the classroom scenario values.
package consumer
