// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathmodels/internal/render"
)

func newConsumerCmd(flags *rootFlags) *cobra.Command {
	var (
		budget, price1, price2, alpha float64
		levels                        []float64
		points                        int
	)

	c := &cobra.Command{
		Use:   "consumer",
		Short: "Budget constraint and indifference curves for two goods",
		Long: `Draws the budget line p₁x₁ + p₂x₂ = B, samples Cobb–Douglas indifference
curves u = x₁^α·x₂^(1−α) on x₁ ∈ [1, B], and reports the optimal bundle.`,
		Example: `  mathmodels consumer --budget 40 --price1 4
  mathmodels consumer --levels 2,4,8 -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			cc := r.cfg.Consumer
			set := cmd.Flags().Changed
			if set("budget") {
				cc.Budget = budget
			}
			if set("price1") {
				cc.First.Price = price1
			}
			if set("price2") {
				cc.Second.Price = price2
			}
			if set("alpha") {
				cc.Alpha = alpha
			}
			if set("levels") {
				cc.Levels = levels
			}
			if set("points") {
				cc.Points = points
			}

			cons, err := cc.Consumer()
			if err != nil {
				return r.fail(cmd, err)
			}
			rep, err := render.NewConsumerReport(cons, cc.Alpha, cc.Levels, cc.Points)
			if err != nil {
				return r.fail(cmd, err)
			}
			r.log.Info("consumer solved",
				"optimal_first", rep.Optimal.First,
				"optimal_second", rep.Optimal.Second,
				"curves", len(rep.Curves))

			return r.emit(cmd, rep)
		},
	}

	f := c.Flags()
	f.Float64VarP(&budget, "budget", "b", 0, "budget B")
	f.Float64Var(&price1, "price1", 0, "price of the first item")
	f.Float64Var(&price2, "price2", 0, "price of the second item")
	f.Float64Var(&alpha, "alpha", 0, "Cobb–Douglas share of the first item, in (0, 1)")
	f.Float64SliceVar(&levels, "levels", nil, "utility levels, comma separated")
	f.IntVar(&points, "points", 0, "samples per indifference curve")

	return c
}
