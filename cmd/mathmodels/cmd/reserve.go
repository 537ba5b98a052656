// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathmodels/internal/render"
)

func newReserveCmd(flags *rootFlags) *cobra.Command {
	var (
		deposit, ratio float64
		banks          int
	)

	c := &cobra.Command{
		Use:   "reserve",
		Short: "Fractional-reserve deposit creation across a chain of banks",
		Example: `  mathmodels reserve --deposit 1000 --banks 50 --ratio 0.1
  mathmodels reserve -f csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			rc := r.cfg.Reserve
			set := cmd.Flags().Changed
			if set("deposit") {
				rc.InitialDeposit = deposit
			}
			if set("banks") {
				rc.Banks = banks
			}
			if set("ratio") {
				rc.Ratio = ratio
			}

			res, err := rc.Reserve()
			if err != nil {
				return r.fail(cmd, err)
			}
			rep := render.NewReserveReport(res)
			r.log.Info("deposits computed", "banks", res.Banks, "multiplier", rep.Multiplier)

			return r.emit(cmd, rep)
		},
	}

	f := c.Flags()
	f.Float64Var(&deposit, "deposit", 0, "initial deposit d₀")
	f.IntVar(&banks, "banks", 0, "number of banks after the first")
	f.Float64Var(&ratio, "ratio", 0, "reserve ratio r in (0, 1]")

	return c
}
