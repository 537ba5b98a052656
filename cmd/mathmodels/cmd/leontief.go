// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathmodels/internal/render"
	"github.com/katalvlaran/mathmodels/leontief"
)

func newLeontiefCmd(flags *rootFlags) *cobra.Command {
	var (
		preset          string
		demand          []float64
		checkProductive bool
		list            bool
	)

	c := &cobra.Command{
		Use:   "leontief",
		Short: "Solve an input-output economy for equilibrium production",
		Long: `Solves (I − A)X = D for the production X each sector must supply so
that inter-sector consumption A·X plus external demand D is met.

Presets A, B and C use the sectors Mining, Lumber and Energy.`,
		Example: `  mathmodels leontief --preset B --demand 10,20,5
  mathmodels leontief --list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, name := range leontief.PresetNames() {
					fmt.Fprintf(cmd.OutOrStdout(), "Economy %s\n", name)
				}
				return nil
			}

			r, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			lc := r.cfg.Leontief
			if cmd.Flags().Changed("preset") {
				lc.Preset = preset
				lc.Coefficients = nil
			}
			if cmd.Flags().Changed("check-productive") {
				lc.CheckProductive = checkProductive
			}

			e, err := lc.Economy()
			if err != nil {
				return r.fail(cmd, err)
			}
			if cmd.Flags().Changed("demand") {
				if e, err = e.WithDemand(demand); err != nil {
					return r.fail(cmd, err)
				}
			}
			name := "custom"
			if len(lc.Coefficients) == 0 {
				name = leontief.PresetTitle(lc.Preset)
			}
			r.log.Debug("economy built", "name", name, "sectors", e.Size())

			rep, err := render.NewLeontiefReport(name, e)
			if err != nil {
				return r.fail(cmd, err)
			}
			r.log.Info("equilibrium solved", "name", name, "production", rep.String())

			return r.emit(cmd, rep)
		},
	}

	c.Flags().StringVarP(&preset, "preset", "p", "A", "preset economy: A, B or C")
	c.Flags().Float64SliceVarP(&demand, "demand", "d", nil, "external demand per sector, comma separated")
	c.Flags().BoolVar(&checkProductive, "check-productive", false, "reject economies whose column sums reach 1")
	c.Flags().BoolVar(&list, "list", false, "list preset economies and exit")

	return c
}
