// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathmodels/internal/config"
)

func newConfigCmd(flags *rootFlags) *cobra.Command {
	var encoding string

	c := &cobra.Command{
		Use:   "config",
		Short: "Print the effective scenario (defaults merged with --config)",
		Long: `Prints the scenario every model command would use. Redirect the output
to a file to start a custom scenario.`,
		Example: `  mathmodels config > scenario.toml
  mathmodels config --encoding yaml --config scenario.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			data, err := config.Encode(cfg, encoding)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
	c.Flags().StringVar(&encoding, "encoding", config.FormatTOML, "toml or yaml")

	return c
}
