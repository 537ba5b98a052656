// SPDX-License-Identifier: MIT

// Package cmd implements the mathmodels command line.
package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mathmodels/internal/config"
	"github.com/katalvlaran/mathmodels/internal/logging"
	"github.com/katalvlaran/mathmodels/internal/render"
)

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	cfgFile string
	verbose bool
	format  string
}

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "mathmodels",
		Short: "Classroom economics and ecology models",
		Long: `mathmodels solves small textbook models from the terminal.

Models:
  leontief  - input-output equilibrium production (I − A)X = D
  lotka     - Lotka-Volterra predator-prey simulation
  consumer  - budget constraint and Cobb–Douglas indifference curves
  reserve   - fractional-reserve deposit creation

Scenario values come from --config (TOML, or YAML for .yaml/.yml files);
command flags override them.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.cfgFile, "config", "", "scenario file (default: built-in classroom scenario)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "verbose (debug) logging")
	root.PersistentFlags().StringVarP(&flags.format, "format", "f", "", "output format: text, json or csv (default from config)")

	root.AddCommand(
		newLeontiefCmd(flags),
		newLotkaCmd(flags),
		newConsumerCmd(flags),
		newReserveCmd(flags),
		newConfigCmd(flags),
		newVersionCmd(),
	)

	return root
}

// Execute runs the command line.
func Execute() error {
	return NewRootCmd().Execute()
}

// run carries what every model command needs for one invocation.
type run struct {
	cfg    *config.Config
	log    *logging.Logger
	format render.Format
	start  time.Time
}

// setup loads the scenario, resolves the output format and creates the
// run logger tagged with a fresh request id.
func setup(cmd *cobra.Command, flags *rootFlags) (*run, error) {
	cfg, err := config.Load(flags.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	formatName := cfg.General.Format
	if flags.format != "" {
		formatName = flags.format
	}
	format, err := render.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.General.LogLevel)
	if err != nil {
		return nil, err
	}
	if flags.verbose {
		level = logging.LevelDebug
	}
	log := logging.NewLogger(logging.LoggerConfig{
		Name:   "mathmodels",
		Level:  level,
		Format: cfg.General.LogFormat,
		Output: cmd.ErrOrStderr(),
	}).WithRequestID(uuid.New().String())

	log.Debug("run started", "command", cmd.Name(), "config", flags.cfgFile, "format", string(format))

	return &run{cfg: cfg, log: log, format: format, start: time.Now()}, nil
}

// emit writes the report and logs the outcome.
func (r *run) emit(cmd *cobra.Command, rep render.Report) error {
	if err := render.Write(cmd.OutOrStdout(), r.format, rep); err != nil {
		r.log.Error("write failed", "error", err)
		return err
	}
	r.log.Info("run finished", "command", cmd.Name(), "duration", time.Since(r.start).String())

	return nil
}

// fail logs err and returns it wrapped with the command name.
func (r *run) fail(cmd *cobra.Command, err error) error {
	r.log.Error("run failed", "command", cmd.Name(), "error", err)

	return fmt.Errorf("%s: %w", cmd.Name(), err)
}
