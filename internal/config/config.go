// SPDX-License-Identifier: MIT

// Package config loads CLI scenario files. TOML is the default format;
// files ending in .yaml or .yml are decoded as YAML. Fields missing from a
// file keep the classroom defaults returned by Default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mathmodels/banking"
	"github.com/katalvlaran/mathmodels/consumer"
	"github.com/katalvlaran/mathmodels/internal/logging"
	"github.com/katalvlaran/mathmodels/leontief"
	"github.com/katalvlaran/mathmodels/lotka"
)

// Output formats accepted by General.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Config holds a complete scenario: one section per model plus general
// settings.
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Leontief LeontiefConfig `toml:"leontief" yaml:"leontief"`
	Lotka    LotkaConfig    `toml:"lotka" yaml:"lotka"`
	Consumer ConsumerConfig `toml:"consumer" yaml:"consumer"`
	Reserve  ReserveConfig  `toml:"reserve" yaml:"reserve"`
}

// GeneralConfig holds logging and output settings.
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	Format    string `toml:"format" yaml:"format"`
}

// LeontiefConfig selects a preset economy or supplies a custom table.
// A non-empty Coefficients overrides Preset.
type LeontiefConfig struct {
	Preset          string      `toml:"preset" yaml:"preset"`
	Sectors         []string    `toml:"sectors" yaml:"sectors"`
	Demand          []float64   `toml:"demand" yaml:"demand"`
	Coefficients    [][]float64 `toml:"coefficients,omitempty" yaml:"coefficients,omitempty"`
	CheckProductive bool        `toml:"check_productive" yaml:"check_productive"`
}

// SpeciesConfig describes one population of the predator-prey model.
type SpeciesConfig struct {
	Name       string  `toml:"name" yaml:"name"`
	Color      string  `toml:"color" yaml:"color"`
	Population float64 `toml:"population" yaml:"population"`
	GrowthRate float64 `toml:"growth_rate" yaml:"growth_rate"`
	DeathRate  float64 `toml:"death_rate" yaml:"death_rate"`
}

// LotkaConfig holds the predator-prey scenario.
type LotkaConfig struct {
	Prey       SpeciesConfig `toml:"prey" yaml:"prey"`
	Predator   SpeciesConfig `toml:"predator" yaml:"predator"`
	Duration   float64       `toml:"duration" yaml:"duration"`
	Step       float64       `toml:"step" yaml:"step"`
	Integrator string        `toml:"integrator" yaml:"integrator"`
	Samples    int           `toml:"samples" yaml:"samples"`
}

// ItemConfig describes one consumer good.
type ItemConfig struct {
	Name  string  `toml:"name" yaml:"name"`
	Color string  `toml:"color" yaml:"color"`
	Price float64 `toml:"price" yaml:"price"`
}

// ConsumerConfig holds the two-good consumer scenario.
type ConsumerConfig struct {
	First  ItemConfig `toml:"first" yaml:"first"`
	Second ItemConfig `toml:"second" yaml:"second"`
	Budget float64    `toml:"budget" yaml:"budget"`
	Alpha  float64    `toml:"alpha" yaml:"alpha"`
	Levels []float64  `toml:"levels" yaml:"levels"`
	Points int        `toml:"points" yaml:"points"`
}

// ReserveConfig holds the fractional-reserve scenario.
type ReserveConfig struct {
	InitialDeposit float64 `toml:"initial_deposit" yaml:"initial_deposit"`
	Banks          int     `toml:"banks" yaml:"banks"`
	Ratio          float64 `toml:"ratio" yaml:"ratio"`
}

// Default returns the classroom scenario.
func Default() *Config {
	demand := make([]float64, len(leontief.DefaultSectorNames))
	for i := range demand {
		demand[i] = leontief.DefaultDemand
	}

	return &Config{
		General: GeneralConfig{
			LogLevel:  "info",
			LogFormat: "text",
			Format:    FormatText,
		},
		Leontief: LeontiefConfig{
			Preset:  "A",
			Sectors: append([]string(nil), leontief.DefaultSectorNames...),
			Demand:  demand,
		},
		Lotka: LotkaConfig{
			Prey: SpeciesConfig{
				Name: "Flying Squirrel", Color: "#ff9f43",
				Population: 3, GrowthRate: 2.5, DeathRate: 1.3333,
			},
			Predator: SpeciesConfig{
				Name: "Spotted Owl", Color: "#576574",
				Population: 5, GrowthRate: 1.0, DeathRate: 1.0,
			},
			Duration:   30,
			Step:       lotka.DefaultStep,
			Integrator: lotka.Euler.String(),
			Samples:    40,
		},
		Consumer: ConsumerConfig{
			First:  ItemConfig{Name: "Apple", Color: "#ee5253", Price: 2},
			Second: ItemConfig{Name: "Banana", Color: "#fad390", Price: 1},
			Budget: 20,
			Alpha:  consumer.DefaultAlpha,
			Levels: consumer.DefaultLevels(),
			Points: consumer.DefaultPoints,
		},
		Reserve: ReserveConfig{
			InitialDeposit: 500,
			Banks:          400,
			Ratio:          0.05,
		},
	}
}

// Load reads a scenario file over Default and validates the result.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	path = os.ExpandEnv(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = Decode(data, FormatYAML, cfg)
	default:
		err = Decode(data, FormatTOML, cfg)
	}
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Scenario file encodings.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Decode parses data in the given encoding over cfg.
func Decode(data []byte, encoding string, cfg *Config) error {
	switch encoding {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return fmt.Errorf("failed to parse config: unknown key %q", undec[0].String())
		}
	default:
		return fmt.Errorf("unknown config encoding %q", encoding)
	}

	return nil
}

// Encode writes cfg in the given encoding. Used by the config command.
func Encode(cfg *Config, encoding string) ([]byte, error) {
	var buf bytes.Buffer
	switch encoding {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown config encoding %q", encoding)
	}

	return buf.Bytes(), nil
}

// Validate checks general settings and every model section by building the
// model objects they describe.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.General.LogLevel); err != nil {
		return fmt.Errorf("general.log_level: %w", err)
	}
	switch strings.ToLower(c.General.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("general.log_format: %q (want text or json)", c.General.LogFormat)
	}
	switch c.General.Format {
	case FormatText, FormatJSON, FormatCSV:
	default:
		return fmt.Errorf("general.format: %q (want text, json or csv)", c.General.Format)
	}

	if _, err := c.Leontief.Economy(); err != nil {
		return fmt.Errorf("leontief: %w", err)
	}
	if _, _, err := c.Lotka.Params(); err != nil {
		return fmt.Errorf("lotka: %w", err)
	}
	if c.Lotka.Samples < 0 {
		return fmt.Errorf("lotka.samples: %d must be >= 0", c.Lotka.Samples)
	}
	cons, err := c.Consumer.Consumer()
	if err != nil {
		return fmt.Errorf("consumer: %w", err)
	}
	if _, err = cons.IndifferenceCurves(c.Consumer.Alpha, c.Consumer.Levels, c.Consumer.Points); err != nil {
		return fmt.Errorf("consumer: %w", err)
	}
	if _, err := c.Reserve.Reserve(); err != nil {
		return fmt.Errorf("reserve: %w", err)
	}

	return nil
}

// Economy builds the configured economy. Custom coefficients take
// precedence over the preset; sector names default to "S1", "S2", ...
// when fewer names than rows are given.
func (l LeontiefConfig) Economy() (*leontief.Economy, error) {
	var opts []leontief.Option
	if l.CheckProductive {
		opts = append(opts, leontief.WithProductiveCheck())
	}
	if len(l.Coefficients) == 0 {
		return leontief.Preset(l.Preset, l.Demand, opts...)
	}

	n := len(l.Coefficients)
	if len(l.Demand) != n {
		return nil, fmt.Errorf("%d demand values for %d sectors: %w", len(l.Demand), n, leontief.ErrShape)
	}
	sectors := make([]leontief.Sector, n)
	for i := range sectors {
		name := fmt.Sprintf("S%d", i+1)
		if i < len(l.Sectors) && l.Sectors[i] != "" {
			name = l.Sectors[i]
		}
		sectors[i] = leontief.Sector{Name: name, Demand: l.Demand[i]}
	}

	return leontief.NewEconomy(l.Coefficients, sectors, opts...)
}

// Species returns the configured prey and predator.
func (l LotkaConfig) Species() (prey, predator lotka.Species) {
	return toSpecies(l.Prey), toSpecies(l.Predator)
}

// Params maps the scenario onto simulation parameters and the integrator.
func (l LotkaConfig) Params() (lotka.Params, lotka.Integrator, error) {
	prey, predator := l.Species()
	p := lotka.NewParams(prey, predator, l.Duration, l.Step)
	if err := p.Validate(); err != nil {
		return p, lotka.Euler, err
	}
	in, err := lotka.ParseIntegrator(l.Integrator)
	if err != nil {
		return p, lotka.Euler, err
	}

	return p, in, nil
}

func toSpecies(s SpeciesConfig) lotka.Species {
	return lotka.Species{
		Name:       s.Name,
		Population: s.Population,
		GrowthRate: s.GrowthRate,
		DeathRate:  s.DeathRate,
		Color:      s.Color,
	}
}

// Consumer builds the configured consumer.
func (c ConsumerConfig) Consumer() (*consumer.Consumer, error) {
	return consumer.NewConsumer(
		consumer.Item{Name: c.First.Name, Color: c.First.Color, Price: c.First.Price},
		consumer.Item{Name: c.Second.Name, Color: c.Second.Color, Price: c.Second.Price},
		c.Budget,
	)
}

// Reserve builds the configured banking chain.
func (r ReserveConfig) Reserve() (*banking.Reserve, error) {
	return banking.NewReserve(r.InitialDeposit, r.Banks, r.Ratio)
}
