// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathmodels/banking"
	"github.com/katalvlaran/mathmodels/consumer"
	"github.com/katalvlaran/mathmodels/leontief"
	"github.com/katalvlaran/mathmodels/lotka"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "A", cfg.Leontief.Preset)
	assert.Equal(t, []float64{10, 10, 10}, cfg.Leontief.Demand)

	p, in, err := cfg.Lotka.Params()
	require.NoError(t, err)
	assert.Equal(t, lotka.Euler, in)
	assert.Equal(t, lotka.Params{
		Prey0: 3, Predator0: 5,
		Alpha: 2.5, Beta: 1.3333, Delta: 1.0, Gamma: 1.0,
		Duration: 30, Step: 1e-4,
	}, p)

	prey, predator := cfg.Lotka.Species()
	assert.Equal(t, "Flying Squirrel", prey.Name)
	assert.Equal(t, "#576574", predator.Color)

	assert.Equal(t, 20.0, cfg.Consumer.Budget)
	assert.Equal(t, 500.0, cfg.Reserve.InitialDeposit)
	assert.Equal(t, 400, cfg.Reserve.Banks)
	assert.Equal(t, 0.05, cfg.Reserve.Ratio)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_TOMLOverridesOnlyGivenKeys(t *testing.T) {
	path := writeFile(t, "scenario.toml", `
[general]
format = "json"

[leontief]
preset = "C"

[lotka]
duration = 10
integrator = "rk4"

[lotka.predator]
population = 8

[reserve]
ratio = 0.1
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, cfg.General.Format)
	assert.Equal(t, "info", cfg.General.LogLevel)
	assert.Equal(t, "C", cfg.Leontief.Preset)
	assert.Equal(t, 10.0, cfg.Lotka.Duration)
	assert.Equal(t, 8.0, cfg.Lotka.Predator.Population)
	assert.Equal(t, "Spotted Owl", cfg.Lotka.Predator.Name)
	assert.Equal(t, 0.1, cfg.Reserve.Ratio)
	assert.Equal(t, 500.0, cfg.Reserve.InitialDeposit)

	_, in, err := cfg.Lotka.Params()
	require.NoError(t, err)
	assert.Equal(t, lotka.RK4, in)
}

func TestLoad_YAMLCustomEconomy(t *testing.T) {
	path := writeFile(t, "scenario.yaml", `
leontief:
  sectors: [Farm, Factory]
  demand: [10, 20]
  coefficients:
    - [0.5, 0]
    - [0, 0.5]
  check_productive: true
consumer:
  budget: 30
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	e, err := cfg.Leontief.Economy()
	require.NoError(t, err)
	res, err := e.Equilibrium()
	require.NoError(t, err)
	assert.Equal(t, []string{"Farm", "Factory"}, res.Sectors)
	assert.Equal(t, []float64{20, 40}, res.Production)

	c, err := cfg.Consumer.Consumer()
	require.NoError(t, err)
	assert.Equal(t, 30.0, c.Budget)
	assert.Equal(t, "Apple", c.First.Name)
}

func TestLoad_Errors(t *testing.T) {
	for _, tc := range []struct {
		name, file, content string
		want                error
	}{
		{"unknown-preset", "a.toml", "[leontief]\npreset = \"Z\"\n", leontief.ErrUnknownPreset},
		{"negative-step", "b.toml", "[lotka]\nstep = -1\n", lotka.ErrInvalidParams},
		{"bad-integrator", "c.yml", "lotka:\n  integrator: leapfrog\n", lotka.ErrInvalidParams},
		{"bad-price", "d.toml", "[consumer.first]\nprice = 0\n", consumer.ErrInvalidPrice},
		{"bad-alpha", "e.toml", "[consumer]\nalpha = 1.5\n", consumer.ErrInvalidAlpha},
		{"bad-ratio", "f.yaml", "reserve:\n  ratio: 0\n", banking.ErrInvalidRatio},
		{"demand-shape", "g.toml", "[leontief]\ndemand = [1, 2]\n", leontief.ErrShape},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tc.file, tc.content))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	for _, content := range []string{
		"[general]\nformat = \"xml\"\n",
		"[general]\nlog_level = \"loud\"\n",
		"[general]\nlog_format = \"xml\"\n",
		"[lotka]\nsamples = -1\n",
		"[nosuchsection]\nx = 1\n",
		"not toml at all ===",
	} {
		_, err := Load(writeFile(t, "bad.toml", content))
		assert.Error(t, err, content)
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncode_RoundTrip(t *testing.T) {
	for _, enc := range []string{FormatTOML, FormatYAML} {
		data, err := Encode(Default(), enc)
		require.NoError(t, err, enc)

		got := &Config{}
		require.NoError(t, Decode(data, enc, got), enc)
		assert.Equal(t, Default(), got, enc)
	}

	_, err := Encode(Default(), "ini")
	assert.Error(t, err)
	assert.Error(t, Decode(nil, "ini", Default()))
}
