// SPDX-License-Identifier: MIT

package leontief_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathmodels/leontief"
	"github.com/katalvlaran/mathmodels/matrix"
)

func sectors(demand ...float64) []leontief.Sector {
	out := make([]leontief.Sector, len(demand))
	for i, d := range demand {
		out[i] = leontief.Sector{Name: string(rune('A' + i)), Demand: d}
	}

	return out
}

func TestEquilibrium_NearZeroMatrixReturnsDemand(t *testing.T) {
	t.Parallel()

	const eps = 1e-12
	coeffs := [][]float64{
		{eps, eps, 0},
		{0, eps, eps},
		{eps, 0, eps},
	}
	e, err := leontief.NewEconomy(coeffs, sectors(5, 12.5, 40))
	require.NoError(t, err)

	res, err := e.Equilibrium()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Sectors)
	assert.InDeltaSlice(t, []float64{5, 12.5, 40}, res.Production, 1e-9)
}

func TestEquilibrium_OneSectorClosedForm(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		a, d float64
		want float64
	}{
		{"half", 0.5, 10, 20.0},
		{"zero", 0, 7, 7.0},
		{"quarter", 0.25, 3, 4.0},
		{"rounded", 0.7, 1, 3.33},
	} {
		t.Run(tc.name, func(t *testing.T) {
			x, err := leontief.EquilibriumProduction([][]float64{{tc.a}}, []float64{tc.d})
			require.NoError(t, err)
			require.Len(t, x, 1)
			assert.Equal(t, tc.want, x[0])
		})
	}
}

func TestEquilibrium_Presets(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		want []float64
	}{
		{"A", []float64{36.78, 21.84, 17.24}},
		{"B", []float64{31.53, 23.98, 17.23}},
		{"Economy C", []float64{30.43, 167.44, 31.95}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			e, err := leontief.Preset(tc.name, []float64{10, 10, 10})
			require.NoError(t, err)
			res, err := e.Equilibrium()
			require.NoError(t, err)
			assert.Equal(t, leontief.DefaultSectorNames, res.Sectors)
			assert.Equal(t, tc.want, res.Production)
		})
	}
}

func TestEquilibrium_IdempotentBitIdentical(t *testing.T) {
	t.Parallel()

	e, err := leontief.Preset("C", []float64{17, 3, 88})
	require.NoError(t, err)

	first, err := e.RawEquilibrium()
	require.NoError(t, err)
	second, err := e.RawEquilibrium()
	require.NoError(t, err)
	for i := range first {
		assert.Equal(t, math.Float64bits(first[i]), math.Float64bits(second[i]))
	}

	r1, err := e.Equilibrium()
	require.NoError(t, err)
	r2, err := e.Equilibrium()
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
	for i := range first {
		assert.Equal(t, math.Round(first[i]*100)/100, r1.Production[i])
	}
}

func TestEquilibrium_SingularIdentity(t *testing.T) {
	t.Parallel()

	identity := [][]float64{{1, 0}, {0, 1}}
	e, err := leontief.NewEconomy(identity, sectors(1, 1))
	require.NoError(t, err, "construction trusts the caller's matrix")

	_, err = e.Equilibrium()
	require.Error(t, err)
	assert.ErrorIs(t, err, leontief.ErrSingularEconomy)
	assert.ErrorIs(t, err, matrix.ErrSingular)

	_, err = e.Multipliers()
	assert.ErrorIs(t, err, leontief.ErrSingularEconomy)
}

func TestEquilibrium_NearSingular(t *testing.T) {
	t.Parallel()

	// Column sums one up to 1e-15: I − A is numerically singular.
	coeffs := [][]float64{{0.5, 0.5}, {0.5, 0.5 - 1e-15}}
	_, err := leontief.EquilibriumProduction(coeffs, []float64{1, 1})
	require.ErrorIs(t, err, leontief.ErrSingularEconomy)
}

func TestNewEconomy_Validation(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		coeffs  [][]float64
		sectors []leontief.Sector
		want    error
	}{
		{"empty", nil, nil, leontief.ErrEmptyEconomy},
		{"row count", [][]float64{{0.1}}, sectors(1, 1), leontief.ErrShape},
		{"ragged", [][]float64{{0.1, 0.2}, {0.1}}, sectors(1, 1), leontief.ErrShape},
		{"negative coeff", [][]float64{{-0.1}}, sectors(1), leontief.ErrInvalidCoefficient},
		{"NaN coeff", [][]float64{{math.NaN()}}, sectors(1), leontief.ErrInvalidCoefficient},
		{"negative demand", [][]float64{{0.1}}, sectors(-1), leontief.ErrInvalidDemand},
		{"Inf demand", [][]float64{{0.1}}, sectors(math.Inf(1)), leontief.ErrInvalidDemand},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := leontief.NewEconomy(tc.coeffs, tc.sectors)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSolve_LabelMismatch(t *testing.T) {
	t.Parallel()

	_, err := leontief.Solve([][]float64{{0.1}}, []float64{1}, []string{"a", "b"})
	require.ErrorIs(t, err, leontief.ErrShape)

	res, err := leontief.Solve([][]float64{{0.5}}, []float64{10}, []string{"Grain"})
	require.NoError(t, err)
	assert.Equal(t, leontief.Result{Sectors: []string{"Grain"}, Production: []float64{20}}, res)
}

func TestWithProductiveCheck(t *testing.T) {
	t.Parallel()

	// Column 0 sums to 1.1: the economy consumes more than sector 0 produces.
	coeffs := [][]float64{{0.6, 0.1}, {0.5, 0.1}}
	_, err := leontief.NewEconomy(coeffs, sectors(1, 1))
	require.NoError(t, err)

	_, err = leontief.NewEconomy(coeffs, sectors(1, 1), leontief.WithProductiveCheck())
	require.ErrorIs(t, err, leontief.ErrUnproductive)

	for _, name := range leontief.PresetNames() {
		_, err = leontief.Preset(name, []float64{1, 1, 1}, leontief.WithProductiveCheck())
		require.NoError(t, err, name)
	}
}

func TestWithDemand(t *testing.T) {
	t.Parallel()

	base, err := leontief.Preset("A", []float64{10, 10, 10})
	require.NoError(t, err)

	doubled, err := base.WithDemand([]float64{20, 20, 20})
	require.NoError(t, err)
	res, err := doubled.Equilibrium()
	require.NoError(t, err)
	assert.Equal(t, []float64{73.56, 43.68, 34.48}, res.Production, "production is linear in demand")
	assert.Equal(t, []float64{10, 10, 10}, base.Demand(), "original economy is untouched")

	_, err = base.WithDemand([]float64{1})
	require.ErrorIs(t, err, leontief.ErrShape)
}

func TestMultipliers(t *testing.T) {
	t.Parallel()

	e, err := leontief.Preset("A", []float64{10, 10, 10})
	require.NoError(t, err)
	m, err := e.Multipliers()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2.7586206896551726, 2.7586206896551726, 2.0689655172413794}, m, 1e-12)
}

func TestCoefficientsAreCopies(t *testing.T) {
	t.Parallel()

	src := [][]float64{{0.1, 0.2}, {0.3, 0.4}}
	e, err := leontief.NewEconomy(src, sectors(1, 2))
	require.NoError(t, err)

	src[0][0] = 0.9
	got := e.Coefficients()
	assert.Equal(t, 0.1, got[0][0])
	got[1][1] = 0.0
	assert.Equal(t, 0.4, e.Coefficients()[1][1])
}

func TestPreset_Unknown(t *testing.T) {
	t.Parallel()

	_, err := leontief.Preset("Z", []float64{1, 1, 1})
	require.ErrorIs(t, err, leontief.ErrUnknownPreset)
	_, err = leontief.Preset("A", []float64{1})
	require.ErrorIs(t, err, leontief.ErrShape)
	assert.Equal(t, []string{"A", "B", "C"}, leontief.PresetNames())
}

func TestPresetCoefficients_NameForms(t *testing.T) {
	t.Parallel()

	want, err := leontief.PresetCoefficients("B")
	require.NoError(t, err)
	for _, name := range []string{"b", "Economy B", "economy b", " ECONOMY B ", "economy  b"} {
		got, err := leontief.PresetCoefficients(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err = leontief.PresetCoefficients("economyb")
	require.ErrorIs(t, err, leontief.ErrUnknownPreset)
	assert.Equal(t, "Economy B", leontief.PresetTitle(" economy b"))
}
