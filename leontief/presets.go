// SPDX-License-Identifier: MIT

package leontief

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultSectorNames are the three sectors of the classroom economies.
var DefaultSectorNames = []string{"Mining", "Lumber", "Energy"}

// DefaultDemand is the starting external demand per sector.
const DefaultDemand = 10.0

// presets holds the classroom economies A, B and C. Rows are purchasers,
// columns are producers ("Purchased by i", "Distribution of output by j").
var presets = map[string][][]float64{
	"A": {
		{0.45, 0.35, 0.15},
		{0.15, 0.25, 0.05},
		{0.05, 0.05, 0.25},
	},
	"B": {
		{0.40, 0.30, 0.10},
		{0.05, 0.05, 0.65},
		{0.05, 0.20, 0.05},
	},
	"C": {
		{0.10, 0.10, 0.02},
		{0.60, 0.65, 0.95},
		{0.15, 0.10, 0.02},
	},
}

// PresetNames lists the available preset economies in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for k := range presets {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

// PresetCoefficients returns a copy of the named preset table.
// Names are case-insensitive and may carry an "Economy " prefix.
func PresetCoefficients(name string) ([][]float64, error) {
	src, ok := presets[presetKey(name)]
	if !ok {
		return nil, leontiefErrorf("Preset", fmt.Errorf("%q: %w", name, ErrUnknownPreset))
	}
	out := make([][]float64, len(src))
	for i := range src {
		out[i] = append([]float64(nil), src[i]...)
	}

	return out, nil
}

// PresetTitle returns the display title of a preset name, e.g. "economy b"
// gives "Economy B".
func PresetTitle(name string) string { return "Economy " + presetKey(name) }

func presetKey(name string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(name)), "ECONOMY "))
}

// Preset builds the named economy over DefaultSectorNames with the given
// external demand (one value per sector).
func Preset(name string, demand []float64, opts ...Option) (*Economy, error) {
	coeffs, err := PresetCoefficients(name)
	if err != nil {
		return nil, err
	}
	if len(demand) != len(DefaultSectorNames) {
		return nil, leontiefErrorf("Preset",
			fmt.Errorf("%d demand values for %d sectors: %w", len(demand), len(DefaultSectorNames), ErrShape))
	}
	sectors := make([]Sector, len(DefaultSectorNames))
	for i, n := range DefaultSectorNames {
		sectors[i] = Sector{Name: n, Demand: demand[i]}
	}

	return NewEconomy(coeffs, sectors, opts...)
}
