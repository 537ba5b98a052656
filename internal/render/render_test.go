// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathmodels/banking"
	"github.com/katalvlaran/mathmodels/consumer"
	"github.com/katalvlaran/mathmodels/leontief"
	"github.com/katalvlaran/mathmodels/lotka"
)

func TestSparkline(t *testing.T) {
	assert.Equal(t, "▁▅█", Sparkline([]float64{0, 0.5, 1}))
	assert.Equal(t, "▄▄▄", Sparkline([]float64{2, 2, 2}))
	assert.Equal(t, "▁ █", Sparkline([]float64{1, math.NaN(), 3}))
	assert.Equal(t, "", Sparkline(nil))
	assert.Equal(t, "▁█ ", Sparkline([]float64{-math.MaxFloat64, math.MaxFloat64, math.Inf(1)}))
}

func TestBar(t *testing.T) {
	assert.Equal(t, "█████", Bar(5, 10, 10))
	assert.Equal(t, "██████████", Bar(20, 10, 10))
	assert.Equal(t, "", Bar(0, 10, 10))
	assert.Equal(t, "", Bar(1, 0, 10))
	assert.Equal(t, "", Bar(math.Inf(1), 10, 10))
}

func TestMilestones(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, milestones(3, 10))
	assert.Equal(t, []int{0, 5, 10}, milestones(11, 2))
	assert.Nil(t, milestones(0, 3))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "text": FormatText, "json": FormatJSON, "csv": FormatCSV} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func presetReport(t *testing.T) *LeontiefReport {
	t.Helper()
	e, err := leontief.Preset("A", []float64{10, 10, 10})
	require.NoError(t, err)
	r, err := NewLeontiefReport("Economy A", e)
	require.NoError(t, err)

	return r
}

func TestLeontiefReport(t *testing.T) {
	r := presetReport(t)
	assert.Equal(t, "Mining=36.78 Lumber=21.84 Energy=17.24", r.String())

	var text bytes.Buffer
	require.NoError(t, Write(&text, FormatText, r))
	for _, want := range []string{"Economy A", "Mining", "36.78", "Technology matrix A", "2.759"} {
		assert.Contains(t, text.String(), want)
	}

	var js bytes.Buffer
	require.NoError(t, Write(&js, FormatJSON, r))
	var decoded struct {
		Result      leontief.Result `json:"result"`
		Irreducible bool            `json:"irreducible"`
	}
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Equal(t, []float64{36.78, 21.84, 17.24}, decoded.Result.Production)

	var out bytes.Buffer
	require.NoError(t, Write(&out, FormatCSV, r))
	records, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"sector", "demand", "production", "multiplier"}, records[0])
	assert.Equal(t, []string{"Mining", "10", "36.78"}, records[1][:3])
}

func TestLotkaReport(t *testing.T) {
	prey := lotka.Species{Name: "Flying Squirrel", Population: 3, GrowthRate: 2.5, DeathRate: 1.3333, Color: "#ff9f43"}
	predator := lotka.Species{Name: "Spotted Owl", Population: 5, GrowthRate: 1, DeathRate: 1, Color: "#576574"}
	p := lotka.NewParams(prey, predator, 5, 0.001)
	tr, err := lotka.Simulate(p)
	require.NoError(t, err)

	r := NewLotkaReport(prey, predator, p, tr, 11)
	assert.Equal(t, 5000, r.Steps)
	assert.Equal(t, 11, r.Trace.Len())
	require.NotNil(t, r.Coexist)
	assert.InDelta(t, 1.0, r.Coexist[0], 1e-12)

	text := r.Text()
	for _, want := range []string{"Spotted Owl | Population: 5", "Flying Squirrel | Population: 3", "euler, 5000 steps", "invariant drift"} {
		assert.Contains(t, text, want)
	}

	header, rows := r.Table()
	assert.Equal(t, []string{"time", "prey", "predator"}, header)
	require.Len(t, rows, 11)
	assert.Equal(t, []string{"0", "3", "5"}, rows[0])

	var js bytes.Buffer
	require.NoError(t, Write(&js, FormatJSON, r))
	var decoded struct {
		Trace struct {
			Prey []float64 `json:"prey"`
		} `json:"trace"`
		Integrator string `json:"integrator"`
	}
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Len(t, decoded.Trace.Prey, 11)
	assert.Equal(t, "euler", decoded.Integrator)
}

func TestLotkaReport_DivergingRun(t *testing.T) {
	p := lotka.Params{Prey0: 3, Predator0: 5, Alpha: 5, Beta: 0.1, Delta: 5, Gamma: 0.1, Duration: 200, Step: 1}
	tr, err := lotka.Simulate(p)
	require.NoError(t, err)
	prey := lotka.Species{Name: "Hare", Population: 3, GrowthRate: 5, DeathRate: 0.1}
	predator := lotka.Species{Name: "Lynx", Population: 5, GrowthRate: 5, DeathRate: 0.1}
	r := NewLotkaReport(prey, predator, p, tr, 11)
	require.True(t, math.IsInf(r.Summary.Final.Prey, 1))

	var text bytes.Buffer
	require.NoError(t, Write(&text, FormatText, r))
	assert.Contains(t, text.String(), "+Inf")

	var js bytes.Buffer
	require.NoError(t, Write(&js, FormatJSON, r))
	var decoded struct {
		Steps   int `json:"steps"`
		Summary struct {
			Final struct {
				Time *float64 `json:"time"`
				Prey *float64 `json:"prey"`
			} `json:"final"`
		} `json:"summary"`
		Trace struct {
			Prey []*float64 `json:"prey"`
		} `json:"trace"`
	}
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Equal(t, 200, decoded.Steps)
	require.NotNil(t, decoded.Summary.Final.Time)
	assert.Equal(t, 199.0, *decoded.Summary.Final.Time)
	assert.Nil(t, decoded.Summary.Final.Prey)
	require.Len(t, decoded.Trace.Prey, 11)
	require.NotNil(t, decoded.Trace.Prey[0])
	assert.Equal(t, 3.0, *decoded.Trace.Prey[0])
	assert.Nil(t, decoded.Trace.Prey[10])

	var out bytes.Buffer
	require.NoError(t, Write(&out, FormatCSV, r))
	records, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 12)
	assert.Equal(t, "+Inf", records[11][1])
}

func TestLeontiefReport_ReducibleShowsDownstream(t *testing.T) {
	e, err := leontief.NewEconomy(
		[][]float64{
			{0, 0, 0},
			{0.3, 0, 0},
			{0, 0.4, 0.1},
		},
		[]leontief.Sector{{Name: "Ore", Demand: 1}, {Name: "Steel", Demand: 1}, {Name: "Cars", Demand: 1}},
	)
	require.NoError(t, err)
	r, err := NewLeontiefReport("chain", e)
	require.NoError(t, err)

	assert.False(t, r.Irreducible)
	assert.Equal(t, [][]string{{"Steel", "Cars"}, {"Cars"}, {"Cars"}}, r.Downstream)
	assert.Contains(t, r.Text(), "Steel, Cars")

	var js bytes.Buffer
	require.NoError(t, Write(&js, FormatJSON, r))
	var decoded struct {
		Downstream [][]string `json:"downstream"`
	}
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Equal(t, r.Downstream, decoded.Downstream)
}

func TestConsumerReport(t *testing.T) {
	c, err := consumer.NewConsumer(
		consumer.Item{Name: "Apple", Color: "#ee5253", Price: 2},
		consumer.Item{Name: "Banana", Color: "#fad390", Price: 1},
		20,
	)
	require.NoError(t, err)
	r, err := NewConsumerReport(c, consumer.DefaultAlpha, consumer.DefaultLevels(), consumer.DefaultPoints)
	require.NoError(t, err)

	text := r.Text()
	assert.Contains(t, text, "Apples and Bananas")
	assert.Contains(t, text, "optimal bundle: 3.33 Apples, 13.33 Bananas")

	header, rows := r.Table()
	assert.Equal(t, []string{"series", "level", "first", "second"}, header)
	assert.Len(t, rows, 3+5*100)
	assert.Equal(t, []string{"budget", "", "0", "20"}, rows[0])
	assert.Equal(t, []string{"budget", "", "10", "0"}, rows[1])

	_, err = NewConsumerReport(c, 2, nil, 10)
	assert.ErrorIs(t, err, consumer.ErrInvalidAlpha)
}

func TestReserveReport(t *testing.T) {
	res, err := banking.NewReserve(500, 400, 0.05)
	require.NoError(t, err)
	r := NewReserveReport(res)

	assert.Len(t, r.Deposits, 401)
	text := r.Text()
	assert.Contains(t, text, "Fractional Reserve Banking")
	assert.Contains(t, text, "money multiplier: 20")

	header, rows := r.Table()
	assert.Equal(t, []string{"bank", "total_deposits"}, header)
	require.Len(t, rows, 401)
	assert.Equal(t, []string{"0", "500"}, rows[0])
	assert.Equal(t, []string{"1", "975"}, rows[1])
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, Format("xml"), presetReport(t)))
}
