// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mathmodels/leontief"
)

const barWidth = 30

// LeontiefReport is an equilibrium with its inputs and diagnostics.
type LeontiefReport struct {
	Name         string          `json:"name,omitempty"`
	Result       leontief.Result `json:"result"`
	Demand       []float64       `json:"demand"`
	Coefficients [][]float64     `json:"coefficients"`
	Multipliers  []float64       `json:"multipliers,omitempty"`
	Irreducible  bool            `json:"irreducible"`
	Downstream   [][]string      `json:"downstream"`
}

// NewLeontiefReport solves e and gathers its diagnostics.
func NewLeontiefReport(name string, e *leontief.Economy) (*LeontiefReport, error) {
	res, err := e.Equilibrium()
	if err != nil {
		return nil, err
	}
	mult, err := e.Multipliers()
	if err != nil {
		return nil, err
	}
	down := make([][]string, e.Size())
	for i := range down {
		if down[i], err = e.Downstream(i); err != nil {
			return nil, err
		}
	}

	return &LeontiefReport{
		Name:         name,
		Result:       res,
		Demand:       e.Demand(),
		Coefficients: e.Coefficients(),
		Multipliers:  mult,
		Irreducible:  e.Irreducible(),
		Downstream:   down,
	}, nil
}

// Text renders a production bar chart and the technology matrix.
func (r *LeontiefReport) Text() string {
	var b strings.Builder

	title := "Leontief equilibrium"
	if r.Name != "" {
		title += ": " + r.Name
	}
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n")

	var peak float64
	for _, x := range r.Result.Production {
		if x > peak {
			peak = x
		}
	}
	rows := make([][]string, len(r.Result.Sectors))
	for i, name := range r.Result.Sectors {
		row := []string{name, fixed(r.Demand[i], 2), fixed(r.Result.Production[i], 2)}
		if len(r.Multipliers) == len(rows) {
			row = append(row, fixed(r.Multipliers[i], 3))
		} else {
			row = append(row, "-")
		}
		row = append(row, swatch(Bar(r.Result.Production[i], peak, barWidth), string(ColorAccent)))
		rows[i] = row
	}
	b.WriteString(newTable([]string{"Sector", "Demand", "Production", "Multiplier", ""}, rows).String())
	b.WriteString("\n\n")

	b.WriteString(LabelStyle.Render("Technology matrix A"))
	b.WriteString("\n")
	header := append([]string{""}, r.Result.Sectors...)
	coeffRows := make([][]string, len(r.Coefficients))
	for i, row := range r.Coefficients {
		cells := []string{r.Result.Sectors[i]}
		for _, a := range row {
			cells = append(cells, fixed(a, 2))
		}
		coeffRows[i] = cells
	}
	b.WriteString(newTable(header, coeffRows).String())
	b.WriteString("\n")

	if r.Irreducible {
		b.WriteString(OKStyle.Render("every sector depends on every other"))
	} else {
		b.WriteString(MutedStyle.Render("economy is reducible: some sectors are independent"))
		b.WriteString("\n")
		for i, name := range r.Result.Sectors {
			if i >= len(r.Downstream) {
				break
			}
			reach := "none"
			if len(r.Downstream[i]) > 0 {
				reach = strings.Join(r.Downstream[i], ", ")
			}
			fmt.Fprintf(&b, "%s %s\n", LabelStyle.Render(name+" feeds:"), reach)
		}
	}

	return b.String()
}

// Data returns the report itself.
func (r *LeontiefReport) Data() any { return r }

// Table returns one row per sector.
func (r *LeontiefReport) Table() ([]string, [][]string) {
	rows := make([][]string, len(r.Result.Sectors))
	for i, name := range r.Result.Sectors {
		mult := ""
		if len(r.Multipliers) == len(rows) {
			mult = num(r.Multipliers[i])
		}
		rows[i] = []string{name, num(r.Demand[i]), num(r.Result.Production[i]), mult}
	}

	return []string{"sector", "demand", "production", "multiplier"}, rows
}

// String implements fmt.Stringer with a one-line summary.
func (r *LeontiefReport) String() string {
	parts := make([]string, len(r.Result.Sectors))
	for i, name := range r.Result.Sectors {
		parts[i] = fmt.Sprintf("%s=%.2f", name, r.Result.Production[i])
	}

	return strings.Join(parts, " ")
}
