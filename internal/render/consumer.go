// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mathmodels/consumer"
)

// curveProbes is the number of x₁ positions shown per indifference curve.
const curveProbes = 5

// ConsumerReport is a budget constraint with its indifference map.
type ConsumerReport struct {
	Consumer *consumer.Consumer  `json:"consumer"`
	Alpha    float64             `json:"alpha"`
	Line     consumer.BudgetLine `json:"budget_line"`
	Optimal  consumer.Bundle     `json:"optimal"`
	Curves   []consumer.Curve    `json:"curves"`
}

// NewConsumerReport computes the budget line, the optimum and the curves.
func NewConsumerReport(c *consumer.Consumer, alpha float64, levels []float64, points int) (*ConsumerReport, error) {
	opt, err := c.OptimalBundle(alpha)
	if err != nil {
		return nil, err
	}
	curves, err := c.IndifferenceCurves(alpha, levels, points)
	if err != nil {
		return nil, err
	}

	return &ConsumerReport{
		Consumer: c,
		Alpha:    alpha,
		Line:     c.BudgetLine(),
		Optimal:  opt,
		Curves:   curves,
	}, nil
}

// Text renders the constraint, the optimum, and each curve at a few x₁ probes.
func (r *ConsumerReport) Text() string {
	var b strings.Builder
	first, second := r.Consumer.First, r.Consumer.Second

	b.WriteString(TitleStyle.Render(fmt.Sprintf("Budget Constraint & Indifference Curve: %ss and %ss", first.Name, second.Name)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s at %g, %s at %g, budget %g\n",
		swatch(first.Name, first.Color), first.Price,
		swatch(second.Name, second.Color), second.Price,
		r.Consumer.Budget)
	fmt.Fprintf(&b, "%s %s ≤ %s, %s ≤ %s\n\n",
		LabelStyle.Render("budget line:"),
		first.Name, fixed(r.Line.FirstMax, 2),
		second.Name, fixed(r.Line.SecondMax, 2))

	if len(r.Curves) > 0 {
		probes := milestones(len(r.Curves[0].First), curveProbes-1)
		header := []string{"utility"}
		for _, i := range probes {
			header = append(header, fmt.Sprintf("%s=%s", first.Name, fixed(r.Curves[0].First[i], 1)))
		}
		rows := make([][]string, len(r.Curves))
		for k, cv := range r.Curves {
			row := []string{fixed(cv.Level, 1)}
			for _, i := range probes {
				row = append(row, fixed(cv.Second[i], 2))
			}
			rows[k] = row
		}
		b.WriteString(swatch(fmt.Sprintf("Indifference (α=%.3f), %s quantity on each curve", r.Alpha, second.Name), string(ColorSlate)))
		b.WriteString("\n")
		b.WriteString(newTable(header, rows).String())
		b.WriteString("\n")
	}

	b.WriteString(OKStyle.Render(fmt.Sprintf("optimal bundle: %.2f %ss, %.2f %ss (utility %.3f)",
		r.Optimal.First, first.Name, r.Optimal.Second, second.Name, r.Optimal.Utility)))

	return b.String()
}

// Data returns the report itself.
func (r *ConsumerReport) Data() any { return r }

// Table returns the budget line endpoints and every curve sample as
// (series, level, first, second) rows.
func (r *ConsumerReport) Table() ([]string, [][]string) {
	rows := [][]string{
		{"budget", "", "0", num(r.Line.SecondMax)},
		{"budget", "", num(r.Line.FirstMax), "0"},
		{"optimal", num(r.Optimal.Utility), num(r.Optimal.First), num(r.Optimal.Second)},
	}
	for _, cv := range r.Curves {
		for i := range cv.First {
			rows = append(rows, []string{"indifference", num(cv.Level), num(cv.First[i]), num(cv.Second[i])})
		}
	}

	return []string{"series", "level", "first", "second"}, rows
}
