// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/mathmodels/banking"
)

// reserveMilestones is the number of intervals shown in the deposit table.
const reserveMilestones = 10

// ReserveReport is the deposit growth along a chain of banks.
type ReserveReport struct {
	Reserve    *banking.Reserve `json:"reserve"`
	Deposits   []float64        `json:"cumulative_deposits"`
	Multiplier float64          `json:"multiplier"`
	Limit      float64          `json:"limit"`
}

// NewReserveReport computes the cumulative deposits of r.
func NewReserveReport(r *banking.Reserve) *ReserveReport {
	return &ReserveReport{
		Reserve:    r,
		Deposits:   r.CumulativeDeposits(),
		Multiplier: r.Multiplier(),
		Limit:      r.TotalDepositsLimit(),
	}
}

// Text renders a deposit sparkline and a milestone table with bars.
func (r *ReserveReport) Text() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Fractional Reserve Banking"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %g   %s %d   %s %g\n",
		LabelStyle.Render("initial deposit"), r.Reserve.InitialDeposit,
		LabelStyle.Render("banks"), r.Reserve.Banks,
		LabelStyle.Render("reserve ratio"), r.Reserve.Ratio)

	spark := r.Deposits
	if len(spark) > sparkWidth {
		idx := milestones(len(spark), sparkWidth-1)
		spark = make([]float64, len(idx))
		for i, j := range idx {
			spark[i] = r.Deposits[j]
		}
	}
	b.WriteString(swatch(Sparkline(spark), string(ColorAccent)))
	b.WriteString("\n")

	rows := make([][]string, 0, reserveMilestones+1)
	for _, i := range milestones(len(r.Deposits), reserveMilestones) {
		rows = append(rows, []string{
			strconv.Itoa(i),
			fixed(r.Deposits[i], 2),
			swatch(Bar(r.Deposits[i], r.Limit, barWidth), string(ColorAccent)),
		})
	}
	b.WriteString(newTable([]string{"Bank", "Total deposits", ""}, rows).String())
	b.WriteString("\n")
	b.WriteString(OKStyle.Render(fmt.Sprintf("money multiplier: %g, deposit limit: %.2f", r.Multiplier, r.Limit)))

	return b.String()
}

// Data returns the report itself.
func (r *ReserveReport) Data() any { return r }

// Table returns one (bank, total_deposits) row per bank.
func (r *ReserveReport) Table() ([]string, [][]string) {
	rows := make([][]string, len(r.Deposits))
	for i, d := range r.Deposits {
		rows[i] = []string{strconv.Itoa(i), num(d)}
	}

	return []string{"bank", "total_deposits"}, rows
}
