// SPDX-License-Identifier: MIT

package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var sparkTicks = []rune("▁▂▃▄▅▆▇█")

// Sparkline maps values onto eight block heights between their min and max.
// Non-finite values render as a space; a flat series renders mid-height.
func Sparkline(values []float64) string {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	var b strings.Builder
	top := len(sparkTicks) - 1
	for _, v := range values {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			b.WriteRune(' ')
		case hi == lo:
			b.WriteRune(sparkTicks[top/2])
		default:
			// halved so hi-lo cannot overflow on near-divergent series
			idx := int(math.Round((v/2 - lo/2) / (hi/2 - lo/2) * float64(top)))
			b.WriteRune(sparkTicks[max(0, min(top, idx))])
		}
	}

	return b.String()
}

// Bar returns a horizontal bar of width proportional to v/peak, at most
// width cells. Non-positive or non-finite inputs give an empty bar.
func Bar(v, peak float64, width int) string {
	if !(v > 0) || !(peak > 0) || math.IsInf(v, 0) || math.IsInf(peak, 0) || width <= 0 {
		return ""
	}
	n := int(math.Round(v / peak * float64(width)))
	if n > width {
		n = width
	}

	return strings.Repeat("█", n)
}

// newTable builds a bordered table with bold headers.
func newTable(headers []string, rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderCellStyle
			}
			return CellStyle
		})
}

// milestones returns up to k+1 evenly spaced indices over [0, n), always
// including 0 and n-1.
func milestones(n, k int) []int {
	if n <= 0 {
		return nil
	}
	if k <= 0 || k >= n-1 {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	out := make([]int, 0, k+1)
	last := -1
	for i := 0; i <= k; i++ {
		idx := int(math.Round(float64(i) * float64(n-1) / float64(k)))
		if idx != last {
			out = append(out, idx)
			last = idx
		}
	}

	return out
}
