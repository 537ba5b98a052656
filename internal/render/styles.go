// SPDX-License-Identifier: MIT

package render

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all charts.
var (
	ColorInk     = lipgloss.Color("#222f3e") // budget line, borders
	ColorSlate   = lipgloss.Color("#576574") // indifference curves
	ColorAccent  = lipgloss.Color("#ff9f43") // bars
	ColorMuted   = lipgloss.Color("#8395a7")
	ColorSuccess = lipgloss.Color("#10ac84")
	ColorWarning = lipgloss.Color("#ee5253")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	OKStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	WarnStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	BorderStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HeaderCellStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// colorOr returns hex as a lipgloss color, or fallback when hex is empty.
func colorOr(hex string, fallback lipgloss.Color) lipgloss.Color {
	if hex == "" {
		return fallback
	}

	return lipgloss.Color(hex)
}

// swatch renders s in the given hex color, bold.
func swatch(s, hex string) string {
	return lipgloss.NewStyle().Foreground(colorOr(hex, ColorInk)).Bold(true).Render(s)
}
