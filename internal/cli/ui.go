package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // teal - headings
	colorGreen = lipgloss.Color("35")  // green - positive verdicts
	colorRed   = lipgloss.Color("167") // soft red - negative verdicts
	colorGray  = lipgloss.Color("245") // gray - labels
	colorWhite = lipgloss.Color("255") // bright white - values
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel   = lipgloss.NewStyle().Foreground(colorGray)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleGood    = lipgloss.NewStyle().Foreground(colorGreen)
	styleBad     = lipgloss.NewStyle().Foreground(colorRed)
	labelPadding = 24
)

// title renders a section heading.
func title(s string) string {
	return styleTitle.Render(s)
}

// row renders one aligned "label: value" line.
func row(label string, value any) string {
	padded := label + strings.Repeat(" ", max(0, labelPadding-len(label)))
	return fmt.Sprintf("  %s %s", styleLabel.Render(padded), styleValue.Render(fmt.Sprint(value)))
}

// verdict renders a boolean outcome in green or red.
func verdict(label string, ok bool, yes, no string) string {
	padded := label + strings.Repeat(" ", max(0, labelPadding-len(label)))
	v := styleGood.Render(yes)
	if !ok {
		v = styleBad.Render(no)
	}
	return fmt.Sprintf("  %s %s", styleLabel.Render(padded), v)
}
