package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ─── Chrome palette (rebuilt by applyTheme) ──────────────────────────────────
//
// Widget colors (cost components, fact categories, pipeline stages) are fixed
// in core and do not follow the theme.

var (
	colorBase     lipgloss.Color
	colorSurface0 lipgloss.Color
	colorSurface1 lipgloss.Color
	colorText     lipgloss.Color
	colorSubtext  lipgloss.Color
	colorDim      lipgloss.Color
	colorAccent   lipgloss.Color
	colorLavender lipgloss.Color
	colorGreen    lipgloss.Color
	colorYellow   lipgloss.Color
	colorRed      lipgloss.Color
)

var (
	headerStyle        lipgloss.Style
	headerBrandStyle   lipgloss.Style
	sectionHeaderStyle lipgloss.Style
	helpStyle          lipgloss.Style
	helpKeyStyle       lipgloss.Style
	labelStyle         lipgloss.Style
	valueStyle         lipgloss.Style
	dimStyle           lipgloss.Style
	errorStyle         lipgloss.Style

	tabActiveStyle   lipgloss.Style
	tabInactiveStyle lipgloss.Style

	// Cards on the memory list and the pipeline board
	cardStyle         lipgloss.Style
	cardSelectedStyle lipgloss.Style
	placeholderStyle  lipgloss.Style

	// Category badge / source tag pills
	badgeStyle   lipgloss.Style
	metaTagStyle lipgloss.Style
	countBadge   lipgloss.Style
)

func applyTheme(t Theme) {
	colorBase = t.Base
	colorSurface0 = t.Surface0
	colorSurface1 = t.Surface1
	colorText = t.Text
	colorSubtext = t.Subtext
	colorDim = t.Dim
	colorAccent = t.Accent
	colorLavender = t.Lavender
	colorGreen = t.Green
	colorYellow = t.Yellow
	colorRed = t.Red

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
	headerBrandStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
	helpStyle = lipgloss.NewStyle().Foreground(colorDim)
	helpKeyStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(colorSubtext)
	valueStyle = lipgloss.NewStyle().Foreground(colorText)
	dimStyle = lipgloss.NewStyle().Foreground(colorDim)
	errorStyle = lipgloss.NewStyle().Foreground(colorRed).Bold(true)

	tabActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorLavender).
		Background(colorSurface0).
		Padding(0, 1)
	tabInactiveStyle = lipgloss.NewStyle().
		Foreground(colorDim).
		Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSurface1).
		Padding(0, 1)
	cardSelectedStyle = cardStyle.
		BorderForeground(colorAccent)
	placeholderStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(colorSurface1).
		Foreground(colorDim).
		Italic(true).
		Padding(0, 1)

	badgeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorBase).
		Padding(0, 1)
	metaTagStyle = lipgloss.NewStyle().
		Foreground(colorSubtext).
		Background(colorSurface0).
		Padding(0, 1)
	countBadge = lipgloss.NewStyle().
		Foreground(colorText).
		Background(colorSurface1).
		Padding(0, 1)
}

// categoryBadge renders a filled pill in a fixed widget color.
func categoryBadge(label, color string) string {
	return badgeStyle.Background(lipgloss.Color(color)).Render(label)
}

func colorDot(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
}

func formatUSD(n float64) string {
	if n == 0 {
		return "$0"
	}
	if n >= 1000 {
		return fmt.Sprintf("$%.0f", n)
	}
	return fmt.Sprintf("$%.2f", n)
}
