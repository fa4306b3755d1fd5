package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/janekbaraniewski/opsboard/internal/core"
)

const minFactCardW = 24

// RenderFactList renders one card per fact in input order, or the placeholder
// message alone when there are none.
func RenderFactList(facts []core.Fact, width int) string {
	if len(facts) == 0 {
		return dimStyle.Render(core.NoFactsMessage)
	}

	cardW := max(minFactCardW, width-costChartInset)
	rows := core.BuildFactRows(facts)
	cards := make([]string, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, renderFactCard(row, cardW))
	}
	return strings.Join(cards, "\n")
}

func renderFactCard(row core.FactRow, w int) string {
	innerW := w - 4 // border + padding

	var lines []string
	lines = append(lines, valueStyle.Width(innerW).Render(row.Content))

	meta := categoryBadge(row.CategoryLabel, row.CategoryColor) + "  " +
		confidenceStyle(row.Percent).Render(row.ConfidenceLabel())
	lines = append(lines, meta)

	if row.Provenance != "" {
		lines = append(lines, dimStyle.Render(ansi.Truncate(row.Provenance, innerW, "…")))
	}
	return cardStyle.Width(w - 2).Render(strings.Join(lines, "\n"))
}

func confidenceStyle(pct int) lipgloss.Style {
	switch {
	case pct >= 80:
		return labelStyle.Foreground(colorGreen)
	case pct >= 50:
		return labelStyle.Foreground(colorYellow)
	default:
		return labelStyle.Foreground(colorRed)
	}
}

func factListHeader(n int) string {
	noun := "facts"
	if n == 1 {
		noun = "fact"
	}
	return "  " + sectionHeaderStyle.Render("Memory") + dimStyle.Render(fmt.Sprintf("  %d %s", n, noun))
}
