package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janekbaraniewski/opsboard/internal/core"
)

// ─── Help Overlay ───────────────────────────────────────────────────────────

type keyHelp struct{ key, desc string }

var (
	screenKeys = []keyHelp{
		{"Tab / Shift+Tab", "Next / previous screen"},
		{"1 2 3", "Costs · Memory · Pipeline"},
	}
	memoryKeys = []keyHelp{
		{"↑↓ / j k", "Scroll facts"},
		{"PgUp / PgDn", "Scroll a page"},
		{"g / G", "Jump to top / bottom"},
	}
	pipelineKeys = []keyHelp{
		{"← → / h l", "Move between columns"},
		{"↑↓ / j k", "Move between cards"},
		{"⏎ Enter / click", "Open the selected lead"},
	}
	globalKeys = []keyHelp{
		{"r", "Reload data"},
		{"t", "Cycle theme"},
		{"?", "Toggle this help"},
		{"q / Ctrl+C", "Quit"},
	}
)

// renderHelpOverlay draws a centered popup with the widget legends and key
// bindings. Any key dismisses it.
func (m Model) renderHelpOverlay(screenW, screenH int) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
	headingStyle := lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	descStyle := lipgloss.NewStyle().Foreground(colorText)
	hintStyle := lipgloss.NewStyle().Foreground(colorDim).Italic(true)

	var lines []string
	section := func(title string, keys []keyHelp) {
		lines = append(lines, headingStyle.Render("  "+title), "")
		for _, k := range keys {
			lines = append(lines, "    "+keyStyle.Render(padRight(k.key, 18))+descStyle.Render(k.desc))
		}
		lines = append(lines, "")
	}

	lines = append(lines, titleStyle.Render("  opsboard Help"), "")

	lines = append(lines, headingStyle.Render("  Legend"), "")
	lines = append(lines, "    "+RenderCostLegend())
	var badges []string
	for _, cat := range core.FactCategories {
		badges = append(badges, categoryBadge(cat, core.FactCategoryColor(cat)))
	}
	lines = append(lines, "    "+strings.Join(badges, " "))
	lines = append(lines, "    "+renderPriorityDots(7)+"  "+descStyle.Render("priority 7 of 10"))
	lines = append(lines, "")

	section("Screens", screenKeys)
	section("Memory", memoryKeys)
	section("Pipeline", pipelineKeys)
	section("Global", globalKeys)
	lines = append(lines, "  "+hintStyle.Render("Press any key to dismiss"))

	boxW := 0
	for _, line := range lines {
		boxW = max(boxW, lipgloss.Width(line))
	}
	boxW = min(boxW+4, screenW-4)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1, 2).
		Width(boxW).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box)
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
