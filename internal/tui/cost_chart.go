package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/janekbaraniewski/opsboard/internal/core"
	"github.com/samber/lo"
)

const (
	// unitsPerRow converts chart height units into terminal rows.
	unitsPerRow    = 10.0
	maxCostBarW    = 12
	costChartInset = 2
	// costChartChromeRows is every line that is not plot: title, labels,
	// totals, spacer and legend.
	costChartChromeRows = 5
)

// RenderCostChart draws records as stacked vertical bars with a shared legend.
// It returns "" when there are no records.
func RenderCostChart(records []core.CostRecord, height, width int) string {
	return renderCostChart(records, height, width, 0)
}

// renderCostChart is RenderCostChart with the output capped at maxLines lines;
// the plot shrinks to fit and the footer and legend stay. maxLines <= 0 means
// no cap.
func renderCostChart(records []core.CostRecord, height, width, maxLines int) string {
	chart, ok := core.LayoutCostChart(records, float64(height))
	if !ok {
		return ""
	}

	plotRows := costPlotRows(chart, maxLines)
	n := len(chart.Bars)
	slotW := max(2, (width-costChartInset)/n)
	barW := min(slotW-1, maxCostBarW)

	var sb strings.Builder
	sb.WriteString(renderCostChartTitle(chart))
	sb.WriteString("\n")

	pad := strings.Repeat(" ", costChartInset)
	if plotRows > 0 {
		for _, line := range strings.Split(renderCostPlot(chart, plotRows, barW, slotW), "\n") {
			sb.WriteString(pad + line + "\n")
		}
	}

	// footer: labels, totals, spacer
	sb.WriteString(pad)
	for _, bar := range chart.Bars {
		sb.WriteString(labelStyle.Render(fitCell(bar.Label, barW, slotW)))
	}
	sb.WriteString("\n")
	sb.WriteString(pad)
	for _, bar := range chart.Bars {
		sb.WriteString(valueStyle.Render(fitCell(formatUSD(bar.Total), barW, slotW)))
	}
	sb.WriteString("\n\n")

	sb.WriteString(pad + RenderCostLegend())
	return sb.String()
}

func costPlotRows(chart core.CostChart, maxLines int) int {
	rows := int(chart.PlotHeight / unitsPerRow)
	if maxLines > 0 {
		rows = min(rows, max(1, maxLines-costChartChromeRows))
	}
	return rows
}

// renderCostPlot draws the bars on a fixed scale of chart.MaxTotal so every
// bar is measured against the largest period.
func renderCostPlot(chart core.CostChart, rows, barW, slotW int) string {
	bc := barchart.New(len(chart.Bars)*slotW, rows,
		barchart.WithNoAxis(),
		barchart.WithNoAutoMaxValue(),
		barchart.WithMaxValue(chart.MaxTotal),
		barchart.WithNoAutoBarWidth(),
		barchart.WithBarWidth(barW),
		barchart.WithBarGap(slotW-barW),
	)
	bc.PushAll(costBarData(chart, rows))
	bc.Draw()
	return bc.View()
}

// costBarData converts laid-out bars into stacked bar values, bottom segment
// first. A bar with any spend is lifted to at least one full row so small
// periods stay visible.
func costBarData(chart core.CostChart, rows int) []barchart.BarData {
	minTotal := chart.MaxTotal / float64(max(1, rows))
	return lo.Map(chart.Bars, func(bar core.CostBar, _ int) barchart.BarData {
		lift := 1.0
		if bar.Total > 0 && bar.Total < minTotal {
			lift = minTotal / bar.Total
		}
		return barchart.BarData{
			Label: bar.Label,
			Values: lo.Map(bar.Segments, func(seg core.CostSegment, _ int) barchart.BarValue {
				return barchart.BarValue{
					Name:  string(seg.Component),
					Value: seg.Value * lift,
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(seg.Color)),
				}
			}),
		}
	})
}

func renderCostChartTitle(chart core.CostChart) string {
	spend := lo.SumBy(chart.Bars, func(b core.CostBar) float64 { return b.Total })
	periods := len(chart.Bars)
	noun := "periods"
	if periods == 1 {
		noun = "period"
	}
	return "  " + sectionHeaderStyle.Render("Cost Breakdown") +
		dimStyle.Render(fmt.Sprintf("  %s across %d %s", formatUSD(spend), periods, noun))
}

// RenderCostLegend maps each cost component to its bar color.
func RenderCostLegend() string {
	parts := lo.Map(core.CostComponents, func(c core.CostComponentSpec, _ int) string {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("■")
		return swatch + " " + labelStyle.Render(c.Label)
	})
	return strings.Join(parts, "   ")
}

// fitCell centers s over a bar of width barW and pads it to the slot width.
func fitCell(s string, barW, slotW int) string {
	s = ansi.Truncate(s, slotW-1, "…")
	centered := lipgloss.PlaceHorizontal(barW, lipgloss.Center, s)
	return fitAnsiWidth(centered, slotW)
}
