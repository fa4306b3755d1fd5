package tui

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/janekbaraniewski/opsboard/internal/core"
)

// plotLines returns the stripped plot rows of a rendered chart: everything
// between the title and the label row.
func plotLines(out string, rows int) []string {
	lines := strings.Split(ansi.Strip(out), "\n")
	return lines[1 : 1+rows]
}

func TestRenderCostChart_EmptyRendersNothing(t *testing.T) {
	if out := RenderCostChart(nil, 200, 80); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestRenderCostChart_SingleBar(t *testing.T) {
	raw := RenderCostChart([]core.CostRecord{
		{Label: "Mon", Twilio: 10, Deepgram: 5, ElevenLabs: 0, LLM: 5},
	}, 200, 80)
	out := ansi.Strip(raw)

	// title + 17 plot rows + labels + totals + spacer + legend
	if got := strings.Count(out, "\n") + 1; got != 22 {
		t.Fatalf("lines = %d, want 22:\n%s", got, out)
	}
	for i, line := range plotLines(raw, 17) {
		if strings.TrimSpace(line) == "" {
			t.Fatalf("plot row %d is empty; the largest bar should fill the plot:\n%s", i, out)
		}
	}
	for _, want := range []string{"Mon", "$20.00", "Twilio", "Deepgram", "ElevenLabs", "LLM", "Cost Breakdown"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCostBarData_StacksNonZeroSegmentsBottomUp(t *testing.T) {
	chart, _ := core.LayoutCostChart([]core.CostRecord{
		{Label: "Mon", Twilio: 10, Deepgram: 5, LLM: 5},
	}, 200)
	data := costBarData(chart, 17)
	if len(data) != 1 || data[0].Label != "Mon" {
		t.Fatalf("bar data = %+v", data)
	}

	want := []string{"twilio", "deepgram", "llm"}
	values := data[0].Values
	if len(values) != len(want) {
		t.Fatalf("values = %d, want %d", len(values), len(want))
	}
	for i, name := range want {
		if values[i].Name != name {
			t.Errorf("values[%d] = %q, want %q", i, values[i].Name, name)
		}
	}
	if values[0].Value != 10 || values[1].Value != 5 || values[2].Value != 5 {
		t.Errorf("values = %v/%v/%v, want 10/5/5", values[0].Value, values[1].Value, values[2].Value)
	}
}

func TestCostBarData_TinySpendKeepsOneRow(t *testing.T) {
	chart, _ := core.LayoutCostChart([]core.CostRecord{
		{Label: "a", LLM: 1000},
		{Label: "b", LLM: 1},
	}, 200)
	data := costBarData(chart, 17)

	sum := 0.0
	for _, v := range data[1].Values {
		sum += v.Value
	}
	if oneRow := chart.MaxTotal / 17; sum < oneRow-1e-9 {
		t.Fatalf("tiny bar value = %v, want at least %v", sum, oneRow)
	}
	if data[0].Values[0].Value != 1000 {
		t.Fatalf("large bar should not be lifted, got %v", data[0].Values[0].Value)
	}
}

func TestRenderCostChart_AllZeroHasNoBars(t *testing.T) {
	raw := RenderCostChart([]core.CostRecord{
		{Label: "Mon"}, {Label: "Tue"},
	}, 200, 80)
	for _, line := range plotLines(raw, 17) {
		if strings.TrimSpace(line) != "" {
			t.Fatalf("all-zero chart should have an empty plot:\n%s", ansi.Strip(raw))
		}
	}
	out := ansi.Strip(raw)
	if !strings.Contains(out, "Mon") || !strings.Contains(out, "Tue") {
		t.Fatalf("labels missing:\n%s", out)
	}
}

func TestRenderCostChart_BarsShareWidth(t *testing.T) {
	raw := RenderCostChart([]core.CostRecord{
		{Label: "a", Twilio: 4},
		{Label: "b", Twilio: 4},
		{Label: "c", Twilio: 4},
	}, 100, 40)

	row := plotLines(raw, 7)[0]
	if got := strings.Count(row, "█"); got != 3*11 {
		t.Fatalf("blocks in full row = %d, want %d:\n%s", got, 3*11, ansi.Strip(raw))
	}
}

func TestRenderCostChart_HalfHeightBar(t *testing.T) {
	raw := RenderCostChart([]core.CostRecord{
		{Label: "a", Twilio: 10},
		{Label: "b", Twilio: 5},
	}, 100, 40)

	// 7 plot rows; bar b is 3.5 rows tall
	filled := 0
	for _, line := range plotLines(raw, 7) {
		cell := []rune(line)[costChartInset+19]
		if cell != ' ' {
			filled++
		}
	}
	if want := int(math.Ceil(3.5)); filled != want {
		t.Fatalf("rows used by the half bar = %d, want %d:\n%s", filled, want, ansi.Strip(raw))
	}
}

func TestRenderCostChart_CappedKeepsLegend(t *testing.T) {
	records := []core.CostRecord{{Label: "Mon", Twilio: 10, Deepgram: 5, LLM: 5}}
	out := ansi.Strip(renderCostChart(records, 200, 80, 20))

	lines := strings.Split(out, "\n")
	if len(lines) != 20 {
		t.Fatalf("lines = %d, want 20:\n%s", len(lines), out)
	}
	if last := lines[len(lines)-1]; !strings.Contains(last, "ElevenLabs") {
		t.Fatalf("legend should be the last line, got %q", last)
	}
}
