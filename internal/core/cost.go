package core

import "github.com/samber/lo"

// CostComponent identifies one of the metered services that make up a period's spend.
type CostComponent string

const (
	CostTwilio     CostComponent = "twilio"
	CostDeepgram   CostComponent = "deepgram"
	CostElevenLabs CostComponent = "elevenlabs"
	CostLLM        CostComponent = "llm"
)

const (
	DefaultCostChartHeight = 200.0
	// CostChartFooterReserve is the part of the chart height kept free for the
	// label and value text under each bar.
	CostChartFooterReserve = 30.0
)

type CostComponentSpec struct {
	Component CostComponent
	Label     string
	Color     string
}

// CostComponents is the fixed stacking (bottom-up) and legend order.
var CostComponents = []CostComponentSpec{
	{Component: CostTwilio, Label: "Twilio", Color: "#F22F46"},
	{Component: CostDeepgram, Label: "Deepgram", Color: "#13EF93"},
	{Component: CostElevenLabs, Label: "ElevenLabs", Color: "#A78BFA"},
	{Component: CostLLM, Label: "LLM", Color: "#3B82F6"},
}

type CostRecord struct {
	Label      string  `json:"label" yaml:"label"`
	Twilio     float64 `json:"twilio" yaml:"twilio"`
	Deepgram   float64 `json:"deepgram" yaml:"deepgram"`
	ElevenLabs float64 `json:"elevenlabs" yaml:"elevenlabs"`
	LLM        float64 `json:"llm" yaml:"llm"`
}

func (r CostRecord) Value(c CostComponent) float64 {
	switch c {
	case CostTwilio:
		return r.Twilio
	case CostDeepgram:
		return r.Deepgram
	case CostElevenLabs:
		return r.ElevenLabs
	case CostLLM:
		return r.LLM
	}
	return 0
}

func (r CostRecord) Total() float64 {
	return r.Twilio + r.Deepgram + r.ElevenLabs + r.LLM
}

// CostSegment is one colored slice of a bar. Flex is the segment's share of the
// bar (value / total).
type CostSegment struct {
	Component CostComponent
	Value     float64
	Flex      float64
	Color     string
}

type CostBar struct {
	Label    string
	Total    float64
	Height   float64
	Segments []CostSegment
}

type CostChart struct {
	Height     float64
	PlotHeight float64
	MaxTotal   float64
	Bars       []CostBar
}

// LayoutCostChart scales every record against the largest period total. The
// second return value is false when there is nothing to draw.
func LayoutCostChart(records []CostRecord, height float64) (CostChart, bool) {
	if len(records) == 0 {
		return CostChart{}, false
	}
	if height <= 0 {
		height = DefaultCostChartHeight
	}
	plot := height - CostChartFooterReserve
	if plot < 0 {
		plot = 0
	}

	totals := lo.Map(records, func(r CostRecord, _ int) float64 { return r.Total() })
	maxTotal := lo.Max(totals)
	if maxTotal < 1 {
		maxTotal = 1
	}

	chart := CostChart{
		Height:     height,
		PlotHeight: plot,
		MaxTotal:   maxTotal,
		Bars:       make([]CostBar, 0, len(records)),
	}
	for i, rec := range records {
		bar := CostBar{
			Label:  rec.Label,
			Total:  totals[i],
			Height: totals[i] / maxTotal * plot,
		}
		if totals[i] > 0 {
			for _, spec := range CostComponents {
				v := rec.Value(spec.Component)
				if v <= 0 {
					continue
				}
				bar.Segments = append(bar.Segments, CostSegment{
					Component: spec.Component,
					Value:     v,
					Flex:      v / totals[i],
					Color:     spec.Color,
				})
			}
		}
		chart.Bars = append(chart.Bars, bar)
	}
	return chart, true
}
