package core

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NoFactsMessage is shown in place of the list when there are no facts.
const NoFactsMessage = "No memory facts recorded yet."

// DefaultFactCategoryColor is used for any category outside FactCategoryColors.
const DefaultFactCategoryColor = "#9CA3AF"

type Fact struct {
	ID         string  `json:"id" yaml:"id"`
	Content    string  `json:"content" yaml:"content"`
	Source     string  `json:"source" yaml:"source"`
	SourceID   string  `json:"sourceId" yaml:"sourceId"`
	SourceDate string  `json:"sourceDate" yaml:"sourceDate"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
	Category   string  `json:"category" yaml:"category"`
}

// FactCategories lists the categories upstream extraction produces, in legend order.
var FactCategories = []string{
	"personal",
	"property",
	"financial",
	"timeline",
	"preference",
	"objection",
}

var FactCategoryColors = map[string]string{
	"personal":   "#3B82F6",
	"property":   "#10B981",
	"financial":  "#F59E0B",
	"timeline":   "#8B5CF6",
	"preference": "#EC4899",
	"objection":  "#EF4444",
}

var categoryTitler = cases.Title(language.English)

// FactCategoryColor returns the badge color for a category, falling back to a
// neutral color for unknown ones.
func FactCategoryColor(category string) string {
	if c, ok := FactCategoryColors[category]; ok {
		return c
	}
	return DefaultFactCategoryColor
}

// ConfidencePercent converts a [0,1] confidence into a whole percentage,
// rounding halves up.
func ConfidencePercent(confidence float64) int {
	return int(math.Round(confidence * 100))
}

// FactRow is a fact resolved into the values a list row displays.
type FactRow struct {
	ID            string
	Content       string
	CategoryLabel string
	CategoryColor string
	Percent       int
	Provenance    string
}

func BuildFactRows(facts []Fact) []FactRow {
	rows := make([]FactRow, 0, len(facts))
	for _, f := range facts {
		rows = append(rows, FactRow{
			ID:            f.ID,
			Content:       f.Content,
			CategoryLabel: factCategoryLabel(f.Category),
			CategoryColor: FactCategoryColor(f.Category),
			Percent:       ConfidencePercent(f.Confidence),
			Provenance:    FactProvenance(f),
		})
	}
	return rows
}

// FactProvenance renders where a fact came from, e.g. "call #c-118 · May 3, 2025".
func FactProvenance(f Fact) string {
	var parts []string
	origin := strings.TrimSpace(f.Source)
	if id := strings.TrimSpace(f.SourceID); id != "" {
		if origin != "" {
			origin += " "
		}
		origin += "#" + id
	}
	if origin != "" {
		parts = append(parts, origin)
	}
	if d := formatSourceDate(f.SourceDate); d != "" {
		parts = append(parts, d)
	}
	return strings.Join(parts, " · ")
}

func factCategoryLabel(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return "Other"
	}
	return categoryTitler.String(strings.ReplaceAll(category, "_", " "))
}

var sourceDateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func formatSourceDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range sourceDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return raw
}

func (r FactRow) ConfidenceLabel() string {
	return fmt.Sprintf("%d%% confidence", r.Percent)
}
