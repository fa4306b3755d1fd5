package core

import "testing"

func TestConfidencePercent(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{1, 100},
		{0.5, 50},
		{0.874, 87},
		{0.875, 88},
		{0.125, 13},
		{0.004, 0},
		{0.996, 100},
	}
	for _, tt := range tests {
		if got := ConfidencePercent(tt.in); got != tt.want {
			t.Errorf("ConfidencePercent(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestConfidencePercent_InRange(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		c := float64(i) / 1000
		p := ConfidencePercent(c)
		if p < 0 || p > 100 {
			t.Fatalf("ConfidencePercent(%v) = %d, out of range", c, p)
		}
	}
}

func TestFactCategoryColor(t *testing.T) {
	seen := make(map[string]string)
	for _, cat := range FactCategories {
		c := FactCategoryColor(cat)
		if c == DefaultFactCategoryColor {
			t.Errorf("category %q uses the default color", cat)
		}
		if other, dup := seen[c]; dup {
			t.Errorf("categories %q and %q share color %s", cat, other, c)
		}
		seen[c] = cat
	}
	if len(FactCategoryColors) != 6 {
		t.Fatalf("known categories = %d, want 6", len(FactCategoryColors))
	}
	if got := FactCategoryColor("astrology"); got != DefaultFactCategoryColor {
		t.Fatalf("unknown category color = %s, want default", got)
	}
}

func TestFactProvenance(t *testing.T) {
	tests := []struct {
		name string
		fact Fact
		want string
	}{
		{"full", Fact{Source: "call", SourceID: "c-118", SourceDate: "2025-05-03"}, "call #c-118 · May 3, 2025"},
		{"rfc3339", Fact{Source: "sms", SourceID: "42", SourceDate: "2025-01-09T14:00:00Z"}, "sms #42 · Jan 9, 2025"},
		{"unparsed date", Fact{Source: "email", SourceDate: "last week"}, "email · last week"},
		{"id only", Fact{SourceID: "x1"}, "#x1"},
		{"nothing", Fact{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FactProvenance(tt.fact); got != tt.want {
				t.Fatalf("FactProvenance() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildFactRows_PreservesOrder(t *testing.T) {
	facts := []Fact{
		{ID: "b", Content: "second", Category: "timeline", Confidence: 0.91},
		{ID: "a", Content: "first", Category: "mystery", Confidence: 0.2},
		{ID: "a", Content: "first", Category: "mystery", Confidence: 0.2},
	}
	rows := BuildFactRows(facts)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0].ID != "b" || rows[1].ID != "a" || rows[2].ID != "a" {
		t.Fatalf("order not preserved: %s %s %s", rows[0].ID, rows[1].ID, rows[2].ID)
	}
	if rows[0].CategoryLabel != "Timeline" || rows[0].Percent != 91 {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].CategoryColor != DefaultFactCategoryColor || rows[1].CategoryLabel != "Mystery" {
		t.Errorf("row 1 = %+v", rows[1])
	}
	if got := rows[0].ConfidenceLabel(); got != "91% confidence" {
		t.Errorf("confidence label = %q", got)
	}
}
