package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/janekbaraniewski/opsboard/internal/core"
)

const sampleJSON = `{
  "costs": [{"label": "Mon", "twilio": 10, "deepgram": 5, "elevenlabs": 0, "llm": 5}],
  "facts": [{"id": "f1", "content": "Wants a 3-bed", "source": "call", "sourceId": "c-1",
             "sourceDate": "2025-05-03", "confidence": 0.82, "category": "property"}],
  "leads": [{"id": "l1", "firstName": "Ada", "lastName": "Lovelace", "phone": "+1 555 0100",
             "status": "qualified", "priority": 7}]
}`

const sampleYAML = `
costs:
  - label: Tue
    twilio: 1.5
    llm: 2
facts:
  - id: f2
    content: Prefers evening calls
    sourceId: c-9
    confidence: 0.5
    category: preference
leads:
  - id: l2
    firstName: Grace
    lastName: Hopper
    status: appointment_set
    source: referral
    priority: 3
`

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"data.json":     FormatJSON,
		"data.YAML":     FormatYAML,
		"data.yml":      FormatYAML,
		"data":          FormatJSON,
		"dir.yaml/data": FormatJSON,
	}
	for path, want := range tests {
		if got := DetectFormat(path); got != want {
			t.Errorf("DetectFormat(%q) = %s, want %s", path, got, want)
		}
	}
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o644); err != nil {
		t.Fatalf("writing snapshot: %v", err)
	}

	snap, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(snap.Costs) != 1 || snap.Costs[0].Total() != 20 {
		t.Fatalf("costs = %+v", snap.Costs)
	}
	if len(snap.Facts) != 1 || snap.Facts[0].SourceID != "c-1" || snap.Facts[0].SourceDate != "2025-05-03" {
		t.Fatalf("facts = %+v", snap.Facts)
	}
	if len(snap.Leads) != 1 || snap.Leads[0].FirstName != "Ada" || snap.Leads[0].Status != core.LeadQualified {
		t.Fatalf("leads = %+v", snap.Leads)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("writing snapshot: %v", err)
	}

	snap, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(snap.Costs) != 1 || snap.Costs[0].Total() != 3.5 {
		t.Fatalf("costs = %+v", snap.Costs)
	}
	if snap.Facts[0].SourceID != "c-9" || snap.Facts[0].Category != "preference" {
		t.Fatalf("facts = %+v", snap.Facts)
	}
	l := snap.Leads[0]
	if l.Status != core.LeadAppointmentSet || l.Source != "referral" || l.Priority != 3 {
		t.Fatalf("lead = %+v", l)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	if err := os.WriteFile(path, []byte("  \n"), 0o644); err != nil {
		t.Fatalf("writing snapshot: %v", err)
	}
	snap, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !snap.Empty() {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("writing snapshot: %v", err)
	}
	_, err := Load(bad)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parsing snapshot") {
		t.Fatalf("error = %v, want parsing context", err)
	}
}

func TestSave_YAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snap.yml")
	in := core.Snapshot{
		Leads: []core.Lead{{ID: "l1", FirstName: "Ada", Status: core.LeadLost, Priority: 2}},
	}
	if err := Save(path, in); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(out.Leads) != 1 || out.Leads[0] != in.Leads[0] {
		t.Fatalf("leads = %+v, want %+v", out.Leads, in.Leads)
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	if err := os.WriteFile(path, []byte(`{"leads": []}`), 0o644); err != nil {
		t.Fatalf("writing snapshot: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan core.Snapshot, 4)
	if err := Watch(ctx, path, func(s core.Snapshot) { got <- s }, nil); err != nil {
		t.Fatalf("Watch() error: %v", err)
	}

	if err := os.WriteFile(path, []byte(sampleJSON), 0o644); err != nil {
		t.Fatalf("rewriting snapshot: %v", err)
	}

	select {
	case snap := <-got:
		if len(snap.Leads) != 1 {
			t.Fatalf("reloaded leads = %d, want 1", len(snap.Leads))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatch_ReportsParseErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("writing snapshot: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errs := make(chan error, 4)
	if err := Watch(ctx, path, nil, func(err error) { errs <- err }); err != nil {
		t.Fatalf("Watch() error: %v", err)
	}
	if err := os.WriteFile(path, []byte(`{"costs": [`), 0o644); err != nil {
		t.Fatalf("rewriting snapshot: %v", err)
	}

	select {
	case err := <-errs:
		if err == nil {
			t.Fatal("expected non-nil error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for error")
	}
}
