package main

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/janekbaraniewski/opsboard/internal/core"
)

const demoDays = 7

// demoEpoch anchors day labels and fact dates for seeded runs.
var demoEpoch = time.Date(2025, time.June, 4, 12, 0, 0, 0, time.UTC)

// demoFactTemplates covers every known category plus one the dashboard has
// never heard of, so the fallback badge color shows up.
var demoFactTemplates = []struct {
	category string
	content  string
	source   string
}{
	{"personal", "Has two kids, youngest starts school in September", "call"},
	{"personal", "Prefers to be called Sam rather than Samantha", "sms"},
	{"property", "Looking for a three bedroom house with a garden", "call"},
	{"property", "Current flat lease ends in March", "email"},
	{"financial", "Mortgage pre-approval up to $420k", "call"},
	{"timeline", "Wants to move before the end of the quarter", "call"},
	{"preference", "Only available for viewings on weekends", "sms"},
	{"preference", "Dislikes properties on main roads", "call"},
	{"objection", "Thinks agency fees are too high", "call"},
	{"referral", "Was referred by a former client from Oakridge", "email"},
}

type demoLeadSeed struct {
	first, last string
	status      core.LeadStatus
	source      string
}

var demoLeadSeeds = []demoLeadSeed{
	{"Maya", "Okafor", core.LeadNew, "website"},
	{"Liam", "Novak", core.LeadNew, ""},
	{"Priya", "Raman", core.LeadNew, "facebook"},
	{"Tomas", "Berg", core.LeadContacted, "referral"},
	{"Hannah", "Cole", core.LeadContacted, ""},
	{"Diego", "Alvarez", core.LeadContacted, "google ads"},
	{"Aiko", "Tanaka", core.LeadQualified, "website"},
	{"Noah", "Fischer", core.LeadQualified, "open house"},
	{"Zara", "Mensah", core.LeadAppointmentSet, "referral"},
	{"Ethan", "Price", core.LeadAppointmentSet, ""},
	{"Lena", "Kowalski", core.LeadAppointmentSet, "website"},
	{"Omar", "Haddad", core.LeadConverted, "referral"},
	{"Chloe", "Martin", core.LeadConverted, "google ads"},
	{"Felix", "Wagner", core.LeadLost, ""},
	{"Ines", "Duarte", core.LeadLost, "facebook"},
	{"Victor", "Lindqvist", "archived", "website"},
}

func buildDemoSnapshot(rng *rand.Rand, now time.Time) core.Snapshot {
	return core.Snapshot{
		Costs: buildDemoCosts(rng, now),
		Facts: buildDemoFacts(rng, now),
		Leads: buildDemoLeads(rng),
	}
}

func buildDemoCosts(rng *rand.Rand, now time.Time) []core.CostRecord {
	records := make([]core.CostRecord, 0, demoDays)
	for i := demoDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		volume := 0.6 + rng.Float64()*0.8
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			volume *= 0.4
		}
		records = append(records, core.CostRecord{
			Label:      day.Format("Mon"),
			Twilio:     roundCents(18 * volume * jitter(rng, 0.2)),
			Deepgram:   roundCents(7 * volume * jitter(rng, 0.2)),
			ElevenLabs: roundCents(11 * volume * jitter(rng, 0.3)),
			LLM:        roundCents(24 * volume * jitter(rng, 0.3)),
		})
	}
	return records
}

func buildDemoFacts(rng *rand.Rand, now time.Time) []core.Fact {
	facts := make([]core.Fact, 0, len(demoFactTemplates))
	for i, tpl := range demoFactTemplates {
		at := now.Add(-time.Duration(i*9+rng.Intn(6)) * time.Hour)
		facts = append(facts, core.Fact{
			ID:         demoID(rng),
			Content:    tpl.content,
			Source:     tpl.source,
			SourceID:   demoID(rng)[:8],
			SourceDate: at.UTC().Format(time.RFC3339),
			Confidence: math.Round((0.45+rng.Float64()*0.55)*1000) / 1000,
			Category:   tpl.category,
		})
	}
	return facts
}

func buildDemoLeads(rng *rand.Rand) []core.Lead {
	leads := make([]core.Lead, 0, len(demoLeadSeeds))
	for _, seed := range demoLeadSeeds {
		leads = append(leads, core.Lead{
			ID:        demoID(rng),
			FirstName: seed.first,
			LastName:  seed.last,
			Phone:     demoPhone(rng),
			Status:    seed.status,
			Source:    seed.source,
			Priority:  1 + rng.Intn(10),
		})
	}
	return leads
}

// demoID draws a UUID from rng so a seeded run repeats its ids.
func demoID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func demoPhone(rng *rand.Rand) string {
	return fmt.Sprintf("+1 555 %04d", rng.Intn(10000))
}

func jitter(rng *rand.Rand, maxDelta float64) float64 {
	return 1 + (rng.Float64()*2-1)*maxDelta
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
