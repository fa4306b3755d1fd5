package core

import (
	"math"
	"strings"

	"github.com/samber/lo"
)

type LeadStatus string

const (
	LeadNew            LeadStatus = "new"
	LeadContacted      LeadStatus = "contacted"
	LeadQualified      LeadStatus = "qualified"
	LeadAppointmentSet LeadStatus = "appointment_set"
	LeadConverted      LeadStatus = "converted"
	LeadLost           LeadStatus = "lost"
)

// PriorityDotCount is the number of dots in a card's priority indicator.
const PriorityDotCount = 5

// NoLeadsMessage fills a pipeline column that has no leads.
const NoLeadsMessage = "No leads"

type Lead struct {
	ID        string     `json:"id" yaml:"id"`
	FirstName string     `json:"firstName" yaml:"firstName"`
	LastName  string     `json:"lastName" yaml:"lastName"`
	Phone     string     `json:"phone" yaml:"phone"`
	Status    LeadStatus `json:"status" yaml:"status"`
	Source    string     `json:"source,omitempty" yaml:"source,omitempty"`
	Priority  int        `json:"priority" yaml:"priority"`
}

func (l Lead) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(l.FirstName) + " " + strings.TrimSpace(l.LastName))
}

// PriorityDots is the number of filled indicator dots for a priority, one per
// two points rounded up. Out-of-range priorities clamp to 0..PriorityDotCount.
func PriorityDots(priority int) int {
	n := int(math.Ceil(float64(priority) / 2))
	return lo.Clamp(n, 0, PriorityDotCount)
}

type PipelineColumn struct {
	Status LeadStatus
	Label  string
	Color  string
}

// PipelineColumns is the canonical stage order of the board.
var PipelineColumns = []PipelineColumn{
	{Status: LeadNew, Label: "New", Color: "#3B82F6"},
	{Status: LeadContacted, Label: "Contacted", Color: "#F59E0B"},
	{Status: LeadQualified, Label: "Qualified", Color: "#8B5CF6"},
	{Status: LeadAppointmentSet, Label: "Appointment Set", Color: "#06B6D4"},
	{Status: LeadConverted, Label: "Converted", Color: "#10B981"},
	{Status: LeadLost, Label: "Lost", Color: "#EF4444"},
}

var knownLeadStatuses = lo.SliceToMap(PipelineColumns, func(c PipelineColumn) (LeadStatus, bool) {
	return c.Status, true
})

func IsKnownLeadStatus(s LeadStatus) bool {
	return knownLeadStatuses[s]
}

type BoardColumn struct {
	PipelineColumn
	Leads []Lead
}

// Board is the leads split into pipeline columns. Unmapped counts leads whose
// status matched no column; they are not shown anywhere.
type Board struct {
	Columns  []BoardColumn
	Unmapped int
}

func (b Board) LeadCount() int {
	return lo.SumBy(b.Columns, func(c BoardColumn) int { return len(c.Leads) })
}

// PartitionLeads groups leads into PipelineColumns by exact status match,
// keeping input order inside each column.
func PartitionLeads(leads []Lead) Board {
	byStatus := lo.GroupBy(leads, func(l Lead) LeadStatus { return l.Status })

	board := Board{Columns: make([]BoardColumn, 0, len(PipelineColumns))}
	for _, col := range PipelineColumns {
		board.Columns = append(board.Columns, BoardColumn{
			PipelineColumn: col,
			Leads:          byStatus[col.Status],
		})
	}
	board.Unmapped = len(leads) - board.LeadCount()
	return board
}
