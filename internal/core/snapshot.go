package core

// Snapshot is one read-only batch of dashboard data, as handed over by the
// upstream fetcher.
type Snapshot struct {
	Costs []CostRecord `json:"costs" yaml:"costs"`
	Facts []Fact       `json:"facts" yaml:"facts"`
	Leads []Lead       `json:"leads" yaml:"leads"`
}

func (s Snapshot) Empty() bool {
	return len(s.Costs) == 0 && len(s.Facts) == 0 && len(s.Leads) == 0
}
