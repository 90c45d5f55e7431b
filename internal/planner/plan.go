package planner

// RenamePlan maps existing file names to new file names.
// Keys are unique; setting an existing key replaces its target but keeps the
// key's original position, so iteration follows first insertion order.
type RenamePlan struct {
	targets map[string]string
	order   []string

	// Unmatched lists the rows whose inventory number matched no file.
	Unmatched []UnmatchedRow
}

// Rename is a single old -> new file name pair.
type Rename struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// UnmatchedRow identifies a data row that contributed nothing to the plan.
type UnmatchedRow struct {
	// Row is the one-based position of the row in the data file
	Row int `json:"row"`

	LotNumber       string `json:"lot_number"`
	InventoryNumber string `json:"inventory_number"`
}

// NewRenamePlan creates a new empty RenamePlan.
func NewRenamePlan() *RenamePlan {
	return &RenamePlan{
		targets:   make(map[string]string),
		order:     []string{},
		Unmatched: []UnmatchedRow{},
	}
}

// Set maps from to to, overwriting any earlier target for from.
func (p *RenamePlan) Set(from, to string) {
	if _, exists := p.targets[from]; !exists {
		p.order = append(p.order, from)
	}
	p.targets[from] = to
}

// Target returns the new name planned for from.
func (p *RenamePlan) Target(from string) (string, bool) {
	to, ok := p.targets[from]
	return to, ok
}

// Len returns the number of planned renames.
func (p *RenamePlan) Len() int {
	return len(p.order)
}

// IsEmpty returns true if the plan renames nothing.
func (p *RenamePlan) IsEmpty() bool {
	return len(p.order) == 0
}

// Renames returns the planned renames in insertion order.
func (p *RenamePlan) Renames() []Rename {
	renames := make([]Rename, 0, len(p.order))
	for _, from := range p.order {
		renames = append(renames, Rename{From: from, To: p.targets[from]})
	}
	return renames
}

// Map returns a copy of the plan as a plain map.
func (p *RenamePlan) Map() map[string]string {
	m := make(map[string]string, len(p.targets))
	for from, to := range p.targets {
		m[from] = to
	}
	return m
}
