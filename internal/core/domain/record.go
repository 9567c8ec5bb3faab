package domain

// ProposalRecord is a proposal hydrated with its child collections, the unit
// the detail views and the consolidated plan work with.
type ProposalRecord struct {
	Proposal    Proposal       `json:"proposal"`
	Indicators  []Indicator    `json:"indicators"`
	BudgetItems []BudgetItem   `json:"budgetItems"`
	History     []HistoryEntry `json:"history,omitempty"`
}
