package domain

import "time"

// HistoryEntry is one line of a proposal's append-only audit trail. Entries are
// only ever inserted; nothing updates or deletes them.
type HistoryEntry struct {
	HistoryID  string `json:"historyID"`
	ProposalID string `json:"proposalID"`
	// ActionBy is a display label: the office name or the acting unit.
	ActionBy string `json:"actionBy"`
	// ActionType mirrors the status the action produced, or a descriptive
	// label for saves that change no status (e.g. "Executive Remark").
	ActionType    string    `json:"actionType"`
	ChangeSummary string    `json:"changeSummary"`
	CreatedAt     time.Time `json:"createdAt"`
}
