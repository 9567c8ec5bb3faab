package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Proposal is the gad_proposals row. The three gender-issue parts are native
// columns; sectional comments ride along as a jsonb document.
type Proposal struct {
	ProposalID string `db:"proposal_id"`
	OwnerID    string `db:"owner_id"`
	OfficeName string `db:"office_name"`

	PPACategory  string `db:"ppa_category"`
	FocusType    string `db:"focus_type"`
	CategoryType string `db:"category_type"`

	IssueStatement string `db:"issue_statement"`
	DataEvidence   string `db:"data_evidence"`
	IssueSource    string `db:"issue_source"`

	Objective       string `db:"objective"`
	RelevantProgram string `db:"relevant_program"`
	ActivityName    string `db:"activity_name"`

	TotalMOOE decimal.Decimal `db:"total_mooe"`
	TotalPS   decimal.Decimal `db:"total_ps"`
	TotalCO   decimal.Decimal `db:"total_co"`

	Status            string         `db:"status"`
	SectionalComments []byte         `db:"sectional_comments"` // jsonb, nullable
	ReviewerComments  sql.NullString `db:"reviewer_comments"`

	Version    int64        `db:"version"`
	ApprovedAt sql.NullTime `db:"approved_at"`
	AuditFields
}

// Indicator is a ppa_indicators row.
type Indicator struct {
	IndicatorID   string    `db:"indicator_id"`
	ProposalID    string    `db:"proposal_id"`
	IndicatorText string    `db:"indicator_text"`
	TargetText    string    `db:"target_text"`
	CreatedAt     time.Time `db:"created_at"`
}

// BudgetItem is a ppa_budget_items row.
type BudgetItem struct {
	BudgetItemID string          `db:"budget_item_id"`
	ProposalID   string          `db:"proposal_id"`
	Description  string          `db:"description"`
	Amount       decimal.Decimal `db:"amount"`
	FundType     string          `db:"fund_type"`
	CreatedAt    time.Time       `db:"created_at"`
}

// HistoryEntry is a ppa_history row. The table is insert-only.
type HistoryEntry struct {
	HistoryID     string    `db:"history_id"`
	ProposalID    string    `db:"proposal_id"`
	ActionBy      string    `db:"action_by"`
	ActionType    string    `db:"action_type"`
	ChangeSummary string    `db:"change_summary"`
	CreatedAt     time.Time `db:"created_at"`
}
