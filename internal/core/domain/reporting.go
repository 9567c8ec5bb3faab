package domain

import (
	"github.com/shopspring/decimal"
)

// OfficeBudget is one office's consolidated requested budget.
type OfficeBudget struct {
	OfficeName string          `json:"officeName"`
	Budget     decimal.Decimal `json:"budget"`
}

// PlanSummary is the executive briefing block: totals, participation, and the
// top requesting offices.
type PlanSummary struct {
	TotalBudget    decimal.Decimal `json:"totalBudget"`
	ApprovedBudget decimal.Decimal `json:"approvedBudget"`
	OfficeCount    int             `json:"officeCount"`
	// SubmissionRate is the fraction (0-100) of registered offices that have
	// at least one non-draft proposal.
	SubmissionRate float64        `json:"submissionRate"`
	TopOffices     []OfficeBudget `json:"topOffices"`
}

// PlanAnalytics is the monitoring view: fund-source allocation, status counts
// and focus distribution.
type PlanAnalytics struct {
	TotalBudget decimal.Decimal `json:"totalBudget"`
	MOOE        decimal.Decimal `json:"mooe"`
	PS          decimal.Decimal `json:"ps"`
	CO          decimal.Decimal `json:"co"`

	Submitted   int `json:"submitted"`
	Drafts      int `json:"drafts"`
	ForRevision int `json:"forRevision"`
	Approved    int `json:"approved"`

	ClientFocused int `json:"clientFocused"`
	OrgFocused    int `json:"orgFocused"`
}
