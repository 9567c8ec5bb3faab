package dto

import (
	"github.com/shopspring/decimal"

	"github.com/lgupililla/gad_planning_app/internal/core/domain"
)

// OfficeBudgetResponse is one office's consolidated budget line.
type OfficeBudgetResponse struct {
	OfficeName string          `json:"officeName"`
	Budget     decimal.Decimal `json:"budget"`
}

// PlanSummaryResponse is the executive briefing block.
type PlanSummaryResponse struct {
	TotalBudget    decimal.Decimal        `json:"totalBudget"`
	ApprovedBudget decimal.Decimal        `json:"approvedBudget"`
	OfficeCount    int                    `json:"officeCount"`
	SubmissionRate float64                `json:"submissionRate"`
	TopOffices     []OfficeBudgetResponse `json:"topOffices"`
}

// PlanAnalyticsResponse is the monitoring view: fund allocation, status counts
// and focus distribution.
type PlanAnalyticsResponse struct {
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

// ToPlanSummaryResponse converts a domain.PlanSummary to its DTO form.
func ToPlanSummaryResponse(s *domain.PlanSummary) PlanSummaryResponse {
	offices := make([]OfficeBudgetResponse, len(s.TopOffices))
	for i, o := range s.TopOffices {
		offices[i] = OfficeBudgetResponse{OfficeName: o.OfficeName, Budget: o.Budget}
	}
	return PlanSummaryResponse{
		TotalBudget:    s.TotalBudget,
		ApprovedBudget: s.ApprovedBudget,
		OfficeCount:    s.OfficeCount,
		SubmissionRate: s.SubmissionRate,
		TopOffices:     offices,
	}
}

// ToPlanAnalyticsResponse converts a domain.PlanAnalytics to its DTO form.
func ToPlanAnalyticsResponse(a *domain.PlanAnalytics) PlanAnalyticsResponse {
	return PlanAnalyticsResponse{
		TotalBudget:   a.TotalBudget,
		MOOE:          a.MOOE,
		PS:            a.PS,
		CO:            a.CO,
		Submitted:     a.Submitted,
		Drafts:        a.Drafts,
		ForRevision:   a.ForRevision,
		Approved:      a.Approved,
		ClientFocused: a.ClientFocused,
		OrgFocused:    a.OrgFocused,
	}
}
