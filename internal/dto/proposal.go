package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lgupililla/gad_planning_app/internal/core/domain"
)

// IndicatorInput is one success indicator row of a save request.
type IndicatorInput struct {
	IndicatorText string `json:"indicatorText" binding:"required"`
	TargetText    string `json:"targetText"`
}

// BudgetItemInput is one expense line of a save request.
type BudgetItemInput struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	FundType    domain.FundType `json:"fundType" binding:"required,oneof=MOOE PS CO"`
}

// SaveProposalRequest carries the full proposal body for both create and edit.
// Submit=false saves a draft; Submit=true runs the completeness checks and
// moves the proposal into the review queue.
type SaveProposalRequest struct {
	PPACategory  domain.PPACategory  `json:"ppaCategory" binding:"required,oneof=Client-Focused Agency-Focused"`
	FocusType    domain.FocusType    `json:"focusType" binding:"required,oneof=CLIENT-FOCUSED ORGANIZATION-FOCUSED"`
	CategoryType domain.CategoryType `json:"categoryType" binding:"required,oneof='Gender Issue' 'GAD Mandate'"`

	IssueStatement string `json:"issueStatement"`
	DataEvidence   string `json:"dataEvidence"`
	IssueSource    string `json:"issueSource"`

	Objective       string `json:"objective"`
	RelevantProgram string `json:"relevantProgram"`
	ActivityName    string `json:"activityName"`

	Indicators  []IndicatorInput  `json:"indicators" binding:"dive"`
	BudgetItems []BudgetItemInput `json:"budgetItems" binding:"dive"`

	Submit bool `json:"submit"`

	// Version echoes the version the client read. Required on updates so the
	// store can detect a concurrent change; ignored on create.
	Version int64 `json:"version"`
}

// ReviewProposalRequest is a reviewer's or executive's decision on a submitted
// proposal.
type ReviewProposalRequest struct {
	Action string `json:"action" binding:"required,oneof=approve return"`
	// SectionalComments attaches remarks to the fixed proposal sections when
	// returning for revision.
	SectionalComments domain.SectionalComments `json:"sectionalComments"`
	Version           int64                    `json:"version"`

	// Narrative corrections applied together with the decision. Nil fields
	// leave the office's text untouched.
	IssueStatement  *string `json:"issueStatement,omitempty"`
	DataEvidence    *string `json:"dataEvidence,omitempty"`
	IssueSource     *string `json:"issueSource,omitempty"`
	Objective       *string `json:"objective,omitempty"`
	RelevantProgram *string `json:"relevantProgram,omitempty"`
	ActivityName    *string `json:"activityName,omitempty"`
}

// ExecutiveRemarkRequest carries the executive's freeform remark.
type ExecutiveRemarkRequest struct {
	Remark string `json:"remark" binding:"required"`
}

// ProposalResponse defines the data returned for a proposal.
type ProposalResponse struct {
	ProposalID string `json:"proposalID"`
	OwnerID    string `json:"ownerID"`
	OfficeName string `json:"officeName"`

	PPACategory  domain.PPACategory  `json:"ppaCategory"`
	FocusType    domain.FocusType    `json:"focusType"`
	CategoryType domain.CategoryType `json:"categoryType"`

	GenderIssue     domain.GenderIssue `json:"genderIssue"`
	Objective       string             `json:"objective"`
	RelevantProgram string             `json:"relevantProgram"`
	ActivityName    string             `json:"activityName"`

	TotalMOOE   decimal.Decimal `json:"totalMOOE"`
	TotalPS     decimal.Decimal `json:"totalPS"`
	TotalCO     decimal.Decimal `json:"totalCO"`
	BudgetTotal decimal.Decimal `json:"budgetTotal"`

	Status            domain.ProposalStatus    `json:"status"`
	SectionalComments domain.SectionalComments `json:"sectionalComments,omitempty"`
	ReviewerRemark    string                   `json:"reviewerRemark,omitempty"`

	Version    int64      `json:"version"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// IndicatorResponse defines the data returned for a success indicator.
type IndicatorResponse struct {
	IndicatorID   string `json:"indicatorID"`
	IndicatorText string `json:"indicatorText"`
	TargetText    string `json:"targetText"`
}

// BudgetItemResponse defines the data returned for a budget line.
type BudgetItemResponse struct {
	BudgetItemID string          `json:"budgetItemID"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	FundType     domain.FundType `json:"fundType"`
}

// HistoryEntryResponse is one audit-trail line.
type HistoryEntryResponse struct {
	HistoryID     string    `json:"historyID"`
	ActionBy      string    `json:"actionBy"`
	ActionType    string    `json:"actionType"`
	ChangeSummary string    `json:"changeSummary"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ProposalRecordResponse is the detail view: the proposal with its children and
// audit trail.
type ProposalRecordResponse struct {
	Proposal    ProposalResponse       `json:"proposal"`
	Indicators  []IndicatorResponse    `json:"indicators"`
	BudgetItems []BudgetItemResponse   `json:"budgetItems"`
	History     []HistoryEntryResponse `json:"history,omitempty"`
}

// ListProposalsResponse wraps a proposal list.
type ListProposalsResponse struct {
	Proposals []ProposalResponse `json:"proposals"`
}

// ToProposalResponse converts a domain.Proposal to ProposalResponse DTO.
func ToProposalResponse(p *domain.Proposal) ProposalResponse {
	return ProposalResponse{
		ProposalID:        p.ProposalID,
		OwnerID:           p.OwnerID,
		OfficeName:        p.OfficeName,
		PPACategory:       p.PPACategory,
		FocusType:         p.FocusType,
		CategoryType:      p.CategoryType,
		GenderIssue:       p.GenderIssue,
		Objective:         p.Objective,
		RelevantProgram:   p.RelevantProgram,
		ActivityName:      p.ActivityName,
		TotalMOOE:         p.TotalMOOE,
		TotalPS:           p.TotalPS,
		TotalCO:           p.TotalCO,
		BudgetTotal:       p.BudgetTotal(),
		Status:            p.Status,
		SectionalComments: p.SectionalComments,
		ReviewerRemark:    p.ReviewerRemark,
		Version:           p.Version,
		ApprovedAt:        p.ApprovedAt,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.LastUpdatedAt,
	}
}

// ToProposalResponses converts a slice of domain.Proposal to []ProposalResponse.
func ToProposalResponses(proposals []domain.Proposal) []ProposalResponse {
	responses := make([]ProposalResponse, len(proposals))
	for i := range proposals {
		responses[i] = ToProposalResponse(&proposals[i])
	}
	return responses
}

// ToIndicatorResponses converts domain indicators to their DTO form.
func ToIndicatorResponses(indicators []domain.Indicator) []IndicatorResponse {
	responses := make([]IndicatorResponse, len(indicators))
	for i, ind := range indicators {
		responses[i] = IndicatorResponse{
			IndicatorID:   ind.IndicatorID,
			IndicatorText: ind.IndicatorText,
			TargetText:    ind.TargetText,
		}
	}
	return responses
}

// ToBudgetItemResponses converts domain budget items to their DTO form.
func ToBudgetItemResponses(items []domain.BudgetItem) []BudgetItemResponse {
	responses := make([]BudgetItemResponse, len(items))
	for i, item := range items {
		responses[i] = BudgetItemResponse{
			BudgetItemID: item.BudgetItemID,
			Description:  item.Description,
			Amount:       item.Amount,
			FundType:     item.FundType,
		}
	}
	return responses
}

// ToHistoryEntryResponses converts domain history entries to their DTO form.
func ToHistoryEntryResponses(entries []domain.HistoryEntry) []HistoryEntryResponse {
	responses := make([]HistoryEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = HistoryEntryResponse{
			HistoryID:     e.HistoryID,
			ActionBy:      e.ActionBy,
			ActionType:    e.ActionType,
			ChangeSummary: e.ChangeSummary,
			CreatedAt:     e.CreatedAt,
		}
	}
	return responses
}

// ToProposalRecordResponse converts a hydrated record to its DTO form.
func ToProposalRecordResponse(rec *domain.ProposalRecord) ProposalRecordResponse {
	return ProposalRecordResponse{
		Proposal:    ToProposalResponse(&rec.Proposal),
		Indicators:  ToIndicatorResponses(rec.Indicators),
		BudgetItems: ToBudgetItemResponses(rec.BudgetItems),
		History:     ToHistoryEntryResponses(rec.History),
	}
}

// ToProposalRecordResponses converts a record slice to its DTO form.
func ToProposalRecordResponses(records []domain.ProposalRecord) []ProposalRecordResponse {
	responses := make([]ProposalRecordResponse, len(records))
	for i := range records {
		responses[i] = ToProposalRecordResponse(&records[i])
	}
	return responses
}
