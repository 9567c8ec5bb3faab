package domain

import (
	"time"

	"github.com/lgupililla/gad_planning_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ProposalStatus indicates where a GAD proposal sits in the approval workflow.
type ProposalStatus string

const (
	StatusDraft       ProposalStatus = "Draft"
	StatusSubmitted   ProposalStatus = "Submitted"
	StatusForRevision ProposalStatus = "For Revision"
	// StatusReturned is the legacy spelling of "For Revision" still present in
	// older rows. Treated as equivalent everywhere a revision gate applies.
	StatusReturned ProposalStatus = "Returned"
	StatusApproved ProposalStatus = "Approved"
)

// NeedsRevision reports whether the status means the proposal was handed back
// to the owning office for edits.
func (s ProposalStatus) NeedsRevision() bool {
	return s == StatusForRevision || s == StatusReturned
}

// OwnerEditable reports whether the owning office may still edit and (re)submit.
func (s ProposalStatus) OwnerEditable() bool {
	return s == StatusDraft || s.NeedsRevision()
}

// PPACategory classifies the proposal for the consolidated plan.
type PPACategory string

const (
	CategoryClientFocused PPACategory = "Client-Focused"
	CategoryAgencyFocused PPACategory = "Agency-Focused"
)

// FocusType indicates whether the PPA addresses external clients or the
// organization itself.
type FocusType string

const (
	FocusClient       FocusType = "CLIENT-FOCUSED"
	FocusOrganization FocusType = "ORGANIZATION-FOCUSED"
)

// CategoryType distinguishes issue-driven PPAs from mandate-driven ones.
type CategoryType string

const (
	CategoryGenderIssue CategoryType = "Gender Issue"
	CategoryGADMandate  CategoryType = "GAD Mandate"
)

// FundType is the government fund-source classification of a budget line item.
type FundType string

const (
	FundMOOE FundType = "MOOE"
	FundPS   FundType = "PS"
	FundCO   FundType = "CO"
)

// SectionKey identifies one of the five fixed proposal sections a reviewer may
// attach a remark to.
type SectionKey string

const (
	SectionGenderIssue SectionKey = "gender_issue"
	SectionObjectives  SectionKey = "objectives"
	SectionActivities  SectionKey = "activities"
	SectionIndicators  SectionKey = "indicators"
	SectionBudget      SectionKey = "budget"
)

// SectionKeys lists every valid section key.
var SectionKeys = []SectionKey{
	SectionGenderIssue,
	SectionObjectives,
	SectionActivities,
	SectionIndicators,
	SectionBudget,
}

// SectionalComments maps section keys to reviewer remarks. Keys outside the
// fixed set are rejected at validation time.
type SectionalComments map[SectionKey]string

// Validate rejects comments attached to unknown sections.
func (sc SectionalComments) Validate() error {
	for key := range sc {
		valid := false
		for _, k := range SectionKeys {
			if key == k {
				valid = true
				break
			}
		}
		if !valid {
			return apperrors.Wrapf(apperrors.ErrValidation, "unknown comment section %q", key)
		}
	}
	return nil
}

// GenderIssue holds the structured issue statement. The three parts are stored
// natively; the legacy "Issue:/Data:/Source:" single-string form exists only at
// the import/export boundary (see utils/gadtext).
type GenderIssue struct {
	Statement    string `json:"statement"`
	DataEvidence string `json:"dataEvidence"`
	Source       string `json:"source"`
}

// Proposal is a single GAD Program/Project/Activity submitted by an office.
type Proposal struct {
	ProposalID string `json:"proposalID"`
	OwnerID    string `json:"ownerID"`
	OfficeName string `json:"officeName"`

	PPACategory  PPACategory  `json:"ppaCategory"`
	FocusType    FocusType    `json:"focusType"`
	CategoryType CategoryType `json:"categoryType"`

	GenderIssue     GenderIssue `json:"genderIssue"`
	Objective       string      `json:"objective"`
	RelevantProgram string      `json:"relevantProgram"`
	ActivityName    string      `json:"activityName"`

	TotalMOOE decimal.Decimal `json:"totalMOOE"`
	TotalPS   decimal.Decimal `json:"totalPS"`
	TotalCO   decimal.Decimal `json:"totalCO"`

	Status            ProposalStatus    `json:"status"`
	SectionalComments SectionalComments `json:"sectionalComments,omitempty"`
	// ReviewerRemark is the executive's freeform remark. It coexists with the
	// sectional comments; neither supersedes the other and callers see both.
	ReviewerRemark string `json:"reviewerRemark,omitempty"`

	// Version guards against concurrent lost updates: every write carries the
	// version it read and the store rejects the write if it moved on.
	Version    int64      `json:"version"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	AuditFields
}

// BudgetTotal is the consolidated GAD budget, always the sum of the three
// fund-type rollups.
func (p *Proposal) BudgetTotal() decimal.Decimal {
	return p.TotalMOOE.Add(p.TotalPS).Add(p.TotalCO)
}

// Indicator is a success indicator and its target, child of a proposal.
type Indicator struct {
	IndicatorID   string `json:"indicatorID"`
	ProposalID    string `json:"proposalID"`
	IndicatorText string `json:"indicatorText"`
	TargetText    string `json:"targetText"`
}

// BudgetItem is one expense line of a proposal's budget breakdown.
type BudgetItem struct {
	BudgetItemID string          `json:"budgetItemID"`
	ProposalID   string          `json:"proposalID"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	FundType     FundType        `json:"fundType"`
}
