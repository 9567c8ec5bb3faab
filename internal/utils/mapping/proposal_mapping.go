package mapping

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/lgupililla/gad_planning_app/internal/core/domain"
	"github.com/lgupililla/gad_planning_app/internal/models"
)

// ToModelProposal converts a domain Proposal to a model Proposal.
func ToModelProposal(d domain.Proposal) (models.Proposal, error) {
	var comments []byte
	if len(d.SectionalComments) > 0 {
		var err error
		comments, err = json.Marshal(d.SectionalComments)
		if err != nil {
			return models.Proposal{}, err
		}
	}
	var approvedAt sql.NullTime
	if d.ApprovedAt != nil {
		approvedAt = sql.NullTime{Time: *d.ApprovedAt, Valid: true}
	}
	return models.Proposal{
		ProposalID:        d.ProposalID,
		OwnerID:           d.OwnerID,
		OfficeName:        d.OfficeName,
		PPACategory:       string(d.PPACategory),
		FocusType:         string(d.FocusType),
		CategoryType:      string(d.CategoryType),
		IssueStatement:    d.GenderIssue.Statement,
		DataEvidence:      d.GenderIssue.DataEvidence,
		IssueSource:       d.GenderIssue.Source,
		Objective:         d.Objective,
		RelevantProgram:   d.RelevantProgram,
		ActivityName:      d.ActivityName,
		TotalMOOE:         d.TotalMOOE,
		TotalPS:           d.TotalPS,
		TotalCO:           d.TotalCO,
		Status:            string(d.Status),
		SectionalComments: comments,
		ReviewerComments:  sql.NullString{String: d.ReviewerRemark, Valid: d.ReviewerRemark != ""},
		Version:           d.Version,
		ApprovedAt:        approvedAt,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainProposal converts a model Proposal to a domain Proposal.
func ToDomainProposal(m models.Proposal) (domain.Proposal, error) {
	var comments domain.SectionalComments
	if len(m.SectionalComments) > 0 {
		if err := json.Unmarshal(m.SectionalComments, &comments); err != nil {
			return domain.Proposal{}, err
		}
	}
	var approvedAt *time.Time
	if m.ApprovedAt.Valid {
		t := m.ApprovedAt.Time
		approvedAt = &t
	}
	return domain.Proposal{
		ProposalID:   m.ProposalID,
		OwnerID:      m.OwnerID,
		OfficeName:   m.OfficeName,
		PPACategory:  domain.PPACategory(m.PPACategory),
		FocusType:    domain.FocusType(m.FocusType),
		CategoryType: domain.CategoryType(m.CategoryType),
		GenderIssue: domain.GenderIssue{
			Statement:    m.IssueStatement,
			DataEvidence: m.DataEvidence,
			Source:       m.IssueSource,
		},
		Objective:         m.Objective,
		RelevantProgram:   m.RelevantProgram,
		ActivityName:      m.ActivityName,
		TotalMOOE:         m.TotalMOOE,
		TotalPS:           m.TotalPS,
		TotalCO:           m.TotalCO,
		Status:            domain.ProposalStatus(m.Status),
		SectionalComments: comments,
		ReviewerRemark:    m.ReviewerComments.String,
		Version:           m.Version,
		ApprovedAt:        approvedAt,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainProposalSlice converts a slice of model Proposals to domain Proposals.
func ToDomainProposalSlice(ms []models.Proposal) ([]domain.Proposal, error) {
	ds := make([]domain.Proposal, len(ms))
	for i, m := range ms {
		d, err := ToDomainProposal(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}

// ToModelIndicator converts a domain Indicator to a model Indicator.
func ToModelIndicator(d domain.Indicator) models.Indicator {
	return models.Indicator{
		IndicatorID:   d.IndicatorID,
		ProposalID:    d.ProposalID,
		IndicatorText: d.IndicatorText,
		TargetText:    d.TargetText,
	}
}

// ToDomainIndicatorSlice converts model Indicators to domain Indicators.
func ToDomainIndicatorSlice(ms []models.Indicator) []domain.Indicator {
	ds := make([]domain.Indicator, len(ms))
	for i, m := range ms {
		ds[i] = domain.Indicator{
			IndicatorID:   m.IndicatorID,
			ProposalID:    m.ProposalID,
			IndicatorText: m.IndicatorText,
			TargetText:    m.TargetText,
		}
	}
	return ds
}

// ToModelBudgetItem converts a domain BudgetItem to a model BudgetItem.
func ToModelBudgetItem(d domain.BudgetItem) models.BudgetItem {
	return models.BudgetItem{
		BudgetItemID: d.BudgetItemID,
		ProposalID:   d.ProposalID,
		Description:  d.Description,
		Amount:       d.Amount,
		FundType:     string(d.FundType),
	}
}

// ToDomainBudgetItemSlice converts model BudgetItems to domain BudgetItems.
func ToDomainBudgetItemSlice(ms []models.BudgetItem) []domain.BudgetItem {
	ds := make([]domain.BudgetItem, len(ms))
	for i, m := range ms {
		ds[i] = domain.BudgetItem{
			BudgetItemID: m.BudgetItemID,
			ProposalID:   m.ProposalID,
			Description:  m.Description,
			Amount:       m.Amount,
			FundType:     domain.FundType(m.FundType),
		}
	}
	return ds
}

// ToModelHistoryEntry converts a domain HistoryEntry to a model HistoryEntry.
func ToModelHistoryEntry(d domain.HistoryEntry) models.HistoryEntry {
	return models.HistoryEntry{
		HistoryID:     d.HistoryID,
		ProposalID:    d.ProposalID,
		ActionBy:      d.ActionBy,
		ActionType:    d.ActionType,
		ChangeSummary: d.ChangeSummary,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainHistorySlice converts model HistoryEntries to domain HistoryEntries.
func ToDomainHistorySlice(ms []models.HistoryEntry) []domain.HistoryEntry {
	ds := make([]domain.HistoryEntry, len(ms))
	for i, m := range ms {
		ds[i] = domain.HistoryEntry{
			HistoryID:     m.HistoryID,
			ProposalID:    m.ProposalID,
			ActionBy:      m.ActionBy,
			ActionType:    m.ActionType,
			ChangeSummary: m.ChangeSummary,
			CreatedAt:     m.CreatedAt,
		}
	}
	return ds
}
