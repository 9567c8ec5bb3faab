package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lgupililla/gad_planning_app/internal/apperrors"
	"github.com/lgupililla/gad_planning_app/internal/core/domain"
	portsrepo "github.com/lgupililla/gad_planning_app/internal/core/ports/repositories"
	portssvc "github.com/lgupililla/gad_planning_app/internal/core/ports/services"
	"github.com/lgupililla/gad_planning_app/internal/dto"
	"github.com/lgupililla/gad_planning_app/internal/middleware"
	"github.com/lgupililla/gad_planning_app/internal/utils/planmath"
)

// Audit-trail labels. ActionType mirrors the resulting status except for the
// remark save, which changes no status.
const (
	actionExecutiveRemark = "Executive Remark"

	summarySubmitted   = "PPA record submitted for verification."
	summaryDraftSaved  = "PPA record saved as draft."
	summaryResubmitted = "PPA record revised and resubmitted for verification."
	summaryRemarkSaved = "Executive remark saved."
)

// proposalService is the lifecycle engine for GAD proposals.
type proposalService struct {
	proposalRepo portsrepo.ProposalRepositoryFacade
}

// NewProposalService creates a new proposal service.
func NewProposalService(proposalRepo portsrepo.ProposalRepositoryFacade) portssvc.ProposalSvcFacade {
	return &proposalService{proposalRepo: proposalRepo}
}

// Ensure proposalService implements the portssvc.ProposalSvcFacade interface
var _ portssvc.ProposalSvcFacade = (*proposalService)(nil)

// validateForSubmission enforces the completeness gate: a proposal may enter
// the review queue only with a gender-issue statement and a named activity.
func validateForSubmission(p *domain.Proposal) error {
	if strings.TrimSpace(p.GenderIssue.Statement) == "" {
		return apperrors.Wrapf(apperrors.ErrValidation, "gender issue statement is required before submission")
	}
	if strings.TrimSpace(p.ActivityName) == "" {
		return apperrors.Wrapf(apperrors.ErrValidation, "activity name is required before submission")
	}
	return nil
}

// buildChildren materializes the request's indicator and budget rows for a
// proposal, assigning fresh IDs. Children are replaced wholesale on every save.
func buildChildren(proposalID string, req dto.SaveProposalRequest) ([]domain.Indicator, []domain.BudgetItem) {
	indicators := make([]domain.Indicator, len(req.Indicators))
	for i, in := range req.Indicators {
		indicators[i] = domain.Indicator{
			IndicatorID:   uuid.NewString(),
			ProposalID:    proposalID,
			IndicatorText: in.IndicatorText,
			TargetText:    in.TargetText,
		}
	}
	items := make([]domain.BudgetItem, len(req.BudgetItems))
	for i, it := range req.BudgetItems {
		items[i] = domain.BudgetItem{
			BudgetItemID: uuid.NewString(),
			ProposalID:   proposalID,
			Description:  it.Description,
			Amount:       it.Amount,
			FundType:     it.FundType,
		}
	}
	return indicators, items
}

func newHistoryEntry(proposalID string, actor domain.Actor, actionType, summary string, at time.Time) domain.HistoryEntry {
	return domain.HistoryEntry{
		HistoryID:     uuid.NewString(),
		ProposalID:    proposalID,
		ActionBy:      actor.Label,
		ActionType:    actionType,
		ChangeSummary: summary,
		CreatedAt:     at,
	}
}

// CreateProposal creates a new proposal for the actor's office, as Draft or
// straight to Submitted when req.Submit is set.
func (s *proposalService) CreateProposal(ctx context.Context, actor domain.Actor, req dto.SaveProposalRequest) (*domain.Proposal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.Role.IsReviewer() || actor.Role.IsExecutive() {
		return nil, apperrors.Wrapf(apperrors.ErrForbidden, "role %s may not submit office proposals", actor.Role)
	}

	now := time.Now().UTC()
	proposalID := uuid.NewString()
	indicators, items := buildChildren(proposalID, req)

	rollup, err := planmath.Rollup(items)
	if err != nil {
		return nil, err
	}

	status := domain.StatusDraft
	summary := summaryDraftSaved
	if req.Submit {
		status = domain.StatusSubmitted
		summary = summarySubmitted
	}

	proposal := domain.Proposal{
		ProposalID:   proposalID,
		OwnerID:      actor.ProfileID,
		OfficeName:   actor.Label,
		PPACategory:  req.PPACategory,
		FocusType:    req.FocusType,
		CategoryType: req.CategoryType,
		GenderIssue: domain.GenderIssue{
			Statement:    req.IssueStatement,
			DataEvidence: req.DataEvidence,
			Source:       req.IssueSource,
		},
		Objective:       req.Objective,
		RelevantProgram: req.RelevantProgram,
		ActivityName:    req.ActivityName,
		TotalMOOE:       rollup.MOOE,
		TotalPS:         rollup.PS,
		TotalCO:         rollup.CO,
		Status:          status,
		Version:         1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.ProfileID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.ProfileID,
		},
	}

	if req.Submit {
		if err := validateForSubmission(&proposal); err != nil {
			return nil, err
		}
	}

	entry := newHistoryEntry(proposalID, actor, string(status), summary, now)
	if err := s.proposalRepo.CreateProposal(ctx, proposal, indicators, items, entry); err != nil {
		logger.Error("Failed to persist new proposal", slog.String("error", err.Error()), slog.String("proposal_id", proposalID))
		return nil, err
	}

	logger.Info("Proposal created", slog.String("proposal_id", proposalID), slog.String("status", string(status)))
	return &proposal, nil
}

// UpdateProposal lets the owning office edit a draft or a returned proposal,
// saving it again as Draft or (re)submitting it.
func (s *proposalService) UpdateProposal(ctx context.Context, actor domain.Actor, proposalID string, req dto.SaveProposalRequest) (*domain.Proposal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Version <= 0 {
		return nil, apperrors.Wrapf(apperrors.ErrValidation, "version is required when updating a proposal")
	}

	current, err := s.proposalRepo.FindProposalByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	next := domain.StatusDraft
	if req.Submit {
		next = domain.StatusSubmitted
	}
	isOwner := current.OwnerID == actor.ProfileID
	if err := domain.ValidateOwnerTransition(current.Status, next, actor, isOwner); err != nil {
		return nil, err
	}

	indicators, items := buildChildren(proposalID, req)
	rollup, err := planmath.Rollup(items)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updated := *current
	updated.PPACategory = req.PPACategory
	updated.FocusType = req.FocusType
	updated.CategoryType = req.CategoryType
	updated.GenderIssue = domain.GenderIssue{
		Statement:    req.IssueStatement,
		DataEvidence: req.DataEvidence,
		Source:       req.IssueSource,
	}
	updated.Objective = req.Objective
	updated.RelevantProgram = req.RelevantProgram
	updated.ActivityName = req.ActivityName
	updated.TotalMOOE = rollup.MOOE
	updated.TotalPS = rollup.PS
	updated.TotalCO = rollup.CO
	updated.Status = next
	updated.Version = req.Version
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actor.ProfileID

	var summary string
	switch {
	case next == domain.StatusDraft:
		summary = summaryDraftSaved
	case current.Status.NeedsRevision():
		// Sectional remarks stay readable after resubmission.
		summary = summaryResubmitted
	default:
		summary = summarySubmitted
	}

	if req.Submit {
		if err := validateForSubmission(&updated); err != nil {
			return nil, err
		}
	}

	entry := newHistoryEntry(proposalID, actor, string(next), summary, now)
	expected := []domain.ProposalStatus{current.Status}
	if err := s.proposalRepo.UpdateProposal(ctx, updated, indicators, items, expected, entry); err != nil {
		logger.Error("Failed to update proposal", slog.String("error", err.Error()), slog.String("proposal_id", proposalID))
		return nil, err
	}

	updated.Version = req.Version + 1
	logger.Info("Proposal updated", slog.String("proposal_id", proposalID), slog.String("status", string(next)))
	return &updated, nil
}

// applyNarrativeEdits copies the reviewer's narrative corrections onto the
// proposal. Nil fields leave the office's text untouched.
func applyNarrativeEdits(p *domain.Proposal, req dto.ReviewProposalRequest) {
	if req.IssueStatement != nil {
		p.GenderIssue.Statement = *req.IssueStatement
	}
	if req.DataEvidence != nil {
		p.GenderIssue.DataEvidence = *req.DataEvidence
	}
	if req.IssueSource != nil {
		p.GenderIssue.Source = *req.IssueSource
	}
	if req.Objective != nil {
		p.Objective = *req.Objective
	}
	if req.RelevantProgram != nil {
		p.RelevantProgram = *req.RelevantProgram
	}
	if req.ActivityName != nil {
		p.ActivityName = *req.ActivityName
	}
}

// ReviewProposal applies a reviewer's or executive's decision.
func (s *proposalService) ReviewProposal(ctx context.Context, actor domain.Actor, proposalID string, req dto.ReviewProposalRequest) (*domain.Proposal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	current, err := s.proposalRepo.FindProposalByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	next := domain.StatusApproved
	if req.Action == "return" {
		next = domain.StatusForRevision
	}
	if err := domain.ValidateReviewTransition(current.Status, next, actor); err != nil {
		return nil, err
	}
	if err := req.SectionalComments.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updated := *current
	updated.Status = next
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actor.ProfileID
	if req.Version != 0 {
		updated.Version = req.Version
	}
	applyNarrativeEdits(&updated, req)

	summary := "PPA status changed to " + string(next) + "."
	// Remarks are stored whatever the decision; the client only
	// foregrounds them while the record is in revision.
	if len(req.SectionalComments) > 0 {
		updated.SectionalComments = req.SectionalComments
		summary += " Sectional remarks saved."
	}
	if next == domain.StatusApproved {
		updated.ApprovedAt = &now
	}

	entry := newHistoryEntry(proposalID, actor, string(next), summary, now)
	expected := []domain.ProposalStatus{current.Status}
	if err := s.proposalRepo.UpdateReview(ctx, updated, expected, entry); err != nil {
		logger.Error("Failed to record review decision", slog.String("error", err.Error()), slog.String("proposal_id", proposalID))
		return nil, err
	}

	updated.Version++
	logger.Info("Proposal reviewed", slog.String("proposal_id", proposalID), slog.String("decision", string(next)), slog.String("reviewed_by", actor.ProfileID))
	return &updated, nil
}

// AttachExecutiveRemark saves the executive's freeform remark without touching
// the workflow status.
func (s *proposalService) AttachExecutiveRemark(ctx context.Context, actor domain.Actor, proposalID string, remark string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.Role.IsExecutive() {
		return apperrors.Wrapf(apperrors.ErrForbidden, "role %s may not attach executive remarks", actor.Role)
	}

	current, err := s.proposalRepo.FindProposalByID(ctx, proposalID)
	if err != nil {
		return err
	}
	if current.Status == domain.StatusDraft {
		return apperrors.Wrapf(apperrors.ErrValidation, "a draft has not been submitted and cannot be remarked on")
	}

	now := time.Now().UTC()
	updated := *current
	updated.ReviewerRemark = remark
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actor.ProfileID

	entry := newHistoryEntry(proposalID, actor, actionExecutiveRemark, summaryRemarkSaved, now)
	if err := s.proposalRepo.UpdateExecutiveRemark(ctx, updated, entry); err != nil {
		logger.Error("Failed to save executive remark", slog.String("error", err.Error()), slog.String("proposal_id", proposalID))
		return err
	}
	return nil
}

// GetProposal returns a hydrated record. Owners see only their own proposals;
// reviewers and executives see anything already out of Draft.
func (s *proposalService) GetProposal(ctx context.Context, actor domain.Actor, proposalID string) (*domain.ProposalRecord, error) {
	proposal, err := s.proposalRepo.FindProposalByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	isOwner := proposal.OwnerID == actor.ProfileID
	canReview := (actor.Role.IsReviewer() || actor.Role.IsExecutive()) && proposal.Status != domain.StatusDraft
	if !isOwner && !canReview {
		return nil, apperrors.Wrapf(apperrors.ErrForbidden, "proposal %s is not visible to this account", proposalID)
	}

	indicators, err := s.proposalRepo.FindIndicatorsByProposalID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	items, err := s.proposalRepo.FindBudgetItemsByProposalID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	history, err := s.proposalRepo.FindHistoryByProposalID(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	return &domain.ProposalRecord{
		Proposal:    *proposal,
		Indicators:  indicators,
		BudgetItems: items,
		History:     history,
	}, nil
}

// ListMyProposals returns the actor's own proposals, newest first.
func (s *proposalService) ListMyProposals(ctx context.Context, actor domain.Actor) ([]domain.Proposal, error) {
	return s.proposalRepo.ListProposalsByOwner(ctx, actor.ProfileID)
}

// ListForReview returns every non-Draft proposal for the review console.
func (s *proposalService) ListForReview(ctx context.Context, actor domain.Actor) ([]domain.Proposal, error) {
	if !actor.Role.IsReviewer() && !actor.Role.IsExecutive() {
		return nil, apperrors.Wrapf(apperrors.ErrForbidden, "role %s may not access the review queue", actor.Role)
	}
	return s.proposalRepo.ListSubmittedProposals(ctx)
}

// ListApproved returns the approved registry with children, office ascending.
func (s *proposalService) ListApproved(ctx context.Context, actor domain.Actor) ([]domain.ProposalRecord, error) {
	if !actor.Role.IsReviewer() && !actor.Role.IsExecutive() {
		return nil, apperrors.Wrapf(apperrors.ErrForbidden, "role %s may not access the approved registry", actor.Role)
	}
	return s.proposalRepo.ListProposalsByStatus(ctx, []domain.ProposalStatus{domain.StatusApproved})
}
