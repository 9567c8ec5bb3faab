package services

import (
	"context"

	"github.com/lgupililla/gad_planning_app/internal/core/domain"
	"github.com/lgupililla/gad_planning_app/internal/dto"
)

// ProposalSvc is the proposal lifecycle engine: every status transition, the
// sectional-comment protocol and the audit trail go through here. The acting
// profile is always passed explicitly as a domain.Actor.
type ProposalSvc interface {
	// CreateProposal creates a new plan for the actor's office, as Draft or
	// straight to Submitted depending on req.Submit.
	CreateProposal(ctx context.Context, actor domain.Actor, req dto.SaveProposalRequest) (*domain.Proposal, error)

	// UpdateProposal lets the owning office edit a Draft or a returned
	// proposal, saving (Draft only) or resubmitting.
	UpdateProposal(ctx context.Context, actor domain.Actor, proposalID string, req dto.SaveProposalRequest) (*domain.Proposal, error)

	// ReviewProposal applies a reviewer's or executive's decision: approve, or
	// return for revision with sectional remarks and optional narrative edits.
	ReviewProposal(ctx context.Context, actor domain.Actor, proposalID string, req dto.ReviewProposalRequest) (*domain.Proposal, error)

	// AttachExecutiveRemark saves the executive's freeform remark without
	// changing the workflow status.
	AttachExecutiveRemark(ctx context.Context, actor domain.Actor, proposalID string, remark string) error
}

// ProposalViewSvc is the read side: the owner dashboard, review console,
// executive registry and the audit trail.
type ProposalViewSvc interface {
	// GetProposal returns a hydrated record; owners see only their own rows,
	// reviewers and executives see any non-Draft row.
	GetProposal(ctx context.Context, actor domain.Actor, proposalID string) (*domain.ProposalRecord, error)

	// ListMyProposals returns the actor's own proposals, newest first.
	ListMyProposals(ctx context.Context, actor domain.Actor) ([]domain.Proposal, error)

	// ListForReview returns every non-Draft proposal, newest first.
	ListForReview(ctx context.Context, actor domain.Actor) ([]domain.Proposal, error)

	// ListApproved returns the approved registry with children, office
	// ascending.
	ListApproved(ctx context.Context, actor domain.Actor) ([]domain.ProposalRecord, error)
}

// ProposalSvcFacade combines the lifecycle and view interfaces.
type ProposalSvcFacade interface {
	ProposalSvc
	ProposalViewSvc
}
