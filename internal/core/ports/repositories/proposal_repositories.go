package repositories

import (
	"context"

	"github.com/lgupililla/gad_planning_app/internal/core/domain"
)

// ProposalReader defines read operations for proposals and their children.
type ProposalReader interface {
	// FindProposalByID retrieves a single proposal row.
	FindProposalByID(ctx context.Context, proposalID string) (*domain.Proposal, error)

	// FindIndicatorsByProposalID retrieves the indicator children.
	FindIndicatorsByProposalID(ctx context.Context, proposalID string) ([]domain.Indicator, error)

	// FindBudgetItemsByProposalID retrieves the budget-item children.
	FindBudgetItemsByProposalID(ctx context.Context, proposalID string) ([]domain.BudgetItem, error)

	// ListProposalsByOwner retrieves an office's own proposals, newest first.
	ListProposalsByOwner(ctx context.Context, ownerID string) ([]domain.Proposal, error)

	// ListSubmittedProposals retrieves every non-Draft proposal, newest first
	// (the review console view).
	ListSubmittedProposals(ctx context.Context) ([]domain.Proposal, error)

	// ListProposalsByStatus retrieves hydrated records in the given statuses,
	// ordered by office name ascending (the executive and registry views).
	// An empty status list means every non-Draft proposal.
	ListProposalsByStatus(ctx context.Context, statuses []domain.ProposalStatus) ([]domain.ProposalRecord, error)

	// ListAllProposals retrieves every proposal including drafts (analytics).
	ListAllProposals(ctx context.Context) ([]domain.Proposal, error)
}

// ProposalWriter defines the transactional write operations. Each call is one
// atomic unit: proposal row, child replacement where applicable, and exactly
// one appended history entry, written last.
type ProposalWriter interface {
	// CreateProposal inserts a new proposal with its children and the first
	// history entry.
	CreateProposal(ctx context.Context, proposal domain.Proposal, indicators []domain.Indicator, items []domain.BudgetItem, entry domain.HistoryEntry) error

	// UpdateProposal rewrites a proposal body and replaces its children
	// wholesale, then appends the history entry. The write is conditional on
	// proposal.Version still matching the stored row and the stored status
	// being one of expectedStatus; apperrors.ErrConflict otherwise.
	UpdateProposal(ctx context.Context, proposal domain.Proposal, indicators []domain.Indicator, items []domain.BudgetItem, expectedStatus []domain.ProposalStatus, entry domain.HistoryEntry) error

	// UpdateReview applies a reviewer/executive decision: status, sectional
	// comments and any corrected narrative fields, leaving children untouched.
	// Same version/status precondition semantics as UpdateProposal.
	UpdateReview(ctx context.Context, proposal domain.Proposal, expectedStatus []domain.ProposalStatus, entry domain.HistoryEntry) error

	// UpdateExecutiveRemark saves the executive's freeform remark without a
	// status change and appends the history entry.
	UpdateExecutiveRemark(ctx context.Context, proposal domain.Proposal, entry domain.HistoryEntry) error
}

// HistoryReader defines read access to the append-only audit trail.
type HistoryReader interface {
	// FindHistoryByProposalID retrieves history entries, newest first.
	FindHistoryByProposalID(ctx context.Context, proposalID string) ([]domain.HistoryEntry, error)
}

// ProposalRepositoryFacade combines all proposal repository interfaces.
type ProposalRepositoryFacade interface {
	ProposalReader
	ProposalWriter
	HistoryReader
}
