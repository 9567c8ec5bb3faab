package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/lgupililla/gad_planning_app/internal/core/domain"
	portsrepo "github.com/lgupililla/gad_planning_app/internal/core/ports/repositories"
)

// --- Mock ProposalRepository ---

type MockProposalRepository struct {
	mock.Mock
}

var _ portsrepo.ProposalRepositoryFacade = (*MockProposalRepository)(nil)

func (m *MockProposalRepository) FindProposalByID(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	args := m.Called(ctx, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}

func (m *MockProposalRepository) FindIndicatorsByProposalID(ctx context.Context, proposalID string) ([]domain.Indicator, error) {
	args := m.Called(ctx, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Indicator), args.Error(1)
}

func (m *MockProposalRepository) FindBudgetItemsByProposalID(ctx context.Context, proposalID string) ([]domain.BudgetItem, error) {
	args := m.Called(ctx, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetItem), args.Error(1)
}

func (m *MockProposalRepository) ListProposalsByOwner(ctx context.Context, ownerID string) ([]domain.Proposal, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Proposal), args.Error(1)
}

func (m *MockProposalRepository) ListSubmittedProposals(ctx context.Context) ([]domain.Proposal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Proposal), args.Error(1)
}

func (m *MockProposalRepository) ListProposalsByStatus(ctx context.Context, statuses []domain.ProposalStatus) ([]domain.ProposalRecord, error) {
	args := m.Called(ctx, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProposalRecord), args.Error(1)
}

func (m *MockProposalRepository) ListAllProposals(ctx context.Context) ([]domain.Proposal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Proposal), args.Error(1)
}

func (m *MockProposalRepository) CreateProposal(ctx context.Context, proposal domain.Proposal, indicators []domain.Indicator, items []domain.BudgetItem, entry domain.HistoryEntry) error {
	args := m.Called(ctx, proposal, indicators, items, entry)
	return args.Error(0)
}

func (m *MockProposalRepository) UpdateProposal(ctx context.Context, proposal domain.Proposal, indicators []domain.Indicator, items []domain.BudgetItem, expectedStatus []domain.ProposalStatus, entry domain.HistoryEntry) error {
	args := m.Called(ctx, proposal, indicators, items, expectedStatus, entry)
	return args.Error(0)
}

func (m *MockProposalRepository) UpdateReview(ctx context.Context, proposal domain.Proposal, expectedStatus []domain.ProposalStatus, entry domain.HistoryEntry) error {
	args := m.Called(ctx, proposal, expectedStatus, entry)
	return args.Error(0)
}

func (m *MockProposalRepository) UpdateExecutiveRemark(ctx context.Context, proposal domain.Proposal, entry domain.HistoryEntry) error {
	args := m.Called(ctx, proposal, entry)
	return args.Error(0)
}

func (m *MockProposalRepository) FindHistoryByProposalID(ctx context.Context, proposalID string) ([]domain.HistoryEntry, error) {
	args := m.Called(ctx, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryEntry), args.Error(1)
}

// --- Mock ProfileRepository ---

type MockProfileRepository struct {
	mock.Mock
}

var _ portsrepo.ProfileRepositoryFacade = (*MockProfileRepository)(nil)

func (m *MockProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindProfileByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindProfileByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.Profile, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) CountProfiles(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockProfileRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateApproval(ctx context.Context, profileID string, approved bool, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, profileID, approved, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateRefreshToken(ctx context.Context, profileID string, tokenHash string, expiry *time.Time) error {
	args := m.Called(ctx, profileID, tokenHash, expiry)
	return args.Error(0)
}
