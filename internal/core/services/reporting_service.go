package services

import (
	"context"
	"log/slog"

	"github.com/lgupililla/gad_planning_app/internal/apperrors"
	"github.com/lgupililla/gad_planning_app/internal/core/domain"
	portsrepo "github.com/lgupililla/gad_planning_app/internal/core/ports/repositories"
	portssvc "github.com/lgupililla/gad_planning_app/internal/core/ports/services"
	"github.com/lgupililla/gad_planning_app/internal/middleware"
	"github.com/lgupililla/gad_planning_app/internal/utils/planmath"
)

// topOfficesCount bounds the executive summary's office leaderboard.
const topOfficesCount = 5

// reportingService serves the executive summary and the monitoring analytics.
// All derived numbers go through the planmath reducers; nothing is aggregated
// in SQL so the rollup rules live in exactly one place.
type reportingService struct {
	proposalRepo portsrepo.ProposalRepositoryFacade
	profileRepo  portsrepo.ProfileRepositoryFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(proposalRepo portsrepo.ProposalRepositoryFacade, profileRepo portsrepo.ProfileRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{proposalRepo: proposalRepo, profileRepo: profileRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetSummary builds the executive overview over every non-Draft proposal.
func (s *reportingService) GetSummary(ctx context.Context, actor domain.Actor) (*domain.PlanSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.Role.IsReviewer() && !actor.Role.IsExecutive() {
		return nil, apperrors.Wrapf(apperrors.ErrForbidden, "role %s may not access plan reporting", actor.Role)
	}

	proposals, err := s.proposalRepo.ListSubmittedProposals(ctx)
	if err != nil {
		logger.Error("Failed to load proposals for summary", slog.String("error", err.Error()))
		return nil, err
	}
	registeredOffices, err := s.profileRepo.CountProfiles(ctx)
	if err != nil {
		logger.Error("Failed to count registered offices", slog.String("error", err.Error()))
		return nil, err
	}

	summary := planmath.Summarize(proposals, registeredOffices, topOfficesCount)
	return &summary, nil
}

// GetAnalytics builds the monitoring metrics over every proposal, drafts
// included.
func (s *reportingService) GetAnalytics(ctx context.Context, actor domain.Actor) (*domain.PlanAnalytics, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.Role.IsReviewer() && !actor.Role.IsExecutive() {
		return nil, apperrors.Wrapf(apperrors.ErrForbidden, "role %s may not access plan reporting", actor.Role)
	}

	proposals, err := s.proposalRepo.ListAllProposals(ctx)
	if err != nil {
		logger.Error("Failed to load proposals for analytics", slog.String("error", err.Error()))
		return nil, err
	}

	analytics := planmath.Analytics(proposals)
	return &analytics, nil
}
