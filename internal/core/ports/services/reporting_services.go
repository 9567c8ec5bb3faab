package services

import (
	"context"

	"github.com/lgupililla/gad_planning_app/internal/core/domain"
)

// ReportingSvcFacade serves the executive briefing and the GAD unit's
// monitoring analytics. All numbers come from the planmath reducers so the
// rollup invariant holds on every path.
type ReportingSvcFacade interface {
	// GetSummary builds the executive overview: total and approved budget,
	// office participation and the top requesting offices.
	GetSummary(ctx context.Context, actor domain.Actor) (*domain.PlanSummary, error)

	// GetAnalytics builds the monitoring metrics over every proposal,
	// drafts included.
	GetAnalytics(ctx context.Context, actor domain.Actor) (*domain.PlanAnalytics, error)
}
