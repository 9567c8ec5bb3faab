package services

import (
	"context"
	"io"

	"github.com/lgupililla/gad_planning_app/internal/core/domain"
	"github.com/lgupililla/gad_planning_app/internal/dto"
)

// ExportSvcFacade assembles the consolidated Annual GAD Plan and Budget from
// the approved registry. Rendering beyond CSV is left to downstream tools; the
// service's contract is faithful data, not formatting.
type ExportSvcFacade interface {
	// BuildPlan assembles the nine-column consolidated plan, split into
	// client-focused and agency-focused parts with a grand total.
	BuildPlan(ctx context.Context, actor domain.Actor) (*dto.GADPlanExport, error)

	// WriteCSV renders a built plan as CSV.
	WriteCSV(plan *dto.GADPlanExport, w io.Writer) error
}
