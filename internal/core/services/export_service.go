package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lgupililla/gad_planning_app/internal/apperrors"
	"github.com/lgupililla/gad_planning_app/internal/core/domain"
	portsrepo "github.com/lgupililla/gad_planning_app/internal/core/ports/repositories"
	portssvc "github.com/lgupililla/gad_planning_app/internal/core/ports/services"
	"github.com/lgupililla/gad_planning_app/internal/dto"
	"github.com/lgupililla/gad_planning_app/internal/middleware"
	"github.com/lgupililla/gad_planning_app/internal/utils/gadtext"
)

var planCSVHeader = []string{
	"Gender Issue / GAD Mandate",
	"Data / Source",
	"GAD Result Statement / Objective",
	"Relevant LGU Program",
	"GAD Activity",
	"Performance Indicators and Budget Details",
	"GAD Budget",
	"Fund Source",
	"Responsible Office",
}

// exportService assembles the consolidated Annual GAD Plan and Budget from the
// approved registry.
type exportService struct {
	proposalRepo portsrepo.ProposalRepositoryFacade
}

// NewExportService creates a new export service.
func NewExportService(proposalRepo portsrepo.ProposalRepositoryFacade) portssvc.ExportSvcFacade {
	return &exportService{proposalRepo: proposalRepo}
}

var _ portssvc.ExportSvcFacade = (*exportService)(nil)

// BuildPlan assembles the nine-column consolidated plan over every approved
// proposal, split into client-focused (Part A) and agency-focused (Part B)
// sections with a grand total.
func (s *exportService) BuildPlan(ctx context.Context, actor domain.Actor) (*dto.GADPlanExport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.Role.IsReviewer() && !actor.Role.IsExecutive() {
		return nil, apperrors.Wrapf(apperrors.ErrForbidden, "role %s may not export the consolidated plan", actor.Role)
	}

	records, err := s.proposalRepo.ListProposalsByStatus(ctx, []domain.ProposalStatus{domain.StatusApproved})
	if err != nil {
		logger.Error("Failed to load approved registry for export", slog.String("error", err.Error()))
		return nil, err
	}

	plan := &dto.GADPlanExport{
		PartA:      dto.PlanSection{Title: "PART A: CLIENT-FOCUSED", Subtotal: decimal.Zero},
		PartB:      dto.PlanSection{Title: "PART B: AGENCY-FOCUSED", Subtotal: decimal.Zero},
		GrandTotal: decimal.Zero,
	}
	for i := range records {
		rec := &records[i]
		row := buildPlanRow(rec)
		total := rec.Proposal.BudgetTotal()
		if rec.Proposal.PPACategory == domain.CategoryClientFocused {
			plan.PartA.Rows = append(plan.PartA.Rows, row)
			plan.PartA.Subtotal = plan.PartA.Subtotal.Add(total)
		} else {
			plan.PartB.Rows = append(plan.PartB.Rows, row)
			plan.PartB.Subtotal = plan.PartB.Subtotal.Add(total)
		}
		plan.GrandTotal = plan.GrandTotal.Add(total)
	}

	return plan, nil
}

// buildPlanRow flattens one approved record into the printed-form columns. The
// gender-issue column carries the legacy blob so exports line up with files
// generated before the three parts were stored natively.
func buildPlanRow(rec *domain.ProposalRecord) dto.PlanRow {
	p := &rec.Proposal

	dataSource := p.GenderIssue.DataEvidence
	if p.GenderIssue.Source != "" {
		if dataSource != "" {
			dataSource += " (" + p.GenderIssue.Source + ")"
		} else {
			dataSource = p.GenderIssue.Source
		}
	}

	details := make([]string, 0, len(rec.Indicators)+len(rec.BudgetItems))
	for _, ind := range rec.Indicators {
		line := ind.IndicatorText
		if ind.TargetText != "" {
			line += ": " + ind.TargetText
		}
		details = append(details, line)
	}
	for _, item := range rec.BudgetItems {
		details = append(details, fmt.Sprintf("%s: PHP %s (%s)", item.Description, item.Amount.StringFixed(2), item.FundType))
	}

	return dto.PlanRow{
		GenderIssue:     gadtext.Encode(p.GenderIssue),
		DataSource:      dataSource,
		ResultStatement: p.Objective,
		RelevantProgram: p.RelevantProgram,
		Activity:        p.ActivityName,
		Indicators:      strings.Join(details, "; "),
		BudgetTotal:     p.BudgetTotal(),
		FundSource:      fundSources(p),
		Office:          p.OfficeName,
	}
}

// fundSources lists the fund types the proposal actually draws on.
func fundSources(p *domain.Proposal) string {
	var sources []string
	if p.TotalMOOE.IsPositive() {
		sources = append(sources, string(domain.FundMOOE))
	}
	if p.TotalPS.IsPositive() {
		sources = append(sources, string(domain.FundPS))
	}
	if p.TotalCO.IsPositive() {
		sources = append(sources, string(domain.FundCO))
	}
	return strings.Join(sources, "/")
}

// WriteCSV renders a built plan as CSV, one section per part with subtotal
// rows and a closing grand total.
func (s *exportService) WriteCSV(plan *dto.GADPlanExport, w io.Writer) error {
	cw := csv.NewWriter(w)

	for _, section := range []*dto.PlanSection{&plan.PartA, &plan.PartB} {
		if err := cw.Write([]string{section.Title}); err != nil {
			return err
		}
		if err := cw.Write(planCSVHeader); err != nil {
			return err
		}
		for _, row := range section.Rows {
			record := []string{
				row.GenderIssue,
				row.DataSource,
				row.ResultStatement,
				row.RelevantProgram,
				row.Activity,
				row.Indicators,
				row.BudgetTotal.StringFixed(2),
				row.FundSource,
				row.Office,
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		if err := cw.Write([]string{"SUBTOTAL", "", "", "", "", "", section.Subtotal.StringFixed(2), "", ""}); err != nil {
			return err
		}
	}

	if err := cw.Write([]string{"GRAND TOTAL", "", "", "", "", "", plan.GrandTotal.StringFixed(2), "", ""}); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}
