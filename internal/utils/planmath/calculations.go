// Package planmath centralizes every derived number in the GAD plan: budget
// rollups, status counts, focus distribution and office aggregates. All
// functions are pure reducers over their input slice; empty input yields a
// zero-valued result, never an error, and ordering of the input is irrelevant.
package planmath

import (
	"sort"

	"github.com/lgupililla/gad_planning_app/internal/apperrors"
	"github.com/lgupililla/gad_planning_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FundRollup is the fold of a budget-item collection by fund type.
type FundRollup struct {
	MOOE decimal.Decimal
	PS   decimal.Decimal
	CO   decimal.Decimal
}

// Total is MOOE + PS + CO.
func (r FundRollup) Total() decimal.Decimal {
	return r.MOOE.Add(r.PS).Add(r.CO)
}

// Rollup folds budget items into per-fund totals. Every save path computes its
// persisted totals through this single function so the
// total_mooe+total_ps+total_co == budget_total invariant cannot drift between
// call sites. Negative amounts are rejected.
func Rollup(items []domain.BudgetItem) (FundRollup, error) {
	var r FundRollup
	r.MOOE, r.PS, r.CO = decimal.Zero, decimal.Zero, decimal.Zero
	for _, item := range items {
		if item.Amount.IsNegative() {
			return FundRollup{}, apperrors.Wrapf(apperrors.ErrValidation,
				"budget item %q has negative amount %s", item.Description, item.Amount)
		}
		switch item.FundType {
		case domain.FundMOOE:
			r.MOOE = r.MOOE.Add(item.Amount)
		case domain.FundPS:
			r.PS = r.PS.Add(item.Amount)
		case domain.FundCO:
			r.CO = r.CO.Add(item.Amount)
		default:
			return FundRollup{}, apperrors.Wrapf(apperrors.ErrValidation,
				"budget item %q has unknown fund type %q", item.Description, item.FundType)
		}
	}
	return r, nil
}

// TotalBudget sums the consolidated budget of every proposal in the set.
func TotalBudget(proposals []domain.Proposal) decimal.Decimal {
	total := decimal.Zero
	for i := range proposals {
		total = total.Add(proposals[i].BudgetTotal())
	}
	return total
}

// Analytics folds a proposal set into the monitoring metrics.
func Analytics(proposals []domain.Proposal) domain.PlanAnalytics {
	m := domain.PlanAnalytics{
		TotalBudget: decimal.Zero,
		MOOE:        decimal.Zero,
		PS:          decimal.Zero,
		CO:          decimal.Zero,
	}
	for i := range proposals {
		p := &proposals[i]
		m.TotalBudget = m.TotalBudget.Add(p.BudgetTotal())
		m.MOOE = m.MOOE.Add(p.TotalMOOE)
		m.PS = m.PS.Add(p.TotalPS)
		m.CO = m.CO.Add(p.TotalCO)

		switch {
		case p.Status == domain.StatusSubmitted:
			m.Submitted++
		case p.Status == domain.StatusDraft:
			m.Drafts++
		case p.Status.NeedsRevision():
			m.ForRevision++
		case p.Status == domain.StatusApproved:
			m.Approved++
		}

		switch p.FocusType {
		case domain.FocusClient:
			m.ClientFocused++
		case domain.FocusOrganization:
			m.OrgFocused++
		}
	}
	return m
}

// BudgetByOffice groups and sums proposal budgets per office, sorted by budget
// descending (office name ascending on ties, for stable output).
func BudgetByOffice(proposals []domain.Proposal) []domain.OfficeBudget {
	sums := make(map[string]decimal.Decimal)
	for i := range proposals {
		p := &proposals[i]
		current, ok := sums[p.OfficeName]
		if !ok {
			current = decimal.Zero
		}
		sums[p.OfficeName] = current.Add(p.BudgetTotal())
	}

	out := make([]domain.OfficeBudget, 0, len(sums))
	for name, budget := range sums {
		out = append(out, domain.OfficeBudget{OfficeName: name, Budget: budget})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Budget.Equal(out[j].Budget) {
			return out[i].OfficeName < out[j].OfficeName
		}
		return out[i].Budget.GreaterThan(out[j].Budget)
	})
	return out
}

// SubmissionRate is the percentage of registered offices that appear in the
// proposal set. registeredOffices <= 0 is treated as a single office so the
// executive view never divides by zero.
func SubmissionRate(proposals []domain.Proposal, registeredOffices int) float64 {
	if registeredOffices <= 0 {
		registeredOffices = 1
	}
	distinct := make(map[string]struct{})
	for i := range proposals {
		distinct[proposals[i].OfficeName] = struct{}{}
	}
	return float64(len(distinct)) / float64(registeredOffices) * 100
}

// Summarize builds the executive briefing block. topN limits the budget-leader
// list; a non-positive topN means no limit.
func Summarize(proposals []domain.Proposal, registeredOffices, topN int) domain.PlanSummary {
	approved := decimal.Zero
	for i := range proposals {
		if proposals[i].Status == domain.StatusApproved {
			approved = approved.Add(proposals[i].BudgetTotal())
		}
	}

	top := BudgetByOffice(proposals)
	if topN > 0 && len(top) > topN {
		top = top[:topN]
	}

	return domain.PlanSummary{
		TotalBudget:    TotalBudget(proposals),
		ApprovedBudget: approved,
		OfficeCount:    registeredOffices,
		SubmissionRate: SubmissionRate(proposals, registeredOffices),
		TopOffices:     top,
	}
}
