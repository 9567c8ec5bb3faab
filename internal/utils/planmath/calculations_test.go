package planmath_test

import (
	"testing"

	"github.com/lgupililla/gad_planning_app/internal/apperrors"
	"github.com/lgupililla/gad_planning_app/internal/core/domain"
	"github.com/lgupililla/gad_planning_app/internal/utils/planmath"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(fund domain.FundType, amount int64) domain.BudgetItem {
	return domain.BudgetItem{Amount: decimal.NewFromInt(amount), FundType: fund}
}

func TestRollupByFundType(t *testing.T) {
	r, err := planmath.Rollup([]domain.BudgetItem{
		item(domain.FundMOOE, 10000),
		item(domain.FundPS, 2500),
		item(domain.FundMOOE, 500),
		item(domain.FundCO, 70000),
	})
	require.NoError(t, err)

	assert.True(t, r.MOOE.Equal(decimal.NewFromInt(10500)))
	assert.True(t, r.PS.Equal(decimal.NewFromInt(2500)))
	assert.True(t, r.CO.Equal(decimal.NewFromInt(70000)))
	assert.True(t, r.Total().Equal(r.MOOE.Add(r.PS).Add(r.CO)))
}

func TestRollupIsDeterministic(t *testing.T) {
	items := []domain.BudgetItem{item(domain.FundPS, 300), item(domain.FundMOOE, 700)}
	first, err := planmath.Rollup(items)
	require.NoError(t, err)
	second, err := planmath.Rollup(items)
	require.NoError(t, err)
	assert.True(t, first.Total().Equal(second.Total()))
}

func TestRollupRejectsBadItems(t *testing.T) {
	_, err := planmath.Rollup([]domain.BudgetItem{item(domain.FundMOOE, -1)})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = planmath.Rollup([]domain.BudgetItem{{Amount: decimal.NewFromInt(1), FundType: "GRANT"}})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRollupEmptyInput(t *testing.T) {
	r, err := planmath.Rollup(nil)
	require.NoError(t, err)
	assert.True(t, r.Total().IsZero())
}

func proposal(office string, status domain.ProposalStatus, focus domain.FocusType, mooe, ps, co int64) domain.Proposal {
	return domain.Proposal{
		OfficeName: office,
		Status:     status,
		FocusType:  focus,
		TotalMOOE:  decimal.NewFromInt(mooe),
		TotalPS:    decimal.NewFromInt(ps),
		TotalCO:    decimal.NewFromInt(co),
	}
}

func TestAnalyticsOnEmptyInput(t *testing.T) {
	m := planmath.Analytics(nil)
	assert.True(t, m.TotalBudget.IsZero())
	assert.Zero(t, m.Submitted)
	assert.Zero(t, m.Approved)
	assert.Zero(t, m.ClientFocused)

	assert.True(t, planmath.TotalBudget(nil).IsZero())
	assert.Empty(t, planmath.BudgetByOffice(nil))
}

func TestAnalyticsCounts(t *testing.T) {
	m := planmath.Analytics([]domain.Proposal{
		proposal("MSWDO", domain.StatusSubmitted, domain.FocusClient, 10000, 0, 0),
		proposal("HRMO", domain.StatusDraft, domain.FocusOrganization, 0, 5000, 0),
		proposal("MSWDO", domain.StatusApproved, domain.FocusClient, 0, 0, 20000),
		proposal("MPDO", domain.StatusReturned, domain.FocusClient, 1500, 0, 0),
	})

	assert.True(t, m.TotalBudget.Equal(decimal.NewFromInt(36500)))
	assert.True(t, m.MOOE.Equal(decimal.NewFromInt(11500)))
	assert.True(t, m.PS.Equal(decimal.NewFromInt(5000)))
	assert.True(t, m.CO.Equal(decimal.NewFromInt(20000)))
	assert.Equal(t, 1, m.Submitted)
	assert.Equal(t, 1, m.Drafts)
	assert.Equal(t, 1, m.ForRevision)
	assert.Equal(t, 1, m.Approved)
	assert.Equal(t, 3, m.ClientFocused)
	assert.Equal(t, 1, m.OrgFocused)
}

func TestBudgetByOfficeGroupsAndSorts(t *testing.T) {
	offices := planmath.BudgetByOffice([]domain.Proposal{
		proposal("MSWDO", domain.StatusSubmitted, domain.FocusClient, 10000, 0, 0),
		proposal("HRMO", domain.StatusSubmitted, domain.FocusClient, 50000, 0, 0),
		proposal("MSWDO", domain.StatusApproved, domain.FocusClient, 5000, 0, 0),
	})

	require.Len(t, offices, 2)
	assert.Equal(t, "HRMO", offices[0].OfficeName)
	assert.True(t, offices[0].Budget.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, "MSWDO", offices[1].OfficeName)
	assert.True(t, offices[1].Budget.Equal(decimal.NewFromInt(15000)))
}

func TestSummarize(t *testing.T) {
	proposals := []domain.Proposal{
		proposal("MSWDO", domain.StatusApproved, domain.FocusClient, 10000, 0, 0),
		proposal("HRMO", domain.StatusSubmitted, domain.FocusOrganization, 0, 4000, 0),
	}

	s := planmath.Summarize(proposals, 10, 5)
	assert.True(t, s.TotalBudget.Equal(decimal.NewFromInt(14000)))
	assert.True(t, s.ApprovedBudget.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, 10, s.OfficeCount)
	assert.InDelta(t, 20.0, s.SubmissionRate, 0.001)
	assert.Len(t, s.TopOffices, 2)
}

func TestSubmissionRateZeroOffices(t *testing.T) {
	// A misconfigured profiles table must not panic the executive view.
	rate := planmath.SubmissionRate(nil, 0)
	assert.Zero(t, rate)
}
