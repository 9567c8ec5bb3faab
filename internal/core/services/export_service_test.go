package services_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/lgupililla/gad_planning_app/internal/apperrors"
	"github.com/lgupililla/gad_planning_app/internal/core/domain"
	portssvc "github.com/lgupililla/gad_planning_app/internal/core/ports/services"
	"github.com/lgupililla/gad_planning_app/internal/core/services"
)

type ExportServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProposalRepository
	service  portssvc.ExportSvcFacade

	mayor domain.Actor
}

func (suite *ExportServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProposalRepository)
	suite.service = services.NewExportService(suite.mockRepo)
	suite.mayor = domain.Actor{ProfileID: uuid.NewString(), Role: domain.RoleMayor, Label: "OFFICE OF THE MAYOR"}
}

func approvedRecord(office string, category domain.PPACategory, mooe int64) domain.ProposalRecord {
	proposalID := uuid.NewString()
	return domain.ProposalRecord{
		Proposal: domain.Proposal{
			ProposalID:  proposalID,
			OfficeName:  office,
			PPACategory: category,
			GenderIssue: domain.GenderIssue{
				Statement:    "Low female participation in livelihood training",
				DataEvidence: "2025 CBMS survey",
				Source:       "MPDO",
			},
			Objective:    "Raise female participation",
			ActivityName: "Skills training caravan",
			TotalMOOE:    decimal.NewFromInt(mooe),
			TotalPS:      decimal.Zero,
			TotalCO:      decimal.Zero,
			Status:       domain.StatusApproved,
		},
		Indicators: []domain.Indicator{
			{IndicatorID: uuid.NewString(), ProposalID: proposalID, IndicatorText: "Female participation", TargetText: "50"},
		},
		BudgetItems: []domain.BudgetItem{
			{BudgetItemID: uuid.NewString(), ProposalID: proposalID, Description: "Training supplies", Amount: decimal.NewFromInt(mooe), FundType: domain.FundMOOE},
		},
	}
}

func (suite *ExportServiceTestSuite) TestBuildPlan_SplitsPartsAndTotals() {
	ctx := context.Background()
	records := []domain.ProposalRecord{
		approvedRecord("Health Office", domain.CategoryClientFocused, 10000),
		approvedRecord("Mayor's Office", domain.CategoryAgencyFocused, 4000),
	}
	suite.mockRepo.On("ListProposalsByStatus", ctx, []domain.ProposalStatus{domain.StatusApproved}).Return(records, nil).Once()

	plan, err := suite.service.BuildPlan(ctx, suite.mayor)

	suite.Require().NoError(err)
	suite.Len(plan.PartA.Rows, 1)
	suite.Len(plan.PartB.Rows, 1)
	suite.True(plan.PartA.Subtotal.Equal(decimal.NewFromInt(10000)))
	suite.True(plan.PartB.Subtotal.Equal(decimal.NewFromInt(4000)))
	suite.True(plan.GrandTotal.Equal(decimal.NewFromInt(14000)))

	row := plan.PartA.Rows[0]
	suite.Equal("Issue: Low female participation in livelihood training\nData: 2025 CBMS survey\nSource: MPDO", row.GenderIssue)
	suite.Equal("2025 CBMS survey (MPDO)", row.DataSource)
	suite.Equal("Health Office", row.Office)
	suite.Equal("MOOE", row.FundSource)
	suite.Contains(row.Indicators, "Female participation: 50")
	suite.Contains(row.Indicators, "Training supplies: PHP 10000.00 (MOOE)")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExportServiceTestSuite) TestBuildPlan_OfficeForbidden() {
	ctx := context.Background()
	office := domain.Actor{ProfileID: uuid.NewString(), Role: domain.RoleUser}

	_, err := suite.service.BuildPlan(ctx, office)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListProposalsByStatus", nil, nil)
}

func (suite *ExportServiceTestSuite) TestWriteCSV() {
	ctx := context.Background()
	records := []domain.ProposalRecord{
		approvedRecord("Health Office", domain.CategoryClientFocused, 10000),
	}
	suite.mockRepo.On("ListProposalsByStatus", ctx, []domain.ProposalStatus{domain.StatusApproved}).Return(records, nil).Once()

	plan, err := suite.service.BuildPlan(ctx, suite.mayor)
	suite.Require().NoError(err)

	var buf bytes.Buffer
	suite.Require().NoError(suite.service.WriteCSV(plan, &buf))

	reader := csv.NewReader(&buf)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	suite.Require().NoError(err)

	// Part A title, header, one data row, subtotal; Part B title, header,
	// subtotal; grand total.
	suite.Len(rows, 8)
	suite.Equal("PART A: CLIENT-FOCUSED", rows[0][0])
	suite.Len(rows[1], 9)
	suite.Equal("Health Office", rows[2][8])
	suite.Equal("SUBTOTAL", rows[3][0])
	suite.Equal("10000.00", rows[3][6])
	suite.Equal("GRAND TOTAL", rows[7][0])
	suite.Equal("10000.00", rows[7][6])
}

func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}
