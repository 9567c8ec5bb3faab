package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lgupililla/gad_planning_app/internal/apperrors"
	"github.com/lgupililla/gad_planning_app/internal/core/domain"
	portssvc "github.com/lgupililla/gad_planning_app/internal/core/ports/services"
	"github.com/lgupililla/gad_planning_app/internal/core/services"
	"github.com/lgupililla/gad_planning_app/internal/dto"
)

type ProposalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProposalRepository
	service  portssvc.ProposalSvcFacade

	office   domain.Actor
	reviewer domain.Actor
	mayor    domain.Actor
}

func (suite *ProposalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProposalRepository)
	suite.service = services.NewProposalService(suite.mockRepo)

	suite.office = domain.Actor{ProfileID: uuid.NewString(), Role: domain.RoleUser, Label: "Municipal Health Office"}
	suite.reviewer = domain.Actor{ProfileID: uuid.NewString(), Role: domain.RoleGADUnit, Label: "GAD UNIT AUDITOR"}
	suite.mayor = domain.Actor{ProfileID: uuid.NewString(), Role: domain.RoleMayor, Label: "OFFICE OF THE MAYOR"}
}

func (suite *ProposalServiceTestSuite) saveRequest(submit bool) dto.SaveProposalRequest {
	return dto.SaveProposalRequest{
		PPACategory:    domain.CategoryClientFocused,
		FocusType:      domain.FocusClient,
		CategoryType:   domain.CategoryGenderIssue,
		IssueStatement: "Low female participation in livelihood training",
		DataEvidence:   "2025 CBMS survey",
		IssueSource:    "MPDO",
		Objective:      "Raise female participation to half of all trainees",
		ActivityName:   "Skills training caravan",
		Indicators: []dto.IndicatorInput{
			{IndicatorText: "Female participation", TargetText: "50"},
		},
		BudgetItems: []dto.BudgetItemInput{
			{Description: "Training supplies", Amount: decimal.NewFromInt(10000), FundType: domain.FundMOOE},
		},
		Submit: submit,
	}
}

func (suite *ProposalServiceTestSuite) TestCreateProposal_Submit() {
	ctx := context.Background()
	req := suite.saveRequest(true)

	suite.mockRepo.On("CreateProposal", ctx,
		mock.AnythingOfType("domain.Proposal"),
		mock.AnythingOfType("[]domain.Indicator"),
		mock.AnythingOfType("[]domain.BudgetItem"),
		mock.AnythingOfType("domain.HistoryEntry"),
	).Return(nil).Once()

	created, err := suite.service.CreateProposal(ctx, suite.office, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(domain.StatusSubmitted, created.Status)
	suite.Equal(suite.office.ProfileID, created.OwnerID)
	suite.Equal(suite.office.Label, created.OfficeName)
	suite.True(created.TotalMOOE.Equal(decimal.NewFromInt(10000)))
	suite.True(created.TotalPS.IsZero())
	suite.True(created.TotalCO.IsZero())
	suite.True(created.BudgetTotal().Equal(decimal.NewFromInt(10000)))
	suite.EqualValues(1, created.Version)

	call := suite.mockRepo.Calls[0]
	entry := call.Arguments.Get(4).(domain.HistoryEntry)
	suite.Equal(string(domain.StatusSubmitted), entry.ActionType)
	suite.Equal(suite.office.Label, entry.ActionBy)
	suite.Equal(created.ProposalID, entry.ProposalID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProposalServiceTestSuite) TestCreateProposal_Draft() {
	ctx := context.Background()
	req := suite.saveRequest(false)
	// Drafts skip the completeness gate entirely.
	req.IssueStatement = ""

	suite.mockRepo.On("CreateProposal", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	created, err := suite.service.CreateProposal(ctx, suite.office, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusDraft, created.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProposalServiceTestSuite) TestCreateProposal_SubmitIncomplete() {
	ctx := context.Background()
	req := suite.saveRequest(true)
	req.ActivityName = "   "

	_, err := suite.service.CreateProposal(ctx, suite.office, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateProposal", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProposalServiceTestSuite) TestCreateProposal_ReviewerForbidden() {
	ctx := context.Background()

	_, err := suite.service.CreateProposal(ctx, suite.reviewer, suite.saveRequest(true))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateProposal", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProposalServiceTestSuite) TestCreateProposal_NegativeBudgetItem() {
	ctx := context.Background()
	req := suite.saveRequest(true)
	req.BudgetItems = []dto.BudgetItemInput{
		{Description: "Refund", Amount: decimal.NewFromInt(-500), FundType: domain.FundMOOE},
	}

	_, err := suite.service.CreateProposal(ctx, suite.office, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ProposalServiceTestSuite) existingProposal(status domain.ProposalStatus, version int64) *domain.Proposal {
	return &domain.Proposal{
		ProposalID:   uuid.NewString(),
		OwnerID:      suite.office.ProfileID,
		OfficeName:   suite.office.Label,
		PPACategory:  domain.CategoryClientFocused,
		FocusType:    domain.FocusClient,
		CategoryType: domain.CategoryGenderIssue,
		GenderIssue: domain.GenderIssue{
			Statement: "Low female participation in livelihood training",
		},
		ActivityName: "Skills training caravan",
		TotalMOOE:    decimal.NewFromInt(10000),
		TotalPS:      decimal.Zero,
		TotalCO:      decimal.Zero,
		Status:       status,
		Version:      version,
	}
}

func (suite *ProposalServiceTestSuite) TestUpdateProposal_ResubmitAfterRevision() {
	ctx := context.Background()
	existing := suite.existingProposal(domain.StatusForRevision, 3)
	existing.SectionalComments = domain.SectionalComments{domain.SectionBudget: "justify CO item"}
	suite.mockRepo.On("FindProposalByID", ctx, existing.ProposalID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateProposal", ctx, mock.Anything, mock.Anything, mock.Anything,
		[]domain.ProposalStatus{domain.StatusForRevision}, mock.Anything).Return(nil).Once()

	req := suite.saveRequest(true)
	req.Version = 3

	updated, err := suite.service.UpdateProposal(ctx, suite.office, existing.ProposalID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusSubmitted, updated.Status)
	suite.Equal("justify CO item", updated.SectionalComments[domain.SectionBudget],
		"sectional remarks survive resubmission")
	suite.EqualValues(4, updated.Version)

	saved := suite.mockRepo.Calls[1].Arguments.Get(1).(domain.Proposal)
	suite.Equal("justify CO item", saved.SectionalComments[domain.SectionBudget])
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProposalServiceTestSuite) TestUpdateProposal_NotOwner() {
	ctx := context.Background()
	existing := suite.existingProposal(domain.StatusDraft, 1)
	suite.mockRepo.On("FindProposalByID", ctx, existing.ProposalID).Return(existing, nil).Once()

	other := domain.Actor{ProfileID: uuid.NewString(), Role: domain.RoleUser, Label: "Municipal Engineering Office"}
	req := suite.saveRequest(false)
	req.Version = 1
	_, err := suite.service.UpdateProposal(ctx, other, existing.ProposalID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateProposal", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProposalServiceTestSuite) TestUpdateProposal_ApprovedIsLocked() {
	ctx := context.Background()
	existing := suite.existingProposal(domain.StatusApproved, 5)
	suite.mockRepo.On("FindProposalByID", ctx, existing.ProposalID).Return(existing, nil).Once()

	req := suite.saveRequest(true)
	req.Version = 5
	_, err := suite.service.UpdateProposal(ctx, suite.office, existing.ProposalID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ProposalServiceTestSuite) TestUpdateProposal_MissingVersionRejected() {
	ctx := context.Background()

	req := suite.saveRequest(false)

	_, err := suite.service.UpdateProposal(ctx, suite.office, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindProposalByID", mock.Anything, mock.Anything)
}

func (suite *ProposalServiceTestSuite) TestUpdateProposal_ConflictPropagates() {
	ctx := context.Background()
	existing := suite.existingProposal(domain.StatusDraft, 2)
	suite.mockRepo.On("FindProposalByID", ctx, existing.ProposalID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateProposal", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(apperrors.ErrConflict).Once()

	req := suite.saveRequest(false)
	req.Version = 1 // stale read

	_, err := suite.service.UpdateProposal(ctx, suite.office, existing.ProposalID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *ProposalServiceTestSuite) TestReviewProposal_Approve() {
	ctx := context.Background()
	existing := suite.existingProposal(domain.StatusSubmitted, 2)
	suite.mockRepo.On("FindProposalByID", ctx, existing.ProposalID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateReview", ctx, mock.Anything,
		[]domain.ProposalStatus{domain.StatusSubmitted}, mock.Anything).Return(nil).Once()

	updated, err := suite.service.ReviewProposal(ctx, suite.reviewer, existing.ProposalID, dto.ReviewProposalRequest{Action: "approve", Version: 2})

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, updated.Status)
	suite.Require().NotNil(updated.ApprovedAt)
	suite.EqualValues(3, updated.Version)

	entry := suite.mockRepo.Calls[1].Arguments.Get(3).(domain.HistoryEntry)
	suite.Equal(string(domain.StatusApproved), entry.ActionType)
	suite.Equal(suite.reviewer.Label, entry.ActionBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProposalServiceTestSuite) TestReviewProposal_ReturnWithSectionalRemarks() {
	ctx := context.Background()
	existing := suite.existingProposal(domain.StatusSubmitted, 2)
	suite.mockRepo.On("FindProposalByID", ctx, existing.ProposalID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateReview", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	req := dto.ReviewProposalRequest{
		Action:            "return",
		SectionalComments: domain.SectionalComments{domain.SectionBudget: "justify CO item"},
		Version:           2,
	}
	updated, err := suite.service.ReviewProposal(ctx, suite.reviewer, existing.ProposalID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusForRevision, updated.Status)
	suite.Equal("justify CO item", updated.SectionalComments[domain.SectionBudget])
	suite.Nil(updated.ApprovedAt)

	entry := suite.mockRepo.Calls[1].Arguments.Get(3).(domain.HistoryEntry)
	suite.Contains(entry.ChangeSummary, "Sectional remarks saved")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProposalServiceTestSuite) TestReviewProposal_ApproveStoresSectionalRemarks() {
	ctx := context.Background()
	existing := suite.existingProposal(domain.StatusSubmitted, 2)
	suite.mockRepo.On("FindProposalByID", ctx, existing.ProposalID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateReview", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	req := dto.ReviewProposalRequest{
		Action:            "approve",
		SectionalComments: domain.SectionalComments{domain.SectionBudget: "good breakdown"},
		Version:           2,
	}
	updated, err := suite.service.ReviewProposal(ctx, suite.reviewer, existing.ProposalID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, updated.Status)
	suite.Equal("good breakdown", updated.SectionalComments[domain.SectionBudget])

	saved := suite.mockRepo.Calls[1].Arguments.Get(1).(domain.Proposal)
	suite.Equal("good breakdown", saved.SectionalComments[domain.SectionBudget])
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProposalServiceTestSuite) TestReviewProposal_NarrativeCorrectionsApplied() {
	ctx := context.Background()
	existing := suite.existingProposal(domain.StatusSubmitted, 2)
	existing.GenderIssue.DataEvidence = "CSWDO intake records, 2025"
	suite.mockRepo.On("FindProposalByID", ctx, existing.ProposalID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateReview", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	corrected := "Limited access of women vendors to market stalls"
	objective := "Allocate 30% of new stalls to women-led enterprises"
	req := dto.ReviewProposalRequest{
		Action:         "approve",
		Version:        2,
		IssueStatement: &corrected,
		Objective:      &objective,
	}
	updated, err := suite.service.ReviewProposal(ctx, suite.reviewer, existing.ProposalID, req)

	suite.Require().NoError(err)
	suite.Equal(corrected, updated.GenderIssue.Statement)
	suite.Equal(objective, updated.Objective)
	suite.Equal(existing.GenderIssue.DataEvidence, updated.GenderIssue.DataEvidence)

	saved := suite.mockRepo.Calls[1].Arguments.Get(1).(domain.Proposal)
	suite.Equal(corrected, saved.GenderIssue.Statement)
	suite.Equal(objective, saved.Objective)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProposalServiceTestSuite) TestReviewProposal_UnknownSectionRejected() {
	ctx := context.Background()
	existing := suite.existingProposal(domain.StatusSubmitted, 2)
	suite.mockRepo.On("FindProposalByID", ctx, existing.ProposalID).Return(existing, nil).Once()

	req := dto.ReviewProposalRequest{
		Action:            "return",
		SectionalComments: domain.SectionalComments{"annexes": "missing"},
	}
	_, err := suite.service.ReviewProposal(ctx, suite.reviewer, existing.ProposalID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProposalServiceTestSuite) TestReviewProposal_OfficeRoleForbidden() {
	ctx := context.Background()
	existing := suite.existingProposal(domain.StatusSubmitted, 2)
	suite.mockRepo.On("FindProposalByID", ctx, existing.ProposalID).Return(existing, nil).Once()

	_, err := suite.service.ReviewProposal(ctx, suite.office, existing.ProposalID, dto.ReviewProposalRequest{Action: "approve"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProposalServiceTestSuite) TestReviewProposal_ReviewerCannotDecideOnReturned() {
	ctx := context.Background()
	existing := suite.existingProposal(domain.StatusForRevision, 3)
	suite.mockRepo.On("FindProposalByID", ctx, existing.ProposalID).Return(existing, nil).Once()

	_, err := suite.service.ReviewProposal(ctx, suite.reviewer, existing.ProposalID, dto.ReviewProposalRequest{Action: "approve"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ProposalServiceTestSuite) TestReviewProposal_ExecutiveMayApproveReturned() {
	ctx := context.Background()
	existing := suite.existingProposal(domain.StatusForRevision, 3)
	suite.mockRepo.On("FindProposalByID", ctx, existing.ProposalID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateReview", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	updated, err := suite.service.ReviewProposal(ctx, suite.mayor, existing.ProposalID, dto.ReviewProposalRequest{Action: "approve", Version: 3})

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, updated.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProposalServiceTestSuite) TestAttachExecutiveRemark() {
	ctx := context.Background()
	existing := suite.existingProposal(domain.StatusApproved, 4)
	suite.mockRepo.On("FindProposalByID", ctx, existing.ProposalID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateExecutiveRemark", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	err := suite.service.AttachExecutiveRemark(ctx, suite.mayor, existing.ProposalID, "Commendable initiative")

	suite.Require().NoError(err)
	saved := suite.mockRepo.Calls[1].Arguments.Get(1).(domain.Proposal)
	suite.Equal("Commendable initiative", saved.ReviewerRemark)
	suite.Equal(domain.StatusApproved, saved.Status)

	entry := suite.mockRepo.Calls[1].Arguments.Get(2).(domain.HistoryEntry)
	suite.Equal("Executive Remark", entry.ActionType)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProposalServiceTestSuite) TestAttachExecutiveRemark_ReviewerForbidden() {
	ctx := context.Background()

	err := suite.service.AttachExecutiveRemark(ctx, suite.reviewer, uuid.NewString(), "remark")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateExecutiveRemark", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProposalServiceTestSuite) TestGetProposal_OwnerSeesOwnDraft() {
	ctx := context.Background()
	existing := suite.existingProposal(domain.StatusDraft, 1)
	suite.mockRepo.On("FindProposalByID", ctx, existing.ProposalID).Return(existing, nil).Once()
	suite.mockRepo.On("FindIndicatorsByProposalID", ctx, existing.ProposalID).Return([]domain.Indicator{}, nil).Once()
	suite.mockRepo.On("FindBudgetItemsByProposalID", ctx, existing.ProposalID).Return([]domain.BudgetItem{}, nil).Once()
	suite.mockRepo.On("FindHistoryByProposalID", ctx, existing.ProposalID).Return([]domain.HistoryEntry{}, nil).Once()

	record, err := suite.service.GetProposal(ctx, suite.office, existing.ProposalID)

	suite.Require().NoError(err)
	suite.Equal(existing.ProposalID, record.Proposal.ProposalID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProposalServiceTestSuite) TestGetProposal_ReviewerCannotSeeDraft() {
	ctx := context.Background()
	existing := suite.existingProposal(domain.StatusDraft, 1)
	suite.mockRepo.On("FindProposalByID", ctx, existing.ProposalID).Return(existing, nil).Once()

	_, err := suite.service.GetProposal(ctx, suite.reviewer, existing.ProposalID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ProposalServiceTestSuite) TestListForReview_OfficeForbidden() {
	ctx := context.Background()

	_, err := suite.service.ListForReview(ctx, suite.office)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListSubmittedProposals", mock.Anything)
}

func (suite *ProposalServiceTestSuite) TestListApproved() {
	ctx := context.Background()
	records := []domain.ProposalRecord{{Proposal: *suite.existingProposal(domain.StatusApproved, 4)}}
	suite.mockRepo.On("ListProposalsByStatus", ctx, []domain.ProposalStatus{domain.StatusApproved}).Return(records, nil).Once()

	got, err := suite.service.ListApproved(ctx, suite.mayor)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestProposalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProposalServiceTestSuite))
}
