package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lgupililla/gad_planning_app/internal/apperrors"
	"github.com/lgupililla/gad_planning_app/internal/core/domain"
	portssvc "github.com/lgupililla/gad_planning_app/internal/core/ports/services"
	"github.com/lgupililla/gad_planning_app/internal/core/services"
	"github.com/lgupililla/gad_planning_app/internal/dto"
	"github.com/lgupililla/gad_planning_app/internal/utils"
)

type ProfileServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProfileRepository
	service  portssvc.ProfileSvcFacade

	gadUnit domain.Actor
}

func (suite *ProfileServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProfileRepository)
	suite.service = services.NewProfileService(suite.mockRepo)
	suite.gadUnit = domain.Actor{ProfileID: uuid.NewString(), Role: domain.RoleGADUnit, Label: "GAD UNIT AUDITOR"}
}

func (suite *ProfileServiceTestSuite) TestRegister_StartsUnapproved() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:      "mho@lgu.example",
		Password:   "correct horse battery",
		OfficeName: "Municipal Health Office",
	}

	suite.mockRepo.On("FindProfileByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveProfile", ctx, mock.AnythingOfType("domain.Profile")).Return(nil).Once()

	profile, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.False(profile.IsApproved)
	suite.Equal(domain.RoleUser, profile.Role)
	suite.Equal(domain.ProviderLocal, profile.AuthProvider)
	suite.NotEqual(req.Password, profile.PasswordHash)
	suite.True(utils.CheckPasswordHash(req.Password, profile.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProfileServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{Email: "mho@lgu.example", Password: "password123", OfficeName: "MHO"}

	suite.mockRepo.On("FindProfileByEmail", ctx, req.Email).Return(&domain.Profile{Email: req.Email}, nil).Once()

	_, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProfile", mock.Anything, mock.Anything)
}

func (suite *ProfileServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	stored := &domain.Profile{
		ProfileID:    uuid.NewString(),
		Email:        "mho@lgu.example",
		Role:         domain.RoleUser,
		IsApproved:   true,
		PasswordHash: hash,
	}
	suite.mockRepo.On("FindProfileByEmail", ctx, stored.Email).Return(stored, nil).Once()

	profile, authErr := suite.service.Authenticate(ctx, stored.Email, "password123")

	suite.Require().NoError(authErr)
	suite.Equal(stored.ProfileID, profile.ProfileID)
}

func (suite *ProfileServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	stored := &domain.Profile{Email: "mho@lgu.example", IsApproved: true, PasswordHash: hash}
	suite.mockRepo.On("FindProfileByEmail", ctx, stored.Email).Return(stored, nil).Once()

	_, authErr := suite.service.Authenticate(ctx, stored.Email, "not the password")

	suite.Require().Error(authErr)
	suite.ErrorIs(authErr, apperrors.ErrUnauthorized)
}

func (suite *ProfileServiceTestSuite) TestAuthenticate_UnapprovedOfficeBlocked() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	stored := &domain.Profile{Email: "mho@lgu.example", Role: domain.RoleUser, IsApproved: false, PasswordHash: hash}
	suite.mockRepo.On("FindProfileByEmail", ctx, stored.Email).Return(stored, nil).Once()

	_, authErr := suite.service.Authenticate(ctx, stored.Email, "password123")

	suite.Require().Error(authErr)
	suite.ErrorIs(authErr, apperrors.ErrForbidden)
}

func (suite *ProfileServiceTestSuite) TestAuthenticate_ReviewerBypassesGate() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	stored := &domain.Profile{Email: "gad@lgu.example", Role: domain.RoleGADUnit, IsApproved: false, PasswordHash: hash}
	suite.mockRepo.On("FindProfileByEmail", ctx, stored.Email).Return(stored, nil).Once()

	profile, authErr := suite.service.Authenticate(ctx, stored.Email, "password123")

	suite.Require().NoError(authErr)
	suite.Equal(domain.RoleGADUnit, profile.Role)
}

func (suite *ProfileServiceTestSuite) TestCreateOAuthProfile_LinksExistingEmail() {
	ctx := context.Background()
	existing := &domain.Profile{ProfileID: uuid.NewString(), Email: "mho@lgu.example"}

	suite.mockRepo.On("FindProfileByProvider", ctx, domain.ProviderGoogle, "goog-123").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindProfileByEmail", ctx, existing.Email).Return(existing, nil).Once()

	profile, err := suite.service.CreateOAuthProfile(ctx, "MHO", existing.Email, domain.ProviderGoogle, "goog-123")

	suite.Require().NoError(err)
	suite.Equal(existing.ProfileID, profile.ProfileID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProfile", mock.Anything, mock.Anything)
}

func (suite *ProfileServiceTestSuite) TestCreateOAuthProfile_CreatesNewUnapproved() {
	ctx := context.Background()

	suite.mockRepo.On("FindProfileByProvider", ctx, domain.ProviderGoogle, "goog-456").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindProfileByEmail", ctx, "new@lgu.example").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveProfile", ctx, mock.AnythingOfType("domain.Profile")).Return(nil).Once()

	profile, err := suite.service.CreateOAuthProfile(ctx, "New Office", "new@lgu.example", domain.ProviderGoogle, "goog-456")

	suite.Require().NoError(err)
	suite.False(profile.IsApproved)
	suite.Equal(domain.RoleUser, profile.Role)
	suite.Equal(domain.ProviderGoogle, profile.AuthProvider)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProfileServiceTestSuite) TestListProfiles_OfficeForbidden() {
	ctx := context.Background()
	office := domain.Actor{ProfileID: uuid.NewString(), Role: domain.RoleUser}

	_, err := suite.service.ListProfiles(ctx, office)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ProfileServiceTestSuite) TestSetApproval() {
	ctx := context.Background()
	target := &domain.Profile{ProfileID: uuid.NewString(), Role: domain.RoleUser, IsApproved: false}

	suite.mockRepo.On("FindProfileByID", ctx, target.ProfileID).Return(target, nil).Once()
	suite.mockRepo.On("UpdateApproval", ctx, target.ProfileID, true, suite.gadUnit.ProfileID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.SetApproval(ctx, suite.gadUnit, target.ProfileID, true)

	suite.Require().NoError(err)
	suite.True(updated.IsApproved)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestProfileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}
