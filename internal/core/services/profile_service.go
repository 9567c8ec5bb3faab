package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lgupililla/gad_planning_app/internal/apperrors"
	"github.com/lgupililla/gad_planning_app/internal/core/domain"
	portsrepo "github.com/lgupililla/gad_planning_app/internal/core/ports/repositories"
	portssvc "github.com/lgupililla/gad_planning_app/internal/core/ports/services"
	"github.com/lgupililla/gad_planning_app/internal/dto"
	"github.com/lgupililla/gad_planning_app/internal/middleware"
	"github.com/lgupililla/gad_planning_app/internal/utils"
)

// profileService manages office accounts and the approval gate.
type profileService struct {
	profileRepo portsrepo.ProfileRepositoryFacade
}

// NewProfileService creates a new profile service.
func NewProfileService(profileRepo portsrepo.ProfileRepositoryFacade) portssvc.ProfileSvcFacade {
	return &profileService{profileRepo: profileRepo}
}

// Ensure profileService implements the portssvc.ProfileSvcFacade interface
var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

// Register creates a new, unapproved office account.
func (s *profileService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Profile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.profileRepo.FindProfileByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Wrapf(apperrors.ErrDuplicate, "an account already exists for %s", req.Email)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}

	now := time.Now().UTC()
	profileID := uuid.NewString()
	profile := domain.Profile{
		ProfileID:    profileID,
		Email:        req.Email,
		OfficeName:   req.OfficeName,
		Role:         role,
		IsApproved:   false,
		AuthProvider: domain.ProviderLocal,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     profileID,
			LastUpdatedAt: now,
			LastUpdatedBy: profileID,
		},
	}

	if err := s.profileRepo.SaveProfile(ctx, profile); err != nil {
		logger.Error("Failed to save new profile", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Office account registered", slog.String("profile_id", profileID), slog.String("office", req.OfficeName))
	return &profile, nil
}

// Authenticate verifies credentials and the office approval gate. Reviewer and
// executive roles bypass the gate.
func (s *profileService) Authenticate(ctx context.Context, email, password string) (*domain.Profile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	profile, err := s.profileRepo.FindProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Wrapf(apperrors.ErrUnauthorized, "invalid email or password")
		}
		return nil, err
	}

	if profile.PasswordHash == "" || !utils.CheckPasswordHash(password, profile.PasswordHash) {
		logger.Warn("Failed login attempt", slog.String("profile_id", profile.ProfileID))
		return nil, apperrors.Wrapf(apperrors.ErrUnauthorized, "invalid email or password")
	}

	if err := checkApprovalGate(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// checkApprovalGate rejects unapproved office accounts. Reviewer and executive
// roles are provisioned out of band and bypass the gate.
func checkApprovalGate(profile *domain.Profile) error {
	if profile.IsApproved || profile.Role.IsReviewer() || profile.Role.IsExecutive() {
		return nil
	}
	return apperrors.Wrapf(apperrors.ErrForbidden, "account is awaiting approval by the GAD unit")
}

// GetProfileByID retrieves a profile.
func (s *profileService) GetProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	return s.profileRepo.FindProfileByID(ctx, profileID)
}

// CreateOAuthProfile finds or creates the profile bound to an external
// identity. An existing local account with the same email is linked rather
// than duplicated.
func (s *profileService) CreateOAuthProfile(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string) (*domain.Profile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	profile, err := s.profileRepo.FindProfileByProvider(ctx, provider, providerUserID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	byEmail, err := s.profileRepo.FindProfileByEmail(ctx, email)
	if err == nil {
		return byEmail, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	profileID := uuid.NewString()
	created := domain.Profile{
		ProfileID:      profileID,
		Email:          email,
		OfficeName:     name,
		Role:           domain.RoleUser,
		IsApproved:     false,
		AuthProvider:   provider,
		ProviderUserID: providerUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     profileID,
			LastUpdatedAt: now,
			LastUpdatedBy: profileID,
		},
	}
	if err := s.profileRepo.SaveProfile(ctx, created); err != nil {
		logger.Error("Failed to save OAuth profile", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Office account created via external sign-in", slog.String("profile_id", profileID), slog.String("provider", string(provider)))
	return &created, nil
}

// ListProfiles returns every registered account for the approval console.
func (s *profileService) ListProfiles(ctx context.Context, actor domain.Actor) ([]domain.Profile, error) {
	if !actor.Role.IsReviewer() {
		return nil, apperrors.Wrapf(apperrors.ErrForbidden, "role %s may not manage office accounts", actor.Role)
	}
	return s.profileRepo.ListProfiles(ctx)
}

// SetApproval approves or revokes an office account.
func (s *profileService) SetApproval(ctx context.Context, actor domain.Actor, profileID string, approved bool) (*domain.Profile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.Role.IsReviewer() {
		return nil, apperrors.Wrapf(apperrors.ErrForbidden, "role %s may not manage office accounts", actor.Role)
	}

	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.profileRepo.UpdateApproval(ctx, profileID, approved, actor.ProfileID, now); err != nil {
		logger.Error("Failed to update account approval", slog.String("error", err.Error()), slog.String("profile_id", profileID))
		return nil, err
	}

	profile.IsApproved = approved
	profile.LastUpdatedAt = now
	profile.LastUpdatedBy = actor.ProfileID
	logger.Info("Account approval changed", slog.String("profile_id", profileID), slog.Bool("approved", approved))
	return profile, nil
}
