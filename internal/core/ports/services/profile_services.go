package services

import (
	"context"

	"github.com/lgupililla/gad_planning_app/internal/core/domain"
	"github.com/lgupililla/gad_planning_app/internal/dto"
)

// ProfileSvc manages office accounts: self-registration, credential checks and
// the office-level approval gate administered by the GAD unit.
type ProfileSvc interface {
	// Register creates a new, unapproved office account.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.Profile, error)

	// Authenticate verifies credentials and the approval gate, returning the
	// profile on success.
	Authenticate(ctx context.Context, email, password string) (*domain.Profile, error)

	// GetProfileByID retrieves a profile.
	GetProfileByID(ctx context.Context, profileID string) (*domain.Profile, error)

	// CreateOAuthProfile finds or creates the profile bound to an external
	// identity (Google sign-in). New accounts start unapproved with role User.
	CreateOAuthProfile(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string) (*domain.Profile, error)

	// ListProfiles returns every registered account (GAD unit only).
	ListProfiles(ctx context.Context, actor domain.Actor) ([]domain.Profile, error)

	// SetApproval approves or revokes an office account (GAD unit only).
	SetApproval(ctx context.Context, actor domain.Actor, profileID string, approved bool) (*domain.Profile, error)
}

// ProfileSvcFacade is the full profile service surface.
type ProfileSvcFacade interface {
	ProfileSvc
}
