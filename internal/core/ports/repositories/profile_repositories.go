package repositories

import (
	"context"
	"time"

	"github.com/lgupililla/gad_planning_app/internal/core/domain"
)

// ProfileReader defines read operations for office accounts.
type ProfileReader interface {
	// FindProfileByID retrieves a specific profile by its ID.
	FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error)

	// FindProfileByEmail retrieves a profile by its login email.
	FindProfileByEmail(ctx context.Context, email string) (*domain.Profile, error)

	// FindProfileByProvider retrieves a profile by its external identity.
	FindProfileByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.Profile, error)

	// ListProfiles retrieves every registered profile, office name ascending.
	ListProfiles(ctx context.Context) ([]domain.Profile, error)

	// CountProfiles returns the number of registered office accounts.
	CountProfiles(ctx context.Context) (int, error)
}

// ProfileWriter defines write operations for office accounts.
type ProfileWriter interface {
	// SaveProfile persists a new profile.
	SaveProfile(ctx context.Context, profile domain.Profile) error

	// UpdateApproval flips the office-level account gate.
	UpdateApproval(ctx context.Context, profileID string, approved bool, updatedBy string, updatedAt time.Time) error

	// UpdateRefreshToken stores the rotated refresh token hash; empty values
	// clear it.
	UpdateRefreshToken(ctx context.Context, profileID string, tokenHash string, expiry *time.Time) error
}

// ProfileRepositoryFacade combines all profile repository interfaces.
type ProfileRepositoryFacade interface {
	ProfileReader
	ProfileWriter
}
