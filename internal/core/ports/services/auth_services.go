package services

import (
	"context"
	"time"

	"github.com/lgupililla/gad_planning_app/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the profile.
	GenerateAccessToken(ctx context.Context, profile *domain.Profile) (string, time.Time, error)

	// GenerateRefreshToken creates an opaque refresh token and persists its
	// hash against the profile.
	GenerateRefreshToken(ctx context.Context, profile *domain.Profile) (string, time.Time, error)

	// ValidateRefreshToken checks a presented refresh token against the
	// profile's stored hash and expiry, returning the profile when valid.
	ValidateRefreshToken(ctx context.Context, profileID string, refreshToken string) (*domain.Profile, error)

	// InvalidateRefreshToken clears the stored refresh token (logout).
	InvalidateRefreshToken(ctx context.Context, profileID string) error
}

// GoogleOAuthSvcFacade defines the interface for Google sign-in operations.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateGoogleIDToken validates an ID token string from Google and
	// returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
