package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/lgupililla/gad_planning_app/internal/apperrors"
	"github.com/lgupililla/gad_planning_app/internal/core/domain"
	portsrepo "github.com/lgupililla/gad_planning_app/internal/core/ports/repositories"
	portssvc "github.com/lgupililla/gad_planning_app/internal/core/ports/services"
	"github.com/lgupililla/gad_planning_app/internal/platform/config"
	"github.com/lgupililla/gad_planning_app/internal/utils"
)

// tokenService handles JWT access tokens and opaque refresh tokens. Refresh
// tokens are stored hashed; the raw value exists only in the client's cookie.
type tokenService struct {
	cfg         *config.Config
	profileRepo portsrepo.ProfileRepositoryFacade
}

// NewTokenService creates a new token service.
func NewTokenService(cfg *config.Config, profileRepo portsrepo.ProfileRepositoryFacade) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, profileRepo: profileRepo}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a signed JWT for the profile.
func (s *tokenService) GenerateAccessToken(ctx context.Context, profile *domain.Profile) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)
	accessToken, err := utils.GenerateJWT(profile.ProfileID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// GenerateRefreshToken creates an opaque refresh token and persists its hash
// against the profile, replacing any previous one.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, profile *domain.Profile) (string, time.Time, error) {
	rawToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	hash := utils.HashRefreshToken(rawToken)
	if err := s.profileRepo.UpdateRefreshToken(ctx, profile.ProfileID, hash, &expiryTime); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}
	return rawToken, expiryTime, nil
}

// ValidateRefreshToken checks a presented refresh token against the stored
// hash and expiry, returning the profile when valid.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, profileID string, refreshToken string) (*domain.Profile, error) {
	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to retrieve profile for refresh token validation: %w", err)
	}

	if profile.RefreshTokenHash == "" || profile.RefreshTokenExpiryTime == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if time.Now().After(*profile.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrRefreshTokenExpired
	}
	if !utils.CompareRefreshTokenHash(refreshToken, profile.RefreshTokenHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return profile, nil
}

// InvalidateRefreshToken clears the stored refresh token on logout.
func (s *tokenService) InvalidateRefreshToken(ctx context.Context, profileID string) error {
	return s.profileRepo.UpdateRefreshToken(ctx, profileID, "", nil)
}

// googleOAuthService implements Google sign-in against the configured OAuth
// client.
type googleOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new Google sign-in service.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
func (s *googleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// ValidateGoogleIDToken validates an ID token received from Google and returns
// the payload if valid.
func (s *googleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured")
	}
	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return payload, nil
}
