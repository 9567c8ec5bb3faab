package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/lgupililla/gad_planning_app/internal/core/domain"
	portssvc "github.com/lgupililla/gad_planning_app/internal/core/ports/services"
	"github.com/lgupililla/gad_planning_app/internal/dto"
	"github.com/lgupililla/gad_planning_app/internal/middleware"
	"github.com/lgupililla/gad_planning_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	profileService portssvc.ProfileSvcFacade
	tokenService   portssvc.TokenSvcFacade
	cfg            *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(profiles portssvc.ProfileSvcFacade, tokens portssvc.TokenSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		profileService: profiles,
		tokenService:   tokens,
		cfg:            cfg,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.Profile, services.Token, cfg)

	// Rate limit: 5 requests per minute per IP on credential endpoints.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", middleware.AuthMiddleware(cfg.JWTSecret), h.Logout)
	}
}

// issueTokenPair generates the access and refresh token pair for a profile and
// sets the refresh token cookie. Shared with the Google sign-in handler.
func issueTokenPair(c *gin.Context, tokens portssvc.TokenSvcFacade, cfg *config.Config, profile *domain.Profile) (accessToken, refreshToken string, err error) {
	accessToken, _, err = tokens.GenerateAccessToken(c.Request.Context(), profile)
	if err != nil {
		return "", "", err
	}

	refreshToken, refreshExpiry, err := tokens.GenerateRefreshToken(c.Request.Context(), profile)
	if err != nil {
		return "", "", err
	}

	maxAge := int(time.Until(refreshExpiry).Seconds())
	c.SetCookie(cfg.RefreshTokenCookieName, refreshToken, maxAge, cfg.RefreshTokenCookiePath, "", cfg.IsProduction, true)

	return accessToken, refreshToken, nil
}

// Login godoc
// @Summary Office login
// @Description Authenticates an office account and returns an access token plus a rotating refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Account awaiting GAD unit approval"
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	profile, err := h.profileService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err, "Failed to authenticate")
		return
	}

	accessToken, refreshToken, err := issueTokenPair(c, h.tokenService, h.cfg, profile)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to issue tokens", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		Profile:      dto.ToProfileResponse(profile),
	})
}

// Register godoc
// @Summary Register an office account
// @Description Creates a new office account. Accounts start unapproved and cannot log in until the GAD unit approves them.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Office registration details"
// @Success 201 {object} dto.ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	profile, err := h.profileService.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to register office account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToProfileResponse(profile))
}

// Refresh godoc
// @Summary Exchange a refresh token
// @Description Validates the presented refresh token and returns a fresh access and refresh token pair. Refresh tokens rotate on every exchange.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Profile ID and refresh token (token may come from the cookie instead)"
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Invalid or expired refresh token"
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	refreshToken := req.RefreshToken
	if refreshToken == "" {
		cookieToken, err := c.Cookie(h.cfg.RefreshTokenCookieName)
		if err != nil || cookieToken == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Refresh token required"})
			return
		}
		refreshToken = cookieToken
	}

	profile, err := h.tokenService.ValidateRefreshToken(c.Request.Context(), req.ProfileID, refreshToken)
	if err != nil {
		respondServiceError(c, err, "Failed to refresh token")
		return
	}

	accessToken, newRefreshToken, err := issueTokenPair(c, h.tokenService, h.cfg, profile)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to issue tokens on refresh", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.RefreshTokenResponse{
		Token:        accessToken,
		RefreshToken: newRefreshToken,
	})
}

// Logout godoc
// @Summary Log out
// @Description Invalidates the stored refresh token and clears the cookie.
// @Tags auth
// @Produce json
// @Success 204 "Logged out"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	profileID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.tokenService.InvalidateRefreshToken(c.Request.Context(), profileID); err != nil {
		respondServiceError(c, err, "Failed to log out")
		return
	}

	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
	c.Status(http.StatusNoContent)
}
