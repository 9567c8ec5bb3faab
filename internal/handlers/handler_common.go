package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/lgupililla/gad_planning_app/internal/apperrors"
	"github.com/lgupililla/gad_planning_app/internal/core/domain"
	portssvc "github.com/lgupililla/gad_planning_app/internal/core/ports/services"
	"github.com/lgupililla/gad_planning_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// resolveActor loads the authenticated profile and builds the lifecycle actor
// for it. It writes the error response and returns false when the request is
// not authenticated or the profile no longer exists.
func resolveActor(c *gin.Context, profileService portssvc.ProfileSvcFacade) (*domain.Profile, domain.Actor, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profileID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Profile ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, domain.Actor{}, false
	}

	profile, err := profileService.GetProfileByID(c.Request.Context(), profileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Authenticated profile no longer exists", slog.String("profile_id", profileID))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return nil, domain.Actor{}, false
		}
		logger.Error("Failed to load authenticated profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return nil, domain.Actor{}, false
	}

	return profile, profile.Actor(), true
}

// respondServiceError maps service errors onto HTTP status codes. fallbackMsg
// is used for unexpected errors so internals never leak to clients.
func respondServiceError(c *gin.Context, err error, fallbackMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}
