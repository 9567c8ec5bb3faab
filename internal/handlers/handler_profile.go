package handlers

import (
	"net/http"

	portssvc "github.com/lgupililla/gad_planning_app/internal/core/ports/services"
	"github.com/lgupililla/gad_planning_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// profileHandler handles office account administration for the GAD unit.
type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newProfileHandler(ps portssvc.ProfileSvcFacade) *profileHandler {
	return &profileHandler{profileService: ps}
}

// RegisterProfileRoutes registers the account administration routes.
func RegisterProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newProfileHandler(profileService)

	profiles := rg.Group("/profiles")
	{
		profiles.GET("", h.listProfiles)
		profiles.GET("/me", h.getMe)
		profiles.PUT("/:profile_id/approval", h.setApproval)
	}
}

// listProfiles godoc
// @Summary List registered office accounts
// @Description Returns every registered account with its approval state. GAD unit accounts only.
// @Tags profiles
// @Produce json
// @Success 200 {object} dto.ListProfilesResponse
// @Failure 403 {object} map[string]string "Acting account is not a GAD unit account"
// @Security BearerAuth
// @Router /profiles [get]
func (h *profileHandler) listProfiles(c *gin.Context) {
	_, actor, ok := resolveActor(c, h.profileService)
	if !ok {
		return
	}

	profiles, err := h.profileService.ListProfiles(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err, "Failed to list profiles")
		return
	}

	c.JSON(http.StatusOK, dto.ToListProfilesResponse(profiles))
}

// getMe godoc
// @Summary Get the authenticated account
// @Description Returns the acting account's own profile.
// @Tags profiles
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /profiles/me [get]
func (h *profileHandler) getMe(c *gin.Context) {
	profile, _, ok := resolveActor(c, h.profileService)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// setApproval godoc
// @Summary Approve or revoke an office account
// @Description Sets the approval flag of an office account. GAD unit accounts only.
// @Tags profiles
// @Accept json
// @Produce json
// @Param profile_id path string true "Profile ID"
// @Param approval body dto.SetApprovalRequest true "Approval flag"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Acting account is not a GAD unit account"
// @Failure 404 {object} map[string]string "Profile not found"
// @Security BearerAuth
// @Router /profiles/{profile_id}/approval [put]
func (h *profileHandler) setApproval(c *gin.Context) {
	profileID := c.Param("profile_id")

	var req dto.SetApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	_, actor, ok := resolveActor(c, h.profileService)
	if !ok {
		return
	}

	profile, err := h.profileService.SetApproval(c.Request.Context(), actor, profileID, *req.Approved)
	if err != nil {
		respondServiceError(c, err, "Failed to update approval")
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}
