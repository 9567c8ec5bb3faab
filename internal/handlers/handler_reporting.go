package handlers

import (
	"net/http"

	portssvc "github.com/lgupililla/gad_planning_app/internal/core/ports/services"
	"github.com/lgupililla/gad_planning_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the executive briefing and monitoring analytics.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	profileService   portssvc.ProfileSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade, profiles portssvc.ProfileSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		profileService:   profiles,
	}
}

// RegisterReportingRoutes registers the reporting routes.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, profileService portssvc.ProfileSvcFacade) {
	h := newReportingHandler(reportingService, profileService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/analytics", h.getAnalytics)
	}
}

// getSummary godoc
// @Summary Executive plan summary
// @Description Returns total and approved budget, office participation and the top requesting offices. GAD unit and executive accounts only.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.PlanSummaryResponse
// @Failure 403 {object} map[string]string "Acting account cannot view reports"
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	_, actor, ok := resolveActor(c, h.profileService)
	if !ok {
		return
	}

	summary, err := h.reportingService.GetSummary(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err, "Failed to build plan summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToPlanSummaryResponse(summary))
}

// getAnalytics godoc
// @Summary Monitoring analytics
// @Description Returns budget breakdowns by fund type, focus and status over every proposal, drafts included. GAD unit and executive accounts only.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.PlanAnalyticsResponse
// @Failure 403 {object} map[string]string "Acting account cannot view reports"
// @Failure 500 {object} map[string]string "Failed to build analytics"
// @Security BearerAuth
// @Router /reports/analytics [get]
func (h *reportingHandler) getAnalytics(c *gin.Context) {
	_, actor, ok := resolveActor(c, h.profileService)
	if !ok {
		return
	}

	analytics, err := h.reportingService.GetAnalytics(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err, "Failed to build plan analytics")
		return
	}

	c.JSON(http.StatusOK, dto.ToPlanAnalyticsResponse(analytics))
}
