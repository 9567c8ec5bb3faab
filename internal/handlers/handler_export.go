package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/lgupililla/gad_planning_app/internal/core/ports/services"
	"github.com/lgupililla/gad_planning_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exportHandler serves the consolidated Annual GAD Plan and Budget.
type exportHandler struct {
	exportService  portssvc.ExportSvcFacade
	profileService portssvc.ProfileSvcFacade
}

func newExportHandler(es portssvc.ExportSvcFacade, profiles portssvc.ProfileSvcFacade) *exportHandler {
	return &exportHandler{
		exportService:  es,
		profileService: profiles,
	}
}

// RegisterExportRoutes registers the plan export routes.
func RegisterExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportSvcFacade, profileService portssvc.ProfileSvcFacade) {
	h := newExportHandler(exportService, profileService)

	export := rg.Group("/export")
	{
		export.GET("/plan", h.getPlan)
		export.GET("/plan.csv", h.getPlanCSV)
	}
}

// getPlan godoc
// @Summary Consolidated GAD plan
// @Description Returns the consolidated plan assembled from the approved registry, split into client-focused and agency-focused parts. GAD unit and executive accounts only.
// @Tags export
// @Produce json
// @Success 200 {object} dto.GADPlanExport
// @Failure 403 {object} map[string]string "Acting account cannot export"
// @Failure 500 {object} map[string]string "Failed to build plan"
// @Security BearerAuth
// @Router /export/plan [get]
func (h *exportHandler) getPlan(c *gin.Context) {
	_, actor, ok := resolveActor(c, h.profileService)
	if !ok {
		return
	}

	plan, err := h.exportService.BuildPlan(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err, "Failed to build consolidated plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// getPlanCSV godoc
// @Summary Consolidated GAD plan as CSV
// @Description Streams the consolidated plan as a CSV download.
// @Tags export
// @Produce text/csv
// @Success 200 {string} string "CSV document"
// @Failure 403 {object} map[string]string "Acting account cannot export"
// @Failure 500 {object} map[string]string "Failed to build plan"
// @Security BearerAuth
// @Router /export/plan.csv [get]
func (h *exportHandler) getPlanCSV(c *gin.Context) {
	_, actor, ok := resolveActor(c, h.profileService)
	if !ok {
		return
	}

	plan, err := h.exportService.BuildPlan(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err, "Failed to build consolidated plan")
		return
	}

	filename := "gad-plan-" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if err := h.exportService.WriteCSV(plan, c.Writer); err != nil {
		// Headers are already out; log instead of rewriting the response.
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to stream plan CSV", "error", err)
	}
}
