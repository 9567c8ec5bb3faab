package handlers

import (
	"net/http"

	portssvc "github.com/lgupililla/gad_planning_app/internal/core/ports/services"
	"github.com/lgupililla/gad_planning_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// proposalHandler handles HTTP requests for the PPA proposal lifecycle.
type proposalHandler struct {
	proposalService portssvc.ProposalSvcFacade
	profileService  portssvc.ProfileSvcFacade
}

func newProposalHandler(ps portssvc.ProposalSvcFacade, profiles portssvc.ProfileSvcFacade) *proposalHandler {
	return &proposalHandler{
		proposalService: ps,
		profileService:  profiles,
	}
}

// RegisterProposalRoutes registers the proposal lifecycle routes.
func RegisterProposalRoutes(rg *gin.RouterGroup, proposalService portssvc.ProposalSvcFacade, profileService portssvc.ProfileSvcFacade) {
	h := newProposalHandler(proposalService, profileService)

	proposals := rg.Group("/proposals")
	{
		proposals.POST("", h.createProposal)
		proposals.GET("/mine", h.listMyProposals)
		proposals.GET("/review", h.listForReview)
		proposals.GET("/approved", h.listApproved)
		proposals.GET("/:proposal_id", h.getProposal)
		proposals.PUT("/:proposal_id", h.updateProposal)
		proposals.POST("/:proposal_id/review", h.reviewProposal)
		proposals.PUT("/:proposal_id/remark", h.attachExecutiveRemark)
	}
}

// createProposal godoc
// @Summary Create a PPA proposal
// @Description Creates a new PPA proposal for the acting office, as a draft or submitted for verification.
// @Tags proposals
// @Accept json
// @Produce json
// @Param proposal body dto.SaveProposalRequest true "Proposal details"
// @Success 201 {object} dto.ProposalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Reviewer and executive accounts cannot author proposals"
// @Security BearerAuth
// @Router /proposals [post]
func (h *proposalHandler) createProposal(c *gin.Context) {
	var req dto.SaveProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	_, actor, ok := resolveActor(c, h.profileService)
	if !ok {
		return
	}

	proposal, err := h.proposalService.CreateProposal(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create proposal")
		return
	}

	c.JSON(http.StatusCreated, dto.ToProposalResponse(proposal))
}

// updateProposal godoc
// @Summary Update a PPA proposal
// @Description Lets the owning office edit a draft or a returned proposal, saving or resubmitting it.
// @Tags proposals
// @Accept json
// @Produce json
// @Param proposal_id path string true "Proposal ID"
// @Param proposal body dto.SaveProposalRequest true "Proposal details"
// @Success 200 {object} dto.ProposalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not the owning office"
// @Failure 404 {object} map[string]string "Proposal not found"
// @Failure 409 {object} map[string]string "Proposal changed since it was read"
// @Security BearerAuth
// @Router /proposals/{proposal_id} [put]
func (h *proposalHandler) updateProposal(c *gin.Context) {
	proposalID := c.Param("proposal_id")

	var req dto.SaveProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	_, actor, ok := resolveActor(c, h.profileService)
	if !ok {
		return
	}

	proposal, err := h.proposalService.UpdateProposal(c.Request.Context(), actor, proposalID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update proposal")
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalResponse(proposal))
}

// reviewProposal godoc
// @Summary Review a submitted proposal
// @Description Applies a reviewer's or executive's decision: approve, or return for revision with sectional remarks.
// @Tags proposals
// @Accept json
// @Produce json
// @Param proposal_id path string true "Proposal ID"
// @Param decision body dto.ReviewProposalRequest true "Review decision"
// @Success 200 {object} dto.ProposalResponse
// @Failure 400 {object} map[string]string "Invalid decision or sectional remarks"
// @Failure 403 {object} map[string]string "Acting account cannot review"
// @Failure 404 {object} map[string]string "Proposal not found"
// @Failure 409 {object} map[string]string "Proposal changed since it was read"
// @Security BearerAuth
// @Router /proposals/{proposal_id}/review [post]
func (h *proposalHandler) reviewProposal(c *gin.Context) {
	proposalID := c.Param("proposal_id")

	var req dto.ReviewProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	_, actor, ok := resolveActor(c, h.profileService)
	if !ok {
		return
	}

	proposal, err := h.proposalService.ReviewProposal(c.Request.Context(), actor, proposalID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to review proposal")
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalResponse(proposal))
}

// attachExecutiveRemark godoc
// @Summary Attach an executive remark
// @Description Saves the executive's freeform remark on a proposal without changing its workflow status.
// @Tags proposals
// @Accept json
// @Produce json
// @Param proposal_id path string true "Proposal ID"
// @Param remark body dto.ExecutiveRemarkRequest true "Executive remark"
// @Success 204 "Remark saved"
// @Failure 400 {object} map[string]string "Invalid input or proposal still a draft"
// @Failure 403 {object} map[string]string "Acting account is not an executive"
// @Failure 404 {object} map[string]string "Proposal not found"
// @Security BearerAuth
// @Router /proposals/{proposal_id}/remark [put]
func (h *proposalHandler) attachExecutiveRemark(c *gin.Context) {
	proposalID := c.Param("proposal_id")

	var req dto.ExecutiveRemarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	_, actor, ok := resolveActor(c, h.profileService)
	if !ok {
		return
	}

	if err := h.proposalService.AttachExecutiveRemark(c.Request.Context(), actor, proposalID, req.Remark); err != nil {
		respondServiceError(c, err, "Failed to save executive remark")
		return
	}

	c.Status(http.StatusNoContent)
}

// getProposal godoc
// @Summary Get a proposal with its audit trail
// @Description Returns the hydrated proposal record. Owners see their own rows; reviewers and executives see any non-draft row.
// @Tags proposals
// @Produce json
// @Param proposal_id path string true "Proposal ID"
// @Success 200 {object} dto.ProposalRecordResponse
// @Failure 403 {object} map[string]string "Not visible to the acting account"
// @Failure 404 {object} map[string]string "Proposal not found"
// @Security BearerAuth
// @Router /proposals/{proposal_id} [get]
func (h *proposalHandler) getProposal(c *gin.Context) {
	proposalID := c.Param("proposal_id")

	_, actor, ok := resolveActor(c, h.profileService)
	if !ok {
		return
	}

	record, err := h.proposalService.GetProposal(c.Request.Context(), actor, proposalID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch proposal")
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalRecordResponse(record))
}

// listMyProposals godoc
// @Summary List the acting office's proposals
// @Description Returns every proposal owned by the acting office, newest first.
// @Tags proposals
// @Produce json
// @Success 200 {object} dto.ListProposalsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /proposals/mine [get]
func (h *proposalHandler) listMyProposals(c *gin.Context) {
	_, actor, ok := resolveActor(c, h.profileService)
	if !ok {
		return
	}

	proposals, err := h.proposalService.ListMyProposals(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err, "Failed to list proposals")
		return
	}

	c.JSON(http.StatusOK, dto.ListProposalsResponse{Proposals: dto.ToProposalResponses(proposals)})
}

// listForReview godoc
// @Summary List proposals awaiting review
// @Description Returns every non-draft proposal for the review console, newest first. GAD unit and executive accounts only.
// @Tags proposals
// @Produce json
// @Success 200 {object} dto.ListProposalsResponse
// @Failure 403 {object} map[string]string "Acting account cannot review"
// @Security BearerAuth
// @Router /proposals/review [get]
func (h *proposalHandler) listForReview(c *gin.Context) {
	_, actor, ok := resolveActor(c, h.profileService)
	if !ok {
		return
	}

	proposals, err := h.proposalService.ListForReview(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err, "Failed to list proposals for review")
		return
	}

	c.JSON(http.StatusOK, dto.ListProposalsResponse{Proposals: dto.ToProposalResponses(proposals)})
}

// listApproved godoc
// @Summary List the approved registry
// @Description Returns every approved proposal with its indicators and budget items, grouped by office. GAD unit and executive accounts only.
// @Tags proposals
// @Produce json
// @Success 200 {array} dto.ProposalRecordResponse
// @Failure 403 {object} map[string]string "Acting account cannot view the registry"
// @Security BearerAuth
// @Router /proposals/approved [get]
func (h *proposalHandler) listApproved(c *gin.Context) {
	_, actor, ok := resolveActor(c, h.profileService)
	if !ok {
		return
	}

	records, err := h.proposalService.ListApproved(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err, "Failed to list approved proposals")
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalRecordResponses(records))
}
