package inquiry

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/instamakaan/instamakaan/internal/application/inquiry/usecases"
	"github.com/instamakaan/instamakaan/internal/shared/authorization"
	"github.com/instamakaan/instamakaan/internal/shared/logger"
	"github.com/instamakaan/instamakaan/internal/shared/utils"
)

type InquiryHandler struct {
	createInquiryUC   usecases.CreateInquiryExecutor
	getInquiryUC      usecases.GetInquiryExecutor
	listInquiriesUC   usecases.ListInquiriesExecutor
	assignInquiryUC   usecases.AssignInquiryExecutor
	unassignInquiryUC usecases.UnassignInquiryExecutor
	advanceStatusUC   usecases.AdvanceStatusExecutor
	setStatusUC       usecases.SetStatusExecutor
	addNoteUC         usecases.AddNoteExecutor
	getHistoryUC      usecases.GetHistoryExecutor
	logger            logger.Interface
}

func NewInquiryHandler(
	createInquiryUC usecases.CreateInquiryExecutor,
	getInquiryUC usecases.GetInquiryExecutor,
	listInquiriesUC usecases.ListInquiriesExecutor,
	assignInquiryUC usecases.AssignInquiryExecutor,
	unassignInquiryUC usecases.UnassignInquiryExecutor,
	advanceStatusUC usecases.AdvanceStatusExecutor,
	setStatusUC usecases.SetStatusExecutor,
	addNoteUC usecases.AddNoteExecutor,
	getHistoryUC usecases.GetHistoryExecutor,
	logger logger.Interface,
) *InquiryHandler {
	return &InquiryHandler{
		createInquiryUC:   createInquiryUC,
		getInquiryUC:      getInquiryUC,
		listInquiriesUC:   listInquiriesUC,
		assignInquiryUC:   assignInquiryUC,
		unassignInquiryUC: unassignInquiryUC,
		advanceStatusUC:   advanceStatusUC,
		setStatusUC:       setStatusUC,
		addNoteUC:         addNoteUC,
		getHistoryUC:      getHistoryUC,
		logger:            logger,
	}
}

// CreateInquiry records a lead from the public site
// @Summary Submit an inquiry
// @Description Public form endpoint. Rate limited per client IP.
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param request body CreateInquiryRequest true "Inquiry form"
// @Success 201 {object} utils.APIResponse{data=dto.InquiryDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /inquiries [post]
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create inquiry", "error", err)
		utils.ErrorResponseWithError(c, bindError(err))
		return
	}

	result, err := h.createInquiryUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Inquiry submitted successfully")
}

// GetInquiry returns an inquiry with its conversation log
// @Summary Get inquiry
// @Tags Inquiries
// @Produce json
// @Security Bearer
// @Param id path string true "Inquiry ID"
// @Success 200 {object} utils.APIResponse{data=dto.InquiryDTO}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /inquiries/{id} [get]
func (h *InquiryHandler) GetInquiry(c *gin.Context) {
	inquiryID, err := parseInquiryID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getInquiryUC.Execute(c.Request.Context(), usecases.GetInquiryQuery{
		Actor:     authorization.ActorFromContext(c),
		InquiryID: inquiryID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListInquiries lists inquiries visible to the caller
// @Summary List inquiries
// @Description Agents only ever see inquiries assigned to them.
// @Tags Inquiries
// @Produce json
// @Security Bearer
// @Param status query string false "Status filter"
// @Param inquiry_type query string false "Inquiry type filter"
// @Param agent_id query string false "Assigned agent filter"
// @Param listing_id query string false "Listing filter"
// @Param needs_assignment query bool false "Only unassigned or only assigned"
// @Param followup_due_before query string false "Next follow-up at or before this RFC 3339 time"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /inquiries [get]
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	req, err := parseListInquiriesRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listInquiriesUC.Execute(c.Request.Context(), req.ToQuery(authorization.ActorFromContext(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Inquiries, result.Total, result.Page, result.PageSize)
}

// GetHistory returns the conversation log of an inquiry, oldest first
// @Summary Get inquiry history
// @Tags Inquiries
// @Produce json
// @Security Bearer
// @Param id path string true "Inquiry ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.LogEntryDTO}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /inquiries/{id}/history [get]
func (h *InquiryHandler) GetHistory(c *gin.Context) {
	inquiryID, err := parseInquiryID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getHistoryUC.Execute(c.Request.Context(), usecases.GetHistoryQuery{
		Actor:     authorization.ActorFromContext(c),
		InquiryID: inquiryID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AssignInquiry assigns or reassigns an inquiry to an active agent
// @Summary Assign inquiry
// @Tags Inquiries
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Inquiry ID"
// @Param request body AssignInquiryRequest true "Target agent"
// @Success 200 {object} utils.APIResponse{data=dto.InquiryDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /inquiries/{id}/assign [post]
func (h *InquiryHandler) AssignInquiry(c *gin.Context) {
	inquiryID, err := parseInquiryID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign inquiry", "inquiry_id", inquiryID, "error", err)
		utils.ErrorResponseWithError(c, bindError(err))
		return
	}

	result, err := h.assignInquiryUC.Execute(c.Request.Context(), usecases.AssignInquiryCommand{
		Actor:     authorization.ActorFromContext(c),
		InquiryID: inquiryID,
		AgentID:   req.AgentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inquiry assigned successfully", result)
}

// UnassignInquiry clears the assignment of an open inquiry
// @Summary Unassign inquiry
// @Tags Inquiries
// @Produce json
// @Security Bearer
// @Param id path string true "Inquiry ID"
// @Success 200 {object} utils.APIResponse{data=dto.InquiryDTO}
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /inquiries/{id}/unassign [post]
func (h *InquiryHandler) UnassignInquiry(c *gin.Context) {
	inquiryID, err := parseInquiryID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.unassignInquiryUC.Execute(c.Request.Context(), usecases.UnassignInquiryCommand{
		Actor:     authorization.ActorFromContext(c),
		InquiryID: inquiryID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inquiry unassigned successfully", result)
}

// AdvanceStatus moves an inquiry to the next workflow stage
// @Summary Advance inquiry status
// @Tags Inquiries
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Inquiry ID"
// @Param request body AdvanceStatusRequest false "Optional log message and next follow-up"
// @Success 200 {object} utils.APIResponse{data=dto.InquiryDTO}
// @Failure 403 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /inquiries/{id}/advance [post]
func (h *InquiryHandler) AdvanceStatus(c *gin.Context) {
	inquiryID, err := parseInquiryID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AdvanceStatusRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for advance status", "inquiry_id", inquiryID, "error", err)
			utils.ErrorResponseWithError(c, bindError(err))
			return
		}
	}

	result, err := h.advanceStatusUC.Execute(c.Request.Context(), usecases.AdvanceStatusCommand{
		Actor:          authorization.ActorFromContext(c),
		InquiryID:      inquiryID,
		Message:        req.Message,
		NextFollowupAt: req.NextFollowupAt,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inquiry status updated", result)
}

// SetStatus is the admin override for any stage except new
// @Summary Set inquiry status
// @Tags Inquiries
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Inquiry ID"
// @Param request body SetStatusRequest true "Target status"
// @Success 200 {object} utils.APIResponse{data=dto.InquiryDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /inquiries/{id}/status [patch]
func (h *InquiryHandler) SetStatus(c *gin.Context) {
	inquiryID, err := parseInquiryID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set status", "inquiry_id", inquiryID, "error", err)
		utils.ErrorResponseWithError(c, bindError(err))
		return
	}

	result, err := h.setStatusUC.Execute(c.Request.Context(), usecases.SetStatusCommand{
		Actor:          authorization.ActorFromContext(c),
		InquiryID:      inquiryID,
		Status:         req.Status,
		Message:        req.Message,
		NextFollowupAt: req.NextFollowupAt,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inquiry status updated", result)
}

// AddNote appends a free-form note to the conversation log
// @Summary Add note
// @Tags Inquiries
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Inquiry ID"
// @Param request body AddNoteRequest true "Note text (markdown)"
// @Success 201 {object} utils.APIResponse{data=dto.LogEntryDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /inquiries/{id}/notes [post]
func (h *InquiryHandler) AddNote(c *gin.Context) {
	inquiryID, err := parseInquiryID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add note", "inquiry_id", inquiryID, "error", err)
		utils.ErrorResponseWithError(c, bindError(err))
		return
	}

	result, err := h.addNoteUC.Execute(c.Request.Context(), usecases.AddNoteCommand{
		Actor:     authorization.ActorFromContext(c),
		InquiryID: inquiryID,
		Text:      req.Text,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Note added successfully")
}
