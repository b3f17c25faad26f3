package ticket

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sovoz-hq/sovoz/internal/application/ticket/usecases"
	"github.com/sovoz-hq/sovoz/internal/shared/authorization"
	"github.com/sovoz-hq/sovoz/internal/shared/constants"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
	"github.com/sovoz-hq/sovoz/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC  usecases.CreateTicketExecutor
	getTicketUC     usecases.GetTicketExecutor
	listTicketsUC   usecases.ListTicketsExecutor
	changeStatusUC  usecases.ChangeStatusExecutor
	addCommentUC    usecases.AddCommentExecutor
	getAttachmentUC usecases.GetAttachmentExecutor
	logger          logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	addCommentUC usecases.AddCommentExecutor,
	getAttachmentUC usecases.GetAttachmentExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:  createTicketUC,
		getTicketUC:     getTicketUC,
		listTicketsUC:   listTicketsUC,
		changeStatusUC:  changeStatusUC,
		addCommentUC:    addCommentUC,
		getAttachmentUC: getAttachmentUC,
		logger:          logger,
	}
}

// principal reads the identity the auth middleware resolved. userID is
// zero on the anonymous submission route.
func principal(c *gin.Context) (uint, authorization.UserRole) {
	userID := c.GetUint(constants.ContextKeyUserID)
	role := authorization.UserRole(c.GetString(constants.ContextKeyUserRole))
	return userID, role
}

// CreateTicket handles POST /api/tickets and POST /api/tickets/anonymous.
// The two routes share the handler; the anonymous route simply mounts it
// without auth middleware, leaving the principal unset.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	req, attachments, err := parseCreateTicketRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateTicketCommand{
		Title:          req.Title,
		Description:    req.Description,
		Type:           req.Type,
		Department:     req.Department,
		SubmitterName:  req.SubmitterName,
		SubmitterEmail: req.SubmitterEmail,
		Attachments:    attachments,
	}

	if userID, _ := principal(c); userID != 0 {
		cmd.UserID = &userID
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /api/tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, role := principal(c)
	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: ticketID,
		UserID:   userID,
		Role:     role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /api/tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	userID, role := principal(c)
	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		UserID:   userID,
		Role:     role,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ChangeStatus handles PATCH /api/tickets/:id/status. Admin-only,
// enforced by the route middleware.
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID:  ticketID,
		NewStatus: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", result)
}

// AddComment handles POST /api/tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, role := principal(c)

	// Fall back to the account email when no display name was given.
	author := req.Author
	if author == "" {
		author = c.GetString(constants.ContextKeyUserEmail)
	}

	comments, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID: ticketID,
		Author:   author,
		Text:     req.Text,
		UserID:   userID,
		Role:     role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"comments": comments})
}

// DownloadAttachment handles GET /api/tickets/:id/attachment/:index and
// serves the stored bytes with their original content type and filename.
func (h *TicketHandler) DownloadAttachment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	index, err := parseAttachmentIndex(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, role := principal(c)
	result, err := h.getAttachmentUC.Execute(c.Request.Context(), usecases.GetAttachmentQuery{
		TicketID: ticketID,
		Index:    index,
		UserID:   userID,
		Role:     role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
