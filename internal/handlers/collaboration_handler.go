package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collabmate_backend/internal/services"
	"collabmate_backend/internal/services/dto"
)

type CollaborationHandler struct {
	*BaseHandler
	collabService services.CollaborationService
}

func NewCollaborationHandler(base *BaseHandler, collabService services.CollaborationService) *CollaborationHandler {
	return &CollaborationHandler{BaseHandler: base, collabService: collabService}
}

func (h *CollaborationHandler) RegisterRoutes(r *gin.RouterGroup) {
	project := r.Group("/project")
	{
		project.POST("/:projectId/collaboration-requests", h.SendRequest)
		project.PUT("/:projectId/collaboration-requests", h.RespondToRequest)
		project.GET("/collaboration-requests", h.GetRequests)
		project.GET("/collaborators", h.GetChatUsers)
	}
}

func (h *CollaborationHandler) SendRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	err := h.collabService.Send(c.Request.Context(), h.GetDB(c), userID, c.Param("projectId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Collaboration request sent successfully.", nil)
}

func (h *CollaborationHandler) RespondToRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RespondToRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	message, err := h.collabService.Respond(c.Request.Context(), h.GetDB(c), userID, c.Param("projectId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, message, nil)
}

func (h *CollaborationHandler) GetRequests(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.collabService.ListRequests(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "Collaboration requests fetched successfully.", resp)
}

func (h *CollaborationHandler) GetChatUsers(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.collabService.ListChatUsers(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "Chat users fetched successfully.", resp)
}
