package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collabmate_backend/internal/services"
	"collabmate_backend/internal/services/dto"
)

type SwipeHandler struct {
	*BaseHandler
	swipeService services.SwipeService
}

func NewSwipeHandler(base *BaseHandler, swipeService services.SwipeService) *SwipeHandler {
	return &SwipeHandler{BaseHandler: base, swipeService: swipeService}
}

func (h *SwipeHandler) RegisterRoutes(r *gin.RouterGroup) {
	swipe := r.Group("/swipe")
	{
		swipe.POST("", h.RecordSwipe)
		swipe.GET("", h.GetLikedProjects)
	}
}

func (h *SwipeHandler) RecordSwipe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSwipeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.swipeService.RecordSwipe(h.GetDB(c), userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Swipe recorded successfully.", nil)
}

func (h *SwipeHandler) GetLikedProjects(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.swipeService.GetLikedProjects(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "Liked projects fetched successfully.", resp)
}
