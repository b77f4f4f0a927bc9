package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collabmate_backend/internal/services"
)

type FeedHandler struct {
	*BaseHandler
	feedService services.FeedService
}

func NewFeedHandler(base *BaseHandler, feedService services.FeedService) *FeedHandler {
	return &FeedHandler{BaseHandler: base, feedService: feedService}
}

func (h *FeedHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/feed", h.GetFeed)
}

func (h *FeedHandler) GetFeed(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.feedService.GetFeed(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "Feed fetched successfully.", resp)
}
