package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collabmate_backend/internal/services"
	"collabmate_backend/internal/services/dto"
)

type BookmarkHandler struct {
	*BaseHandler
	bookmarkService services.BookmarkService
}

func NewBookmarkHandler(base *BaseHandler, bookmarkService services.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{BaseHandler: base, bookmarkService: bookmarkService}
}

func (h *BookmarkHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookmarks := r.Group("/bookmarks")
	{
		bookmarks.POST("", h.AddBookmark)
		bookmarks.GET("", h.GetBookmarks)
		bookmarks.DELETE("/:projectId", h.RemoveBookmark)
	}
}

func (h *BookmarkHandler) AddBookmark(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddBookmarkRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.bookmarkService.Add(h.GetDB(c), userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Project bookmarked successfully.", nil)
}

func (h *BookmarkHandler) GetBookmarks(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.bookmarkService.List(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "Bookmarks fetched successfully.", resp)
}

func (h *BookmarkHandler) RemoveBookmark(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.bookmarkService.Remove(h.GetDB(c), userID, c.Param("projectId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "Bookmark removed successfully.", nil)
}
