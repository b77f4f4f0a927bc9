package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collabmate_backend/internal/services"
	"collabmate_backend/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	user := r.Group("/user")
	{
		user.POST("/google-signup", h.GoogleSignup)
		user.POST("/google-signin", h.GoogleSignin)
	}
}

func (h *AuthHandler) GoogleSignup(c *gin.Context) {
	var req dto.GoogleAuthRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.GoogleSignup(c.Request.Context(), h.GetDB(c), req.Token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Account created successfully.", resp)
}

func (h *AuthHandler) GoogleSignin(c *gin.Context) {
	var req dto.GoogleAuthRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.GoogleSignin(c.Request.Context(), h.GetDB(c), req.Token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "Signed in successfully.", resp)
}
