package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"collabmate_backend/internal/auth"
	"collabmate_backend/internal/logger"
	"collabmate_backend/pkg/apperrors"
)

// UserIDKey is where the authenticated user's ID lives in the gin context.
const UserIDKey = "userID"

// AuthMiddleware checks the bearer token and stores the user ID in both the
// gin context and the request context for logging.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortWithAppError(c, apperrors.ErrNoToken)
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortWithAppError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

func abortWithAppError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPCode, gin.H{
		"success": false,
		"message": appErr.Message,
	})
}
