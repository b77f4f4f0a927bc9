package apperrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleError writes the error as the API envelope. Unknown errors are
// reported as a generic 500 so internals never leak to clients.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	payload := gin.H{
		"success": false,
		"message": appErr.Message,
	}
	// Detail maps surface as top-level fields, alongside success and
	// message (recommendations on an empty feed, errors on validation).
	if details, ok := appErr.Details.(map[string]any); ok {
		for key, value := range details {
			payload[key] = value
		}
	} else if appErr.Details != nil {
		payload["data"] = appErr.Details
	}

	status := appErr.HTTPCode
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.JSON(status, payload)
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
