package handlers

import "github.com/gin-gonic/gin"

// respond writes the success envelope shared by every endpoint.
func respond(c *gin.Context, status int, message string, data interface{}) {
	payload := gin.H{
		"success": true,
		"message": message,
	}
	if data != nil {
		payload["data"] = data
	}
	c.JSON(status, payload)
}
