// File: internal/handler/http/response.go
package http

import (
	"github.com/gin-gonic/gin"
)

// errorResponse is the wire shape for failures: a human-readable message
// and a machine code.
type errorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func respondWithError(c *gin.Context, status int, message, code string) {
	c.AbortWithStatusJSON(status, errorResponse{Message: message, Code: code})
}

func respondWithData(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}
