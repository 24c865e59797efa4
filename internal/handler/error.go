package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/internal/validation"
)

// SuccessResponse is the envelope of every marketplace endpoint.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
		Errors:  nil,
	})
}

func writeSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, SuccessResponse{
		Success: true,
		Data:    data,
	})
}
