package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error envelope shared by all endpoints.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func internalErrorResponse(c *gin.Context, message string) {
	var resp ErrorResponse
	resp.Error.Code = "INTERNAL_ERROR"
	resp.Error.Message = message
	c.JSON(http.StatusInternalServerError, resp)
}
