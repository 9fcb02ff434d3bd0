package httperr

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Success   bool      `json:"success"`
	Message   string    `json:"error"`
	Code      string    `json:"code"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func Write(c *gin.Context, status int, code, message string) {
	WriteReason(c, status, code, "", message)
}

func WriteReason(c *gin.Context, status int, code, reason, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Success:   false,
		Message:   message,
		Code:      code,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, reason, message string) {
	WriteReason(c, http.StatusForbidden, code, reason, message)
}
