package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the error/ack envelope. The public front-end reads the
// "error" key, so it stays "error" rather than "message".
type APIResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func RespSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, APIResponse{Success: true})
}

func RespError(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error:   msg,
	})
}

// RequestBaseURL reconstructs the scheme://host prefix of the request so
// upload and convert responses can return absolute file URLs.
func RequestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}
