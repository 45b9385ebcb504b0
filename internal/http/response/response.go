// Package response holds the JSON reply helpers shared by the handlers.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorDetail is the error body shape: {"detail": "..."}.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondDetail(c *gin.Context, status int, detail string) {
	c.JSON(status, ErrorDetail{Detail: detail})
}
