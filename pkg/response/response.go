package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/whyismeleige/rental-ads/pkg/apperr"
)

// ErrorBody is the uniform error envelope returned by every failing route.
type ErrorBody struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Data    any    `json:"data"`
}

// Error writes err as the error envelope with its mapped status code.
// Unrecognized errors become a generic 500 so internals never leak.
func Error(c *gin.Context, err error) {
	if e := apperr.From(err); e != nil {
		c.JSON(e.Status(), ErrorBody{Message: e.Message, Type: e.Type, Data: e.Data})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{
		Message: "internal server error",
		Type:    apperr.TypeInternal,
	})
}

// AbortError writes the envelope and stops the handler chain.
func AbortError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
