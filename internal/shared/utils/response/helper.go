package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error replaces the whole response with an error body; handlers must not have
// written partial output before calling it.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}

// OK writes a 200 with the given payload.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
