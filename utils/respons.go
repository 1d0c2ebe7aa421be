package utils

import (
	"github.com/gin-gonic/gin"
)

// RespondJSON writes the payload as-is. The API contract exposes resources
// directly rather than wrapping them in an envelope.
func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// RespondError serializes every failure as {"message": "..."}.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"message": err.Error()})
}
