package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message answers {"message": msg}; used by the auth surface and not-found.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

func AbortMessage(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"message": message})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func ErrorWithDetails(c *gin.Context, statusCode int, message string, details any) {
	c.JSON(statusCode, gin.H{
		"error":   message,
		"details": details,
	})
}

// InternalError records err on the context for the error logger and answers
// 500 with details.
func InternalError(c *gin.Context, message string, err error, details string) {
	_ = c.Error(err)
	ErrorWithDetails(c, http.StatusInternalServerError, message, details)
}
