// utils/respond.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the uniform error body used by every endpoint
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
