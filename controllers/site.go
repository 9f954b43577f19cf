// controllers/site.go
package controllers

import (
	"net/http"

	"belalbarber-backend/config"

	"github.com/gin-gonic/gin"
)

// GetSiteContent returns the handler serving the site's text content to the
// frontend. The content struct is loaded once at startup and read-only here.
func GetSiteContent(site *config.SiteContent) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": site})
	}
}
