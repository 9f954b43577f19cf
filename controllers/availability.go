// controllers/availability.go
package controllers

import (
	"net/http"

	"belalbarber-backend/config"
	"belalbarber-backend/services"
	"belalbarber-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetAvailability returns the handler for the public availability lookup:
// the open slots for the date in the "date" query parameter, computed
// against the site's booking window.
func GetAvailability(site *config.SiteContent) gin.HandlerFunc {
	return func(c *gin.Context) {
		date, err := utils.ParseDate(c.Query("date"))
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "A date in YYYY-MM-DD form is required")
			return
		}

		slots := services.AvailableSlots(config.DB, date,
			site.Booking.OpenHour, site.Booking.CloseHour)

		c.JSON(http.StatusOK, gin.H{"data": slots})
	}
}
