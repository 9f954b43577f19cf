// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"belalbarber-backend/config"
	"belalbarber-backend/models"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalReservations   int64 `json:"totalReservations"`
	PendingReservations int64 `json:"pendingReservations"`
	TodayReservations   int64 `json:"todayReservations"`
	TotalContacts       int64 `json:"totalContacts"`
	ActiveServices      int64 `json:"activeServices"`
}

// GetDashboardOverview returns the counters shown on the admin dashboard
func GetDashboardOverview(c *gin.Context) {
	var overview DashboardOverview

	config.DB.Model(&models.Reservation{}).
		Count(&overview.TotalReservations)

	config.DB.Model(&models.Reservation{}).
		Where("status = ?", models.StatusPending).
		Count(&overview.PendingReservations)

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	config.DB.Model(&models.Reservation{}).
		Where("appointment_date = ? AND status <> ?", today, models.StatusCancelled).
		Count(&overview.TodayReservations)

	config.DB.Model(&models.Contact{}).
		Count(&overview.TotalContacts)

	config.DB.Model(&models.Service{}).
		Where("is_active = ?", true).
		Count(&overview.ActiveServices)

	c.JSON(http.StatusOK, gin.H{"data": overview})
}
