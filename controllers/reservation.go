// controllers/reservation.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"belalbarber-backend/config"
	"belalbarber-backend/models"
	"belalbarber-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateReservationInput defines the expected JSON structure for a booking
// submission. A status field in the body is ignored: new reservations are
// always pending.
type CreateReservationInput struct {
	Name            string  `json:"name" binding:"required"`
	Phone           string  `json:"phone" binding:"required"`
	Email           *string `json:"email"`
	ServiceID       string  `json:"service_id" binding:"required"`
	AppointmentDate string  `json:"appointment_date" binding:"required"`
	AppointmentTime string  `json:"appointment_time" binding:"required"`
	Notes           *string `json:"notes"`
}

// UpdateReservationInput carries the admin status change
type UpdateReservationInput struct {
	Status string `json:"status" binding:"required"`
}

// ReservationWithService is a reservation joined with the referenced
// service's title for the admin listing.
type ReservationWithService struct {
	models.Reservation
	ServiceTitle string `json:"service_title"`
}

// Shown when the referenced service has been deleted since booking.
const removedServiceTitle = "service removed"

// CreateReservation handles a public booking submission
func CreateReservation(c *gin.Context) {
	var input CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Name, phone, service, date, and time are required")
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	if input.Email != nil && strings.TrimSpace(*input.Email) != "" && !utils.ValidateEmail(*input.Email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid email address")
		return
	}

	// The service id is recorded as given; a stale id from an old booking
	// form is tolerated and surfaces later as a "service removed" row.
	serviceUUID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	appointmentDate, err := utils.ParseDate(input.AppointmentDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment date")
		return
	}

	// Check if the time slot is still available. The check and the insert
	// below are separate queries: two simultaneous submissions for the
	// same slot can both pass, so exclusion is best-effort.
	var count int64
	err = config.DB.Model(&models.Reservation{}).
		Where("appointment_date = ? AND appointment_time = ? AND status <> ?",
			appointmentDate, input.AppointmentTime, models.StatusCancelled).
		Count(&count).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create reservation")
		return
	}
	if count > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Time slot is already booked")
		return
	}

	reservation := models.Reservation{
		Name:            strings.TrimSpace(input.Name),
		Phone:           strings.TrimSpace(input.Phone),
		Email:           trimmedOrNil(input.Email),
		ServiceID:       serviceUUID,
		AppointmentDate: appointmentDate,
		AppointmentTime: input.AppointmentTime,
		Notes:           trimmedOrNil(input.Notes),
		Status:          models.StatusPending,
	}

	if err := config.DB.Create(&reservation).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create reservation")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":    reservation,
		"message": "Reservation created successfully",
	})
}

// GetReservations lists all reservations for the admin panel, newest first,
// each joined with its service title.
func GetReservations(c *gin.Context) {
	var reservations []models.Reservation
	if err := config.DB.Order("created_at desc").Find(&reservations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch reservations")
		return
	}

	var services []models.Service
	if err := config.DB.Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch reservations")
		return
	}

	titles := make(map[uuid.UUID]string, len(services))
	for _, s := range services {
		titles[s.ID] = s.Title
	}

	data := make([]ReservationWithService, 0, len(reservations))
	for _, r := range reservations {
		title, ok := titles[r.ServiceID]
		if !ok {
			title = removedServiceTitle
		}
		data = append(data, ReservationWithService{Reservation: r, ServiceTitle: title})
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

// UpdateReservationStatus moves a reservation between pending, confirmed
// and cancelled. Any of the three target statuses is accepted from any
// current status; the admin panel is trusted not to need a stricter
// state machine.
func UpdateReservationStatus(c *gin.Context) {
	reservationID := c.Query("id")
	reservationUUID, err := uuid.Parse(reservationID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Reservation ID is required")
		return
	}

	var input UpdateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil || !models.IsValidStatus(input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Valid status is required")
		return
	}

	var reservation models.Reservation
	if err := config.DB.First(&reservation, "id = ?", reservationUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	reservation.Status = input.Status
	if err := config.DB.Save(&reservation).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update reservation")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reservation})
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
