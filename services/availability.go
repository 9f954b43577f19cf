// services/availability.go
package services

import (
	"log"
	"time"

	"belalbarber-backend/models"
	"belalbarber-backend/utils"

	"gorm.io/gorm"
)

// AvailableSlots returns the bookable slot labels for a date: the full
// half-hour grid between openHour and closeHour minus the times already
// taken by non-cancelled reservations, in chronological order.
//
// If the reservation lookup fails the full grid is returned unfiltered.
// Failing open here is deliberate: a broken availability query must not
// blank out the booking form, and the create path still rejects a taken
// slot with a conflict.
func AvailableSlots(db *gorm.DB, date time.Time, openHour, closeHour int) []string {
	grid := utils.GetTimeSlots(openHour, closeHour)

	var booked []string
	err := db.Model(&models.Reservation{}).
		Where("appointment_date = ? AND status <> ?", utils.BeginningOfDay(date), models.StatusCancelled).
		Pluck("appointment_time", &booked).Error
	if err != nil {
		log.Printf("Availability lookup failed for %s, serving full grid: %v",
			date.Format("2006-01-02"), err)
		return grid
	}

	if len(booked) == 0 {
		return grid
	}

	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	available := make([]string, 0, len(grid))
	for _, slot := range grid {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}
	return available
}
