// utils/slots.go
package utils

import "fmt"

// GetTimeSlots returns the half-hour slot labels between startHour
// (inclusive) and endHour (exclusive), zero-padded "HH:MM", in
// chronological order. startHour=9, endHour=22 yields "09:00" .. "21:30".
func GetTimeSlots(startHour, endHour int) []string {
	slots := make([]string, 0, 2*(endHour-startHour))
	for hour := startHour; hour < endHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
		slots = append(slots, fmt.Sprintf("%02d:30", hour))
	}
	return slots
}
