package config

import (
	"encoding/json"
	"log"
	"os"
)

// SiteContent is the read-only text content and booking parameters for the
// public site. Loaded once at startup and passed by reference to the
// handlers that need it; handlers never mutate it.
type SiteContent struct {
	SiteName    string `json:"site_name"`
	Tagline     string `json:"tagline"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	WorkingDays string `json:"working_days"`

	Booking BookingHours `json:"booking"`
}

// BookingHours is the daily booking window: slots run from OpenHour
// (inclusive) to CloseHour (exclusive).
type BookingHours struct {
	OpenHour  int `json:"open_hour"`
	CloseHour int `json:"close_hour"`
}

func defaultSiteContent() *SiteContent {
	return &SiteContent{
		SiteName:    "صالون بلال",
		Tagline:     "أفضل خدمات الحلاقة والعناية الشخصية",
		Phone:       "+201012345678",
		Email:       "info@belalbarber.com",
		Address:     "القاهرة، مصر",
		WorkingDays: "يومياً من 9 صباحاً حتى 10 مساءً",
		Booking:     BookingHours{OpenHour: 9, CloseHour: 22},
	}
}

// LoadSiteContent reads the site content JSON named by SITE_CONTENT. A
// missing or unreadable file falls back to the built-in defaults; a file
// may also override only some fields.
func LoadSiteContent() *SiteContent {
	content := defaultSiteContent()

	path := os.Getenv("SITE_CONTENT")
	if path == "" {
		return content
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Site content file %s not readable, using defaults: %v", path, err)
		return content
	}

	if err := json.Unmarshal(data, content); err != nil {
		log.Printf("Site content file %s is invalid, using defaults: %v", path, err)
		return defaultSiteContent()
	}

	if content.Booking.OpenHour >= content.Booking.CloseHour {
		log.Printf("Site content booking hours invalid (%d-%d), using defaults",
			content.Booking.OpenHour, content.Booking.CloseHour)
		content.Booking = defaultSiteContent().Booking
	}

	return content
}
