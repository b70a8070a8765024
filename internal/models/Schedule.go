package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Schedule defines when a zone/street is served: which days of the week,
// between which times of day. Schedules are created ACTIVE and only change
// status through explicit operator action.
type Schedule struct {
	gorm.Model

	OrganizationID string `json:"organization_id" binding:"required"`
	Code           string `json:"code" gorm:"uniqueIndex"`
	ScheduleName   string `json:"schedule_name"`

	ZoneID   string `json:"zone_id"`
	StreetID string `json:"street_id"`

	// Ordered day names, e.g. ["MONDAY","THURSDAY"].
	DaysOfWeek pq.StringArray `json:"days_of_week" gorm:"type:text[]"`

	StartTime     string `json:"start_time"` // "HH:MM"
	EndTime       string `json:"end_time"`   // "HH:MM"
	DurationHours int    `json:"duration_hours"`

	Status string `json:"status" gorm:"index"`
}
