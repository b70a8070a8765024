package models

import (
	"time"

	"gorm.io/gorm"
)

// Program represents one planned water delivery run against a route and a
// schedule. Status starts PLANNED (or IN_PROGRESS when an actual time is
// already known at creation) and is toggled ACTIVE/INACTIVE by operators.
type Program struct {
	gorm.Model

	OrganizationID string `json:"organization_id" binding:"required"`

	// Code is assigned once at creation and never changes afterwards.
	Code string `json:"code" gorm:"uniqueIndex"`

	ScheduleID string     `json:"schedule_id"`
	RouteID    string     `json:"route_id"`
	ZoneID     string     `json:"zone_id"`
	StreetID   string     `json:"street_id"`
	ProgramDate time.Time `json:"program_date" gorm:"type:date"`

	// Times of day as "HH:MM" strings; actual times stay empty until the
	// run happens.
	PlannedStartTime string `json:"planned_start_time"`
	PlannedEndTime   string `json:"planned_end_time"`
	ActualStartTime  string `json:"actual_start_time"`
	ActualEndTime    string `json:"actual_end_time"`

	Status            string `json:"status" gorm:"index"`
	ResponsibleUserID string `json:"responsible_user_id"`
	Observations      string `json:"observations"`
}
