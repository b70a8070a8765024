package models

// Status values shared by the distribution entities. Program additionally
// uses the PLANNED/IN_PROGRESS pair for its creation-time lifecycle.
const (
	StatusActive     = "ACTIVE"
	StatusInactive   = "INACTIVE"
	StatusPlanned    = "PLANNED"
	StatusInProgress = "IN_PROGRESS"
)

// Code prefixes, one per entity kind. Codes look like "TAR007".
const (
	ProgramCodePrefix  = "PRG"
	RouteCodePrefix    = "RUT"
	ScheduleCodePrefix = "HOR"
	FareCodePrefix     = "TAR"
)

// Fare types accepted by the fare endpoints.
const (
	FareTypeWeekly  = "WEEKLY"
	FareTypeMonthly = "MONTHLY"
	FareTypeAnnual  = "ANNUAL"
)
