package lifecycle

import (
	"time"

	"aqua_distribution/internal/models"
)

// DeriveFareStatus maps a fare's effective date against now.
// A fare is ACTIVE while now is on-or-before its effective date.
func DeriveFareStatus(now, effectiveDate time.Time) string {
	if now.After(effectiveDate) {
		return models.StatusInactive
	}
	return models.StatusActive
}

// DeriveInitialProgramStatus picks the status a program is created with.
// A program whose actual start or end time is already known was reported
// after the fact and begins IN_PROGRESS; otherwise it begins PLANNED.
// Only applied at creation; later transitions are operator-driven.
func DeriveInitialProgramStatus(actualStartTime, actualEndTime string) string {
	if actualStartTime != "" || actualEndTime != "" {
		return models.StatusInProgress
	}
	return models.StatusPlanned
}
