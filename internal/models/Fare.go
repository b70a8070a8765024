package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fare is the price an organization charges from a given effective date.
// Unlike the other entities its status is time-derived: a fare is ACTIVE
// while now is on-or-before its effective date, and the transition sweep
// keeps stored statuses converged with the clock. At most one fare per
// organization is ACTIVE at any settled time.
type Fare struct {
	gorm.Model

	OrganizationID string `json:"organization_id" binding:"required"`
	Code           string `json:"code" gorm:"uniqueIndex"`
	FareName       string `json:"fare_name"`

	// FareType is one of WEEKLY, MONTHLY, ANNUAL.
	FareType   string          `json:"fare_type"`
	FareAmount decimal.Decimal `json:"fare_amount" gorm:"type:numeric(10,2)"`

	EffectiveDate time.Time `json:"effective_date" gorm:"index"`
	Status        string    `json:"status" gorm:"index"`
}
