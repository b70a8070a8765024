package models

import (
	"gorm.io/gorm"
)

// Route represents an ordered tour through distribution zones.
// A route has many zones; each zone row carries its position in the tour
// and the estimated duration in hours for that leg.
type Route struct {
	gorm.Model

	OrganizationID string `json:"organization_id" binding:"required"`
	Code           string `json:"code" gorm:"uniqueIndex"`
	RouteName      string `json:"route_name"`

	TotalEstimatedDuration int    `json:"total_estimated_duration"` // hours
	Status                 string `json:"status" gorm:"index"`
	ResponsibleUserID      string `json:"responsible_user_id"`

	// Associations
	Zones []RouteZone `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"zones"`
}

// RouteZone is one stop of a route. Order indicates the visiting sequence.
type RouteZone struct {
	gorm.Model

	ZoneID            string `json:"zone_id"`
	Order             int    `json:"order" gorm:"column:zone_order"`
	EstimatedDuration int    `json:"estimated_duration"` // hours

	// Foreign key to route
	RouteID uint `json:"route_id" gorm:"index"`
}
