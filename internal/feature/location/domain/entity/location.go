// Package entity defines the domain entities for the location feature.
package entity

import (
	"time"

	authentity "places_backend/internal/feature/auth/domain/entity"
)

// Location represents a business listing placed on the map.
// AverageRating and RatingCount are derived from reviews and are recomputed
// in the same transaction that inserts a review.
type Location struct {
	// ID is the unique identifier for the location.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the display name of the location.
	Name string `gorm:"size:150;not null" json:"name"`

	// Latitude is the map latitude in decimal degrees.
	Latitude float64 `gorm:"not null" json:"latitude"`

	// Longitude is the map longitude in decimal degrees.
	Longitude float64 `gorm:"not null" json:"longitude"`

	// AverageRating is the mean of review ratings, 0 when unrated.
	AverageRating float64 `gorm:"not null;default:0" json:"average_rating"`

	// RatingCount is the number of reviews carrying a rating.
	RatingCount int `gorm:"default:0" json:"rating_count"`

	// Address is the optional street address.
	Address string `gorm:"size:255" json:"address,omitempty"`

	// WorkingHoursStart is the opening time of day, formatted HH:MM.
	WorkingHoursStart string `gorm:"size:5;not null" json:"working_hours_start"`

	// WorkingHoursEnd is the closing time of day, formatted HH:MM.
	WorkingHoursEnd string `gorm:"size:5;not null" json:"working_hours_end"`

	// AverageCheck is the optional average bill, bounded at the DTO.
	AverageCheck *int `json:"average_check,omitempty"`

	// CreatedBy references the user that created the location.
	CreatedBy uint `gorm:"not null" json:"created_by"`

	// Creator declares the foreign key so migration emits the constraint.
	Creator *authentity.User `gorm:"foreignKey:CreatedBy" json:"-"`

	// CreatedAt is the timestamp when the location was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the table name aligned with the existing schema.
func (Location) TableName() string { return "location" }
