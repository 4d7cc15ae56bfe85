package entity

import (
	"time"

	authentity "places_backend/internal/feature/auth/domain/entity"
)

// Review is a user's rating and comment for a location.
// Rating is nullable at the storage level; the transport requires it.
type Review struct {
	// ID is the unique identifier for the review.
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID references the authoring user.
	UserID uint `gorm:"not null" json:"user_id"`

	// User declares the foreign key so migration emits the constraint.
	User *authentity.User `gorm:"foreignKey:UserID" json:"-"`

	// LocationID references the reviewed location.
	LocationID uint `gorm:"not null;index" json:"location_id"`

	// Location carries the foreign key; reviews die with their location.
	Location *Location `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE" json:"-"`

	// Rating is the 1-5 score, nil when the review carries none.
	Rating *int `json:"rating,omitempty"`

	// Comment is the free-text body of the review.
	Comment string `gorm:"type:text" json:"comment,omitempty"`

	// CreatedAt is the timestamp when the review was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the table name aligned with the existing schema.
func (Review) TableName() string { return "review" }
