package entity

import authentity "places_backend/internal/feature/auth/domain/entity"

// OwnerInfo is the supplementary owner record for a location.
// One record per location by convention; it may only be attached by the
// location's creator.
type OwnerInfo struct {
	// ID is the unique identifier for the record.
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID references the user that attached the record.
	UserID uint `gorm:"not null" json:"user_id"`

	// User declares the foreign key so migration emits the constraint.
	User *authentity.User `gorm:"foreignKey:UserID" json:"-"`

	// LocationID references the described location.
	LocationID uint `gorm:"not null;index" json:"location_id"`

	// Location carries the foreign key; owner records die with their location.
	Location *Location `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE" json:"-"`

	// Website is the optional public website of the business.
	Website string `gorm:"size:200" json:"website,omitempty"`

	// OwnerInfo is the free-text description provided by the owner.
	OwnerInfo string `gorm:"type:text;not null" json:"owner_info"`
}

// TableName keeps the table name aligned with the existing schema.
func (OwnerInfo) TableName() string { return "ownerinfo" }
