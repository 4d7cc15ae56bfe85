// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Role values assignable to a user. No registration path grants RoleAdmin;
// admins are seeded out of band.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Username is the login name used for authentication.
	// It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:150;not null" json:"username"`

	// Email is the user's email address. It is optional.
	Email string `gorm:"size:150" json:"email,omitempty"`

	// PasswordHash is the bcrypt hash of the user's password.
	// This must never store plaintext passwords.
	PasswordHash string `gorm:"size:256;not null" json:"-"`

	// FirstName is the user's given name.
	FirstName string `gorm:"size:150;not null" json:"first_name"`

	// SecondName is the user's family name.
	SecondName string `gorm:"size:150;not null" json:"second_name"`

	// PhoneHash is a deterministic digest of the phone number.
	// The unique index relies on the digest being deterministic.
	PhoneHash string `gorm:"uniqueIndex;size:256;not null" json:"-"`

	// Role controls access to administrative operations.
	Role string `gorm:"size:20;not null;default:user" json:"role"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the table name aligned with the existing schema.
func (User) TableName() string { return "user" }

// IsAdmin reports whether the user may perform administrative operations.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
