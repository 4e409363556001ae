// Package entity defines the domain entities for the users feature.
package entity

import "time"

// DefaultIP is the sentinel value stored when the origin IP is unknown.
const DefaultIP = "<user_ip>"

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the opaque unique identifier for the user. Generated once, immutable.
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// SerialNumber is the monotonically assigned serial number.
	// It is populated exactly once on first persist.
	SerialNumber int64 `gorm:"uniqueIndex;not null" json:"serial_number"`

	// Name is the user's display name.
	Name string `gorm:"size:255" json:"name"`

	// Username must be unique across all users.
	Username string `gorm:"uniqueIndex;size:255;not null" json:"username"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords and is never serialized.
	Password string `gorm:"size:255;not null" json:"-"`

	// Role is the user's role. Must belong to the closed role enumeration.
	Role Role `gorm:"size:32;not null;default:guest" json:"role"`

	// Region is the user's shard region. Must belong to the closed region enumeration.
	Region Region `gorm:"size:16;not null;default:GLOBAL" json:"region"`

	// IP is the best-effort origin IP, defaulting to a sentinel value.
	IP string `gorm:"size:64" json:"ip"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}

// Sanitized returns a copy with sensitive fields stripped.
// The password hash never leaves the lifecycle boundary.
func (u User) Sanitized() *User {
	u.Password = ""
	return &u
}
