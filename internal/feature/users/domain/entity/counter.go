package entity

// Counter is a per-key monotonically incrementing sequence row.
// It backs serial number assignment for user documents.
type Counter struct {
	// ID is the counter key. Matches a user's identifier.
	ID string `gorm:"primaryKey;size:36"`

	// SerialNumber is the current sequence value. Never decremented.
	SerialNumber int64 `gorm:"not null"`
}
