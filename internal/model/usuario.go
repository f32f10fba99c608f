package model

import "time"

// Usuario is an account that owns client records.
type Usuario struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"userid"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"not null" json:"email"`
	// Password keeps the bcrypt hash, never the plain text.
	Password string `gorm:"not null" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}
