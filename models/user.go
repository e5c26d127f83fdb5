package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleAgent    = "agent"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model

	FullName string `gorm:"size:255" json:"fullName"`
	Email    string `gorm:"uniqueIndex;size:150" json:"email"`
	Password string `gorm:"size:255" json:"-"` // bcrypt hash, never returned
	Role     string `gorm:"size:32;default:customer" json:"role"`

	// Market is the user's nationality segment, the default for surcharge
	// and discount lookups.
	Market string `gorm:"size:100" json:"market,omitempty"`
}

// Session backs bearer-token authentication for the booking flow.
type Session struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index" json:"userId"`
	Token     string     `gorm:"uniqueIndex;size:128" json:"-"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}
