package models

import (
	"time"

	"gorm.io/gorm"

	"travel-backend/pricing"
)

type Activity struct {
	gorm.Model

	Name        string        `gorm:"size:255" json:"name"`
	Location    string        `gorm:"size:255" json:"location"`
	Description string        `gorm:"type:text" json:"description"`
	Price       pricing.Money `json:"price"` // per participant
}

type ActivityBooking struct {
	gorm.Model

	ActivityID   uint          `gorm:"index;column:activity_id" json:"activityId"`
	UserID       uint          `gorm:"index;column:user_id" json:"userId"`
	Date         *time.Time    `json:"date,omitempty"`
	Participants int           `gorm:"default:1" json:"participants"`
	Total        pricing.Money `json:"total"`
	ContactName  string        `gorm:"size:255" json:"contactName"`
	ContactEmail string        `gorm:"size:255" json:"contactEmail"`

	Activity Activity `gorm:"foreignKey:ActivityID;references:ID" json:"activity,omitempty"`
}
