package models

import (
	"gorm.io/gorm"

	"travel-backend/pricing"
)

// MealPlan is a catering tier priced per person per night. "Included" tiers
// carry a zero price and add nothing to the total.
type MealPlan struct {
	gorm.Model

	HotelID uint          `gorm:"index;column:hotel_id" json:"hotelId"`
	Name    string        `gorm:"size:100" json:"name"`
	Price   pricing.Money `json:"price"`
}
