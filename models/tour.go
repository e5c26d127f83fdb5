package models

import (
	"gorm.io/gorm"

	"travel-backend/pricing"
)

// Tour is a multi-day package. Tour prices are USD-denominated; converting
// them to a display currency is the client's concern.
type Tour struct {
	gorm.Model

	Name        string        `gorm:"size:255" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	Days        int           `json:"days"`
	PriceUSD    pricing.Money `gorm:"column:price_usd" json:"priceUsd"`
}
