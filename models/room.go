package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"travel-backend/pricing"
)

type Room struct {
	gorm.Model

	HotelID uint   `gorm:"index;column:hotel_id" json:"hotelId"`
	Name    string `gorm:"size:255" json:"name"`
	Type    string `gorm:"size:100" json:"type"`

	// BasePrice is the fallback nightly rate used when no price period covers
	// the requested dates on admin screens; the booking flow itself resolves
	// rates from PricePeriods.
	BasePrice   pricing.Money `gorm:"column:base_price" json:"basePrice"`
	MaxAdults   int           `gorm:"column:max_adults;default:2" json:"maxAdults"`
	MaxChildren int           `gorm:"column:max_children;default:0" json:"maxChildren"`
	Description string        `gorm:"type:text" json:"description"`

	// Transportations is a loosely-shaped list of {type, method} entries.
	Transportations datatypes.JSON `gorm:"column:transportations" json:"transportations,omitempty"`

	PricePeriods []PricePeriod `gorm:"foreignKey:RoomID" json:"pricePeriods,omitempty"`
	MarketPrices []MarketPrice `gorm:"foreignKey:RoomID" json:"prices,omitempty"`

	Hotel Hotel `gorm:"foreignKey:HotelID;references:ID" json:"-"`
}

// PricePeriod is a date-bounded nightly rate row for a room. Periods may
// overlap; resolution is the pricing engine's concern.
type PricePeriod struct {
	gorm.Model

	RoomID    uint          `gorm:"index;column:room_id" json:"roomId"`
	StartDate time.Time     `gorm:"column:start_date" json:"startDate"`
	EndDate   time.Time     `gorm:"column:end_date" json:"endDate"`
	Price     pricing.Money `json:"price"`
}

// MarketPrice is a per-market additive nightly surcharge row for a room.
type MarketPrice struct {
	gorm.Model

	RoomID uint          `gorm:"index;column:room_id" json:"roomId"`
	Market string        `gorm:"size:100" json:"market"`
	Price  pricing.Money `json:"price"`
}

type Transportation struct {
	Type   string `json:"type"`
	Method string `json:"method"`
}

// TransportationList decodes the JSON column; a broken payload is treated as
// an empty list.
func (r *Room) TransportationList() []Transportation {
	if len(r.Transportations) == 0 {
		return nil
	}
	var out []Transportation
	if err := json.Unmarshal(r.Transportations, &out); err != nil {
		return nil
	}
	return out
}
