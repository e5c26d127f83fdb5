package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"travel-backend/pricing"
)

const (
	BookingStatusRequested = "Requested"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"
	BookingStatusCompleted = "Completed"
)

type Booking struct {
	gorm.Model

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"referenceCode"`
	Status        string `gorm:"size:64" json:"status"`

	UserID  uint `gorm:"index;column:user_id" json:"userId"`
	HotelID uint `gorm:"index;column:hotel_id" json:"hotelId"`
	RoomID  uint `gorm:"index;column:room_id" json:"roomId"`

	CheckIn  *time.Time `gorm:"column:check_in" json:"checkIn,omitempty"`
	CheckOut *time.Time `gorm:"column:check_out" json:"checkOut,omitempty"`
	Nights   int        `json:"nights"`
	Rooms    int        `gorm:"default:1" json:"rooms"`
	Adults   int        `gorm:"default:1" json:"adults"`
	Children int        `gorm:"default:0" json:"children"`

	MealPlan string `gorm:"size:100" json:"mealPlan,omitempty"`
	Market   string `gorm:"size:100" json:"market"`

	ContactName  string `gorm:"size:255" json:"contactName"`
	ContactEmail string `gorm:"size:255" json:"contactEmail"`
	ContactPhone string `gorm:"size:64" json:"contactPhone,omitempty"`

	ChildrenAges datatypes.JSON `gorm:"column:children_ages" json:"childrenAges,omitempty"`
	Passengers   datatypes.JSON `json:"passengers,omitempty"`

	// Breakdown is the authoritative price record computed server-side at
	// submission time and persisted with the booking.
	Breakdown datatypes.JSON `json:"breakdown,omitempty"`
	Total     pricing.Money  `json:"total"`

	AppliedOffers    datatypes.JSON `gorm:"column:applied_offers" json:"appliedOffers,omitempty"`
	ExclusiveOfferID *uint          `gorm:"column:exclusive_offer_id" json:"exclusiveOfferId,omitempty"`

	User  User  `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Hotel Hotel `gorm:"foreignKey:HotelID;references:ID" json:"hotel,omitempty"`
	Room  Room  `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
