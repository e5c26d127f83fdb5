package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"travel-backend/pricing"
)

// Offer is a promotional discount as stored in the catalog. The irregular
// parts (conditions, per-market values, agent lists) live in JSON columns;
// the typed view the pricing engine consumes is produced by the services
// layer from the decode helpers below.
type Offer struct {
	gorm.Model

	Name         string     `gorm:"size:255" json:"name"`
	Description  string     `gorm:"type:text" json:"description"`
	DiscountType string     `gorm:"column:discount_type;size:50;index" json:"discountType"`
	Active       bool       `gorm:"default:true" json:"active"`
	ValidFrom    *time.Time `gorm:"column:valid_from" json:"validFrom,omitempty"`
	ValidTo      *time.Time `gorm:"column:valid_to" json:"validTo,omitempty"`

	// Flat fallback value, used when no per-market entry matches.
	Value pricing.Money `json:"value,omitempty"`

	ApplicableHotels datatypes.JSON `gorm:"column:applicable_hotels" json:"applicableHotels,omitempty"`
	DiscountValues   datatypes.JSON `gorm:"column:discount_values" json:"discountValues,omitempty"`
	Conditions       datatypes.JSON `json:"conditions,omitempty"`
	EligibleAgents   datatypes.JSON `gorm:"column:eligible_agents" json:"eligibleAgents,omitempty"`
	UsedAgents       datatypes.JSON `gorm:"column:used_agents" json:"usedAgents,omitempty"`
}

// OfferConditions mirrors the conditions JSON column.
type OfferConditions struct {
	StayPeriod     *OfferDateRange `json:"stayPeriod,omitempty"`
	BookingWindow  *OfferDateRange `json:"bookingWindow,omitempty"`
	MinNights      int             `json:"minNights,omitempty"`
	MinBookings    int             `json:"minBookings,omitempty"`
	MinStayDays    *int            `json:"minStayDays,omitempty"`
	SeasonalMonths []int           `json:"seasonalMonths,omitempty"`
	IsDefault      bool            `json:"isDefault,omitempty"`
}

type OfferDateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// DiscountValueEntry mirrors one discount_values JSON element.
type DiscountValueEntry struct {
	Market string  `json:"market"`
	Type   string  `json:"type"` // "percentage" or "fixed"
	Value  float64 `json:"value"`
}

func (o *Offer) DecodeConditions() OfferConditions {
	var out OfferConditions
	if len(o.Conditions) > 0 {
		_ = json.Unmarshal(o.Conditions, &out)
	}
	return out
}

func (o *Offer) DecodeDiscountValues() []DiscountValueEntry {
	var out []DiscountValueEntry
	if len(o.DiscountValues) > 0 {
		_ = json.Unmarshal(o.DiscountValues, &out)
	}
	return out
}

func (o *Offer) DecodeApplicableHotels() []uint {
	return decodeIDList(o.ApplicableHotels)
}

func (o *Offer) DecodeEligibleAgents() []uint {
	return decodeIDList(o.EligibleAgents)
}

func (o *Offer) DecodeUsedAgents() []uint {
	return decodeIDList(o.UsedAgents)
}

func decodeIDList(raw datatypes.JSON) []uint {
	if len(raw) == 0 {
		return nil
	}
	var out []uint
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
