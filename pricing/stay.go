package pricing

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidStay is returned when the check-in/check-out pair cannot produce
// at least one night. Callers surface it as a validation error before any
// totals are computed.
var ErrInvalidStay = errors.New("invalid_stay_dates")

// Nights computes the number of nights as the ceiling of the stay span in
// days. Check-out must be strictly after check-in.
func Nights(checkIn, checkOut time.Time) (int, error) {
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return 0, ErrInvalidStay
	}
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24)), nil
}

// StayInput holds the validated per-night figures expanded into stay totals.
type StayInput struct {
	NightlyRate       Money // per night, net of market surcharge
	SurchargePerNight Money
	MealPlanRate      Money // per person per night; 0 for "Included" plans
	Nights            int
	Rooms             int
	Guests            int // adults + children
}

type StayCost struct {
	RoomTotal            Money
	MealPlanAddon        Money
	MarketSurchargeAddon Money
}

// ComputeStayCost expands per-night figures into stay totals. Inputs are
// assumed validated (nights and rooms at least 1).
func ComputeStayCost(in StayInput) StayCost {
	return StayCost{
		RoomTotal:            in.NightlyRate.MulInt(in.Nights).MulInt(in.Rooms),
		MealPlanAddon:        in.MealPlanRate.MulInt(in.Guests).MulInt(in.Nights),
		MarketSurchargeAddon: in.SurchargePerNight.MulInt(in.Nights).MulInt(in.Rooms),
	}
}

// PreDiscountBase is the base every percentage discount is computed against.
func (s StayCost) PreDiscountBase() Money {
	return s.RoomTotal + s.MealPlanAddon + s.MarketSurchargeAddon
}
