package pricing

import "strings"

// AddonLine is a priced extra in the breakdown (meal plan, market surcharge).
type AddonLine struct {
	Type  string `json:"type"`
	Price Money  `json:"price"` // per unit (per person-night or per room-night)
	Total Money  `json:"total"`
}

// DiscountLine records one applied discount in the breakdown.
type DiscountLine struct {
	OfferID     uint         `json:"offerId"`
	Type        DiscountType `json:"type"`
	Description string       `json:"description,omitempty"`
	Amount      Money        `json:"amount"`
}

// Breakdown is the reconciled price record persisted with the booking.
type Breakdown struct {
	BasePricePerNight Money          `json:"basePricePerNight"`
	RoomTotal         Money          `json:"roomTotal"`
	MealPlan          *AddonLine     `json:"mealPlan,omitempty"`
	MarketSurcharge   *AddonLine     `json:"marketSurcharge,omitempty"`
	Discounts         []DiscountLine `json:"discounts"`
	Total             Money          `json:"total"`
}

// TotalsInput carries everything Reconcile folds into a final total.
type TotalsInput struct {
	NightlyRate       Money
	Stay              StayCost
	MealPlanName      string
	MealPlanRate      Money
	SurchargePerNight Money
	AutoApplied       []Offer
	SelectedExclusive *Offer
	HotelID           uint
	Market            string
}

// Reconcile folds the stay totals and every applicable discount into the
// final payable total. Percentage discounts are all computed against the
// same pre-discount base, never compounded against each other. The total is
// deliberately not floored at zero: a pathological discount stack may drive
// it negative, and that is recorded as-is rather than silently clamped.
func Reconcile(in TotalsInput) Breakdown {
	bd := Breakdown{
		BasePricePerNight: in.NightlyRate,
		RoomTotal:         in.Stay.RoomTotal,
		Discounts:         []DiscountLine{},
	}
	if in.Stay.MealPlanAddon != 0 || in.MealPlanRate != 0 {
		bd.MealPlan = &AddonLine{Type: in.MealPlanName, Price: in.MealPlanRate, Total: in.Stay.MealPlanAddon}
	}
	if in.SurchargePerNight != 0 {
		bd.MarketSurcharge = &AddonLine{Type: in.Market, Price: in.SurchargePerNight, Total: in.Stay.MarketSurchargeAddon}
	}

	base := in.Stay.PreDiscountBase()
	var discounts Money

	apply := func(o Offer) {
		amount := DiscountAmount(o, base, in.HotelID, in.Market)
		if amount == 0 {
			return
		}
		discounts += amount
		bd.Discounts = append(bd.Discounts, DiscountLine{
			OfferID:     o.ID,
			Type:        o.Type,
			Description: o.Description,
			Amount:      amount,
		})
	}

	for _, o := range in.AutoApplied {
		apply(o)
	}
	// At most one exclusive offer ever contributes, and only if it really is
	// of the exclusive tier.
	if in.SelectedExclusive != nil && in.SelectedExclusive.Type == DiscountExclusive {
		apply(*in.SelectedExclusive)
	}

	bd.Total = base - discounts
	return bd
}

// DiscountAmount resolves an offer's value for the current market and turns
// it into a concrete amount against the pre-discount base. Lookup order: the
// market's entry in the offer's per-market values, then the flat value when
// the offer explicitly lists the current hotel. An offer matching neither
// contributes zero; that gap is intentional compatibility with the observed
// catalog behavior and is kept pending product clarification.
func DiscountAmount(o Offer, base Money, hotelID uint, market string) Money {
	if v := marketValue(o.Values, market); v != nil {
		return valueAmount(*v, base)
	}
	if o.FlatValue != nil && containsID(o.ApplicableHotels, hotelID) {
		return valueAmount(*o.FlatValue, base)
	}
	return 0
}

func marketValue(values []DiscountValue, market string) *DiscountValue {
	for i := range values {
		if strings.EqualFold(values[i].Market, market) {
			return &values[i]
		}
	}
	return nil
}

func valueAmount(v DiscountValue, base Money) Money {
	if v.Kind == ValuePercentage {
		return base.Percent(v.Percent)
	}
	return v.Amount
}
