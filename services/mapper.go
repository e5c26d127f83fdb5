package services

import (
	"travel-backend/models"
	"travel-backend/pricing"
)

// toPricingPeriods converts price period rows into engine inputs.
func toPricingPeriods(rows []models.PricePeriod) []pricing.PricePeriod {
	out := make([]pricing.PricePeriod, 0, len(rows))
	for _, r := range rows {
		out = append(out, pricing.PricePeriod{
			Start:   r.StartDate,
			End:     r.EndDate,
			Nightly: r.Price,
		})
	}
	return out
}

// toPricingMarkets converts market surcharge rows into engine inputs.
func toPricingMarkets(rows []models.MarketPrice) []pricing.MarketPrice {
	out := make([]pricing.MarketPrice, 0, len(rows))
	for _, r := range rows {
		out = append(out, pricing.MarketPrice{Market: r.Market, Surcharge: r.Price})
	}
	return out
}

// toPricingOffer builds the typed offer the engine consumes from a catalog
// row. Per-market percentage values stay plain percentages; fixed values are
// converted to cents. The flat fallback value is always a fixed amount — the
// catalog has no kind attached to it, so it is treated as money, matching
// how it is entered on the admin side.
func toPricingOffer(m models.Offer) pricing.Offer {
	cond := m.DecodeConditions()

	o := pricing.Offer{
		ID:               m.ID,
		Type:             pricing.DiscountType(m.DiscountType),
		Description:      m.Name,
		Active:           m.Active,
		ValidFrom:        m.ValidFrom,
		ValidTo:          m.ValidTo,
		ApplicableHotels: m.DecodeApplicableHotels(),
		EligibleAgents:   m.DecodeEligibleAgents(),
		UsedAgents:       m.DecodeUsedAgents(),
		Conditions: pricing.Conditions{
			MinNights:      cond.MinNights,
			MinBookings:    cond.MinBookings,
			MinStayDays:    cond.MinStayDays,
			SeasonalMonths: cond.SeasonalMonths,
			IsDefault:      cond.IsDefault,
		},
	}

	if sp := cond.StayPeriod; sp != nil {
		o.Conditions.StayPeriod = &pricing.DateRange{Start: sp.Start, End: sp.End}
	}
	if bw := cond.BookingWindow; bw != nil {
		o.Conditions.BookingWindow = &pricing.DateRange{Start: bw.Start, End: bw.End}
	}

	for _, v := range m.DecodeDiscountValues() {
		dv := pricing.DiscountValue{Market: v.Market}
		if v.Type == string(pricing.ValuePercentage) {
			dv.Kind = pricing.ValuePercentage
			dv.Percent = v.Value
		} else {
			dv.Kind = pricing.ValueFixed
			dv.Amount = pricing.FromMajor(v.Value)
		}
		o.Values = append(o.Values, dv)
	}

	if m.Value != 0 {
		o.FlatValue = &pricing.DiscountValue{Kind: pricing.ValueFixed, Amount: m.Value}
	}

	return o
}

func toPricingOffers(rows []models.Offer) []pricing.Offer {
	out := make([]pricing.Offer, 0, len(rows))
	for _, r := range rows {
		out = append(out, toPricingOffer(r))
	}
	return out
}

func toPricingRole(role string) pricing.Role {
	switch role {
	case models.RoleAgent:
		return pricing.RoleAgent
	case models.RoleAdmin:
		return pricing.RoleAdmin
	default:
		return pricing.RoleCustomer
	}
}
