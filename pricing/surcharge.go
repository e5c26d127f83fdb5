package pricing

import "strings"

// MarketPrice is a per-night additive surcharge keyed by the traveler's
// market (nationality).
type MarketPrice struct {
	Market    string
	Surcharge Money
}

// SurchargeFor looks up the surcharge for a market. The first matching entry
// wins; a missing market is a legitimate zero surcharge, not an error.
func SurchargeFor(prices []MarketPrice, market string) Money {
	for _, p := range prices {
		if strings.EqualFold(p.Market, market) {
			return p.Surcharge
		}
	}
	return 0
}

// CarriedRate is the per-night figure carried between the listing screen and
// the booking screen, together with an explicit flag saying whether the
// market surcharge is already blended into it. The flag replaces the old
// convention of inferring inclusion by comparing against the room's base
// price, which broke down on float equality.
type CarriedRate struct {
	PerNight          Money
	SurchargeIncluded bool
}

// NetNightlyRate returns the per-night price net of the market surcharge.
// The surcharge is always reported as its own breakdown line, so a carried
// rate that already includes it gets the surcharge netted back out here to
// avoid double counting.
func NetNightlyRate(carried CarriedRate, surcharge Money) Money {
	if carried.SurchargeIncluded {
		return carried.PerNight - surcharge
	}
	return carried.PerNight
}
