package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pctOffer(id uint, market string, pct float64) Offer {
	return Offer{
		ID:     id,
		Type:   DiscountPercentage,
		Active: true,
		Values: []DiscountValue{{Market: market, Kind: ValuePercentage, Percent: pct}},
	}
}

func TestReconcileNoDiscountsIdentity(t *testing.T) {
	stay := ComputeStayCost(StayInput{
		NightlyRate:       FromMajor(200),
		SurchargePerNight: FromMajor(20),
		MealPlanRate:      FromMajor(30),
		Nights:            4,
		Rooms:             2,
		Guests:            3,
	})

	bd := Reconcile(TotalsInput{
		NightlyRate:       FromMajor(200),
		Stay:              stay,
		MealPlanName:      "Half Board",
		MealPlanRate:      FromMajor(30),
		SurchargePerNight: FromMajor(20),
		Market:            "India",
	})

	assert.Equal(t, stay.RoomTotal+stay.MealPlanAddon+stay.MarketSurchargeAddon, bd.Total)
	assert.Empty(t, bd.Discounts)
}

// Worked end-to-end scenario: $200/night for 2 rooms over 4 nights, India
// surcharge $20/night, Half Board $30/person/night for 3 guests, one
// auto-applied 10% offer for India.
func TestReconcileEndToEndScenario(t *testing.T) {
	stay := ComputeStayCost(StayInput{
		NightlyRate:       FromMajor(200),
		SurchargePerNight: FromMajor(20),
		MealPlanRate:      FromMajor(30),
		Nights:            4,
		Rooms:             2,
		Guests:            3,
	})

	bd := Reconcile(TotalsInput{
		NightlyRate:       FromMajor(200),
		Stay:              stay,
		MealPlanName:      "Half Board",
		MealPlanRate:      FromMajor(30),
		SurchargePerNight: FromMajor(20),
		AutoApplied:       []Offer{pctOffer(1, "India", 10)},
		HotelID:           7,
		Market:            "India",
	})

	assert.Equal(t, FromMajor(1600), bd.RoomTotal)
	require.NotNil(t, bd.MealPlan)
	assert.Equal(t, FromMajor(360), bd.MealPlan.Total)
	require.NotNil(t, bd.MarketSurcharge)
	assert.Equal(t, FromMajor(160), bd.MarketSurcharge.Total)
	require.Len(t, bd.Discounts, 1)
	assert.Equal(t, FromMajor(212), bd.Discounts[0].Amount)
	assert.Equal(t, FromMajor(1908), bd.Total)
	assert.Equal(t, "1908.00", bd.Total.String())
}

// Every percentage discount is computed against the same pre-discount base;
// stacking never compounds one discount on top of another.
func TestReconcilePercentageBaseNotCompounded(t *testing.T) {
	stay := StayCost{RoomTotal: FromMajor(1000)}

	bd := Reconcile(TotalsInput{
		NightlyRate: FromMajor(100),
		Stay:        stay,
		AutoApplied: []Offer{pctOffer(1, "India", 10), pctOffer(2, "India", 20)},
		Market:      "India",
	})

	require.Len(t, bd.Discounts, 2)
	assert.Equal(t, FromMajor(100), bd.Discounts[0].Amount)
	assert.Equal(t, FromMajor(200), bd.Discounts[1].Amount) // 20% of 1000, not of 900
	assert.Equal(t, FromMajor(700), bd.Total)
}

func TestReconcileExclusiveMutualExclusion(t *testing.T) {
	stay := StayCost{RoomTotal: FromMajor(1000)}
	exclusive := Offer{
		ID:     5,
		Type:   DiscountExclusive,
		Active: true,
		Values: []DiscountValue{{Market: "India", Kind: ValueFixed, Amount: FromMajor(50)}},
	}

	bd := Reconcile(TotalsInput{
		NightlyRate:       FromMajor(100),
		Stay:              stay,
		SelectedExclusive: &exclusive,
		Market:            "India",
	})
	require.Len(t, bd.Discounts, 1)
	assert.Equal(t, FromMajor(950), bd.Total)

	// A selected offer that is not of the exclusive tier contributes nothing.
	pct := pctOffer(6, "India", 10)
	bd = Reconcile(TotalsInput{
		NightlyRate:       FromMajor(100),
		Stay:              stay,
		SelectedExclusive: &pct,
		Market:            "India",
	})
	assert.Empty(t, bd.Discounts)
	assert.Equal(t, FromMajor(1000), bd.Total)
}

func TestReconcileNegativeTotalNotClamped(t *testing.T) {
	stay := StayCost{RoomTotal: FromMajor(100)}
	big := Offer{
		ID:     1,
		Type:   DiscountPercentage,
		Active: true,
		Values: []DiscountValue{{Market: "India", Kind: ValueFixed, Amount: FromMajor(150)}},
	}

	bd := Reconcile(TotalsInput{
		NightlyRate: FromMajor(100),
		Stay:        stay,
		AutoApplied: []Offer{big},
		Market:      "India",
	})

	assert.Equal(t, FromMajor(-50), bd.Total)
}

func TestReconcileIdempotent(t *testing.T) {
	in := TotalsInput{
		NightlyRate:       FromMajor(200),
		Stay:              StayCost{RoomTotal: FromMajor(1600), MealPlanAddon: FromMajor(360), MarketSurchargeAddon: FromMajor(160)},
		MealPlanName:      "Half Board",
		MealPlanRate:      FromMajor(30),
		SurchargePerNight: FromMajor(20),
		AutoApplied:       []Offer{pctOffer(1, "India", 10)},
		Market:            "India",
	}

	first := Reconcile(in)
	second := Reconcile(in)
	assert.Equal(t, first, second)
}

func TestDiscountAmountLookup(t *testing.T) {
	base := FromMajor(1000)

	t.Run("market entry wins", func(t *testing.T) {
		o := Offer{
			Type:             DiscountPercentage,
			Values:           []DiscountValue{{Market: "India", Kind: ValuePercentage, Percent: 10}},
			FlatValue:        &DiscountValue{Kind: ValueFixed, Amount: FromMajor(999)},
			ApplicableHotels: []uint{7},
		}
		assert.Equal(t, FromMajor(100), DiscountAmount(o, base, 7, "India"))
	})

	t.Run("flat value when the hotel is listed", func(t *testing.T) {
		o := Offer{
			Type:             DiscountSeasonal,
			FlatValue:        &DiscountValue{Kind: ValueFixed, Amount: FromMajor(75)},
			ApplicableHotels: []uint{7},
		}
		assert.Equal(t, FromMajor(75), DiscountAmount(o, base, 7, "Egypt"))
	})

	t.Run("no market entry and hotel not listed contributes zero", func(t *testing.T) {
		o := Offer{
			Type:      DiscountSeasonal,
			FlatValue: &DiscountValue{Kind: ValueFixed, Amount: FromMajor(75)},
		}
		assert.Equal(t, Money(0), DiscountAmount(o, base, 7, "Egypt"))
	})

	t.Run("fixed market entry", func(t *testing.T) {
		o := Offer{
			Type:   DiscountTransportation,
			Values: []DiscountValue{{Market: "Egypt", Kind: ValueFixed, Amount: FromMajor(40)}},
		}
		assert.Equal(t, FromMajor(40), DiscountAmount(o, base, 7, "egypt"))
	})
}
