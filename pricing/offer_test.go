package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrTime(t time.Time) *time.Time { return &t }
func ptrInt(v int) *int              { return &v }

func baseContext() EligibilityContext {
	return EligibilityContext{
		Today:         date(2024, 5, 15),
		HotelID:       7,
		CheckIn:       date(2024, 6, 1),
		CheckOut:      date(2024, 6, 5),
		Nights:        4,
		UserID:        42,
		Role:          RoleAgent,
		PriorBookings: 3,
		Market:        "India",
	}
}

func TestOfferEligibleOrderedChecks(t *testing.T) {
	ctx := baseContext()

	testCases := []struct {
		name string
		o    Offer
		want bool
	}{
		{
			name: "inactive offer fails",
			o:    Offer{Type: DiscountPercentage, Active: false},
		},
		{
			name: "today before validity window",
			o:    Offer{Type: DiscountPercentage, Active: true, ValidFrom: ptrTime(date(2024, 6, 1))},
		},
		{
			name: "today after validity window",
			o:    Offer{Type: DiscountPercentage, Active: true, ValidTo: ptrTime(date(2024, 5, 1))},
		},
		{
			name: "open-ended validity passes",
			o:    Offer{Type: DiscountPercentage, Active: true},
			want: true,
		},
		{
			name: "hotel restriction excludes other hotels",
			o:    Offer{Type: DiscountPercentage, Active: true, ApplicableHotels: []uint{1, 2}},
		},
		{
			name: "hotel restriction listing this hotel passes",
			o:    Offer{Type: DiscountPercentage, Active: true, ApplicableHotels: []uint{1, 7}},
			want: true,
		},
		{
			name: "stay period must cover the whole stay",
			o: Offer{Type: DiscountPercentage, Active: true, Conditions: Conditions{
				StayPeriod: &DateRange{Start: ptrTime(date(2024, 6, 1)), End: ptrTime(date(2024, 6, 3))},
			}},
		},
		{
			name: "stay period covering stay passes",
			o: Offer{Type: DiscountPercentage, Active: true, Conditions: Conditions{
				StayPeriod: &DateRange{Start: ptrTime(date(2024, 5, 1)), End: ptrTime(date(2024, 6, 30))},
			}},
			want: true,
		},
		{
			name: "booking window gates on today",
			o: Offer{Type: DiscountPercentage, Active: true, Conditions: Conditions{
				BookingWindow: &DateRange{Start: ptrTime(date(2024, 6, 1)), End: ptrTime(date(2024, 6, 30))},
			}},
		},
		{
			name: "min nights not met",
			o:    Offer{Type: DiscountPercentage, Active: true, Conditions: Conditions{MinNights: 5}},
		},
		{
			name: "min nights met",
			o:    Offer{Type: DiscountPercentage, Active: true, Conditions: Conditions{MinNights: 4}},
			want: true,
		},
		{
			name: "unknown discount type is never eligible",
			o:    Offer{Type: DiscountType("mystery"), Active: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.o.Eligible(ctx))
		})
	}
}

func TestOfferEligibleExclusiveRules(t *testing.T) {
	offer := Offer{
		Type:           DiscountExclusive,
		Active:         true,
		EligibleAgents: []uint{42, 50},
		Conditions:     Conditions{MinBookings: 3},
	}

	ctx := baseContext()
	assert.True(t, offer.Eligible(ctx))

	t.Run("customer role is excluded", func(t *testing.T) {
		c := ctx
		c.Role = RoleCustomer
		assert.False(t, offer.Eligible(c))
	})

	t.Run("admin role passes", func(t *testing.T) {
		c := ctx
		c.Role = RoleAdmin
		assert.True(t, offer.Eligible(c))
	})

	t.Run("user outside the eligible agent list", func(t *testing.T) {
		c := ctx
		c.UserID = 99
		assert.False(t, offer.Eligible(c))
	})

	t.Run("agent who already consumed the offer", func(t *testing.T) {
		o := offer
		o.UsedAgents = []uint{42}
		assert.False(t, o.Eligible(ctx))
	})

	t.Run("prior booking count below the threshold", func(t *testing.T) {
		c := ctx
		c.PriorBookings = 2
		assert.False(t, offer.Eligible(c))
	})
}

func TestOfferEligiblePerType(t *testing.T) {
	ctx := baseContext()

	t.Run("transportation default minimum stay is five nights", func(t *testing.T) {
		o := Offer{Type: DiscountTransportation, Active: true}
		assert.False(t, o.Eligible(ctx)) // 4 nights

		long := ctx
		long.Nights = 5
		assert.True(t, o.Eligible(long))
	})

	t.Run("transportation explicit minimum stay", func(t *testing.T) {
		o := Offer{Type: DiscountTransportation, Active: true, Conditions: Conditions{MinStayDays: ptrInt(3)}}
		assert.True(t, o.Eligible(ctx))
	})

	t.Run("seasonal months gate on today's month", func(t *testing.T) {
		o := Offer{Type: DiscountSeasonal, Active: true, Conditions: Conditions{SeasonalMonths: []int{5, 6}}}
		assert.True(t, o.Eligible(ctx)) // today is May

		o.Conditions.SeasonalMonths = []int{11, 12}
		assert.False(t, o.Eligible(ctx))
	})

	t.Run("seasonal with no months always passes", func(t *testing.T) {
		o := Offer{Type: DiscountSeasonal, Active: true}
		assert.True(t, o.Eligible(ctx))
	})

	t.Run("libert requires the default flag", func(t *testing.T) {
		o := Offer{Type: DiscountLibert, Active: true}
		assert.False(t, o.Eligible(ctx))

		o.Conditions.IsDefault = true
		assert.True(t, o.Eligible(ctx))
	})
}

func TestFilterOffersLibertSuppression(t *testing.T) {
	ctx := baseContext()
	libert := Offer{ID: 1, Type: DiscountLibert, Active: true, Conditions: Conditions{IsDefault: true}}
	pct := Offer{ID: 2, Type: DiscountPercentage, Active: true}

	t.Run("libert dropped when anything else qualifies", func(t *testing.T) {
		out := FilterOffers([]Offer{libert, pct}, ctx)
		require.Len(t, out.AutoApplied, 1)
		assert.Equal(t, uint(2), out.AutoApplied[0].ID)
		assert.Empty(t, out.Exclusive)
	})

	t.Run("libert survives alone", func(t *testing.T) {
		out := FilterOffers([]Offer{libert}, ctx)
		require.Len(t, out.AutoApplied, 1)
		assert.Equal(t, uint(1), out.AutoApplied[0].ID)
	})
}

func TestFilterOffersPartitionAndDefault(t *testing.T) {
	ctx := baseContext()
	catalog := []Offer{
		{ID: 1, Type: DiscountPercentage, Active: true},
		{ID: 2, Type: DiscountExclusive, Active: true, EligibleAgents: []uint{42}},
		{ID: 3, Type: DiscountSeasonal, Active: true},
		{ID: 4, Type: DiscountExclusive, Active: true, EligibleAgents: []uint{42}},
	}

	out := FilterOffers(catalog, ctx)
	require.Len(t, out.Exclusive, 2)
	require.Len(t, out.AutoApplied, 2)

	// Same priority keeps catalog order, so offer 2 is the default pick.
	def := out.DefaultSelection()
	require.NotNil(t, def)
	assert.Equal(t, uint(2), def.ID)
}

func TestFilterOffersEmptyResult(t *testing.T) {
	out := FilterOffers(nil, baseContext())
	assert.Empty(t, out.Exclusive)
	assert.Empty(t, out.AutoApplied)
	assert.Nil(t, out.DefaultSelection())
}
