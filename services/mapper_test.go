package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"travel-backend/models"
	"travel-backend/pricing"
)

func rawJSON(t *testing.T, v interface{}) datatypes.JSON {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return datatypes.JSON(raw)
}

func TestToPricingOffer(t *testing.T) {
	validFrom := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	minStay := 3

	row := models.Offer{
		Name:             "Agent Exclusive",
		DiscountType:     "exclusive",
		Active:           true,
		ValidFrom:        &validFrom,
		Value:            pricing.FromMajor(100),
		ApplicableHotels: rawJSON(t, []uint{1, 7}),
		DiscountValues: rawJSON(t, []models.DiscountValueEntry{
			{Market: "India", Type: "percentage", Value: 10},
			{Market: "Egypt", Type: "fixed", Value: 25.5},
		}),
		Conditions: rawJSON(t, models.OfferConditions{
			MinNights:      2,
			MinBookings:    3,
			MinStayDays:    &minStay,
			SeasonalMonths: []int{6, 7},
			IsDefault:      true,
		}),
		EligibleAgents: rawJSON(t, []uint{42}),
		UsedAgents:     rawJSON(t, []uint{50}),
	}
	row.ID = 9

	o := toPricingOffer(row)

	assert.Equal(t, uint(9), o.ID)
	assert.Equal(t, pricing.DiscountExclusive, o.Type)
	assert.True(t, o.Active)
	assert.Equal(t, []uint{1, 7}, o.ApplicableHotels)
	assert.Equal(t, []uint{42}, o.EligibleAgents)
	assert.Equal(t, []uint{50}, o.UsedAgents)
	assert.Equal(t, 2, o.Conditions.MinNights)
	assert.Equal(t, 3, o.Conditions.MinBookings)
	require.NotNil(t, o.Conditions.MinStayDays)
	assert.Equal(t, 3, *o.Conditions.MinStayDays)
	assert.Equal(t, []int{6, 7}, o.Conditions.SeasonalMonths)
	assert.True(t, o.Conditions.IsDefault)

	require.Len(t, o.Values, 2)
	assert.Equal(t, pricing.ValuePercentage, o.Values[0].Kind)
	assert.Equal(t, 10.0, o.Values[0].Percent)
	assert.Equal(t, pricing.ValueFixed, o.Values[1].Kind)
	assert.Equal(t, pricing.FromMajor(25.5), o.Values[1].Amount)

	require.NotNil(t, o.FlatValue)
	assert.Equal(t, pricing.ValueFixed, o.FlatValue.Kind)
	assert.Equal(t, pricing.FromMajor(100), o.FlatValue.Amount)
}

func TestToPricingOfferEmptyColumns(t *testing.T) {
	o := toPricingOffer(models.Offer{DiscountType: "percentage", Active: true})
	assert.Nil(t, o.ApplicableHotels)
	assert.Nil(t, o.Values)
	assert.Nil(t, o.FlatValue)
	assert.Nil(t, o.Conditions.StayPeriod)
}

func TestToPricingRole(t *testing.T) {
	assert.Equal(t, pricing.RoleAgent, toPricingRole(models.RoleAgent))
	assert.Equal(t, pricing.RoleAdmin, toPricingRole(models.RoleAdmin))
	assert.Equal(t, pricing.RoleCustomer, toPricingRole(models.RoleCustomer))
	assert.Equal(t, pricing.RoleCustomer, toPricingRole(""))
}

func TestResolveStayDates(t *testing.T) {
	testCases := []struct {
		name       string
		checkIn    string
		checkOut   string
		wantNights int
		wantErr    error
	}{
		{name: "four nights", checkIn: "2024-06-01", checkOut: "2024-06-05", wantNights: 4},
		{name: "missing check-out defaults to one night", checkIn: "2024-06-01", wantNights: 1},
		{name: "missing check-in defaults to one night", checkOut: "2024-06-05", wantNights: 1},
		{name: "both missing", wantErr: ErrInvalidDates},
		{name: "unparseable", checkIn: "junk", checkOut: "2024-06-05", wantErr: ErrInvalidDates},
		{name: "check-out not after check-in", checkIn: "2024-06-05", checkOut: "2024-06-05", wantErr: ErrCheckOutNotAfter},
		{name: "reversed dates", checkIn: "2024-06-05", checkOut: "2024-06-01", wantErr: ErrCheckOutNotAfter},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ci, co, nights, err := resolveStayDates(tc.checkIn, tc.checkOut)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantNights, nights)
			assert.True(t, co.After(ci))
		})
	}
}
