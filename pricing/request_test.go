package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleBookingRequest(t *testing.T) {
	selected := Offer{ID: 9, Type: DiscountExclusive}
	in := AssembleInput{
		HotelID:      7,
		RoomID:       3,
		MealPlan:     "Half Board",
		Market:       "India",
		CheckIn:      date(2024, 6, 1),
		CheckOut:     date(2024, 6, 5),
		Nights:       4,
		Rooms:        2,
		ChildrenAges: []int{6},
		Contact:      ClientContact{FullName: "Asha Verma", Email: "asha@example.com"},
		Adults: []Passenger{
			{FullName: "Asha Verma", PassportNumber: "P1", Country: "India"},
			{FullName: "Ravi Verma", PassportNumber: "P2", Country: "India"},
		},
		Children:    []Passenger{{FullName: "Mira Verma", Country: "India"}},
		Breakdown:   Breakdown{Total: FromMajor(1908)},
		AutoApplied: []Offer{{ID: 1, Type: DiscountPercentage}},
		Selected:    &selected,
	}

	req := AssembleBookingRequest(in)

	assert.Equal(t, 2, req.Adults)
	assert.Equal(t, 1, req.Children)
	require.Len(t, req.Passengers, 3)
	// Adults first, then children, each tagged.
	assert.Equal(t, "adult", req.Passengers[0].Type)
	assert.Equal(t, "adult", req.Passengers[1].Type)
	assert.Equal(t, "child", req.Passengers[2].Type)
	assert.Equal(t, "Mira Verma", req.Passengers[2].FullName)

	assert.Equal(t, []uint{1, 9}, req.AppliedOfferIDs)
	require.NotNil(t, req.ExclusiveOfferID)
	assert.Equal(t, uint(9), *req.ExclusiveOfferID)
	assert.Equal(t, FromMajor(1908), req.Breakdown.Total)
}

func TestAssembleBookingRequestNoOffers(t *testing.T) {
	req := AssembleBookingRequest(AssembleInput{
		HotelID: 7,
		RoomID:  3,
		Adults:  []Passenger{{FullName: "Solo Traveler"}},
	})

	assert.Nil(t, req.ExclusiveOfferID)
	assert.Empty(t, req.AppliedOfferIDs)
	require.Len(t, req.Passengers, 1)
	assert.Equal(t, "adult", req.Passengers[0].Type)
}

func TestAssembleBookingRequestIgnoresNonExclusiveSelection(t *testing.T) {
	pct := Offer{ID: 2, Type: DiscountPercentage}
	req := AssembleBookingRequest(AssembleInput{Selected: &pct})
	assert.Nil(t, req.ExclusiveOfferID)
	assert.Empty(t, req.AppliedOfferIDs)
}
