package pricing

import "time"

// Passenger is one traveler record, one per adult and per child.
type Passenger struct {
	Type           string `json:"type"` // "adult" or "child"
	FullName       string `json:"fullName"`
	PassportNumber string `json:"passportNumber,omitempty"`
	Country        string `json:"country,omitempty"`
	FlightNumber   string `json:"flightNumber,omitempty"`
	FlightTime     string `json:"flightTime,omitempty"`
}

// ClientContact is the booking holder's contact info.
type ClientContact struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}

// BookingRequest is the submission payload for a reservation: the computed
// breakdown plus every identifier the server needs to persist the booking
// and to mark a consumed exclusive offer as used.
type BookingRequest struct {
	HotelID      uint      `json:"hotelId"`
	RoomID       uint      `json:"roomId"`
	MealPlan     string    `json:"mealPlan,omitempty"`
	Market       string    `json:"market"`
	CheckIn      time.Time `json:"checkIn"`
	CheckOut     time.Time `json:"checkOut"`
	Nights       int       `json:"nights"`
	Rooms        int       `json:"rooms"`
	Adults       int       `json:"adults"`
	Children     int       `json:"children"`
	ChildrenAges []int     `json:"childrenAges,omitempty"`

	Contact    ClientContact `json:"contact"`
	Passengers []Passenger   `json:"passengers"`

	Breakdown        Breakdown `json:"breakdown"`
	AppliedOfferIDs  []uint    `json:"appliedOfferIds,omitempty"`
	ExclusiveOfferID *uint     `json:"exclusiveOfferId,omitempty"`
}

// AssembleInput is the final booking-flow state the assembler shapes into a
// submission payload.
type AssembleInput struct {
	HotelID      uint
	RoomID       uint
	MealPlan     string
	Market       string
	CheckIn      time.Time
	CheckOut     time.Time
	Nights       int
	Rooms        int
	ChildrenAges []int
	Contact      ClientContact
	Adults       []Passenger
	Children     []Passenger
	Breakdown    Breakdown
	AutoApplied  []Offer
	Selected     *Offer
}

// AssembleBookingRequest packages the computed breakdown and passenger
// details for submission. Passengers are listed adults first then children,
// each tagged with its type. The consumed exclusive offer id is carried
// separately so the server can mark it used atomically with creation.
func AssembleBookingRequest(in AssembleInput) BookingRequest {
	passengers := make([]Passenger, 0, len(in.Adults)+len(in.Children))
	for _, p := range in.Adults {
		p.Type = "adult"
		passengers = append(passengers, p)
	}
	for _, p := range in.Children {
		p.Type = "child"
		passengers = append(passengers, p)
	}

	applied := make([]uint, 0, len(in.AutoApplied)+1)
	for _, o := range in.AutoApplied {
		applied = append(applied, o.ID)
	}

	req := BookingRequest{
		HotelID:      in.HotelID,
		RoomID:       in.RoomID,
		MealPlan:     in.MealPlan,
		Market:       in.Market,
		CheckIn:      in.CheckIn,
		CheckOut:     in.CheckOut,
		Nights:       in.Nights,
		Rooms:        in.Rooms,
		Adults:       len(in.Adults),
		Children:     len(in.Children),
		ChildrenAges: in.ChildrenAges,
		Contact:      in.Contact,
		Passengers:   passengers,
		Breakdown:    in.Breakdown,
	}

	if in.Selected != nil && in.Selected.Type == DiscountExclusive {
		id := in.Selected.ID
		req.ExclusiveOfferID = &id
		applied = append(applied, id)
	}
	if len(applied) > 0 {
		req.AppliedOfferIDs = applied
	}
	return req
}
