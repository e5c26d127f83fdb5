package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"travel-backend/models"
	"travel-backend/pricing"
	"travel-backend/utils"
)

var (
	ErrRoomNotFound     = errors.New("room_not_found")
	ErrInvalidDates     = errors.New("invalid_dates")
	ErrCheckOutNotAfter = errors.New("checkout_not_after_checkin")
	ErrMealPlanNotFound = errors.New("meal_plan_not_found")
	ErrOfferNotEligible = errors.New("offer_not_eligible")
)

// QuoteService computes live price breakdowns for the booking flow. Every
// recompute (dates, guests, rooms, meal plan, offer selection) goes through
// Quote with the full current state; the engine itself is pure, so identical
// input always produces the identical breakdown.
type QuoteService struct {
	DB *gorm.DB
}

func NewQuoteService(db *gorm.DB) *QuoteService {
	return &QuoteService{DB: db}
}

// QuoteRequest is the booking-flow state a quote is computed from. CheckIn
// and CheckOut are date strings as exchanged on the wire; CarriedRate is the
// per-night figure the listing screen displayed, with an explicit flag for
// whether the market surcharge is already blended in.
type QuoteRequest struct {
	RoomID   uint   `json:"roomId" binding:"required"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Rooms    int    `json:"rooms"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
	MealPlan string `json:"mealPlan"`
	Market   string `json:"market"`

	CarriedRate       *float64 `json:"carriedRate,omitempty"`
	SurchargeIncluded bool     `json:"surchargeIncluded,omitempty"`

	// SelectedOfferID is the user's exclusive-offer pick; nil means "use the
	// default selection", an explicit 0 means "none".
	SelectedOfferID *uint `json:"selectedOfferId,omitempty"`
}

// OfferSummary is an eligible offer as shown to the user while quoting.
type OfferSummary struct {
	ID   uint                 `json:"id"`
	Name string               `json:"name"`
	Type pricing.DiscountType `json:"type"`
}

type QuoteResult struct {
	RoomID   uint      `json:"roomId"`
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
	Nights   int       `json:"nights"`
	Rooms    int       `json:"rooms"`
	Guests   int       `json:"guests"`
	MealPlan string    `json:"mealPlan,omitempty"`
	Market   string    `json:"market"`

	Breakdown pricing.Breakdown `json:"breakdown"`

	ExclusiveOffers   []OfferSummary `json:"exclusiveOffers"`
	AutoAppliedOffers []OfferSummary `json:"autoAppliedOffers"`
	SelectedOfferID   *uint          `json:"selectedOfferId,omitempty"`
}

// quoteState carries the intermediate pieces the booking service reuses when
// it recomputes a submission authoritatively.
type quoteState struct {
	result   QuoteResult
	eligible pricing.EligibleOffers
	selected *pricing.Offer
}

// resolveStayDates parses the date pair. A single missing date defaults the
// stay to one night; a present but unordered pair is a validation error the
// caller surfaces inline.
func resolveStayDates(checkIn, checkOut string) (time.Time, time.Time, int, error) {
	var ci, co time.Time
	var err error

	if checkIn != "" {
		if ci, err = utils.ParseDate(checkIn); err != nil {
			return ci, co, 0, ErrInvalidDates
		}
	}
	if checkOut != "" {
		if co, err = utils.ParseDate(checkOut); err != nil {
			return ci, co, 0, ErrInvalidDates
		}
	}

	switch {
	case ci.IsZero() && co.IsZero():
		return ci, co, 0, ErrInvalidDates
	case ci.IsZero():
		ci = co.AddDate(0, 0, -1)
		return ci, co, 1, nil
	case co.IsZero():
		co = ci.AddDate(0, 0, 1)
		return ci, co, 1, nil
	}

	nights, err := pricing.Nights(ci, co)
	if err != nil {
		return ci, co, 0, ErrCheckOutNotAfter
	}
	return ci, co, nights, nil
}

// Quote computes the breakdown for the current flow state on behalf of user
// (zero-value user means anonymous).
func (s *QuoteService) Quote(req QuoteRequest, user models.User) (QuoteResult, error) {
	state, err := s.quote(req, user, time.Now())
	if err != nil {
		return QuoteResult{}, err
	}
	return state.result, nil
}

func (s *QuoteService) quote(req QuoteRequest, user models.User, today time.Time) (quoteState, error) {
	var state quoteState

	ci, co, nights, err := resolveStayDates(req.CheckIn, req.CheckOut)
	if err != nil {
		return state, err
	}

	if req.Rooms < 1 {
		req.Rooms = 1
	}
	if req.Adults < 1 {
		req.Adults = 1
	}
	if req.Children < 0 {
		req.Children = 0
	}
	if req.Market == "" {
		req.Market = user.Market
	}

	var room models.Room
	if err := s.DB.Preload("PricePeriods").Preload("MarketPrices").First(&room, req.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return state, ErrRoomNotFound
		}
		return state, fmt.Errorf("failed to load room %d: %w", req.RoomID, err)
	}

	surcharge := pricing.SurchargeFor(toPricingMarkets(room.MarketPrices), req.Market)

	// The listing screen may carry its displayed per-night figure into the
	// flow; otherwise the rate is resolved fresh from the price periods.
	carried := pricing.CarriedRate{
		PerNight:          pricing.ResolveNightlyRate(toPricingPeriods(room.PricePeriods), ci),
		SurchargeIncluded: false,
	}
	if req.CarriedRate != nil {
		carried = pricing.CarriedRate{
			PerNight:          pricing.FromMajor(*req.CarriedRate),
			SurchargeIncluded: req.SurchargeIncluded,
		}
	}
	nightlyRate := pricing.NetNightlyRate(carried, surcharge)

	mealPlanRate, err := s.mealPlanRate(room.HotelID, req.MealPlan)
	if err != nil {
		return state, err
	}

	eligible, selected, err := s.eligibleOffers(offerQuery{
		hotelID:         room.HotelID,
		checkIn:         ci,
		checkOut:        co,
		nights:          nights,
		market:          req.Market,
		user:            user,
		selectedOfferID: req.SelectedOfferID,
		today:           today,
	})
	if err != nil {
		return state, err
	}

	guests := req.Adults + req.Children
	stay := pricing.ComputeStayCost(pricing.StayInput{
		NightlyRate:       nightlyRate,
		SurchargePerNight: surcharge,
		MealPlanRate:      mealPlanRate,
		Nights:            nights,
		Rooms:             req.Rooms,
		Guests:            guests,
	})

	breakdown := pricing.Reconcile(pricing.TotalsInput{
		NightlyRate:       nightlyRate,
		Stay:              stay,
		MealPlanName:      req.MealPlan,
		MealPlanRate:      mealPlanRate,
		SurchargePerNight: surcharge,
		AutoApplied:       eligible.AutoApplied,
		SelectedExclusive: selected,
		HotelID:           room.HotelID,
		Market:            req.Market,
	})

	state.eligible = eligible
	state.selected = selected
	state.result = QuoteResult{
		RoomID:            room.ID,
		CheckIn:           ci,
		CheckOut:          co,
		Nights:            nights,
		Rooms:             req.Rooms,
		Guests:            guests,
		MealPlan:          req.MealPlan,
		Market:            req.Market,
		Breakdown:         breakdown,
		ExclusiveOffers:   summarize(eligible.Exclusive),
		AutoAppliedOffers: summarize(eligible.AutoApplied),
	}
	if selected != nil {
		id := selected.ID
		state.result.SelectedOfferID = &id
	}
	return state, nil
}

// EligibleOffersResult is the partitioned offer listing for a prospective
// stay, before any price is computed.
type EligibleOffersResult struct {
	ExclusiveOffers   []OfferSummary `json:"exclusiveOffers"`
	AutoAppliedOffers []OfferSummary `json:"autoAppliedOffers"`
	DefaultOfferID    *uint          `json:"defaultOfferId,omitempty"`
}

// EligibleForStay lists the offers applicable to a hotel/date/market
// combination for the given user, without pricing a room.
func (s *QuoteService) EligibleForStay(hotelID uint, checkIn, checkOut, market string, user models.User) (EligibleOffersResult, error) {
	ci, co, nights, err := resolveStayDates(checkIn, checkOut)
	if err != nil {
		return EligibleOffersResult{}, err
	}
	if market == "" {
		market = user.Market
	}

	eligible, selected, err := s.eligibleOffers(offerQuery{
		hotelID:  hotelID,
		checkIn:  ci,
		checkOut: co,
		nights:   nights,
		market:   market,
		user:     user,
		today:    timeNow(),
	})
	if err != nil {
		return EligibleOffersResult{}, err
	}

	out := EligibleOffersResult{
		ExclusiveOffers:   summarize(eligible.Exclusive),
		AutoAppliedOffers: summarize(eligible.AutoApplied),
	}
	if selected != nil {
		id := selected.ID
		out.DefaultOfferID = &id
	}
	return out, nil
}

type offerQuery struct {
	hotelID         uint
	checkIn         time.Time
	checkOut        time.Time
	nights          int
	market          string
	user            models.User
	selectedOfferID *uint
	today           time.Time
}

// eligibleOffers filters the catalog for the stay and resolves the user's
// exclusive-offer selection: nil means the priority default, an explicit 0
// deselects, any other id must be one of the qualifying exclusive offers.
func (s *QuoteService) eligibleOffers(q offerQuery) (pricing.EligibleOffers, *pricing.Offer, error) {
	var rows []models.Offer
	if err := s.DB.Where("active = ?", true).Order("id ASC").Find(&rows).Error; err != nil {
		return pricing.EligibleOffers{}, nil, fmt.Errorf("failed to load offers: %w", err)
	}

	priorBookings := 0
	if q.user.ID != 0 {
		var count int64
		if err := s.DB.Model(&models.Booking{}).
			Where("user_id = ? AND status <> ?", q.user.ID, models.BookingStatusCancelled).
			Count(&count).Error; err != nil {
			return pricing.EligibleOffers{}, nil, fmt.Errorf("failed to count prior bookings: %w", err)
		}
		priorBookings = int(count)
	}

	ctx := pricing.EligibilityContext{
		Today:         q.today,
		HotelID:       q.hotelID,
		CheckIn:       q.checkIn,
		CheckOut:      q.checkOut,
		Nights:        q.nights,
		UserID:        q.user.ID,
		Role:          toPricingRole(q.user.Role),
		PriorBookings: priorBookings,
		Market:        q.market,
	}

	eligible := pricing.FilterOffers(toPricingOffers(rows), ctx)

	var selected *pricing.Offer
	switch {
	case q.selectedOfferID == nil:
		selected = eligible.DefaultSelection()
	case *q.selectedOfferID == 0:
		selected = nil
	default:
		for i := range eligible.Exclusive {
			if eligible.Exclusive[i].ID == *q.selectedOfferID {
				selected = &eligible.Exclusive[i]
				break
			}
		}
		if selected == nil {
			return eligible, nil, ErrOfferNotEligible
		}
	}
	return eligible, selected, nil
}

// mealPlanRate resolves the per-person-per-night price for the named plan.
// No plan selected means no addon.
func (s *QuoteService) mealPlanRate(hotelID uint, name string) (pricing.Money, error) {
	if name == "" {
		return 0, nil
	}
	var plan models.MealPlan
	err := s.DB.Where("hotel_id = ? AND name = ?", hotelID, name).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrMealPlanNotFound
		}
		return 0, fmt.Errorf("failed to load meal plan: %w", err)
	}
	return plan.Price, nil
}

func summarize(offers []pricing.Offer) []OfferSummary {
	out := make([]OfferSummary, 0, len(offers))
	for _, o := range offers {
		out = append(out, OfferSummary{ID: o.ID, Name: o.Description, Type: o.Type})
	}
	return out
}
