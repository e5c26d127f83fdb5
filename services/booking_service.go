package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"travel-backend/models"
	"travel-backend/pricing"
	"travel-backend/utils"
)

var (
	ErrBookingNotFound   = errors.New("booking_not_found")
	ErrMissingContact    = errors.New("missing_contact_info")
	ErrMissingPassengers = errors.New("missing_passenger_details")
	ErrMissingChildAges  = errors.New("missing_child_ages")
	ErrOfferAlreadyUsed  = errors.New("offer_already_used")
)

// timeNow is swappable in tests.
var timeNow = time.Now

// BookingService persists booking submissions. The breakdown a client sends
// is never trusted: the quote is recomputed server-side from the same state
// and the recomputed figures are what gets stored.
type BookingService struct {
	DB     *gorm.DB
	Quotes *QuoteService
}

func NewBookingService(db *gorm.DB, quotes *QuoteService) *BookingService {
	return &BookingService{DB: db, Quotes: quotes}
}

// SubmitRequest is the booking submission payload: the quoted flow state
// plus guest and contact details.
type SubmitRequest struct {
	QuoteRequest

	ChildrenAges []int                 `json:"childrenAges"`
	Contact      pricing.ClientContact `json:"contact"`
	Adults       []pricing.Passenger   `json:"adultPassengers"`
	Children     []pricing.Passenger   `json:"childPassengers"`
}

func (r *SubmitRequest) validate() error {
	if r.Contact.FullName == "" || r.Contact.Email == "" {
		return ErrMissingContact
	}
	adults := r.QuoteRequest.Adults
	if adults < 1 {
		adults = 1
	}
	if len(r.Adults) != adults || len(r.Children) != r.QuoteRequest.Children {
		return ErrMissingPassengers
	}
	for _, p := range append(r.Adults, r.Children...) {
		if p.FullName == "" {
			return ErrMissingPassengers
		}
	}
	if len(r.ChildrenAges) != r.QuoteRequest.Children {
		return ErrMissingChildAges
	}
	return nil
}

// Submit validates, reprices and persists a booking. Creating the booking
// and marking a consumed exclusive offer as used happen in one transaction,
// so a submission can never succeed while leaving the offer reusable.
func (s *BookingService) Submit(req SubmitRequest, user models.User) (*models.Booking, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	state, err := s.Quotes.quote(req.QuoteRequest, user, timeNow())
	if err != nil {
		return nil, err
	}

	var room models.Room
	if err := s.DB.First(&room, req.RoomID).Error; err != nil {
		return nil, fmt.Errorf("failed to load room: %w", err)
	}

	submission := pricing.AssembleBookingRequest(pricing.AssembleInput{
		HotelID:      room.HotelID,
		RoomID:       room.ID,
		MealPlan:     state.result.MealPlan,
		Market:       state.result.Market,
		CheckIn:      state.result.CheckIn,
		CheckOut:     state.result.CheckOut,
		Nights:       state.result.Nights,
		Rooms:        state.result.Rooms,
		ChildrenAges: req.ChildrenAges,
		Contact:      req.Contact,
		Adults:       req.Adults,
		Children:     req.Children,
		Breakdown:    state.result.Breakdown,
		AutoApplied:  state.eligible.AutoApplied,
		Selected:     state.selected,
	})

	booking, err := s.buildBookingRow(submission, user)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(booking).Error; err != nil {
			var mysqlErr *mysql.MySQLError
			if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
				// reference code collision; retry once with a fresh one
				booking.ReferenceCode = utils.GenerateReferenceCode()
				if err := tx.Create(booking).Error; err != nil {
					return fmt.Errorf("failed to create booking: %w", err)
				}
			} else {
				return fmt.Errorf("failed to create booking: %w", err)
			}
		}

		if submission.ExclusiveOfferID != nil {
			if err := consumeExclusiveOffer(tx, *submission.ExclusiveOfferID, user.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("booking %s created (user=%d room=%d total=%s)",
		booking.ReferenceCode, user.ID, booking.RoomID, booking.Total)
	return booking, nil
}

func (s *BookingService) buildBookingRow(sub pricing.BookingRequest, user models.User) (*models.Booking, error) {
	passengers, err := json.Marshal(sub.Passengers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode passengers: %w", err)
	}
	breakdown, err := json.Marshal(sub.Breakdown)
	if err != nil {
		return nil, fmt.Errorf("failed to encode breakdown: %w", err)
	}
	childrenAges, _ := json.Marshal(sub.ChildrenAges)
	appliedOffers, _ := json.Marshal(sub.AppliedOfferIDs)

	ci := sub.CheckIn
	co := sub.CheckOut
	return &models.Booking{
		ReferenceCode:    utils.GenerateReferenceCode(),
		Status:           models.BookingStatusRequested,
		UserID:           user.ID,
		HotelID:          sub.HotelID,
		RoomID:           sub.RoomID,
		CheckIn:          &ci,
		CheckOut:         &co,
		Nights:           sub.Nights,
		Rooms:            sub.Rooms,
		Adults:           sub.Adults,
		Children:         sub.Children,
		MealPlan:         sub.MealPlan,
		Market:           sub.Market,
		ContactName:      sub.Contact.FullName,
		ContactEmail:     sub.Contact.Email,
		ContactPhone:     sub.Contact.Phone,
		ChildrenAges:     childrenAges,
		Passengers:       passengers,
		Breakdown:        breakdown,
		Total:            sub.Breakdown.Total,
		AppliedOffers:    appliedOffers,
		ExclusiveOfferID: sub.ExclusiveOfferID,
	}, nil
}

// consumeExclusiveOffer appends the agent to the offer's used list under a
// row lock. A concurrent submission that got there first makes this one fail
// wholesale, rolling the booking back too.
func consumeExclusiveOffer(tx *gorm.DB, offerID, userID uint) error {
	var offer models.Offer
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&offer, offerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOfferNotEligible
		}
		return fmt.Errorf("failed to lock offer %d: %w", offerID, err)
	}

	used := offer.DecodeUsedAgents()
	for _, id := range used {
		if id == userID {
			return ErrOfferAlreadyUsed
		}
	}
	used = append(used, userID)

	raw, err := json.Marshal(used)
	if err != nil {
		return fmt.Errorf("failed to encode used agents: %w", err)
	}
	if err := tx.Model(&offer).Update("used_agents", raw).Error; err != nil {
		return fmt.Errorf("failed to mark offer %d used: %w", offerID, err)
	}
	return nil
}

// MyBookings lists the user's bookings, newest first.
func (s *BookingService) MyBookings(userID uint) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("Hotel").
		Preload("Room").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

// GetDetails loads one booking scoped to its owner (admins see all).
func (s *BookingService) GetDetails(bookingID uint, user models.User) (*models.Booking, error) {
	var bk models.Booking
	q := s.DB.Preload("Hotel").Preload("Room")
	if user.Role != models.RoleAdmin {
		q = q.Where("user_id = ?", user.ID)
	}
	if err := q.First(&bk, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking details: %w", err)
	}
	return &bk, nil
}
