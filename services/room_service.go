package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"travel-backend/models"
	"travel-backend/pricing"
)

var ErrHotelNotFound = errors.New("hotel_not_found")

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) GetHotels() ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := s.DB.Order("id ASC").Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve hotels: %w", err)
	}
	return hotels, nil
}

func (s *RoomService) GetHotel(id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	err := s.DB.
		Preload("Rooms.PricePeriods").
		Preload("Rooms.MarketPrices").
		Preload("MealPlans").
		First(&hotel, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to retrieve hotel: %w", err)
	}
	return &hotel, nil
}

func (s *RoomService) GetRoom(id uint) (*models.Room, error) {
	var room models.Room
	err := s.DB.Preload("PricePeriods").Preload("MarketPrices").First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to retrieve room: %w", err)
	}
	return &room, nil
}

func (s *RoomService) GetRoomsByHotel(hotelID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.
		Preload("PricePeriods").
		Preload("MarketPrices").
		Where("hotel_id = ?", hotelID).
		Order("id ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms for hotel %d: %w", hotelID, err)
	}
	return rooms, nil
}

// AvailableRoom is a room of the requested hotel with its per-night figures
// already resolved for the stay, as the listing screen shows them. PerNight
// carries the surcharge blended in; the explicit flag travels with it into
// the booking flow.
type AvailableRoom struct {
	Room              models.Room   `json:"room"`
	NightlyRate       pricing.Money `json:"nightlyRate"`
	Surcharge         pricing.Money `json:"surcharge"`
	PerNight          pricing.Money `json:"perNight"`
	SurchargeIncluded bool          `json:"surchargeIncluded"`
}

// Availability lists the hotel's rooms free for the window, skipping rooms
// whose whole stock is already booked over an overlapping stay, and quotes
// each one's nightly figures for the requested nationality. Rooms with no
// published rate for the dates are listed with a zero rate rather than
// hidden; the booking flow treats that as "no price published".
func (s *RoomService) Availability(hotelID uint, checkIn, checkOut time.Time, nationality string) ([]AvailableRoom, error) {
	rooms, err := s.GetRoomsByHotel(hotelID)
	if err != nil {
		return nil, err
	}

	out := make([]AvailableRoom, 0, len(rooms))
	for _, room := range rooms {
		var overlapping int64
		err := s.DB.Model(&models.Booking{}).
			Where("room_id = ? AND status IN ?", room.ID,
				[]string{models.BookingStatusRequested, models.BookingStatusConfirmed}).
			Where("check_in < ? AND check_out > ?", checkOut, checkIn).
			Count(&overlapping).Error
		if err != nil {
			return nil, fmt.Errorf("failed to check availability for room %d: %w", room.ID, err)
		}
		if overlapping > 0 {
			continue
		}

		rate := pricing.ResolveNightlyRate(toPricingPeriods(room.PricePeriods), checkIn)
		surcharge := pricing.SurchargeFor(toPricingMarkets(room.MarketPrices), nationality)
		out = append(out, AvailableRoom{
			Room:              room,
			NightlyRate:       rate,
			Surcharge:         surcharge,
			PerNight:          rate + surcharge,
			SurchargeIncluded: true,
		})
	}
	return out, nil
}
