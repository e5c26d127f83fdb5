package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"travel-backend/models"
	"travel-backend/utils"
)

var (
	ErrActivityNotFound    = errors.New("activity_not_found")
	ErrInvalidParticipants = errors.New("invalid_participants")
)

type ActivityService struct {
	DB *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{DB: db}
}

func (s *ActivityService) GetAll() ([]models.Activity, error) {
	var list []models.Activity
	if err := s.DB.Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve activities: %w", err)
	}
	return list, nil
}

func (s *ActivityService) GetByID(id uint) (*models.Activity, error) {
	var activity models.Activity
	if err := s.DB.First(&activity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to retrieve activity: %w", err)
	}
	return &activity, nil
}

type ActivityBookingRequest struct {
	ActivityID   uint   `json:"activityId" binding:"required"`
	Date         string `json:"date"`
	Participants int    `json:"participants"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
}

// CreateBooking prices an activity booking server-side (per-participant
// price times head count) and persists it.
func (s *ActivityService) CreateBooking(req ActivityBookingRequest, user models.User) (*models.ActivityBooking, error) {
	if req.Participants < 1 {
		return nil, ErrInvalidParticipants
	}
	if req.ContactName == "" || req.ContactEmail == "" {
		return nil, ErrMissingContact
	}

	activity, err := s.GetByID(req.ActivityID)
	if err != nil {
		return nil, err
	}

	var date *time.Time
	if req.Date != "" {
		parsed, err := utils.ParseDate(req.Date)
		if err != nil {
			return nil, ErrInvalidDates
		}
		date = &parsed
	}

	booking := models.ActivityBooking{
		ActivityID:   activity.ID,
		UserID:       user.ID,
		Date:         date,
		Participants: req.Participants,
		Total:        activity.Price.MulInt(req.Participants),
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("failed to create activity booking: %w", err)
	}
	return &booking, nil
}
