package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"travel-backend/models"
)

var ErrOfferNotFound = errors.New("offer_not_found")

// OfferService manages the discount catalog itself; eligibility filtering
// for a concrete stay lives in QuoteService.
type OfferService struct {
	DB *gorm.DB
}

func NewOfferService(db *gorm.DB) *OfferService {
	return &OfferService{DB: db}
}

func (s *OfferService) GetAll() ([]models.Offer, error) {
	var list []models.Offer
	if err := s.DB.Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve offers: %w", err)
	}
	return list, nil
}

func (s *OfferService) GetByID(id uint) (*models.Offer, error) {
	var offer models.Offer
	if err := s.DB.First(&offer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to retrieve offer: %w", err)
	}
	return &offer, nil
}

// Update applies an admin edit. Identity and timestamp fields are stripped
// so a stray payload can't rewrite them.
func (s *OfferService) Update(id uint, updates map[string]interface{}) (*models.Offer, error) {
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	delete(updates, "deleted_at")

	offer, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(offer).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update offer %d: %w", id, err)
	}
	return s.GetByID(id)
}

// MarkUsed appends an agent to the offer's used list outside a booking
// transaction. Booking submission does this atomically itself; this path
// exists for the admin surface.
func (s *OfferService) MarkUsed(id, agentID uint) (*models.Offer, error) {
	offer, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	used := offer.DecodeUsedAgents()
	for _, u := range used {
		if u == agentID {
			return offer, nil
		}
	}
	used = append(used, agentID)

	raw, err := json.Marshal(used)
	if err != nil {
		return nil, fmt.Errorf("failed to encode used agents: %w", err)
	}
	if err := s.DB.Model(offer).Update("used_agents", raw).Error; err != nil {
		return nil, fmt.Errorf("failed to mark offer %d used: %w", id, err)
	}
	return s.GetByID(id)
}
