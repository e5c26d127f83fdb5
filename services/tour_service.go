package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"travel-backend/models"
)

var ErrTourNotFound = errors.New("tour_not_found")

type TourService struct {
	DB *gorm.DB
}

func NewTourService(db *gorm.DB) *TourService {
	return &TourService{DB: db}
}

func (s *TourService) GetAll() ([]models.Tour, error) {
	var list []models.Tour
	if err := s.DB.Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve tours: %w", err)
	}
	return list, nil
}

func (s *TourService) GetByID(id uint) (*models.Tour, error) {
	var tour models.Tour
	if err := s.DB.First(&tour, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, fmt.Errorf("failed to retrieve tour: %w", err)
	}
	return &tour, nil
}
