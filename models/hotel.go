package models

import (
	"gorm.io/gorm"
)

type Hotel struct {
	gorm.Model

	Name        string `gorm:"size:255" json:"name"`
	City        string `gorm:"size:150" json:"city"`
	Country     string `gorm:"size:150" json:"country"`
	Stars       int    `json:"stars"`
	Description string `gorm:"type:text" json:"description"`

	Rooms     []Room     `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
	MealPlans []MealPlan `gorm:"foreignKey:HotelID" json:"mealPlans,omitempty"`
}
