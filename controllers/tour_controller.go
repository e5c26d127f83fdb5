package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travel-backend/services"
	"travel-backend/utils"
)

type TourController struct {
	tours *services.TourService
}

func NewTourController(tours *services.TourService) *TourController {
	return &TourController{tours: tours}
}

// GetTours (GET /api/tours)
func (tc *TourController) GetTours(c *gin.Context) {
	list, err := tc.tours.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GetTour (GET /api/tours/:id)
func (tc *TourController) GetTour(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid tour id")
		return
	}

	tour, err := tc.tours.GetByID(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tour)
}
