package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travel-backend/middleware"
	"travel-backend/services"
	"travel-backend/utils"
)

type ActivityController struct {
	activities *services.ActivityService
}

func NewActivityController(activities *services.ActivityService) *ActivityController {
	return &ActivityController{activities: activities}
}

// GetActivities (GET /api/activities)
func (ac *ActivityController) GetActivities(c *gin.Context) {
	list, err := ac.activities.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GetActivity (GET /api/activities/:id)
func (ac *ActivityController) GetActivity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid activity id")
		return
	}

	activity, err := ac.activities.GetByID(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, activity)
}

// BookActivity (POST /api/activities/book)
func (ac *ActivityController) BookActivity(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing_token")
		return
	}

	var req services.ActivityBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	booking, err := ac.activities.CreateBooking(req, user)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}
