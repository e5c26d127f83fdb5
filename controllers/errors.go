package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-backend/services"
	"travel-backend/utils"
)

// respondServiceError maps service sentinel errors to HTTP statuses. Unknown
// errors are logged and surfaced as a generic 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidDates),
		errors.Is(err, services.ErrCheckOutNotAfter),
		errors.Is(err, services.ErrMissingContact),
		errors.Is(err, services.ErrMissingPassengers),
		errors.Is(err, services.ErrMissingChildAges),
		errors.Is(err, services.ErrInvalidParticipants),
		errors.Is(err, services.ErrMealPlanNotFound):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrHotelNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrOfferNotFound),
		errors.Is(err, services.ErrActivityNotFound),
		errors.Is(err, services.ErrTourNotFound),
		errors.Is(err, services.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrOfferNotEligible),
		errors.Is(err, services.ErrOfferAlreadyUsed):
		utils.JSONError(c, http.StatusConflict, err.Error())
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal_error")
	}
}
