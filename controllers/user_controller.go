package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-backend/middleware"
	"travel-backend/services"
	"travel-backend/utils"
)

type UserController struct {
	users    *services.UserService
	bookings *services.BookingService
}

func NewUserController(users *services.UserService, bookings *services.BookingService) *UserController {
	return &UserController{users: users, bookings: bookings}
}

// Me (GET /api/users/me)
func (uc *UserController) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing_token")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// MyBookings (GET /api/bookings/my)
func (uc *UserController) MyBookings(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing_token")
		return
	}

	list, err := uc.bookings.MyBookings(user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}
