package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travel-backend/services"
	"travel-backend/utils"
)

type HotelController struct {
	rooms *services.RoomService
}

func NewHotelController(rooms *services.RoomService) *HotelController {
	return &HotelController{rooms: rooms}
}

// GetHotels (GET /api/hotels)
func (hc *HotelController) GetHotels(c *gin.Context) {
	hotels, err := hc.rooms.GetHotels()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

// GetHotel (GET /api/hotels/:id)
func (hc *HotelController) GetHotel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
		return
	}

	hotel, err := hc.rooms.GetHotel(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// GetHotelRooms (GET /api/hotels/:id/rooms)
func (hc *HotelController) GetHotelRooms(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
		return
	}

	rooms, err := hc.rooms.GetRoomsByHotel(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}
