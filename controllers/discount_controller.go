package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travel-backend/middleware"
	"travel-backend/models"
	"travel-backend/services"
	"travel-backend/utils"
)

type DiscountController struct {
	offers *services.OfferService
	quotes *services.QuoteService
}

func NewDiscountController(offers *services.OfferService, quotes *services.QuoteService) *DiscountController {
	return &DiscountController{offers: offers, quotes: quotes}
}

// GetDiscounts (GET /api/discounts)
func (dc *DiscountController) GetDiscounts(c *gin.Context) {
	list, err := dc.offers.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GetDiscount (GET /api/discounts/:id)
func (dc *DiscountController) GetDiscount(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid discount id")
		return
	}

	offer, err := dc.offers.GetByID(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, offer)
}

// EligibleDiscounts (GET /api/discounts/eligible?hotelId=&checkIn=&checkOut=&market=)
// lists the offers that would apply to a prospective stay for the caller.
func (dc *DiscountController) EligibleDiscounts(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Query("hotelId"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotelId")
		return
	}

	user, _ := middleware.CurrentUser(c)
	result, err := dc.quotes.EligibleForStay(uint(hotelID), c.Query("checkIn"), c.Query("checkOut"), c.Query("market"), user)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

// UpdateDiscount (PUT /api/discounts/:id, admin only)
func (dc *DiscountController) UpdateDiscount(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok || user.Role != models.RoleAdmin {
		utils.JSONError(c, http.StatusForbidden, "admin_only")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid discount id")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	offer, err := dc.offers.Update(uint(id), updates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, offer)
}

// MarkDiscountUsed (POST /api/discounts/:id/use, admin only)
func (dc *DiscountController) MarkDiscountUsed(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok || user.Role != models.RoleAdmin {
		utils.JSONError(c, http.StatusForbidden, "admin_only")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid discount id")
		return
	}

	var payload struct {
		AgentID uint `json:"agentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	offer, err := dc.offers.MarkUsed(uint(id), payload.AgentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, offer)
}
