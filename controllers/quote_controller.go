package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-backend/middleware"
	"travel-backend/services"
	"travel-backend/utils"
)

type QuoteController struct {
	quotes *services.QuoteService
}

func NewQuoteController(quotes *services.QuoteService) *QuoteController {
	return &QuoteController{quotes: quotes}
}

// Quote (POST /api/quotes) recomputes the breakdown for the current booking
// flow state. Anonymous callers get customer pricing.
func (qc *QuoteController) Quote(c *gin.Context) {
	var req services.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	user, _ := middleware.CurrentUser(c)
	result, err := qc.quotes.Quote(req, user)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}
