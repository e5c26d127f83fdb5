package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travel-backend/controllers"
	"travel-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controller instances onto the route tree.
func SetupRouter(
	db *gorm.DB,
	auc *controllers.AuthController,
	uc *controllers.UserController,
	hc *controllers.HotelController,
	rc *controllers.RoomController,
	qc *controllers.QuoteController,
	dc *controllers.DiscountController,
	bc *controllers.BookingController,
	ac *controllers.ActivityController,
	tc *controllers.TourController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", auc.Login)
		}

		users := api.Group("/users", middleware.RequireAuth(db))
		{
			users.GET("/me", uc.Me)
		}

		hotels := api.Group("/hotels")
		{
			hotels.GET("", hc.GetHotels)
			hotels.GET("/:id", hc.GetHotel)
			hotels.GET("/:id/rooms", hc.GetHotelRooms)
			hotels.GET("/:id/availability", rc.Availability)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("/:id", rc.GetRoom)
		}

		// Quotes and eligibility work for anonymous callers too; a token
		// just unlocks role- and history-gated offers.
		quotes := api.Group("/quotes", middleware.OptionalAuth(db))
		{
			quotes.POST("", qc.Quote)
		}

		discounts := api.Group("/discounts")
		{
			discounts.GET("", dc.GetDiscounts)
			discounts.GET("/eligible", middleware.OptionalAuth(db), dc.EligibleDiscounts)

			// /eligible must stay above /:id
			discounts.GET("/:id", dc.GetDiscount)
			discounts.PUT("/:id", middleware.RequireAuth(db), dc.UpdateDiscount)
			discounts.POST("/:id/use", middleware.RequireAuth(db), dc.MarkDiscountUsed)
		}

		bookings := api.Group("/bookings", middleware.RequireAuth(db))
		{
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/my", uc.MyBookings)
			bookings.GET("/:id", bc.GetBooking)
		}

		activities := api.Group("/activities")
		{
			activities.GET("", ac.GetActivities)
			activities.GET("/:id", ac.GetActivity)
			activities.POST("/book", middleware.RequireAuth(db), ac.BookActivity)
		}

		tours := api.Group("/tours")
		{
			tours.GET("", tc.GetTours)
			tours.GET("/:id", tc.GetTour)
		}
	}

	return r
}
