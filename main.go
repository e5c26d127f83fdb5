package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"travel-backend/config"
	"travel-backend/controllers"
	"travel-backend/routes"
	"travel-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("database connection established, migrations and seed applied")

	// Initialize services
	userService := services.NewUserService(db)
	roomService := services.NewRoomService(db)
	quoteService := services.NewQuoteService(db)
	offerService := services.NewOfferService(db)
	bookingService := services.NewBookingService(db, quoteService)
	activityService := services.NewActivityService(db)
	tourService := services.NewTourService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(userService)
	userController := controllers.NewUserController(userService, bookingService)
	hotelController := controllers.NewHotelController(roomService)
	roomController := controllers.NewRoomController(roomService)
	quoteController := controllers.NewQuoteController(quoteService)
	discountController := controllers.NewDiscountController(offerService, quoteService)
	bookingController := controllers.NewBookingController(bookingService)
	activityController := controllers.NewActivityController(activityService)
	tourController := controllers.NewTourController(tourService)

	router := routes.SetupRouter(
		db,
		authController,
		userController,
		hotelController,
		roomController,
		quoteController,
		discountController,
		bookingController,
		activityController,
		tourController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
