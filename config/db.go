package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"travel-backend/models"
	"travel-backend/pricing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "travel_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Hotel{},
		&models.Room{},
		&models.PricePeriod{},
		&models.MarketPrice{},
		&models.MealPlan{},
		&models.Offer{},
		&models.Booking{},
		&models.Activity{},
		&models.ActivityBooking{},
		&models.Tour{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

func mustParseDate(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		log.Fatalf("Error parsing date for seeding (%s): %v", value, err)
	}
	return t
}

func mustJSON(v interface{}) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Fatalf("Error marshaling seed data: %v", err)
	}
	return datatypes.JSON(raw)
}

// SeedDatabase fills an empty development database with enough catalog data
// to exercise the booking flow end to end. Each block is seed-if-empty so
// restarts don't duplicate rows.
func SeedDatabase() {
	// ---------------- Users ----------------
	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		seedUser := func(fullName, email, role, market, password string) models.User {
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("warning: failed to hash seed password for %s: %v", email, err)
			}
			return models.User{FullName: fullName, Email: email, Role: role, Market: market, Password: string(hash)}
		}
		users := []models.User{
			seedUser("Admin User", "admin@travel.local", models.RoleAdmin, "", "admin123"),
			seedUser("Agent Smith", "agent@travel.local", models.RoleAgent, "India", "agent123"),
			seedUser("Asha Verma", "asha@travel.local", models.RoleCustomer, "India", "customer123"),
		}
		if err := DB.Create(&users).Error; err != nil {
			log.Printf("warning: failed to seed users: %v", err)
		} else {
			log.Println("Users seeded")
		}
	}

	// ---------------- Hotels & rooms ----------------
	var hotelCount int64
	DB.Model(&models.Hotel{}).Count(&hotelCount)
	if hotelCount == 0 {
		hotel := models.Hotel{
			Name:    "Coral Bay Resort",
			City:    "Hurghada",
			Country: "Egypt",
			Stars:   5,
		}
		if err := DB.Create(&hotel).Error; err != nil {
			log.Printf("warning: failed to seed hotel: %v", err)
		} else {
			rooms := []models.Room{
				{
					HotelID:     hotel.ID,
					Name:        "Deluxe Sea View",
					Type:        "Deluxe",
					BasePrice:   pricing.FromMajor(200),
					MaxAdults:   2,
					MaxChildren: 2,
					Transportations: mustJSON([]models.Transportation{
						{Type: "airport", Method: "shuttle"},
					}),
				},
				{
					HotelID:   hotel.ID,
					Name:      "Standard Garden",
					Type:      "Standard",
					BasePrice: pricing.FromMajor(120),
					MaxAdults: 2,
				},
			}
			if err := DB.Create(&rooms).Error; err != nil {
				log.Printf("warning: failed to seed rooms: %v", err)
			} else {
				periods := []models.PricePeriod{
					{RoomID: rooms[0].ID, StartDate: mustParseDate("2024-01-01"), EndDate: mustParseDate("2024-05-31"), Price: pricing.FromMajor(180)},
					{RoomID: rooms[0].ID, StartDate: mustParseDate("2024-06-01"), EndDate: mustParseDate("2024-09-30"), Price: pricing.FromMajor(200)},
					{RoomID: rooms[1].ID, StartDate: mustParseDate("2024-01-01"), EndDate: mustParseDate("2024-12-31"), Price: pricing.FromMajor(120)},
				}
				DB.Create(&periods)

				markets := []models.MarketPrice{
					{RoomID: rooms[0].ID, Market: "India", Price: pricing.FromMajor(20)},
					{RoomID: rooms[0].ID, Market: "Germany", Price: pricing.FromMajor(35)},
					{RoomID: rooms[1].ID, Market: "India", Price: pricing.FromMajor(10)},
				}
				DB.Create(&markets)
			}

			mealPlans := []models.MealPlan{
				{HotelID: hotel.ID, Name: "Included", Price: 0},
				{HotelID: hotel.ID, Name: "Half Board", Price: pricing.FromMajor(30)},
				{HotelID: hotel.ID, Name: "All-Inclusive", Price: pricing.FromMajor(55)},
			}
			DB.Create(&mealPlans)
			log.Println("Hotel catalog seeded")
		}
	}

	// ---------------- Offers ----------------
	var offerCount int64
	DB.Model(&models.Offer{}).Count(&offerCount)
	if offerCount == 0 {
		var agent models.User
		_ = DB.Where("role = ?", models.RoleAgent).First(&agent).Error
		var hotel models.Hotel
		_ = DB.First(&hotel).Error

		offers := []models.Offer{
			{
				Name:         "Summer Saver",
				Description:  "10% off summer stays",
				DiscountType: "percentage",
				Active:       true,
				DiscountValues: mustJSON([]models.DiscountValueEntry{
					{Market: "India", Type: "percentage", Value: 10},
					{Market: "Germany", Type: "fixed", Value: 50},
				}),
			},
			{
				Name:             "Agent Exclusive",
				Description:      "Fixed reward for partner agents",
				DiscountType:     "exclusive",
				Active:           true,
				Value:            pricing.FromMajor(100),
				ApplicableHotels: mustJSON([]uint{hotel.ID}),
				EligibleAgents:   mustJSON([]uint{agent.ID}),
				Conditions:       mustJSON(models.OfferConditions{MinBookings: 2}),
			},
			{
				Name:         "Winter Season",
				Description:  "Seasonal discount for winter months",
				DiscountType: "seasonal",
				Active:       true,
				DiscountValues: mustJSON([]models.DiscountValueEntry{
					{Market: "India", Type: "percentage", Value: 5},
				}),
				Conditions: mustJSON(models.OfferConditions{SeasonalMonths: []int{11, 12, 1}}),
			},
			{
				Name:         "Long Stay Transfer",
				Description:  "Free-transfer credit on longer stays",
				DiscountType: "transportation",
				Active:       true,
				DiscountValues: mustJSON([]models.DiscountValueEntry{
					{Market: "India", Type: "fixed", Value: 25},
				}),
			},
			{
				Name:         "Libert Default",
				Description:  "Fallback tier when nothing else applies",
				DiscountType: "libert",
				Active:       true,
				DiscountValues: mustJSON([]models.DiscountValueEntry{
					{Market: "India", Type: "percentage", Value: 2},
				}),
				Conditions: mustJSON(models.OfferConditions{IsDefault: true}),
			},
		}
		if err := DB.Create(&offers).Error; err != nil {
			log.Printf("warning: failed to seed offers: %v", err)
		} else {
			log.Println("Offers seeded")
		}
	}

	// ---------------- Activities & tours ----------------
	var activityCount int64
	DB.Model(&models.Activity{}).Count(&activityCount)
	if activityCount == 0 {
		activities := []models.Activity{
			{Name: "Reef Snorkeling", Location: "Giftun Island", Price: pricing.FromMajor(45)},
			{Name: "Desert Quad Safari", Location: "Hurghada", Price: pricing.FromMajor(60)},
		}
		DB.Create(&activities)
	}

	var tourCount int64
	DB.Model(&models.Tour{}).Count(&tourCount)
	if tourCount == 0 {
		tours := []models.Tour{
			{Name: "Nile Explorer", Days: 7, PriceUSD: pricing.FromMajor(899)},
			{Name: "Red Sea & Luxor", Days: 5, PriceUSD: pricing.FromMajor(649)},
		}
		DB.Create(&tours)
	}
}
