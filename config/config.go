package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.FoodCategory{},
		&models.Food{},
		&models.ActivityCategory{},
		&models.Activity{},
		&models.FoodLog{},
		&models.ActivityLog{},
		&models.StepLog{},
		&models.WaterLog{},
		&models.ArticleCategory{},
		&models.Article{},
		&models.EventCategory{},
		&models.Event{},
		&models.Tip{},
		&models.Faq{},
		&models.Carousel{},
		&models.Information{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// Timezone resolves the zone every daily bucket is computed in. All users
// share one zone, so a day boundary means the same instant for everyone.
func Timezone() *time.Location {
	name := os.Getenv("APP_TIMEZONE")
	if name == "" {
		name = "Asia/Makassar"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid APP_TIMEZONE %q, falling back to UTC: %v", name, err)
		return time.UTC
	}
	return loc
}
