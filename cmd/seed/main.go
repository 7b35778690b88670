package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"

	"github.com/teremets90/cashdrive-app/internal/auth"
	"github.com/teremets90/cashdrive-app/internal/config"
	"github.com/teremets90/cashdrive-app/internal/database"
	"github.com/teremets90/cashdrive-app/internal/models"
)

// Seeds a test admin, a regular user and the current daily/monthly challenges.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		log.Fatalf("postgres connect: %v", err)
	}
	ctx := context.Background()

	adminHash, err := auth.HashPassword("admin123")
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	userHash, err := auth.HashPassword("user123")
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	users := []models.User{
		{Name: "Administrator", Phone: "+79001234567", PasswordHash: adminHash, BirthDate: birth, IsAdmin: true},
		{Name: "Test user", Phone: "+79001234568", PasswordHash: userHash, BirthDate: birth},
	}
	for i := range users {
		err := db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "phone"}}, DoNothing: true}).
			Create(&users[i]).Error
		if err != nil {
			log.Fatalf("seed user %s: %v", users[i].Phone, err)
		}
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)

	challenges := []models.Challenge{
		{Type: models.ChallengeDaily, Title: "Daily challenge: 10 trips", TargetTrips: 10, StartDate: todayStart, EndDate: todayEnd, IsActive: true},
		{Type: models.ChallengeMonthly, Title: "Monthly challenge: 200 trips", TargetTrips: 200, StartDate: monthStart, EndDate: monthEnd, IsActive: true},
	}
	for i := range challenges {
		if err := db.WithContext(ctx).Create(&challenges[i]).Error; err != nil {
			log.Fatalf("seed challenge %q: %v", challenges[i].Title, err)
		}
	}

	log.Println("seed completed")
}
