// Command seed inserts the default service catalog and an initial admin
// account. Safe to run repeatedly; existing records are left untouched.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lezit/transports-server/internal/config"
	"github.com/lezit/transports-server/internal/connect"
	"github.com/lezit/transports-server/internal/helpers"
	"github.com/lezit/transports-server/internal/models"
)

var defaultServices = []models.Service{
	{Name: "Vehicle Rentals - With Driver", Category: models.CategoryPerson, Description: "Rent a vehicle for travelling long distances with professional driver included", BasePrice: 1500, PricePerKm: 15, IsActive: true},
	{Name: "Vehicle Rentals - Self Drive", Category: models.CategoryPerson, Description: "Rent a vehicle for travelling long distances (driver not included)", BasePrice: 1200, PricePerKm: 12, IsActive: true},
	{Name: "Shuttle/Commute Transportation", Category: models.CategoryPerson, Description: "Regular transportation for work, education, or daily commute", BasePrice: 800, PricePerKm: 10, IsActive: true},
	{Name: "Drivers", Category: models.CategoryPerson, Description: "Professional driver booking service for your vehicle", BasePrice: 1000, PricePerKm: 8, IsActive: true},
	{Name: "Interstate Transportation", Category: models.CategoryPerson, Description: "Cross-state travel services", BasePrice: 2000, PricePerKm: 18, IsActive: true},
	{Name: "Intrastate Transportation", Category: models.CategoryPerson, Description: "Within-state travel services", BasePrice: 1500, PricePerKm: 15, IsActive: true},
	{Name: "Logistics", Category: models.CategoryGoods, Description: "B2B goods transportation between businesses", BasePrice: 2500, PricePerKm: 20, IsActive: true},
	{Name: "Order Delivery", Category: models.CategoryGoods, Description: "General goods delivery services", BasePrice: 1800, PricePerKm: 16, IsActive: true},
}

func main() {
	_ = godotenv.Load(".env.local")

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	client, err := connect.MongoDBConnect(cfg.MongoDBURI)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := connect.MongoDBDisconnect(); err != nil {
			logger.Error("Error disconnecting from MongoDB", "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := connect.EnsureIndexes(ctx, client, cfg.MongoDBName); err != nil {
		logger.Error("Failed to create indexes", "error", err)
		os.Exit(1)
	}

	repo := models.MongodbNewRepo(client, cfg.MongoDBName)

	adminEmail := getEnvWithDefault("ADMIN_EMAIL", "admin@lezittransports.com")
	if _, err := repo.GetUserByEmail(ctx, adminEmail); err != nil {
		password := getEnvWithDefault("ADMIN_PASSWORD", "admin123456")
		hashed, err := helpers.HashPassword(password)
		if err != nil {
			logger.Error("Failed to hash admin password", "error", err)
			os.Exit(1)
		}
		admin := &models.User{
			Name:     "Admin User",
			Email:    adminEmail,
			Password: hashed,
			Phone:    "9876543210",
			Role:     models.RoleAdmin,
			IsActive: true,
		}
		if _, err := repo.CreateUser(ctx, admin); err != nil {
			logger.Error("Failed to create admin user", "error", err)
			os.Exit(1)
		}
		logger.Info("Admin user created", "email", adminEmail)
	} else {
		logger.Info("Admin user already exists", "email", adminEmail)
	}

	for i := range defaultServices {
		svc := defaultServices[i]
		if _, err := repo.CreateService(ctx, &svc); err != nil {
			// Duplicate names come back as a validation error; that just
			// means the service was seeded on a previous run.
			logger.Info("Service skipped", "name", svc.Name, "reason", err)
			continue
		}
		logger.Info("Service created", "name", svc.Name)
	}

	logger.Info("Database seeding completed")
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
