package container

import (
	"log/slog"

	"github.com/lezit/transports-server/internal/config"
	"github.com/lezit/transports-server/internal/mailer"
	"github.com/lezit/transports-server/internal/models"
	"github.com/lezit/transports-server/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	MongoDBClient *mongo.Client
	Mailer        *mailer.Mailer

	AuthService    *services.AuthService
	OAuthService   *services.OAuthService
	BookingService *services.BookingService
	CatalogService *services.CatalogService
	AdminService   *services.AdminService
	ContactService *services.ContactService
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger, mongoDBClient *mongo.Client, mail *mailer.Mailer) *Container {
	repo := models.MongodbNewRepo(mongoDBClient, cfg.MongoDBName)

	authService := services.NewAuthService(repo, cfg.JWTSecret, cfg.JWTExpiresIn)
	oauthService := services.NewOAuthService(repo, cfg)
	bookingService := services.NewBookingService(repo, repo, mail, logger)
	catalogService := services.NewCatalogService(repo)
	adminService := services.NewAdminService(repo, repo, repo)
	contactService := services.NewContactService(mail, logger)

	return &Container{
		Logger:         logger,
		Config:         cfg,
		MongoDBClient:  mongoDBClient,
		Mailer:         mail,
		AuthService:    authService,
		OAuthService:   oauthService,
		BookingService: bookingService,
		CatalogService: catalogService,
		AdminService:   adminService,
		ContactService: contactService,
	}
}
