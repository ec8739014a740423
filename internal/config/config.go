package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	MongoDBURI  string
	MongoDBName string
	Environment string
	LogLevel    string

	JWTSecret    string
	JWTExpiresIn time.Duration

	GoogleClientID     string
	GoogleClientSecret string
	FacebookAppID      string
	FacebookAppSecret  string
	OAuthCallbackURL   string
	FrontendURL        string

	SMTPHost        string
	SMTPPort        int
	SMTPUserBooking string
	SMTPPassBooking string
	SMTPUserSupport string
	SMTPPassSupport string
}

func LoadConfig() (*Config, error) {
	expiresIn, err := time.ParseDuration(getEnvWithDefault("JWT_EXPIRES_IN", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRES_IN: %v", err)
	}

	smtpPort, err := strconv.Atoi(getEnvWithDefault("SMTP_PORT", "465"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %v", err)
	}

	cfg := &Config{
		Port:        getEnvWithDefault("PORT", "8080"),
		MongoDBURI:  os.Getenv("MONGODB_URI"),
		MongoDBName: getEnvWithDefault("MONGODB_DB", "lezit"),
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTExpiresIn: expiresIn,

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		FacebookAppID:      os.Getenv("FACEBOOK_APP_ID"),
		FacebookAppSecret:  os.Getenv("FACEBOOK_APP_SECRET"),
		OAuthCallbackURL:   getEnvWithDefault("OAUTH_CALLBACK_URL", "http://localhost:8080"),
		FrontendURL:        getEnvWithDefault("FRONTEND_URL", "http://localhost:3000"),

		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        smtpPort,
		SMTPUserBooking: os.Getenv("SMTP_USER_BOOKING"),
		SMTPPassBooking: os.Getenv("SMTP_PASS_BOOKING"),
		SMTPUserSupport: os.Getenv("SMTP_USER_SUPPORT"),
		SMTPPassSupport: os.Getenv("SMTP_PASS_SUPPORT"),
	}

	// Validate required fields
	if cfg.MongoDBURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// GoogleConfigured reports whether the Google OAuth flow can be offered.
func (c *Config) GoogleConfigured() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

// FacebookConfigured reports whether the Facebook OAuth flow can be offered.
func (c *Config) FacebookConfigured() bool {
	return c.FacebookAppID != "" && c.FacebookAppSecret != ""
}
