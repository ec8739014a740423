package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lezit/transports-server/internal/config"
	"github.com/lezit/transports-server/internal/helpers"
	"github.com/lezit/transports-server/internal/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"
)

const (
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
)

// OAuthProfile is the partial identity a provider asserts on callback.
// Providers may omit fields; fallback rules live in HandleCallbackProfile.
type OAuthProfile struct {
	ID    string
	Name  string
	Email string
}

type OAuthService struct {
	userRepo  models.UserRepo
	jwtSecret string
	tokenTTL  time.Duration

	google   *oauth2.Config
	facebook *oauth2.Config

	httpClient *http.Client
}

func NewOAuthService(userRepo models.UserRepo, cfg *config.Config) *OAuthService {
	os := &OAuthService{
		userRepo:   userRepo,
		jwtSecret:  cfg.JWTSecret,
		tokenTTL:   cfg.JWTExpiresIn,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}

	if cfg.GoogleConfigured() {
		os.google = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.OAuthCallbackURL + "/api/auth/google/callback",
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		}
	}
	if cfg.FacebookConfigured() {
		os.facebook = &oauth2.Config{
			ClientID:     cfg.FacebookAppID,
			ClientSecret: cfg.FacebookAppSecret,
			RedirectURL:  cfg.OAuthCallbackURL + "/api/auth/facebook/callback",
			Scopes:       []string{"email", "public_profile"},
			Endpoint:     facebook.Endpoint,
		}
	}

	return os
}

// ProviderConfig returns the oauth2 config for a provider, or a validation
// error explaining the missing credentials when it is not configured.
func (s *OAuthService) ProviderConfig(provider string) (*oauth2.Config, error) {
	switch provider {
	case ProviderGoogle:
		if s.google == nil {
			return nil, models.NewValidationError("Google OAuth is not configured. Please set GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET environment variables.")
		}
		return s.google, nil
	case ProviderFacebook:
		if s.facebook == nil {
			return nil, models.NewValidationError("Facebook OAuth is not configured. Please set FACEBOOK_APP_ID and FACEBOOK_APP_SECRET environment variables.")
		}
		return s.facebook, nil
	}
	return nil, models.NewValidationError("unknown OAuth provider")
}

// FetchProfile exchanges the authorization code and retrieves the identity
// the provider asserts.
func (s *OAuthService) FetchProfile(ctx context.Context, provider, code string) (*OAuthProfile, error) {
	conf, err := s.ProviderConfig(provider)
	if err != nil {
		return nil, err
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, models.NewAuthenticationError("failed to exchange authorization code")
	}

	var userinfoURL string
	switch provider {
	case ProviderGoogle:
		userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	case ProviderFacebook:
		userinfoURL = "https://graph.facebook.com/me?fields=id,name,email"
	}

	resp, err := conf.Client(ctx, token).Get(userinfoURL)
	if err != nil {
		return nil, models.NewDependencyError("failed to fetch provider profile", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, models.NewDependencyError("provider profile request failed", fmt.Errorf("status %d", resp.StatusCode))
	}

	var raw struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, models.NewDependencyError("failed to decode provider profile", err)
	}

	return &OAuthProfile{ID: raw.ID, Name: raw.Name, Email: raw.Email}, nil
}

// HandleCallbackProfile links or creates the local account for a provider
// profile and issues a bearer token. Accounts created here have no password
// and an empty phone; the user completes them later.
func (s *OAuthService) HandleCallbackProfile(ctx context.Context, provider string, profile *OAuthProfile) (string, error) {
	if profile.Email == "" {
		return "", models.NewValidationError("provider did not supply an email address")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, profile.Email)
	switch {
	case err == nil:
		if providerIDMissing(user, provider) {
			if err := s.userRepo.SetProviderID(ctx, user.ID, provider, profile.ID); err != nil {
				return "", models.NewDependencyError("failed to link provider account", err)
			}
		}
	case isNotFound(err):
		newUser := &models.User{
			Name:     profile.Name,
			Email:    profile.Email,
			Phone:    "",
			Role:     models.RoleUser,
			IsActive: true,
		}
		switch provider {
		case ProviderGoogle:
			newUser.GoogleID = profile.ID
		case ProviderFacebook:
			newUser.FacebookID = profile.ID
		}
		user, err = s.userRepo.CreateUser(ctx, newUser)
		if err != nil {
			return "", models.NewDependencyError("failed to create user from provider profile", err)
		}
	default:
		return "", models.NewDependencyError("failed to look up user", err)
	}

	token, err := helpers.GenerateToken(user.ID.Hex(), user.Role, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", models.NewDependencyError("failed to generate token", err)
	}
	return token, nil
}

func providerIDMissing(user *models.User, provider string) bool {
	switch provider {
	case ProviderGoogle:
		return user.GoogleID == ""
	case ProviderFacebook:
		return user.FacebookID == ""
	}
	return false
}
