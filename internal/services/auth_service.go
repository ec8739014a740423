package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lezit/transports-server/internal/helpers"
	"github.com/lezit/transports-server/internal/models"
)

type AuthService struct {
	userRepo  models.UserRepo
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(userRepo models.UserRepo, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"required"`
}

func (as *AuthService) Register(ctx context.Context, input RegisterInput) (*models.PublicUser, string, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, "", models.NewValidationError(fmt.Sprintf("invalid registration data: %v", err))
	}
	if !helpers.IsValidPhone(input.Phone) {
		return nil, "", models.NewValidationError("please enter a valid 10-digit phone number")
	}

	if _, err := as.userRepo.GetUserByEmail(ctx, input.Email); err == nil {
		return nil, "", models.NewValidationError("user with this email already exists")
	} else if !isNotFound(err) {
		return nil, "", models.NewDependencyError("failed to check existing user", err)
	}

	hashed, err := helpers.HashPassword(input.Password)
	if err != nil {
		return nil, "", models.NewDependencyError("failed to hash password", err)
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Phone:    input.Phone,
		Role:     models.RoleUser,
		IsActive: true,
	}

	created, err := as.userRepo.CreateUser(ctx, user)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return nil, "", err
		}
		return nil, "", models.NewDependencyError("failed to create user", err)
	}

	token, err := as.issueToken(created)
	if err != nil {
		return nil, "", err
	}

	return created.Public(), token, nil
}

func (as *AuthService) Login(ctx context.Context, email, password string) (*models.PublicUser, string, error) {
	if email == "" || password == "" {
		return nil, "", models.NewValidationError("email and password are required")
	}

	user, err := as.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, "", models.NewAuthenticationError("invalid credentials")
		}
		return nil, "", models.NewDependencyError("failed to look up user", err)
	}

	// OAuth-only accounts have no password hash and cannot log in here.
	if user.Password == "" {
		return nil, "", models.NewAuthenticationError("invalid credentials")
	}
	if !helpers.ComparePassword(user.Password, password) {
		return nil, "", models.NewAuthenticationError("invalid credentials")
	}

	token, err := as.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	return user.Public(), token, nil
}

func (as *AuthService) issueToken(user *models.User) (string, error) {
	token, err := helpers.GenerateToken(user.ID.Hex(), user.Role, as.jwtSecret, as.tokenTTL)
	if err != nil {
		return "", models.NewDependencyError("failed to generate token", err)
	}
	return token, nil
}

func isNotFound(err error) bool {
	var appErr *models.AppError
	return errors.As(err, &appErr) && appErr.Kind == models.KindNotFound
}
