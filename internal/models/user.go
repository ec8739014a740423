package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name" validate:"required,max=50"`
	Email      string             `bson:"email" json:"email" validate:"required,email"`
	Password   string             `bson:"password,omitempty" json:"-"`
	GoogleID   string             `bson:"google_id,omitempty" json:"googleId,omitempty"`
	FacebookID string             `bson:"facebook_id,omitempty" json:"facebookId,omitempty"`
	Phone      string             `bson:"phone" json:"phone"`
	Role       string             `bson:"role" json:"role"`
	IsActive   bool               `bson:"is_active" json:"isActive"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}

// HasCredentials reports whether the account can ever authenticate: either a
// password is set or at least one OAuth provider is linked.
func (u *User) HasCredentials() bool {
	return u.Password != "" || u.GoogleID != "" || u.FacebookID != ""
}

// PublicUser is the read projection returned by the API; the password hash
// never leaves the repository layer.
type PublicUser struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Role      string             `bson:"role" json:"role"`
	IsActive  bool               `bson:"is_active" json:"isActive"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	SetProviderID(ctx context.Context, id primitive.ObjectID, provider, providerID string) error
	SetUserActive(ctx context.Context, id primitive.ObjectID, active bool) (*PublicUser, error)
	ListUsers(ctx context.Context) ([]*PublicUser, error)
	CountUsers(ctx context.Context) (int64, error)
}
