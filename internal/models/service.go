package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CategoryPerson = "person"
	CategoryGoods  = "goods"
)

type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Category    string             `bson:"category" json:"category" validate:"required,oneof=person goods"`
	Description string             `bson:"description" json:"description" validate:"required,max=500"`
	BasePrice   float64            `bson:"base_price" json:"basePrice" validate:"gte=0"`
	PricePerKm  float64            `bson:"price_per_km,omitempty" json:"pricePerKm,omitempty" validate:"gte=0"`
	IsActive    bool               `bson:"is_active" json:"isActive"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ServiceFilter narrows the public catalog listing. Nil fields are ignored.
type ServiceFilter struct {
	Category *string
	IsActive *bool
}

type ServiceRepo interface {
	CreateService(ctx context.Context, service *Service) (*Service, error)
	GetServiceByID(ctx context.Context, id primitive.ObjectID) (*Service, error)
	ListServices(ctx context.Context, filter ServiceFilter) ([]*Service, error)
	UpdateService(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*Service, error)
	DeleteService(ctx context.Context, id primitive.ObjectID) error
	SetServiceActive(ctx context.Context, id primitive.ObjectID, active bool) (*Service, error)
	CountActiveServices(ctx context.Context) (int64, error)
}
