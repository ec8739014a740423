package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// ValidStatus reports membership in the booking status set. The set is
// linear with no transition graph; only cancellation is guarded.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID              primitive.ObjectID `bson:"user_id" json:"userId"`
	ServiceType         string             `bson:"service_type" json:"serviceType" validate:"required,oneof=person goods"`
	ServiceCategory     string             `bson:"service_category" json:"serviceCategory" validate:"required"`
	Email               string             `bson:"email" json:"email" validate:"required,email"`
	PickupLocation      string             `bson:"pickup_location" json:"pickupLocation" validate:"required"`
	DropLocation        string             `bson:"drop_location" json:"dropLocation" validate:"required"`
	PickupDate          time.Time          `bson:"pickup_date" json:"pickupDate" validate:"required"`
	PickupTime          string             `bson:"pickup_time" json:"pickupTime" validate:"required"`
	DropDate            *time.Time         `bson:"drop_date,omitempty" json:"dropDate,omitempty"`
	DropTime            string             `bson:"drop_time,omitempty" json:"dropTime,omitempty"`
	NumberOfPersons     int                `bson:"number_of_persons,omitempty" json:"numberOfPersons,omitempty" validate:"omitempty,min=1"`
	GoodsDescription    string             `bson:"goods_description,omitempty" json:"goodsDescription,omitempty" validate:"max=500"`
	VehicleType         string             `bson:"vehicle_type,omitempty" json:"vehicleType,omitempty"`
	DriverRequired      bool               `bson:"driver_required" json:"driverRequired"`
	Status              string             `bson:"status" json:"status"`
	TotalAmount         float64            `bson:"total_amount" json:"totalAmount" validate:"gte=0"`
	PaymentStatus       string             `bson:"payment_status" json:"paymentStatus"`
	PaymentMethod       string             `bson:"payment_method,omitempty" json:"paymentMethod,omitempty"`
	SpecialInstructions string             `bson:"special_instructions,omitempty" json:"specialInstructions,omitempty"`
	CreatedAt           time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updated_at" json:"updatedAt"`
}

// CanCancel guards the owner-facing cancellation path. Admin status updates
// bypass this deliberately.
func (b *Booking) CanCancel() error {
	switch b.Status {
	case StatusCancelled:
		return NewConflictError("booking is already cancelled")
	case StatusCompleted:
		return NewConflictError("cannot cancel completed booking")
	}
	return nil
}

// BookingOwner is the owner projection joined into admin booking views.
type BookingOwner struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

// AdminBooking is a booking with its owner's name and email joined in.
type AdminBooking struct {
	Booking `bson:",inline"`
	User    *BookingOwner `bson:"user,omitempty" json:"user,omitempty"`
}

type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	GetBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error)
	GetBookingForUser(ctx context.Context, id, userID primitive.ObjectID) (*Booking, error)
	ListBookingsByUser(ctx context.Context, userID primitive.ObjectID, skip, limit int) ([]*Booking, int64, error)
	SetBookingStatus(ctx context.Context, id primitive.ObjectID, status string) (*Booking, error)
	ListAllBookings(ctx context.Context) ([]*AdminBooking, error)
	UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, status string) (*AdminBooking, error)
	CountBookings(ctx context.Context) (int64, error)
	CountBookingsByStatus(ctx context.Context, status string) (int64, error)
	SumRevenue(ctx context.Context) (float64, error)
}
