package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lezit/transports-server/internal/mailer"
	"github.com/lezit/transports-server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingMailer is the booking channel of the notification dispatcher.
// Delivery failure never fails the triggering operation.
type BookingMailer interface {
	SendBookingConfirmation(data mailer.BookingEmailData, to string) error
	SendBookingCancellation(data mailer.BookingEmailData, to string) error
}

type BookingService struct {
	bookingRepo models.BookingRepo
	userRepo    models.UserRepo
	mail        BookingMailer
	logger      *slog.Logger
}

func NewBookingService(bookingRepo models.BookingRepo, userRepo models.UserRepo, mail BookingMailer, logger *slog.Logger) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		mail:        mail,
		logger:      logger,
	}
}

const DefaultPageSize = 10

func (bs *BookingService) CreateBooking(ctx context.Context, userID primitive.ObjectID, booking *models.Booking) (*models.Booking, error) {
	if err := models.Validate.Struct(booking); err != nil {
		return nil, models.NewValidationError(fmt.Sprintf("invalid booking data: %v", err))
	}

	// Category-specific fields are mutually exclusive by service type.
	switch booking.ServiceType {
	case models.CategoryPerson:
		if booking.GoodsDescription != "" {
			return nil, models.NewValidationError("goods description does not apply to person transport")
		}
	case models.CategoryGoods:
		if booking.NumberOfPersons != 0 {
			return nil, models.NewValidationError("number of persons does not apply to goods transport")
		}
	}

	// Owner and status are never taken from the request body.
	booking.ID = primitive.NilObjectID
	booking.UserID = userID
	booking.Status = models.StatusPending
	if booking.PaymentStatus == "" {
		booking.PaymentStatus = models.PaymentPending
	}

	created, err := bs.bookingRepo.CreateBooking(ctx, booking)
	if err != nil {
		return nil, models.NewDependencyError("failed to create booking", err)
	}

	bs.sendConfirmation(ctx, created)

	return created, nil
}

// sendConfirmation resolves the owner's profile and dispatches the booking
// confirmation. Best-effort: any failure is logged and dropped.
func (bs *BookingService) sendConfirmation(ctx context.Context, booking *models.Booking) {
	user, err := bs.userRepo.GetUserByID(ctx, booking.UserID)
	if err != nil {
		bs.logger.Error("failed to resolve booking owner for confirmation email",
			"booking_id", booking.ID.Hex(), "error", err)
		return
	}

	to := booking.Email
	if to == "" {
		to = user.Email
	}
	if to == "" {
		return
	}

	data := mailer.BookingEmailData{
		BookingID:       booking.ID.Hex(),
		UserName:        user.Name,
		ServiceType:     booking.ServiceType,
		ServiceCategory: booking.ServiceCategory,
		PickupLocation:  booking.PickupLocation,
		DropLocation:    booking.DropLocation,
		PickupDate:      booking.PickupDate,
		PickupTime:      booking.PickupTime,
		VehicleType:     booking.VehicleType,
		TotalAmount:     booking.TotalAmount,
	}
	if err := bs.mail.SendBookingConfirmation(data, to); err != nil {
		bs.logger.Error("failed to send booking confirmation email",
			"booking_id", booking.ID.Hex(), "error", err)
	}
}

func (bs *BookingService) ListMyBookings(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]*models.Booking, models.Pagination, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}

	bookings, total, err := bs.bookingRepo.ListBookingsByUser(ctx, userID, (page-1)*limit, limit)
	if err != nil {
		return nil, models.Pagination{}, models.NewDependencyError("failed to fetch bookings", err)
	}

	return bookings, models.NewPagination(page, limit, total), nil
}

func (bs *BookingService) GetBooking(ctx context.Context, id string, userID primitive.ObjectID) (*models.Booking, error) {
	bookingID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.NewValidationError("invalid booking ID format")
	}

	booking, err := bs.bookingRepo.GetBookingForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, wrapRepoErr("failed to fetch booking", err)
	}
	return booking, nil
}

func (bs *BookingService) CancelBooking(ctx context.Context, id string, userID primitive.ObjectID) (*models.Booking, error) {
	bookingID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.NewValidationError("invalid booking ID format")
	}

	booking, err := bs.bookingRepo.GetBookingForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, wrapRepoErr("failed to fetch booking", err)
	}

	if err := booking.CanCancel(); err != nil {
		return nil, err
	}

	cancelled, err := bs.bookingRepo.SetBookingStatus(ctx, bookingID, models.StatusCancelled)
	if err != nil {
		return nil, wrapRepoErr("failed to cancel booking", err)
	}

	bs.sendCancellation(ctx, cancelled)

	return cancelled, nil
}

func (bs *BookingService) sendCancellation(ctx context.Context, booking *models.Booking) {
	user, err := bs.userRepo.GetUserByID(ctx, booking.UserID)
	if err != nil {
		bs.logger.Error("failed to resolve booking owner for cancellation email",
			"booking_id", booking.ID.Hex(), "error", err)
		return
	}
	if user.Email == "" {
		return
	}

	data := mailer.BookingEmailData{
		BookingID:       booking.ID.Hex(),
		UserName:        user.Name,
		ServiceType:     booking.ServiceType,
		ServiceCategory: booking.ServiceCategory,
	}
	if err := bs.mail.SendBookingCancellation(data, user.Email); err != nil {
		bs.logger.Error("failed to send booking cancellation email",
			"booking_id", booking.ID.Hex(), "error", err)
	}
}

// UpdateStatus is the admin path: any member of the status set is accepted,
// with no transition guard, and the owner's name/email is joined in.
func (bs *BookingService) UpdateStatus(ctx context.Context, id, status string) (*models.AdminBooking, error) {
	if !models.ValidStatus(status) {
		return nil, models.NewValidationError("invalid status value")
	}

	bookingID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.NewValidationError("invalid booking ID format")
	}

	updated, err := bs.bookingRepo.UpdateBookingStatus(ctx, bookingID, status)
	if err != nil {
		return nil, wrapRepoErr("failed to update booking status", err)
	}
	return updated, nil
}

func wrapRepoErr(msg string, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return models.NewDependencyError(msg, err)
}
