package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/lezit/transports-server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedUser(t *testing.T, store *fakeStore, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: "hashed",
		Phone:    "9876543210",
		Role:     models.RoleUser,
		IsActive: true,
	}
	created, err := store.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return created
}

func validBooking() *models.Booking {
	return &models.Booking{
		ServiceType:     models.CategoryPerson,
		ServiceCategory: "Interstate Transportation",
		Email:           "rider@example.com",
		PickupLocation:  "Chennai",
		DropLocation:    "Bengaluru",
		PickupDate:      time.Now().Add(48 * time.Hour),
		PickupTime:      "09:30",
		NumberOfPersons: 3,
		VehicleType:     "sedan",
		TotalAmount:     2500,
	}
}

func TestCreateBookingSetsOwnerAndDefaults(t *testing.T) {
	store := newFakeStore()
	mail := &fakeMailer{}
	bs := NewBookingService(store, store, mail, discardLogger())
	owner := seedUser(t, store, "owner@example.com")

	input := validBooking()
	// Owner and status supplied by the client must be ignored.
	input.UserID = primitive.NewObjectID()
	input.Status = models.StatusConfirmed

	created, err := bs.CreateBooking(context.Background(), owner.ID, input)
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if created.UserID != owner.ID {
		t.Error("owner was not taken from the authenticated identity")
	}
	if created.Status != models.StatusPending {
		t.Errorf("expected status %q, got %q", models.StatusPending, created.Status)
	}
	if created.PaymentStatus != models.PaymentPending {
		t.Errorf("expected payment status %q, got %q", models.PaymentPending, created.PaymentStatus)
	}
	if created.ID.IsZero() {
		t.Error("expected a generated id")
	}
	if len(mail.confirmations) != 1 || mail.confirmations[0] != "rider@example.com" {
		t.Errorf("expected one confirmation to the booking email, got %v", mail.confirmations)
	}
}

func TestCreateBookingMailFailureIsSwallowed(t *testing.T) {
	store := newFakeStore()
	mail := &fakeMailer{failAll: true}
	bs := NewBookingService(store, store, mail, discardLogger())
	owner := seedUser(t, store, "owner@example.com")

	created, err := bs.CreateBooking(context.Background(), owner.ID, validBooking())
	if err != nil {
		t.Fatalf("booking must succeed even when mail fails: %v", err)
	}
	if created.Status != models.StatusPending {
		t.Errorf("unexpected status %q", created.Status)
	}
}

func TestCreateBookingCategoryFieldsAreExclusive(t *testing.T) {
	store := newFakeStore()
	bs := NewBookingService(store, store, &fakeMailer{}, discardLogger())
	owner := seedUser(t, store, "owner@example.com")

	person := validBooking()
	person.GoodsDescription = "furniture"
	if _, err := bs.CreateBooking(context.Background(), owner.ID, person); !isValidation(err) {
		t.Errorf("person booking with goods description: expected validation error, got %v", err)
	}

	goods := validBooking()
	goods.ServiceType = models.CategoryGoods
	goods.NumberOfPersons = 0
	goods.GoodsDescription = "furniture"
	if _, err := bs.CreateBooking(context.Background(), owner.ID, goods); err != nil {
		t.Errorf("valid goods booking rejected: %v", err)
	}

	goodsWithPersons := validBooking()
	goodsWithPersons.ServiceType = models.CategoryGoods
	goodsWithPersons.GoodsDescription = "furniture"
	// NumberOfPersons still set from validBooking
	if _, err := bs.CreateBooking(context.Background(), owner.ID, goodsWithPersons); !isValidation(err) {
		t.Errorf("goods booking with person count: expected validation error, got %v", err)
	}
}

func TestGetBookingOwnershipFoldedIntoExistence(t *testing.T) {
	store := newFakeStore()
	bs := NewBookingService(store, store, &fakeMailer{}, discardLogger())
	owner := seedUser(t, store, "a@example.com")
	other := seedUser(t, store, "b@example.com")

	created, err := bs.CreateBooking(context.Background(), owner.ID, validBooking())
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	// Owner sees the record and every submitted field survives the round trip.
	got, err := bs.GetBooking(context.Background(), created.ID.Hex(), owner.ID)
	if err != nil {
		t.Fatalf("owner fetch failed: %v", err)
	}
	if got.PickupLocation != "Chennai" || got.DropLocation != "Bengaluru" || got.TotalAmount != 2500 {
		t.Error("round-tripped booking does not match submitted fields")
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("expected timestamps on fetched booking")
	}

	// Another user gets a 404, never a 403.
	_, err = bs.GetBooking(context.Background(), created.ID.Hex(), other.ID)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Kind != models.KindNotFound {
		t.Fatalf("expected not-found for foreign booking, got %v", err)
	}
}

func TestCancelBookingGuards(t *testing.T) {
	store := newFakeStore()
	mail := &fakeMailer{}
	bs := NewBookingService(store, store, mail, discardLogger())
	owner := seedUser(t, store, "owner@example.com")

	created, err := bs.CreateBooking(context.Background(), owner.ID, validBooking())
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	cancelled, err := bs.CancelBooking(context.Background(), created.ID.Hex(), owner.ID)
	if err != nil {
		t.Fatalf("first cancel failed: %v", err)
	}
	if cancelled.Status != models.StatusCancelled {
		t.Errorf("expected status cancelled, got %q", cancelled.Status)
	}
	if len(mail.cancellations) != 1 {
		t.Errorf("expected one cancellation email, got %d", len(mail.cancellations))
	}

	// Second cancel conflicts and the status stays cancelled.
	_, err = bs.CancelBooking(context.Background(), created.ID.Hex(), owner.ID)
	if !isConflict(err) {
		t.Fatalf("expected conflict on double cancel, got %v", err)
	}
	after, _ := store.GetBookingByID(context.Background(), created.ID)
	if after.Status != models.StatusCancelled {
		t.Errorf("status changed on refused cancel: %q", after.Status)
	}
}

func TestCancelCompletedBookingConflicts(t *testing.T) {
	store := newFakeStore()
	bs := NewBookingService(store, store, &fakeMailer{}, discardLogger())
	owner := seedUser(t, store, "owner@example.com")

	created, err := bs.CreateBooking(context.Background(), owner.ID, validBooking())
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if _, err := store.SetBookingStatus(context.Background(), created.ID, models.StatusCompleted); err != nil {
		t.Fatalf("failed to mark completed: %v", err)
	}

	_, err = bs.CancelBooking(context.Background(), created.ID.Hex(), owner.ID)
	if !isConflict(err) {
		t.Fatalf("expected conflict cancelling completed booking, got %v", err)
	}
	after, _ := store.GetBookingByID(context.Background(), created.ID)
	if after.Status != models.StatusCompleted {
		t.Errorf("status changed on refused cancel: %q", after.Status)
	}
}

func TestAdminUpdateStatus(t *testing.T) {
	store := newFakeStore()
	bs := NewBookingService(store, store, &fakeMailer{}, discardLogger())
	owner := seedUser(t, store, "owner@example.com")

	created, err := bs.CreateBooking(context.Background(), owner.ID, validBooking())
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	// Any member of the status set is accepted with no transition guard,
	// including moving a cancelled booking back.
	for _, status := range []string{
		models.StatusConfirmed, models.StatusCancelled, models.StatusInProgress, models.StatusCompleted, models.StatusPending,
	} {
		updated, err := bs.UpdateStatus(context.Background(), created.ID.Hex(), status)
		if err != nil {
			t.Fatalf("admin update to %q failed: %v", status, err)
		}
		if updated.Status != status {
			t.Errorf("expected status %q, got %q", status, updated.Status)
		}
		if updated.User == nil || updated.User.Email != "owner@example.com" {
			t.Error("expected owner joined into admin booking view")
		}
	}

	if _, err := bs.UpdateStatus(context.Background(), created.ID.Hex(), "teleported"); !isValidation(err) {
		t.Errorf("expected validation error for unknown status, got %v", err)
	}
}

func TestListMyBookingsPagination(t *testing.T) {
	store := newFakeStore()
	bs := NewBookingService(store, store, &fakeMailer{}, discardLogger())
	owner := seedUser(t, store, "owner@example.com")
	other := seedUser(t, store, "other@example.com")

	for i := 0; i < 12; i++ {
		if _, err := bs.CreateBooking(context.Background(), owner.ID, validBooking()); err != nil {
			t.Fatalf("CreateBooking failed: %v", err)
		}
	}
	if _, err := bs.CreateBooking(context.Background(), other.ID, validBooking()); err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	bookings, page, err := bs.ListMyBookings(context.Background(), owner.ID, 0, 0)
	if err != nil {
		t.Fatalf("ListMyBookings failed: %v", err)
	}
	if len(bookings) != DefaultPageSize {
		t.Errorf("expected default page of %d, got %d", DefaultPageSize, len(bookings))
	}
	if page.CurrentPage != 1 || page.TotalPages != 2 || page.TotalBookings != 12 {
		t.Errorf("unexpected pagination: %+v", page)
	}
	if !page.HasNextPage || page.HasPrevPage {
		t.Errorf("unexpected page flags: %+v", page)
	}

	second, page2, err := bs.ListMyBookings(context.Background(), owner.ID, 2, 10)
	if err != nil {
		t.Fatalf("ListMyBookings page 2 failed: %v", err)
	}
	if len(second) != 2 {
		t.Errorf("expected 2 bookings on page 2, got %d", len(second))
	}
	if page2.HasNextPage || !page2.HasPrevPage {
		t.Errorf("unexpected page flags on last page: %+v", page2)
	}
}

func isValidation(err error) bool {
	var appErr *models.AppError
	return errors.As(err, &appErr) && appErr.Kind == models.KindValidation
}

func isConflict(err error) bool {
	var appErr *models.AppError
	return errors.As(err, &appErr) && appErr.Kind == models.KindConflict
}
