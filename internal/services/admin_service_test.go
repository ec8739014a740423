package services

import (
	"context"
	"testing"

	"github.com/lezit/transports-server/internal/models"
)

func TestDashboardStats(t *testing.T) {
	store := newFakeStore()
	as := NewAdminService(store, store, store)
	bs := NewBookingService(store, store, &fakeMailer{}, discardLogger())
	owner := seedUser(t, store, "owner@example.com")

	// Three bookings at 100/200/300 with statuses pending/confirmed/completed:
	// revenue counts only the latter two.
	amounts := []float64{100, 200, 300}
	statuses := []string{models.StatusPending, models.StatusConfirmed, models.StatusCompleted}
	for i := range amounts {
		b := validBooking()
		b.TotalAmount = amounts[i]
		created, err := bs.CreateBooking(context.Background(), owner.ID, b)
		if err != nil {
			t.Fatalf("CreateBooking failed: %v", err)
		}
		if statuses[i] != models.StatusPending {
			if _, err := store.SetBookingStatus(context.Background(), created.ID, statuses[i]); err != nil {
				t.Fatalf("SetBookingStatus failed: %v", err)
			}
		}
	}

	active := true
	inactive := false
	for _, svc := range []*models.Service{
		{Name: "Logistics", Category: models.CategoryGoods, Description: "B2B", BasePrice: 2500, IsActive: active},
		{Name: "Drivers", Category: models.CategoryPerson, Description: "Driver booking", BasePrice: 1000, IsActive: active},
		{Name: "Retired", Category: models.CategoryPerson, Description: "Old", BasePrice: 500, IsActive: inactive},
	} {
		if _, err := store.CreateService(context.Background(), svc); err != nil {
			t.Fatalf("CreateService failed: %v", err)
		}
	}

	stats, err := as.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalUsers != 1 {
		t.Errorf("TotalUsers = %d, want 1", stats.TotalUsers)
	}
	if stats.TotalBookings != 3 {
		t.Errorf("TotalBookings = %d, want 3", stats.TotalBookings)
	}
	if stats.TotalRevenue != 500 {
		t.Errorf("TotalRevenue = %v, want 500", stats.TotalRevenue)
	}
	if stats.PendingBookings != 1 {
		t.Errorf("PendingBookings = %d, want 1", stats.PendingBookings)
	}
	if stats.ActiveServices != 2 {
		t.Errorf("ActiveServices = %d, want 2", stats.ActiveServices)
	}
}

func TestSetUserActiveRefusesSelfDeactivation(t *testing.T) {
	store := newFakeStore()
	as := NewAdminService(store, store, store)
	admin := seedUser(t, store, "admin@example.com")

	_, err := as.SetUserActive(context.Background(), admin.ID.Hex(), admin.ID.Hex(), false)
	if !isValidation(err) {
		t.Fatalf("expected validation error for self-deactivation, got %v", err)
	}

	// The account stays active.
	after, err := store.GetUserByID(context.Background(), admin.ID)
	if err != nil {
		t.Fatalf("failed to fetch admin: %v", err)
	}
	if !after.IsActive {
		t.Error("admin account was deactivated despite refusal")
	}

	// Re-activating yourself is allowed, as is toggling anyone else.
	if _, err := as.SetUserActive(context.Background(), admin.ID.Hex(), admin.ID.Hex(), true); err != nil {
		t.Errorf("self-activation should be allowed: %v", err)
	}

	other := seedUser(t, store, "user@example.com")
	updated, err := as.SetUserActive(context.Background(), other.ID.Hex(), admin.ID.Hex(), false)
	if err != nil {
		t.Fatalf("deactivating another user failed: %v", err)
	}
	if updated.IsActive {
		t.Error("expected user to be deactivated")
	}
}

func TestListUsersExcludesPasswords(t *testing.T) {
	store := newFakeStore()
	as := NewAdminService(store, store, store)
	seedUser(t, store, "a@example.com")
	seedUser(t, store, "b@example.com")

	users, err := as.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	// Newest first.
	if users[0].Email != "b@example.com" {
		t.Errorf("expected newest user first, got %q", users[0].Email)
	}
}
