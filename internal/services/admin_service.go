package services

import (
	"context"

	"github.com/lezit/transports-server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdminService struct {
	userRepo    models.UserRepo
	bookingRepo models.BookingRepo
	serviceRepo models.ServiceRepo
}

func NewAdminService(userRepo models.UserRepo, bookingRepo models.BookingRepo, serviceRepo models.ServiceRepo) *AdminService {
	return &AdminService{
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
	}
}

type DashboardStats struct {
	TotalUsers      int64   `json:"totalUsers"`
	TotalBookings   int64   `json:"totalBookings"`
	TotalRevenue    float64 `json:"totalRevenue"`
	PendingBookings int64   `json:"pendingBookings"`
	ActiveServices  int64   `json:"activeServices"`
}

// GetStats runs the dashboard aggregates as independent queries, not one
// joined report.
func (as *AdminService) GetStats(ctx context.Context) (*DashboardStats, error) {
	totalUsers, err := as.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, models.NewDependencyError("failed to count users", err)
	}

	totalBookings, err := as.bookingRepo.CountBookings(ctx)
	if err != nil {
		return nil, models.NewDependencyError("failed to count bookings", err)
	}

	totalRevenue, err := as.bookingRepo.SumRevenue(ctx)
	if err != nil {
		return nil, models.NewDependencyError("failed to sum revenue", err)
	}

	pendingBookings, err := as.bookingRepo.CountBookingsByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, models.NewDependencyError("failed to count pending bookings", err)
	}

	activeServices, err := as.serviceRepo.CountActiveServices(ctx)
	if err != nil {
		return nil, models.NewDependencyError("failed to count active services", err)
	}

	return &DashboardStats{
		TotalUsers:      totalUsers,
		TotalBookings:   totalBookings,
		TotalRevenue:    totalRevenue,
		PendingBookings: pendingBookings,
		ActiveServices:  activeServices,
	}, nil
}

func (as *AdminService) ListUsers(ctx context.Context) ([]*models.PublicUser, error) {
	users, err := as.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, models.NewDependencyError("failed to fetch users", err)
	}
	return users, nil
}

func (as *AdminService) ListBookings(ctx context.Context) ([]*models.AdminBooking, error) {
	bookings, err := as.bookingRepo.ListAllBookings(ctx)
	if err != nil {
		return nil, models.NewDependencyError("failed to fetch bookings", err)
	}
	return bookings, nil
}

// SetUserActive toggles an account's active flag. An administrator cannot
// deactivate their own account.
func (as *AdminService) SetUserActive(ctx context.Context, targetID, callerID string, active bool) (*models.PublicUser, error) {
	if targetID == callerID && !active {
		return nil, models.NewValidationError("cannot deactivate your own account")
	}

	userID, err := primitive.ObjectIDFromHex(targetID)
	if err != nil {
		return nil, models.NewValidationError("invalid user ID format")
	}

	updated, err := as.userRepo.SetUserActive(ctx, userID, active)
	if err != nil {
		return nil, wrapRepoErr("failed to update user status", err)
	}
	return updated, nil
}
