package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lezit/transports-server/internal/mailer"
	"github.com/lezit/transports-server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory stand-in for the Mongo repositories, matching
// their sort, projection and not-found behavior.
type fakeStore struct {
	mu       sync.Mutex
	users    []*models.User
	bookings []*models.Booking
	services []*models.Service
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

// --- UserRepo ---

func (f *fakeStore) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, models.NewValidationError("user with this email already exists")
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeStore) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, models.NewNotFoundError("user not found")
}

func (f *fakeStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, models.NewNotFoundError("user not found")
}

func (f *fakeStore) SetProviderID(ctx context.Context, id primitive.ObjectID, provider, providerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			switch provider {
			case "google":
				u.GoogleID = providerID
			case "facebook":
				u.FacebookID = providerID
			}
			return nil
		}
	}
	return models.NewNotFoundError("user not found")
}

func (f *fakeStore) SetUserActive(ctx context.Context, id primitive.ObjectID, active bool) (*models.PublicUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			u.IsActive = active
			return u.Public(), nil
		}
	}
	return nil, models.NewNotFoundError("user not found")
}

func (f *fakeStore) ListUsers(ctx context.Context) ([]*models.PublicUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.PublicUser, 0, len(f.users))
	for i := len(f.users) - 1; i >= 0; i-- {
		out = append(out, f.users[i].Public())
	}
	return out, nil
}

func (f *fakeStore) CountUsers(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

// --- ServiceRepo ---

func (f *fakeStore) CreateService(ctx context.Context, service *models.Service) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.services {
		if s.Name == service.Name {
			return nil, models.NewValidationError("service with this name already exists")
		}
	}
	if service.ID.IsZero() {
		service.ID = primitive.NewObjectID()
	}
	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now
	f.services = append(f.services, service)
	return service, nil
}

func (f *fakeStore) GetServiceByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.services {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, models.NewNotFoundError("service not found")
}

func (f *fakeStore) ListServices(ctx context.Context, filter models.ServiceFilter) ([]*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Service
	for _, s := range f.services {
		if filter.Category != nil && s.Category != *filter.Category {
			continue
		}
		if filter.IsActive != nil && s.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeStore) UpdateService(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.services {
		if s.ID == id {
			if v, ok := update["name"].(string); ok {
				s.Name = v
			}
			if v, ok := update["category"].(string); ok {
				s.Category = v
			}
			if v, ok := update["description"].(string); ok {
				s.Description = v
			}
			if v, ok := update["base_price"].(float64); ok {
				s.BasePrice = v
			}
			if v, ok := update["price_per_km"].(float64); ok {
				s.PricePerKm = v
			}
			if v, ok := update["is_active"].(bool); ok {
				s.IsActive = v
			}
			s.UpdatedAt = time.Now()
			return s, nil
		}
	}
	return nil, models.NewNotFoundError("service not found")
}

func (f *fakeStore) DeleteService(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, s := range f.services {
		if s.ID == id {
			f.services = append(f.services[:i], f.services[i+1:]...)
			return nil
		}
	}
	return models.NewNotFoundError("service not found")
}

func (f *fakeStore) SetServiceActive(ctx context.Context, id primitive.ObjectID, active bool) (*models.Service, error) {
	return f.UpdateService(ctx, id, map[string]interface{}{"is_active": active})
}

func (f *fakeStore) CountActiveServices(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, s := range f.services {
		if s.IsActive {
			n++
		}
	}
	return n, nil
}

// --- BookingRepo ---

func (f *fakeStore) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	f.bookings = append(f.bookings, booking)
	return booking, nil
}

func (f *fakeStore) GetBookingByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, models.NewNotFoundError("booking not found")
}

func (f *fakeStore) GetBookingForUser(ctx context.Context, id, userID primitive.ObjectID) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id && b.UserID == userID {
			return b, nil
		}
	}
	return nil, models.NewNotFoundError("booking not found")
}

func (f *fakeStore) ListBookingsByUser(ctx context.Context, userID primitive.ObjectID, skip, limit int) ([]*models.Booking, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var mine []*models.Booking
	for i := len(f.bookings) - 1; i >= 0; i-- {
		if f.bookings[i].UserID == userID {
			mine = append(mine, f.bookings[i])
		}
	}
	total := int64(len(mine))
	if skip >= len(mine) {
		return nil, total, nil
	}
	mine = mine[skip:]
	if limit < len(mine) {
		mine = mine[:limit]
	}
	return mine, total, nil
}

func (f *fakeStore) SetBookingStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = status
			b.UpdatedAt = time.Now()
			return b, nil
		}
	}
	return nil, models.NewNotFoundError("booking not found")
}

func (f *fakeStore) ListAllBookings(ctx context.Context) ([]*models.AdminBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.AdminBooking
	for i := len(f.bookings) - 1; i >= 0; i-- {
		out = append(out, f.joined(f.bookings[i]))
	}
	return out, nil
}

func (f *fakeStore) UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.AdminBooking, error) {
	if _, err := f.SetBookingStatus(ctx, id, status); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id {
			return f.joined(b), nil
		}
	}
	return nil, models.NewNotFoundError("booking not found")
}

func (f *fakeStore) joined(b *models.Booking) *models.AdminBooking {
	ab := &models.AdminBooking{Booking: *b}
	for _, u := range f.users {
		if u.ID == b.UserID {
			ab.User = &models.BookingOwner{Name: u.Name, Email: u.Email}
			break
		}
	}
	return ab
}

func (f *fakeStore) CountBookings(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.bookings)), nil
}

func (f *fakeStore) CountBookingsByStatus(ctx context.Context, status string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, b := range f.bookings {
		if b.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) SumRevenue(ctx context.Context) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var total float64
	for _, b := range f.bookings {
		if b.Status == models.StatusConfirmed || b.Status == models.StatusCompleted {
			total += b.TotalAmount
		}
	}
	return total, nil
}

// fakeMailer records dispatches and can be told to fail.
type fakeMailer struct {
	mu            sync.Mutex
	failAll       bool
	confirmations []string
	cancellations []string
	contactForms  int
	supportForms  int
}

type fakeMailerErr struct{}

func (fakeMailerErr) Error() string { return "smtp unavailable" }

func (m *fakeMailer) SendBookingConfirmation(data mailer.BookingEmailData, to string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return fakeMailerErr{}
	}
	m.confirmations = append(m.confirmations, to)
	return nil
}

func (m *fakeMailer) SendBookingCancellation(data mailer.BookingEmailData, to string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return fakeMailerErr{}
	}
	m.cancellations = append(m.cancellations, to)
	return nil
}

func (m *fakeMailer) SendContactForm(data mailer.ContactFormData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return fakeMailerErr{}
	}
	m.contactForms++
	return nil
}

func (m *fakeMailer) SendSupportRequest(data mailer.SupportRequestData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return fakeMailerErr{}
	}
	m.supportForms++
	return nil
}
