package booking

import (
	"context"
	"errors"
	"sync"

	bookingRepo "trailhead/database/repository/booking"
	"trailhead/models"
)

// mockBookingRepo is an in-memory BookingRepository that reproduces the
// capacity semantics of the Mongo implementation.
type mockBookingRepo struct {
	mu        sync.Mutex
	bookings  []models.Booking
	insertErr error
}

func (m *mockBookingRepo) isActive(status string) bool {
	for _, s := range models.ActiveBookingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (m *mockBookingRepo) activeFor(serviceID, date string) []models.Booking {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.ServiceID == serviceID && b.Date == date && m.isActive(b.Status) {
			out = append(out, b)
		}
	}
	return out
}

func (m *mockBookingRepo) InsertWithCapacityCheck(ctx context.Context, b *models.Booking, maxCapacity int, exactStart bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}

	total := b.Quantity
	for _, existing := range m.activeFor(b.ServiceID, b.Date) {
		if exactStart {
			if existing.Start == b.Start {
				total += existing.Quantity
			}
		} else if Overlaps(existing.Start, existing.End, b.Start, b.End) {
			total += existing.Quantity
		}
	}
	if total > maxCapacity {
		return bookingRepo.ErrCapacityExceeded
	}
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *mockBookingRepo) SumOverlapping(ctx context.Context, serviceID, date string, start, end int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return SumOverlappingQuantity(m.activeFor(serviceID, date), start, end), nil
}

func (m *mockBookingRepo) SumAtStart(ctx context.Context, serviceID, date string, start int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return SumQuantityAtStart(m.activeFor(serviceID, date), start), nil
}

func (m *mockBookingRepo) ListActiveByServiceDate(ctx context.Context, serviceID, date string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeFor(serviceID, date), nil
}

func (m *mockBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) ListByProviderDate(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Booking
	for _, b := range m.bookings {
		if b.ProviderID == providerID && (date == "" || b.Date == date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			b := m.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Status = status
			return nil
		}
	}
	return errors.New("booking not found")
}

// mockServiceRepo is an in-memory ServiceRepository.
type mockServiceRepo struct {
	services map[string]*models.Service
}

func (m *mockServiceRepo) Create(ctx context.Context, svc *models.Service) error {
	m.services[svc.ID] = svc
	return nil
}

func (m *mockServiceRepo) Update(ctx context.Context, svc *models.Service) error {
	m.services[svc.ID] = svc
	return nil
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	return m.services[id], nil
}

func (m *mockServiceRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range m.services {
		if svc.ProviderID == providerID {
			out = append(out, *svc)
		}
	}
	return out, nil
}

func (m *mockServiceRepo) ListActive(ctx context.Context, category string) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range m.services {
		if svc.Active && (category == "" || svc.Category == category) {
			out = append(out, *svc)
		}
	}
	return out, nil
}

// mockNotifier records notifications on buffered channels so tests can wait
// for the async delivery.
type mockNotifier struct {
	created   chan string
	cancelled chan string
	err       error
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{
		created:   make(chan string, 4),
		cancelled: make(chan string, 4),
	}
}

func (m *mockNotifier) NotifyBookingCreated(ctx context.Context, b *models.Booking, svc *models.Service) error {
	m.created <- b.ID
	return m.err
}

func (m *mockNotifier) NotifyBookingCancelled(ctx context.Context, b *models.Booking, svc *models.Service) error {
	m.cancelled <- b.ID
	return m.err
}

func (m *mockNotifier) ListForRecipient(ctx context.Context, recipientID, role string) ([]models.Notification, error) {
	return nil, nil
}

func (m *mockNotifier) MarkRead(ctx context.Context, id string) error {
	return nil
}

func newTestEngine() (*DefaultBookingEngine, *mockBookingRepo, *mockServiceRepo, *mockNotifier) {
	bookings := &mockBookingRepo{}
	services := &mockServiceRepo{services: map[string]*models.Service{}}
	notifier := newMockNotifier()
	engine := &DefaultBookingEngine{
		Bookings: bookings,
		Services: services,
		Notifier: notifier,
	}
	return engine, bookings, services, notifier
}
