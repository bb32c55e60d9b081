package repository

import (
	"context"
	"sync"
	"time"

	bookingserrors "github.com/DamiHettich/damis-reserve-app/internal/bookings/errors"
	"github.com/DamiHettich/damis-reserve-app/pkg/model"
)

type BookingRepository interface {
	FindAll(ctx context.Context) ([]model.Booking, error)
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, error)
}

// MemoryBookingRepository is the in-memory source of truth for bookings.
// Views never mutate it directly; status changes go through UpdateStatus
// and flow back into the derived views on the next read.
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings []model.Booking
}

func NewMemoryBookingRepository(seed []model.Booking) *MemoryBookingRepository {
	bookings := make([]model.Booking, len(seed))
	copy(bookings, seed)
	return &MemoryBookingRepository{bookings: bookings}
}

// SeedBookings returns the demo bookings the operator dashboard ships with.
func SeedBookings() []model.Booking {
	return []model.Booking{
		{
			ID:            "1",
			CustomerName:  "John Doe",
			CustomerEmail: "john@example.com",
			Start:         time.Date(2025, 5, 7, 10, 0, 0, 0, time.Local),
			End:           time.Date(2025, 5, 7, 11, 0, 0, 0, time.Local),
			Status:        model.BookingConfirmed,
			Price:         50,
			CreatedAt:     time.Date(2025, 5, 1, 9, 0, 0, 0, time.Local),
		},
		{
			ID:            "2",
			CustomerName:  "Jane Smith",
			CustomerEmail: "jane@example.com",
			Start:         time.Date(2025, 5, 8, 14, 0, 0, 0, time.Local),
			End:           time.Date(2025, 5, 8, 15, 0, 0, 0, time.Local),
			Status:        model.BookingPending,
			Price:         50,
			CreatedAt:     time.Date(2025, 5, 2, 16, 30, 0, 0, time.Local),
		},
		{
			ID:            "3",
			CustomerName:  "Carla Fuentes",
			CustomerEmail: "carla@example.com",
			Start:         time.Date(2025, 5, 7, 16, 0, 0, 0, time.Local),
			End:           time.Date(2025, 5, 7, 17, 0, 0, 0, time.Local),
			Status:        model.BookingPending,
			Price:         50,
			CreatedAt:     time.Date(2025, 5, 3, 11, 15, 0, 0, time.Local),
		},
	}
}

func (r *MemoryBookingRepository) FindAll(_ context.Context) ([]model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

func (r *MemoryBookingRepository) FindByID(_ context.Context, id string) (*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, booking := range r.bookings {
		if booking.ID == id {
			found := booking
			return &found, nil
		}
	}
	return nil, bookingserrors.ErrNotFound
}

func (r *MemoryBookingRepository) UpdateStatus(_ context.Context, id string, status model.BookingStatus) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = status
			updated := r.bookings[i]
			return &updated, nil
		}
	}
	return nil, bookingserrors.ErrNotFound
}
