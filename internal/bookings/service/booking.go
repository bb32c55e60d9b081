package service

import (
	"context"
	"errors"
	"time"

	bookingserrors "github.com/DamiHettich/damis-reserve-app/internal/bookings/errors"
	"github.com/DamiHettich/damis-reserve-app/internal/bookings/repository"
	"github.com/DamiHettich/damis-reserve-app/pkg/config"
	apperrors "github.com/DamiHettich/damis-reserve-app/pkg/errors"
	"github.com/DamiHettich/damis-reserve-app/pkg/events"
	"github.com/DamiHettich/damis-reserve-app/pkg/model"
)

const StatusChangedEventType = "booking.status.changed"

// StatusChangedEvent notifies the persistence boundary of a mutation.
type StatusChangedEvent struct {
	BookingID string              `json:"booking_id"`
	Status    model.BookingStatus `json:"status"`
	ChangedAt time.Time           `json:"changed_at"`
}

type BookingService interface {
	List(ctx context.Context, status model.BookingStatus, search string) ([]model.Booking, error)
	Pending(ctx context.Context) ([]model.Booking, error)
	Confirm(ctx context.Context, id string) (*model.Booking, error)
	Cancel(ctx context.Context, id string) (*model.Booking, error)
	UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	publisher events.Publisher
	cfg       *config.Config
}

func NewBookingService(repo repository.BookingRepository, publisher events.Publisher, cfg *config.Config) BookingService {
	return &bookingService{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *bookingService) List(ctx context.Context, status model.BookingStatus, search string) ([]model.Booking, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.InvalidInput("Unknown booking status: " + string(status))
	}

	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	return Filter(bookings, status, search), nil
}

func (s *bookingService) Pending(ctx context.Context) ([]model.Booking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	return Pending(bookings), nil
}

func (s *bookingService) Confirm(ctx context.Context, id string) (*model.Booking, error) {
	return s.UpdateStatus(ctx, id, model.BookingConfirmed)
}

func (s *bookingService) Cancel(ctx context.Context, id string) (*model.Booking, error) {
	return s.UpdateStatus(ctx, id, model.BookingCancelled)
}

func (s *bookingService) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}
	if !status.Valid() {
		return nil, apperrors.InvalidInput("Unknown booking status: " + string(status))
	}

	booking, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		s.cfg.Log.Error("Failed to update booking status", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update booking status", err)
	}

	event, err := events.NewEvent(StatusChangedEventType, booking.ID, StatusChangedEvent{
		BookingID: booking.ID,
		Status:    booking.Status,
		ChangedAt: time.Now(),
	})
	if err != nil {
		return nil, apperrors.Internal("Failed to encode status change", err)
	}

	// Fire and forget: the booking is already mutated locally, a publish
	// failure is logged but does not roll the change back.
	if err := s.publisher.Publish(ctx, s.cfg.BookingTopic, event); err != nil {
		s.cfg.Log.Error("Failed to publish booking status change",
			"booking_id", booking.ID,
			"status", booking.Status,
			"error", err,
		)
	}

	s.cfg.Log.Info("Booking status updated", "id", booking.ID, "status", booking.Status)
	return booking, nil
}
