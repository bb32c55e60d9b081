package service

import (
	"context"
	"errors"

	slotserrors "github.com/DamiHettich/damis-reserve-app/internal/slots/errors"
	"github.com/DamiHettich/damis-reserve-app/internal/slots/repository"
	"github.com/DamiHettich/damis-reserve-app/internal/slots/selection"
	"github.com/DamiHettich/damis-reserve-app/pkg/config"
	apperrors "github.com/DamiHettich/damis-reserve-app/pkg/errors"
	"github.com/DamiHettich/damis-reserve-app/pkg/model"
)

// SelectionView is the derived state the calendar renders after every
// toggle: the chosen slots in selection order plus their total price.
type SelectionView struct {
	Slots []model.TimeSlot `json:"slots"`
	Total float64          `json:"total"`
}

type SlotService interface {
	List(ctx context.Context) ([]model.TimeSlot, error)
	Selection(ctx context.Context, sessionID string) (*SelectionView, error)
	Toggle(ctx context.Context, sessionID, slotID string) (*SelectionView, error)
	Clear(ctx context.Context, sessionID string) error
}

type slotService struct {
	repo  repository.SlotRepository
	store *repository.SelectionStore
	cfg   *config.Config
}

func NewSlotService(repo repository.SlotRepository, store *repository.SelectionStore, cfg *config.Config) SlotService {
	return &slotService{
		repo:  repo,
		store: store,
		cfg:   cfg,
	}
}

func (s *slotService) List(ctx context.Context) ([]model.TimeSlot, error) {
	slots, err := s.repo.List(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list slots", "error", err)
		return nil, apperrors.Internal("Failed to retrieve slots", err)
	}
	return slots, nil
}

func (s *slotService) Selection(_ context.Context, sessionID string) (*SelectionView, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("Session ID cannot be empty")
	}
	return viewOf(s.store.Get(sessionID)), nil
}

func (s *slotService) Toggle(ctx context.Context, sessionID, slotID string) (*SelectionView, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("Session ID cannot be empty")
	}
	if slotID == "" {
		return nil, apperrors.InvalidInput("Slot ID cannot be empty")
	}

	slot, err := s.repo.FindByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Slot", slotID)
		}
		s.cfg.Log.Error("Failed to resolve slot", "slot_id", slotID, "error", err)
		return nil, apperrors.Internal("Failed to resolve slot", err)
	}

	current := s.store.Get(sessionID)
	next := current.Toggle(*slot)
	s.store.Put(sessionID, next)

	s.cfg.Log.Debug("Selection toggled",
		"session_id", sessionID,
		"slot_id", slotID,
		"selected", next.Contains(slotID),
		"count", next.Len(),
	)

	return viewOf(next), nil
}

func (s *slotService) Clear(_ context.Context, sessionID string) error {
	if sessionID == "" {
		return apperrors.InvalidInput("Session ID cannot be empty")
	}
	s.store.Clear(sessionID)
	return nil
}

func viewOf(sel selection.Selection) *SelectionView {
	return &SelectionView{
		Slots: sel.Slots(),
		Total: sel.Total(),
	}
}
