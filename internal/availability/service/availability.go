package service

import (
	"context"
	"sync"
	"time"

	"github.com/DamiHettich/damis-reserve-app/internal/availability/validator"
	"github.com/DamiHettich/damis-reserve-app/pkg/config"
	apperrors "github.com/DamiHettich/damis-reserve-app/pkg/errors"
	"github.com/DamiHettich/damis-reserve-app/pkg/events"
	"github.com/DamiHettich/damis-reserve-app/pkg/model"
)

// ScheduleSavedEvent is the payload handed to the persistence publisher.
type ScheduleSavedEvent struct {
	Entries []model.WeeklyScheduleEntry `json:"entries"`
	SavedAt time.Time                   `json:"saved_at"`
}

const ScheduleSavedEventType = "availability.schedule.saved"

// EditorState is the editor's view after an operation: the current
// recurring slots plus whether edits are pending a save.
type EditorState struct {
	Slots          []model.RecurringSlot `json:"slots"`
	UnsavedChanges bool                  `json:"unsaved_changes"`
}

type AvailabilityService interface {
	State(ctx context.Context) *EditorState
	ToggleRegion(ctx context.Context, start, end time.Time) (*EditorState, error)
	Save(ctx context.Context) (*EditorState, error)
	Reset(ctx context.Context) *EditorState
}

// availabilityService is the weekly availability editor. An administrator
// click-selects regions on a week grid; identity is derived from the
// region's (day of week, start time), so toggling an equivalent region
// always collapses onto one canonical entry instead of accumulating
// duplicates.
type availabilityService struct {
	mu        sync.Mutex
	slots     []model.RecurringSlot
	unsaved   bool
	validator *validator.ScheduleValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewAvailabilityService(v *validator.ScheduleValidator, publisher events.Publisher, cfg *config.Config) AvailabilityService {
	return &availabilityService{
		validator: v,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *availabilityService) State(_ context.Context) *EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *availabilityService) ToggleRegion(_ context.Context, start, end time.Time) (*EditorState, error) {
	if !end.After(start) {
		return nil, apperrors.InvalidInput("Region end must be after region start")
	}

	day := start.Weekday()
	startLabel := model.TimeLabel(start)
	endLabel := model.TimeLabel(end)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, slot := range s.slots {
		if slot.SameRegion(day, startLabel, endLabel) {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			s.unsaved = true
			s.cfg.Log.Debug("Recurring slot deselected",
				"id", slot.ID,
				"day_of_week", int(day),
				"start", startLabel,
				"end", endLabel,
			)
			return s.stateLocked(), nil
		}
	}

	slot := model.RecurringSlot{
		ID:        model.RecurringSlotID(day, start),
		DayOfWeek: day,
		Start:     start,
		End:       end,
	}
	s.slots = append(s.slots, slot)
	s.unsaved = true

	s.cfg.Log.Debug("Recurring slot selected",
		"id", slot.ID,
		"day_of_week", int(day),
		"start", startLabel,
		"end", endLabel,
	)
	return s.stateLocked(), nil
}

// Save projects the recurring slots into the serializable weekly schedule
// and hands it to the persistence publisher. Saving a clean editor is a
// no-op: no projection, no collaborator call.
func (s *availabilityService) Save(ctx context.Context) (*EditorState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.unsaved {
		return s.stateLocked(), nil
	}

	entries := make([]model.WeeklyScheduleEntry, 0, len(s.slots))
	for _, slot := range s.slots {
		entries = append(entries, slot.ToScheduleEntry())
	}

	if err := s.validator.Validate(entries); err != nil {
		s.cfg.Log.Warn("Weekly schedule validation failed", "error", err)
		return nil, apperrors.Validation("Weekly schedule validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	event, err := events.NewEvent(ScheduleSavedEventType, "weekly-schedule", ScheduleSavedEvent{
		Entries: entries,
		SavedAt: time.Now(),
	})
	if err != nil {
		return nil, apperrors.Internal("Failed to encode weekly schedule", err)
	}

	if err := s.publisher.Publish(ctx, s.cfg.ScheduleTopic, event); err != nil {
		// Edits stay dirty so the operator can retry the save.
		s.cfg.Log.Error("Failed to publish weekly schedule", "error", err)
		return nil, apperrors.Unavailable("Failed to save weekly schedule", err)
	}

	s.unsaved = false
	s.cfg.Log.Info("Weekly schedule saved", "entries", len(entries))
	return s.stateLocked(), nil
}

// Reset discards all entries and pending edits. There is no undo history.
func (s *availabilityService) Reset(_ context.Context) *EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots = nil
	s.unsaved = false

	s.cfg.Log.Info("Availability editor reset")
	return s.stateLocked()
}

func (s *availabilityService) stateLocked() *EditorState {
	out := make([]model.RecurringSlot, len(s.slots))
	copy(out, s.slots)
	return &EditorState{
		Slots:          out,
		UnsavedChanges: s.unsaved,
	}
}
