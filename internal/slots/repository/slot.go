package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	slotserrors "github.com/DamiHettich/damis-reserve-app/internal/slots/errors"
	"github.com/DamiHettich/damis-reserve-app/pkg/model"
)

type SlotRepository interface {
	List(ctx context.Context) ([]model.TimeSlot, error)
	FindByID(ctx context.Context, id string) (*model.TimeSlot, error)
}

// MemorySlotRepository holds the available-slots listing in memory. There
// is no durable store behind it; the listing is seeded at startup.
type MemorySlotRepository struct {
	mu    sync.RWMutex
	slots []model.TimeSlot
}

func NewMemorySlotRepository(seed []model.TimeSlot) *MemorySlotRepository {
	slots := make([]model.TimeSlot, len(seed))
	copy(slots, seed)
	return &MemorySlotRepository{slots: slots}
}

// SeedSlots returns the demo listing the public calendar ships with,
// priced at the configured base rate.
func SeedSlots(basePrice float64) []model.TimeSlot {
	return []model.TimeSlot{
		{
			ID:        "1",
			Start:     time.Date(2025, 5, 7, 10, 0, 0, 0, time.Local),
			End:       time.Date(2025, 5, 7, 11, 0, 0, 0, time.Local),
			Available: true,
			Price:     basePrice,
		},
		{
			ID:        "2",
			Start:     time.Date(2025, 5, 8, 14, 0, 0, 0, time.Local),
			End:       time.Date(2025, 5, 8, 15, 0, 0, 0, time.Local),
			Available: true,
			Price:     basePrice,
		},
	}
}

func (r *MemorySlotRepository) List(_ context.Context) ([]model.TimeSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.TimeSlot, len(r.slots))
	copy(out, r.slots)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out, nil
}

func (r *MemorySlotRepository) FindByID(_ context.Context, id string) (*model.TimeSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, slot := range r.slots {
		if slot.ID == id {
			found := slot
			return &found, nil
		}
	}
	return nil, slotserrors.ErrNotFound
}
