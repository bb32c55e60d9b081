package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/DamiHettich/damis-reserve-app/pkg/model"
)

// Order is the checkout handoff: the selection passed by value together
// with the path the client returns to on failure.
type Order struct {
	SessionID     string           `json:"session_id"`
	Slots         []model.TimeSlot `json:"slots"`
	Total         float64          `json:"total"`
	PaymentMethod string           `json:"payment_method"`
	ReturnPath    string           `json:"return_path"`
}

// Receipt is the result payload of a confirmed checkout.
type Receipt struct {
	Reference   string           `json:"reference"`
	Slots       []model.TimeSlot `json:"slots"`
	Total       float64          `json:"total"`
	ConfirmedAt time.Time        `json:"confirmed_at"`
}

// Processor is the injected async boundary standing in for the payment
// and booking-confirmation backend. Tests substitute deterministic
// implementations; production wiring uses the simulated one.
type Processor interface {
	Submit(ctx context.Context, order Order) (*Receipt, error)
}

// ErrProcessorRejected is the simulated transient failure. It is
// recoverable by user-initiated retry only.
var ErrProcessorRejected = errors.New("booking confirmation rejected")

// SimulatedProcessor confirms orders after a fixed delay. The delay
// respects context cancellation so navigation away abandons the attempt.
type SimulatedProcessor struct {
	Delay       time.Duration
	AlwaysFails bool
}

func (p *SimulatedProcessor) Submit(ctx context.Context, order Order) (*Receipt, error) {
	if p.Delay > 0 {
		timer := time.NewTimer(p.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if p.AlwaysFails {
		return nil, ErrProcessorRejected
	}

	return &Receipt{
		Reference:   uuid.New().String(),
		Slots:       order.Slots,
		Total:       order.Total,
		ConfirmedAt: time.Now(),
	}, nil
}
