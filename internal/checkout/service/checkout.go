package service

import (
	"context"
	"sync"

	slotsrepo "github.com/DamiHettich/damis-reserve-app/internal/slots/repository"
	"github.com/DamiHettich/damis-reserve-app/pkg/config"
	apperrors "github.com/DamiHettich/damis-reserve-app/pkg/errors"
)

// PaymentMethods lists the accepted checkout payment method ids. Choice
// only; no processing happens behind them.
var PaymentMethods = []string{"webpay", "mercadopago"}

type CheckoutService interface {
	Checkout(ctx context.Context, sessionID, paymentMethod, returnPath string) (*Receipt, error)
}

type checkoutService struct {
	selections *slotsrepo.SelectionStore
	processor  Processor
	cfg        *config.Config

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewCheckoutService(selections *slotsrepo.SelectionStore, processor Processor, cfg *config.Config) CheckoutService {
	return &checkoutService{
		selections: selections,
		processor:  processor,
		cfg:        cfg,
		inFlight:   make(map[string]bool),
	}
}

// Checkout hands the session's selection to the processor by value. A
// second submission for the same session while one is in flight is
// rejected with a conflict; this is a guard flag, not a queue.
func (s *checkoutService) Checkout(ctx context.Context, sessionID, paymentMethod, returnPath string) (*Receipt, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("Session ID cannot be empty")
	}
	if !validPaymentMethod(paymentMethod) {
		return nil, apperrors.InvalidInput("Unknown payment method: " + paymentMethod)
	}

	sel := s.selections.Get(sessionID)
	if sel.Len() == 0 {
		return nil, apperrors.Validation("No slots selected", nil)
	}

	if !s.acquire(sessionID) {
		return nil, apperrors.Conflict("A checkout for this session is already in progress")
	}
	defer s.release(sessionID)

	order := Order{
		SessionID:     sessionID,
		Slots:         sel.Slots(),
		Total:         sel.Total(),
		PaymentMethod: paymentMethod,
		ReturnPath:    returnPath,
	}

	receipt, err := s.processor.Submit(ctx, order)
	if err != nil {
		// The selection survives a failed attempt so the user can retry.
		s.cfg.Log.Warn("Checkout rejected",
			"session_id", sessionID,
			"slots", len(order.Slots),
			"error", err,
		)
		return nil, apperrors.Unavailable("Failed to process booking. Please try again.", err)
	}

	s.selections.Clear(sessionID)

	s.cfg.Log.Info("Checkout confirmed",
		"session_id", sessionID,
		"reference", receipt.Reference,
		"slots", len(receipt.Slots),
		"total", receipt.Total,
	)
	return receipt, nil
}

func (s *checkoutService) acquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[sessionID] {
		return false
	}
	s.inFlight[sessionID] = true
	return true
}

func (s *checkoutService) release(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, sessionID)
}

func validPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}
