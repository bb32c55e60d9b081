package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/DamiHettich/damis-reserve-app/internal/checkout/service"
	"github.com/DamiHettich/damis-reserve-app/internal/session"
	httputil "github.com/DamiHettich/damis-reserve-app/pkg/http"
	"github.com/DamiHettich/damis-reserve-app/pkg/logger"
)

type CheckoutHandler struct {
	service service.CheckoutService
	log     *logger.Logger
}

func NewCheckoutHandler(svc service.CheckoutService, log *logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: svc,
		log:     log,
	}
}

func (h *CheckoutHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/checkout", h.Checkout)
	router.GET("/api/v1/checkout/payment-methods", h.PaymentMethods)
}

type checkoutRequest struct {
	PaymentMethod string `json:"payment_method"`
	ReturnPath    string `json:"return_path"`
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := session.ID(w, r)

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Checkout", "error", writeErr)
		}
		return
	}

	receipt, err := h.service.Checkout(r.Context(), sessionID, req.PaymentMethod, req.ReturnPath)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Checkout", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, receipt); err != nil {
		h.log.Error("failed to write created response", "handler", "Checkout", "error", err)
	}
}

func (h *CheckoutHandler) PaymentMethods(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, service.PaymentMethods); err != nil {
		h.log.Error("failed to write success response", "handler", "PaymentMethods", "error", err)
	}
}
