package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/DamiHettich/damis-reserve-app/internal/bookings/service"
	"github.com/DamiHettich/damis-reserve-app/internal/session"
	httputil "github.com/DamiHettich/damis-reserve-app/pkg/http"
	"github.com/DamiHettich/damis-reserve-app/pkg/logger"
	"github.com/DamiHettich/damis-reserve-app/pkg/model"
)

type BookingHandler struct {
	service  service.BookingService
	sessions session.Source
	log      *logger.Logger
}

func NewBookingHandler(svc service.BookingService, sessions session.Source, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service:  svc,
		sessions: sessions,
		log:      log,
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	admin := func(next httprouter.Handle) httprouter.Handle {
		return session.RequireRole(h.sessions, h.log, model.RoleAdmin, next)
	}

	router.GET("/api/v1/bookings", admin(h.List))
	router.GET("/api/v1/bookings/pending", admin(h.Pending))
	router.POST("/api/v1/bookings/:id/confirm", admin(h.Confirm))
	router.POST("/api/v1/bookings/:id/cancel", admin(h.Cancel))
	router.PUT("/api/v1/bookings/:id/status", admin(h.UpdateStatus))
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	status := model.BookingStatus(query.Get("status"))
	search := query.Get("search")

	bookings, err := h.service.List(r.Context(), status, search)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "error", err)
	}
}

func (h *BookingHandler) Pending(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings, err := h.service.Pending(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Pending", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "Pending", "error", err)
	}
}

func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.service.Confirm(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Confirm", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "Confirm", "error", err)
	}
}

type updateStatusRequest struct {
	Status model.BookingStatus `json:"status"`
}

func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "UpdateStatus", "error", writeErr)
		}
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), ps.ByName("id"), req.Status)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UpdateStatus", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdateStatus", "error", err)
	}
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.service.Cancel(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Cancel", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "Cancel", "error", err)
	}
}
