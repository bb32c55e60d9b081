package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/DamiHettich/damis-reserve-app/internal/availability/service"
	"github.com/DamiHettich/damis-reserve-app/internal/session"
	apperrors "github.com/DamiHettich/damis-reserve-app/pkg/errors"
	httputil "github.com/DamiHettich/damis-reserve-app/pkg/http"
	"github.com/DamiHettich/damis-reserve-app/pkg/logger"
	"github.com/DamiHettich/damis-reserve-app/pkg/model"
)

type AvailabilityHandler struct {
	service  service.AvailabilityService
	sessions session.Source
	log      *logger.Logger
}

func NewAvailabilityHandler(svc service.AvailabilityService, sessions session.Source, log *logger.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service:  svc,
		sessions: sessions,
		log:      log,
	}
}

func (h *AvailabilityHandler) RegisterRoutes(router *httprouter.Router) {
	admin := func(next httprouter.Handle) httprouter.Handle {
		return session.RequireRole(h.sessions, h.log, model.RoleAdmin, next)
	}

	router.GET("/api/v1/availability", admin(h.State))
	router.POST("/api/v1/availability/toggle", admin(h.Toggle))
	router.POST("/api/v1/availability/save", admin(h.Save))
	router.POST("/api/v1/availability/reset", admin(h.Reset))
}

func (h *AvailabilityHandler) State(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.service.State(r.Context())); err != nil {
		h.log.Error("failed to write success response", "handler", "State", "error", err)
	}
}

type toggleRegionRequest struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (h *AvailabilityHandler) Toggle(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req toggleRegionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Toggle", "error", writeErr)
		}
		return
	}

	if req.Start.IsZero() || req.End.IsZero() {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Region start and end are required")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Toggle", "error", writeErr)
		}
		return
	}

	state, err := h.service.ToggleRegion(r.Context(), req.Start, req.End)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Toggle", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, state); err != nil {
		h.log.Error("failed to write success response", "handler", "Toggle", "error", err)
	}
}

func (h *AvailabilityHandler) Save(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	state, err := h.service.Save(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Save", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, state); err != nil {
		h.log.Error("failed to write success response", "handler", "Save", "error", err)
	}
}

func (h *AvailabilityHandler) Reset(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.service.Reset(r.Context())); err != nil {
		h.log.Error("failed to write success response", "handler", "Reset", "error", err)
	}
}
