package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/DamiHettich/damis-reserve-app/internal/session"
	"github.com/DamiHettich/damis-reserve-app/internal/slots/service"
	httputil "github.com/DamiHettich/damis-reserve-app/pkg/http"
	"github.com/DamiHettich/damis-reserve-app/pkg/logger"
)

type SlotHandler struct {
	service service.SlotService
	log     *logger.Logger
}

func NewSlotHandler(service service.SlotService, log *logger.Logger) *SlotHandler {
	return &SlotHandler{
		service: service,
		log:     log,
	}
}

func (h *SlotHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/slots", h.List)
	router.GET("/api/v1/selection", h.Selection)
	router.POST("/api/v1/selection/toggle", h.Toggle)
	router.DELETE("/api/v1/selection", h.Clear)
}

func (h *SlotHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	slots, err := h.service.List(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, slots); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "error", err)
	}
}

func (h *SlotHandler) Selection(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := session.ID(w, r)

	view, err := h.service.Selection(r.Context(), sessionID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Selection", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, view); err != nil {
		h.log.Error("failed to write success response", "handler", "Selection", "error", err)
	}
}

type toggleRequest struct {
	SlotID string `json:"slot_id"`
}

func (h *SlotHandler) Toggle(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := session.ID(w, r)

	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Toggle", "error", writeErr)
		}
		return
	}

	view, err := h.service.Toggle(r.Context(), sessionID, req.SlotID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Toggle", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, view); err != nil {
		h.log.Error("failed to write success response", "handler", "Toggle", "error", err)
	}
}

func (h *SlotHandler) Clear(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID := session.ID(w, r)

	if err := h.service.Clear(r.Context(), sessionID); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Clear", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}
