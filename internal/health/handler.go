package health

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	httputil "github.com/DamiHettich/damis-reserve-app/pkg/http"
	"github.com/DamiHettich/damis-reserve-app/pkg/logger"
)

type Handler struct {
	service string
	started time.Time
	log     *logger.Logger
}

func NewHandler(service string, log *logger.Logger) *Handler {
	return &Handler{service: service, started: time.Now(), log: log}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	payload := map[string]any{
		"status":  "healthy",
		"service": h.service,
		"uptime":  time.Since(h.started).String(),
	}
	if err := httputil.WriteJSON(w, http.StatusOK, payload); err != nil {
		h.log.Error("Failed to write health response", "error", err)
	}
}

func (h *Handler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	payload := map[string]any{
		"status":  "ready",
		"service": h.service,
	}
	if err := httputil.WriteJSON(w, http.StatusOK, payload); err != nil {
		h.log.Error("Failed to write readiness response", "error", err)
	}
}
