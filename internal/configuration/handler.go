package configuration

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/DamiHettich/damis-reserve-app/internal/session"
	apperrors "github.com/DamiHettich/damis-reserve-app/pkg/errors"
	httputil "github.com/DamiHettich/damis-reserve-app/pkg/http"
	"github.com/DamiHettich/damis-reserve-app/pkg/locale"
	"github.com/DamiHettich/damis-reserve-app/pkg/logger"
	"github.com/DamiHettich/damis-reserve-app/pkg/model"
)

type Handler struct {
	store       *Store
	sessions    session.Source
	defaultLang string
	log         *logger.Logger
}

func NewHandler(store *Store, sessions session.Source, defaultLang string, log *logger.Logger) *Handler {
	return &Handler{store: store, sessions: sessions, defaultLang: defaultLang, log: log}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/configuration", h.Get)
	router.PUT("/api/v1/configuration/theme", session.RequireRole(h.sessions, h.log, model.RoleAdmin, h.UpdateTheme))
}

// localeView exposes the labels the calendar views render with.
type localeView struct {
	Tag       string    `json:"tag"`
	DayLabels [7]string `json:"day_labels"`
}

type configurationView struct {
	Config model.AppConfig `json:"config"`
	Locale localeView      `json:"locale"`
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	lang := locale.Resolve(h.requestLanguage(r))
	view := configurationView{
		Config: h.store.Get(),
		Locale: localeView{Tag: lang.Tag, DayLabels: lang.DayLabels},
	}
	if err := httputil.WriteSuccess(w, view); err != nil {
		h.log.Error("Failed to write configuration response", "error", err)
	}
}

func (h *Handler) requestLanguage(r *http.Request) string {
	accept := r.Header.Get("Accept-Language")
	if accept == "" {
		return h.defaultLang
	}
	// First entry only; quality weights are not honored.
	if idx := strings.IndexAny(accept, ",;"); idx > 0 {
		accept = accept[:idx]
	}
	return strings.TrimSpace(accept)
}

func (h *Handler) UpdateTheme(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var colors model.ThemeColors
	if err := json.NewDecoder(r.Body).Decode(&colors); err != nil {
		appErr := apperrors.InvalidInput("Invalid request body")
		if writeErr := httputil.WriteError(w, appErr); writeErr != nil {
			h.log.Error("Failed to write error response", "error", writeErr)
		}
		return
	}

	cfg, err := h.store.UpdateTheme(colors)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("Failed to write error response", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, cfg); err != nil {
		h.log.Error("Failed to write configuration response", "error", err)
	}
}
