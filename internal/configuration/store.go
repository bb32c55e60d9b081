// Package configuration holds the operator-editable application
// configuration and theme. Persisted state is advisory: anything missing
// or malformed silently resolves to the documented defaults, never to an
// error surfaced to the caller.
package configuration

import (
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/DamiHettich/damis-reserve-app/pkg/config"
	apperrors "github.com/DamiHettich/damis-reserve-app/pkg/errors"
	"github.com/DamiHettich/damis-reserve-app/pkg/logger"
	"github.com/DamiHettich/damis-reserve-app/pkg/model"
)

type Store struct {
	mu       sync.RWMutex
	cfg      model.AppConfig
	defaults model.AppConfig
	path     string
	validate *validator.Validate
	log      *logger.Logger
}

// DefaultsFromConfig projects the environment knobs onto the baseline
// application configuration: the env values are the defaults the operator
// edits on top of.
func DefaultsFromConfig(cfg *config.Config) model.AppConfig {
	defaults := model.DefaultAppConfig()
	defaults.Slots.DurationMin = cfg.SlotDurationMin
	defaults.Slots.StartTime = cfg.WorkingDayStart
	defaults.Slots.EndTime = cfg.WorkingDayEnd
	defaults.Pricing.BasePrice = cfg.BasePrice
	return defaults
}

// NewStore loads the persisted configuration from path. An empty path
// means nothing is persisted and the defaults apply for the process
// lifetime.
func NewStore(path string, defaults model.AppConfig, log *logger.Logger) *Store {
	store := &Store{
		path:     path,
		defaults: defaults,
		validate: validator.New(),
		log:      log,
	}
	store.cfg = store.load()
	return store
}

func (s *Store) load() model.AppConfig {
	if s.path == "" {
		return s.defaults
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("Failed to read configuration file, using defaults", "path", s.path, "error", err)
		}
		return s.defaults
	}

	return Parse(data, s.defaults)
}

// Parse decodes a persisted configuration document on top of the given
// defaults. Malformed JSON yields the defaults untouched; it never
// returns an error.
func Parse(data []byte, defaults model.AppConfig) model.AppConfig {
	cfg := defaults
	if err := json.Unmarshal(data, &cfg); err != nil {
		return defaults
	}
	return cfg
}

func (s *Store) Get() model.AppConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// UpdateTheme validates and applies new theme colors, persisting the
// whole configuration when a backing file is configured.
func (s *Store) UpdateTheme(colors model.ThemeColors) (model.AppConfig, error) {
	if err := s.validate.Struct(colors); err != nil {
		return model.AppConfig{}, apperrors.Validation("Theme colors must be hex color values", map[string]any{
			"error": err.Error(),
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.Theme = colors
	s.persistLocked()

	s.log.Info("Theme colors updated",
		"primary", colors.Primary,
		"secondary", colors.Secondary,
		"accent", colors.Accent,
	)
	return s.cfg, nil
}

func (s *Store) persistLocked() {
	if s.path == "" {
		return
	}

	data, err := json.MarshalIndent(s.cfg, "", "  ")
	if err != nil {
		s.log.Error("Failed to encode configuration", "error", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		// The in-memory configuration stays authoritative for this
		// process; persistence is best effort.
		s.log.Error("Failed to write configuration file", "path", s.path, "error", err)
	}
}
