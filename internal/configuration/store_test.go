package configuration

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/DamiHettich/damis-reserve-app/pkg/config"
	apperrors "github.com/DamiHettich/damis-reserve-app/pkg/errors"
	"github.com/DamiHettich/damis-reserve-app/pkg/logger"
	"github.com/DamiHettich/damis-reserve-app/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:  logger.ERROR,
		Format: logger.TEXT,
		Output: io.Discard,
	})
}

func TestParseMalformedJSONFallsBackToDefaults(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"truncated", `{"theme": {"primary":`},
		{"not json", `<<not json>>`},
		{"empty", ``},
		{"wrong type", `[1, 2, 3]`},
	}

	defaults := model.DefaultAppConfig()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse([]byte(tc.data), defaults)
			if got.Theme != defaults.Theme {
				t.Errorf("expected default theme, got %+v", got.Theme)
			}
			if got.Slots != defaults.Slots {
				t.Errorf("expected default slot config, got %+v", got.Slots)
			}
		})
	}
}

func TestParseMalformedJSONKeepsCustomDefaults(t *testing.T) {
	defaults := model.DefaultAppConfig()
	defaults.Slots.DurationMin = 45
	defaults.Pricing.BasePrice = 75

	got := Parse([]byte(`not a document`), defaults)

	if got.Slots.DurationMin != 45 {
		t.Errorf("expected custom slot duration 45, got %d", got.Slots.DurationMin)
	}
	if got.Pricing.BasePrice != 75 {
		t.Errorf("expected custom base price 75, got %v", got.Pricing.BasePrice)
	}
}

func TestParsePartialDocumentKeepsDefaultsForMissingFields(t *testing.T) {
	defaults := model.DefaultAppConfig()
	got := Parse([]byte(`{"theme": {"primary": "#ff0000", "secondary": "#00ff00", "accent": "#0000ff"}}`), defaults)

	if got.Theme.Primary != "#ff0000" {
		t.Errorf("expected overridden primary, got %s", got.Theme.Primary)
	}
	if got.Slots != defaults.Slots {
		t.Errorf("fields absent from the document must keep defaults, got %+v", got.Slots)
	}
}

func TestDefaultsFromConfigProjectsEnvironmentKnobs(t *testing.T) {
	cfg := &config.Config{
		WorkingDayStart: "08:30",
		WorkingDayEnd:   "21:00",
		SlotDurationMin: 30,
		BasePrice:       120,
	}

	got := DefaultsFromConfig(cfg)

	if got.Slots.StartTime != "08:30" || got.Slots.EndTime != "21:00" {
		t.Errorf("expected working window 08:30-21:00, got %s-%s", got.Slots.StartTime, got.Slots.EndTime)
	}
	if got.Slots.DurationMin != 30 {
		t.Errorf("expected slot duration 30, got %d", got.Slots.DurationMin)
	}
	if got.Pricing.BasePrice != 120 {
		t.Errorf("expected base price 120, got %v", got.Pricing.BasePrice)
	}

	// Everything the environment does not cover keeps the baseline.
	baseline := model.DefaultAppConfig()
	if got.Theme != baseline.Theme {
		t.Errorf("expected baseline theme, got %+v", got.Theme)
	}
	if got.Pricing.ReservationFee != baseline.Pricing.ReservationFee {
		t.Errorf("expected baseline reservation fee, got %v", got.Pricing.ReservationFee)
	}
}

func TestNewStoreWithoutFileUsesDefaults(t *testing.T) {
	store := NewStore("", model.DefaultAppConfig(), testLogger())

	if !reflect.DeepEqual(store.Get(), model.DefaultAppConfig()) {
		t.Error("expected defaults when no file is configured")
	}
}

func TestNewStoreMissingFileUsesDefaults(t *testing.T) {
	defaults := model.DefaultAppConfig()
	defaults.Slots.StartTime = "07:00"
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"), defaults, testLogger())

	if !reflect.DeepEqual(store.Get(), defaults) {
		t.Error("expected defaults when the file does not exist")
	}
}

func TestNewStoreCorruptFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"theme": garbage`), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path, model.DefaultAppConfig(), testLogger())

	if !reflect.DeepEqual(store.Get(), model.DefaultAppConfig()) {
		t.Error("expected defaults for a corrupt file")
	}
}

func TestUpdateThemeValidatesHexColors(t *testing.T) {
	store := NewStore("", model.DefaultAppConfig(), testLogger())

	_, err := store.UpdateTheme(model.ThemeColors{
		Primary:   "red",
		Secondary: "#00ff00",
		Accent:    "#0000ff",
	})
	if err == nil {
		t.Fatal("expected validation error for non-hex color")
	}
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeValidation {
		t.Errorf("expected code %s, got %s", apperrors.CodeValidation, appErr.Code)
	}

	if store.Get().Theme != model.DefaultThemeColors() {
		t.Error("rejected update must not change the stored theme")
	}
}

func TestUpdateThemeAppliesAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	store := NewStore(path, model.DefaultAppConfig(), testLogger())

	colors := model.ThemeColors{Primary: "#111111", Secondary: "#222222", Accent: "#333333"}
	cfg, err := store.UpdateTheme(colors)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme != colors {
		t.Errorf("expected updated theme, got %+v", cfg.Theme)
	}

	// A fresh store reads the persisted document back.
	reloaded := NewStore(path, model.DefaultAppConfig(), testLogger())
	if reloaded.Get().Theme != colors {
		t.Errorf("expected persisted theme, got %+v", reloaded.Get().Theme)
	}
}
