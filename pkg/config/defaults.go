package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Selections are ephemeral per browsing session and never persisted;
	// idle sessions are evicted after this window.
	DefaultSelectionTTL = 30 * time.Minute

	DefaultWorkingDayStart = "07:00"
	DefaultWorkingDayEnd   = "23:00"
	DefaultSlotDurationMin = 60
	DefaultBasePrice       = 50.0

	DefaultCheckoutDelay = 1500 * time.Millisecond

	DefaultDefaultLanguage = "en-US"

	// The demo identity source grants the operator surfaces by default so
	// the whole application is reachable out of the box.
	DefaultDemoRole = "admin"

	DefaultScheduleTopic = "reserve.schedule.saved"
	DefaultBookingTopic  = "reserve.booking.status"
)
