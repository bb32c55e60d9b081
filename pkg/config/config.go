package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/DamiHettich/damis-reserve-app/pkg/logger"
)

type Config struct {
	ServiceName string

	Port     string
	LogLevel string

	RequestTimeout time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	SelectionTTL time.Duration

	WorkingDayStart string
	WorkingDayEnd   string
	SlotDurationMin int
	BasePrice       float64

	CheckoutDelay       time.Duration
	CheckoutAlwaysFails bool

	ConfigFile      string
	DefaultLanguage string
	DemoRole        string

	// Kafka is optional: no brokers means the fire-and-forget publisher
	// falls back to an in-memory sink.
	KafkaBrokers  []string
	ScheduleTopic string
	BookingTopic  string

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	cfg := &Config{
		ServiceName: serviceName,

		Port:     getEnvStr(EnvPort, DefaultPort),
		LogLevel: getEnvStr(EnvLogLevel, DefaultLogLevel),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		SelectionTTL: getEnvDuration(EnvSelectionTTL, DefaultSelectionTTL),

		WorkingDayStart: getEnvStr(EnvWorkingDayStart, DefaultWorkingDayStart),
		WorkingDayEnd:   getEnvStr(EnvWorkingDayEnd, DefaultWorkingDayEnd),
		SlotDurationMin: getEnvNum(EnvSlotDurationMin, DefaultSlotDurationMin),
		BasePrice:       getEnvFloat(EnvBasePrice, DefaultBasePrice),

		CheckoutDelay:       getEnvDuration(EnvCheckoutDelay, DefaultCheckoutDelay),
		CheckoutAlwaysFails: getEnvBool(EnvCheckoutAlwaysFails, false),

		ConfigFile:      getEnvStr(EnvConfigFile, ""),
		DefaultLanguage: getEnvStr(EnvDefaultLanguage, DefaultDefaultLanguage),
		DemoRole:        getEnvStr(EnvDemoRole, DefaultDemoRole),

		KafkaBrokers:  getEnvList(EnvKafkaBrokers),
		ScheduleTopic: getEnvStr(EnvScheduleTopic, DefaultScheduleTopic),
		BookingTopic:  getEnvStr(EnvBookingTopic, DefaultBookingTopic),
	}

	cfg.Log = logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Format:    logger.JSON,
		AddSource: true,
		Service:   serviceName,
	})

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if !timeOfDayRegex.MatchString(cfg.WorkingDayStart) {
		errors = append(errors, fmt.Sprintf("WorkingDayStart must be in HH:MM format (00:00-23:59), got: %s", cfg.WorkingDayStart))
	}
	if !timeOfDayRegex.MatchString(cfg.WorkingDayEnd) {
		errors = append(errors, fmt.Sprintf("WorkingDayEnd must be in HH:MM format (00:00-23:59), got: %s", cfg.WorkingDayEnd))
	}
	if timeOfDayRegex.MatchString(cfg.WorkingDayStart) && timeOfDayRegex.MatchString(cfg.WorkingDayEnd) &&
		cfg.WorkingDayStart >= cfg.WorkingDayEnd {
		errors = append(errors, fmt.Sprintf("WorkingDayStart (%s) must be before WorkingDayEnd (%s)", cfg.WorkingDayStart, cfg.WorkingDayEnd))
	}

	if cfg.SlotDurationMin < 5 || cfg.SlotDurationMin > 480 {
		errors = append(errors, fmt.Sprintf("SlotDurationMin must be between 5 and 480, got: %d", cfg.SlotDurationMin))
	}
	if cfg.BasePrice < 0 {
		errors = append(errors, fmt.Sprintf("BasePrice cannot be negative, got: %g", cfg.BasePrice))
	}

	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}
	if cfg.SelectionTTL <= 0 {
		errors = append(errors, fmt.Sprintf("SelectionTTL must be positive, got: %s", cfg.SelectionTTL))
	}
	if cfg.CheckoutDelay < 0 {
		errors = append(errors, fmt.Sprintf("CheckoutDelay cannot be negative, got: %s", cfg.CheckoutDelay))
	}

	switch cfg.DemoRole {
	case "client", "provider", "admin":
	default:
		errors = append(errors, fmt.Sprintf("DemoRole must be one of client, provider, admin, got: %s", cfg.DemoRole))
	}

	for i, broker := range cfg.KafkaBrokers {
		if broker == "" {
			errors = append(errors, fmt.Sprintf("Kafka broker %d cannot be empty", i))
		}
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"log_level", cfg.LogLevel,
		"request_timeout", cfg.RequestTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"selection_ttl", cfg.SelectionTTL,
		"working_day_start", cfg.WorkingDayStart,
		"working_day_end", cfg.WorkingDayEnd,
		"slot_duration_min", cfg.SlotDurationMin,
		"base_price", cfg.BasePrice,
		"checkout_delay", cfg.CheckoutDelay,
		"checkout_always_fails", cfg.CheckoutAlwaysFails,
		"config_file", cfg.ConfigFile,
		"default_language", cfg.DefaultLanguage,
		"demo_role", cfg.DemoRole,
		"kafka_brokers", cfg.KafkaBrokers,
		"schedule_topic", cfg.ScheduleTopic,
		"booking_topic", cfg.BookingTopic,
	)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
