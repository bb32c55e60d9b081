package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvSelectionTTL = "SELECTION_TTL"

	EnvWorkingDayStart = "WORKING_DAY_START"
	EnvWorkingDayEnd   = "WORKING_DAY_END"
	EnvSlotDurationMin = "SLOT_DURATION_MIN"
	EnvBasePrice       = "BASE_PRICE"

	EnvCheckoutDelay       = "CHECKOUT_DELAY"
	EnvCheckoutAlwaysFails = "CHECKOUT_ALWAYS_FAILS"

	EnvConfigFile      = "CONFIG_FILE"
	EnvDefaultLanguage = "DEFAULT_LANGUAGE"
	EnvDemoRole        = "DEMO_ROLE"

	EnvKafkaBrokers  = "KAFKA_BROKERS"
	EnvScheduleTopic = "SCHEDULE_TOPIC"
	EnvBookingTopic  = "BOOKING_TOPIC"
)
