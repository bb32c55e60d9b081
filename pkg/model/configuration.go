package model

// ThemeColors holds the customizable palette. Malformed persisted values
// fall back to DefaultThemeColors without surfacing an error.
type ThemeColors struct {
	Primary   string `json:"primary" validate:"required,hexcolor"`
	Secondary string `json:"secondary" validate:"required,hexcolor"`
	Accent    string `json:"accent" validate:"required,hexcolor"`
}

type SlotConfig struct {
	DurationMin int    `json:"duration" validate:"min=5,max=480"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
}

type PricingConfig struct {
	BasePrice       float64 `json:"base_price" validate:"gte=0"`
	ReservationFee  float64 `json:"reservation_fee" validate:"gte=0"`
	CancellationFee float64 `json:"cancellation_fee" validate:"gte=0"`
}

type CancellationConfig struct {
	DeadlineHours       int     `json:"deadline" validate:"gte=0"`
	LateCancellationFee float64 `json:"late_cancellation_fee" validate:"gte=0"`
	CutoffHours         int     `json:"cutoff_time" validate:"gte=0"`
}

type NotificationConfig struct {
	Email         bool  `json:"email"`
	WhatsApp      bool  `json:"whatsapp"`
	ReminderHours []int `json:"reminder_hours" validate:"dive,gt=0"`
}

// AppConfig is the operator-editable application configuration.
type AppConfig struct {
	Slots         SlotConfig         `json:"slots"`
	Pricing       PricingConfig      `json:"pricing"`
	Cancellation  CancellationConfig `json:"cancellation"`
	Theme         ThemeColors        `json:"theme"`
	Notifications NotificationConfig `json:"notifications"`
}

func DefaultThemeColors() ThemeColors {
	return ThemeColors{
		Primary:   "#1a73e8",
		Secondary: "#4285f4",
		Accent:    "#fbbc04",
	}
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		Slots: SlotConfig{
			DurationMin: 60,
			StartTime:   "09:00",
			EndTime:     "17:00",
		},
		Pricing: PricingConfig{
			BasePrice:       50,
			ReservationFee:  10,
			CancellationFee: 15,
		},
		Cancellation: CancellationConfig{
			DeadlineHours:       24,
			LateCancellationFee: 25,
			CutoffHours:         12,
		},
		Theme: DefaultThemeColors(),
		Notifications: NotificationConfig{
			Email:         true,
			WhatsApp:      true,
			ReminderHours: []int{24, 2},
		},
	}
}
