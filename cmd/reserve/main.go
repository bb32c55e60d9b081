package main

import (
	"github.com/julienschmidt/httprouter"

	availabilityhandler "github.com/DamiHettich/damis-reserve-app/internal/availability/handler"
	availabilityservice "github.com/DamiHettich/damis-reserve-app/internal/availability/service"
	availabilityvalidator "github.com/DamiHettich/damis-reserve-app/internal/availability/validator"
	bookinghandler "github.com/DamiHettich/damis-reserve-app/internal/bookings/handler"
	bookingrepository "github.com/DamiHettich/damis-reserve-app/internal/bookings/repository"
	bookingservice "github.com/DamiHettich/damis-reserve-app/internal/bookings/service"
	checkouthandler "github.com/DamiHettich/damis-reserve-app/internal/checkout/handler"
	checkoutservice "github.com/DamiHettich/damis-reserve-app/internal/checkout/service"
	"github.com/DamiHettich/damis-reserve-app/internal/configuration"
	"github.com/DamiHettich/damis-reserve-app/internal/session"
	slothandler "github.com/DamiHettich/damis-reserve-app/internal/slots/handler"
	slotrepository "github.com/DamiHettich/damis-reserve-app/internal/slots/repository"
	slotservice "github.com/DamiHettich/damis-reserve-app/internal/slots/service"
	"github.com/DamiHettich/damis-reserve-app/pkg/app"
	"github.com/DamiHettich/damis-reserve-app/pkg/config"
	"github.com/DamiHettich/damis-reserve-app/pkg/contracts"
	"github.com/DamiHettich/damis-reserve-app/pkg/events"
	"github.com/DamiHettich/damis-reserve-app/pkg/model"
)

const ServiceName = "reserve"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Reserve service")

	publisher := initPublisher(cfg)
	selectionStore := slotrepository.NewSelectionStore(cfg.SelectionTTL)

	appHandler := initHandlers(cfg, publisher, selectionStore)

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, appHandler, selectionStore, stopperFunc(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	}))
	serverApp.Run()
}

func initPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("No Kafka brokers configured, using in-memory event sink")
		return events.NewMemoryPublisher()
	}

	publisher, err := events.NewKafkaPublisher(events.KafkaConfig{
		Brokers: cfg.KafkaBrokers,
	})
	if err != nil {
		cfg.Log.Fatal("Failed to initialize Kafka publisher", "error", err)
	}
	cfg.Log.Info("Kafka publisher initialized", "brokers", cfg.KafkaBrokers)
	return publisher
}

func initHandlers(cfg *config.Config, publisher events.Publisher, selectionStore *slotrepository.SelectionStore) contracts.Handler {
	demoUser := session.DefaultDemoUser()
	demoUser.Role = model.Role(cfg.DemoRole)
	sessions := session.NewDemoSource(demoUser)

	slotRepo := slotrepository.NewMemorySlotRepository(slotrepository.SeedSlots(cfg.BasePrice))
	slotSvc := slotservice.NewSlotService(slotRepo, selectionStore, cfg)

	scheduleValidator := availabilityvalidator.NewScheduleValidator(cfg.Log)
	availabilitySvc := availabilityservice.NewAvailabilityService(scheduleValidator, publisher, cfg)

	bookingRepo := bookingrepository.NewMemoryBookingRepository(bookingrepository.SeedBookings())
	bookingSvc := bookingservice.NewBookingService(bookingRepo, publisher, cfg)

	processor := &checkoutservice.SimulatedProcessor{
		Delay:       cfg.CheckoutDelay,
		AlwaysFails: cfg.CheckoutAlwaysFails,
	}
	checkoutSvc := checkoutservice.NewCheckoutService(selectionStore, processor, cfg)

	configStore := configuration.NewStore(cfg.ConfigFile, configuration.DefaultsFromConfig(cfg), cfg.Log)

	cfg.Log.Info("Services initialized")

	return &compositeHandler{
		handlers: []contracts.Handler{
			slothandler.NewSlotHandler(slotSvc, cfg.Log),
			availabilityhandler.NewAvailabilityHandler(availabilitySvc, sessions, cfg.Log),
			bookinghandler.NewBookingHandler(bookingSvc, sessions, cfg.Log),
			checkouthandler.NewCheckoutHandler(checkoutSvc, cfg.Log),
			configuration.NewHandler(configStore, sessions, cfg.DefaultLanguage, cfg.Log),
		},
	}
}

type compositeHandler struct {
	handlers []contracts.Handler
}

func (c *compositeHandler) RegisterRoutes(router *httprouter.Router) {
	for _, h := range c.handlers {
		h.RegisterRoutes(router)
	}
}

type stopperFunc func()

func (f stopperFunc) Stop() { f() }
