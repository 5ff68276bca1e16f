package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/arvrtourism/booking/internal/adapter/console"
	"github.com/arvrtourism/booking/internal/adapter/repository/memory"
	"github.com/arvrtourism/booking/internal/core/services"
	"github.com/arvrtourism/booking/internal/platform/clock"
	"github.com/arvrtourism/booking/internal/platform/config"
	"github.com/arvrtourism/booking/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFile)
	defer log.Sync()

	log.Infow("starting ar/vr tourism demo",
		"version", cfg.AppVersion,
		"payment_delay", cfg.PaymentDelay,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog := memory.NewCatalog()
	history := memory.NewHistoryRepository()
	wallClock := clock.New()

	recommendationService := services.NewRecommendationService(catalog, log)
	bookingService := services.NewBookingService(history, wallClock, cfg.PaymentDelay, log)
	tourService := services.NewTourService(history, wallClock, log)

	wizard := console.NewWizard(console.WizardDeps{
		In:              os.Stdin,
		Out:             os.Stdout,
		Recommendations: recommendationService,
		Bookings:        bookingService,
		Tours:           tourService,
		History:         history,
		Catalog:         catalog,
		Clock:           wallClock,
		Log:             log,
	})

	err := wizard.Run(ctx)
	switch {
	case err == nil, errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		log.Infow("demo stopped")
	default:
		log.Fatalw("demo failed", "err", err)
	}
}
