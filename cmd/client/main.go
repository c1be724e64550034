// Package main is the entry point for the flight booking client.
//
//	@title			Flight Booking Client API
//	@version		1.0.0
//	@description	Local view API of the flight booking client. Each view of the booking flow is a resource; navigation answers 303 with the next view.
//
//	@contact.name	API Support
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:3000
//	@BasePath		/api/v1
//
//	@schemes		http
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-booking/flight-booking-client/docs"

	httpAdapter "github.com/flight-booking/flight-booking-client/internal/adapter/http"
	"github.com/flight-booking/flight-booking-client/internal/adapter/http/middleware"
	"github.com/flight-booking/flight-booking-client/internal/apiclient"
	"github.com/flight-booking/flight-booking-client/internal/config"
	"github.com/flight-booking/flight-booking-client/internal/infrastructure/logger"
	"github.com/flight-booking/flight-booking-client/internal/infrastructure/timeutil"
	"github.com/flight-booking/flight-booking-client/internal/navigation"
	"github.com/flight-booking/flight-booking-client/internal/session"
	"github.com/flight-booking/flight-booking-client/internal/ticket"
	"github.com/flight-booking/flight-booking-client/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Logging)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("api", cfg.API.BaseURL).
		Str("store", cfg.Store.Kind).
		Msg("Configuration loaded")

	store, closeStore, err := setupStore(cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open token store")
	}
	defer closeStore()

	sess := session.NewContext(store, log)
	if err := sess.Init(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to read stored credential")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	if err := setupRoutes(e, cfg, sess, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to build views")
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupStore opens the configured token store. The returned func releases it.
func setupStore(cfg config.StoreConfig) (session.Store, func(), error) {
	switch cfg.Kind {
	case config.StoreMemory:
		return session.NewMemoryStore(), func() {}, nil
	case config.StoreRedis:
		rs := session.NewRedisStore(session.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisKeyPrefix,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rs.Ping(ctx); err != nil {
			_ = rs.Close()
			return nil, nil, fmt.Errorf("redis %s: %w", cfg.RedisAddr, err)
		}
		return rs, func() { _ = rs.Close() }, nil
	default:
		return session.NewFileStore(cfg.Path), func() {}, nil
	}
}

// setupRoutes wires the remote API client, the view use cases and the HTTP
// handler.
func setupRoutes(e *echo.Echo, cfg *config.Config, sess *session.Context, log *logger.Logger) error {
	display, err := timeutil.NewDisplay(cfg.Display.Timezone)
	if err != nil {
		return err
	}
	renderer, err := ticket.NewRenderer(display)
	if err != nil {
		return err
	}

	nav := navigation.NewNavigator(log)
	api, err := apiclient.New(cfg.API.BaseURL, cfg.API.Timeout, sess, nav, apiclient.WithLogger(log))
	if err != nil {
		return err
	}
	clock := timeutil.NewRealClock()

	catalog := usecase.NewCatalogUseCase(api, nav, display, log)
	handler := httpAdapter.NewHandler(httpAdapter.UseCases{
		Auth:         usecase.NewAuthUseCase(api, sess, nav, log),
		Catalog:      catalog,
		Booking:      usecase.NewBookingUseCase(api, catalog, nav, display, log),
		Payment:      usecase.NewPaymentUseCase(api, api, nav, display, &usecase.PaymentConfig{Currency: cfg.Payment.Currency}, log),
		Confirmation: usecase.NewConfirmationUseCase(api, nav, clock, display, renderer, log),
		Trips:        usecase.NewTripsUseCase(api, nav, clock, display, renderer, log),
		Admin:        usecase.NewAdminUseCase(api, nav, display, log),
	})
	httpAdapter.RegisterRoutes(e, handler)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
