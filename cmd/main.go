package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/freshup-events/erlebnisbuchung/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/freshup-events/erlebnisbuchung/internal/api/handlers/get_available_slots"
	getOfferingsHandler "github.com/freshup-events/erlebnisbuchung/internal/api/handlers/get_offerings"
	reloadLedgerHandler "github.com/freshup-events/erlebnisbuchung/internal/api/handlers/reload_ledger"
	"github.com/freshup-events/erlebnisbuchung/internal/api/middleware"
	"github.com/freshup-events/erlebnisbuchung/internal/config"
	sheetsClient "github.com/freshup-events/erlebnisbuchung/internal/integrations/sheets"
	"github.com/freshup-events/erlebnisbuchung/internal/ledger"
	createBookingUC "github.com/freshup-events/erlebnisbuchung/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/freshup-events/erlebnisbuchung/internal/usecase/get_available_slots"
	"github.com/freshup-events/erlebnisbuchung/pkg/logger"
	"github.com/freshup-events/erlebnisbuchung/pkg/metrics"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting erlebnisbuchung service...")

	// Business metrics interface used by the use cases; a no-op stands
	// in when metrics are disabled.
	var metricsCollector *metrics.Metrics
	var bookingMetrics createBookingUC.Metrics = metrics.Nop{}
	var ledgerMetrics reloadLedgerHandler.Metrics = metrics.Nop{}

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		bookingMetrics = metricsCollector
		ledgerMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Sheet workflow client: relay target for accepted bookings and
	// source for the ledger seed.
	sheets := sheetsClient.NewClient(
		cfg.Sheets.URL,
		time.Duration(cfg.Sheets.Timeout)*time.Second,
		log,
	)

	// The ledger is the single shared booking view. The sheet is the
	// system of record; the seed makes capacity checks see bookings
	// from before this process started.
	bookingLedger := ledger.New()
	if cfg.Sheets.SeedOnStart {
		seedCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Sheets.Timeout)*time.Second)
		entries, err := sheets.FetchBookings(seedCtx)
		cancel()
		if err != nil {
			// An empty ledger over-reports availability until an
			// operator reloads; submissions still relay correctly.
			log.Error("Ledger seed from sheet failed, starting empty: %v", err)
		} else {
			bookingLedger.Replace(entries)
			ledgerMetrics.SetLedgerSize(bookingLedger.Len())
			log.Info("Ledger seeded with %d entries", len(entries))
		}
	}

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingLedger, log)
	createBookingUseCase := createBookingUC.NewUseCase(bookingLedger, sheets, bookingMetrics, log)

	// Handlers
	getOfferings := getOfferingsHandler.NewHandler(log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	reloadLedger := reloadLedgerHandler.NewHandler(bookingLedger, sheets, ledgerMetrics, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/offerings", getOfferings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/offerings/{offeringId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/ledger/reload", reloadLedger.Handle).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
