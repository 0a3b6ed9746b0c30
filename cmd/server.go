//go:build !integration

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"bitbucket.org/crgw/flight-hub/internal/booking"
	"bitbucket.org/crgw/flight-hub/internal/catalog"
	"bitbucket.org/crgw/flight-hub/internal/notify"
	"bitbucket.org/crgw/flight-hub/internal/routes"
	"bitbucket.org/crgw/flight-hub/internal/tools/logging"
	"bitbucket.org/crgw/flight-hub/internal/tools/redisfactory"
	"bitbucket.org/crgw/flight-hub/internal/web"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func serverApp(httpServer *http.Server, logger *zerolog.Logger) int {
	shutdown := false
	done := make(chan error, 1)
	stop := make(chan os.Signal, 1)
	go func() {
		logger.
			Info().
			Msg("Listening on address " + httpServer.Addr)
		done <- httpServer.ListenAndServe()
	}()
	go func() {
		// Wait for stop
		<-stop
		shutdown = true
		logger.Info().Msg("Shutting down server...")
		_ = httpServer.Shutdown(context.Background())
	}()

	// Notify stop channel if SIGINT or SIGTERM is received
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	err := <-done
	if err != nil && !shutdown {
		logger.
			Error().
			Err(err).
			Msg("Server failed")
		return 1
	}
	return 0
}

func main() {
	_ = godotenv.Load(".env")
	log := logging.New(os.Getenv("LOG_LEVEL"))

	airports, err := catalog.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load airport catalog")
	}

	redisFactory := redisfactory.New()

	documentKey := os.Getenv("BOOKINGS_DOCUMENT_KEY")
	if documentKey == "" {
		documentKey = "bookings"
	}
	store := booking.NewRedisStore(redisFactory.BookingsClient(), documentKey)

	var producer *notify.Producer
	serviceOpts := []booking.ServiceOption{}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		producer = notify.NewProducer(strings.Split(brokers, ","))
		serviceOpts = append(serviceOpts, booking.WithProducer(producer, os.Getenv("KAFKA_BOOKINGS_TOPIC")))
	}

	bookings := booking.NewService(store, serviceOpts...)
	generator := routes.NewGenerator(airports)

	appRouter := web.SetupRouter(log, airports, generator, bookings)

	var host string
	if os.Getenv("TEST") == "true" {
		host = "localhost"
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", host, os.Getenv("PORT")),
		Handler: appRouter,
	}

	exitCode := serverApp(httpServer, log)
	if producer != nil {
		_ = producer.Close()
	}
	os.Exit(exitCode)
}
