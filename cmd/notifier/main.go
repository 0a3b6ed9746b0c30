package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"bitbucket.org/crgw/flight-hub/internal/notify"
	"bitbucket.org/crgw/flight-hub/internal/tools/logging"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
)

// The notifier tails the booking events topic and sends confirmation emails
// out of band, so the API never waits on delivery.
func main() {
	_ = godotenv.Load(".env")
	log := logging.New(os.Getenv("LOG_LEVEL"))

	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		log.Fatal().Msg("KAFKA_BROKERS is required")
	}

	groupID := os.Getenv("KAFKA_GROUP_ID")
	if groupID == "" {
		groupID = "flight-hub-notifier"
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := notify.NewConsumer(strings.Split(brokers, ","), groupID, os.Getenv("KAFKA_BOOKINGS_TOPIC"))
	defer consumer.Close()

	sender := notify.NewEmailSender(log)

	log.Info().Msg("Notifier consuming booking events")

	err := consumer.Consume(ctx, func(ctx context.Context, msg kafka.Message) error {
		var event notify.BookingEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.
				Warn().
				Err(err).
				Msg("Skipping undecodable booking event")
			return nil
		}

		return sender.Send(ctx, event)
	})
	if err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("Consumer failed")
	}

	log.Info().Msg("Notifier stopped")
}
