package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// EmailSender renders confirmation mails. Delivery is log-only; there is no
// SMTP integration yet.
type EmailSender struct {
	log *zerolog.Logger
}

func NewEmailSender(log *zerolog.Logger) *EmailSender {
	logger := log.With().Str("label", "email").Logger()

	return &EmailSender{log: &logger}
}

func (s *EmailSender) Send(ctx context.Context, event BookingEvent) error {
	s.log.Info().
		Str("email", event.Email).
		Str("type", event.Type).
		Str("confirmationCode", event.ConfirmationCode).
		Str("departureCity", event.DepartureCity).
		Str("arrivalCity", event.ArrivalCity).
		Msg("Sending booking confirmation email")

	return nil
}
