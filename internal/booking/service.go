package booking

import (
	"context"
	"math/rand"
	"time"

	"bitbucket.org/crgw/flight-hub/internal/notify"
	"bitbucket.org/crgw/flight-hub/internal/schema"
	"github.com/rs/zerolog"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 6
)

type Producer interface {
	Publish(ctx context.Context, topic, key string, value any) error
}

// Service validates booking requests and orchestrates the document store.
type Service struct {
	store    DocumentStore
	producer Producer
	topic    string
	code     func() string
}

type ServiceOption func(*Service)

// WithProducer enables booking-confirmed events on the given topic.
func WithProducer(producer Producer, topic string) ServiceOption {
	return func(s *Service) {
		s.producer = producer
		s.topic = topic
	}
}

// WithCodeGenerator replaces the confirmation code source. Tests use it to
// pin codes.
func WithCodeGenerator(code func() string) ServiceOption {
	return func(s *Service) {
		s.code = code
	}
}

func NewService(store DocumentStore, opts ...ServiceOption) *Service {
	service := &Service{
		store: store,
		code:  generateCode,
	}
	for _, opt := range opts {
		opt(service)
	}

	return service
}

// Confirm validates the submitted fields, generates a confirmation code and
// upserts the booking keyed by email. Codes are drawn fresh every time and
// are not checked for collisions against the rest of the document.
func (s *Service) Confirm(ctx context.Context, params schema.ConfirmBookingParams, logger *zerolog.Logger) (string, error) {
	if err := validate(params); err != nil {
		return "", err
	}

	code := s.code()

	document, err := s.store.Fetch(ctx)
	if err != nil {
		document = schema.BookingDocument{}
	}

	document[params.Email] = schema.Booking{
		FirstName:        params.FirstName,
		LastName:         params.LastName,
		DepartureCity:    params.DepartureCity,
		ArrivalCity:      params.ArrivalCity,
		TotalTime:        params.TotalTime,
		NumStops:         params.NumStops,
		ConfirmationCode: code,
	}

	if err := s.store.Store(ctx, document); err != nil {
		return "", err
	}

	s.publishConfirmed(ctx, params, code, logger)

	return code, nil
}

// Lookup returns the booking stored under the given email.
func (s *Service) Lookup(ctx context.Context, email string) (schema.Booking, error) {
	document, err := s.store.Fetch(ctx)
	if err != nil {
		return schema.Booking{}, err
	}

	booking, ok := document[email]
	if !ok {
		return schema.Booking{}, schema.ErrBookingNotFound
	}

	return booking, nil
}

// All returns the whole booking document.
func (s *Service) All(ctx context.Context) (schema.BookingDocument, error) {
	return s.store.Fetch(ctx)
}

func (s *Service) publishConfirmed(ctx context.Context, params schema.ConfirmBookingParams, code string, logger *zerolog.Logger) {
	if s.producer == nil || s.topic == "" {
		return
	}

	event := notify.BookingEvent{
		Type:             notify.EventBookingConfirmed,
		Email:            params.Email,
		FirstName:        params.FirstName,
		LastName:         params.LastName,
		DepartureCity:    params.DepartureCity,
		ArrivalCity:      params.ArrivalCity,
		ConfirmationCode: code,
	}

	// Notification delivery never fails the booking itself.
	if err := s.producer.Publish(ctx, s.topic, params.Email, event); err != nil {
		logger.
			Warn().
			Err(err).
			Str("email", params.Email).
			Msg("Failed to publish booking event")
	}
}

func validate(params schema.ConfirmBookingParams) error {
	missing := []string{}
	if params.FirstName == "" {
		missing = append(missing, "First Name")
	}
	if params.LastName == "" {
		missing = append(missing, "Last Name")
	}
	if params.Email == "" {
		missing = append(missing, "Email")
	}
	if params.DepartureCity == "" {
		missing = append(missing, "Departure")
	}
	if params.ArrivalCity == "" {
		missing = append(missing, "Arrival")
	}
	if params.TotalTime == "" {
		missing = append(missing, "Time")
	}
	if missingValue(params.NumStops) {
		missing = append(missing, "Stops")
	}

	if len(missing) > 0 {
		return &schema.MissingFieldsError{Fields: missing}
	}

	return nil
}

// missingValue treats absent, empty and zero stop counts as not supplied.
func missingValue(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case float64:
		return value == 0
	default:
		return false
	}
}

func generateCode() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	code := make([]byte, codeLength)
	for i := range code {
		code[i] = codeAlphabet[rng.Intn(len(codeAlphabet))]
	}

	return string(code)
}
