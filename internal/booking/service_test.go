package booking_test

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"

	"bitbucket.org/crgw/flight-hub/internal/booking"
	"bitbucket.org/crgw/flight-hub/internal/notify"
	"bitbucket.org/crgw/flight-hub/internal/schema"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

type fakeStore struct {
	document schema.BookingDocument
	storeErr error
	onFetch  func()
}

func (f *fakeStore) Fetch(ctx context.Context) (schema.BookingDocument, error) {
	// Hand out a copy, like a remote read would.
	snapshot := schema.BookingDocument{}
	for email, b := range f.document {
		snapshot[email] = b
	}

	// onFetch models another writer landing between this read and the
	// matching store.
	if f.onFetch != nil {
		f.onFetch()
	}

	return snapshot, nil
}

func (f *fakeStore) Store(ctx context.Context, document schema.BookingDocument) error {
	if f.storeErr != nil {
		return f.storeErr
	}
	f.document = document

	return nil
}

type fakeProducer struct {
	published []notify.BookingEvent
	topics    []string
	err       error
}

func (f *fakeProducer) Publish(ctx context.Context, topic, key string, value any) error {
	if f.err != nil {
		return f.err
	}
	f.topics = append(f.topics, topic)
	f.published = append(f.published, value.(notify.BookingEvent))

	return nil
}

func confirmParams() schema.ConfirmBookingParams {
	return schema.ConfirmBookingParams{
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Email:         "ada@example.com",
		DepartureCity: "New York-JFK",
		ArrivalCity:   "Los Angeles-LAX",
		TotalTime:     "5h 30m",
		NumStops:      "1",
	}
}

func TestConfirm(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	t.Run("should store the booking keyed by email and return a code", func(t *testing.T) {
		store := &fakeStore{}
		service := booking.NewService(store)

		code, err := service.Confirm(context.Background(), confirmParams(), &log)

		assert.Nil(t, err)
		assert.Regexp(t, codePattern, code)

		stored, ok := store.document["ada@example.com"]
		assert.True(t, ok)
		assert.Equal(t, "Ada", stored.FirstName)
		assert.Equal(t, "Lovelace", stored.LastName)
		assert.Equal(t, "New York-JFK", stored.DepartureCity)
		assert.Equal(t, "Los Angeles-LAX", stored.ArrivalCity)
		assert.Equal(t, "5h 30m", stored.TotalTime)
		assert.Equal(t, "1", stored.NumStops)
		assert.Equal(t, code, stored.ConfirmationCode)
	})

	t.Run("should keep bookings for other emails", func(t *testing.T) {
		store := &fakeStore{}
		service := booking.NewService(store)

		first := confirmParams()
		second := confirmParams()
		second.Email = "grace@example.com"
		second.FirstName = "Grace"

		_, err := service.Confirm(context.Background(), first, &log)
		assert.Nil(t, err)
		_, err = service.Confirm(context.Background(), second, &log)
		assert.Nil(t, err)

		assert.Len(t, store.document, 2)
	})

	t.Run("should overwrite a previous booking for the same email", func(t *testing.T) {
		store := &fakeStore{}
		service := booking.NewService(store)

		firstCode, err := service.Confirm(context.Background(), confirmParams(), &log)
		assert.Nil(t, err)
		secondCode, err := service.Confirm(context.Background(), confirmParams(), &log)
		assert.Nil(t, err)

		assert.Len(t, store.document, 1)
		assert.NotEqual(t, firstCode, store.document["ada@example.com"].ConfirmationCode)
		assert.Equal(t, secondCode, store.document["ada@example.com"].ConfirmationCode)
	})

	t.Run("should name every missing field", func(t *testing.T) {
		tests := []struct {
			name     string
			mutate   func(*schema.ConfirmBookingParams)
			expected []string
		}{
			{
				"first name only",
				func(p *schema.ConfirmBookingParams) { p.FirstName = "" },
				[]string{"First Name"},
			},
			{
				"several fields",
				func(p *schema.ConfirmBookingParams) {
					p.LastName = ""
					p.Email = ""
					p.TotalTime = ""
				},
				[]string{"Last Name", "Email", "Time"},
			},
			{
				"absent stop count",
				func(p *schema.ConfirmBookingParams) { p.NumStops = nil },
				[]string{"Stops"},
			},
			{
				"zero stop count counts as absent",
				func(p *schema.ConfirmBookingParams) { p.NumStops = float64(0) },
				[]string{"Stops"},
			},
			{
				"everything",
				func(p *schema.ConfirmBookingParams) { *p = schema.ConfirmBookingParams{} },
				[]string{"First Name", "Last Name", "Email", "Departure", "Arrival", "Time", "Stops"},
			},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				store := &fakeStore{}
				service := booking.NewService(store)

				params := confirmParams()
				test.mutate(&params)

				_, err := service.Confirm(context.Background(), params, &log)

				var missing *schema.MissingFieldsError
				assert.ErrorAs(t, err, &missing)
				assert.Equal(t, test.expected, missing.Fields)
				assert.Empty(t, store.document)
			})
		}
	})

	t.Run("should accept a numeric stop count", func(t *testing.T) {
		store := &fakeStore{}
		service := booking.NewService(store)

		params := confirmParams()
		params.NumStops = float64(2)

		_, err := service.Confirm(context.Background(), params, &log)

		assert.Nil(t, err)
		assert.Equal(t, float64(2), store.document["ada@example.com"].NumStops)
	})

	t.Run("should surface store write failures", func(t *testing.T) {
		store := &fakeStore{storeErr: errors.New("read only replica")}
		service := booking.NewService(store)

		_, err := service.Confirm(context.Background(), confirmParams(), &log)

		assert.NotNil(t, err)
	})

	t.Run("should publish a booking confirmed event", func(t *testing.T) {
		store := &fakeStore{}
		producer := &fakeProducer{}
		service := booking.NewService(store, booking.WithProducer(producer, "bookings.events"))

		code, err := service.Confirm(context.Background(), confirmParams(), &log)

		assert.Nil(t, err)
		assert.Equal(t, []string{"bookings.events"}, producer.topics)
		assert.Len(t, producer.published, 1)
		assert.Equal(t, notify.EventBookingConfirmed, producer.published[0].Type)
		assert.Equal(t, "ada@example.com", producer.published[0].Email)
		assert.Equal(t, code, producer.published[0].ConfirmationCode)
	})

	t.Run("should not fail the booking when publishing fails", func(t *testing.T) {
		store := &fakeStore{}
		producer := &fakeProducer{err: errors.New("broker unreachable")}
		service := booking.NewService(store, booking.WithProducer(producer, "bookings.events"))

		_, err := service.Confirm(context.Background(), confirmParams(), &log)

		assert.Nil(t, err)
		assert.NotEmpty(t, store.document)
	})

	t.Run("demonstrates the lost update window", func(t *testing.T) {
		// A writer that sneaks in between another writer's fetch and store
		// gets its booking dropped. The store has no compare-and-swap; this
		// pins the documented behavior rather than blessing it.
		store := &fakeStore{}
		service := booking.NewService(store)

		interleaved := false
		store.onFetch = func() {
			if interleaved {
				return
			}
			interleaved = true

			params := confirmParams()
			params.Email = "grace@example.com"
			_, err := service.Confirm(context.Background(), params, &log)
			assert.Nil(t, err)
		}

		_, err := service.Confirm(context.Background(), confirmParams(), &log)
		assert.Nil(t, err)

		_, kept := store.document["ada@example.com"]
		_, lost := store.document["grace@example.com"]
		assert.True(t, kept)
		assert.False(t, lost)
	})
}

func TestLookup(t *testing.T) {
	t.Run("should return the booking stored under the email", func(t *testing.T) {
		store := &fakeStore{document: schema.BookingDocument{
			"ada@example.com": {FirstName: "Ada", ConfirmationCode: "A1B2C3"},
		}}
		service := booking.NewService(store)

		found, err := service.Lookup(context.Background(), "ada@example.com")

		assert.Nil(t, err)
		assert.Equal(t, "A1B2C3", found.ConfirmationCode)
	})

	t.Run("should fail with not found for unknown emails", func(t *testing.T) {
		store := &fakeStore{}
		service := booking.NewService(store)

		_, err := service.Lookup(context.Background(), "nobody@example.com")

		assert.ErrorIs(t, err, schema.ErrBookingNotFound)
	})

	t.Run("should find a booking right after confirming it", func(t *testing.T) {
		out := &bytes.Buffer{}
		log := zerolog.New(out)

		store := &fakeStore{}
		service := booking.NewService(store)

		code, err := service.Confirm(context.Background(), confirmParams(), &log)
		assert.Nil(t, err)

		found, err := service.Lookup(context.Background(), "ada@example.com")
		assert.Nil(t, err)
		assert.Equal(t, code, found.ConfirmationCode)
		assert.Equal(t, "Ada", found.FirstName)
	})
}
