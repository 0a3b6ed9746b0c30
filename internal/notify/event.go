package notify

// BookingEvent is the payload published after a booking is confirmed and
// consumed by the notifier worker.
type BookingEvent struct {
	Type             string `json:"type"`
	Email            string `json:"email"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	DepartureCity    string `json:"departureCity"`
	ArrivalCity      string `json:"arrivalCity"`
	ConfirmationCode string `json:"confirmationCode"`
}

const EventBookingConfirmed = "booking_confirmed"
