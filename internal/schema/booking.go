package schema

// Booking holds the fields submitted at confirmation time plus the generated
// confirmation code. Values are stored as supplied by the caller.
type Booking struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	DepartureCity    string `json:"departureCity"`
	ArrivalCity      string `json:"arrivalCity"`
	TotalTime        string `json:"totalTime"`
	NumStops         any    `json:"numStops"`
	ConfirmationCode string `json:"confirmationCode"`
}

// BookingDocument is the single JSON object holding every booking, keyed by
// the email it was confirmed under. Emails are used as-is, not normalized.
type BookingDocument map[string]Booking
