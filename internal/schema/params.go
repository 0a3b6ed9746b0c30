package schema

type GenerateRoutesParams struct {
	DepartureCity string `json:"departureCity"`
	ArrivalCity   string `json:"arrivalCity"`
	Dates         any    `json:"dates"`
	FlightType    string `json:"flightType"`
}

type ConfirmBookingParams struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	DepartureCity string `json:"departureCity"`
	ArrivalCity   string `json:"arrivalCity"`
	TotalTime     string `json:"totalTime"`
	NumStops      any    `json:"numStops"`
}

type BookingInfoParams struct {
	Email string `json:"email"`
}
