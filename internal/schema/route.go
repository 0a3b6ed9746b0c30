package schema

// RouteLeg is one point of a generated route. Stop legs carry no time.
type RouteLeg struct {
	City     string `json:"city"`
	IATACode string `json:"iataCode"`
	Time     string `json:"time,omitempty"`
}

// Route is a synthetic one-way itinerary. Routes are assembled per request
// and never persisted.
type Route struct {
	AirlineName           string     `json:"airlineName"`
	Departure             RouteLeg   `json:"departure"`
	Stops                 []RouteLeg `json:"stops"`
	Arrival               RouteLeg   `json:"arrival"`
	BoardingTime          string     `json:"boardingTime"`
	TotalCost             string     `json:"totalCost"`
	Dates                 any        `json:"dates"`
	TotalStops            int        `json:"totalStops"`
	IntermediateIATACodes string     `json:"intermediateIataCodes"`
	TotalTime             string     `json:"totalTime"`
}
