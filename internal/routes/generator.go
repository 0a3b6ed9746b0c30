package routes

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"bitbucket.org/crgw/flight-hub/internal/catalog"
	"bitbucket.org/crgw/flight-hub/internal/schema"
)

const (
	batchSize = 10
	maxStops  = 2

	// Intermediate stops are always drawn from domestic airports.
	stopoverCountry = "United States"
)

var airlineNames = []string{
	"Alaska Airlines",
	"Delta Airlines",
	"JetBlue",
	"United Airlines",
}

// Generator assembles synthetic route batches from the airport catalog. It
// keeps no state between calls; every call draws from a fresh random source,
// so concurrent use needs no locking.
type Generator struct {
	catalog *catalog.Catalog
	source  func() *rand.Rand
}

type GeneratorOption func(*Generator)

// WithRandSource replaces the per-call random source. Tests use it to make
// batches deterministic.
func WithRandSource(source func() *rand.Rand) GeneratorOption {
	return func(g *Generator) {
		g.source = source
	}
}

func NewGenerator(c *catalog.Catalog, opts ...GeneratorOption) *Generator {
	generator := &Generator{
		catalog: c,
		source: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
	for _, opt := range opts {
		opt(generator)
	}

	return generator
}

// OneWay builds a batch of ten routes between the two endpoints. The dates
// value is opaque and passed through to every route unchanged.
func (g *Generator) OneWay(departure, arrival Endpoint, dates any) []schema.Route {
	rng := g.source()
	pool := g.stopoverPool(departure, arrival)

	batch := make([]schema.Route, 0, batchSize)
	for i := 0; i < batchSize; i++ {
		batch = append(batch, g.buildRoute(rng, pool, departure, arrival, dates))
	}

	return batch
}

// RoundTrip is the outbound batch followed by the return batch, twenty
// routes in total.
func (g *Generator) RoundTrip(departure, arrival Endpoint, dates any) []schema.Route {
	batch := g.OneWay(departure, arrival, dates)

	return append(batch, g.OneWay(arrival, departure, dates)...)
}

// stopoverPool lists candidate intermediate cities as "<name>-<code>"
// entries, excluding both endpoints.
func (g *Generator) stopoverPool(departure, arrival Endpoint) []string {
	pool := []string{}
	for _, airport := range g.catalog.Airports() {
		if airport.Country != stopoverCountry {
			continue
		}
		if airport.LocationName == departure.Name || airport.LocationName == arrival.Name {
			continue
		}
		pool = append(pool, airport.LocationName+"-"+airport.IATACode)
	}

	return pool
}

func (g *Generator) buildRoute(rng *rand.Rand, pool []string, departure, arrival Endpoint, dates any) schema.Route {
	stops := drawStops(rng, pool)

	stopLegs := make([]schema.RouteLeg, 0, len(stops))
	stopCodes := []string{}
	for _, stop := range stops {
		code := strings.TrimSpace(strings.Split(stop, "-")[1])
		stopLegs = append(stopLegs, schema.RouteLeg{
			City:     stop,
			IATACode: code,
		})
		if len(code) == 3 {
			stopCodes = append(stopCodes, code)
		}
	}

	arrivalTime := randomClock(rng)

	// The boarding meridiem is always "PM" regardless of the hour drawn.
	// Clients re-derive the advertised total from this string, so the
	// suffix stays fixed.
	boardingTime := fmt.Sprintf("%d:00 PM", rng.Intn(12))

	return schema.Route{
		AirlineName: airlineNames[rng.Intn(len(airlineNames))],
		Departure: schema.RouteLeg{
			City:     departure.Label(),
			IATACode: departure.Code,
			Time:     randomClock(rng),
		},
		Stops: stopLegs,
		Arrival: schema.RouteLeg{
			City:     arrival.Label(),
			IATACode: arrival.Code,
			Time:     arrivalTime,
		},
		BoardingTime:          boardingTime,
		TotalCost:             fmt.Sprintf("$%d", 300+rng.Intn(100)),
		Dates:                 dates,
		TotalStops:            len(stopLegs),
		IntermediateIATACodes: strings.Join(stopCodes, ","),
		TotalTime:             wallClockDifference(boardingTime, arrivalTime),
	}
}

// drawStops shuffles the pool and keeps between one and maxStops entries.
// An empty pool yields zero stops.
func drawStops(rng *rand.Rand, pool []string) []string {
	limit := maxStops
	if len(pool) < limit {
		limit = len(pool)
	}
	if limit == 0 {
		return nil
	}

	count := rng.Intn(limit) + 1

	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:count]
}

// randomClock draws an "H:MM AM/PM" time with an hour in 0..11.
func randomClock(rng *rand.Rand) string {
	meridiem := "AM"
	if rng.Intn(2) == 1 {
		meridiem = "PM"
	}

	return fmt.Sprintf("%d:%02d %s", rng.Intn(12), rng.Intn(60), meridiem)
}

// wallClockDifference renders the absolute difference between two clock
// readings on the same calendar date as "<hours>h <minutes>m".
func wallClockDifference(from, to string) string {
	difference := minutesOfDay(to) - minutesOfDay(from)
	if difference < 0 {
		difference = -difference
	}

	return fmt.Sprintf("%dh %dm", difference/60, difference%60)
}

func minutesOfDay(clock string) int {
	var hour, minute int
	var meridiem string
	fmt.Sscanf(clock, "%d:%d %s", &hour, &minute, &meridiem)

	minutes := (hour%12)*60 + minute
	if meridiem == "PM" {
		minutes += 12 * 60
	}

	return minutes
}
