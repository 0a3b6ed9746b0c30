package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed airports.json
var rawAirports []byte

type Airport struct {
	IATACode     string `json:"iataCode"`
	LocationName string `json:"locationName"`
	Country      string `json:"country"`
}

type City struct {
	City     string `json:"city"`
	IATACode string `json:"iataCode"`
}

// Catalog is the static airport reference dataset. It is loaded once at
// startup and never mutated afterwards, so lookups need no locking.
type Catalog struct {
	airports []Airport
}

// Load parses the embedded dataset.
func Load() (*Catalog, error) {
	var airports []Airport
	if err := json.Unmarshal(rawAirports, &airports); err != nil {
		return nil, fmt.Errorf("parse airports dataset: %w", err)
	}

	return New(airports), nil
}

func New(airports []Airport) *Catalog {
	return &Catalog{airports: airports}
}

func (c *Catalog) Airports() []Airport {
	return c.airports
}

// IATACodes returns every airport code in catalog order.
func (c *Catalog) IATACodes() []string {
	codes := make([]string, 0, len(c.airports))
	for _, airport := range c.airports {
		codes = append(codes, airport.IATACode)
	}

	return codes
}

// Countries returns each distinct country once, in first-seen order.
func (c *Catalog) Countries() []string {
	seen := make(map[string]bool, len(c.airports))
	countries := []string{}
	for _, airport := range c.airports {
		if seen[airport.Country] {
			continue
		}
		seen[airport.Country] = true
		countries = append(countries, airport.Country)
	}

	return countries
}

// Cities returns the cities of every airport whose country matches exactly.
// Unknown countries yield an empty list.
func (c *Catalog) Cities(country string) []City {
	cities := []City{}
	for _, airport := range c.airports {
		if airport.Country != country {
			continue
		}
		cities = append(cities, City{
			City:     airport.LocationName,
			IATACode: airport.IATACode,
		})
	}

	return cities
}
