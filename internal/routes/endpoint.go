package routes

import (
	"fmt"
	"strings"

	"bitbucket.org/crgw/flight-hub/internal/schema"
)

// Endpoint is a route end parsed from the frontend's "<name>-<CODE>" label.
// Parsing happens once at the API boundary so the generator never deals with
// raw labels.
type Endpoint struct {
	Name string
	Code string
}

func ParseEndpoint(label string) (Endpoint, error) {
	parts := strings.Split(label, "-")
	if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
		return Endpoint{}, fmt.Errorf("%w: %q", schema.ErrInvalidRouteEndpoint, label)
	}

	return Endpoint{
		Name: parts[0],
		Code: strings.TrimSpace(parts[1]),
	}, nil
}

// Label restores the wire form the frontend submitted.
func (e Endpoint) Label() string {
	return e.Name + "-" + e.Code
}
