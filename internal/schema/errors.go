package schema

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRouteEndpoint = errors.New("route endpoint must be in <name>-<code> form")
	ErrBookingNotFound      = errors.New("booking not found for the provided email")
	ErrMissingEmail         = errors.New("missing email in the request payload")
)

// MissingFieldsError names every absent booking field, not just the first.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Missing information: " + strings.Join(e.Fields, ", ")
}
