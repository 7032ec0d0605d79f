// Typed failures of the weather lookup. Callers branch with errors.As;
// user-facing wording lives with the caller.
package weather

import "fmt"

// AuthError reports a rejected API key (HTTP 401).
type AuthError struct{}

func (e *AuthError) Error() string {
	return "openweather: api key rejected"
}

// NotFoundError reports an unknown city (HTTP 404). City is the lookup
// argument exactly as the caller passed it.
type NotFoundError struct {
	City string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("openweather: city %q not found", e.City)
}

// StatusError reports any other non-2xx response.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openweather: unexpected status %s", e.Status)
}

// NetworkError reports a failed round trip.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("openweather: request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a response body that could not be interpreted.
type ParseError struct {
	Field string // set when a required field was missing
	Err   error  // set when decoding failed
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("openweather: response missing %q", e.Field)
	}
	return fmt.Sprintf("openweather: decode response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
