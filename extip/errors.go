package extip

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchFailure marks an attempt that produced no address: a transport
	// error, an unreadable body or a body without an IPv4 address.
	ErrFetchFailure = errors.New("extip: fetch failed")

	// ErrNoAddress is wrapped together with ErrFetchFailure when the response
	// body did not contain an IPv4 address.
	ErrNoAddress = errors.New("extip: no IPv4 address in response")

	// ErrAttemptTimeout marks an attempt abandoned at its deadline.
	ErrAttemptTimeout = errors.New("extip: attempt timed out")

	// ErrMaxAttemptsExceeded is returned when every selected candidate failed.
	ErrMaxAttemptsExceeded = errors.New("extip: max attempts exceeded")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("extip: invalid config")
)

// AttemptError ties an attempt failure to the endpoint that caused it.
type AttemptError struct {
	Endpoint string
	Err      error
}

func (e *AttemptError) Error() string {
	return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
}

func (e *AttemptError) Unwrap() error {
	return e.Err
}
