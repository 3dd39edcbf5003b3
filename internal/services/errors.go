// Package services defines the business logic for art transformations and
// RSVP submissions. This file centralizes common service-level error values
// so that they can be consistently returned by service methods and checked
// by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler layer.
package services

import "errors"

// Art-related errors.
var (
	// ErrMissingImage is returned when a transform request carries no photo
	// payload.
	ErrMissingImage = errors.New("image is required")

	// ErrRateLimited is returned when a client exhausted its transform
	// allowance for the current window.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// RSVP-related errors.
var (
	// ErrEmptyGuestName is returned when an RSVP carries no guest name.
	ErrEmptyGuestName = errors.New("guest name is empty")

	// ErrNameTooLong is returned when the guest name exceeds the maximum
	// configured length limit.
	ErrNameTooLong = errors.New("guest name too long")

	// ErrInvalidAttendance is returned when the attendance value is outside
	// the allowed set (pending, attending, declined).
	ErrInvalidAttendance = errors.New("attendance must be pending, attending or declined")

	// ErrInvalidGuestCount is returned when the requested seat count is
	// outside 1..10.
	ErrInvalidGuestCount = errors.New("guest count must be between 1 and 10")

	// ErrMessageTooLong is returned when the wishes text exceeds the maximum
	// configured length limit.
	ErrMessageTooLong = errors.New("message too long")
)
