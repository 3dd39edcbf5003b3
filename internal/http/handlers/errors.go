// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// This file centralizes symbolic error code constants that are mapped to HTTP responses
// (via the `fail()` helper in this package). These codes provide clients with a stable,
// machine-readable error taxonomy that supplements human-readable messages.
//
// Conventions:
//   - Codes are lowercase, snake_case, and domain-agnostic unless explicitly noted.
//   - Generic codes (e.g., bad_request, not_found) mirror common HTTP status
//     semantics to aid interoperability.
//   - Upstream codes (upstream_rate_limited, upstream_quota_exhausted,
//     upstream_error, no_image_produced) distinguish external gateway
//     conditions from local throttling so the page can phrase the retry hint
//     correctly.
//   - All error responses must include both an HTTP status and one of these codes.
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "too_many_requests",
//	  "message": "Terlalu banyak permintaan. Coba lagi dalam 1 menit."
//	}
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Art gateway:
	ErrCodeUpstreamRateLimited = "upstream_rate_limited"
	ErrCodeUpstreamQuota       = "upstream_quota_exhausted"
	ErrCodeUpstreamError       = "upstream_error"
	ErrCodeNoImage             = "no_image_produced"

	// RSVP:
	ErrCodeInvalidRSVP = "invalid_rsvp"
)
