// Package services – ArtService
//
// This file implements ArtService, the application-level component that
// brokers photo stylization requests. It enforces the per-client fixed-window
// allowance, validates the payload, resolves the style instruction, and
// delegates the actual generation to the art gateway client.
//
// Ordering matters and mirrors the endpoint contract: the rate-limit check
// runs before payload validation, so a flooding client sees 429 even for
// malformed bodies; a missing image never consumes upstream budget.
//
// Observability: requests are traced with OpenTelemetry and counted by style
// and outcome in Prometheus.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dirgantara/undangan-backend/internal/art"
	"github.com/dirgantara/undangan-backend/internal/ratelimit"
)

var artTransforms = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "art_transforms_total",
		Help: "Art transform requests by style and outcome.",
	},
	[]string{"style", "outcome"},
)

func init() {
	prometheus.MustRegister(artTransforms)
}

// Transformer is the upstream contract consumed by ArtService.
// *art.Client satisfies it.
type Transformer interface {
	Transform(ctx context.Context, instruction, imageData string) (string, error)
}

// ArtService coordinates throttling, validation, and the upstream call.
type ArtService struct {
	// Limiter throttles transforms per client identity.
	Limiter ratelimit.Limiter
	// Upstream generates the stylized image.
	Upstream Transformer
}

// NewArtService constructs an ArtService over the given limiter and upstream.
func NewArtService(l ratelimit.Limiter, up Transformer) *ArtService {
	return &ArtService{Limiter: l, Upstream: up}
}

// Transform runs the full brokering sequence for one request and returns the
// generated image reference.
//
// Error values: ErrRateLimited (local throttle), ErrMissingImage (empty
// payload), and the art package's upstream errors, all matchable with
// errors.Is.
func (s *ArtService) Transform(ctx context.Context, clientID, imageData, style string) (string, error) {
	tr := otel.Tracer("services/ArtService")
	ctx, span := tr.Start(ctx, "Transform",
		trace.WithAttributes(
			attribute.String("art.style", style),
			attribute.String("client.id", clientID),
		),
	)
	defer span.End()

	if ok, resetAt := s.Limiter.Allow(clientID); !ok {
		log.Warn().
			Str("client_id", clientID).
			Time("reset_at", resetAt).
			Msg("art transform rate limited")
		artTransforms.WithLabelValues(labelStyle(style), "rate_limited").Inc()
		return "", ErrRateLimited
	}

	if imageData == "" {
		artTransforms.WithLabelValues(labelStyle(style), "bad_request").Inc()
		return "", ErrMissingImage
	}

	instruction := art.Instruction(style)
	log.Info().
		Str("style", labelStyle(style)).
		Str("client_id", clientID).
		Msg("transforming image")

	start := time.Now()
	image, err := s.Upstream.Transform(ctx, instruction, imageData)
	if err != nil {
		artTransforms.WithLabelValues(labelStyle(style), outcomeLabel(err)).Inc()
		return "", err
	}

	log.Info().
		Str("client_id", clientID).
		Dur("elapsed", time.Since(start)).
		Msg("art gateway response received")
	artTransforms.WithLabelValues(labelStyle(style), "ok").Inc()
	return image, nil
}

// labelStyle keeps metric cardinality bounded: only catalog styles become
// label values, everything else collapses into the default.
func labelStyle(style string) string {
	for _, s := range art.Styles() {
		if s == style {
			return style
		}
	}
	return art.DefaultStyle
}

// outcomeLabel maps upstream errors onto the metric outcome label.
func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, art.ErrUpstreamRateLimited):
		return "upstream_rate_limited"
	case errors.Is(err, art.ErrUpstreamQuota):
		return "upstream_quota"
	case errors.Is(err, art.ErrNoImage):
		return "no_image"
	case errors.Is(err, art.ErrNotConfigured):
		return "not_configured"
	default:
		return "upstream_error"
	}
}
