// Art HTTP handler.
//
// This file exposes the photo stylization endpoint:
//   - POST /art/transform   (stylize a guest photo via the upstream gateway)
//
// The handler is transport-thin: it derives the client identity, passes the
// payload to the art service, and translates service errors into the HTTP
// error taxonomy. The JSON bind is deliberately lenient: a malformed body
// becomes an empty payload so the service's rate-limit check still runs first
// and a flooding client sees 429 even for garbage requests.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dirgantara/undangan-backend/internal/art"
	"github.com/dirgantara/undangan-backend/internal/http/middleware"
	"github.com/dirgantara/undangan-backend/internal/services"
)

// ArtService brokers photo stylization requests.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ArtService interface {
	// Transform throttles, validates, and forwards one stylization request,
	// returning the generated image reference.
	Transform(ctx context.Context, clientID, imageData, style string) (string, error)
}

// TransformRequest is the JSON payload for a stylization request.
type TransformRequest struct {
	// ImageData is the guest photo as a data URL or base64 string. Required.
	ImageData string `json:"imageData" example:"data:image/jpeg;base64,/9j/4AAQ..."`
	// Style selects an entry from the style catalog; unknown or empty values
	// fall back to the default style.
	Style string `json:"style" example:"watercolor"`
}

// TransformResponse is the JSON body for a successful stylization.
type TransformResponse struct {
	// Image is the generated image reference (data URL or URL).
	Image string `json:"image" example:"data:image/png;base64,iVBOR..."`
}

// TransformArt godoc
// @ID          transformArt
// @Summary     Stylize a guest photo
// @Description Applies the selected art style to the uploaded photo via the AI gateway. Limited to a fixed number of requests per client per minute.
// @Tags        Art
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.TransformRequest  true  "Photo and style"
//
// @Success     200  {object}  handlers.TransformResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing photo payload"
// @Failure     402  {object}  handlers.ErrorResponse  "Upstream quota exhausted"
// @Failure     429  {object}  handlers.ErrorResponse  "Local or upstream rate limit"
// @Failure     500  {object}  handlers.ErrorResponse  "Upstream failure or internal error"
// @Router      /art/transform [post]
func (h *Handlers) TransformArt(c *gin.Context) {
	var req TransformRequest
	// Bind errors are ignored on purpose: the service validates the payload
	// after the rate-limit check, per the endpoint contract.
	_ = c.ShouldBindJSON(&req)

	clientID := middleware.ClientIDFrom(c)

	image, err := h.artSvc.Transform(c.Request.Context(), clientID, req.ImageData, req.Style)
	if err != nil {
		status, code := artErrorStatus(err)
		if status == http.StatusTooManyRequests {
			c.Header("Retry-After", "60")
		}
		failLocalized(c, status, code)
		return
	}
	ok(c, http.StatusOK, TransformResponse{Image: image})
}

// artErrorStatus maps service and gateway errors onto the HTTP taxonomy.
// Unclassified errors collapse into internal_error so no upstream detail
// leaks to the caller.
func artErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrRateLimited):
		return http.StatusTooManyRequests, ErrCodeRateLimited
	case errors.Is(err, services.ErrMissingImage):
		return http.StatusBadRequest, ErrCodeBadRequest
	case errors.Is(err, art.ErrUpstreamRateLimited):
		return http.StatusTooManyRequests, ErrCodeUpstreamRateLimited
	case errors.Is(err, art.ErrUpstreamQuota):
		return http.StatusPaymentRequired, ErrCodeUpstreamQuota
	case errors.Is(err, art.ErrNoImage):
		return http.StatusInternalServerError, ErrCodeNoImage
	case errors.Is(err, art.ErrUpstreamFailure):
		return http.StatusInternalServerError, ErrCodeUpstreamError
	default:
		// Includes art.ErrNotConfigured: a missing credential is our fault,
		// the guest just sees a generic failure.
		return http.StatusInternalServerError, ErrCodeInternal
	}
}
