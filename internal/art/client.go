package art

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Stable error values for upstream outcomes. Handlers map these onto HTTP
// statuses; callers branch with errors.Is.
var (
	// ErrNotConfigured means the upstream credential is missing.
	ErrNotConfigured = errors.New("art gateway is not configured")
	// ErrUpstreamRateLimited mirrors an upstream 429.
	ErrUpstreamRateLimited = errors.New("upstream rate limit exceeded")
	// ErrUpstreamQuota mirrors an upstream 402 (credits exhausted).
	ErrUpstreamQuota = errors.New("upstream quota exhausted")
	// ErrUpstreamFailure covers any other non-2xx upstream response.
	ErrUpstreamFailure = errors.New("upstream request failed")
	// ErrNoImage means the upstream answered 2xx but produced no image.
	ErrNoImage = errors.New("upstream produced no image")
)

// Client calls an OpenAI-compatible chat-completions endpoint that returns
// generated images as a message extension. It is stateless and safe for
// concurrent use.
//
/// No timeout is applied here beyond the caller's context: image generation
// legitimately takes tens of seconds and the request context already dies
// with the client connection.
type Client struct {
	GatewayURL string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

//
// Wire schema. The gateway speaks the chat-completions dialect with one
// extension: generated images ride on choices[].message.images[].image_url.
// Modeling the shape explicitly keeps a missing field a typed ErrNoImage
// instead of a panic three map-assertions deep.
//

type chatRequest struct {
	Model      string        `json:"model"`
	Messages   []chatMessage `json:"messages"`
	Modalities []string      `json:"modalities"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageRef `json:"image_url,omitempty"`
}

type imageRef struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Images []struct {
				ImageURL imageRef `json:"image_url"`
			} `json:"images"`
		} `json:"message"`
	} `json:"choices"`
}

// maxErrorBodyLog caps how much of an upstream error body is logged.
const maxErrorBodyLog = 2048

// Transform sends one user turn carrying the instruction text and the photo
// payload, requesting image and text modalities back, and returns the
// generated image reference (data URL or plain URL).
//
/// Status classification: 429 → ErrUpstreamRateLimited, 402 → ErrUpstreamQuota,
// any other non-2xx → ErrUpstreamFailure, 2xx without an image → ErrNoImage.
func (c *Client) Transform(ctx context.Context, instruction, imageData string) (string, error) {
	if c.APIKey == "" {
		return "", ErrNotConfigured
	}

	payload := chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: instruction},
					{Type: "image_url", ImageURL: &imageRef{URL: imageData}},
				},
			},
		},
		Modalities: []string{"image", "text"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.GatewayURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLog))
		log.Error().
			Int("status", resp.StatusCode).
			Str("body", string(detail)).
			Msg("art gateway error")
		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			return "", ErrUpstreamRateLimited
		case http.StatusPaymentRequired:
			return "", ErrUpstreamQuota
		default:
			return "", fmt.Errorf("%w: status %d", ErrUpstreamFailure, resp.StatusCode)
		}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode art gateway response: %w", err)
	}

	if len(parsed.Choices) == 0 || len(parsed.Choices[0].Message.Images) == 0 {
		log.Error().Msg("art gateway returned no image")
		return "", ErrNoImage
	}
	image := parsed.Choices[0].Message.Images[0].ImageURL.URL
	if image == "" {
		return "", ErrNoImage
	}
	return image, nil
}
