package art

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// upstream spins an httptest server that answers with the given status and
// body, and records what the client sent.
func upstream(t *testing.T, status int, body string) (*httptest.Server, *chatRequest) {
	t.Helper()
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing bearer credential, got %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func newClient(url string) *Client {
	return &Client{GatewayURL: url, APIKey: "test-key", Model: "img-model"}
}

const okBody = `{"choices":[{"message":{"images":[{"image_url":{"url":"data:image/png;base64,QUJD"}}]}}]}`

func TestTransform_Success(t *testing.T) {
	srv, got := upstream(t, http.StatusOK, okBody)

	image, err := newClient(srv.URL).Transform(context.Background(), Instruction("anime"), "data:image/jpeg;base64,xxx")
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if image != "data:image/png;base64,QUJD" {
		t.Fatalf("unexpected image: %q", image)
	}

	// Request shape: one user turn, text + image parts, both modalities.
	if got.Model != "img-model" {
		t.Fatalf("model = %q", got.Model)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != "user" {
		t.Fatalf("messages unexpected: %+v", got.Messages)
	}
	parts := got.Messages[0].Content
	if len(parts) != 2 || parts[0].Type != "text" || parts[1].Type != "image_url" {
		t.Fatalf("content parts unexpected: %+v", parts)
	}
	if parts[1].ImageURL == nil || parts[1].ImageURL.URL != "data:image/jpeg;base64,xxx" {
		t.Fatalf("image part unexpected: %+v", parts[1])
	}
	if len(got.Modalities) != 2 || got.Modalities[0] != "image" || got.Modalities[1] != "text" {
		t.Fatalf("modalities unexpected: %v", got.Modalities)
	}
}

func TestTransform_MissingCredential(t *testing.T) {
	c := &Client{GatewayURL: "http://127.0.0.1:1", Model: "m"}
	if _, err := c.Transform(context.Background(), "x", "y"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestTransform_StatusClassification(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusTooManyRequests, ErrUpstreamRateLimited},
		{http.StatusPaymentRequired, ErrUpstreamQuota},
		{http.StatusInternalServerError, ErrUpstreamFailure},
		{http.StatusBadGateway, ErrUpstreamFailure},
	}
	for _, tc := range cases {
		srv, _ := upstream(t, tc.status, `{"error":"boom"}`)
		_, err := newClient(srv.URL).Transform(context.Background(), "x", "y")
		if !errors.Is(err, tc.want) {
			t.Fatalf("status %d: got %v, want %v", tc.status, err, tc.want)
		}
	}
}

func TestTransform_NoImageInResponse(t *testing.T) {
	bodies := []string{
		`{"choices":[]}`,
		`{"choices":[{"message":{}}]}`,
		`{"choices":[{"message":{"images":[]}}]}`,
		`{"choices":[{"message":{"images":[{"image_url":{"url":""}}]}}]}`,
	}
	for _, body := range bodies {
		srv, _ := upstream(t, http.StatusOK, body)
		_, err := newClient(srv.URL).Transform(context.Background(), "x", "y")
		if !errors.Is(err, ErrNoImage) {
			t.Fatalf("body %s: got %v, want ErrNoImage", body, err)
		}
	}
}

func TestTransform_MalformedJSON(t *testing.T) {
	srv, _ := upstream(t, http.StatusOK, `{"choices": garbage`)
	_, err := newClient(srv.URL).Transform(context.Background(), "x", "y")
	if err == nil || errors.Is(err, ErrNoImage) {
		t.Fatalf("malformed body should be a decode error, got %v", err)
	}
}

func TestTransform_TransportError(t *testing.T) {
	// Nothing listens here.
	_, err := newClient("http://127.0.0.1:1").Transform(context.Background(), "x", "y")
	if err == nil {
		t.Fatalf("expected transport error")
	}
}
