package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/dirgantara/undangan-backend/internal/art"
	"github.com/dirgantara/undangan-backend/internal/services"
)

type fakeArtService struct {
	image string
	err   error

	clientID  string
	imageData string
	style     string
	calls     int
}

func (f *fakeArtService) Transform(_ context.Context, clientID, imageData, style string) (string, error) {
	f.calls++
	f.clientID = clientID
	f.imageData = imageData
	f.style = style
	if f.err != nil {
		return "", f.err
	}
	return f.image, nil
}

func newArtRouter(svc ArtService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(nil, svc, nil)
	r.POST("/art/transform", h.TransformArt)
	return r
}

func postTransform(r *gin.Engine, body string, hdr map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/art/transform", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeErr(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON error body: %v", err)
	}
	return resp
}

func TestTransformArt_Success(t *testing.T) {
	svc := &fakeArtService{image: "data:image/png;base64,abc"}
	r := newArtRouter(svc)

	w := postTransform(r, `{"imageData":"data:image/jpeg;base64,xyz","style":"watercolor"}`,
		map[string]string{"X-Real-IP": "203.0.113.7"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp TransformResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Image != "data:image/png;base64,abc" {
		t.Fatalf("image = %q", resp.Image)
	}
	if svc.imageData != "data:image/jpeg;base64,xyz" || svc.style != "watercolor" {
		t.Fatalf("service received %q / %q", svc.imageData, svc.style)
	}
	if svc.clientID != "203.0.113.7" {
		t.Fatalf("client id = %q", svc.clientID)
	}
}

func TestTransformArt_MalformedBodyStillReachesService(t *testing.T) {
	// The service must see the request so its rate-limit check runs before
	// payload validation.
	svc := &fakeArtService{err: services.ErrMissingImage}
	r := newArtRouter(svc)

	w := postTransform(r, `{not json`, nil)

	if svc.calls != 1 {
		t.Fatalf("service calls = %d", svc.calls)
	}
	if svc.imageData != "" {
		t.Fatalf("imageData = %q", svc.imageData)
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestTransformArt_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"local rate limit", services.ErrRateLimited, http.StatusTooManyRequests, ErrCodeRateLimited},
		{"missing image", services.ErrMissingImage, http.StatusBadRequest, ErrCodeBadRequest},
		{"upstream rate limit", art.ErrUpstreamRateLimited, http.StatusTooManyRequests, ErrCodeUpstreamRateLimited},
		{"upstream quota", art.ErrUpstreamQuota, http.StatusPaymentRequired, ErrCodeUpstreamQuota},
		{"no image produced", art.ErrNoImage, http.StatusInternalServerError, ErrCodeNoImage},
		{"upstream failure", art.ErrUpstreamFailure, http.StatusInternalServerError, ErrCodeUpstreamError},
		{"not configured stays generic", art.ErrNotConfigured, http.StatusInternalServerError, ErrCodeInternal},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, ErrCodeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newArtRouter(&fakeArtService{err: tc.err})
			w := postTransform(r, `{"imageData":"x"}`, nil)

			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d", w.Code, tc.status)
			}
			resp := decodeErr(t, w)
			if resp.Code != tc.code {
				t.Fatalf("code = %q, want %q", resp.Code, tc.code)
			}
			if resp.Message == "" {
				t.Fatalf("expected localized message")
			}
		})
	}
}

func TestTransformArt_RateLimitSetsRetryAfter(t *testing.T) {
	r := newArtRouter(&fakeArtService{err: services.ErrRateLimited})
	w := postTransform(r, `{"imageData":"x"}`, nil)

	if got := w.Header().Get("Retry-After"); got != "60" {
		t.Fatalf("Retry-After = %q", got)
	}
	resp := decodeErr(t, w)
	if resp.Message != "Terlalu banyak permintaan. Coba lagi dalam 1 menit." {
		t.Fatalf("default copy must be Indonesian, got %q", resp.Message)
	}
}

func TestTransformArt_EnglishAcceptLanguage(t *testing.T) {
	r := newArtRouter(&fakeArtService{err: services.ErrRateLimited})
	w := postTransform(r, `{"imageData":"x"}`, map[string]string{"Accept-Language": "en-US,en;q=0.9"})

	resp := decodeErr(t, w)
	if resp.Message != "Too many requests. Try again in a minute." {
		t.Fatalf("message = %q", resp.Message)
	}
}
