// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file derives the client identity used to key the art-transform
// throttle. The identity is intentionally best-effort: forwarded headers are
// client-supplied and multiple guests behind one proxy share a bucket. That
// is abuse control for a wedding page, not a security boundary.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dirgantara/undangan-backend/internal/sysutil"
)

// clientIDKey is the Gin context key under which the client identity is stored.
const clientIDKey = "clientID"

// unknownClient is the shared bucket for requests with no identifying headers.
const unknownClient = "unknown"

// ClientIdentifier resolves a per-request client identity and stores it in
// the Gin context. Precedence: first X-Forwarded-For entry, then X-Real-IP,
// then the User-Agent string, then a constant "unknown" bucket.
func ClientIdentifier() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(clientIDKey, deriveClientID(c))
		c.Next()
	}
}

// ClientIDFrom returns the identity stored by ClientIdentifier, deriving it
// on the spot when the middleware did not run (e.g. in tests).
func ClientIDFrom(c *gin.Context) string {
	if v, ok := c.Get(clientIDKey); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return deriveClientID(c)
}

func deriveClientID(c *gin.Context) string {
	forwarded := c.GetHeader("X-Forwarded-For")
	if i := strings.IndexByte(forwarded, ','); i >= 0 {
		forwarded = forwarded[:i]
	}
	id := sysutil.FirstNonEmpty(
		strings.TrimSpace(forwarded),
		strings.TrimSpace(c.GetHeader("X-Real-IP")),
		strings.TrimSpace(c.Request.UserAgent()),
	)
	if id == "" {
		return unknownClient
	}
	return id
}
