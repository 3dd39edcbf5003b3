// Guest HTTP handler.
//
// This file exposes the guest-name resolution endpoint:
//   - GET /guest   (resolve an invitation code or legacy parameter)
//
// The handler is transport-thin: it hands the raw query parameters to the
// resolver and shapes the outcome as JSON. Resolution failures are not errors
// from the page's point of view, so the endpoint always answers 200.
package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// GuestResolver resolves an optional guest display name from query parameters.
//
// Implementations must never fail: lookup and network errors degrade to
// "no name resolved".
type GuestResolver interface {
	// Resolve returns the guest name and whether one was resolved.
	Resolve(ctx context.Context, params url.Values) (string, bool)
}

// GuestResponse is the JSON body for a guest lookup. Name is omitted when no
// guest was resolved, so the page can distinguish "greet by name" from
// "render anonymously" by field presence.
type GuestResponse struct {
	Name string `json:"name,omitempty" example:"Budi Santoso"`
}

// ResolveGuest godoc
// @ID          resolveGuest
// @Summary     Resolve the guest name for an invitation link
// @Description Looks up the invitation code (kode/Kode/KODE) against the published guest table, falling back to the legacy underscore-delimited "to" parameter. Always answers 200; an empty object means no guest was resolved.
// @Tags        Guest
// @Produce     json
//
// @Param       kode  query  string  false "Invitation code"                 example(AO12)
// @Param       to    query  string  false "Legacy recipient (underscored)"  example(Budi_Santoso)
//
// @Success     200  {object}  handlers.GuestResponse
// @Router      /guest [get]
func (h *Handlers) ResolveGuest(c *gin.Context) {
	name, _ := h.guestSvc.Resolve(c.Request.Context(), c.Request.URL.Query())
	ok(c, http.StatusOK, GuestResponse{Name: name})
}
