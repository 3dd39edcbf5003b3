// RSVP HTTP handlers.
//
// This file exposes REST endpoints for attendance confirmations:
//   - POST /rsvps   (submit an RSVP)
//   - GET  /rsvps   (list, paginated, newest first, with attendance summary)
//
// Handlers are transport-thin: they validate input shape, call the RSVP
// service, and translate results into HTTP responses. This file also hosts the
// shared Handlers wiring for the package.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dirgantara/undangan-backend/internal/domain"
	"github.com/dirgantara/undangan-backend/internal/services"
	"github.com/dirgantara/undangan-backend/internal/utils"
)

// RSVPService defines the RSVP operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type RSVPService interface {
	// Submit validates and persists one RSVP.
	Submit(ctx context.Context, guestName, attendance string, guestCount int, message string) (*domain.RSVP, error)
	// ListPage returns a page of RSVPs, newest first, and the total count.
	ListPage(ctx context.Context, page, pageSize int) ([]domain.RSVP, int64, error)
	// Summary aggregates RSVPs per attendance value.
	Summary(ctx context.Context) (map[string]int64, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for guest resolution, art transforms,
// and RSVPs. It depends on abstract service interfaces to keep transport
// concerns separate from business logic.
type Handlers struct {
	guestSvc GuestResolver
	artSvc   ArtService
	rsvpSvc  RSVPService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(guestSvc GuestResolver, artSvc ArtService, rsvpSvc RSVPService) *Handlers {
	return &Handlers{guestSvc: guestSvc, artSvc: artSvc, rsvpSvc: rsvpSvc}
}

//
// DTOs
//

// CreateRSVPRequest is the JSON payload for submitting an RSVP.
type CreateRSVPRequest struct {
	// GuestName is the display name confirming attendance. Required.
	GuestName string `json:"guestName" binding:"required" example:"Budi Santoso"`
	// Attendance is one of pending, attending, declined; empty means attending.
	Attendance string `json:"attendance" example:"attending"`
	// GuestCount is the number of seats claimed (1–10); zero means 1.
	GuestCount int `json:"guestCount" example:"2"`
	// Message is an optional wish shown on the page.
	Message string `json:"message" example:"Selamat menempuh hidup baru!"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListRSVPsResponse wraps a page of RSVPs, the attendance summary, and
// pagination information.
type ListRSVPsResponse struct {
	RSVPs      []domain.RSVP    `json:"rsvps"`
	Summary    map[string]int64 `json:"summary"`
	Pagination Pagination       `json:"pagination"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

// isRSVPValidationErr reports whether err is one of the service's input
// validation sentinels, i.e. the caller's fault.
func isRSVPValidationErr(err error) bool {
	return errors.Is(err, services.ErrEmptyGuestName) ||
		errors.Is(err, services.ErrNameTooLong) ||
		errors.Is(err, services.ErrInvalidAttendance) ||
		errors.Is(err, services.ErrInvalidGuestCount) ||
		errors.Is(err, services.ErrMessageTooLong)
}

//
// Handlers
//

// CreateRSVP godoc
// @ID          createRSVP
// @Summary     Submit an RSVP
// @Description Records an attendance confirmation and an optional wish for the page's guestbook.
// @Tags        RSVPs
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateRSVPRequest  true  "RSVP payload"
//
// @Success     201  {object}  domain.RSVP
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid payload"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /rsvps [post]
func (h *Handlers) CreateRSVP(c *gin.Context) {
	var req CreateRSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failLocalized(c, http.StatusBadRequest, ErrCodeInvalidRSVP)
		return
	}

	r, err := h.rsvpSvc.Submit(c.Request.Context(), req.GuestName, req.Attendance, req.GuestCount, req.Message)
	if err != nil {
		if isRSVPValidationErr(err) {
			failLocalized(c, http.StatusBadRequest, ErrCodeInvalidRSVP)
			return
		}
		failLocalized(c, http.StatusInternalServerError, ErrCodeInternal)
		return
	}
	ok(c, http.StatusCreated, r)
}

// ListRSVPs godoc
// @ID          listRSVPs
// @Summary     List RSVPs (paginated)
// @Description Returns a page of RSVPs, newest first, together with per-attendance counts for the page's summary block.
// @Tags        RSVPs
// @Produce     json
//
// @Param       page       query  int  false "Page number"     minimum(1) default(1)
// @Param       page_size  query  int  false "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object}  handlers.ListRSVPsResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /rsvps [get]
func (h *Handlers) ListRSVPs(c *gin.Context) {
	ctx := c.Request.Context()
	page, pageSize := clampPagination(c)

	items, total, err := h.rsvpSvc.ListPage(ctx, page, pageSize)
	if err != nil {
		failLocalized(c, http.StatusInternalServerError, ErrCodeInternal)
		return
	}
	summary, err := h.rsvpSvc.Summary(ctx)
	if err != nil {
		failLocalized(c, http.StatusInternalServerError, ErrCodeInternal)
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	resp := ListRSVPsResponse{
		RSVPs:   items,
		Summary: summary,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	}
	ok(c, http.StatusOK, resp)
}
