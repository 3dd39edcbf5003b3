// Package services – RSVPService
//
// This file implements RSVPService, which validates and persists attendance
// confirmations. Validation is strict at the boundary (name required,
// attendance from a closed set, seat count bounded, message capped) so the
// table never holds rows the page cannot render.
package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/dirgantara/undangan-backend/internal/domain"
	"github.com/dirgantara/undangan-backend/internal/repo"
)

// RSVPRepo defines the repository contract required by RSVPService.
type RSVPRepo interface {
	// CreateRSVP inserts a new RSVP row.
	CreateRSVP(ctx context.Context, db *gorm.DB, guestName, attendance string, guestCount int, message string) (*domain.RSVP, error)

	// CountRSVPs returns the total number of RSVPs for pagination.
	CountRSVPs(ctx context.Context, db *gorm.DB) (int64, error)

	// ListRSVPsPage returns a page of RSVPs, newest first.
	ListRSVPsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.RSVP, error)

	// AttendanceCounts aggregates RSVPs per attendance value.
	AttendanceCounts(ctx context.Context, db *gorm.DB) (map[string]int64, error)
}

// RSVPService provides RSVP submission and listing with input validation.
type RSVPService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the RSVP repository used by this service.
	Repo RSVPRepo

	// MaxNameRunes caps guest names by rune length.
	MaxNameRunes int
	// MaxMessageRunes caps the wishes text by rune length.
	MaxMessageRunes int
	// MaxGuestCount caps how many seats one submission may claim.
	MaxGuestCount int
}

// NewRSVPService constructs an RSVPService with sane defaults.
func NewRSVPService(db *gorm.DB, r RSVPRepo) *RSVPService {
	return &RSVPService{
		DB:              db,
		Repo:            r,
		MaxNameRunes:    120,
		MaxMessageRunes: 1000,
		MaxGuestCount:   10,
	}
}

// Submit validates and persists one RSVP. An empty attendance defaults to
// "attending", which is what the confirm button on the page means.
func (s *RSVPService) Submit(ctx context.Context, guestName, attendance string, guestCount int, message string) (*domain.RSVP, error) {
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return nil, ErrEmptyGuestName
	}
	if utf8.RuneCountInString(guestName) > s.MaxNameRunes {
		return nil, ErrNameTooLong
	}

	attendance = strings.TrimSpace(attendance)
	if attendance == "" {
		attendance = domain.AttendanceAttending
	}
	if !domain.ValidAttendance(attendance) {
		return nil, ErrInvalidAttendance
	}

	if guestCount == 0 {
		guestCount = 1
	}
	if guestCount < 1 || guestCount > s.MaxGuestCount {
		return nil, ErrInvalidGuestCount
	}

	message = strings.TrimSpace(message)
	if utf8.RuneCountInString(message) > s.MaxMessageRunes {
		return nil, ErrMessageTooLong
	}

	return s.Repo.CreateRSVP(ctx, s.DB, guestName, attendance, guestCount, message)
}

// ListPage returns a page of RSVPs and the total count. It applies defaults
// for invalid page/pageSize.
func (s *RSVPService) ListPage(ctx context.Context, page, pageSize int) ([]domain.RSVP, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := s.Repo.CountRSVPs(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.RSVP{}, 0, nil
	}

	items, err := s.Repo.ListRSVPsPage(ctx, s.DB, offset, pageSize)
	return items, total, err
}

// Summary returns the per-attendance counts for the page's summary block.
func (s *RSVPService) Summary(ctx context.Context) (map[string]int64, error) {
	return s.Repo.AttendanceCounts(ctx, s.DB)
}

// rsvpRepoShim adapts the repository free functions to the RSVPRepo
// interface. This keeps the service decoupled from the concrete repo package
// while reusing the existing functions.
type rsvpRepoShim struct{}

// NewRSVPRepo returns the production RSVPRepo backed by the repo package.
func NewRSVPRepo() RSVPRepo { return rsvpRepoShim{} }

func (rsvpRepoShim) CreateRSVP(ctx context.Context, db *gorm.DB, guestName, attendance string, guestCount int, message string) (*domain.RSVP, error) {
	return repo.CreateRSVP(ctx, db, guestName, attendance, guestCount, message)
}

func (rsvpRepoShim) CountRSVPs(ctx context.Context, db *gorm.DB) (int64, error) {
	return repo.CountRSVPs(ctx, db)
}

func (rsvpRepoShim) ListRSVPsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.RSVP, error) {
	return repo.ListRSVPsPage(ctx, db, offset, limit)
}

func (rsvpRepoShim) AttendanceCounts(ctx context.Context, db *gorm.DB) (map[string]int64, error) {
	return repo.AttendanceCounts(ctx, db)
}
