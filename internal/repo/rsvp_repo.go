// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the RSVP model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a record is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dirgantara/undangan-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateRSVP inserts a new RSVP row. The ID is a randomly generated UUID
// (string), and CreatedAt is set to UTC.
//
// On success, it returns the persisted RSVP. On failure, it returns a DB error.
func CreateRSVP(ctx context.Context, db *gorm.DB, guestName, attendance string, guestCount int, message string) (*domain.RSVP, error) {
	r := &domain.RSVP{
		ID:         uuid.NewString(),
		GuestName:  guestName,
		Attendance: attendance,
		GuestCount: guestCount,
		Message:    message,
		CreatedAt:  time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// CountRSVPs returns the total number of RSVP rows.
func CountRSVPs(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.RSVP{}).Count(&n).Error
	return n, err
}

// ListRSVPsPage returns a paginated slice of RSVPs ordered by creation time
// descending (newest wishes first, matching the wall on the page).
func ListRSVPsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.RSVP, error) {
	var out []domain.RSVP
	err := db.WithContext(ctx).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// AttendanceCounts returns the number of RSVPs per attendance value, used by
// the countdown/summary block on the page.
func AttendanceCounts(ctx context.Context, db *gorm.DB) (map[string]int64, error) {
	type row struct {
		Attendance string
		N          int64
	}
	var rows []row
	err := db.WithContext(ctx).
		Model(&domain.RSVP{}).
		Select("attendance, count(*) as n").
		Group("attendance").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Attendance] = r.N
	}
	return out, nil
}
