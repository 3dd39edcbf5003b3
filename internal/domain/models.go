// Package domain defines the persistence models for the wedding-invitation
// backend. These types are mapped with GORM and form the data layer behind
// the RSVP endpoints.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Attendance values accepted on an RSVP submission.
const (
	AttendancePending   = "pending"
	AttendanceAttending = "attending"
	AttendanceDeclined  = "declined"
)

// RSVP represents a single attendance confirmation submitted through the
// invitation page. Rows are append-mostly; guests who change their mind
// simply submit again and the newest row wins on display.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - GuestName: display name as typed into the form.
//   - Attendance: one of "pending", "attending", "declined".
//   - GuestCount: how many seats the party needs (1..10).
//   - Message: optional wishes/congratulations text shown on the wall.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker (retains row for audit/history).
type RSVP struct {
	ID         string         `json:"id"          gorm:"type:char(36);primaryKey"`
	GuestName  string         `json:"guest_name"  gorm:"type:varchar(255);not null;index:idx_rsvp_guest"`
	Attendance string         `json:"attendance"  gorm:"type:varchar(16);not null;check:attendance IN ('pending','attending','declined')"`
	GuestCount int            `json:"guest_count" gorm:"not null;default:1;check:guest_count BETWEEN 1 AND 10"`
	Message    string         `json:"message"     gorm:"type:text"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-"           gorm:"index"`
}

// TableName returns the database table name for RSVP.
func (RSVP) TableName() string { return "rsvps" }

// ValidAttendance reports whether v is one of the accepted attendance values.
func ValidAttendance(v string) bool {
	switch v {
	case AttendancePending, AttendanceAttending, AttendanceDeclined:
		return true
	}
	return false
}
