package repo

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dirgantara/undangan-backend/internal/domain"
)

func newRepoDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("rsvp_repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Ensure the file handle is released before TempDir cleanup (Windows needs this).
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func TestCreateRSVP_Error_NoTable(t *testing.T) {
	db := newRepoDB(t /* no migrations */)
	r, err := CreateRSVP(context.Background(), db, "Budi", domain.AttendanceAttending, 2, "selamat!")
	if err == nil || r != nil {
		t.Fatalf("expected error creating without table, got rsvp=%v err=%v", r, err)
	}
}

func TestCreateRSVP_Success_PersistsAndSetsFields(t *testing.T) {
	db := newRepoDB(t, &domain.RSVP{})

	start := time.Now().UTC().Add(-time.Minute)
	r, err := CreateRSVP(context.Background(), db, "Budi Santoso", domain.AttendanceAttending, 2, "sampai jumpa!")
	if err != nil {
		t.Fatalf("CreateRSVP: %v", err)
	}
	if r.ID == "" || r.GuestName != "Budi Santoso" || r.Attendance != domain.AttendanceAttending || r.GuestCount != 2 {
		t.Fatalf("unexpected RSVP fields: %+v", r)
	}
	if r.CreatedAt.Before(start) {
		t.Fatalf("CreatedAt not set: %v", r.CreatedAt)
	}

	var back domain.RSVP
	if err := db.First(&back, "id = ?", r.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if back.Message != "sampai jumpa!" {
		t.Fatalf("message not persisted: %+v", back)
	}
}

func TestListRSVPsPage_OrderAndBounds(t *testing.T) {
	db := newRepoDB(t, &domain.RSVP{})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := CreateRSVP(ctx, db, fmt.Sprintf("guest-%d", i), domain.AttendanceAttending, 1, ""); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
		// Distinct created_at so descending order is deterministic.
		db.Model(&domain.RSVP{}).
			Where("guest_name = ?", fmt.Sprintf("guest-%d", i)).
			Update("created_at", time.Now().UTC().Add(time.Duration(i)*time.Second))
	}

	total, err := CountRSVPs(ctx, db)
	if err != nil || total != 5 {
		t.Fatalf("CountRSVPs = %d, %v", total, err)
	}

	page, err := ListRSVPsPage(ctx, db, 0, 2)
	if err != nil {
		t.Fatalf("ListRSVPsPage: %v", err)
	}
	if len(page) != 2 || page[0].GuestName != "guest-4" || page[1].GuestName != "guest-3" {
		t.Fatalf("unexpected first page: %+v", page)
	}

	rest, err := ListRSVPsPage(ctx, db, 4, 10)
	if err != nil || len(rest) != 1 {
		t.Fatalf("unexpected last page: %+v err=%v", rest, err)
	}
}

func TestAttendanceCounts(t *testing.T) {
	db := newRepoDB(t, &domain.RSVP{})
	ctx := context.Background()

	seed := []string{
		domain.AttendanceAttending,
		domain.AttendanceAttending,
		domain.AttendanceDeclined,
	}
	for i, a := range seed {
		if _, err := CreateRSVP(ctx, db, fmt.Sprintf("g%d", i), a, 1, ""); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	counts, err := AttendanceCounts(ctx, db)
	if err != nil {
		t.Fatalf("AttendanceCounts: %v", err)
	}
	if counts[domain.AttendanceAttending] != 2 || counts[domain.AttendanceDeclined] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}
