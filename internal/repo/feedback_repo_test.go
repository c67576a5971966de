package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/feedbacklab/go-feedback-backend/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:feedbackrepo_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func strptr(s string) *string { return &s }

func TestCreateFeedback_PopulatesGeneratedFields(t *testing.T) {
	db := newTestDB(t)
	start := time.Now().UTC()

	fb, err := CreateFeedback(context.Background(), db, strptr("Alice"), strptr("a@b.co"), "great service")
	if err != nil {
		t.Fatalf("CreateFeedback: %v", err)
	}
	if fb.ID == 0 {
		t.Fatalf("expected generated id, got 0")
	}
	if fb.CreatedAt.IsZero() || fb.CreatedAt.Before(start.Add(-time.Minute)) {
		t.Fatalf("CreatedAt not set reasonably: %v", fb.CreatedAt)
	}
	if fb.Name == nil || *fb.Name != "Alice" || fb.Email == nil || *fb.Email != "a@b.co" {
		t.Fatalf("unexpected row: %+v", fb)
	}
	if fb.Message != "great service" {
		t.Fatalf("message = %q", fb.Message)
	}
}

func TestCreateFeedback_NilOptionalsStoredAsNull(t *testing.T) {
	db := newTestDB(t)

	fb, err := CreateFeedback(context.Background(), db, nil, nil, "hi")
	if err != nil {
		t.Fatalf("CreateFeedback: %v", err)
	}
	if fb.Name != nil || fb.Email != nil {
		t.Fatalf("expected NULL name/email, got %+v", fb)
	}

	// Verify via an independent read.
	got, err := GetFeedback(context.Background(), db, fb.ID)
	if err != nil {
		t.Fatalf("GetFeedback: %v", err)
	}
	if got.Name != nil || got.Email != nil {
		t.Fatalf("reloaded row should have NULL optionals: %+v", got)
	}
}

func TestCreateFeedback_Error_NoTable(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:notable_%s?mode=memory&cache=shared", uuid.NewString())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if _, err := CreateFeedback(context.Background(), db, nil, nil, "hi"); err == nil {
		t.Fatalf("expected error when feedbacks table is missing")
	}
}

func TestCreateThenGet_RoundTrip(t *testing.T) {
	db := newTestDB(t)

	created, err := CreateFeedback(context.Background(), db, strptr("Bob"), nil, "works for me")
	if err != nil {
		t.Fatalf("CreateFeedback: %v", err)
	}
	got, err := GetFeedback(context.Background(), db, created.ID)
	if err != nil {
		t.Fatalf("GetFeedback: %v", err)
	}
	if got.ID != created.ID || got.Message != created.Message {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, created)
	}
	if got.Name == nil || *got.Name != "Bob" || got.Email != nil {
		t.Fatalf("unexpected optionals: %+v", got)
	}
}

func TestGetFeedback_Missing_ReturnsErrNotFound(t *testing.T) {
	db := newTestDB(t)

	if _, err := GetFeedback(context.Background(), db, 12345); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// seed inserts a row with an explicit created_at so ordering tests are
// deterministic.
func seed(t *testing.T, db *gorm.DB, msg string, at time.Time) domain.Feedback {
	t.Helper()
	fb := domain.Feedback{Message: msg, CreatedAt: at}
	if err := db.Create(&fb).Error; err != nil {
		t.Fatalf("seed %q: %v", msg, err)
	}
	return fb
}

func TestListFeedbacks_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	seed(t, db, "oldest", base)
	seed(t, db, "middle", base.Add(time.Hour))
	seed(t, db, "newest", base.Add(2*time.Hour))

	got, err := ListFeedbacks(context.Background(), db, 0, 10)
	if err != nil {
		t.Fatalf("ListFeedbacks: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	want := []string{"newest", "middle", "oldest"}
	for i, w := range want {
		if got[i].Message != w {
			t.Fatalf("position %d = %q, want %q", i, got[i].Message, w)
		}
	}
}

func TestListFeedbacks_TiesBrokenByIDDescending(t *testing.T) {
	db := newTestDB(t)
	at := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	a := seed(t, db, "first insert", at)
	b := seed(t, db, "second insert", at)

	got, err := ListFeedbacks(context.Background(), db, 0, 10)
	if err != nil {
		t.Fatalf("ListFeedbacks: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Same created_at: the later insert (higher id) must come first.
	if got[0].ID != b.ID || got[1].ID != a.ID {
		t.Fatalf("tie-break order wrong: got ids %d,%d want %d,%d", got[0].ID, got[1].ID, b.ID, a.ID)
	}
}

func TestListFeedbacks_SkipAndLimitWindow(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seed(t, db, fmt.Sprintf("m%d", i), base.Add(time.Duration(i)*time.Minute))
	}

	got, err := ListFeedbacks(context.Background(), db, 2, 2)
	if err != nil {
		t.Fatalf("ListFeedbacks: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Newest-first over m0..m4 is m4,m3,m2,m1,m0 → skip 2 gives m2,m1.
	if got[0].Message != "m2" || got[1].Message != "m1" {
		t.Fatalf("window wrong: %q, %q", got[0].Message, got[1].Message)
	}
}

func TestListFeedbacks_SkipBeyondCount_Empty(t *testing.T) {
	db := newTestDB(t)
	seed(t, db, "only", time.Now().UTC())

	got, err := ListFeedbacks(context.Background(), db, 10, 5)
	if err != nil {
		t.Fatalf("ListFeedbacks: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d rows", len(got))
	}
}

func TestListFeedbacks_InvalidBounds(t *testing.T) {
	db := newTestDB(t)

	tests := []struct {
		name        string
		skip, limit int
	}{
		{"negative skip", -1, 10},
		{"zero limit", 0, 0},
		{"limit above max", 0, MaxListLimit + 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ListFeedbacks(context.Background(), db, tc.skip, tc.limit); !errors.Is(err, ErrInvalidPage) {
				t.Fatalf("expected ErrInvalidPage, got %v", err)
			}
		})
	}
}

func TestCountFeedbacks(t *testing.T) {
	db := newTestDB(t)

	n, err := CountFeedbacks(context.Background(), db)
	if err != nil || n != 0 {
		t.Fatalf("empty count = %d, %v", n, err)
	}

	for i := 0; i < 3; i++ {
		seed(t, db, fmt.Sprintf("c%d", i), time.Now().UTC())
	}
	n, err = CountFeedbacks(context.Background(), db)
	if err != nil {
		t.Fatalf("CountFeedbacks: %v", err)
	}
	if n != 3 {
		t.Fatalf("count = %d, want 3", n)
	}
}
