package db

import (
	"context"
	"math"
	"testing"
	"time"
)

func appendAt(t *testing.T, db *DB, userID, text string, found bool, daysAgo int) {
	t.Helper()
	_, err := db.Pool.Exec(context.Background(), `
		INSERT INTO query_logs (user_id, queried_text, found, created_at)
		VALUES ($1, $2, $3, NOW() - make_interval(days => $4))
	`, userID, text, found, daysAgo)
	if err != nil {
		t.Fatalf("failed to insert log row: %v", err)
	}
}

func TestAppendQueryLog(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	before := time.Now().Add(-time.Minute)
	if err := db.AppendQueryLog(ctx, "U1", "  FYI ", true); err != nil {
		t.Fatalf("AppendQueryLog() error = %v", err)
	}

	var text string
	var found bool
	var createdAt time.Time
	err := db.Pool.QueryRow(ctx, `SELECT queried_text, found, created_at FROM query_logs`).
		Scan(&text, &found, &createdAt)
	if err != nil {
		t.Fatalf("failed to read log row: %v", err)
	}

	// Text is stored exactly as submitted.
	if text != "  FYI " {
		t.Errorf("queried_text = %q, want raw text preserved", text)
	}
	if !found {
		t.Error("found = false, want true")
	}
	if createdAt.Before(before) {
		t.Errorf("created_at = %v, want append time", createdAt)
	}
}

func TestTopTerms(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// "fyi" queried 3x under varying case, "api" and "cob" 2x each.
	for _, text := range []string{"FYI", "fyi", " Fyi ", "API", "api", "COB", "cob"} {
		if err := db.AppendQueryLog(ctx, "U1", text, true); err != nil {
			t.Fatalf("AppendQueryLog() error = %v", err)
		}
	}

	top, err := db.TopTerms(ctx, 10)
	if err != nil {
		t.Fatalf("TopTerms() error = %v", err)
	}

	want := []struct {
		term  string
		count int64
	}{
		{"fyi", 3},
		{"api", 2}, // ties broken by term ascending
		{"cob", 2},
	}
	if len(top) != len(want) {
		t.Fatalf("TopTerms() returned %d rows, want %d: %+v", len(top), len(want), top)
	}
	for i, w := range want {
		if top[i].Term != w.term || top[i].Count != w.count {
			t.Errorf("TopTerms()[%d] = %+v, want {%s %d}", i, top[i], w.term, w.count)
		}
	}
}

func TestTopTerms_Limit(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	for _, text := range []string{"a", "b", "c"} {
		if err := db.AppendQueryLog(ctx, "U1", text, false); err != nil {
			t.Fatalf("AppendQueryLog() error = %v", err)
		}
	}

	top, err := db.TopTerms(ctx, 2)
	if err != nil {
		t.Fatalf("TopTerms() error = %v", err)
	}
	if len(top) != 2 {
		t.Errorf("TopTerms(2) returned %d rows, want 2", len(top))
	}
}

func TestDailyCounts(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Entries today and three days ago; nothing in between.
	appendAt(t, db, "U1", "fyi", true, 0)
	appendAt(t, db, "U1", "api", true, 0)
	appendAt(t, db, "U2", "cob", false, 3)

	counts, err := db.DailyCounts(ctx, 7)
	if err != nil {
		t.Fatalf("DailyCounts() error = %v", err)
	}

	// Exactly two buckets, ascending date order, zero days omitted.
	if len(counts) != 2 {
		t.Fatalf("DailyCounts() returned %d buckets, want 2: %+v", len(counts), counts)
	}
	if !counts[0].Date.Before(counts[1].Date) {
		t.Errorf("DailyCounts() not in ascending date order: %+v", counts)
	}
	if counts[0].Count != 1 || counts[1].Count != 2 {
		t.Errorf("DailyCounts() = %+v, want counts 1 then 2", counts)
	}
}

func TestDailyCounts_WindowExcludesOldEntries(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	appendAt(t, db, "U1", "fyi", true, 30)
	appendAt(t, db, "U1", "fyi", true, 0)

	counts, err := db.DailyCounts(context.Background(), 7)
	if err != nil {
		t.Fatalf("DailyCounts() error = %v", err)
	}
	if len(counts) != 1 {
		t.Errorf("DailyCounts(7) returned %d buckets, want 1 (old entry outside window): %+v", len(counts), counts)
	}
}

func TestTotalAndUniqueCounts(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	for _, e := range []struct {
		user string
		text string
	}{
		{"U1", "fyi"}, {"U1", "api"}, {"U2", "fyi"},
	} {
		if err := db.AppendQueryLog(ctx, e.user, e.text, true); err != nil {
			t.Fatalf("AppendQueryLog() error = %v", err)
		}
	}

	total, err := db.TotalQueryCount(ctx)
	if err != nil {
		t.Fatalf("TotalQueryCount() error = %v", err)
	}
	if total != 3 {
		t.Errorf("TotalQueryCount() = %d, want 3", total)
	}

	unique, err := db.UniqueUserCount(ctx)
	if err != nil {
		t.Fatalf("UniqueUserCount() error = %v", err)
	}
	if unique != 2 {
		t.Errorf("UniqueUserCount() = %d, want 2", unique)
	}
}

func TestSuccessRate(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Empty log: rate is 0, not an error.
	rate, err := db.SuccessRate(ctx)
	if err != nil {
		t.Fatalf("SuccessRate() on empty log error = %v", err)
	}
	if rate != 0 {
		t.Errorf("SuccessRate() on empty log = %v, want 0", rate)
	}

	// 3 found out of 4.
	for _, found := range []bool{true, true, true, false} {
		if err := db.AppendQueryLog(ctx, "U1", "term", found); err != nil {
			t.Fatalf("AppendQueryLog() error = %v", err)
		}
	}

	rate, err = db.SuccessRate(ctx)
	if err != nil {
		t.Fatalf("SuccessRate() error = %v", err)
	}
	if math.Abs(rate-0.75) > 1e-9 {
		t.Errorf("SuccessRate() = %v, want 0.75", rate)
	}
}

func TestQueryOutcomeCounts(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	for _, found := range []bool{true, false, false} {
		if err := db.AppendQueryLog(ctx, "U1", "term", found); err != nil {
			t.Fatalf("AppendQueryLog() error = %v", err)
		}
	}

	counts, err := db.QueryOutcomeCounts(ctx)
	if err != nil {
		t.Fatalf("QueryOutcomeCounts() error = %v", err)
	}
	if counts.Found != 1 || counts.NotFound != 2 {
		t.Errorf("QueryOutcomeCounts() = %+v, want {1 2}", counts)
	}
}
