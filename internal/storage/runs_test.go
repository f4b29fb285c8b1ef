package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/kitchen-rush/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveRunAndLookup(t *testing.T) {
	store := openTestStore(t)

	report := core.RunReport{
		RunID:        "6f1c1d7e-1a53-4a43-9b8e-3d3f0f6c1a10",
		GameID:       "kitchen",
		Variant:      "classic",
		Seed:         42,
		Score:        45,
		Served:       3,
		WrongOrder:   1,
		Unmatched:    2,
		Trashed:      4,
		DurationSecs: 300,
	}
	if _, err := store.SaveRun(RunFromReport(report)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.RunByID(report.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil")
	}
	if got.Menu != "classic" || got.Seed != 42 || got.Score != 45 || got.Served != 3 ||
		got.WrongOrder != 1 || got.Unmatched != 2 || got.Trashed != 4 || got.DurationSecs != 300 {
		t.Errorf("RunByID() = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}

	if _, err := store.SaveRun(RunFromReport(report)); err == nil {
		t.Error("saving the same run twice should fail")
	}
}

func TestRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID("nope")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("RunByID() = %+v, want nil", got)
	}
}

func TestSaveRunRequiresID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(RunEntry{GameID: "kitchen"}); err == nil {
		t.Error("expected error for empty run id")
	}
}

func TestRecentRunsAndTotals(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{RunID: "a", GameID: "kitchen", Served: 1, WrongOrder: 2},
		{RunID: "b", GameID: "kitchen", Served: 4, Unmatched: 1},
		{RunID: "c", GameID: "kitchen_practice", Served: 9, Trashed: 3},
		{RunID: "d", GameID: "kitchen", Served: 2, Trashed: 1},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%s) failed: %v", r.RunID, err)
		}
	}

	recent, err := store.RecentRuns("kitchen", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("RecentRuns() returned %d runs, want 2", len(recent))
	}
	// Same timestamp resolution: insertion order breaks the tie.
	if recent[0].RunID != "d" || recent[1].RunID != "b" {
		t.Errorf("RecentRuns() order = %s, %s", recent[0].RunID, recent[1].RunID)
	}

	totals, err := store.GetRunTotals("kitchen")
	if err != nil {
		t.Fatalf("GetRunTotals() failed: %v", err)
	}
	want := RunTotals{Runs: 3, Served: 7, WrongOrder: 2, Unmatched: 1, Trashed: 1}
	if totals != want {
		t.Errorf("GetRunTotals() = %+v, want %+v", totals, want)
	}

	empty, err := store.GetRunTotals("nothing")
	if err != nil {
		t.Fatalf("GetRunTotals() failed: %v", err)
	}
	if empty != (RunTotals{}) {
		t.Errorf("GetRunTotals() for unknown game = %+v", empty)
	}
}

func TestParseTime(t *testing.T) {
	ts := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time value", ts, ts},
		{"sqlite text", "2025-03-04 05:06:07", ts},
		{"rfc3339", "2025-03-04T05:06:07Z", ts},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTime(tt.in); !got.Equal(tt.want) {
				t.Errorf("parseTime(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
