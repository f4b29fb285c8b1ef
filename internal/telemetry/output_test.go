package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

func TestNilOutputManager(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager(\"\") error = %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}

	if err := om.WriteEvents([]EventRecord{{Kind: "serve"}}); err != nil {
		t.Errorf("WriteEvents on nil = %v", err)
	}
	if err := om.WriteRun(RunRecord{RunID: "x"}); err != nil {
		t.Errorf("WriteRun on nil = %v", err)
	}
	if om.Dir() != "" {
		t.Errorf("Dir() = %q, want empty", om.Dir())
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil = %v", err)
	}
}

func TestWriteEventsHeaderOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "rec")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager() error = %v", err)
	}

	runID := NewRunID()
	first := []EventRecord{
		{RunID: runID, Tick: 3, Kind: "pickup", Subject: "tomato"},
		{RunID: runID, Tick: 9, Kind: "place", Subject: "tomato"},
	}
	second := []EventRecord{
		{RunID: runID, Tick: 200, Kind: "serve", Subject: "tomato_soup", Delta: 10, Score: 10},
	}
	if err := om.WriteEvents(first); err != nil {
		t.Fatalf("WriteEvents() error = %v", err)
	}
	if err := om.WriteEvents(second); err != nil {
		t.Fatalf("WriteEvents() error = %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "events.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "event_id"); n != 1 {
		t.Errorf("header written %d times, want 1", n)
	}

	got, err := ReadEvents(dir)
	if err != nil {
		t.Fatalf("ReadEvents() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("read %d events, want 3", len(got))
	}
	if got[2].Kind != "serve" || got[2].Delta != 10 || got[2].Score != 10 {
		t.Errorf("last event = %+v", got[2])
	}

	var prev ulid.ULID
	for i, e := range got {
		id, err := ulid.ParseStrict(e.ID)
		if err != nil {
			t.Fatalf("event %d id %q: %v", i, e.ID, err)
		}
		if i > 0 && id.Compare(prev) <= 0 {
			t.Errorf("event ids not increasing at %d", i)
		}
		prev = id
	}
}

func TestWriteRuns(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager() error = %v", err)
	}
	defer om.Close()

	runs := []RunRecord{
		{RunID: NewRunID(), Game: "kitchen", Menu: "classic", Seed: 7, Score: 25, Served: 3, WrongOrder: 1, DurationSecs: 300},
		{RunID: NewRunID(), Game: "kitchen_practice", Menu: "salad_bar", Seed: 8, Score: 0, Unmatched: 2},
	}
	for _, r := range runs {
		if err := om.WriteRun(r); err != nil {
			t.Fatalf("WriteRun() error = %v", err)
		}
	}

	got, err := ReadRuns(dir)
	if err != nil {
		t.Fatalf("ReadRuns() error = %v", err)
	}
	if len(got) != len(runs) {
		t.Fatalf("read %d runs, want %d", len(got), len(runs))
	}
	for i := range runs {
		if got[i] != runs[i] {
			t.Errorf("run %d = %+v, want %+v", i, got[i], runs[i])
		}
		if _, err := uuid.Parse(got[i].RunID); err != nil {
			t.Errorf("run %d id %q is not a uuid: %v", i, got[i].RunID, err)
		}
	}
}

func TestNewEventIDOrdering(t *testing.T) {
	om, err := NewOutputManager(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	now := time.Now()
	a := om.NewEventID(now)
	b := om.NewEventID(now)
	if a >= b {
		t.Errorf("ids with the same timestamp not increasing: %s >= %s", a, b)
	}
}

func TestReadEmptyRecording(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager() error = %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	events, err := ReadEvents(dir)
	if err != nil {
		t.Fatalf("ReadEvents() error = %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}

	runs, err := ReadRuns(dir)
	if err != nil {
		t.Fatalf("ReadRuns() error = %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d runs, want 0", len(runs))
	}

	if _, err := ReadRuns(filepath.Join(dir, "missing")); err == nil {
		t.Error("ReadRuns() on a missing dir should fail")
	}
}
