// Package telemetry exports kitchen shifts as CSV: one row per game event in
// events.csv and one row per finished shift in runs.csv.
package telemetry

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// EventRecord is one line of events.csv.
type EventRecord struct {
	ID      string `csv:"event_id"`
	RunID   string `csv:"run_id"`
	Tick    uint64 `csv:"tick"`
	Kind    string `csv:"kind"`
	Subject string `csv:"subject"`
	Delta   int    `csv:"delta"`
	Score   int    `csv:"score"`
}

// RunRecord is one line of runs.csv.
type RunRecord struct {
	RunID        string `csv:"run_id"`
	Game         string `csv:"game"`
	Menu         string `csv:"menu"`
	Seed         int64  `csv:"seed"`
	Score        int    `csv:"score"`
	Served       int    `csv:"served"`
	WrongOrder   int    `csv:"wrong_order"`
	Unmatched    int    `csv:"unmatched"`
	Trashed      int    `csv:"trashed"`
	Chopped      int    `csv:"chopped"`
	Cooked       int    `csv:"cooked"`
	DurationSecs int    `csv:"duration_secs"`
	StartedAt    string `csv:"started_at"`
	EndedAt      string `csv:"ended_at"`
}

// NewRunID returns a fresh random run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// OutputManager appends records to the CSV files of one output directory.
// A nil *OutputManager accepts every call and writes nothing.
type OutputManager struct {
	dir        string
	eventsFile *os.File
	runsFile   *os.File

	mu                  sync.Mutex
	entropy             io.Reader
	eventsHeaderWritten bool
	runsHeaderWritten   bool
}

// NewOutputManager creates dir and truncates events.csv and runs.csv inside
// it. Returns nil if dir is empty (recording disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("telemetry: creating output directory: %w", err)
	}

	om := &OutputManager{
		dir:     dir,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}

	f, err := os.Create(filepath.Join(dir, "events.csv"))
	if err != nil {
		return nil, fmt.Errorf("telemetry: creating events.csv: %w", err)
	}
	om.eventsFile = f

	f, err = os.Create(filepath.Join(dir, "runs.csv"))
	if err != nil {
		om.eventsFile.Close()
		return nil, fmt.Errorf("telemetry: creating runs.csv: %w", err)
	}
	om.runsFile = f

	return om, nil
}

// NewEventID returns a ULID for an event that happened at t. IDs from the
// same manager sort in creation order.
func (om *OutputManager) NewEventID(t time.Time) string {
	if om == nil {
		return ulid.Make().String()
	}
	om.mu.Lock()
	defer om.mu.Unlock()
	return om.newEventID(t)
}

func (om *OutputManager) newEventID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), om.entropy).String()
}

// WriteEvents appends events to events.csv. Records without an ID get one.
func (om *OutputManager) WriteEvents(events []EventRecord) error {
	if om == nil || len(events) == 0 {
		return nil
	}

	om.mu.Lock()
	defer om.mu.Unlock()

	now := time.Now()
	for i := range events {
		if events[i].ID == "" {
			events[i].ID = om.newEventID(now)
		}
	}

	if !om.eventsHeaderWritten {
		if err := gocsv.Marshal(events, om.eventsFile); err != nil {
			return fmt.Errorf("telemetry: writing events: %w", err)
		}
		om.eventsHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(events, om.eventsFile); err != nil {
		return fmt.Errorf("telemetry: writing events: %w", err)
	}
	return nil
}

// WriteRun appends a shift summary to runs.csv.
func (om *OutputManager) WriteRun(run RunRecord) error {
	if om == nil {
		return nil
	}

	om.mu.Lock()
	defer om.mu.Unlock()

	records := []RunRecord{run}
	if !om.runsHeaderWritten {
		if err := gocsv.Marshal(records, om.runsFile); err != nil {
			return fmt.Errorf("telemetry: writing run: %w", err)
		}
		om.runsHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.runsFile); err != nil {
		return fmt.Errorf("telemetry: writing run: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes both output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	if om.eventsFile != nil {
		if err := om.eventsFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if om.runsFile != nil {
		if err := om.runsFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// ReadEvents loads events.csv from dir.
func ReadEvents(dir string) ([]EventRecord, error) {
	var out []EventRecord
	if err := readCSV(filepath.Join(dir, "events.csv"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadRuns loads runs.csv from dir.
func ReadRuns(dir string) ([]RunRecord, error) {
	var out []RunRecord
	if err := readCSV(filepath.Join(dir, "runs.csv"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func readCSV(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("telemetry: opening %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	// A file with no header yet holds no records
	if err := gocsv.UnmarshalFile(f, out); err != nil && !errors.Is(err, gocsv.ErrEmptyCSVFile) {
		return fmt.Errorf("telemetry: reading %s: %w", filepath.Base(path), err)
	}
	return nil
}
