// Package runlog keeps a CSV audit trail of pipeline runs.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the run log.
type Entry struct {
	Timestamp time.Time
	Source    string // export file the run consumed
	Month     string // month label the run targeted, if it got that far
	Loaded    int    // transactions parsed from the export
	Excluded  int    // internal transfers dropped
	Windowed  int    // transactions inside the target month
	Outcome   string // "merged", "skipped", or "failed: <reason>"
}

// Header is the CSV header for runs.csv.
const Header = "timestamp,source,month,loaded,excluded,windowed,outcome"

const (
	numFields    = 7
	logDir       = "logs"
	logFile      = "logs/runs.csv"
	colTimestamp = 0
	colSource    = 1
	colMonth     = 2
	colLoaded    = 3
	colExcluded  = 4
	colWindowed  = 5
	colOutcome   = 6
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colSource] = e.Source
	row[colMonth] = e.Month
	row[colLoaded] = strconv.Itoa(e.Loaded)
	row[colExcluded] = strconv.Itoa(e.Excluded)
	row[colWindowed] = strconv.Itoa(e.Windowed)
	row[colOutcome] = e.Outcome
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}
	loaded, err := strconv.Atoi(record[colLoaded])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing loaded %q: %w", record[colLoaded], err)
	}
	excluded, err := strconv.Atoi(record[colExcluded])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing excluded %q: %w", record[colExcluded], err)
	}
	windowed, err := strconv.Atoi(record[colWindowed])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing windowed %q: %w", record[colWindowed], err)
	}

	return Entry{
		Timestamp: ts,
		Source:    record[colSource],
		Month:     record[colMonth],
		Loaded:    loaded,
		Excluded:  excluded,
		Windowed:  windowed,
		Outcome:   record[colOutcome],
	}, nil
}

// Append writes entries to <root>/logs/runs.csv, creating the file and
// header if needed.
func Append(root string, entries []Entry) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(root, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <root>/logs/runs.csv.
// Returns nil if the file does not exist.
func Read(root string) ([]Entry, error) {
	path := filepath.Join(root, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
