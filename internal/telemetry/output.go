// internal/telemetry/output.go
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"go-lane-defense/internal/config"

	"github.com/gocarina/gocsv"
)

// OutputManager writes events.csv, matches.csv and config.yaml into a directory.
type OutputManager struct {
	dir         string
	eventsFile  *os.File
	matchesFile *os.File

	eventsHeaderWritten  bool
	matchesHeaderWritten bool
}

// NewOutputManager creates the output directory and files.
// Returns nil if dir is empty (output disabled); all methods accept a nil receiver.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "events.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating events.csv: %w", err)
	}
	om.eventsFile = f

	f, err = os.Create(filepath.Join(dir, "matches.csv"))
	if err != nil {
		om.eventsFile.Close()
		return nil, fmt.Errorf("creating matches.csv: %w", err)
	}
	om.matchesFile = f

	return om, nil
}

// Dir returns the output directory.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// WriteConfig saves the configuration the batch ran with.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteEvents appends event rows to events.csv.
func (om *OutputManager) WriteEvents(records []EventRecord) error {
	if om == nil || len(records) == 0 {
		return nil
	}
	if !om.eventsHeaderWritten {
		if err := gocsv.Marshal(records, om.eventsFile); err != nil {
			return fmt.Errorf("writing events: %w", err)
		}
		om.eventsHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.eventsFile); err != nil {
		return fmt.Errorf("writing events: %w", err)
	}
	return nil
}

// WriteMatch appends one summary row to matches.csv.
func (om *OutputManager) WriteMatch(summary MatchSummary) error {
	if om == nil {
		return nil
	}
	records := []MatchSummary{summary}
	if !om.matchesHeaderWritten {
		if err := gocsv.Marshal(records, om.matchesFile); err != nil {
			return fmt.Errorf("writing match: %w", err)
		}
		om.matchesHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.matchesFile); err != nil {
		return fmt.Errorf("writing match: %w", err)
	}
	return nil
}

// Close closes all open files.
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
	if om.matchesFile != nil {
		if err := om.matchesFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
