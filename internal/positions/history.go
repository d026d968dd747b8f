package positions

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// RunRecord represents one completed (or aborted) sequence run in
// .armpress/history.json.
type RunRecord struct {
	ID          string    `json:"id"`
	StartedAt   time.Time `json:"started_at"`
	Repetitions int       `json:"repetitions"`
	Iterations  int       `json:"iterations"`
	Calls       int       `json:"calls"`
	Reason      string    `json:"reason"`
}

// NewRunRecord creates a record for a run starting now.
func NewRunRecord(repetitions int) RunRecord {
	return RunRecord{
		ID:          uuid.NewString(),
		StartedAt:   time.Now().UTC(),
		Repetitions: repetitions,
	}
}

func (s *Store) historyPath() string {
	return filepath.Join(s.dir(), "history.json")
}

// LoadRuns reads the run history. A missing file yields an empty slice.
func (s *Store) LoadRuns() ([]RunRecord, error) {
	data, err := os.ReadFile(s.historyPath())
	if err != nil {
		if os.IsNotExist(err) {
			return []RunRecord{}, nil
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	var runs []RunRecord
	if err := json.Unmarshal(data, &runs); err != nil {
		return nil, fmt.Errorf("failed to parse history file: %w", err)
	}
	return runs, nil
}

// AppendRun appends a record to the run history.
func (s *Store) AppendRun(rec RunRecord) error {
	runs, err := s.LoadRuns()
	if err != nil {
		return err
	}
	runs = append(runs, rec)
	return s.write(s.historyPath(), runs)
}
