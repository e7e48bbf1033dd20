package types

import "time"

// OrganizeResult holds the result of the 'organize' command.
type OrganizeResult struct {
	RunID              string        `json:"runId"`
	BaseDirectory      string        `json:"baseDirectory"`
	LogFile            string        `json:"logFile"`
	Resumed            bool          `json:"resumed"`
	Interrupted        bool          `json:"interrupted"`
	Attempted          int           `json:"attempted"`
	Moved              int           `json:"moved"`
	Skipped            int           `json:"skipped"`
	CreatedDirectories []string      `json:"createdDirectories"`
	RemovedDirectories []string      `json:"removedDirectories"`
	Moves              []MoveRecord  `json:"moves"`
	Failures           []Failure     `json:"failures"`
	OrphanedLog        string        `json:"orphanedLog,omitempty"`
	Duration           time.Duration `json:"duration"`
}

// RestoreResult holds the result of the 'restore' command.
type RestoreResult struct {
	RunID                string        `json:"runId"`
	BaseDirectory        string        `json:"baseDirectory"`
	LogFile              string        `json:"logFile"`
	RecreatedDirectories int           `json:"recreatedDirectories"`
	Restored             int           `json:"restored"`
	Renamed              int           `json:"renamed"`
	Missing              int           `json:"missing"`
	RemovedDirectories   []string      `json:"removedDirectories"`
	LogRemoved           bool          `json:"logRemoved"`
	Failures             []Failure     `json:"failures"`
	Duration             time.Duration `json:"duration"`
}

// StatusResult holds the result of the 'status' command.
type StatusResult struct {
	Directory          string       `json:"directory"`
	LogFile            string       `json:"logFile"`
	HasLog             bool         `json:"hasLog"`
	CreatedDirectories []string     `json:"createdDirectories"`
	RemovedDirectories int          `json:"removedDirectories"`
	Moves              int          `json:"moves"`
	Restorable         int          `json:"restorable"`
	Stale              []MoveRecord `json:"stale"`
}
